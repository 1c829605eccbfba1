package token

// Shadow marks its inner token as suppressed: later structural passes
// (for example the DropShadowed transformer) skip shadowed tokens while
// the value, definition, and position of the inner token stay readable.
type Shadow struct {
	inner Token
}

var _ Wrapper = (*Shadow)(nil)

// Shade wraps a token in a Shadow. Shading an already-shadowed token is
// idempotent: the same Shadow is returned rather than a double wrap.
// A double wrap is only obtainable through NewShadow.
func Shade(t Token) Token {
	if s, ok := t.(*Shadow); ok {
		return s
	}
	return &Shadow{inner: t}
}

// NewShadow always wraps, even around another Shadow.
func NewShadow(inner Token) *Shadow {
	return &Shadow{inner: inner}
}

// Unshadow peels exactly one Shadow layer. The result may itself be a
// Shadow when the token was wrapped more than once. Non-shadowed tokens
// are returned unchanged.
func Unshadow(t Token) Token {
	if s, ok := t.(*Shadow); ok {
		return s.inner
	}
	return t
}

// IsShadowed reports whether the token's outermost layer is a Shadow.
func IsShadowed(t Token) bool {
	_, ok := t.(*Shadow)
	return ok
}

func (s *Shadow) Definition() Definition { return s.inner.Definition() }
func (s *Shadow) Value() string          { return s.inner.Value() }
func (s *Shadow) Start() Position        { return s.inner.Start() }
func (s *Shadow) End() Position          { return s.inner.End() }

// Unwrap returns the wrapped token.
func (s *Shadow) Unwrap() Token { return s.inner }
