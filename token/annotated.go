package token

// Annotated wraps an inner token with an immutable key/value metadata
// map. The map is copied on construction and on read, so neither the
// constructing caller nor a reader can mutate an Annotated token.
type Annotated struct {
	inner Token
	meta  map[string]any
}

var _ Wrapper = (*Annotated)(nil)

// Annotate attaches metadata to a token. A token that is already
// Annotated is returned unchanged and the new metadata is discarded;
// merging metadata into an existing annotation is the job of the
// rewrite-phase annotate action, not of the token model.
func Annotate(t Token, meta map[string]any) Token {
	if a, ok := t.(*Annotated); ok {
		return a
	}
	return NewAnnotated(t, meta)
}

// NewAnnotated always wraps, even around another Annotated token. Most
// callers want Annotate instead.
func NewAnnotated(inner Token, meta map[string]any) *Annotated {
	return &Annotated{inner: inner, meta: copyMeta(meta)}
}

func (a *Annotated) Definition() Definition { return a.inner.Definition() }
func (a *Annotated) Value() string          { return a.inner.Value() }
func (a *Annotated) Start() Position        { return a.inner.Start() }
func (a *Annotated) End() Position          { return a.inner.End() }

// Unwrap returns the wrapped token.
func (a *Annotated) Unwrap() Token { return a.inner }

// Metadata returns a copy of the annotation map.
func (a *Annotated) Metadata() map[string]any { return copyMeta(a.meta) }

// Meta looks up a single annotation key.
func (a *Annotated) Meta(key string) (any, bool) {
	v, ok := a.meta[key]
	return v, ok
}

func copyMeta(meta map[string]any) map[string]any {
	out := make(map[string]any, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}
