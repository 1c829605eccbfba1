package token

// Token is a single lexical unit: a value, the Definition categorizing
// that value, and the source span it was read from. Tokens are immutable;
// decorating variants (Annotated, Shadow, Indexed) wrap exactly one inner
// Token and forward these queries to it unless documented otherwise.
type Token interface {
	// Definition returns the category this token claims.
	Definition() Definition

	// Value returns the textual value of the token.
	Value() string

	// Start returns the position of the first character of the token,
	// or Unpositioned.
	Start() Position

	// End returns the position just past the last character of the
	// token, or Unpositioned.
	End() Position
}

// Wrapper is implemented by decorating token variants. Unwrap peels
// exactly one layer; it is never applied recursively by the engine.
type Wrapper interface {
	Token
	Unwrap() Token
}

// Simple is a leaf token: a definition, a value, and a source span.
type Simple struct {
	def        Definition
	value      string
	start, end Position
}

var _ Token = (*Simple)(nil)

// New creates a leaf token spanning [start, end).
func New(def Definition, value string, start, end Position) *Simple {
	return &Simple{def: def, value: value, start: start, end: end}
}

// NewUnpositioned creates a leaf token that has no place in source text,
// typically one synthesized during rewriting.
func NewUnpositioned(def Definition, value string) *Simple {
	return &Simple{def: def, value: value, start: Unpositioned, end: Unpositioned}
}

func (t *Simple) Definition() Definition { return t.def }
func (t *Simple) Value() string          { return t.value }
func (t *Simple) Start() Position        { return t.start }
func (t *Simple) End() Position          { return t.end }

// Values returns the values of the given tokens, in order. It is a small
// convenience for tests and diagnostics.
func Values(toks []Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Value()
	}
	return out
}
