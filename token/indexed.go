package token

// Indexed wraps an inner token with an integer index, typically the
// occurrence ordinal assigned by an indexed repetition rule.
type Indexed struct {
	inner Token
	index int
}

var _ Wrapper = (*Indexed)(nil)

// NewIndexed wraps a token with the given index.
func NewIndexed(inner Token, index int) *Indexed {
	return &Indexed{inner: inner, index: index}
}

func (i *Indexed) Definition() Definition { return i.inner.Definition() }
func (i *Indexed) Value() string          { return i.inner.Value() }
func (i *Indexed) Start() Position        { return i.inner.Start() }
func (i *Indexed) End() Position          { return i.inner.End() }

// Index returns the index carried by the wrapper.
func (i *Indexed) Index() int { return i.index }

// Unwrap returns the wrapped token.
func (i *Indexed) Unwrap() Token { return i.inner }
