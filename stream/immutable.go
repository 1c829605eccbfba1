package stream

import "github.com/gnolang/tokre/token"

// Immutable is a frozen snapshot of a token stream: the same read
// surface as Mutable with the cursor fixed permanently. Rewrite actions
// receive an Immutable so they can look at surrounding tokens without
// being able to disturb matching progress. Accepting only this type is
// what makes "an action context over an advancing stream" unbuildable.
type Immutable struct {
	tokens []token.Token
	index  int
}

var _ Stream = (*Immutable)(nil)

// NewImmutable creates a frozen stream with the cursor fixed at index.
// The token slice is copied. An index outside [0, len(toks)] panics.
func NewImmutable(toks []token.Token, index int) *Immutable {
	checkIndex(index, len(toks))
	owned := make([]token.Token, len(toks))
	copy(owned, toks)
	return &Immutable{tokens: owned, index: index}
}

func (s *Immutable) Len() int      { return len(s.tokens) }
func (s *Immutable) Index() int    { return s.index }
func (s *Immutable) HasMore() bool { return s.index < len(s.tokens) }

func (s *Immutable) At(i int) token.Token {
	checkAt(i, len(s.tokens))
	return s.tokens[i]
}

func (s *Immutable) Tokens() []token.Token {
	out := make([]token.Token, len(s.tokens))
	copy(out, s.tokens)
	return out
}
