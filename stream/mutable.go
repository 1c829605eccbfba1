package stream

import (
	"fmt"

	"github.com/gnolang/tokre/token"
)

// Mutable is the cursor-advancing stream used while a match is being
// attempted. Rules advance it as they consume tokens and snapshot and
// restore Index around alternatives they may need to back out of.
//
// A Mutable stream belongs to a single match attempt on a single
// goroutine; it is not safe for concurrent use.
type Mutable struct {
	tokens []token.Token
	index  int
}

var _ Stream = (*Mutable)(nil)

// NewMutable creates a mutable stream positioned at the first token.
// The token slice is copied.
func NewMutable(toks []token.Token) *Mutable {
	owned := make([]token.Token, len(toks))
	copy(owned, toks)
	return &Mutable{tokens: owned}
}

func (m *Mutable) Len() int      { return len(m.tokens) }
func (m *Mutable) Index() int    { return m.index }
func (m *Mutable) HasMore() bool { return m.index < len(m.tokens) }

func (m *Mutable) At(i int) token.Token {
	checkAt(i, len(m.tokens))
	return m.tokens[i]
}

func (m *Mutable) Tokens() []token.Token {
	out := make([]token.Token, len(m.tokens))
	copy(out, m.tokens)
	return out
}

// Current returns the token at the cursor. Calling Current on an
// exhausted stream is a contract violation and panics; rules must check
// HasMore first.
func (m *Mutable) Current() token.Token {
	if !m.HasMore() {
		panic(fmt.Errorf("stream: no current token at cursor %d of %d", m.index, len(m.tokens)))
	}
	return m.tokens[m.index]
}

// Advance returns the current token and moves the cursor past it.
func (m *Mutable) Advance() token.Token {
	t := m.Current()
	m.index++
	return t
}

// SetIndex moves the cursor. The index may equal Len, placing the
// cursor just past the final token; anything outside [0, Len] panics.
func (m *Mutable) SetIndex(i int) {
	checkIndex(i, len(m.tokens))
	m.index = i
}

// Remaining returns the number of tokens at or after the cursor.
func (m *Mutable) Remaining() int { return len(m.tokens) - m.index }

// Freeze returns an immutable snapshot of the stream with the cursor
// fixed at its current position. The snapshot shares the backing
// sequence, which is never mutated by either form.
func (m *Mutable) Freeze() *Immutable {
	return &Immutable{tokens: m.tokens, index: m.index}
}
