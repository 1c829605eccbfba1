package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/tokre/token"
)

var anyDef = token.Define("any", func(string) bool { return true })

func toks(values ...string) []token.Token {
	out := make([]token.Token, len(values))
	for i, v := range values {
		out[i] = token.NewUnpositioned(anyDef, v)
	}
	return out
}

func TestMutableCursor(t *testing.T) {
	m := NewMutable(toks("a", "b", "c"))

	require.Equal(t, 3, m.Len())
	require.Equal(t, 0, m.Index())
	require.True(t, m.HasMore())
	assert.Equal(t, 3, m.Remaining())

	assert.Equal(t, "a", m.Current().Value())
	assert.Equal(t, "a", m.Advance().Value())
	assert.Equal(t, 1, m.Index())
	assert.Equal(t, "b", m.Current().Value())

	m.Advance()
	m.Advance()
	assert.False(t, m.HasMore())
	assert.Equal(t, 0, m.Remaining())

	// restoring the cursor is how alternation backtracks
	m.SetIndex(1)
	assert.Equal(t, "b", m.Current().Value())
}

func TestMutableContractViolations(t *testing.T) {
	m := NewMutable(toks("a"))

	assert.Panics(t, func() { m.At(-1) })
	assert.Panics(t, func() { m.At(1) })
	assert.Panics(t, func() { m.SetIndex(2) })
	assert.Panics(t, func() { m.SetIndex(-1) })

	m.Advance()
	assert.Panics(t, func() { m.Current() })
	assert.Panics(t, func() { m.Advance() })

	// cursor == Len is a legal resting position
	assert.NotPanics(t, func() { m.SetIndex(1) })
}

func TestEmptyStream(t *testing.T) {
	m := NewMutable(nil)

	assert.Equal(t, 0, m.Len())
	assert.False(t, m.HasMore())
	assert.Panics(t, func() { m.Current() })
	assert.NotPanics(t, func() { m.SetIndex(0) })
}

func TestMutableOwnsTokens(t *testing.T) {
	src := toks("a", "b")
	m := NewMutable(src)

	src[0] = token.NewUnpositioned(anyDef, "z")
	assert.Equal(t, "a", m.At(0).Value())

	// Tokens hands out a copy as well
	m.Tokens()[1] = token.NewUnpositioned(anyDef, "z")
	assert.Equal(t, "b", m.At(1).Value())
}

func TestFreeze(t *testing.T) {
	m := NewMutable(toks("a", "b", "c"))
	m.Advance()

	frozen := m.Freeze()
	require.Equal(t, 1, frozen.Index())
	assert.Equal(t, 3, frozen.Len())
	assert.True(t, frozen.HasMore())
	assert.Equal(t, "b", frozen.At(frozen.Index()).Value())

	// the snapshot's cursor does not follow later movement
	m.Advance()
	assert.Equal(t, 1, frozen.Index())
	assert.Equal(t, 2, m.Index())
}

func TestNewImmutable(t *testing.T) {
	s := NewImmutable(toks("a", "b"), 2)

	assert.Equal(t, 2, s.Index())
	assert.False(t, s.HasMore())
	assert.Equal(t, []string{"a", "b"}, token.Values(s.Tokens()))

	assert.Panics(t, func() { NewImmutable(toks("a"), 2) })
	assert.Panics(t, func() { NewImmutable(toks("a"), -1) })
	assert.Panics(t, func() { s.At(2) })
}
