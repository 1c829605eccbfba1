package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/tokre/token"
)

func TestCapture(t *testing.T) {
	t.Run("binds the matched tokens", func(t *testing.T) {
		mc := NewContext()
		m := Capture(OneOrMore(Value("a")), "as").Match(ms("a", "a", "b"), mc)
		require.NotNil(t, m)

		bound, ok := mc.Binding("as")
		require.True(t, ok)
		assert.Equal(t, []string{"a", "a"}, token.Values(bound))
	})

	t.Run("no binding on a miss", func(t *testing.T) {
		mc := NewContext()
		assert.Nil(t, Capture(Value("a"), "as").Match(ms("b"), mc))
		_, ok := mc.Binding("as")
		assert.False(t, ok)
	})

	t.Run("bindings survive backtracking", func(t *testing.T) {
		mc := NewContext()
		r := Choice(
			Seq(Capture(Value("a"), "head"), Value("z")),
			Value("a"),
		)
		m := r.Match(ms("a", "b"), mc)
		require.NotNil(t, m)

		// The first alternative failed after its capture ran; the
		// binding is still visible.
		bound, ok := mc.Binding("head")
		require.True(t, ok)
		assert.Equal(t, []string{"a"}, token.Values(bound))
	})

	t.Run("empty name panics", func(t *testing.T) {
		assert.Panics(t, func() { Capture(Any(), "") })
	})

	t.Run("nil context panics", func(t *testing.T) {
		assert.Panics(t, func() {
			Capture(Any(), "x").Match(ms("a"), nil)
		})
	})
}

func TestRef(t *testing.T) {
	t.Run("matches the bound values", func(t *testing.T) {
		r := Seq(Capture(Any(), "w"), Value(","), Ref("w"))
		m := r.Match(ms("ab", ",", "ab"), NewContext())
		require.NotNil(t, m)
		assert.Equal(t, []string{"ab", ",", "ab"}, m.Values())
	})

	t.Run("values differ", func(t *testing.T) {
		r := Seq(Capture(Any(), "w"), Ref("w"))
		assert.Nil(t, r.Match(ms("ab", "cd"), NewContext()))
	})

	t.Run("case sensitive", func(t *testing.T) {
		r := Seq(Capture(Any(), "w"), Ref("w"))
		assert.Nil(t, r.Match(ms("ab", "AB"), NewContext()))
	})

	t.Run("multi-token binding", func(t *testing.T) {
		r := Seq(Capture(Exactly(Any(), 2), "pair"), Ref("pair"))
		m := r.Match(ms("a", "b", "a", "b"), NewContext())
		require.NotNil(t, m)
		assert.Equal(t, 4, m.Width())
	})

	t.Run("unbound name is a plain miss", func(t *testing.T) {
		ts := ms("a")
		assert.Nil(t, Ref("missing").Match(ts, NewContext()))
		assert.Equal(t, 0, ts.Index())
	})

	t.Run("empty binding matches zero-width", func(t *testing.T) {
		mc := NewContext()
		mc.Bind("none", nil)
		ts := ms("a")
		m := Ref("none").Match(ts, mc)
		require.NotNil(t, m)
		assert.True(t, m.Empty())
		assert.Equal(t, 0, ts.Index())
	})

	t.Run("partial match restores the cursor", func(t *testing.T) {
		mc := NewContext()
		mc.Bind("pair", toks("a", "b"))
		ts := ms("a", "c")
		assert.Nil(t, Ref("pair").Match(ts, mc))
		assert.Equal(t, 0, ts.Index())
	})

	t.Run("nil context panics", func(t *testing.T) {
		assert.Panics(t, func() { Ref("x").Match(ms("a"), nil) })
	})
}

func TestContext(t *testing.T) {
	t.Run("bind copies the slice", func(t *testing.T) {
		mc := NewContext()
		src := toks("a", "b")
		mc.Bind("k", src)
		src[0] = tok("mutated")

		bound, ok := mc.Binding("k")
		require.True(t, ok)
		assert.Equal(t, "a", bound[0].Value())
	})

	t.Run("rebinding replaces", func(t *testing.T) {
		mc := NewContext()
		mc.Bind("k", toks("a"))
		mc.Bind("k", toks("b"))
		bound, _ := mc.Binding("k")
		assert.Equal(t, []string{"b"}, token.Values(bound))
	})

	t.Run("names are sorted", func(t *testing.T) {
		mc := NewContext()
		mc.Bind("b", nil)
		mc.Bind("a", nil)
		mc.Bind("c", nil)
		assert.Equal(t, []string{"a", "b", "c"}, mc.Names())
	})
}
