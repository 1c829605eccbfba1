package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookahead(t *testing.T) {
	tests := []struct {
		name    string
		rule    Rule
		input   []string
		matches bool
	}{
		{"positive hit", Lookahead(Value("a")), []string{"a"}, true},
		{"positive miss", Lookahead(Value("a")), []string{"b"}, false},
		{"negative hit", NegativeLookahead(Value("a")), []string{"b"}, true},
		{"negative miss", NegativeLookahead(Value("a")), []string{"a"}, false},
		{"positive against empty stream", Lookahead(Any()), nil, false},
		{"negative against empty stream", NegativeLookahead(Any()), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := ms(tt.input...)
			m := tt.rule.Match(ts, NewContext())
			if tt.matches {
				require.NotNil(t, m)
				assert.True(t, m.Empty())
				assert.Equal(t, 0, m.Width())
			} else {
				assert.Nil(t, m)
			}
			assert.Equal(t, 0, ts.Index(), "assertion must not move the cursor")
		})
	}
}

func TestLookaheadInSequence(t *testing.T) {
	t.Run("guards without consuming", func(t *testing.T) {
		r := Seq(Lookahead(Value("a")), Any())
		m := r.Match(ms("a"), NewContext())
		require.NotNil(t, m)
		assert.Equal(t, []string{"a"}, m.Values())
	})

	t.Run("negative guard rejects", func(t *testing.T) {
		r := Seq(NegativeLookahead(Value("a")), Any())
		assert.Nil(t, r.Match(ms("a"), NewContext()))
	})
}

func TestLookbehind(t *testing.T) {
	tests := []struct {
		name    string
		rule    Rule
		input   []string
		at      int
		matches bool
	}{
		{"nearest token behind", Lookbehind(Value("b")), []string{"a", "b", "c"}, 2, true},
		{"not the nearest", Lookbehind(Value("a")), []string{"a", "b", "c"}, 2, false},
		{"nearest-first sequence", Lookbehind(Seq(Value("b"), Value("a"))), []string{"a", "b", "c"}, 2, true},
		{"negative behind", NegativeLookbehind(Value("a")), []string{"a", "b", "c"}, 2, true},
		{"at stream start", Lookbehind(Value("a")), []string{"a", "b"}, 0, false},
		{"negative at stream start", NegativeLookbehind(Value("a")), []string{"a", "b"}, 0, true},
		{"wildcard at stream start", Lookbehind(Any()), []string{"a"}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := ms(tt.input...)
			ts.SetIndex(tt.at)
			m := tt.rule.Match(ts, NewContext())
			if tt.matches {
				require.NotNil(t, m)
				assert.True(t, m.Empty())
				assert.Equal(t, tt.at, m.Start)
				assert.Equal(t, tt.at, m.End)
			} else {
				assert.Nil(t, m)
			}
			assert.Equal(t, tt.at, ts.Index(), "assertion must not move the cursor")
		})
	}
}

func TestLookbehindInSequence(t *testing.T) {
	// Match "b" only when it follows "a".
	r := Seq(Any(), Lookbehind(Value("a")), Value("b"))

	t.Run("context present", func(t *testing.T) {
		m := r.Match(ms("a", "b"), NewContext())
		require.NotNil(t, m)
		assert.Equal(t, []string{"a", "b"}, m.Values())
	})

	t.Run("context absent", func(t *testing.T) {
		assert.Nil(t, r.Match(ms("x", "b"), NewContext()))
	})
}
