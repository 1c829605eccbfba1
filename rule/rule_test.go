package rule

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/tokre/stream"
	"github.com/gnolang/tokre/token"
)

var testDef = token.Define("word", func(string) bool { return true })

func tok(value string) token.Token {
	return token.NewUnpositioned(testDef, value)
}

func toks(values ...string) []token.Token {
	out := make([]token.Token, len(values))
	for i, v := range values {
		out[i] = tok(v)
	}
	return out
}

func ms(values ...string) *stream.Mutable {
	return stream.NewMutable(toks(values...))
}

func TestValue(t *testing.T) {
	tests := []struct {
		name   string
		rule   Rule
		input  []string
		want   []string // nil means no match
		cursor int
	}{
		{
			name:   "exact hit",
			rule:   Value("if"),
			input:  []string{"if", "x"},
			want:   []string{"if"},
			cursor: 1,
		},
		{
			name:   "exact miss",
			rule:   Value("if"),
			input:  []string{"for"},
			want:   nil,
			cursor: 0,
		},
		{
			name:   "case matters",
			rule:   Value("if"),
			input:  []string{"IF"},
			want:   nil,
			cursor: 0,
		},
		{
			name:   "fold hit",
			rule:   ValueFold("if"),
			input:  []string{"IF"},
			want:   []string{"IF"},
			cursor: 1,
		},
		{
			name:   "empty stream",
			rule:   Value("if"),
			input:  nil,
			want:   nil,
			cursor: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := ms(tt.input...)
			m := tt.rule.Match(ts, NewContext())
			if tt.want == nil {
				assert.Nil(t, m)
			} else {
				require.NotNil(t, m)
				assert.Equal(t, tt.want, m.Values())
				assert.Equal(t, 0, m.Start)
				assert.Equal(t, len(tt.want), m.End)
			}
			assert.Equal(t, tt.cursor, ts.Index())
		})
	}
}

func TestValueNegate(t *testing.T) {
	tests := []struct {
		name    string
		rule    Rule
		input   string
		matches bool
	}{
		{"negated misses the literal", Not(Value("x")), "x", false},
		{"negated matches anything else", Not(Value("x")), "y", true},
		{"double negation restores", Not(Not(Value("x"))), "x", true},
		{"fold negation misses either case", Not(ValueFold("x")), "X", false},
		{"fold negation matches others", Not(ValueFold("x")), "y", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.rule.Match(ms(tt.input), NewContext())
			if tt.matches {
				require.NotNil(t, m)
				assert.Equal(t, []string{tt.input}, m.Values())
			} else {
				assert.Nil(t, m)
			}
		})
	}
}

func TestPattern(t *testing.T) {
	number := Pattern(`[0-9]+`)

	tests := []struct {
		name    string
		rule    Rule
		input   string
		matches bool
	}{
		{"full match", number, "42", true},
		{"partial is a miss", number, "42x", false},
		{"no match", number, "abc", false},
		{"negated", Not(number), "abc", true},
		{"negated miss", Not(number), "42", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.rule.Match(ms(tt.input), NewContext())
			assert.Equal(t, tt.matches, m != nil)
		})
	}

	t.Run("bad expression panics", func(t *testing.T) {
		assert.Panics(t, func() { Pattern(`(unclosed`) })
	})
}

func TestDef(t *testing.T) {
	number := token.DefinePattern("number", `[0-9]+`)
	word := token.Define("word", func(string) bool { return true })

	numTok := token.NewUnpositioned(number, "42")
	wordTok := token.NewUnpositioned(word, "42")

	t.Run("identity on the claimed definition", func(t *testing.T) {
		ts := stream.NewMutable([]token.Token{numTok})
		m := Def(number).Match(ts, NewContext())
		require.NotNil(t, m)
		assert.Equal(t, 1, ts.Index())
	})

	t.Run("same value different definition", func(t *testing.T) {
		ts := stream.NewMutable([]token.Token{wordTok})
		assert.Nil(t, Def(number).Match(ts, NewContext()))
		assert.Equal(t, 0, ts.Index())
	})

	t.Run("negated", func(t *testing.T) {
		ts := stream.NewMutable([]token.Token{wordTok})
		assert.NotNil(t, Not(Def(number)).Match(ts, NewContext()))
	})

	t.Run("nil definition panics", func(t *testing.T) {
		assert.Panics(t, func() { Def(nil) })
	})
}

func TestAny(t *testing.T) {
	t.Run("consumes one token", func(t *testing.T) {
		ts := ms("a", "b")
		m := Any().Match(ts, NewContext())
		require.NotNil(t, m)
		assert.Equal(t, []string{"a"}, m.Values())
		assert.Equal(t, 1, ts.Index())
	})

	t.Run("fails on exhausted stream", func(t *testing.T) {
		assert.Nil(t, Any().Match(ms(), NewContext()))
	})
}

func TestNotRequiresCapability(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
	}{
		{"sequence", Seq(Value("a"))},
		{"choice", Choice(Value("a"))},
		{"wildcard", Any()},
		{"repeat", ZeroOrMore(Value("a"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(error)
				require.True(t, ok, "panic value should be an error")
				assert.ErrorIs(t, err, ErrNotNegatable)
			}()
			Not(tt.rule)
		})
	}
}

func TestNegationThroughOptional(t *testing.T) {
	r := Not(Optional(Value("x")))

	t.Run("matches the complement", func(t *testing.T) {
		ts := ms("y")
		m := r.Match(ts, NewContext())
		require.NotNil(t, m)
		assert.Equal(t, []string{"y"}, m.Values())
	})

	t.Run("still optional on the original value", func(t *testing.T) {
		ts := ms("x")
		m := r.Match(ts, NewContext())
		require.NotNil(t, m)
		assert.True(t, m.Empty())
		assert.Equal(t, 0, ts.Index())
	})
}

func TestRuleStrings(t *testing.T) {
	tests := []struct {
		rule Rule
		want string
	}{
		{Value("if"), `value("if")`},
		{Not(ValueFold("if")), `not(value-fold("if"))`},
		{Pattern(`[0-9]+`), `pattern("[0-9]+")`},
		{Any(), "any"},
		{Seq(Value("a"), Any()), `seq(value("a"), any)`},
		{Choice(Value("a"), Value("b")), `choice(value("a") | value("b"))`},
		{Optional(Value("a")), `optional(value("a"))`},
		{Repeat(Value("a"), 2, 4), `repeat(value("a")){2,4}`},
		{ZeroOrMore(Value("a")), `repeat(value("a")){0,}`},
		{Exactly(Value("a"), 3).Indexed(), `repeat(value("a")){3,3}#`},
		{Lookahead(Value("a")), `(?=value("a"))`},
		{NegativeLookbehind(Value("a")), `(?<!value("a"))`},
		{Capture(Any(), "x"), `capture(any, "x")`},
		{Ref("x"), `ref("x")`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, describe(tt.rule))
		})
	}
}

func TestNotNegatableError(t *testing.T) {
	assert.True(t, errors.Is(ErrNotNegatable, ErrNotNegatable))
	assert.EqualError(t, ErrNotNegatable, "rule: rule does not support negation")
}
