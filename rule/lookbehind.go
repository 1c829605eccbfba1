package rule

import (
	"github.com/gnolang/tokre/stream"
	"github.com/gnolang/tokre/token"
)

// LookbehindRule is a zero-width assertion on the tokens before the
// cursor. The inner rule runs over the preceding tokens in
// nearest-first order: its first token is the one immediately behind
// the cursor, its second the one before that, and so on. The real
// cursor never moves.
type LookbehindRule struct {
	inner    Rule
	negative bool
}

// Lookbehind returns an assertion succeeding when inner matches the
// tokens behind the current position, nearest first.
func Lookbehind(inner Rule) *LookbehindRule {
	return &LookbehindRule{inner: inner}
}

// NegativeLookbehind returns an assertion succeeding when inner does
// not match the tokens behind the current position.
func NegativeLookbehind(inner Rule) *LookbehindRule {
	return &LookbehindRule{inner: inner, negative: true}
}

func (r *LookbehindRule) Match(ts *stream.Mutable, mc *Context) *Match {
	at := ts.Index()
	behind := make([]token.Token, at)
	for i := 0; i < at; i++ {
		behind[i] = ts.At(at - 1 - i)
	}
	m := r.inner.Match(stream.NewMutable(behind), mc)
	if (m != nil) == r.negative {
		return nil
	}
	return &Match{Start: at, End: at, Tokens: []token.Token{}, Rule: r}
}

func (r *LookbehindRule) String() string {
	if r.negative {
		return "(?<!" + describe(r.inner) + ")"
	}
	return "(?<=" + describe(r.inner) + ")"
}
