package rule

import (
	"github.com/gnolang/tokre/stream"
	"github.com/gnolang/tokre/token"
)

// LookaheadRule is a zero-width assertion on the tokens at and after
// the cursor. It probes its inner rule and restores the cursor no
// matter what, so a successful assertion consumes nothing.
type LookaheadRule struct {
	inner    Rule
	negative bool
}

// Lookahead returns an assertion succeeding when inner matches at the
// current position.
func Lookahead(inner Rule) *LookaheadRule {
	return &LookaheadRule{inner: inner}
}

// NegativeLookahead returns an assertion succeeding when inner does
// not match at the current position.
func NegativeLookahead(inner Rule) *LookaheadRule {
	return &LookaheadRule{inner: inner, negative: true}
}

func (r *LookaheadRule) Match(ts *stream.Mutable, mc *Context) *Match {
	start := ts.Index()
	m := r.inner.Match(ts, mc)
	ts.SetIndex(start)
	if (m != nil) == r.negative {
		return nil
	}
	return &Match{Start: start, End: start, Tokens: []token.Token{}, Rule: r}
}

func (r *LookaheadRule) String() string {
	if r.negative {
		return "(?!" + describe(r.inner) + ")"
	}
	return "(?=" + describe(r.inner) + ")"
}
