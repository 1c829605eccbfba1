package rule

import (
	"github.com/gnolang/tokre/stream"
	"github.com/gnolang/tokre/token"
)

// OptionalRule matches its inner rule when possible and otherwise
// succeeds with a zero-width match. It never fails.
type OptionalRule struct {
	inner Rule
}

// Optional returns a rule that tries inner and, on a miss, succeeds
// without consuming anything.
func Optional(inner Rule) *OptionalRule {
	return &OptionalRule{inner: inner}
}

func (r *OptionalRule) Match(ts *stream.Mutable, mc *Context) *Match {
	start := ts.Index()
	if m := r.inner.Match(ts, mc); m != nil {
		return m
	}
	ts.SetIndex(start)
	return &Match{Start: start, End: start, Tokens: []token.Token{}, Rule: r}
}

// Negate returns Optional(Not(inner)). The optional itself has no
// complement, so negation passes through to the inner rule; it panics
// when the inner rule is not Negatable.
func (r *OptionalRule) Negate() Rule {
	return Optional(Not(r.inner))
}

func (r *OptionalRule) String() string {
	return "optional(" + describe(r.inner) + ")"
}
