package rule

import (
	"github.com/gnolang/tokre/stream"
	"github.com/gnolang/tokre/token"
)

// WildcardRule matches any single token. It fails only when the stream
// is exhausted.
type WildcardRule struct{}

// Any returns the wildcard rule.
func Any() *WildcardRule {
	return &WildcardRule{}
}

func (r *WildcardRule) Match(ts *stream.Mutable, _ *Context) *Match {
	if !ts.HasMore() {
		return nil
	}
	start := ts.Index()
	tok := ts.Advance()
	return &Match{Start: start, End: ts.Index(), Tokens: []token.Token{tok}, Rule: r}
}

func (r *WildcardRule) String() string { return "any" }
