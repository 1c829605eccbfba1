package rule

import (
	"fmt"
	"strings"

	"github.com/gnolang/tokre/stream"
	"github.com/gnolang/tokre/token"
)

// ValueRule matches a single token by exact value comparison.
type ValueRule struct {
	want    string
	fold    bool
	negated bool
}

// Value returns a rule matching one token whose value equals want.
func Value(want string) *ValueRule {
	return &ValueRule{want: want}
}

// ValueFold is like Value but compares case-insensitively.
func ValueFold(want string) *ValueRule {
	return &ValueRule{want: want, fold: true}
}

func (r *ValueRule) Match(ts *stream.Mutable, _ *Context) *Match {
	if !ts.HasMore() {
		return nil
	}
	start := ts.Index()
	tok := ts.Current()
	ok := tok.Value() == r.want
	if r.fold {
		ok = strings.EqualFold(tok.Value(), r.want)
	}
	if r.negated {
		ok = !ok
	}
	if !ok {
		return nil
	}
	ts.Advance()
	return &Match{Start: start, End: ts.Index(), Tokens: []token.Token{tok}, Rule: r}
}

// Negate returns a rule matching any single token whose value does not
// equal want, under the same case sensitivity.
func (r *ValueRule) Negate() Rule {
	return &ValueRule{want: r.want, fold: r.fold, negated: !r.negated}
}

func (r *ValueRule) String() string {
	s := fmt.Sprintf("value(%q)", r.want)
	if r.fold {
		s = fmt.Sprintf("value-fold(%q)", r.want)
	}
	if r.negated {
		return "not(" + s + ")"
	}
	return s
}
