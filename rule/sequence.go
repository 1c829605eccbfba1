package rule

import (
	"strings"

	"github.com/gnolang/tokre/stream"
	"github.com/gnolang/tokre/token"
)

// SequenceRule matches its children one after another. All children
// must succeed for the sequence to succeed.
type SequenceRule struct {
	rules []Rule
}

// Seq returns a rule matching every child in order. Panics when called
// with no children.
func Seq(rules ...Rule) *SequenceRule {
	if len(rules) == 0 {
		panic("rule: sequence requires at least one rule")
	}
	return &SequenceRule{rules: rules}
}

func (r *SequenceRule) Match(ts *stream.Mutable, mc *Context) *Match {
	start := ts.Index()
	var consumed []token.Token
	for _, child := range r.rules {
		m := child.Match(ts, mc)
		if m == nil {
			// A failed child may have consumed part of its input.
			ts.SetIndex(start)
			return nil
		}
		consumed = append(consumed, m.Tokens...)
	}
	return &Match{Start: start, End: ts.Index(), Tokens: consumed, Rule: r}
}

func (r *SequenceRule) String() string {
	parts := make([]string, len(r.rules))
	for i, child := range r.rules {
		parts[i] = describe(child)
	}
	return "seq(" + strings.Join(parts, ", ") + ")"
}
