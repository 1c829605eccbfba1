package rule

import (
	"strings"

	"github.com/gnolang/tokre/stream"
)

// ChoiceRule matches the first of its children that succeeds, trying
// them in declaration order from the same starting position.
type ChoiceRule struct {
	rules []Rule
}

// Choice returns a rule matching any one of its children. Panics when
// called with no children.
func Choice(rules ...Rule) *ChoiceRule {
	if len(rules) == 0 {
		panic("rule: choice requires at least one rule")
	}
	return &ChoiceRule{rules: rules}
}

// Match returns the winning child's match unchanged, so Match.Rule
// identifies which alternative won.
func (r *ChoiceRule) Match(ts *stream.Mutable, mc *Context) *Match {
	start := ts.Index()
	for _, child := range r.rules {
		ts.SetIndex(start)
		if m := child.Match(ts, mc); m != nil {
			return m
		}
	}
	ts.SetIndex(start)
	return nil
}

func (r *ChoiceRule) String() string {
	parts := make([]string, len(r.rules))
	for i, child := range r.rules {
		parts[i] = describe(child)
	}
	return "choice(" + strings.Join(parts, " | ") + ")"
}
