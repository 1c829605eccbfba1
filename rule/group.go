package rule

import (
	"fmt"

	"github.com/gnolang/tokre/stream"
	"github.com/gnolang/tokre/token"
)

// GroupRule wraps an inner rule and collapses its matched tokens into a
// single group token carrying the given definition.
type GroupRule struct {
	inner Rule
	def   token.Definition
}

// Group returns a rule that matches inner and replaces the matched
// tokens with one group token. A zero-width inner success passes
// through ungrouped, since a group must have at least one member.
func Group(inner Rule, def token.Definition) *GroupRule {
	if def == nil {
		panic("rule: nil group definition")
	}
	return &GroupRule{inner: inner, def: def}
}

func (r *GroupRule) Match(ts *stream.Mutable, mc *Context) *Match {
	m := r.inner.Match(ts, mc)
	if m == nil {
		return nil
	}
	if m.Empty() {
		return &Match{Start: m.Start, End: m.End, Tokens: m.Tokens, Rule: r}
	}
	grp := token.MustGroup(r.def, m.Tokens...)
	return &Match{Start: m.Start, End: m.End, Tokens: []token.Token{grp}, Rule: r}
}

func (r *GroupRule) String() string {
	return fmt.Sprintf("group(%s, %s)", describe(r.inner), r.def)
}
