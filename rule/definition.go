package rule

import (
	"fmt"

	"github.com/gnolang/tokre/stream"
	"github.com/gnolang/tokre/token"
)

// DefinitionRule matches a single token by the definition it claims.
// The comparison is identity on the Definition value, not a re-check of
// the definition's predicate against the token value.
type DefinitionRule struct {
	def     token.Definition
	negated bool
}

// Def returns a rule matching one token whose Definition is def.
func Def(def token.Definition) *DefinitionRule {
	if def == nil {
		panic("rule: nil definition")
	}
	return &DefinitionRule{def: def}
}

func (r *DefinitionRule) Match(ts *stream.Mutable, _ *Context) *Match {
	if !ts.HasMore() {
		return nil
	}
	start := ts.Index()
	tok := ts.Current()
	ok := tok.Definition() == r.def
	if r.negated {
		ok = !ok
	}
	if !ok {
		return nil
	}
	ts.Advance()
	return &Match{Start: start, End: ts.Index(), Tokens: []token.Token{tok}, Rule: r}
}

// Negate returns a rule matching any single token claiming a different
// definition.
func (r *DefinitionRule) Negate() Rule {
	return &DefinitionRule{def: r.def, negated: !r.negated}
}

func (r *DefinitionRule) String() string {
	s := fmt.Sprintf("def(%s)", r.def)
	if r.negated {
		return "not(" + s + ")"
	}
	return s
}
