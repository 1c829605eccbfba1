package rule

import (
	"fmt"
	"regexp"

	"github.com/gnolang/tokre/stream"
	"github.com/gnolang/tokre/token"
)

// PatternRule matches a single token whose value matches a regular
// expression in full.
type PatternRule struct {
	expr    string
	re      *regexp.Regexp
	negated bool
}

// Pattern returns a rule matching one token whose entire value matches
// expr. The expression is anchored on both ends, so a partial hit is a
// miss. Panics if expr does not compile.
func Pattern(expr string) *PatternRule {
	return &PatternRule{
		expr: expr,
		re:   regexp.MustCompile(`\A(?:` + expr + `)\z`),
	}
}

func (r *PatternRule) Match(ts *stream.Mutable, _ *Context) *Match {
	if !ts.HasMore() {
		return nil
	}
	start := ts.Index()
	tok := ts.Current()
	ok := r.re.MatchString(tok.Value())
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
// match the expression.
func (r *PatternRule) Negate() Rule {
	return &PatternRule{expr: r.expr, re: r.re, negated: !r.negated}
}

func (r *PatternRule) String() string {
	s := fmt.Sprintf("pattern(%q)", r.expr)
	if r.negated {
		return "not(" + s + ")"
	}
	return s
}
