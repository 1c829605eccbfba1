package rule

import (
	"github.com/gnolang/tokre/token"
)

// Match records a successful rule application.
//
// Start and End delimit the consumed region of the underlying stream
// as a half-open index range [Start, End). Tokens holds the tokens the
// rule produced for that region; its length can differ from End-Start
// when a grouping rule collapses several stream tokens into one, or
// when a zero-width rule consumes nothing at all.
type Match struct {
	Start  int
	End    int
	Tokens []token.Token
	Rule   Rule
}

// Len reports how many tokens the match produced.
func (m *Match) Len() int { return len(m.Tokens) }

// Empty reports whether the match produced no tokens. Zero-width
// successes such as assertions and optional misses are empty.
func (m *Match) Empty() bool { return len(m.Tokens) == 0 }

// Width reports how many stream positions the match consumed.
func (m *Match) Width() int { return m.End - m.Start }

// Values returns the string values of the matched tokens, in order.
func (m *Match) Values() []string { return token.Values(m.Tokens) }
