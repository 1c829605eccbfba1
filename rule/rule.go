package rule

import (
	"fmt"

	"github.com/gnolang/tokre/stream"
)

// Rule is a composable matcher over a token stream. Match attempts to
// consume tokens starting at the stream's current cursor.
//
// On success the stream has been advanced past every consumed token and
// a non-nil Match describes the consumed span. On failure Match returns
// nil and the cursor position is unspecified: a rule may have consumed
// part of its input before failing. Callers that want to try an
// alternative snapshot Index() beforehand and SetIndex() afterwards,
// which is exactly what the composite rules in this package do.
//
// A no-match is the expected outcome of probing and is never reported
// as an error or a panic. Panics are reserved for contract violations:
// constructing rules from invalid bounds, negating a rule without the
// Negatable capability, or dereferencing an exhausted stream.
//
// Rules are immutable once constructed and safe to share between
// concurrent match attempts, provided every attempt uses its own
// stream and Context.
type Rule interface {
	Match(ts *stream.Mutable, mc *Context) *Match
}

// Negatable is the capability interface for rules that have a
// well-defined complement. Negate returns a new rule matching exactly
// the single tokens the original rejects. Composite rules do not carry
// this capability; Not panics for them.
type Negatable interface {
	Rule
	Negate() Rule
}

// describe renders a rule for diagnostics, falling back to the dynamic
// type for rules without a String method.
func describe(r Rule) string {
	if s, ok := r.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", r)
}
