package rule

import "fmt"

// Not returns the complement of r. Only rules implementing Negatable
// can be complemented; for any other rule Not panics with an error
// wrapping ErrNotNegatable.
//
// Negation distributes through Optional: Not(Optional(r)) is
// Optional(Not(r)).
func Not(r Rule) Rule {
	n, ok := r.(Negatable)
	if !ok {
		panic(fmt.Errorf("%w: %T", ErrNotNegatable, r))
	}
	return n.Negate()
}
