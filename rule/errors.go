package rule

import "errors"

// ErrNotNegatable is the value wrapped by the panic raised when Not is
// applied to a rule that does not implement Negatable.
var ErrNotNegatable = errors.New("rule: rule does not support negation")
