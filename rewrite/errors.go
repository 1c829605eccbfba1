package rewrite

import "errors"

// ErrEmptyMatch is returned by actions that cannot produce anything
// from a zero-width match, such as GroupAs.
var ErrEmptyMatch = errors.New("rewrite: cannot rewrite an empty match")
