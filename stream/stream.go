// Package stream provides the cursor abstraction rules match against: a
// token sequence plus a read position. The Mutable form advances while a
// match is attempted; the Immutable form is a frozen snapshot handed to
// rewrite actions so they can inspect surrounding tokens without being
// able to move the cursor.
package stream

import (
	"fmt"

	"github.com/gnolang/tokre/token"
)

// Stream is the read surface shared by both cursor variants.
type Stream interface {
	// Len returns the total number of tokens in the sequence.
	Len() int

	// Index returns the current cursor position in [0, Len()].
	Index() int

	// HasMore reports whether a token exists at the cursor.
	HasMore() bool

	// At returns the token at position i. Asking for a token outside
	// [0, Len()) is a contract violation and panics; it is never a
	// silent non-match.
	At(i int) token.Token

	// Tokens returns a copy of the full underlying sequence.
	Tokens() []token.Token
}

func checkAt(i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Errorf("stream: token index %d out of range [0, %d)", i, n))
	}
}

func checkIndex(i, n int) {
	if i < 0 || i > n {
		panic(fmt.Errorf("stream: cursor %d out of range [0, %d]", i, n))
	}
}
