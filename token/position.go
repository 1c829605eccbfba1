package token

import "fmt"

// Position locates a token in the original source text.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based absolute offset in the input
}

// Unpositioned marks tokens that have not been placed in source text,
// such as tokens synthesized by a rewrite pass.
var Unpositioned = Position{Line: -1, Column: -1, Offset: -1}

// NewPosition returns a Position for the given line, column, and offset.
func NewPosition(line, column, offset int) Position {
	return Position{Line: line, Column: column, Offset: offset}
}

// IsPositioned reports whether p refers to an actual location in source
// text. The Unpositioned sentinel and any position with a negative line
// are considered unpositioned.
func (p Position) IsPositioned() bool {
	return p.Line >= 0 && p.Column >= 0 && p.Offset >= 0
}

// String renders the position as "line:column", or "-" when unpositioned.
func (p Position) String() string {
	if !p.IsPositioned() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
