package rewrite

import (
	"github.com/gnolang/tokre/rule"
	"github.com/gnolang/tokre/stream"
	"github.com/gnolang/tokre/token"
)

// Context couples an action to a frozen view of the stream it is
// rewriting, giving the action access to the tokens around a match.
//
// Contexts are built from immutable streams only. Accepting a mutable
// stream here would let an action race the matcher's cursor, so the
// restriction is enforced by the type system rather than at run time.
type Context struct {
	action Action
	ts     *stream.Immutable
}

// NewContext returns a context applying action against the frozen
// stream. Panics when either argument is nil.
func NewContext(action Action, ts *stream.Immutable) *Context {
	if action == nil {
		panic("rewrite: nil action")
	}
	if ts == nil {
		panic("rewrite: nil stream")
	}
	return &Context{action: action, ts: ts}
}

// Apply runs the context's action on the match.
func (c *Context) Apply(m *rule.Match) ([]token.Token, error) {
	return c.action.Apply(m)
}

// Before returns the tokens preceding the match, in stream order.
func (c *Context) Before(m *rule.Match) []token.Token {
	out := make([]token.Token, 0, m.Start)
	for i := 0; i < m.Start && i < c.ts.Len(); i++ {
		out = append(out, c.ts.At(i))
	}
	return out
}

// After returns the tokens following the match, in stream order.
func (c *Context) After(m *rule.Match) []token.Token {
	if m.End >= c.ts.Len() {
		return []token.Token{}
	}
	out := make([]token.Token, 0, c.ts.Len()-m.End)
	for i := m.End; i < c.ts.Len(); i++ {
		out = append(out, c.ts.At(i))
	}
	return out
}

// Stream exposes the frozen stream the context was built over.
func (c *Context) Stream() *stream.Immutable {
	return c.ts
}
