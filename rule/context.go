package rule

import (
	"sort"

	"github.com/gnolang/tokre/token"
)

// Context carries named bindings across a single match attempt. Capture
// rules write into it and reference rules read from it.
//
// Bindings are not rolled back when a containing composite backtracks:
// a capture inside a failed alternative remains visible to later
// alternatives. Callers that need a clean slate start a new Context per
// attempt, which is what the engine does.
type Context struct {
	bindings map[string][]token.Token
}

// NewContext returns an empty match context.
func NewContext() *Context {
	return &Context{bindings: make(map[string][]token.Token)}
}

// Bind stores the tokens under name, replacing any previous binding.
// The slice is copied.
func (c *Context) Bind(name string, toks []token.Token) {
	cp := make([]token.Token, len(toks))
	copy(cp, toks)
	c.bindings[name] = cp
}

// Binding returns the tokens bound under name. The second result is
// false when the name has never been bound.
func (c *Context) Binding(name string) ([]token.Token, bool) {
	toks, ok := c.bindings[name]
	return toks, ok
}

// Names returns every bound name in sorted order.
func (c *Context) Names() []string {
	names := make([]string, 0, len(c.bindings))
	for name := range c.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
