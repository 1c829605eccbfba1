package rewrite

import (
	"github.com/gnolang/tokre/rule"
	"github.com/gnolang/tokre/token"
)

// Action turns a successful match into replacement tokens. The
// returned slice substitutes for the matched tokens in the rewritten
// stream; returning an empty slice removes them.
//
// Actions never mutate the match or its tokens. An error aborts the
// surrounding rewrite.
type Action interface {
	Apply(m *rule.Match) ([]token.Token, error)
}

// ActionFunc adapts a function to the Action interface.
type ActionFunc func(m *rule.Match) ([]token.Token, error)

func (f ActionFunc) Apply(m *rule.Match) ([]token.Token, error) { return f(m) }

// Identity returns an action that keeps the matched tokens as they
// are. Useful when a pass exists only for its side effects on the
// match context, or as a placeholder.
func Identity() Action {
	return ActionFunc(func(m *rule.Match) ([]token.Token, error) {
		return m.Tokens, nil
	})
}
