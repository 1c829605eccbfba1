package rewrite

import (
	"github.com/gnolang/tokre/rule"
	"github.com/gnolang/tokre/token"
)

// Convert returns an action applying fn to every matched token.
// Panics on a nil fn.
func Convert(fn func(token.Token) token.Token) Action {
	if fn == nil {
		panic("rewrite: nil convert function")
	}
	return ActionFunc(func(m *rule.Match) ([]token.Token, error) {
		out := make([]token.Token, len(m.Tokens))
		for i, t := range m.Tokens {
			out[i] = fn(t)
		}
		return out, nil
	})
}

// AnnotateWith returns an action attaching metadata to every matched
// token. A token that is already annotated keeps its existing entries
// and gains the new ones, with new values winning on key conflicts.
// This differs from token.Annotate, which leaves annotated tokens
// alone; rewriting is where metadata accumulates.
func AnnotateWith(meta map[string]any) Action {
	return ActionFunc(func(m *rule.Match) ([]token.Token, error) {
		out := make([]token.Token, len(m.Tokens))
		for i, t := range m.Tokens {
			out[i] = mergeAnnotation(t, meta)
		}
		return out, nil
	})
}

func mergeAnnotation(t token.Token, meta map[string]any) token.Token {
	ann, ok := t.(*token.Annotated)
	if !ok {
		return token.NewAnnotated(t, meta)
	}
	merged := ann.Metadata()
	for k, v := range meta {
		merged[k] = v
	}
	return token.NewAnnotated(ann.Unwrap(), merged)
}

// GroupAs returns an action collapsing the whole match into a single
// group token with the given definition. Applying it to an empty match
// fails with ErrEmptyMatch, since a group needs at least one member.
func GroupAs(def token.Definition) Action {
	if def == nil {
		panic("rewrite: nil group definition")
	}
	return ActionFunc(func(m *rule.Match) ([]token.Token, error) {
		if m.Empty() {
			return nil, ErrEmptyMatch
		}
		grp, err := token.NewGroup(def, m.Tokens...)
		if err != nil {
			return nil, err
		}
		return []token.Token{grp}, nil
	})
}

// Shade returns an action wrapping every matched token in the shadow
// marker. Shaded tokens stay in the stream until a DropShadowed
// transformer removes them, so later passes can still see them.
func Shade() Action {
	return Convert(token.Shade)
}

// Drop returns an action replacing the match with nothing.
func Drop() Action {
	return ActionFunc(func(m *rule.Match) ([]token.Token, error) {
		return []token.Token{}, nil
	})
}
