package rewrite

import (
	"github.com/gnolang/tokre/token"
)

// Transformer is a whole-stream pass applied after rewriting, mapping
// a token slice to a new token slice.
type Transformer interface {
	Transform(toks []token.Token) []token.Token
}

// TransformerFunc adapts a function to the Transformer interface.
type TransformerFunc func(toks []token.Token) []token.Token

func (f TransformerFunc) Transform(toks []token.Token) []token.Token { return f(toks) }

// Filter returns a transformer keeping only tokens for which pred is
// true. Panics on a nil predicate.
func Filter(pred func(token.Token) bool) Transformer {
	if pred == nil {
		panic("rewrite: nil filter predicate")
	}
	return TransformerFunc(func(toks []token.Token) []token.Token {
		out := make([]token.Token, 0, len(toks))
		for _, t := range toks {
			if pred(t) {
				out = append(out, t)
			}
		}
		return out
	})
}

// DropShadowed returns a transformer removing every shadowed token.
// It is the consuming end of the shadow marker: a Shade action hides
// tokens, DropShadowed deletes them.
func DropShadowed() Transformer {
	return Filter(func(t token.Token) bool {
		return !token.IsShadowed(t)
	})
}

// FlattenGroups returns a transformer replacing every group token with
// its members, recursively, so no groups remain in the output.
func FlattenGroups() Transformer {
	return TransformerFunc(flattenGroups)
}

func flattenGroups(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if grp, ok := t.(*token.Group); ok {
			out = append(out, flattenGroups(grp.Members())...)
			continue
		}
		out = append(out, t)
	}
	return out
}

// Chain returns a transformer applying each given transformer in
// order.
func Chain(ts ...Transformer) Transformer {
	return TransformerFunc(func(toks []token.Token) []token.Token {
		for _, tr := range ts {
			toks = tr.Transform(toks)
		}
		return toks
	})
}
