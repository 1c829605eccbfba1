package tokre

import (
	"github.com/gnolang/tokre/rewrite"
	"github.com/gnolang/tokre/rule"
	"github.com/gnolang/tokre/stream"
	"github.com/gnolang/tokre/token"
)

// FindAll returns every leftmost, non-overlapping match of r in toks,
// in stream order. Match attempts start at each token position; after
// a zero-width match the scan advances one token so it always makes
// progress.
func (e *Engine) FindAll(toks []token.Token, r rule.Rule) []*rule.Match {
	ts := stream.NewMutable(toks)
	var out []*rule.Match
	for ts.HasMore() {
		start := ts.Index()
		m := r.Match(ts, rule.NewContext())
		if m == nil {
			ts.SetIndex(start + 1)
			continue
		}
		out = append(out, m)
		if ts.Index() == start {
			ts.SetIndex(start + 1)
		}
	}
	return out
}

// Find returns the first match of r in toks, or nil when there is
// none.
func (e *Engine) Find(toks []token.Token, r rule.Rule) *rule.Match {
	ts := stream.NewMutable(toks)
	for ts.HasMore() {
		start := ts.Index()
		if m := r.Match(ts, rule.NewContext()); m != nil {
			return m
		}
		ts.SetIndex(start + 1)
	}
	return nil
}

// Split cuts toks around every non-overlapping match of sep,
// discarding the separators. Adjacent separators produce empty
// segments; a zero-width separator match is ignored.
func (e *Engine) Split(toks []token.Token, sep rule.Rule) [][]token.Token {
	ts := stream.NewMutable(toks)
	out := [][]token.Token{}
	segment := []token.Token{}
	for ts.HasMore() {
		start := ts.Index()
		m := sep.Match(ts, rule.NewContext())
		if m == nil || ts.Index() == start {
			ts.SetIndex(start)
			segment = append(segment, ts.Advance())
			continue
		}
		out = append(out, segment)
		segment = []token.Token{}
	}
	return append(out, segment)
}

// FindAll is the package-level form of Engine.FindAll.
func FindAll(toks []token.Token, r rule.Rule) []*rule.Match {
	return New().FindAll(toks, r)
}

// Find is the package-level form of Engine.Find.
func Find(toks []token.Token, r rule.Rule) *rule.Match {
	return New().Find(toks, r)
}

// Rewrite applies a single anonymous pass over toks.
func Rewrite(toks []token.Token, r rule.Rule, action rewrite.Action) ([]token.Token, error) {
	e := New(WithPass(Pass{Name: "rewrite", Rule: r, Action: action}))
	return e.Rewrite(toks)
}

// Split is the package-level form of Engine.Split.
func Split(toks []token.Token, sep rule.Rule) [][]token.Token {
	return New().Split(toks, sep)
}
