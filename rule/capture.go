package rule

import (
	"fmt"

	"github.com/gnolang/tokre/stream"
	"github.com/gnolang/tokre/token"
)

// CaptureRule matches its inner rule and binds the matched tokens to a
// name in the match context.
type CaptureRule struct {
	inner Rule
	name  string
}

// Capture returns a rule that matches inner and records the matched
// tokens under name. Panics on an empty name.
func Capture(inner Rule, name string) *CaptureRule {
	if name == "" {
		panic("rule: empty capture name")
	}
	return &CaptureRule{inner: inner, name: name}
}

// Match binds into the context on success and returns the inner match
// unchanged. Panics when mc is nil: captures are meaningless without a
// context to write into.
func (r *CaptureRule) Match(ts *stream.Mutable, mc *Context) *Match {
	if mc == nil {
		panic("rule: capture requires a non-nil context")
	}
	m := r.inner.Match(ts, mc)
	if m == nil {
		return nil
	}
	mc.Bind(r.name, m.Tokens)
	return m
}

func (r *CaptureRule) String() string {
	return fmt.Sprintf("capture(%s, %q)", describe(r.inner), r.name)
}

// ReferenceRule matches the token values previously bound to a name,
// in order and case-sensitively.
type ReferenceRule struct {
	name string
}

// Ref returns a rule matching a repetition of an earlier capture: the
// next tokens must carry the same values, in the same order, as the
// tokens bound under name. An unbound name is a plain no-match. An
// empty binding matches zero-width.
func Ref(name string) *ReferenceRule {
	if name == "" {
		panic("rule: empty reference name")
	}
	return &ReferenceRule{name: name}
}

func (r *ReferenceRule) Match(ts *stream.Mutable, mc *Context) *Match {
	if mc == nil {
		panic("rule: reference requires a non-nil context")
	}
	bound, ok := mc.Binding(r.name)
	if !ok {
		return nil
	}
	start := ts.Index()
	consumed := make([]token.Token, 0, len(bound))
	for _, want := range bound {
		if !ts.HasMore() || ts.Current().Value() != want.Value() {
			ts.SetIndex(start)
			return nil
		}
		consumed = append(consumed, ts.Advance())
	}
	return &Match{Start: start, End: ts.Index(), Tokens: consumed, Rule: r}
}

func (r *ReferenceRule) String() string {
	return fmt.Sprintf("ref(%q)", r.name)
}
