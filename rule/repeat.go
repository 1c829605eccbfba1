package rule

import (
	"fmt"

	"github.com/gnolang/tokre/stream"
	"github.com/gnolang/tokre/token"
)

// Unbounded marks a repetition with no upper limit.
const Unbounded = -1

// RepeatRule matches its inner rule between min and max times,
// greedily. Matching stops at the first inner miss or once max
// iterations have been taken; the whole rule fails only when fewer
// than min iterations succeeded.
//
// A zero-width inner success ends the loop after being counted once,
// so an unbounded repetition over an assertion or an optional cannot
// spin forever.
type RepeatRule struct {
	inner   Rule
	min     int
	max     int
	indexed bool
}

// Repeat returns a rule matching inner at least min and at most max
// times. Pass Unbounded as max for no upper limit. Panics when min is
// negative, when max is below min, or when both bounds are zero; use
// Exactly for a fixed count, including zero.
func Repeat(inner Rule, min, max int) *RepeatRule {
	if min < 0 {
		panic(fmt.Sprintf("rule: negative repetition minimum %d", min))
	}
	if max != Unbounded && max < min {
		panic(fmt.Sprintf("rule: repetition maximum %d below minimum %d", max, min))
	}
	if min == 0 && max == 0 {
		panic("rule: repetition bounds [0, 0] match nothing; use Exactly(r, 0)")
	}
	return &RepeatRule{inner: inner, min: min, max: max}
}

// ZeroOrMore returns a rule matching inner any number of times,
// including none.
func ZeroOrMore(inner Rule) *RepeatRule {
	return &RepeatRule{inner: inner, min: 0, max: Unbounded}
}

// OneOrMore returns a rule matching inner one or more times.
func OneOrMore(inner Rule) *RepeatRule {
	return &RepeatRule{inner: inner, min: 1, max: Unbounded}
}

// AtLeast returns a rule matching inner n or more times.
func AtLeast(inner Rule, n int) *RepeatRule {
	if n < 0 {
		panic(fmt.Sprintf("rule: negative repetition minimum %d", n))
	}
	return &RepeatRule{inner: inner, min: n, max: Unbounded}
}

// AtMost returns a rule matching inner up to n times, including none.
func AtMost(inner Rule, n int) *RepeatRule {
	if n < 0 {
		panic(fmt.Sprintf("rule: negative repetition maximum %d", n))
	}
	return &RepeatRule{inner: inner, min: 0, max: n}
}

// Exactly returns a rule matching inner exactly n times. Exactly(r, 0)
// is legal and always succeeds with a zero-width match.
func Exactly(inner Rule, n int) *RepeatRule {
	if n < 0 {
		panic(fmt.Sprintf("rule: negative repetition count %d", n))
	}
	return &RepeatRule{inner: inner, min: n, max: n}
}

// Indexed returns a copy of the rule that wraps every matched token in
// an index decorator recording which iteration produced it.
func (r *RepeatRule) Indexed() *RepeatRule {
	cp := *r
	cp.indexed = true
	return &cp
}

func (r *RepeatRule) Match(ts *stream.Mutable, mc *Context) *Match {
	start := ts.Index()
	consumed := []token.Token{}
	count := 0
	for r.max == Unbounded || count < r.max {
		iterStart := ts.Index()
		m := r.inner.Match(ts, mc)
		if m == nil {
			ts.SetIndex(iterStart)
			break
		}
		toks := m.Tokens
		if r.indexed {
			wrapped := make([]token.Token, len(toks))
			for i, t := range toks {
				wrapped[i] = token.NewIndexed(t, count)
			}
			toks = wrapped
		}
		consumed = append(consumed, toks...)
		count++
		if ts.Index() == iterStart {
			break
		}
	}
	if count < r.min {
		ts.SetIndex(start)
		return nil
	}
	return &Match{Start: start, End: ts.Index(), Tokens: consumed, Rule: r}
}

func (r *RepeatRule) String() string {
	bounds := fmt.Sprintf("{%d,%d}", r.min, r.max)
	if r.max == Unbounded {
		bounds = fmt.Sprintf("{%d,}", r.min)
	}
	s := "repeat(" + describe(r.inner) + ")" + bounds
	if r.indexed {
		s += "#"
	}
	return s
}
