// Package tokre matches and rewrites streams of lexed tokens with
// composable, regex-like rules.
//
// The rule package supplies the matching algebra, rewrite supplies
// actions and stream transformers, and this package drives them: an
// Engine holds named rewrite passes and runs them over token slices.
// One-shot helpers cover the common cases without constructing an
// Engine.
package tokre

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gnolang/tokre/rewrite"
	"github.com/gnolang/tokre/rule"
	"github.com/gnolang/tokre/stream"
	"github.com/gnolang/tokre/token"
)

// Pass is a named rewrite: wherever Rule matches, Action's output
// replaces the matched tokens.
type Pass struct {
	Name   string
	Rule   rule.Rule
	Action rewrite.Action
}

// Engine runs rewrite passes and stream transformers over token
// slices. Configure it with options at construction; a zero-option
// Engine simply copies its input.
//
// An Engine is immutable after New and safe for concurrent use; every
// call builds its own streams and match contexts.
type Engine struct {
	logger       *zap.Logger
	passes       []Pass
	transformers []rewrite.Transformer
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for per-pass debug output. Without
// it the engine stays silent.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithPass appends a rewrite pass. Passes run in registration order.
func WithPass(p Pass) Option {
	return func(e *Engine) { e.passes = append(e.passes, p) }
}

// WithTransformer appends a whole-stream transformer. Transformers
// run after all passes, in registration order.
func WithTransformer(tr rewrite.Transformer) Option {
	return func(e *Engine) { e.transformers = append(e.transformers, tr) }
}

// New returns an Engine configured by the given options.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rewrite runs every pass over toks in registration order, then the
// transformers, and returns the resulting tokens. The input slice is
// not modified. The first failing action aborts with its error,
// wrapped with the pass name.
func (e *Engine) Rewrite(toks []token.Token) ([]token.Token, error) {
	out := make([]token.Token, len(toks))
	copy(out, toks)

	for _, p := range e.passes {
		rewritten, matches, err := e.runPass(p, out)
		if err != nil {
			return nil, fmt.Errorf("pass %q: %w", p.Name, err)
		}
		if e.logger != nil {
			e.logger.Debug("rewrite pass applied",
				zap.String("pass", p.Name),
				zap.Int("matches", matches),
				zap.Int("tokens_in", len(out)),
				zap.Int("tokens_out", len(rewritten)),
			)
		}
		out = rewritten
	}

	for _, tr := range e.transformers {
		out = tr.Transform(out)
	}
	return out, nil
}

// runPass scans toks left to right. Wherever the pass rule matches,
// the action's replacement is emitted; everything else passes through
// untouched. A zero-width match emits its replacement and then the
// token under the cursor, so the scan always advances.
func (e *Engine) runPass(p Pass, toks []token.Token) ([]token.Token, int, error) {
	ts := stream.NewMutable(toks)
	actx := rewrite.NewContext(p.Action, ts.Freeze())

	out := make([]token.Token, 0, len(toks))
	matches := 0
	for ts.HasMore() {
		start := ts.Index()
		m := p.Rule.Match(ts, rule.NewContext())
		if m == nil {
			ts.SetIndex(start)
			out = append(out, ts.Advance())
			continue
		}
		matches++
		replacement, err := actx.Apply(m)
		if err != nil {
			return nil, matches, err
		}
		out = append(out, replacement...)
		if ts.Index() == start {
			out = append(out, ts.Advance())
		}
	}
	return out, matches, nil
}
