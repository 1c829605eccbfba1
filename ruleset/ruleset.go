// Package ruleset loads rewrite passes from YAML. A rule file names
// each pass, describes its match rule as a tree of nodes, and picks
// one of the stock actions:
//
//	rules:
//	  - name: pair
//	    match:
//	      seq:
//	        - pattern: "[A-Za-z_]+"
//	        - value: ":"
//	        - any: true
//	    action:
//	      group: pair
//
// Unlike the rule constructors, which panic on bad arguments, the
// loader validates everything and returns errors: rule files are
// data, not code.
package ruleset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gnolang/tokre"
)

// Config is the top-level YAML document.
type Config struct {
	Rules []RewriteRule `yaml:"rules"`
}

// RewriteRule is one named pass: a match tree plus an optional action.
// A missing action defaults to identity.
type RewriteRule struct {
	Name   string      `yaml:"name"`
	Match  Node        `yaml:"match"`
	Action *ActionNode `yaml:"action,omitempty"`
}

// Node describes one node of a match tree. Exactly one of its fields
// may be set; the field chooses the rule kind.
type Node struct {
	Value     *string `yaml:"value,omitempty"`
	ValueFold *string `yaml:"value_fold,omitempty"`
	Pattern   *string `yaml:"pattern,omitempty"`
	Any       bool    `yaml:"any,omitempty"`

	Seq      []Node `yaml:"seq,omitempty"`
	Choice   []Node `yaml:"choice,omitempty"`
	Not      *Node  `yaml:"not,omitempty"`
	Optional *Node  `yaml:"optional,omitempty"`

	Repeat  *RepeatNode `yaml:"repeat,omitempty"`
	AtLeast *CountNode  `yaml:"at_least,omitempty"`
	AtMost  *CountNode  `yaml:"at_most,omitempty"`
	Exactly *CountNode  `yaml:"exactly,omitempty"`

	Lookahead          *Node `yaml:"lookahead,omitempty"`
	NegativeLookahead  *Node `yaml:"negative_lookahead,omitempty"`
	Lookbehind         *Node `yaml:"lookbehind,omitempty"`
	NegativeLookbehind *Node `yaml:"negative_lookbehind,omitempty"`

	Group   *GroupNode   `yaml:"group,omitempty"`
	Capture *CaptureNode `yaml:"capture,omitempty"`
	Ref     string       `yaml:"ref,omitempty"`
}

// RepeatNode bounds a repetition. A missing max means unbounded.
type RepeatNode struct {
	Of  Node `yaml:"of"`
	Min int  `yaml:"min"`
	Max *int `yaml:"max,omitempty"`
}

// CountNode is the single-count form used by at_least, at_most and
// exactly.
type CountNode struct {
	Of Node `yaml:"of"`
	N  int  `yaml:"n"`
}

// GroupNode collapses the inner rule's tokens into a group named As.
type GroupNode struct {
	Of Node   `yaml:"of"`
	As string `yaml:"as"`
}

// CaptureNode binds the inner rule's tokens to the context name As.
type CaptureNode struct {
	Of Node   `yaml:"of"`
	As string `yaml:"as"`
}

// ActionNode picks the pass action. Exactly one field may be set; a
// nil ActionNode means identity.
type ActionNode struct {
	Identity bool           `yaml:"identity,omitempty"`
	Group    string         `yaml:"group,omitempty"`
	Annotate map[string]any `yaml:"annotate,omitempty"`
	Shade    bool           `yaml:"shade,omitempty"`
	Drop     bool           `yaml:"drop,omitempty"`
}

// Load reads a YAML rule file and compiles it into rewrite passes.
func Load(path string) ([]tokre.Pass, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	passes, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return passes, nil
}

// Parse compiles a YAML document into rewrite passes.
func Parse(data []byte) ([]tokre.Pass, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("ruleset: %w", err)
	}
	return Compile(cfg)
}

// Compile turns an already unmarshaled Config into rewrite passes.
func Compile(cfg Config) ([]tokre.Pass, error) {
	c := newCompiler()
	passes := make([]tokre.Pass, 0, len(cfg.Rules))
	for i, rr := range cfg.Rules {
		if rr.Name == "" {
			return nil, fmt.Errorf("ruleset: rule %d: missing name", i)
		}
		r, err := c.compileNode(rr.Match)
		if err != nil {
			return nil, fmt.Errorf("ruleset: rule %q: %w", rr.Name, err)
		}
		action, err := c.compileAction(rr.Action)
		if err != nil {
			return nil, fmt.Errorf("ruleset: rule %q: %w", rr.Name, err)
		}
		passes = append(passes, tokre.Pass{Name: rr.Name, Rule: r, Action: action})
	}
	return passes, nil
}
