package ruleset

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gnolang/tokre/rewrite"
	"github.com/gnolang/tokre/rule"
	"github.com/gnolang/tokre/token"
)

// compiler interns group definitions so every rule that names the same
// group category shares one token.Definition.
type compiler struct {
	defs map[string]token.Definition
}

func newCompiler() *compiler {
	return &compiler{defs: make(map[string]token.Definition)}
}

func (c *compiler) definition(name string) token.Definition {
	if def, ok := c.defs[name]; ok {
		return def
	}
	def := token.Define(name, func(string) bool { return true })
	c.defs[name] = def
	return def
}

// kinds lists which node fields are set, for exactly-one validation.
func (n Node) kinds() []string {
	var set []string
	add := func(name string, ok bool) {
		if ok {
			set = append(set, name)
		}
	}
	add("value", n.Value != nil)
	add("value_fold", n.ValueFold != nil)
	add("pattern", n.Pattern != nil)
	add("any", n.Any)
	add("seq", n.Seq != nil)
	add("choice", n.Choice != nil)
	add("not", n.Not != nil)
	add("optional", n.Optional != nil)
	add("repeat", n.Repeat != nil)
	add("at_least", n.AtLeast != nil)
	add("at_most", n.AtMost != nil)
	add("exactly", n.Exactly != nil)
	add("lookahead", n.Lookahead != nil)
	add("negative_lookahead", n.NegativeLookahead != nil)
	add("lookbehind", n.Lookbehind != nil)
	add("negative_lookbehind", n.NegativeLookbehind != nil)
	add("group", n.Group != nil)
	add("capture", n.Capture != nil)
	add("ref", n.Ref != "")
	return set
}

func (c *compiler) compileNode(n Node) (rule.Rule, error) {
	switch set := n.kinds(); {
	case len(set) == 0:
		return nil, fmt.Errorf("empty match node")
	case len(set) > 1:
		return nil, fmt.Errorf("ambiguous match node: %s", strings.Join(set, ", "))
	}

	switch {
	case n.Value != nil:
		return rule.Value(*n.Value), nil
	case n.ValueFold != nil:
		return rule.ValueFold(*n.ValueFold), nil
	case n.Pattern != nil:
		// Compile eagerly so a bad expression is a load error, not a
		// panic out of rule.Pattern.
		if _, err := regexp.Compile(*n.Pattern); err != nil {
			return nil, fmt.Errorf("pattern: %w", err)
		}
		return rule.Pattern(*n.Pattern), nil
	case n.Any:
		return rule.Any(), nil
	case n.Seq != nil:
		children, err := c.compileNodes(n.Seq)
		if err != nil {
			return nil, fmt.Errorf("seq: %w", err)
		}
		if len(children) == 0 {
			return nil, fmt.Errorf("seq: needs at least one child")
		}
		return rule.Seq(children...), nil
	case n.Choice != nil:
		children, err := c.compileNodes(n.Choice)
		if err != nil {
			return nil, fmt.Errorf("choice: %w", err)
		}
		if len(children) == 0 {
			return nil, fmt.Errorf("choice: needs at least one child")
		}
		return rule.Choice(children...), nil
	case n.Not != nil:
		inner, err := c.compileNode(*n.Not)
		if err != nil {
			return nil, fmt.Errorf("not: %w", err)
		}
		neg, ok := inner.(rule.Negatable)
		if !ok {
			return nil, fmt.Errorf("not: %s cannot be negated", inner)
		}
		return neg.Negate(), nil
	case n.Optional != nil:
		inner, err := c.compileNode(*n.Optional)
		if err != nil {
			return nil, fmt.Errorf("optional: %w", err)
		}
		return rule.Optional(inner), nil
	case n.Repeat != nil:
		return c.compileRepeat(*n.Repeat)
	case n.AtLeast != nil:
		inner, err := c.compileCount(*n.AtLeast, "at_least")
		if err != nil {
			return nil, err
		}
		return rule.AtLeast(inner, n.AtLeast.N), nil
	case n.AtMost != nil:
		inner, err := c.compileCount(*n.AtMost, "at_most")
		if err != nil {
			return nil, err
		}
		return rule.AtMost(inner, n.AtMost.N), nil
	case n.Exactly != nil:
		inner, err := c.compileCount(*n.Exactly, "exactly")
		if err != nil {
			return nil, err
		}
		return rule.Exactly(inner, n.Exactly.N), nil
	case n.Lookahead != nil:
		inner, err := c.compileNode(*n.Lookahead)
		if err != nil {
			return nil, fmt.Errorf("lookahead: %w", err)
		}
		return rule.Lookahead(inner), nil
	case n.NegativeLookahead != nil:
		inner, err := c.compileNode(*n.NegativeLookahead)
		if err != nil {
			return nil, fmt.Errorf("negative_lookahead: %w", err)
		}
		return rule.NegativeLookahead(inner), nil
	case n.Lookbehind != nil:
		inner, err := c.compileNode(*n.Lookbehind)
		if err != nil {
			return nil, fmt.Errorf("lookbehind: %w", err)
		}
		return rule.Lookbehind(inner), nil
	case n.NegativeLookbehind != nil:
		inner, err := c.compileNode(*n.NegativeLookbehind)
		if err != nil {
			return nil, fmt.Errorf("negative_lookbehind: %w", err)
		}
		return rule.NegativeLookbehind(inner), nil
	case n.Group != nil:
		if n.Group.As == "" {
			return nil, fmt.Errorf("group: missing 'as' name")
		}
		inner, err := c.compileNode(n.Group.Of)
		if err != nil {
			return nil, fmt.Errorf("group: %w", err)
		}
		return rule.Group(inner, c.definition(n.Group.As)), nil
	case n.Capture != nil:
		if n.Capture.As == "" {
			return nil, fmt.Errorf("capture: missing 'as' name")
		}
		inner, err := c.compileNode(n.Capture.Of)
		if err != nil {
			return nil, fmt.Errorf("capture: %w", err)
		}
		return rule.Capture(inner, n.Capture.As), nil
	default: // n.Ref != ""
		return rule.Ref(n.Ref), nil
	}
}

func (c *compiler) compileNodes(nodes []Node) ([]rule.Rule, error) {
	out := make([]rule.Rule, len(nodes))
	for i, n := range nodes {
		r, err := c.compileNode(n)
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
		out[i] = r
	}
	return out, nil
}

func (c *compiler) compileRepeat(n RepeatNode) (rule.Rule, error) {
	if n.Min < 0 {
		return nil, fmt.Errorf("repeat: negative min %d", n.Min)
	}
	max := rule.Unbounded
	if n.Max != nil {
		max = *n.Max
		if max < n.Min {
			return nil, fmt.Errorf("repeat: max %d below min %d", max, n.Min)
		}
	}
	if n.Min == 0 && max == 0 {
		return nil, fmt.Errorf("repeat: bounds [0, 0] match nothing")
	}
	inner, err := c.compileNode(n.Of)
	if err != nil {
		return nil, fmt.Errorf("repeat: %w", err)
	}
	return rule.Repeat(inner, n.Min, max), nil
}

func (c *compiler) compileCount(n CountNode, kind string) (rule.Rule, error) {
	if n.N < 0 {
		return nil, fmt.Errorf("%s: negative count %d", kind, n.N)
	}
	inner, err := c.compileNode(n.Of)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	return inner, nil
}

func (c *compiler) compileAction(n *ActionNode) (rewrite.Action, error) {
	if n == nil {
		return rewrite.Identity(), nil
	}

	var set []string
	if n.Identity {
		set = append(set, "identity")
	}
	if n.Group != "" {
		set = append(set, "group")
	}
	if n.Annotate != nil {
		set = append(set, "annotate")
	}
	if n.Shade {
		set = append(set, "shade")
	}
	if n.Drop {
		set = append(set, "drop")
	}

	switch {
	case len(set) == 0:
		return rewrite.Identity(), nil
	case len(set) > 1:
		return nil, fmt.Errorf("ambiguous action: %s", strings.Join(set, ", "))
	}

	switch {
	case n.Identity:
		return rewrite.Identity(), nil
	case n.Group != "":
		return rewrite.GroupAs(c.definition(n.Group)), nil
	case n.Annotate != nil:
		return rewrite.AnnotateWith(n.Annotate), nil
	case n.Shade:
		return rewrite.Shade(), nil
	default: // n.Drop
		return rewrite.Drop(), nil
	}
}
