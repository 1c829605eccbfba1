package token

import (
	"fmt"
	"regexp"
)

// Definition describes a category of tokens as a predicate over their
// textual value. A Definition serves two roles: it is the category a
// Token claims for itself, and it is a match criterion for rules that
// select tokens by kind rather than by concrete value.
type Definition interface {
	// Matches reports whether a token value belongs to this category.
	Matches(value string) bool

	// String returns the category name, used in diagnostics and when
	// rendering tokens.
	String() string
}

type definition struct {
	name    string
	matches func(string) bool
}

func (d *definition) Matches(value string) bool { return d.matches(value) }
func (d *definition) String() string            { return d.name }

// Define creates a Definition from an arbitrary predicate.
func Define(name string, matches func(value string) bool) Definition {
	if matches == nil {
		panic(fmt.Errorf("token: definition %q has no predicate", name))
	}
	return &definition{name: name, matches: matches}
}

// DefineExact creates a Definition matched by exactly one literal value.
func DefineExact(name, literal string) Definition {
	return &definition{name: name, matches: func(v string) bool { return v == literal }}
}

// DefinePattern creates a Definition whose values must fully match the
// given regular expression. It panics if the expression does not compile,
// mirroring regexp.MustCompile: definitions are built at setup time and a
// malformed pattern is a programmer error.
func DefinePattern(name, expr string) Definition {
	re := regexp.MustCompile(`\A(?:` + expr + `)\z`)
	return &definition{name: name, matches: re.MatchString}
}
