package token

import (
	"errors"
	"strings"
)

// ErrEmptyGroup is returned when a Group is constructed from zero
// tokens: an empty group has no value and no span to report.
var ErrEmptyGroup = errors.New("token: group requires at least one member")

// Group is a composite token: an ordered, non-empty list of member
// tokens collapsed under a single definition. Its value is the
// concatenation of the member values, its span runs from the first
// member's start to the last member's end.
type Group struct {
	def     Definition
	members []Token
	value   string
}

var _ Token = (*Group)(nil)

// NewGroup builds a group from one or more members. It returns
// ErrEmptyGroup when no members are given.
func NewGroup(def Definition, members ...Token) (*Group, error) {
	if len(members) == 0 {
		return nil, ErrEmptyGroup
	}
	owned := make([]Token, len(members))
	copy(owned, members)

	var value strings.Builder
	for _, m := range owned {
		value.WriteString(m.Value())
	}
	return &Group{def: def, members: owned, value: value.String()}, nil
}

// MustGroup is like NewGroup but panics on zero members. It is intended
// for call sites that have already established the member list is
// non-empty, such as the group rule wrapper.
func MustGroup(def Definition, members ...Token) *Group {
	g, err := NewGroup(def, members...)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Group) Definition() Definition { return g.def }
func (g *Group) Value() string          { return g.value }
func (g *Group) Start() Position        { return g.members[0].Start() }
func (g *Group) End() Position          { return g.members[len(g.members)-1].End() }

// Members returns the member tokens in order. The returned slice must
// be treated as read-only.
func (g *Group) Members() []Token { return g.members }

// Len returns the number of member tokens.
func (g *Group) Len() int { return len(g.members) }
