package scad

import "iter"

// Scope is a transparent grouping container. It emits no syntax of its own;
// a root Scope renders the hoisted module definitions followed by its
// children.
type Scope struct {
	group
}

// NewScope returns an empty, unopened scope.
func NewScope() *Scope { return &Scope{} }

// Lines yields each registered module's text, then each child's text.
func (s *Scope) Lines() iter.Seq[string] { return s.body(true) }

// Gen returns the scope's text.
func (s *Scope) Gen() string { return gen(s) }

func (s *Scope) String() string { return "scope" }

func (s *Scope) register(m *Module) { s.registerIn(s, m) }

func (s *Scope) enter(current Container) Container {
	s.open(s, current)

	return s
}
