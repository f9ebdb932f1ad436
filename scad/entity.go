package scad

import (
	"iter"
	"slices"
	"strings"
)

// indentUnit is the indentation emitted per nesting level.
const indentUnit = "  "

// Entity is a node of the model tree.
type Entity interface {
	// Lines yields the node's text line by line. A container yields the
	// complete text of each child as a single (possibly multi-line) element.
	Lines() iter.Seq[string]
	// Gen returns the node's text: Lines joined with "\n".
	Gen() string
	// Depth is 0 for a root, otherwise one more than the parent's depth.
	Depth() int
	// Parent returns the enclosing container, or nil for a root.
	Parent() Container
	// String returns a short description used by the debug dump.
	String() string

	setParent(Container)
}

// Container is an [Entity] that holds children and registers modules.
type Container interface {
	Entity

	// Children returns the child entities in insertion order.
	Children() []Entity
	// Modules returns the registered modules in registration order.
	Modules() []*Module

	add(Entity)
	register(*Module)
}

// node holds the non-owning back-reference every entity carries.
type node struct {
	parent Container
}

func (n *node) Parent() Container { return n.parent }

func (n *node) setParent(p Container) { n.parent = p }

func (n *node) Depth() int {
	if n.parent == nil {
		return 0
	}

	return n.parent.Depth() + 1
}

// indent returns the leading whitespace for a node at the given depth.
func indent(depth int) string {
	return strings.Repeat(indentUnit, max(depth-1, 0))
}

func gen(e Entity) string {
	return strings.Join(slices.Collect(e.Lines()), "\n")
}

// group is the state shared by every container: ordered children and the
// module registry.
type group struct {
	node

	children []Entity
	modules  []*Module
}

func (g *group) Children() []Entity { return g.children }

func (g *group) Modules() []*Module { return g.modules }

func (g *group) add(e Entity) { g.children = append(g.children, e) }

// open parents self to current and attaches it there.
func (g *group) open(self, current Container) {
	g.parent = current
	if current != nil {
		current.add(self)
	}
}

// registerIn bubbles m up to the root container and appends it there unless
// a module of the same name is already registered. self is the concrete
// container embedding g.
func (g *group) registerIn(self Container, m *Module) {
	if g.parent != nil {
		g.parent.register(m)

		return
	}

	// self has no parent here, so this only catches a module being
	// registered into itself.
	if x, ok := self.(*Module); ok && x == m {
		return
	}

	if slices.ContainsFunc(g.modules, func(r *Module) bool {
		return r.name == m.name
	}) {
		return
	}

	g.modules = append(g.modules, m)
	m.setParent(self)
}

// body yields the text of each module then each child.
func (g *group) body(withModules bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		if withModules {
			for _, m := range g.modules {
				if !yield(m.Gen()) {
					return
				}
			}
		}

		for _, c := range g.children {
			if !yield(c.Gen()) {
				return
			}
		}
	}
}
