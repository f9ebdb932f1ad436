package scad

import (
	"iter"
	"log/slog"
	"slices"
)

// Module is a named reusable scope. Its definition is hoisted to the root of
// whichever tree calls it; each call emits name(args); at the call site.
//
// Module parameters are not supported; the definition header is always
// module name().
type Module struct {
	group

	name string
}

// Name returns the module's name.
func (m *Module) Name() string { return m.name }

// Call inserts a call statement into the current scope of b and registers m,
// followed by every module m itself has registered, with the root of that
// scope.
//
// A module called while another module's body is open is registered with
// that module, and reaches the root only once the enclosing module is called
// from a rooted scope.
func (m *Module) Call(b *Builder, args ...any) error {
	current := b.current
	if current == nil {
		return ErrMissingContext.With(slog.String("module", m.name))
	}

	call := &Object{name: m.name, args: MakeArgs(args...)}
	call.parent = current
	current.add(call)

	current.register(m)

	for _, dep := range slices.Clone(m.modules) {
		current.register(dep)
	}

	b.log.Trace("module call",
		slog.String("module", m.name),
		slog.Int("depth", call.Depth()),
		slog.Int("dependencies", len(m.modules)),
	)

	return nil
}

// Lines yields the definition header, each child's text, and the closing
// brace. Modules registered with m are not emitted here; they are emitted by
// the root that m is registered with.
func (m *Module) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		pad := indent(m.Depth())

		if !yield(pad + "module " + m.name + "() {") {
			return
		}

		for line := range m.body(false) {
			if !yield(line) {
				return
			}
		}

		yield(pad + "}")
	}
}

// Gen returns the module definition's text.
func (m *Module) Gen() string { return gen(m) }

func (m *Module) String() string { return "module " + m.name + "()" }

func (m *Module) register(dep *Module) { m.registerIn(m, dep) }

func (m *Module) enter(current Container) Container {
	m.open(m, current)

	return m
}
