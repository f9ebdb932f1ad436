package scad

import "iter"

// Operation is a named container rendered as name(args) { ... }.
type Operation struct {
	group

	name string
	args Args
}

// Name returns the operation's OpenSCAD name.
func (o *Operation) Name() string { return o.name }

// Args returns the captured argument list.
func (o *Operation) Args() Args { return o.args }

// Lines yields the header, each child's text, and the closing brace.
func (o *Operation) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		pad := indent(o.Depth())

		if !yield(pad + Decl(o.name, o.args) + " {") {
			return
		}

		for line := range o.body(false) {
			if !yield(line) {
				return
			}
		}

		yield(pad + "}")
	}
}

// Gen returns the operation's text.
func (o *Operation) Gen() string { return gen(o) }

func (o *Operation) String() string {
	return "operation " + Decl(o.name, o.args)
}

// Chain returns a [Chain] with next as the sole child of o.
func (o *Operation) Chain(next *Operation) *Chain { return NewChain(o, next) }

func (o *Operation) register(m *Module) { o.registerIn(o, m) }

func (o *Operation) enter(current Container) Container {
	o.open(o, current)

	return o
}
