package scad

import "iter"

// Object is a leaf rendered as a single statement: name(args);
type Object struct {
	node

	name string
	args Args
}

// Name returns the object's OpenSCAD name.
func (o *Object) Name() string { return o.name }

// Args returns the captured argument list.
func (o *Object) Args() Args { return o.args }

// Lines yields exactly one line.
func (o *Object) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		yield(indent(o.Depth()) + Decl(o.name, o.args) + ";")
	}
}

// Gen returns the object's text.
func (o *Object) Gen() string { return gen(o) }

func (o *Object) String() string {
	return "object " + Decl(o.name, o.args)
}
