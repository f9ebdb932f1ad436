// Package scad builds OpenSCAD source text from a tree of nested scopes.
//
// # Overview
//
// A [Builder] tracks the currently open scope. Objects and operations
// constructed through the builder attach themselves to that scope, so model
// code reads like the OpenSCAD it produces:
//
//	b := scad.NewBuilder()
//	model := scad.NewScope()
//
//	err := b.With(model, func() error {
//		_, err := scad.Cube.New(b, scad.Kw("size", []int{10, 10, 10}))
//		if err != nil {
//			return err
//		}
//
//		return scad.Translate.Do(b, func() error {
//			_, err := scad.Sphere.New(b, scad.Kw("r", 5))
//			return err
//		}, []int{20, 0, 0})
//	})
//
//	fmt.Println(model.Gen())
//
// # Entities
//
// Every node implements [Entity]. Containers ([Scope], [Operation],
// [Module]) hold children in insertion order and a registry of modules.
// [Object] is a leaf rendered as a single terminated statement.
//
// # Modules
//
// A [Module] is a named scope that is emitted once at the root of the tree,
// before any other child, no matter how many times it is called. Calling a
// module inserts a call statement into the current scope and registers the
// module (and every module it calls) with the root. Registration order at
// the root is first-call order.
//
// # Chains
//
// [Operation.Chain] collapses a sequence of single-child operations:
//
//	a, _ := scad.Translate.New(b, []int{1, 1, 1})
//	r, _ := scad.Rotate.New(b, []int{0, 0, 45})
//	err := b.With(a.Chain(r), body)
//
// produces the same text as opening a and then r explicitly.
//
// # Output
//
// [Entity.Gen] joins lines with "\n" and appends no trailing newline.
// String arguments are quoted verbatim; embedded quotes and backslashes are
// not escaped.
package scad
