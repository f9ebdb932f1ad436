// Package manifest describes OpenSCAD models in YAML and builds them with
// package scad.
//
// # Document
//
// A manifest has four top-level keys, all optional:
//
//	imports: [parts.yaml]
//	vars:
//	  spacing: 100
//	modules:
//	  - name: cylcube
//	    body:
//	      - object: cylinder
//	        args: [20]
//	        kwargs: {r: 20}
//	model:
//	  - call: cylcube
//	  - each: {var: x, in: {expr: "map(1..3, # * spacing)"}}
//	    body:
//	      - operation: translate
//	        args: [{expr: "[x, 0, 0]"}]
//	        body: [{call: cylcube}]
//
// Each node names exactly one of object, operation, chain, call, each or
// scope. Argument values are YAML scalars and sequences, {expr: ...}
// evaluated with github.com/expr-lang/expr against vars and loop variables,
// or {raw: ...} emitted verbatim. Keyword arguments keep their YAML order.
//
// # Imports
//
// Imported files contribute their modules. An import is resolved against
// the importing file's directory, then each directory of the search path
// ([WithSearchPath]). Directories that do not exist are skipped.
package manifest
