package scad

//go:generate go tool stringer --linecomment --type Class

import (
	"iter"
	"slices"
)

// Class distinguishes leaf kinds from operation kinds.
type Class int

const (
	ClassObject    Class = iota // object
	ClassOperation              // operation
)

// Category groups the built-in kinds the way the OpenSCAD manual does.
type Category string

const (
	Category2D        Category = "2d"
	Category3D        Category = "3d"
	CategoryTransform Category = "transform"
	CategoryBoolean   Category = "boolean"
)

// Kind is a named statement kind.
type Kind interface {
	Name() string
	Class() Class
	Category() Category
}

// ObjectKind constructs leaves with a fixed name.
type ObjectKind struct {
	name     string
	category Category
}

// DefineObject returns a leaf kind named name.
func DefineObject(name string) ObjectKind { return ObjectKind{name: name} }

func (k ObjectKind) Name() string       { return k.name }
func (ObjectKind) Class() Class         { return ClassObject }
func (k ObjectKind) Category() Category { return k.category }
func (k ObjectKind) String() string     { return k.name }

// New constructs a leaf of this kind in the current scope of b.
func (k ObjectKind) New(b *Builder, args ...any) (*Object, error) {
	return b.Object(k.name, args...)
}

// OperationKind constructs operations with a fixed name.
type OperationKind struct {
	name     string
	category Category
}

// DefineOperation returns an operation kind named name.
func DefineOperation(name string) OperationKind {
	return OperationKind{name: name}
}

func (k OperationKind) Name() string       { return k.name }
func (OperationKind) Class() Class         { return ClassOperation }
func (k OperationKind) Category() Category { return k.category }
func (k OperationKind) String() string     { return k.name }

// New constructs an operation of this kind. It is attached when opened.
func (k OperationKind) New(b *Builder, args ...any) (*Operation, error) {
	return b.Operation(k.name, args...)
}

// Do constructs an operation of this kind and runs body with it open.
func (k OperationKind) Do(b *Builder, body func() error, args ...any) error {
	op, err := k.New(b, args...)
	if err != nil {
		return err
	}

	return b.With(op, body)
}

// 2D.
var (
	Circle     = ObjectKind{"circle", Category2D}
	Square     = ObjectKind{"square", Category2D}
	Polygon    = ObjectKind{"polygon", Category2D}
	Text       = ObjectKind{"text", Category2D}
	Projection = OperationKind{"projection", Category2D}
)

// 3D.
var (
	Sphere        = ObjectKind{"sphere", Category3D}
	Cube          = ObjectKind{"cube", Category3D}
	Cylinder      = ObjectKind{"cylinder", Category3D}
	Polyhedron    = ObjectKind{"polyhedron", Category3D}
	LinearExtrude = OperationKind{"linear_extrude", Category3D}
	RotateExtrude = OperationKind{"rotate_extrude", Category3D}
)

// Transformations.
var (
	Translate  = OperationKind{"translate", CategoryTransform}
	Rotate     = OperationKind{"rotate", CategoryTransform}
	Scale      = OperationKind{"scale", CategoryTransform}
	Resize     = OperationKind{"resize", CategoryTransform}
	Mirror     = OperationKind{"mirror", CategoryTransform}
	Multmatrix = OperationKind{"multmatrix", CategoryTransform}
	Color      = OperationKind{"color", CategoryTransform}
	Offset     = OperationKind{"offset", CategoryTransform}
	Hull       = OperationKind{"hull", CategoryTransform}
	Minkowski  = OperationKind{"minkowski", CategoryTransform}
)

// Boolean operations.
var (
	Union        = OperationKind{"union", CategoryBoolean}
	Difference   = OperationKind{"difference", CategoryBoolean}
	Intersection = OperationKind{"intersection", CategoryBoolean}
)

var builtin = []Kind{
	Circle, Square, Polygon, Text, Projection,
	Sphere, Cube, Cylinder, Polyhedron, LinearExtrude, RotateExtrude,
	Translate, Rotate, Scale, Resize, Mirror, Multmatrix, Color, Offset,
	Hull, Minkowski,
	Union, Difference, Intersection,
}

// Catalog yields the built-in kinds grouped by category.
func Catalog() iter.Seq[Kind] { return slices.Values(builtin) }

// Lookup returns the built-in kind named name.
func Lookup(name string) (Kind, bool) {
	i := slices.IndexFunc(builtin, func(k Kind) bool { return k.Name() == name })
	if i < 0 {
		return nil, false
	}

	return builtin[i], true
}
