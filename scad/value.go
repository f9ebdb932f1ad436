package scad

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Raw is emitted verbatim, without quoting.
//
// Use it for OpenSCAD special variables and expressions that have no Go
// literal equivalent:
//
//	scad.Cylinder.New(b, scad.Kw("h", 10), scad.Kw("$fn", scad.Raw("$fn")))
type Raw string

// Kwarg is a named argument, rendered as key=value.
type Kwarg struct {
	Key   string
	Value any
}

// Kw returns a named argument.
func Kw(key string, value any) Kwarg {
	return Kwarg{Key: key, Value: value}
}

// String returns the key=value form of the argument.
func (k Kwarg) String() string {
	return k.Key + "=" + FormatValue(k.Value)
}

// Args is an argument list captured at construction.
type Args struct {
	Positional []any
	Named      []Kwarg
}

// MakeArgs partitions vals into positional and named arguments.
//
// Values of type [Kwarg] or []Kwarg are named; everything else is
// positional. Positional arguments always render before named arguments.
// A key given more than once keeps its first position and the last value.
func MakeArgs(vals ...any) Args {
	var args Args

	index := map[string]int{}

	named := func(kw Kwarg) {
		if i, ok := index[kw.Key]; ok {
			args.Named[i].Value = kw.Value

			return
		}

		index[kw.Key] = len(args.Named)
		args.Named = append(args.Named, kw)
	}

	for _, v := range vals {
		switch x := v.(type) {
		case Kwarg:
			named(x)

		case []Kwarg:
			for _, kw := range x {
				named(kw)
			}

		default:
			args.Positional = append(args.Positional, v)
		}
	}

	return args
}

// Len returns the total number of arguments.
func (a Args) Len() int { return len(a.Positional) + len(a.Named) }

// String renders the argument list without enclosing parentheses.
func (a Args) String() string {
	part := make([]string, 0, a.Len())

	for _, v := range a.Positional {
		part = append(part, FormatValue(v))
	}

	for _, kw := range a.Named {
		part = append(part, kw.String())
	}

	return strings.Join(part, ", ")
}

// Decl renders name(args).
func Decl(name string, args Args) string {
	return name + "(" + args.String() + ")"
}

// FormatValue converts a Go value to its OpenSCAD literal form.
//
// Booleans are checked before numbers and render as true/false. Strings are
// double-quoted verbatim. Slices and arrays render as vectors with each
// element converted by the same rules. Nil renders as undef.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "undef"

	case Raw:
		return string(x)

	case bool:
		return strconv.FormatBool(x)

	case string:
		return `"` + x + `"`

	case int:
		return strconv.Itoa(x)

	case float64:
		return formatFloat(x, 64)
	}

	return formatReflect(reflect.ValueOf(v))
}

func formatReflect(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())

	case reflect.String:
		return `"` + rv.String() + `"`

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)

	case reflect.Float32:
		return formatFloat(rv.Float(), 32)

	case reflect.Float64:
		return formatFloat(rv.Float(), 64)

	case reflect.Slice:
		if rv.IsNil() {
			return "[]"
		}

		return formatVector(rv)

	case reflect.Array:
		return formatVector(rv)

	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "undef"
		}

		return FormatValue(rv.Elem().Interface())

	case reflect.Invalid:
		return "undef"
	}

	return fmt.Sprint(rv.Interface())
}

func formatVector(rv reflect.Value) string {
	var sb strings.Builder

	sb.WriteByte('[')

	for i := range rv.Len() {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(FormatValue(rv.Index(i).Interface()))
	}

	sb.WriteByte(']')

	return sb.String()
}

// formatFloat uses the shortest representation that round-trips at the given
// bit size. OpenSCAD has no literals for NaN or infinity, so those are
// written as the divisions that produce them.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "0/0"

	case math.IsInf(f, 1):
		return "1/0"

	case math.IsInf(f, -1):
		return "-1/0"
	}

	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, bitSize)
	}

	return strconv.FormatFloat(f, 'f', -1, bitSize)
}
