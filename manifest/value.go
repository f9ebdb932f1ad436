package manifest

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"math"
	"reflect"

	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/scadgen/scad"
)

// Value keys recognized in a single-entry mapping.
const (
	exprKey = "expr"
	rawKey  = "raw"
)

// env holds the variables visible to expressions.
type env map[string]any

// bind returns a copy of e with name set to v.
func (e env) bind(name string, v any) env {
	c := maps.Clone(e)
	if c == nil {
		c = env{}
	}

	c[name] = v

	return c
}

// vars evaluates the document variables in order. Each variable may refer to
// the ones before it.
func vars(ctx context.Context, items yaml.MapSlice) (env, error) {
	e := env{}

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := fmt.Sprint(item.Key)

		v, err := e.resolve(item.Value)
		if err != nil {
			return nil, err
		}

		e[name] = v
	}

	return e, nil
}

// resolve converts a decoded YAML value into a value for scad.FormatValue.
func (e env) resolve(v any) (any, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		return e.resolveMap(x)

	case []any:
		out := make([]any, len(x))

		for i, elem := range x {
			r, err := e.resolve(elem)
			if err != nil {
				return nil, err
			}

			out[i] = r
		}

		return out, nil

	case uint64:
		if x <= math.MaxInt64 {
			return int(x), nil
		}

		return x, nil

	case int64:
		return int(x), nil

	default:
		return x, nil
	}
}

func (e env) resolveMap(m yaml.MapSlice) (any, error) {
	if len(m) != 1 {
		return nil, ErrValue.With(slog.Int("keys", len(m)))
	}

	key := fmt.Sprint(m[0].Key)

	src, ok := m[0].Value.(string)
	if !ok {
		return nil, ErrValue.With(
			slog.String("key", key),
			slog.String("type", fmt.Sprintf("%T", m[0].Value)),
		)
	}

	switch key {
	case exprKey:
		return e.eval(src)

	case rawKey:
		return scad.Raw(src), nil

	default:
		return nil, ErrValue.With(slog.String("key", key))
	}
}

// eval compiles and runs src with e as its environment.
func (e env) eval(src string) (any, error) {
	vars := map[string]any(e)
	if vars == nil {
		vars = map[string]any{}
	}

	program, err := expr.Compile(src, expr.Env(vars))
	if err != nil {
		return nil, ErrExpr.With(slog.String("expr", src)).Wrap(err)
	}

	out, err := expr.Run(program, vars)
	if err != nil {
		return nil, ErrExpr.With(slog.String("expr", src)).Wrap(err)
	}

	return out, nil
}

// args resolves a node's positional and keyword arguments into the form
// accepted by scad constructors.
func (e env) args(n Node) ([]any, error) {
	out := make([]any, 0, len(n.Args)+len(n.Kwargs))

	for _, a := range n.Args {
		v, err := e.resolve(a)
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	for _, item := range n.Kwargs {
		v, err := e.resolve(item.Value)
		if err != nil {
			return nil, err
		}

		out = append(out, scad.Kw(fmt.Sprint(item.Key), v))
	}

	return out, nil
}

// sequence returns the elements of a resolved slice or array.
func sequence(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, false
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range rv.Len() {
			out[i] = rv.Index(i).Interface()
		}

		return out, true

	default:
		return nil, false
	}
}
