package manifest

import (
	"context"
	"log/slog"

	"github.com/ardnew/scadgen/log"
	"github.com/ardnew/scadgen/scad"
)

// Build defines every module of m and its imports, then builds m's model
// into a new root scope. b must have no open scope.
func (m *Manifest) Build(ctx context.Context, b *scad.Builder) (*scad.Scope, error) {
	if b.Current() != nil {
		return nil, ErrBuilderBusy.With(slog.String("current", b.Current().String()))
	}

	files := m.files()
	modules := map[string]*scad.Module{}
	envs := make([]env, len(files))

	// Every module exists before any body is built, so bodies may call
	// modules declared later or in other files.
	for i, f := range files {
		e, err := vars(ctx, f.Doc.Vars)
		if err != nil {
			return nil, withFile(err, f)
		}

		envs[i] = e

		for _, def := range f.Doc.Modules {
			if _, ok := modules[def.Name]; ok {
				return nil, ErrDuplicateModule.With(
					slog.String("module", def.Name),
					slog.String("file", f.Path),
				)
			}

			modules[def.Name] = b.Module(def.Name)
		}
	}

	for i, f := range files {
		w := walker{b: b, modules: modules, log: m.opts.log}

		for _, def := range f.Doc.Modules {
			err := b.With(modules[def.Name], func() error {
				return w.nodes(ctx, envs[i], def.Body)
			})
			if err != nil {
				return nil, withFile(err, f)
			}
		}
	}

	root := scad.NewScope()
	w := walker{b: b, modules: modules, log: m.opts.log}

	err := b.With(root, func() error {
		return w.nodes(ctx, envs[len(envs)-1], m.Doc.Model)
	})
	if err != nil {
		return nil, withFile(err, m)
	}

	return root, nil
}

// Render builds m with a new builder and returns the generated text.
func (m *Manifest) Render(ctx context.Context) (string, error) {
	b := scad.NewBuilder(scad.WithLogger(m.opts.log))

	root, err := m.Build(ctx, b)
	if err != nil {
		return "", err
	}

	return root.Gen(), nil
}

// Render loads the manifest at path and returns the generated text.
func Render(ctx context.Context, path string, opts ...Option) (string, error) {
	m, err := Load(ctx, path, opts...)
	if err != nil {
		return "", err
	}

	return m.Render(ctx)
}

// files returns m's imports depth-first, each once, followed by m.
func (m *Manifest) files() []*Manifest {
	var (
		out  []*Manifest
		seen = map[*Manifest]bool{}
		add  func(*Manifest)
	)

	add = func(f *Manifest) {
		if seen[f] {
			return
		}

		seen[f] = true

		for _, imp := range f.Imports {
			add(imp)
		}

		out = append(out, f)
	}

	add(m)

	return out
}

func withFile(err error, m *Manifest) error {
	if m.Path == "" {
		return err
	}

	return scad.WrapError(err).With(slog.String("file", m.Path))
}

// walker builds nodes into the current scope of b.
type walker struct {
	b       *scad.Builder
	modules map[string]*scad.Module
	log     log.Logger
}

func (w walker) nodes(ctx context.Context, e env, nodes []Node) error {
	for _, n := range nodes {
		if err := w.node(ctx, e, n); err != nil {
			return err
		}
	}

	return nil
}

func (w walker) node(ctx context.Context, e env, n Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	kind, err := n.Kind()
	if err != nil {
		return err
	}

	switch kind {
	case "object":
		return w.object(ctx, e, n)
	case "operation":
		return w.operation(ctx, e, n)
	case "chain":
		return w.chain(ctx, e, n)
	case "call":
		return w.call(e, n)
	case "each":
		return w.each(ctx, e, n)
	default:
		return w.b.With(scad.NewScope(), func() error {
			return w.nodes(ctx, e, n.Body)
		})
	}
}

func (w walker) object(ctx context.Context, e env, n Node) error {
	if len(n.Body) > 0 {
		return ErrNodeBody.With(slog.String("object", n.Object))
	}

	w.check(ctx, n.Object, scad.ClassObject)

	args, err := e.args(n)
	if err != nil {
		return err
	}

	_, err = w.b.Object(n.Object, args...)

	return err
}

func (w walker) operation(ctx context.Context, e env, n Node) error {
	op, err := w.newOperation(ctx, e, n)
	if err != nil {
		return err
	}

	return w.b.With(op, func() error { return w.nodes(ctx, e, n.Body) })
}

func (w walker) newOperation(ctx context.Context, e env, n Node) (*scad.Operation, error) {
	w.check(ctx, n.Operation, scad.ClassOperation)

	args, err := e.args(n)
	if err != nil {
		return nil, err
	}

	return w.b.Operation(n.Operation, args...)
}

func (w walker) chain(ctx context.Context, e env, n Node) error {
	links := make([]*scad.Operation, 0, len(n.Chain))

	for _, link := range n.Chain {
		if kind, _ := link.Kind(); kind != "operation" || len(link.Body) > 0 {
			return ErrChainLink.With(slog.Int("link", len(links)))
		}

		op, err := w.newOperation(ctx, e, link)
		if err != nil {
			return err
		}

		links = append(links, op)
	}

	if len(links) == 1 {
		return w.b.With(links[0], func() error { return w.nodes(ctx, e, n.Body) })
	}

	c := links[0].Chain(links[1])
	for _, op := range links[2:] {
		c = c.Then(op)
	}

	return w.b.With(c, func() error { return w.nodes(ctx, e, n.Body) })
}

func (w walker) call(e env, n Node) error {
	if len(n.Body) > 0 {
		return ErrNodeBody.With(slog.String("call", n.Call))
	}

	m, ok := w.modules[n.Call]
	if !ok {
		return ErrUnknownModule.With(slog.String("module", n.Call))
	}

	args, err := e.args(n)
	if err != nil {
		return err
	}

	return m.Call(w.b, args...)
}

func (w walker) each(ctx context.Context, e env, n Node) error {
	in, err := e.resolve(n.Each.In)
	if err != nil {
		return err
	}

	elems, ok := sequence(in)
	if !ok {
		return ErrEach.With(slog.String("var", n.Each.Var))
	}

	for _, v := range elems {
		if err := w.nodes(ctx, e.bind(n.Each.Var, v), n.Body); err != nil {
			return err
		}
	}

	return nil
}

// check logs names that are not built-in kinds of the expected class.
func (w walker) check(ctx context.Context, name string, class scad.Class) {
	k, ok := scad.Lookup(name)

	switch {
	case !ok:
		w.log.DebugContext(ctx, "unknown kind",
			slog.String("name", name),
			slog.String("class", class.String()),
		)
	case k.Class() != class:
		w.log.DebugContext(ctx, "kind used as "+class.String(),
			slog.String("name", name),
			slog.String("class", k.Class().String()),
		)
	}
}
