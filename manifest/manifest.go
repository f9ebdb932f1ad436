package manifest

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/ardnew/scadgen/log"
)

// Manifest is a decoded document together with its resolved imports.
type Manifest struct {
	// Path is the absolute file path, or empty for a parsed document.
	Path string
	// Dir is the directory imports are first resolved against.
	Dir string
	// Doc is the decoded document.
	Doc Document
	// Imports holds the imported manifests in declaration order.
	Imports []*Manifest

	opts options
}

type options struct {
	dir  string
	path []string
	log  log.Logger
}

// Option configures loading and building.
type Option func(options) options

// WithSearchPath appends directories searched for imports after the
// importing file's own directory.
func WithSearchPath(dir ...string) Option {
	return func(o options) options {
		o.path = append(slices.Clone(o.path), dir...)

		return o
	}
}

// WithDir sets the directory that imports of a parsed document are resolved
// against. It defaults to the working directory and is ignored by [Load].
func WithDir(dir string) Option {
	return func(o options) options {
		o.dir = dir

		return o
	}
}

// WithLogger sets the logger used while loading and building.
func WithLogger(l log.Logger) Option {
	return func(o options) options {
		o.log = l

		return o
	}
}

func makeOptions(opts ...Option) options {
	o := options{dir: ".", log: log.Default()}

	for _, opt := range opts {
		o = opt(o)
	}

	return o
}

// Load reads and decodes the manifest at path and every manifest it imports.
func Load(ctx context.Context, path string, opts ...Option) (*Manifest, error) {
	o := makeOptions(opts...)

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, ErrRead.With(slog.String("path", path)).Wrap(err)
	}

	return newLoader(o).load(ctx, abs)
}

// Parse decodes data and loads every manifest it imports.
func Parse(ctx context.Context, data []byte, opts ...Option) (*Manifest, error) {
	o := makeOptions(opts...)

	dir, err := filepath.Abs(o.dir)
	if err != nil {
		return nil, ErrRead.With(slog.String("dir", o.dir)).Wrap(err)
	}

	return newLoader(o).parse(ctx, "", dir, data)
}

// loader shares decoded imports between the files of one load.
type loader struct {
	opts   options
	done   map[string]*Manifest
	active []string
}

func newLoader(o options) *loader {
	return &loader{opts: o, done: map[string]*Manifest{}}
}

func (l *loader) load(ctx context.Context, path string) (*Manifest, error) {
	if m, ok := l.done[path]; ok {
		return m, nil
	}

	if slices.Contains(l.active, path) {
		return nil, ErrImportCycle.With(
			slog.String("path", path),
			slog.Any("chain", append(slices.Clone(l.active), path)),
		)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrRead.With(slog.String("path", path)).Wrap(err)
	}

	l.active = append(l.active, path)
	defer func() { l.active = l.active[:len(l.active)-1] }()

	m, err := l.parse(ctx, path, filepath.Dir(path), data)
	if err != nil {
		return nil, err
	}

	l.done[path] = m

	return m, nil
}

func (l *loader) parse(
	ctx context.Context,
	path, dir string,
	data []byte,
) (*Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := decode(ctx, data)
	if err != nil {
		return nil, ErrDecode.With(slog.String("path", path)).Wrap(err)
	}

	m := &Manifest{Path: path, Dir: dir, Doc: doc, opts: l.opts}

	for _, name := range doc.Imports {
		file, ok := locate(name, dir, l.opts.path...)
		if !ok {
			return nil, ErrImportNotFound.With(
				slog.String("import", name),
				slog.String("dir", dir),
				slog.Any("path", l.opts.path),
			)
		}

		l.opts.log.DebugContext(ctx, "import",
			slog.String("import", name),
			slog.String("file", file),
		)

		imp, err := l.load(ctx, file)
		if err != nil {
			return nil, err
		}

		m.Imports = append(m.Imports, imp)
	}

	return m, nil
}
