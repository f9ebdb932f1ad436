package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/alecthomas/kong"

	"github.com/ardnew/scadgen/log"
	"github.com/ardnew/scadgen/manifest"
)

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

type (
	contextKey    struct{}
	searchPathKey struct{}
	stdinKey      struct{}
)

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// WithSearchPath returns a new context.Context carrying the directories
// searched for manifest imports.
func WithSearchPath(ctx context.Context, dirs []string) context.Context {
	return context.WithValue(ctx, searchPathKey{}, slices.Clone(dirs))
}

func searchPathFrom(ctx context.Context) []string {
	dirs, _ := ctx.Value(searchPathKey{}).([]string)

	return dirs
}

// WithStdin returns a new context.Context whose source "-" reads from r
// instead of os.Stdin.
func WithStdin(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, stdinKey{}, r)
}

func stdinFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(stdinKey{}).(io.Reader); ok && r != nil {
		return r
	}

	return os.Stdin
}

// stdoutFrom returns the writer kong was configured with, or os.Stdout.
func stdoutFrom(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// load reads the manifest named by source. Imports of a manifest read from
// stdin are resolved against the working directory.
func load(ctx context.Context, source string) (*manifest.Manifest, error) {
	opts := []manifest.Option{
		manifest.WithSearchPath(searchPathFrom(ctx)...),
		manifest.WithLogger(log.Default()),
	}

	if source != stdinSource {
		return manifest.Load(ctx, source, opts...)
	}

	data, err := io.ReadAll(stdinFrom(ctx))
	if err != nil {
		return nil, ErrReadSource.With(slog.String("source", "stdin")).Wrap(err)
	}

	return manifest.Parse(ctx, data, opts...)
}
