package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/scadgen/log"
)

// createOutput opens the file named by --output.
var createOutput = func(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// Render writes the OpenSCAD text generated from a manifest.
type Render struct {
	Source string `arg:"" default:"-" help:"Manifest file or '-' for stdin" optional:""`
	Output string `help:"Write to file instead of stdout" placeholder:"FILE" short:"o"`
}

// Run executes the render command.
func (r *Render) Run(ctx context.Context) (err error) {
	m, err := load(ctx, r.Source)
	if err != nil {
		return err
	}

	text, err := m.Render(ctx)
	if err != nil {
		return err
	}

	// Generated text has no trailing newline of its own.
	if text != "" {
		text += "\n"
	}

	var w io.Writer = stdoutFrom(ctx)

	if r.Output != "" {
		file, ferr := createOutput(r.Output)
		if ferr != nil {
			return ErrWriteOutput.With(slog.String("file", r.Output)).Wrap(ferr)
		}

		defer func() {
			if cerr := file.Close(); cerr != nil && err == nil {
				err = ErrWriteOutput.With(slog.String("file", r.Output)).Wrap(cerr)
			}
		}()

		w = file
	}

	if _, err := io.WriteString(w, text); err != nil {
		return ErrWriteOutput.With(slog.String("file", r.Output)).Wrap(err)
	}

	log.DebugContext(ctx, "rendered",
		slog.String("source", r.Source),
		slog.Int("bytes", len(text)),
	)

	return nil
}
