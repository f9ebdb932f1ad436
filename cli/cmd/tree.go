package cmd

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/scadgen/scad"
)

// Tree prints the entity tree built from a manifest, one entity per line.
type Tree struct {
	Source string `arg:"" default:"-" help:"Manifest file or '-' for stdin" optional:""`
	Color  bool   `default:"true" help:"Colorize entity kinds." negatable:""`
}

// Run executes the tree command.
func (t *Tree) Run(ctx context.Context) error {
	m, err := load(ctx, t.Source)
	if err != nil {
		return err
	}

	root, err := m.Build(ctx, scad.NewBuilder())
	if err != nil {
		return err
	}

	w := stdoutFrom(ctx)

	if !t.Color {
		return scad.Fprint(w, root)
	}

	return fprintStyled(w, root)
}

// treeStyles colors the leading word of each entity description.
type treeStyles map[string]lipgloss.Style

func newTreeStyles(r *lipgloss.Renderer) treeStyles {
	return treeStyles{
		"scope":     r.NewStyle().Foreground(lipgloss.Color("8")),
		"module":    r.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		"operation": r.NewStyle().Foreground(lipgloss.Color("6")),
		"object":    r.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

func (s treeStyles) render(desc string) string {
	kind, rest, _ := strings.Cut(desc, " ")

	style, ok := s[kind]
	if !ok {
		return desc
	}

	if rest == "" {
		return style.Render(kind)
	}

	return style.Render(kind) + " " + rest
}

func fprintStyled(w io.Writer, root scad.Entity) error {
	styles := newTreeStyles(lipgloss.NewRenderer(w))
	bw := bufio.NewWriter(w)

	for e := range scad.Walk(root) {
		bw.WriteString(strings.Repeat("  ", e.Depth()))
		bw.WriteString(styles.render(e.String()))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
