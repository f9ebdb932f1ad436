package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/scadgen/scad"
)

// Catalog lists the built-in OpenSCAD kinds.
type Catalog struct {
	Query string `arg:"" help:"Fuzzy filter on kind names" optional:""`
}

// Run executes the catalog command.
func (c *Catalog) Run(ctx context.Context) error {
	w := stdoutFrom(ctx)

	return writeCatalog(w, lipgloss.NewRenderer(w), c.find(slices.Collect(scad.Catalog())))
}

// catalogEntry is a kind with the positions of matched name characters.
type catalogEntry struct {
	kind    scad.Kind
	matched []int
}

// find returns kinds in catalog order, or ranked by fuzzy match quality when
// a query is given.
func (c *Catalog) find(kinds []scad.Kind) []catalogEntry {
	if c.Query == "" {
		out := make([]catalogEntry, len(kinds))
		for i, k := range kinds {
			out[i] = catalogEntry{kind: k}
		}

		return out
	}

	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.Name()
	}

	matches := fuzzy.Find(c.Query, names)
	out := make([]catalogEntry, len(matches))

	for i, m := range matches {
		out[i] = catalogEntry{kind: kinds[m.Index], matched: m.MatchedIndexes}
	}

	return out
}

func writeCatalog(w io.Writer, r *lipgloss.Renderer, entries []catalogEntry) error {
	base := r.NewStyle()
	highlight := r.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	dim := r.NewStyle().Foreground(lipgloss.Color("8"))

	width := 0
	for _, e := range entries {
		width = max(width, len(e.kind.Name()))
	}

	bw := bufio.NewWriter(w)

	for _, e := range entries {
		name := e.kind.Name()

		var sb strings.Builder

		for i, ch := range name {
			if slices.Contains(e.matched, i) {
				sb.WriteString(highlight.Render(string(ch)))
			} else {
				sb.WriteString(base.Render(string(ch)))
			}
		}

		bw.WriteString(sb.String())
		bw.WriteString(strings.Repeat(" ", width-lipgloss.Width(name)+2))
		bw.WriteString(dim.Render(fmt.Sprintf("%-9s  %s", e.kind.Class(), e.kind.Category())))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
