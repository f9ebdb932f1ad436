package scad

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// Walk yields e and its descendants in pre-order. For containers, registered
// modules are visited before children, matching the order of [Entity.Gen].
func Walk(e Entity) iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		walk(e, yield)
	}
}

func walk(e Entity, yield func(Entity) bool) bool {
	if !yield(e) {
		return false
	}

	c, ok := e.(Container)
	if !ok {
		return true
	}

	for _, m := range c.Modules() {
		if !walk(m, yield) {
			return false
		}
	}

	for _, child := range c.Children() {
		if !walk(child, yield) {
			return false
		}
	}

	return true
}

// Fprint writes a debug dump of the tree rooted at e, one entity per line,
// indented by depth.
func Fprint(w io.Writer, e Entity) error {
	bw := bufio.NewWriter(w)

	for n := range Walk(e) {
		bw.WriteString(strings.Repeat(indentUnit, n.Depth()))
		bw.WriteString(n.String())
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
