package scad

import "strings"

// Chain is a composite of single-child operations opened as one unit.
//
// Opening a Chain attaches its head to the current scope and makes its last
// link current, so entities constructed inside attach to the innermost
// operation. Closing restores the scope that was current before the head
// was attached.
type Chain struct {
	head *Operation
	last *Operation
}

// NewChain makes b the sole child of a.
func NewChain(a, b *Operation) *Chain {
	a.children = []Entity{b}
	b.parent = a

	return &Chain{head: a, last: b}
}

// Then makes o the sole child of the last link and advances the last link
// to o.
func (c *Chain) Then(o *Operation) *Chain {
	c.last.children = []Entity{o}
	o.parent = c.last
	c.last = o

	return c
}

// Head returns the outermost operation.
func (c *Chain) Head() *Operation { return c.head }

// Last returns the innermost operation.
func (c *Chain) Last() *Operation { return c.last }

func (c *Chain) String() string {
	var sb strings.Builder

	sb.WriteString("chain")

	for op := c.head; op != nil; {
		sb.WriteString(" ")
		sb.WriteString(Decl(op.name, op.args))

		if op == c.last || len(op.children) == 0 {
			break
		}

		op, _ = op.children[0].(*Operation)
	}

	return sb.String()
}

func (c *Chain) enter(current Container) Container {
	c.head.open(c.head, current)

	return c.last
}
