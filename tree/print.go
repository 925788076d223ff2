package tree

import (
	"fmt"
	"io"
	"strings"
)

const (
	// emptyMarker is printed for a tree with no root.
	emptyMarker = "[empty tree]"

	// nullMarker stands in for a tombstone slot in diagrams and traces.
	nullMarker = "[null]"

	stemGlyph   = "|"
	branchGlyph = "_ "
	stemPadding = "  "
)

// PrintOptions controls diagram output.
type PrintOptions struct {
	// Trace replaces the diagram with a flat depth/payload listing of the
	// pre-order traversal. A debugging aid, not part of the data contract.
	Trace bool
}

// DefaultPrintOptions returns the options used by Print.
func DefaultPrintOptions() PrintOptions {
	return PrintOptions{}
}

// Print writes the tree's diagram to w using default options.
func (t *Tree[T]) Print(w io.Writer) error {
	return t.Fprint(w, DefaultPrintOptions())
}

// String renders the diagram, so a Tree can be handed to fmt directly.
func (t *Tree[T]) String() string {
	var sb strings.Builder
	_ = t.Fprint(&sb, DefaultPrintOptions()) // strings.Builder writes cannot fail
	return sb.String()
}

// Fprint writes a vertical text diagram of the tree to w.
//
// Every non-root node is rendered as two rows built from its margin flags:
// a connector row continuing the vertical stems of siblings still to come,
// and a label row ending in "|_ " followed by the payload. The root carries
// no margin and renders as a bare payload line; an empty tree renders as
// the "[empty tree]" marker. Tombstone slots that have not been compacted
// yet appear as "[null]" leaves.
//
// Fprint is a pure read; it never mutates the tree.
func (t *Tree[T]) Fprint(w io.Writer, opts PrintOptions) error {
	p := printState{w: w}
	if t.root == nil {
		p.printf("%s\n", emptyMarker)
		return p.err
	}

	// Explicit pre-order traversal. Parallel stacks carry each pending
	// node's depth and its two margin flag sequences: curMargin draws the
	// node's own rows, trailing is inherited by its children.
	nodes := make([]*Node[T], 0, initialStackCapacity)
	depths := make([]int, 0, initialStackCapacity)
	curMargins := make([][]bool, 0, initialStackCapacity)
	trailMargins := make([][]bool, 0, initialStackCapacity)

	nodes = append(nodes, t.root)
	depths = append(depths, 0)
	curMargins = append(curMargins, nil)
	trailMargins = append(trailMargins, nil)

	for len(nodes) > 0 {
		i := len(nodes) - 1
		cur, depth := nodes[i], depths[i]
		curMargin, trailing := curMargins[i], trailMargins[i]
		nodes, depths = nodes[:i], depths[:i]
		curMargins, trailMargins = curMargins[:i], trailMargins[:i]

		if opts.Trace {
			p.printf("depth=%d data=%s\n", depth, payloadText(cur))
		} else {
			p.margins(curMargin)
			p.printf("%s\n", payloadText(cur))
		}

		if cur == nil {
			continue
		}

		// Push rightmost first so the LIFO pops left-to-right. Tombstones
		// are pushed too; they render as "[null]" leaves above.
		for j := len(cur.slots) - 1; j >= 0; j-- {
			nodes = append(nodes, cur.slots[j])
			depths = append(depths, depth+1)

			// A child is always attached to its parent's branch.
			next := make([]bool, len(trailing), len(trailing)+1)
			copy(next, trailing)
			curMargins = append(curMargins, append(next, true))

			// The rightmost child is rendered lowest, so nothing descends
			// below it; every other child leaves a continuing stem.
			nextTrailing := make([]bool, len(trailing), len(trailing)+1)
			copy(nextTrailing, trailing)
			trailMargins = append(trailMargins, append(nextTrailing, j != len(cur.slots)-1))
		}
	}
	return p.err
}

// payloadText renders a node's payload, standing in the tombstone marker
// for nil entries.
func payloadText[T any](n *Node[T]) string {
	if n == nil {
		return nullMarker
	}
	return fmt.Sprint(n.Payload)
}

// printState tracks the first write error so the renderer can stay
// straight-line.
type printState struct {
	w   io.Writer
	err error
}

func (p *printState) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// margins emits the two margin rows for one node. Row one extends the
// stems of pending siblings; row two ends with the connector that attaches
// the node's label.
func (p *printState) margins(margin []bool) {
	const rows = 2
	for row := 1; row <= rows; row++ {
		for i, show := range margin {
			stem := stemGlyph
			if !show {
				stem = " "
			}
			last := i == len(margin)-1
			switch {
			case !last:
				p.printf("%s%s", stem, stemPadding)
			case row == rows:
				// The connector ahead of the label always reads "|_ ".
				p.printf("%s%s", stem, branchGlyph)
			case show:
				p.printf("%s\n", stem)
			default:
				// Skip trailing spaces ahead of the newline.
				p.printf("\n")
			}
		}
	}
}
