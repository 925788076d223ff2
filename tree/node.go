package tree

// Node is a single element of a Tree. It stores a caller-supplied payload,
// a non-owning back-reference to its parent, and an ordered sequence of
// child slots. A slot holds either a live child or a tombstone left behind
// by Tree.DeleteSubtree.
type Node[T any] struct {
	// Payload is the user data carried by this node. The container never
	// inspects it; the renderer formats it with fmt.Sprint.
	Payload T

	parent *Node[T]
	slots  []*Node[T] // nil entry = tombstone
}

// AddChild appends a new rightmost child storing payload and returns it.
// The new child always lands in the slot index equal to the previous
// NumSlots, even when earlier slots hold tombstones; compaction is the
// only operation that shifts slots.
func (n *Node[T]) AddChild(payload T) *Node[T] {
	child := &Node[T]{Payload: payload, parent: n}
	n.slots = append(n.slots, child)
	return child
}

// Parent returns the node's parent, or nil for a root.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// NumSlots returns the number of child slots, tombstones included.
func (n *Node[T]) NumSlots() int { return len(n.slots) }

// Slot returns the child occupying slot i, or nil if the slot is a
// tombstone. It panics if i is out of range.
func (n *Node[T]) Slot(i int) *Node[T] { return n.slots[i] }

// NumChildren returns the number of live children.
func (n *Node[T]) NumChildren() int {
	live := 0
	for _, c := range n.slots {
		if c != nil {
			live++
		}
	}
	return live
}

// Children returns the live children in order, skipping tombstones. The
// returned slice is freshly allocated; mutating it does not affect the
// tree.
func (n *Node[T]) Children() []*Node[T] {
	out := make([]*Node[T], 0, len(n.slots))
	for _, c := range n.slots {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// ultimateAncestor walks the parent chain to its end. For any node still
// linked into a tree this terminates at that tree's root.
func (n *Node[T]) ultimateAncestor() *Node[T] {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}
