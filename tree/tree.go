package tree

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

// initialStackCapacity is the pre-allocated capacity for traversal work
// lists. Most trees are far shallower and narrower than this, so a single
// allocation covers the whole traversal.
const initialStackCapacity = 64

// Tree owns a hierarchy of nodes through its root. An empty tree has a nil
// root. Not safe for concurrent use.
type Tree[T any] struct {
	root  *Node[T]
	trace io.Writer // nil disables deletion diagnostics
}

// New returns an empty tree.
func New[T any]() *Tree[T] { return &Tree[T]{} }

// NewWithRoot returns a tree whose root stores payload.
func NewWithRoot[T any](payload T) *Tree[T] {
	return &Tree[T]{root: &Node[T]{Payload: payload}}
}

// CreateRoot installs a root node storing payload and returns it. It fails
// with ErrRootExists if the tree already has a root.
func (t *Tree[T]) CreateRoot(payload T) (*Node[T], error) {
	if t.root != nil {
		return nil, ErrRootExists
	}
	t.root = &Node[T]{Payload: payload}
	return t.root, nil
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] { return t.root }

// SetTrace directs the deletion engine's diagnostics to w. A nil writer
// disables them.
func (t *Tree[T]) SetTrace(w io.Writer) { t.trace = w }

// Contains reports whether n is a live node of this tree.
func (t *Tree[T]) Contains(n *Node[T]) bool {
	return n != nil && t.root != nil && n.ultimateAncestor() == t.root
}

// Walk visits every live node in pre-order, left to right, calling fn with
// the node and its depth. Traversal stops early if fn returns false.
func (t *Tree[T]) Walk(fn func(n *Node[T], depth int) bool) {
	if t.root == nil {
		return
	}
	nodes := make([]*Node[T], 0, initialStackCapacity)
	depths := make([]int, 0, initialStackCapacity)
	nodes = append(nodes, t.root)
	depths = append(depths, 0)
	for len(nodes) > 0 {
		i := len(nodes) - 1
		n, d := nodes[i], depths[i]
		nodes, depths = nodes[:i], depths[:i]
		if !fn(n, d) {
			return
		}
		// Reverse push order keeps the pop order left-to-right.
		for j := len(n.slots) - 1; j >= 0; j-- {
			if c := n.slots[j]; c != nil {
				nodes = append(nodes, c)
				depths = append(depths, d+1)
			}
		}
	}
}

// Len returns the number of live nodes in the tree.
func (t *Tree[T]) Len() int {
	count := 0
	t.Walk(func(*Node[T], int) bool {
		count++
		return true
	})
	return count
}

// Clear deletes every node in the tree, leaving it empty. Clearing an
// already empty tree is a no-op.
func (t *Tree[T]) Clear() error {
	if err := t.DeleteSubtree(t.root); err != nil {
		return err
	}
	if t.root != nil {
		return errors.AssertionFailedf("tree: root still set after clearing")
	}
	return nil
}

// tracef emits a deletion diagnostic when tracing is enabled.
func (t *Tree[T]) tracef(format string, args ...any) {
	if t.trace != nil {
		fmt.Fprintf(t.trace, format, args...)
	}
}
