package tree

import "github.com/cockroachdb/errors"

// Compress removes every tombstone slot in the tree, restoring dense child
// sequences. The relative order of surviving children is preserved and the
// tree's shape is otherwise unchanged. No-op on an empty tree.
func (t *Tree[T]) Compress() error {
	if t.root == nil {
		return nil
	}

	// Breadth-first over live nodes only.
	queue := make([]*Node[T], 0, initialStackCapacity)
	queue = append(queue, t.root)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		// Only live children are ever enqueued below, so a tombstone
		// surfacing here means the structure is corrupt.
		if cur == nil {
			return errors.AssertionFailedf(
				"tree: tombstone surfaced on the compaction queue")
		}

		live := make([]*Node[T], 0, len(cur.slots))
		for _, c := range cur.slots {
			if c != nil {
				live = append(live, c)
				queue = append(queue, c)
			}
		}
		cur.slots = live
	}
	return nil
}
