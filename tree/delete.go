package tree

import "github.com/cockroachdb/errors"

// DeleteSubtree removes target and every node below it from the tree.
// Calling it with a nil target is a no-op.
//
// The slot target occupied in its parent becomes a tombstone rather than
// being removed, so sibling slot indices stay stable; call Compress to drop
// the tombstones afterwards. Deleting the root empties the tree.
//
// Passing a node that belongs to a different tree fails with ErrForeignNode
// and mutates neither tree. Every removed node is unlinked and its payload
// zeroed, so references retained by the caller cannot reach the rest of the
// structure afterwards.
func (t *Tree[T]) DeleteSubtree(target *Node[T]) error {
	if target == nil {
		return nil
	}

	// The target's ultimate ancestor must be this tree's root; anything
	// else means the caller handed us a node from another tree.
	if target.ultimateAncestor() != t.root {
		return ErrForeignNode
	}

	wholeTree := target == t.root

	if parent := target.parent; parent != nil {
		found := false
		for i, slot := range parent.slots {
			if slot == target {
				parent.slots[i] = nil
				found = true
				break
			}
		}
		if !found {
			return errors.AssertionFailedf(
				"tree: delete target not listed among its parent's children")
		}
	}

	// Explore phase: collect the whole subtree before touching any of it.
	// Tombstone slots are pushed along with live children and skipped when
	// they surface; Compress enforces the stricter policy on its own queue.
	explore := make([]*Node[T], 0, initialStackCapacity)
	destroy := make([]*Node[T], 0, initialStackCapacity)
	explore = append(explore, target)
	for len(explore) > 0 {
		cur := explore[len(explore)-1]
		explore = explore[:len(explore)-1]
		t.tracef("exploring node: %s\n", payloadText(cur))
		if cur == nil {
			continue
		}
		destroy = append(destroy, cur)
		explore = append(explore, cur.slots...)
	}

	// Destroy phase: unlink in reverse discovery order. No node is read
	// after it has been queued, so descendants and ancestors may be torn
	// down in any interleaving.
	for len(destroy) > 0 {
		cur := destroy[len(destroy)-1]
		destroy = destroy[:len(destroy)-1]
		t.tracef("destroying node: %s\n", payloadText(cur))
		var zero T
		cur.Payload = zero
		cur.parent = nil
		cur.slots = nil
	}

	if wholeTree {
		t.root = nil
	}
	return nil
}
