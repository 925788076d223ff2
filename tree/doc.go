// Package tree implements a generic, ordered N-ary tree container.
//
// # Overview
//
// A Tree owns a single root Node; every Node owns an ordered sequence of
// child slots and carries a non-owning back-reference to its parent. Child
// order is insertion order and is preserved by every operation. The
// container never interprets payloads; any type works, and anything fmt can
// format is printable.
//
// # Key Operations
//
//   - Tree.CreateRoot / Node.AddChild: build the structure
//   - Tree.DeleteSubtree: remove a node and all of its descendants,
//     leaving a tombstone in the parent's slot sequence
//   - Tree.Compress: drop every tombstone, restoring dense child slots
//   - Tree.Print / Tree.Fprint: render a vertical ASCII diagram
//
// # Tombstones
//
// Deleting a subtree does not resize the parent's slot sequence; the slot
// the subtree occupied becomes a tombstone, so sibling slot indices stay
// stable and removal is O(1) in the parent. Tombstones persist, and render
// as "[null]" in diagrams, until Compress is called.
//
// # Rendering
//
// Print emits two rows per non-root node: a connector row continuing the
// vertical stems of siblings still to come, and a label row attaching the
// payload with "|_ ". A tree built as fruit -> {citrus -> {lime}, stone}
// renders as:
//
//	fruit
//	|
//	|_ citrus
//	|  |
//	|  |_ lime
//	|
//	|_ stone
//
// # Concurrency
//
// A Tree assumes single-threaded, exclusive access. There is no internal
// locking; callers needing concurrent access must serialize externally.
package tree
