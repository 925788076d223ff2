package tree

import "github.com/cockroachdb/errors"

var (
	// ErrRootExists indicates CreateRoot was called on a tree that already
	// has a root.
	ErrRootExists = errors.New("tree: root already exists")

	// ErrForeignNode indicates the target node belongs to a different tree
	// instance than the one operating on it.
	ErrForeignNode = errors.New("tree: node belongs to a different tree")
)
