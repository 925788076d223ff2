package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/treekit/tree"
)

var pruneKeepTombstones bool

func init() {
	cmd := newPruneCmd()
	cmd.Flags().BoolVar(&pruneKeepTombstones, "keep-tombstones", false, "Skip compaction after deleting")
	rootCmd.AddCommand(cmd)
}

func newPruneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prune <file> <label>",
		Short: "Delete a subtree and render the result",
		Long: `The prune command parses an outline, deletes the first subtree whose
root label matches (pre-order), compacts the tree, and renders it. Pass
--keep-tombstones to see the tombstone slots deletion leaves behind.

Example:
  treectl prune layout.txt citrus
  treectl prune layout.txt citrus --keep-tombstones`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrune(args)
		},
	}
}

func runPrune(args []string) error {
	t, err := loadOutline(args[:1])
	if err != nil {
		return err
	}
	label := args[1]

	target := findByLabel(t, label)
	if target == nil {
		return fmt.Errorf("no node labeled %q", label)
	}
	printVerbose("Deleting subtree rooted at %q\n", label)

	if err := t.DeleteSubtree(target); err != nil {
		return fmt.Errorf("failed to delete subtree: %w", err)
	}
	if !pruneKeepTombstones {
		if err := t.Compress(); err != nil {
			return fmt.Errorf("failed to compact: %w", err)
		}
	}
	return t.Print(os.Stdout)
}

// findByLabel returns the first node whose label matches, in pre-order.
func findByLabel(t *tree.Tree[string], label string) *tree.Node[string] {
	var found *tree.Node[string]
	t.Walk(func(n *tree.Node[string], _ int) bool {
		if n.Payload == label {
			found = n
			return false
		}
		return true
	})
	return found
}
