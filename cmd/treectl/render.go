package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/treekit/internal/outline"
	"github.com/joshuapare/treekit/tree"
)

var renderTrace bool

func init() {
	cmd := newRenderCmd()
	cmd.Flags().BoolVar(&renderTrace, "trace", false, "Print the traversal listing instead of the diagram")
	rootCmd.AddCommand(cmd)
}

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [file]",
		Short: "Render an outline as a tree diagram",
		Long: `The render command parses an indented outline, from a file or from
standard input, and prints the tree it describes.

Example:
  treectl render layout.txt
  treectl render < layout.txt --trace`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args)
		},
	}
}

func runRender(args []string) error {
	t, err := loadOutline(args)
	if err != nil {
		return err
	}
	printVerbose("Parsed %d nodes\n", t.Len())
	return t.Fprint(os.Stdout, tree.PrintOptions{Trace: renderTrace})
}

// loadOutline parses the outline named by args, or standard input when no
// file is given.
func loadOutline(args []string) (*tree.Tree[string], error) {
	if len(args) == 0 {
		return outline.Parse(os.Stdin)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open outline: %w", err)
	}
	defer f.Close()
	return outline.Parse(f)
}
