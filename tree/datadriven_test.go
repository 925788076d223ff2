package tree_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"

	"github.com/joshuapare/treekit/internal/outline"
	"github.com/joshuapare/treekit/tree"
)

// TestTreeDataDriven drives the container end to end from testdata/tree:
// trees are defined as indented outlines, then deleted from, compacted,
// and rendered.
func TestTreeDataDriven(t *testing.T) {
	var tr *tree.Tree[string]
	datadriven.RunTest(t, "testdata/tree", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "define":
			var err error
			tr, err = outline.ParseString(d.Input)
			if err != nil {
				return err.Error()
			}
			return fmt.Sprintf("%d nodes", tr.Len())

		case "render":
			var sb strings.Builder
			opts := tree.DefaultPrintOptions()
			opts.Trace = d.HasArg("trace")
			if err := tr.Fprint(&sb, opts); err != nil {
				return err.Error()
			}
			return sb.String()

		case "delete":
			var label string
			d.ScanArgs(t, "label", &label)
			target := findNode(tr, label)
			if target == nil {
				return fmt.Sprintf("no node labeled %q", label)
			}
			if err := tr.DeleteSubtree(target); err != nil {
				return err.Error()
			}
			return "ok"

		case "compress":
			if err := tr.Compress(); err != nil {
				return err.Error()
			}
			return "ok"

		case "len":
			return fmt.Sprintf("%d", tr.Len())

		default:
			d.Fatalf(t, "unknown command: %s", d.Cmd)
			return ""
		}
	})
}

// findNode returns the first pre-order node whose payload matches label.
func findNode(tr *tree.Tree[string], label string) *tree.Node[string] {
	var found *tree.Node[string]
	tr.Walk(func(n *tree.Node[string], _ int) bool {
		if n.Payload == label {
			found = n
			return false
		}
		return true
	})
	return found
}
