package tree_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/treekit/tree"
)

func TestPrintEmptyTree(t *testing.T) {
	tr := tree.New[string]()
	var sb strings.Builder
	require.NoError(t, tr.Print(&sb))
	require.Equal(t, "[empty tree]\n", sb.String())
}

func TestPrintRootOnly(t *testing.T) {
	tr := tree.NewWithRoot("A")
	var sb strings.Builder
	require.NoError(t, tr.Print(&sb))
	require.Equal(t, "A\n", sb.String())
}

func TestPrintTwoLevels(t *testing.T) {
	tr := tree.NewWithRoot("A")
	tr.Root().AddChild("B")
	tr.Root().AddChild("C")

	want := "" +
		"A\n" +
		"|\n" +
		"|_ B\n" +
		"|\n" +
		"|_ C\n"
	require.Equal(t, want, tr.String())
}

func TestPrintGrandchildStems(t *testing.T) {
	tr := tree.NewWithRoot("A")
	b := tr.Root().AddChild("B")
	tr.Root().AddChild("C")
	b.AddChild("D")

	// B still has a sibling below, so a stem runs through its descendants'
	// margin column.
	want := "" +
		"A\n" +
		"|\n" +
		"|_ B\n" +
		"|  |\n" +
		"|  |_ D\n" +
		"|\n" +
		"|_ C\n"
	require.Equal(t, want, tr.String())
}

func TestPrintRightmostCarriesNoStem(t *testing.T) {
	tr := tree.NewWithRoot("A")
	tr.Root().AddChild("B")
	c := tr.Root().AddChild("C")
	c.AddChild("D")

	// C is the rightmost child, so nothing descends in its column while D
	// renders.
	want := "" +
		"A\n" +
		"|\n" +
		"|_ B\n" +
		"|\n" +
		"|_ C\n" +
		"   |\n" +
		"   |_ D\n"
	require.Equal(t, want, tr.String())
}

func TestPrintTombstoneSlot(t *testing.T) {
	tr := tree.NewWithRoot("A")
	b := tr.Root().AddChild("B")
	tr.Root().AddChild("C")
	require.NoError(t, tr.DeleteSubtree(b))

	want := "" +
		"A\n" +
		"|\n" +
		"|_ [null]\n" +
		"|\n" +
		"|_ C\n"
	require.Equal(t, want, tr.String())
}

func TestPrintTrace(t *testing.T) {
	tr := tree.NewWithRoot("A")
	b := tr.Root().AddChild("B")
	b.AddChild("D")
	tr.Root().AddChild("C")

	var sb strings.Builder
	require.NoError(t, tr.Fprint(&sb, tree.PrintOptions{Trace: true}))

	want := "" +
		"depth=0 data=A\n" +
		"depth=1 data=B\n" +
		"depth=2 data=D\n" +
		"depth=1 data=C\n"
	require.Equal(t, want, sb.String())
}

func TestPrintIntPayloads(t *testing.T) {
	tr := tree.NewWithRoot(1)
	tr.Root().AddChild(2)
	tr.Root().AddChild(3)

	want := "" +
		"1\n" +
		"|\n" +
		"|_ 2\n" +
		"|\n" +
		"|_ 3\n"
	require.Equal(t, want, tr.String())
}

func TestPrintDoesNotMutate(t *testing.T) {
	tr := tree.NewWithRoot("A")
	b := tr.Root().AddChild("B")
	tr.Root().AddChild("C")
	require.NoError(t, tr.DeleteSubtree(b))

	first := tr.String()
	second := tr.String()
	assert.Equal(t, first, second)
	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, 2, tr.Root().NumSlots(), "printing must not compact tombstones")
}
