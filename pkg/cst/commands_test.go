package cst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goswon/pkg/cst"
)

func TestCommandsEditComposition(t *testing.T) {
	t.Parallel()

	src := []byte("k = 1")
	tree := mustParse(t, string(src))
	binding := findFirst(t, tree, cst.NodeBinding.Kind())
	keys := findFirst(t, tree, cst.NodeKeys.Kind())
	one := findFirst(t, tree, cst.TokInteger.Kind())

	cmds := cst.NewCommands(tree)
	ws := cmds.InsertDynamicTerminal(cst.TokWhitespace, " ")
	cmds.AddNodesBefore(binding, keys, ws)
	two := cmds.InsertDynamicTerminal(cst.TokInteger, "2")
	cmds.ReplaceNode(one, two)

	// Recording alone changes nothing visible.
	assert.Equal(t, "k = 1", string(tree.Render(src)))
	assert.Equal(t, 4, cmds.Len())

	require.NoError(t, cmds.ApplyTo(tree))
	assert.Equal(t, " k = 2", string(tree.Render(src)))
	assert.False(t, tree.Contains(one))
}

func TestCommandsDeletedAnchorAppends(t *testing.T) {
	t.Parallel()

	src := []byte("k = 1")
	tree := mustParse(t, string(src))
	one := findFirst(t, tree, cst.TokInteger.Kind())
	integer := findFirst(t, tree, cst.NodeInteger.Kind())

	cmds := cst.NewCommands(tree)
	cmds.DeleteNode(one)
	two := cmds.InsertDynamicTerminal(cst.TokInteger, "2")
	cmds.AddNodesAfter(integer, one, two)

	require.NoError(t, cmds.ApplyTo(tree))
	assert.Equal(t, "k = 2", string(tree.Render(src)))
}

func TestCommandsDeleteUnderDeletedAncestor(t *testing.T) {
	t.Parallel()

	src := []byte("k = 1")
	tree := mustParse(t, string(src))
	value := findFirst(t, tree, cst.NodeValue.Kind())
	one := findFirst(t, tree, cst.TokInteger.Kind())

	cmds := cst.NewCommands(tree)
	cmds.DeleteNode(value)
	cmds.DeleteNode(one)

	require.NoError(t, cmds.ApplyTo(tree))
	assert.Equal(t, "k =", string(tree.Render(src)))
}

func TestCommandsParentMissingIsAtomic(t *testing.T) {
	t.Parallel()

	src := []byte("k = 1")
	tree := mustParse(t, string(src))
	value := findFirst(t, tree, cst.NodeValue.Kind())
	integer := findFirst(t, tree, cst.NodeInteger.Kind())
	one := findFirst(t, tree, cst.TokInteger.Kind())
	before := tree.Fingerprint(src)

	cmds := cst.NewCommands(tree)
	cmds.DeleteNode(value)
	ws := cmds.InsertDynamicTerminal(cst.TokWhitespace, " ")
	cmds.AddNodesBefore(integer, one, ws)

	err := cmds.ApplyTo(tree)
	require.ErrorIs(t, err, cst.ErrParentMissing)

	var applyErr *cst.ApplyError
	require.ErrorAs(t, err, &applyErr)
	assert.Equal(t, 2, applyErr.Command)
	assert.Equal(t, integer, applyErr.Node)

	assert.Equal(t, "k = 1", string(tree.Render(src)))
	assert.Equal(t, before, tree.Fingerprint(src))
}

func TestCommandsForeignTree(t *testing.T) {
	t.Parallel()

	a := mustParse(t, "a = 1")
	b := mustParse(t, "b = 2")
	cmds := cst.NewCommands(a)
	cmds.DeleteNode(findFirst(t, a, cst.NodeValue.Kind()))

	require.ErrorIs(t, cmds.ApplyTo(b), cst.ErrForeignTree)
}

func TestCommandsCommuteOnDisjointSubtrees(t *testing.T) {
	t.Parallel()

	src := []byte("a = 1\nb = 2\n")

	apply := func(reverse bool) (string, uint64) {
		tree := mustParse(t, string(src))
		ints := findAll(tree, cst.TokInteger.Kind())
		require.Len(t, ints, 2)

		cmds := cst.NewCommands(tree)
		x := cmds.InsertDynamicTerminal(cst.TokInteger, "10")
		y := cmds.InsertDynamicTerminal(cst.TokInteger, "20")
		first := func() { cmds.ReplaceNode(ints[0], x) }
		second := func() { cmds.ReplaceNode(ints[1], y) }
		if reverse {
			second()
			first()
		} else {
			first()
			second()
		}
		require.NoError(t, cmds.ApplyTo(tree))
		return string(tree.Render(src)), tree.Fingerprint(src)
	}

	forward, forwardHash := apply(false)
	backward, backwardHash := apply(true)
	assert.Equal(t, "a = 10\nb = 20\n", forward)
	assert.Equal(t, forward, backward)
	assert.Equal(t, forwardHash, backwardHash)
}

func TestCommandsEmptyBufferIsNoop(t *testing.T) {
	t.Parallel()

	tree := mustParse(t, "k = 1")
	cmds := cst.NewCommands(tree)
	assert.True(t, cmds.IsEmpty())
	require.NoError(t, cmds.ApplyTo(tree))
}
