package cst_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goswon/pkg/cst"
)

func newRoot() *cst.Tree {
	return cst.NewTree(cst.NewNonTerminalData(cst.NodeRoot))
}

func addWs(t *testing.T, tree *cst.Tree, parent cst.NodeID, text string) cst.NodeID {
	t.Helper()
	id, err := tree.AddNode(parent, cst.NewDynamicTerminalData(cst.TokWhitespace, text))
	require.NoError(t, err)
	return id
}

func TestTreeAddNode(t *testing.T) {
	t.Parallel()

	tree := newRoot()
	root := tree.Root()
	a := addWs(t, tree, root, "a")
	b := addWs(t, tree, root, "b")

	assert.Equal(t, []cst.NodeID{a, b}, tree.ChildIDs(root))
	assert.Equal(t, 2, tree.ChildCount(root))
	assert.True(t, tree.HasNoChildren(a))

	parent, ok := tree.Parent(a)
	assert.True(t, ok)
	assert.Equal(t, root, parent)

	_, ok = tree.Parent(root)
	assert.False(t, ok)

	_, err := tree.AddNode(cst.NodeID(99), cst.NewNonTerminalData(cst.NodeSwon))
	require.ErrorIs(t, err, cst.ErrParentMissing)
}

func TestTreeInsertRelative(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		before bool
		want   string
	}{
		{name: "before", before: true, want: "axb"},
		{name: "after", before: false, want: "abx"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tree := newRoot()
			root := tree.Root()
			addWs(t, tree, root, "a")
			b := addWs(t, tree, root, "b")
			x := tree.AddDetached(cst.NewDynamicTerminalData(cst.TokWhitespace, "x"))
			assert.False(t, tree.IsAttached(x))

			var err error
			if tc.before {
				err = tree.InsertBefore(root, b, x)
			} else {
				err = tree.InsertAfter(root, b, x)
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(tree.Render(nil)))
			assert.True(t, tree.IsAttached(x))
		})
	}
}

func TestTreeInsertErrors(t *testing.T) {
	t.Parallel()

	tree := newRoot()
	root := tree.Root()
	a := addWs(t, tree, root, "a")
	inner, err := tree.AddNode(root, cst.NewNonTerminalData(cst.NodeSwon))
	require.NoError(t, err)
	detached := tree.AddDetached(cst.NewNonTerminalData(cst.NodeSwonList))

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{
			name: "already placed",
			run:  func() error { return tree.InsertAfter(root, a, inner) },
			want: cst.ErrDanglingNode,
		},
		{
			name: "root",
			run:  func() error { return tree.Append(inner, root) },
			want: cst.ErrDanglingNode,
		},
		{
			name: "anchor under another parent",
			run:  func() error { return tree.InsertBefore(inner, a, detached) },
			want: cst.ErrDanglingNode,
		},
		{
			name: "missing parent",
			run:  func() error { return tree.InsertBefore(cst.NodeID(1000), a, detached) },
			want: cst.ErrParentMissing,
		},
		{
			name: "unknown node",
			run:  func() error { return tree.Append(inner, cst.NodeID(1000)) },
			want: cst.ErrDanglingNode,
		},
	}

	for _, tc := range tests {
		require.ErrorIs(t, tc.run(), tc.want, tc.name)
	}

	// Nothing above changed the tree.
	assert.Equal(t, []cst.NodeID{a, inner}, tree.ChildIDs(root))
	assert.False(t, tree.IsAttached(detached))
}

func TestTreeCycleRejected(t *testing.T) {
	t.Parallel()

	tree := newRoot()
	outer := tree.AddDetached(cst.NewNonTerminalData(cst.NodeSwon))
	inner, err := tree.AddNode(outer, cst.NewNonTerminalData(cst.NodeSwonList))
	require.NoError(t, err)

	err = tree.Append(inner, outer)
	require.ErrorIs(t, err, cst.ErrDanglingNode)

	var applyErr *cst.ApplyError
	require.ErrorAs(t, err, &applyErr)
	assert.Equal(t, cst.DanglingNode, applyErr.Kind)
	assert.Equal(t, outer, applyErr.Node)
}

func TestTreeDeleteTombstonesSubtree(t *testing.T) {
	t.Parallel()

	tree := newRoot()
	root := tree.Root()
	swon, err := tree.AddNode(root, cst.NewNonTerminalData(cst.NodeSwon))
	require.NoError(t, err)
	leaf := addWs(t, tree, swon, " ")

	require.NoError(t, tree.Delete(swon))
	assert.False(t, tree.Contains(swon))
	assert.False(t, tree.Contains(leaf))
	assert.Empty(t, tree.ChildIDs(root))

	// Already deleted, directly or through an ancestor.
	require.NoError(t, tree.Delete(swon))
	require.NoError(t, tree.Delete(leaf))

	// Ids are never reused.
	next := addWs(t, tree, root, "n")
	assert.Greater(t, next, leaf)

	require.ErrorIs(t, tree.Delete(root), cst.ErrDanglingNode)
	require.ErrorIs(t, tree.Delete(cst.NodeID(500)), cst.ErrDanglingNode)
}

func TestTreeReplace(t *testing.T) {
	t.Parallel()

	tree := newRoot()
	root := tree.Root()
	addWs(t, tree, root, "a")
	b := addWs(t, tree, root, "b")
	addWs(t, tree, root, "c")
	r := tree.AddDetached(cst.NewDynamicTerminalData(cst.TokWhitespace, "R"))

	require.NoError(t, tree.Replace(b, r))
	assert.Equal(t, "aRc", string(tree.Render(nil)))
	assert.False(t, tree.Contains(b))

	// Replacing a deleted node is a no-op.
	other := tree.AddDetached(cst.NewDynamicTerminalData(cst.TokWhitespace, "Z"))
	require.NoError(t, tree.Replace(b, other))
	assert.Equal(t, "aRc", string(tree.Render(nil)))
}

func TestTreeCloneIsIndependent(t *testing.T) {
	t.Parallel()

	tree := newRoot()
	a := addWs(t, tree, tree.Root(), "a")
	clone := tree.Clone()

	require.NoError(t, clone.Delete(a))
	assert.Equal(t, "a", string(tree.Render(nil)))
	assert.Empty(t, string(clone.Render(nil)))
}

func TestTreeDescendantsAndAncestors(t *testing.T) {
	t.Parallel()

	tree := newRoot()
	root := tree.Root()
	swon, err := tree.AddNode(root, cst.NewNonTerminalData(cst.NodeSwon))
	require.NoError(t, err)
	a := addWs(t, tree, swon, "a")
	b := addWs(t, tree, root, "b")

	assert.Equal(t, []cst.NodeID{root, swon, a, b}, slices.Collect(tree.Descendants(root)))
	assert.Equal(t, []cst.NodeID{swon, root}, slices.Collect(tree.Ancestors(a)))
	assert.Equal(t, []cst.NodeID{swon, b}, slices.Collect(tree.Children(root)))
}

func TestApplyErrorMessages(t *testing.T) {
	t.Parallel()

	err := error(&cst.ApplyError{Kind: cst.ParentMissing, Node: 3, Command: 2, Reason: "gone"})
	assert.Equal(t, "command 2: parent node missing: node 3: gone", err.Error())
	assert.True(t, errors.Is(err, cst.ErrParentMissing))
	assert.False(t, errors.Is(err, cst.ErrDanglingNode))
}
