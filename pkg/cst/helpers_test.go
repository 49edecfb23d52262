package cst_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goswon/pkg/cst"
	"github.com/yaklabco/goswon/pkg/parser"
)

func mustParse(t *testing.T, src string) *cst.Tree {
	t.Helper()
	tree, err := parser.Parse([]byte(src))
	require.NoError(t, err)
	return tree
}

// findAll returns the ids of every live node with the given kind, in pre-order.
func findAll(tree *cst.Tree, kind cst.Kind) []cst.NodeID {
	var ids []cst.NodeID
	for id := range tree.Descendants(tree.Root()) {
		if data, ok := tree.NodeData(id); ok && data.Kind == kind {
			ids = append(ids, id)
		}
	}
	return ids
}

func findFirst(t *testing.T, tree *cst.Tree, kind cst.Kind) cst.NodeID {
	t.Helper()
	ids := findAll(tree, kind)
	require.NotEmpty(t, ids, "no %s in tree", kind)
	return ids[0]
}
