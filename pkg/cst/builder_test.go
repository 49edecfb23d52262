package cst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goswon/pkg/cst"
)

func TestBuilderBuildsRootFirst(t *testing.T) {
	t.Parallel()

	b := cst.NewBuilder()
	root := b.OpenNonTerminal(cst.NodeRoot)
	swon := b.OpenNonTerminal(cst.NodeSwon)
	ws := b.EmitTerminal(cst.TokWhitespace, cst.InputSpan{Start: 0, End: 2})
	assert.Equal(t, 2, b.Depth())
	require.NoError(t, b.CloseNonTerminal())
	require.NoError(t, b.CloseNonTerminal())

	tree, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, root, tree.Root())
	assert.Equal(t, []cst.NodeID{swon}, tree.ChildIDs(root))
	assert.Equal(t, []cst.NodeID{ws}, tree.ChildIDs(swon))
	assert.Equal(t, "  ", string(tree.Render([]byte("  "))))
}

func TestBuilderRecoveryMarker(t *testing.T) {
	t.Parallel()

	b := cst.NewBuilder()
	b.OpenNonTerminal(cst.NodeRoot)
	marker := b.EmitRecoveryMarker(cst.NodeBindingRhs)
	b.EmitTerminal(cst.TokText, cst.InputSpan{Start: 0, End: 3})
	require.NoError(t, b.CloseNonTerminal())
	require.NoError(t, b.CloseNonTerminal())

	tree, err := b.Build()
	require.NoError(t, err)
	data, ok := tree.NodeData(marker)
	require.True(t, ok)
	assert.True(t, data.IsRecovered())
	assert.Equal(t, 1, tree.ChildCount(marker))
}

func TestBuilderUnbalanced(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		drive func(b *cst.Builder)
	}{
		{name: "nothing built", drive: func(*cst.Builder) {}},
		{name: "left open", drive: func(b *cst.Builder) { b.OpenNonTerminal(cst.NodeRoot) }},
		{
			name: "terminal before root",
			drive: func(b *cst.Builder) {
				b.EmitTerminal(cst.TokAt, cst.InputSpan{})
			},
		},
		{
			name: "extra close",
			drive: func(b *cst.Builder) {
				b.OpenNonTerminal(cst.NodeRoot)
				_ = b.CloseNonTerminal()
				_ = b.CloseNonTerminal()
			},
		},
		{
			name: "second root",
			drive: func(b *cst.Builder) {
				b.OpenNonTerminal(cst.NodeRoot)
				_ = b.CloseNonTerminal()
				b.OpenNonTerminal(cst.NodeRoot)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			b := cst.NewBuilder()
			tc.drive(b)
			_, err := b.Build()
			require.ErrorIs(t, err, cst.ErrUnbalancedBuild)
		})
	}
}
