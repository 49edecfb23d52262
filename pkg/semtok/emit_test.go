package semtok_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goswon/pkg/cst"
	"github.com/yaklabco/goswon/pkg/parser"
	"github.com/yaklabco/goswon/pkg/semtok"
)

func emit(t *testing.T, input string) []semtok.Token {
	t.Helper()

	tree, err := parser.Parse([]byte(input))
	require.NoError(t, err)

	tokens, err := semtok.Emit(tree, []byte(input))
	require.NoError(t, err)
	return tokens
}

func tok(line, col, length int, typ semtok.TokenType, mods semtok.Modifier) semtok.Token {
	return semtok.Token{Line: line, Column: col, Length: length, Type: typ, Modifiers: mods}
}

func TestEmitNamedCodeSplit(t *testing.T) {
	t.Parallel()

	input := []byte("foo`bar`")
	b := cst.NewBuilder()
	b.OpenNonTerminal(cst.NodeRoot)
	b.EmitTerminal(cst.TokNamedCode, cst.InputSpan{Start: 0, End: 8})
	require.NoError(t, b.CloseNonTerminal())
	tree, err := b.Build()
	require.NoError(t, err)

	tokens, err := semtok.Emit(tree, input)
	require.NoError(t, err)
	assert.Equal(t, []semtok.Token{
		tok(0, 0, 3, semtok.TypeNamespace, 0),
		tok(0, 3, 1, semtok.TypeOperator, 0),
		tok(0, 4, 3, semtok.TypeString, 0),
		tok(0, 7, 1, semtok.TypeOperator, 0),
	}, tokens)

	assert.Equal(t, []uint32{
		0, 0, 3, 4, 0,
		0, 3, 1, 5, 0,
		0, 1, 3, 1, 0,
		0, 3, 1, 5, 0,
	}, semtok.Encode(tokens))
}

func TestEmitDocument(t *testing.T) {
	t.Parallel()

	decl := semtok.ModDeclaration
	got := emit(t, "k = 1 // c\n@s.t\n$e = \"x\"\no = {a = true}\n")
	want := []semtok.Token{
		tok(0, 0, 1, semtok.TypeProperty, decl),
		tok(0, 2, 1, semtok.TypeOperator, 0),
		tok(0, 4, 1, semtok.TypeNumber, 0),
		tok(0, 6, 4, semtok.TypeComment, 0),

		tok(1, 0, 1, semtok.TypeNamespace, 0),
		tok(1, 1, 1, semtok.TypeProperty, decl),
		tok(1, 2, 1, semtok.TypeOperator, 0),
		tok(1, 3, 1, semtok.TypeProperty, decl),

		tok(2, 0, 1, semtok.TypeOperator, 0),
		tok(2, 1, 1, semtok.TypeVariable, decl),
		tok(2, 3, 1, semtok.TypeOperator, 0),
		tok(2, 5, 1, semtok.TypeString, 0),
		tok(2, 6, 1, semtok.TypeString, 0),
		tok(2, 7, 1, semtok.TypeString, 0),

		tok(3, 0, 1, semtok.TypeProperty, decl),
		tok(3, 2, 1, semtok.TypeOperator, 0),
		tok(3, 4, 1, semtok.TypeOperator, 0),
		tok(3, 5, 1, semtok.TypeProperty, 0),
		tok(3, 7, 1, semtok.TypeOperator, 0),
		tok(3, 9, 4, semtok.TypeKeyword, 0),
		tok(3, 13, 1, semtok.TypeOperator, 0),
	}
	assert.Equal(t, want, got)
}

func TestEmitEdgeCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []semtok.Token
	}{
		{
			name:  "utf16 columns",
			input: "k = \"é😀\"",
			want: []semtok.Token{
				tok(0, 0, 1, semtok.TypeProperty, semtok.ModDeclaration),
				tok(0, 2, 1, semtok.TypeOperator, 0),
				tok(0, 4, 1, semtok.TypeString, 0),
				tok(0, 5, 3, semtok.TypeString, 0),
				tok(0, 8, 1, semtok.TypeString, 0),
			},
		},
		{
			name:  "multi-line comment reports first line",
			input: "/* a\nb */ k = !",
			want: []semtok.Token{
				tok(0, 0, 4, semtok.TypeComment, 0),
				tok(1, 5, 1, semtok.TypeProperty, semtok.ModDeclaration),
				tok(1, 7, 1, semtok.TypeOperator, 0),
				tok(1, 9, 1, semtok.TypeKeyword, 0),
			},
		},
		{
			name:  "documentation comment",
			input: "/// doc\nk = null",
			want: []semtok.Token{
				tok(0, 0, 7, semtok.TypeComment, semtok.ModDocumentation),
				tok(1, 0, 1, semtok.TypeProperty, semtok.ModDeclaration),
				tok(1, 2, 1, semtok.TypeOperator, 0),
				tok(1, 4, 4, semtok.TypeKeyword, 0),
			},
		},
		{
			name:  "named code block",
			input: "c = ```go\nx\n```\n",
			want: []semtok.Token{
				tok(0, 0, 1, semtok.TypeProperty, semtok.ModDeclaration),
				tok(0, 2, 1, semtok.TypeOperator, 0),
				tok(0, 4, 3, semtok.TypeOperator, 0),
				tok(0, 7, 2, semtok.TypeNamespace, 0),
				tok(1, 0, 1, semtok.TypeString, 0),
				tok(2, 0, 3, semtok.TypeOperator, 0),
			},
		},
		{
			name:  "text binding",
			input: "t: hello\n",
			want: []semtok.Token{
				tok(0, 0, 1, semtok.TypeProperty, semtok.ModDeclaration),
				tok(0, 1, 1, semtok.TypeOperator, 0),
				tok(0, 3, 5, semtok.TypeString, 0),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, emit(t, tt.input))
		})
	}
}

func TestEmitSkipsDynamicTerminals(t *testing.T) {
	t.Parallel()

	input := []byte("k=1")
	tree, err := parser.Parse(input)
	require.NoError(t, err)

	root := tree.Root()
	cmds := cst.NewCommands(tree)
	comment := cmds.InsertDynamicTerminal(cst.TokLineComment, "// added")
	var last cst.NodeID
	for id := range tree.Children(root) {
		last = id
	}
	cmds.AddNodesAfter(root, last, comment)
	require.NoError(t, cmds.ApplyTo(tree))

	tokens, err := semtok.Emit(tree, input)
	require.NoError(t, err)
	assert.Len(t, tokens, 3)
}

func TestEncodeDeltas(t *testing.T) {
	t.Parallel()

	tokens := []semtok.Token{
		tok(0, 2, 1, semtok.TypeProperty, 0),
		tok(0, 6, 2, semtok.TypeNumber, 0),
		tok(3, 4, 5, semtok.TypeComment, semtok.ModDocumentation),
	}
	assert.Equal(t, []uint32{
		0, 2, 1, 3, 0,
		0, 4, 2, 2, 0,
		3, 4, 5, 6, 2,
	}, semtok.Encode(tokens))
	assert.Empty(t, semtok.Encode(nil))
}

func TestLegend(t *testing.T) {
	t.Parallel()

	legend := semtok.DefaultLegend()
	assert.Equal(t, []string{"keyword", "string", "number", "property", "namespace", "operator", "comment", "variable"}, legend.TokenTypes)
	assert.Equal(t, []string{"declaration", "documentation"}, legend.TokenModifiers)
	assert.Equal(t, "namespace", semtok.TypeNamespace.String())
}
