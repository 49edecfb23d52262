package parser_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goswon/pkg/cst"
	"github.com/yaklabco/goswon/pkg/parser"
)

// shape renders the non-trivia structure of a subtree as nested kinds with
// terminal text in quotes.
func shape(tree *cst.Tree, input []byte, id cst.NodeID) string {
	data, _ := tree.NodeData(id)
	if kind, ok := data.TerminalKind(); ok {
		return kind.String() + " " + strconv.Quote(data.String(input))
	}
	kind, _ := data.NonTerminalKind()
	var parts []string
	for child := range tree.Children(id) {
		cd, _ := tree.NodeData(child)
		if k, ok := cd.TerminalKind(); ok && k.IsBuiltinTerminal() {
			continue
		}
		parts = append(parts, shape(tree, input, child))
	}
	if len(parts) == 0 {
		return kind.String()
	}
	return kind.String() + "(" + strings.Join(parts, ", ") + ")"
}

func TestParseMinimalBinding(t *testing.T) {
	t.Parallel()

	src := []byte("k = 1")
	tree, err := parser.Parse(src)
	require.NoError(t, err)

	want := `Root(Swon(SwonList(Binding(Keys(Key(KeyBase(Ident "k"), KeyOpt), KeysList), ` +
		`BindingRhs(ValueBinding(Bind(Bind "="), Value(Integer(Integer "1"))))), SwonList), SwonList0))`
	assert.Equal(t, want, shape(tree, src, tree.Root()))
	assert.Equal(t, string(src), string(tree.Render(src)))
}

func TestParseShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		kind cst.NonTerminalKind
		want string
	}{
		{
			name: "extension key",
			src:  "$schema = null",
			kind: cst.NodeKeyBase,
			want: `KeyBase(ExtensionNameSpace(Ext(Dollar "$"), Ident "schema"))`,
		},
		{
			name: "array marker with index",
			src:  "a[2] = true",
			kind: cst.NodeKey,
			want: `Key(KeyBase(Ident "a"), KeyOpt(ArrayMarker(ArrayBegin(LBracket "["), ` +
				`ArrayMarkerOpt(Integer(Integer "2")), ArrayEnd(RBracket "]"))))`,
		},
		{
			name: "keyword as key",
			src:  "true = false",
			kind: cst.NodeKeyBase,
			want: `KeyBase(Ident "true")`,
		},
		{
			name: "typed string",
			src:  `re = regex"a+"`,
			kind: cst.NodeValue,
			want: `Value(TypedStr(TypedQuote(TypedQuote "regex\""), InStr(InStr "a+"), Quote(Quote "\"")))`,
		},
		{
			name: "text binding",
			src:  "msg: hello world\n",
			kind: cst.NodeTextBinding,
			want: `TextBinding(TextStart(TextStart ":"), TextBindingOpt(Ws(Ws " ")), Text(Text "hello world"), ` +
				`Newline(Newline "\n"))`,
		},
		{
			name: "text binding at end of input",
			src:  "msg:",
			kind: cst.NodeTextBinding,
			want: `TextBinding(TextStart(TextStart ":"), TextBindingOpt, Text(Text ""), Newline(Newline ""))`,
		},
		{
			name: "named code",
			src:  "q = sql`select`",
			kind: cst.NodeValue,
			want: "Value(NamedCode(NamedCode \"sql`select`\"))",
		},
		{
			name: "string continuation",
			src:  `s = "a" \ "b"`,
			kind: cst.NodeStrContinuesList,
			want: `StrContinuesList(Continue(Esc "\\"), Str(Quote(Quote "\""), InStr(InStr "b"), Quote(Quote "\"")), ` +
				`StrContinuesList)`,
		},
		{
			name: "named code block",
			src:  "c = ```sh\necho\n```",
			kind: cst.NodeNamedCodeBlock,
			want: "NamedCodeBlock(NamedCodeBlockBegin(NamedCodeBlockBegin \"```sh\"), CodeBlockTailCommon(" +
				"Newline(Newline \"\\n\"), CodeBlockTailCommonList(CodeBlockLine(CodeBlockLine \"echo\\n\"), " +
				"CodeBlockTailCommonList), CodeBlockTailCommonOpt, CodeBlockDelimiter(CodeBlockDelimiter \"```\")))",
		},
		{
			name: "section block",
			src:  "@s { }",
			kind: cst.NodeSectionBody,
			want: `SectionBody(SectionBinding(Begin(LBrace "{"), Swon(SwonList, SwonList0), End(RBrace "}")))`,
		},
		{
			name: "hole",
			src:  "todo = !",
			kind: cst.NodeValue,
			want: `Value(Hole(Hole "!"))`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			src := []byte(tc.src)
			tree, err := parser.Parse(src)
			require.NoError(t, err)
			assert.Equal(t, tc.src, string(tree.Render(src)))

			var found cst.NodeID = cst.InvalidNodeID
			for id := range tree.Descendants(tree.Root()) {
				if data, _ := tree.NodeData(id); data.Kind == tc.kind.Kind() {
					found = id
					break
				}
			}
			require.NotEqual(t, cst.InvalidNodeID, found, "no %s node", tc.kind)
			assert.Equal(t, tc.want, shape(tree, src, found))
		})
	}
}

func TestParseTriviaPlacement(t *testing.T) {
	t.Parallel()

	src := []byte("a = 1 // one\n\nb = 2\n")
	tree, err := parser.Parse(src)
	require.NoError(t, err)

	// Trivia lands in the node open when the next terminal is emitted: the
	// comment and blank lines before "b" go to b's KeyBase, the final newline
	// to Root.
	var keyBases []cst.NodeID
	for id := range tree.Descendants(tree.Root()) {
		if data, _ := tree.NodeData(id); data.Kind == cst.NodeKeyBase.Kind() {
			keyBases = append(keyBases, id)
		}
	}
	require.Len(t, keyBases, 2)

	var kinds []string
	for child := range tree.Children(keyBases[1]) {
		data, _ := tree.NodeData(child)
		kinds = append(kinds, data.String(src))
	}
	assert.Equal(t, []string{" ", "// one", "\n", "\n", "b"}, kinds)

	children := tree.ChildIDs(tree.Root())
	last, _ := tree.NodeData(children[len(children)-1])
	assert.Equal(t, "\n", last.String(src))
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		line int
		col  int
		msg  string
	}{
		{name: "missing rhs", src: "k 1", line: 1, col: 3, msg: "expected '=', '{' or ':' after key"},
		{name: "missing value", src: "k =\n", line: 2, col: 1, msg: "expected a value"},
		{name: "unterminated string", src: "k = \"abc\n", line: 1, col: 9, msg: "unterminated string"},
		{name: "unterminated block comment", src: "/* x", line: 1, col: 1, msg: "unterminated block comment"},
		{name: "unterminated code block", src: "k = ```\nx\n", line: 3, col: 1, msg: "unterminated code block"},
		{name: "missing close brace", src: "k = {a = 1", line: 1, col: 11, msg: "expected '}'"},
		{name: "stray token", src: "k = 1\n]", line: 2, col: 1, msg: "expected a binding or section"},
		{name: "binding after section", src: "@s\nk = 1\n@t {\n", line: 4, col: 1, msg: "expected '}'"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := parser.Parse([]byte(tc.src))
			require.Error(t, err)
			require.ErrorIs(t, err, parser.ErrSyntax)

			var syntaxErr *parser.SyntaxError
			require.True(t, errors.As(err, &syntaxErr))
			assert.Equal(t, tc.line, syntaxErr.Line, "line")
			assert.Equal(t, tc.col, syntaxErr.Column, "column")
			assert.Contains(t, syntaxErr.Message, tc.msg)
		})
	}
}

func TestParseTolerant(t *testing.T) {
	t.Parallel()

	src := []byte("a = 1\nb ?? junk\nc = %\nd = 4\n")
	_, err := parser.Parse(src)
	require.Error(t, err)

	tree, err := parser.ParseWithOptions(src, parser.Options{Tolerant: true})
	require.NoError(t, err)
	assert.Equal(t, string(src), string(tree.Render(src)))

	var recovered []string
	for id := range tree.Descendants(tree.Root()) {
		data, _ := tree.NodeData(id)
		if data.IsRecovered() {
			kind, _ := data.NonTerminalKind()
			recovered = append(recovered, kind.String()+" "+strings.TrimSpace(string(tree.RenderNode(id, src))))
		}
	}
	assert.Equal(t, []string{"BindingRhs ?? junk", "Value %"}, recovered)
}
