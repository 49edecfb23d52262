package cst_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goswon/pkg/cst"
)

// recorder logs every callback it receives.
type recorder struct {
	cst.BaseVisitor

	visited         []cst.NodeID
	trivia          []cst.NodeID
	events          []string
	constructErrors []cst.NodeID
}

func (r *recorder) VisitTerminal(_ *cst.Walker, id cst.NodeID, kind cst.TerminalKind, _ cst.NodeData) error {
	r.visited = append(r.visited, id)
	r.events = append(r.events, kind.String())
	return nil
}

func (r *recorder) VisitNonTerminal(_ *cst.Walker, id cst.NodeID, kind cst.NonTerminalKind, _ cst.NodeData) error {
	r.visited = append(r.visited, id)
	r.events = append(r.events, "("+kind.String())
	return nil
}

func (r *recorder) VisitNonTerminalClose(_ *cst.Walker, _ cst.NodeID, kind cst.NonTerminalKind, _ cst.NodeData) error {
	r.events = append(r.events, kind.String()+")")
	return nil
}

func (r *recorder) VisitWhitespaceTerminal(w *cst.Walker, term cst.WhitespaceTerminal, data cst.NodeData) error {
	r.trivia = append(r.trivia, term.NodeID())
	return r.VisitTerminal(w, term.NodeID(), cst.TokWhitespace, data)
}

func (r *recorder) VisitNewLineTerminal(w *cst.Walker, term cst.NewLineTerminal, data cst.NodeData) error {
	r.trivia = append(r.trivia, term.NodeID())
	return r.VisitTerminal(w, term.NodeID(), cst.TokNewLine, data)
}

func (r *recorder) VisitLineCommentTerminal(w *cst.Walker, term cst.LineCommentTerminal, data cst.NodeData) error {
	r.trivia = append(r.trivia, term.NodeID())
	return r.VisitTerminal(w, term.NodeID(), cst.TokLineComment, data)
}

func (r *recorder) VisitBlockCommentTerminal(w *cst.Walker, term cst.BlockCommentTerminal, data cst.NodeData) error {
	r.trivia = append(r.trivia, term.NodeID())
	return r.VisitTerminal(w, term.NodeID(), cst.TokBlockComment, data)
}

func (r *recorder) OnConstructError(w *cst.Walker, id cst.NodeID, err error) error {
	r.constructErrors = append(r.constructErrors, id)
	return r.BaseVisitor.OnConstructError(w, id, err)
}

// childKinds lists the kinds of visited nodes whose parent is parent.
func (r *recorder) childKinds(tree *cst.Tree, parent cst.NodeID) []string {
	var kinds []string
	for _, id := range r.visited {
		p, ok := tree.Parent(id)
		if !ok || p != parent {
			continue
		}
		data, _ := tree.NodeData(id)
		if kind, ok := data.TerminalKind(); ok {
			kinds = append(kinds, kind.String())
			continue
		}
		kind, _ := data.NonTerminalKind()
		kinds = append(kinds, kind.String())
	}
	return kinds
}

// renderVisited concatenates the text of visited terminals in visit order.
func (r *recorder) renderVisited(tree *cst.Tree, input []byte) string {
	var sb strings.Builder
	for _, id := range r.visited {
		data, _ := tree.NodeData(id)
		sb.Write(data.Bytes(input))
	}
	return sb.String()
}

func TestWalkVisitsTerminalsInSourceOrder(t *testing.T) {
	t.Parallel()

	tests := []string{
		"k = 1",
		"// leading\nk = 1 // trailing\n",
		"a = { b = 1, /* c */ d = [1, 2,], }\n\n@ s . t\n  x : some text\n  y = \"str\" \\ \"more\"\n",
		"code = ```go\nfunc main() {}\n  ```\n",
		"$ext = true\n\"quoted key\" = null\n1 = !\n",
	}

	for _, src := range tests {
		tree := mustParse(t, src)
		rec := &recorder{}
		require.NoError(t, cst.Walk(tree, rec))
		assert.Equal(t, src, rec.renderVisited(tree, []byte(src)))
		assert.Empty(t, rec.constructErrors)

		for _, id := range rec.trivia {
			data, _ := tree.NodeData(id)
			kind, ok := data.TerminalKind()
			require.True(t, ok)
			assert.True(t, kind.IsBuiltinTerminal(), "trivia hook got %s", kind)
		}
	}
}

func TestWalkEventOrder(t *testing.T) {
	t.Parallel()

	tree := mustParse(t, "k = 1")
	rec := &recorder{}
	require.NoError(t, cst.Walk(tree, rec))

	want := "(Root (Swon (SwonList (Binding (Keys (Key (KeyBase Ident KeyBase) (KeyOpt KeyOpt) Key) " +
		"(KeysList KeysList) Keys) (BindingRhs (ValueBinding (Bind Whitespace Bind Bind) (Value (Integer " +
		"Whitespace Integer Integer) Value) ValueBinding) BindingRhs) Binding) (SwonList SwonList) SwonList) " +
		"(SwonList0 SwonList0) Swon) Root)"
	assert.Equal(t, want, strings.Join(rec.events, " "))
}

// skipValues overrides one hook without calling its super method.
type skipValues struct {
	recorder
}

func (s *skipValues) VisitValue(*cst.Walker, cst.ValueHandle, cst.ValueView) error {
	return nil
}

func TestWalkOverrideShortCircuits(t *testing.T) {
	t.Parallel()

	src := "a = [1, 2]\nb = 3\n"
	tree := mustParse(t, src)
	v := &skipValues{}
	require.NoError(t, cst.Walk(tree, v))

	got := v.renderVisited(tree, []byte(src))
	assert.NotContains(t, got, "1")
	assert.NotContains(t, got, "3")
	assert.Contains(t, got, "a =")
	assert.Contains(t, got, "b =")
}

type failOnInteger struct {
	cst.BaseVisitor
}

var errStop = errors.New("stop")

func (failOnInteger) VisitIntegerTerminal(*cst.Walker, cst.IntegerTerminal, cst.NodeData) error {
	return errStop
}

func TestWalkPropagatesErrors(t *testing.T) {
	t.Parallel()

	tree := mustParse(t, "a = true\nb = 2\n")
	require.ErrorIs(t, cst.Walk(tree, failOnInteger{}), errStop)
}

func TestWalkRecoversFromUnexpectedChild(t *testing.T) {
	t.Parallel()

	// A Root whose child is Keys rather than Swon.
	b := cst.NewBuilder()
	root := b.OpenNonTerminal(cst.NodeRoot)
	b.OpenNonTerminal(cst.NodeKeys)
	b.OpenNonTerminal(cst.NodeKey)
	b.OpenNonTerminal(cst.NodeKeyBase)
	b.EmitTerminal(cst.TokIdent, cst.InputSpan{Start: 0, End: 1})
	require.NoError(t, b.CloseNonTerminal())
	b.OpenNonTerminal(cst.NodeKeyOpt)
	require.NoError(t, b.CloseNonTerminal())
	require.NoError(t, b.CloseNonTerminal())
	b.OpenNonTerminal(cst.NodeKeysList)
	require.NoError(t, b.CloseNonTerminal())
	require.NoError(t, b.CloseNonTerminal())
	b.EmitTerminal(cst.TokNewLine, cst.InputSpan{Start: 1, End: 2})
	require.NoError(t, b.CloseNonTerminal())
	tree, err := b.Build()
	require.NoError(t, err)

	src := []byte("k\n")
	rec := &recorder{}
	require.NoError(t, cst.Walk(tree, rec))
	assert.Equal(t, []cst.NodeID{root}, rec.constructErrors)
	assert.Equal(t, string(src), rec.renderVisited(tree, src))
	assert.Len(t, rec.trivia, 1)
}
