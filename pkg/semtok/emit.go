package semtok

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/yaklabco/goswon/pkg/cst"
)

// Token is a semantic token. Line and Column are 0-based; Column and Length
// count UTF-16 code units.
type Token struct {
	Line      int
	Column    int
	Length    int
	Type      TokenType
	Modifiers Modifier
}

// Emit returns the semantic tokens of tree sorted by position. Terminals
// without input text, such as those inserted by commands, produce no token.
// A terminal spanning several lines yields a token for its first line only.
func Emit(tree *cst.Tree, input []byte) ([]Token, error) {
	e := &emitter{
		tree:  tree,
		input: input,
		lines: cst.NewLineNumbers(input),
	}
	if err := cst.Walk(tree, e); err != nil {
		return nil, fmt.Errorf("semantic tokens: %w", err)
	}
	sort.SliceStable(e.tokens, func(i, j int) bool {
		if e.tokens[i].Line != e.tokens[j].Line {
			return e.tokens[i].Line < e.tokens[j].Line
		}
		return e.tokens[i].Column < e.tokens[j].Column
	})
	return e.tokens, nil
}

// Encode returns tokens in the LSP relative encoding: five integers per
// token holding the line delta, start delta, length, type and modifiers.
// Tokens must be sorted.
func Encode(tokens []Token) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	prevLine, prevCol := 0, 0
	for _, tok := range tokens {
		dl, dc := tok.Line-prevLine, tok.Column
		if dl == 0 {
			dc -= prevCol
		}
		prevLine, prevCol = tok.Line, tok.Column
		data = append(data, uint32(dl), uint32(dc), uint32(tok.Length), uint32(tok.Type), uint32(tok.Modifiers))
	}
	return data
}

type emitter struct {
	cst.BaseVisitor

	tree   *cst.Tree
	input  []byte
	lines  *cst.LineNumbers
	tokens []Token

	// keys counts enclosing binding or section key paths.
	keys int
}

func (e *emitter) VisitKeys(w *cst.Walker, h cst.KeysHandle, view cst.KeysView) error {
	e.keys++
	defer func() { e.keys-- }()
	return w.VisitKeysSuper(h, view)
}

func (e *emitter) VisitTerminal(_ *cst.Walker, id cst.NodeID, kind cst.TerminalKind, data cst.NodeData) error {
	if data.IsDynamic() || data.Span.IsEmpty() {
		return nil
	}
	span := data.Span

	switch kind {
	case cst.TokTrue, cst.TokFalse, cst.TokNull, cst.TokHole:
		e.add(span.Start, span.End, TypeKeyword, 0)
	case cst.TokInteger:
		e.add(span.Start, span.End, TypeNumber, 0)
	case cst.TokQuote, cst.TokTypedQuote, cst.TokInStr, cst.TokText, cst.TokCode, cst.TokCodeBlockLine:
		e.add(span.Start, span.End, TypeString, 0)
	case cst.TokAt:
		e.add(span.Start, span.End, TypeNamespace, 0)
	case cst.TokIdent:
		e.ident(id, span)
	case cst.TokLineComment, cst.TokBlockComment:
		var mods Modifier
		text := span.Text(e.input)
		if bytes.HasPrefix(text, []byte("///")) || bytes.HasPrefix(text, []byte("/**")) {
			mods = ModDocumentation
		}
		e.add(span.Start, span.End, TypeComment, mods)
	case cst.TokNamedCode:
		e.namedCode(span)
	case cst.TokNamedCodeBlockBegin:
		fence := min(span.Start+3, span.End)
		e.add(span.Start, fence, TypeOperator, 0)
		e.add(fence, span.End, TypeNamespace, 0)
	case cst.TokNewline, cst.TokWs, cst.TokNewLine, cst.TokWhitespace:
	default:
		if kind.IsStructuralPunctuation() || kind == cst.TokEsc {
			e.add(span.Start, span.End, TypeOperator, 0)
		}
	}
	return nil
}

func (e *emitter) ident(id cst.NodeID, span cst.InputSpan) {
	var mods Modifier
	if e.keys > 0 {
		mods = ModDeclaration
	}
	if parent, ok := e.tree.Parent(id); ok {
		data, _ := e.tree.NodeData(parent)
		if kind, ok := data.NonTerminalKind(); ok && kind == cst.NodeExtensionNameSpace {
			e.add(span.Start, span.End, TypeVariable, mods)
			return
		}
	}
	e.add(span.Start, span.End, TypeProperty, mods)
}

// namedCode splits name`code` at its first backtick.
func (e *emitter) namedCode(span cst.InputSpan) {
	text := span.Text(e.input)
	tick := bytes.IndexByte(text, '`')
	if tick < 0 || len(text)-tick < 2 {
		e.add(span.Start, span.End, TypeString, 0)
		return
	}
	name := span.Start + tick
	e.add(span.Start, name, TypeNamespace, 0)
	e.add(name, name+1, TypeOperator, 0)
	e.add(name+1, span.End-1, TypeString, 0)
	e.add(span.End-1, span.End, TypeOperator, 0)
}

// add records the token covering [start, end), cut at the first line break.
func (e *emitter) add(start, end int, typ TokenType, mods Modifier) {
	text := e.input[start:end]
	if i := bytes.IndexAny(text, "\r\n"); i >= 0 {
		text = text[:i]
	}
	if len(text) == 0 {
		return
	}
	pos := e.lines.UTF16Position(start)
	e.tokens = append(e.tokens, Token{
		Line:      pos.Line,
		Column:    pos.Column,
		Length:    cst.UTF16Len(text),
		Type:      typ,
		Modifiers: mods,
	})
}
