// Package parser reads SWON text into a lossless concrete syntax tree.
//
// Every byte of the input ends up in exactly one terminal: significant
// tokens become the terminals of their productions, and whitespace, line
// breaks and comments become trivia terminals attached to whichever node is
// open when the next token is emitted. Rendering the resulting tree
// reproduces the input exactly.
package parser

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/goswon/pkg/cst"
)

// ErrSyntax is matched by every *SyntaxError.
var ErrSyntax = errors.New("syntax error")

// SyntaxError describes input that does not match the grammar.
// Line and Column are 1-based; Column counts bytes.
type SyntaxError struct {
	Offset  int
	Line    int
	Column  int
	Message string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// Unwrap returns ErrSyntax.
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// Options configures parsing.
type Options struct {
	// Tolerant wraps unparseable binding right-hand sides and values in
	// recovery nodes instead of failing.
	Tolerant bool

	// Logger receives debug output. Nil disables logging.
	Logger *log.Logger
}

// Parse parses input strictly.
func Parse(input []byte) (*cst.Tree, error) {
	return ParseWithOptions(input, Options{})
}

// ParseWithOptions parses input into a new tree.
func ParseWithOptions(input []byte, opts Options) (*cst.Tree, error) {
	builder := cst.NewBuilder()
	if err := ParseInto(input, builder, opts); err != nil {
		return nil, err
	}
	tree, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("building tree: %w", err)
	}
	if opts.Logger != nil {
		opts.Logger.Debug("parsed document", "bytes", len(input), "nodes", tree.Len())
	}
	return tree, nil
}

// ParseInto drives b with the productions found in input.
func ParseInto(input []byte, b cst.TreeBuilder, opts Options) error {
	p := &parser{input: input, b: b, opts: opts}
	if err := p.parseRoot(); err != nil {
		return err
	}
	if p.recovered > 0 && opts.Logger != nil {
		opts.Logger.Debug("recovered from syntax errors", "count", p.recovered)
	}
	return p.buildErr
}

type parser struct {
	input   []byte
	pos     int
	pending []trivia
	b       cst.TreeBuilder
	opts    Options

	err       error
	buildErr  error
	recovered int
	lines     *cst.LineNumbers
}

func (p *parser) errorf(offset int, format string, args ...any) error {
	if p.err != nil {
		return p.err
	}
	if p.lines == nil {
		p.lines = cst.NewLineNumbers(p.input)
	}
	pos := p.lines.Position(offset)
	p.err = &SyntaxError{
		Offset:  offset,
		Line:    pos.Line + 1,
		Column:  pos.Column + 1,
		Message: fmt.Sprintf(format, args...),
	}
	return p.err
}

// unexpected reports the token at p.pos.
func (p *parser) unexpected(expected string) error {
	if p.pos >= len(p.input) {
		return p.errorf(p.pos, "unexpected end of input, expected %s", expected)
	}
	return p.errorf(p.pos, "unexpected %q, expected %s", p.input[p.pos], expected)
}

// peek skips trivia and returns the next byte, or 0 at the end of input.
func (p *parser) peek() byte {
	if p.err != nil {
		return 0
	}
	if err := p.scanTrivia(); err != nil {
		return 0
	}
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) open(kind cst.NonTerminalKind) {
	p.b.OpenNonTerminal(kind)
}

func (p *parser) close() {
	if err := p.b.CloseNonTerminal(); err != nil && p.buildErr == nil {
		p.buildErr = err
	}
}

// closeN closes n nodes, as right-recursive lists need.
func (p *parser) closeN(n int) {
	for range n {
		p.close()
	}
}

func (p *parser) flushTrivia() {
	for _, tr := range p.pending {
		p.b.EmitTerminal(tr.kind, tr.span)
	}
	p.pending = p.pending[:0]
}

// emit appends a terminal covering [p.pos, end).
func (p *parser) emit(kind cst.TerminalKind, end int) {
	p.flushTrivia()
	p.b.EmitTerminal(kind, cst.InputSpan{Start: p.pos, End: end})
	p.pos = end
}

// wrap emits a terminal inside its single-terminal production.
func (p *parser) wrap(node cst.NonTerminalKind, kind cst.TerminalKind, end int) {
	p.open(node)
	p.emit(kind, end)
	p.close()
}

func (p *parser) expect(c byte, node cst.NonTerminalKind, kind cst.TerminalKind) error {
	if p.peek() != c || p.pos >= len(p.input) {
		return p.unexpected(fmt.Sprintf("%q", c))
	}
	p.wrap(node, kind, p.pos+1)
	return nil
}

// recoverLine emits a recovery node holding the rest of the line.
func (p *parser) recoverLine(kind cst.NonTerminalKind, expected string) error {
	if !p.opts.Tolerant || p.err != nil {
		return p.unexpected(expected)
	}
	p.recovered++
	p.b.EmitRecoveryMarker(kind)
	if end := lineEnd(p.input, p.pos); end > p.pos {
		p.emit(cst.TokText, end)
	}
	p.close()
	return nil
}

func (p *parser) parseRoot() error {
	p.open(cst.NodeRoot)
	if err := p.parseSwon(); err != nil {
		return err
	}
	if p.peek(); p.err != nil {
		return p.err
	}
	if p.pos < len(p.input) {
		return p.unexpected("a binding or section")
	}
	p.flushTrivia()
	p.close()
	return nil
}

func (p *parser) startsKey(c byte) bool {
	switch {
	case p.pos >= len(p.input):
		return false
	case c == '$' || c == '"' || isDigit(c):
		return true
	default:
		return p.identEnd(p.pos) > p.pos
	}
}

func (p *parser) parseSwon() error {
	p.open(cst.NodeSwon)

	depth := 0
	for p.startsKey(p.peek()) {
		p.open(cst.NodeSwonList)
		depth++
		if err := p.parseBinding(); err != nil {
			return err
		}
	}
	p.open(cst.NodeSwonList)
	p.closeN(depth + 1)

	depth = 0
	for p.peek() == '@' && p.pos < len(p.input) {
		p.open(cst.NodeSwonList0)
		depth++
		if err := p.parseSection(); err != nil {
			return err
		}
	}
	p.open(cst.NodeSwonList0)
	p.closeN(depth + 1)

	p.close()
	return p.err
}

func (p *parser) parseBinding() error {
	p.open(cst.NodeBinding)
	if err := p.parseKeys(); err != nil {
		return err
	}
	if err := p.parseBindingRhs(); err != nil {
		return err
	}
	p.close()
	return nil
}

func (p *parser) parseBindingRhs() error {
	var parse func() error
	switch p.peek() {
	case '=':
		parse = p.parseValueBinding
	case '{':
		parse = p.parseSectionBinding
	case ':':
		parse = p.parseTextBinding
	default:
		return p.recoverLine(cst.NodeBindingRhs, "'=', '{' or ':' after key")
	}
	p.open(cst.NodeBindingRhs)
	if err := parse(); err != nil {
		return err
	}
	p.close()
	return nil
}

func (p *parser) parseValueBinding() error {
	p.open(cst.NodeValueBinding)
	p.wrap(cst.NodeBind, cst.TokBind, p.pos+1)
	if err := p.parseValue(); err != nil {
		return err
	}
	p.close()
	return nil
}

func (p *parser) parseSectionBinding() error {
	p.open(cst.NodeSectionBinding)
	p.wrap(cst.NodeBegin, cst.TokLBrace, p.pos+1)
	if err := p.parseSwon(); err != nil {
		return err
	}
	if err := p.expect('}', cst.NodeEnd, cst.TokRBrace); err != nil {
		return err
	}
	p.close()
	return nil
}

// parseTextBinding reads `: text` up to the end of the line. Nothing after
// the colon is trivia.
func (p *parser) parseTextBinding() error {
	p.open(cst.NodeTextBinding)
	p.wrap(cst.NodeTextStart, cst.TokTextStart, p.pos+1)

	p.open(cst.NodeTextBindingOpt)
	if end := p.wsEnd(p.pos); end > p.pos {
		p.wrap(cst.NodeWs, cst.TokWs, end)
	}
	p.close()

	p.wrap(cst.NodeText, cst.TokText, lineEnd(p.input, p.pos))
	p.wrap(cst.NodeNewline, cst.TokNewline, p.newlineEnd(p.pos))
	p.close()
	return nil
}

func (p *parser) parseSection() error {
	p.open(cst.NodeSection)
	p.wrap(cst.NodeAt, cst.TokAt, p.pos+1)
	if err := p.parseKeys(); err != nil {
		return err
	}

	p.open(cst.NodeSectionBody)
	if p.peek() == '{' {
		if err := p.parseSectionBinding(); err != nil {
			return err
		}
	} else {
		depth := 0
		for p.startsKey(p.peek()) {
			p.open(cst.NodeSectionBodyList)
			depth++
			if err := p.parseBinding(); err != nil {
				return err
			}
		}
		p.open(cst.NodeSectionBodyList)
		p.closeN(depth + 1)
	}
	p.close()

	p.close()
	return p.err
}

func (p *parser) parseKeys() error {
	p.open(cst.NodeKeys)
	if err := p.parseKey(); err != nil {
		return err
	}
	depth := 0
	for p.peek() == '.' && p.pos < len(p.input) {
		p.open(cst.NodeKeysList)
		depth++
		p.wrap(cst.NodeDot, cst.TokDot, p.pos+1)
		if err := p.parseKey(); err != nil {
			return err
		}
	}
	p.open(cst.NodeKeysList)
	p.closeN(depth + 1)
	p.close()
	return nil
}

func (p *parser) parseKey() error {
	p.open(cst.NodeKey)
	if err := p.parseKeyBase(); err != nil {
		return err
	}
	p.open(cst.NodeKeyOpt)
	if p.peek() == '[' && p.pos < len(p.input) {
		if err := p.parseArrayMarker(); err != nil {
			return err
		}
	}
	p.close()
	p.close()
	return nil
}

func (p *parser) parseKeyBase() error {
	c := p.peek()
	if !p.startsKey(c) {
		return p.unexpected("a key")
	}
	p.open(cst.NodeKeyBase)
	switch {
	case c == '$':
		p.open(cst.NodeExtensionNameSpace)
		p.wrap(cst.NodeExt, cst.TokDollar, p.pos+1)
		end := p.identEnd(p.pos)
		if end == p.pos {
			return p.unexpected("an extension name")
		}
		p.emit(cst.TokIdent, end)
		p.close()
	case c == '"':
		if err := p.parseStr(); err != nil {
			return err
		}
	case isDigit(c):
		p.wrap(cst.NodeInteger, cst.TokInteger, p.integerEnd(p.pos, false))
	default:
		p.emit(cst.TokIdent, p.identEnd(p.pos))
	}
	p.close()
	return nil
}

func (p *parser) parseArrayMarker() error {
	p.open(cst.NodeArrayMarker)
	p.wrap(cst.NodeArrayBegin, cst.TokLBracket, p.pos+1)
	p.open(cst.NodeArrayMarkerOpt)
	if isDigit(p.peek()) {
		p.wrap(cst.NodeInteger, cst.TokInteger, p.integerEnd(p.pos, false))
	}
	p.close()
	if err := p.expect(']', cst.NodeArrayEnd, cst.TokRBracket); err != nil {
		return err
	}
	p.close()
	return nil
}
