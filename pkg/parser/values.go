package parser

import "github.com/yaklabco/goswon/pkg/cst"

func (p *parser) parseValue() error {
	c := p.peek()
	if p.err != nil {
		return p.err
	}

	var parse func() error
	switch {
	case p.pos >= len(p.input):
	case c == '{':
		parse = p.parseObject
	case c == '[':
		parse = p.parseArray
	case c == '!':
		parse = p.single(cst.NodeHole, cst.TokHole, p.pos+1)
	case c == '"':
		parse = p.parseStrContinues
	case p.hasPrefix(p.pos, fence):
		parse = p.parseCodeBlock
	case c == '`':
		parse = p.parseCode
	case p.integerEnd(p.pos, true) > p.pos:
		parse = p.single(cst.NodeInteger, cst.TokInteger, p.integerEnd(p.pos, true))
	default:
		parse = p.wordValue()
	}
	if parse == nil {
		return p.recoverLine(cst.NodeValue, "a value")
	}

	p.open(cst.NodeValue)
	if err := parse(); err != nil {
		return err
	}
	p.close()
	return nil
}

func (p *parser) single(node cst.NonTerminalKind, kind cst.TerminalKind, end int) func() error {
	return func() error {
		p.wrap(node, kind, end)
		return nil
	}
}

// wordValue classifies a value that starts with an identifier: a keyword,
// a typed string or named inline code.
func (p *parser) wordValue() func() error {
	end := p.identEnd(p.pos)
	if end == p.pos {
		return nil
	}
	switch word := string(p.input[p.pos:end]); {
	case p.at(end, '"'):
		return func() error { return p.parseTypedStr(end) }
	case p.at(end, '`'):
		return func() error { return p.parseNamedCode(end) }
	case word == "true" || word == "false":
		node, kind := cst.NodeTrue, cst.TokTrue
		if word == "false" {
			node, kind = cst.NodeFalse, cst.TokFalse
		}
		return func() error {
			p.open(cst.NodeBoolean)
			p.wrap(node, kind, end)
			p.close()
			return nil
		}
	case word == "null":
		return p.single(cst.NodeNull, cst.TokNull, end)
	default:
		return nil
	}
}

func (p *parser) parseObject() error {
	p.open(cst.NodeObject)
	p.wrap(cst.NodeBegin, cst.TokLBrace, p.pos+1)

	depth := 0
	for c := p.peek(); c != '}' && p.startsKey(c); c = p.peek() {
		p.open(cst.NodeObjectList)
		depth++
		if err := p.parseKey(); err != nil {
			return err
		}
		if err := p.expect('=', cst.NodeBind, cst.TokBind); err != nil {
			return err
		}
		if err := p.parseValue(); err != nil {
			return err
		}
		if !p.optionalComma(cst.NodeObjectOpt) {
			break
		}
	}
	p.open(cst.NodeObjectList)
	p.closeN(depth + 1)

	if err := p.expect('}', cst.NodeEnd, cst.TokRBrace); err != nil {
		return err
	}
	p.close()
	return nil
}

func (p *parser) parseArray() error {
	p.open(cst.NodeArray)
	p.wrap(cst.NodeArrayBegin, cst.TokLBracket, p.pos+1)

	depth := 0
	for c := p.peek(); c != ']' && p.pos < len(p.input); c = p.peek() {
		p.open(cst.NodeArrayList)
		depth++
		if err := p.parseValue(); err != nil {
			return err
		}
		if !p.optionalComma(cst.NodeArrayOpt) {
			break
		}
	}
	p.open(cst.NodeArrayList)
	p.closeN(depth + 1)

	if err := p.expect(']', cst.NodeArrayEnd, cst.TokRBracket); err != nil {
		return err
	}
	p.close()
	return nil
}

// optionalComma fills an option node with a comma if one follows.
func (p *parser) optionalComma(opt cst.NonTerminalKind) bool {
	p.open(opt)
	defer p.close()
	if p.peek() != ',' || p.pos >= len(p.input) {
		return false
	}
	p.wrap(cst.NodeComma, cst.TokComma, p.pos+1)
	return true
}

func (p *parser) parseStrContinues() error {
	p.open(cst.NodeStrContinues)
	if err := p.parseStr(); err != nil {
		return err
	}
	depth := 0
	for p.peek() == '\\' && p.pos < len(p.input) {
		p.open(cst.NodeStrContinuesList)
		depth++
		p.wrap(cst.NodeContinue, cst.TokEsc, p.pos+1)
		if p.peek() != '"' {
			return p.unexpected("a string after '\\'")
		}
		if err := p.parseStr(); err != nil {
			return err
		}
	}
	p.open(cst.NodeStrContinuesList)
	p.closeN(depth + 1)
	p.close()
	return nil
}

// parseStr reads a quoted string. p.pos is at the opening quote.
func (p *parser) parseStr() error {
	p.open(cst.NodeStr)
	p.wrap(cst.NodeQuote, cst.TokQuote, p.pos+1)
	end, err := p.strEnd(p.pos)
	if err != nil {
		return err
	}
	p.wrap(cst.NodeInStr, cst.TokInStr, end)
	p.wrap(cst.NodeQuote, cst.TokQuote, end+1)
	p.close()
	return nil
}

// parseTypedStr reads name"…". nameEnd is the offset of the quote.
func (p *parser) parseTypedStr(nameEnd int) error {
	p.open(cst.NodeTypedStr)
	p.wrap(cst.NodeTypedQuote, cst.TokTypedQuote, nameEnd+1)
	end, err := p.strEnd(p.pos)
	if err != nil {
		return err
	}
	p.wrap(cst.NodeInStr, cst.TokInStr, end)
	p.wrap(cst.NodeQuote, cst.TokQuote, end+1)
	p.close()
	return nil
}

func (p *parser) inlineCodeEnd(offset int) (int, error) {
	for i := offset; i < len(p.input); i++ {
		switch p.input[i] {
		case '`':
			return i + 1, nil
		case '\n', '\r':
			return 0, p.errorf(i, "unterminated inline code")
		}
	}
	return 0, p.errorf(len(p.input), "unterminated inline code")
}

func (p *parser) parseCode() error {
	end, err := p.inlineCodeEnd(p.pos + 1)
	if err != nil {
		return err
	}
	p.wrap(cst.NodeCode, cst.TokCode, end)
	return nil
}

// parseNamedCode reads name`…`. nameEnd is the offset of the backtick.
func (p *parser) parseNamedCode(nameEnd int) error {
	end, err := p.inlineCodeEnd(nameEnd + 1)
	if err != nil {
		return err
	}
	p.wrap(cst.NodeNamedCode, cst.TokNamedCode, end)
	return nil
}

func (p *parser) parseCodeBlock() error {
	if nameEnd := p.identEnd(p.pos + len(fence)); nameEnd > p.pos+len(fence) {
		p.open(cst.NodeNamedCodeBlock)
		p.wrap(cst.NodeNamedCodeBlockBegin, cst.TokNamedCodeBlockBegin, nameEnd)
	} else {
		p.open(cst.NodeCodeBlock)
		p.wrap(cst.NodeCodeBlockDelimiter, cst.TokCodeBlockDelimiter, p.pos+len(fence))
	}
	if err := p.parseCodeBlockTail(); err != nil {
		return err
	}
	p.close()
	return nil
}

// parseCodeBlockTail reads the lines of a fenced block and its closing
// fence. Lines are content, never trivia.
func (p *parser) parseCodeBlockTail() error {
	p.open(cst.NodeCodeBlockTailCommon)
	end := p.newlineEnd(p.pos)
	if end == p.pos {
		return p.unexpected("a line break after the opening fence")
	}
	p.wrap(cst.NodeNewline, cst.TokNewline, end)

	depth := 0
	for {
		if p.pos >= len(p.input) {
			return p.errorf(p.pos, "unterminated code block")
		}
		if p.hasPrefix(p.wsEnd(p.pos), fence) {
			break
		}
		end := p.newlineEnd(lineEnd(p.input, p.pos))
		if end == lineEnd(p.input, p.pos) {
			return p.errorf(end, "unterminated code block")
		}
		p.open(cst.NodeCodeBlockTailCommonList)
		depth++
		p.wrap(cst.NodeCodeBlockLine, cst.TokCodeBlockLine, end)
	}
	p.open(cst.NodeCodeBlockTailCommonList)
	p.closeN(depth + 1)

	p.open(cst.NodeCodeBlockTailCommonOpt)
	if end := p.wsEnd(p.pos); end > p.pos {
		p.wrap(cst.NodeWs, cst.TokWs, end)
	}
	p.close()

	p.wrap(cst.NodeCodeBlockDelimiter, cst.TokCodeBlockDelimiter, p.pos+len(fence))
	p.close()
	return nil
}
