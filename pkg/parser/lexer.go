package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/goswon/pkg/cst"
)

const fence = "```"

// trivia is a pending whitespace, newline or comment token. Trivia is held
// until the next terminal is emitted so that it lands in whichever node is
// open at that point.
type trivia struct {
	kind cst.TerminalKind
	span cst.InputSpan
}

// scanTrivia collects trivia starting at p.pos into p.pending.
func (p *parser) scanTrivia() error {
	for p.pos < len(p.input) {
		start := p.pos
		switch c := p.input[p.pos]; {
		case c == ' ' || c == '\t':
			end := start
			for end < len(p.input) && (p.input[end] == ' ' || p.input[end] == '\t') {
				end++
			}
			p.addTrivia(cst.TokWhitespace, end)
		case c == '\n':
			p.addTrivia(cst.TokNewLine, start+1)
		case c == '\r' && p.at(start+1, '\n'):
			p.addTrivia(cst.TokNewLine, start+2)
		case c == '/' && p.at(start+1, '/'):
			p.addTrivia(cst.TokLineComment, lineEnd(p.input, start))
		case c == '/' && p.at(start+1, '*'):
			end := indexFrom(p.input, start+2, "*/")
			if end < 0 {
				return p.errorf(start, "unterminated block comment")
			}
			p.addTrivia(cst.TokBlockComment, end+2)
		default:
			return nil
		}
	}
	return nil
}

func (p *parser) addTrivia(kind cst.TerminalKind, end int) {
	p.pending = append(p.pending, trivia{kind: kind, span: cst.InputSpan{Start: p.pos, End: end}})
	p.pos = end
}

func (p *parser) at(offset int, c byte) bool {
	return offset < len(p.input) && p.input[offset] == c
}

func (p *parser) hasPrefix(offset int, prefix string) bool {
	return offset+len(prefix) <= len(p.input) && string(p.input[offset:offset+len(prefix)]) == prefix
}

// lineEnd returns the offset of the line break ending the line at offset,
// not including a '\r' before '\n'.
func lineEnd(input []byte, offset int) int {
	for i := offset; i < len(input); i++ {
		if input[i] == '\n' {
			if i > offset && input[i-1] == '\r' {
				return i - 1
			}
			return i
		}
	}
	return len(input)
}

func indexFrom(input []byte, offset int, needle string) int {
	for i := offset; i+len(needle) <= len(input); i++ {
		if string(input[i:i+len(needle)]) == needle {
			return i
		}
	}
	return -1
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// identEnd returns the end of the identifier starting at offset, or offset
// if there is none.
func (p *parser) identEnd(offset int) int {
	r, size := utf8.DecodeRune(p.input[min(offset, len(p.input)):])
	if size == 0 || !isIdentStart(r) {
		return offset
	}
	end := offset + size
	for end < len(p.input) {
		r, size := utf8.DecodeRune(p.input[end:])
		if !isIdentPart(r) {
			break
		}
		end += size
	}
	return end
}

// integerEnd returns the end of the integer literal at offset, or offset if
// there is none.
func (p *parser) integerEnd(offset int, allowSign bool) int {
	end := offset
	if allowSign && p.at(end, '-') {
		end++
	}
	if end >= len(p.input) || !isDigit(p.input[end]) {
		return offset
	}
	for end < len(p.input) && (isDigit(p.input[end]) || p.input[end] == '_') {
		end++
	}
	return end
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// strEnd returns the offset of the closing quote of a string whose content
// starts at offset.
func (p *parser) strEnd(offset int) (int, error) {
	for i := offset; i < len(p.input); i++ {
		switch p.input[i] {
		case '\\':
			i++
		case '"':
			return i, nil
		case '\n', '\r':
			return 0, p.errorf(i, "unterminated string")
		}
	}
	return 0, p.errorf(len(p.input), "unterminated string")
}

// newlineEnd returns the end of a line break at offset, or offset if there is none.
func (p *parser) newlineEnd(offset int) int {
	switch {
	case p.at(offset, '\n'):
		return offset + 1
	case p.at(offset, '\r') && p.at(offset+1, '\n'):
		return offset + 2
	default:
		return offset
	}
}

func (p *parser) wsEnd(offset int) int {
	for offset < len(p.input) && (p.input[offset] == ' ' || p.input[offset] == '\t') {
		offset++
	}
	return offset
}
