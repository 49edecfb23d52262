package cst

import (
	"sort"
	"unicode/utf16"
	"unicode/utf8"
)

// Position is a zero-based line and column.
type Position struct {
	Line   int
	Column int
}

// LineNumbers maps byte offsets in an input to line and column positions.
// Lines end at '\n'; a preceding '\r' belongs to the line it ends.
type LineNumbers struct {
	input  []byte
	starts []int
}

// NewLineNumbers indexes the line starts of input.
func NewLineNumbers(input []byte) *LineNumbers {
	starts := []int{0}
	for idx, char := range input {
		if char == '\n' {
			starts = append(starts, idx+1)
		}
	}
	return &LineNumbers{input: input, starts: starts}
}

// LineCount returns the number of lines. An input ending in '\n' has an
// empty final line.
func (ln *LineNumbers) LineCount() int {
	return len(ln.starts)
}

// LineStart returns the offset where line begins.
func (ln *LineNumbers) LineStart(line int) (int, bool) {
	if line < 0 || line >= len(ln.starts) {
		return 0, false
	}
	return ln.starts[line], true
}

// Line returns the content of line without its line break.
func (ln *LineNumbers) Line(line int) []byte {
	start, ok := ln.LineStart(line)
	if !ok {
		return nil
	}
	end := len(ln.input)
	if line+1 < len(ln.starts) {
		end = ln.starts[line+1] - 1
		if end > start && ln.input[end-1] == '\r' {
			end--
		}
	}
	return ln.input[start:end]
}

func (ln *LineNumbers) lineOf(offset int) int {
	offset = min(max(offset, 0), len(ln.input))
	// First line starting after offset, minus one.
	return sort.Search(len(ln.starts), func(i int) bool {
		return ln.starts[i] > offset
	}) - 1
}

// Position converts a byte offset to a line and byte column.
// Offsets outside the input are clamped.
func (ln *LineNumbers) Position(offset int) Position {
	line := ln.lineOf(offset)
	offset = min(max(offset, 0), len(ln.input))
	return Position{Line: line, Column: offset - ln.starts[line]}
}

// UTF16Position converts a byte offset to a line and a column counted in
// UTF-16 code units, as editors speaking LSP expect.
func (ln *LineNumbers) UTF16Position(offset int) Position {
	pos := ln.Position(offset)
	start := ln.starts[pos.Line]
	pos.Column = UTF16Len(ln.input[start : start+pos.Column])
	return pos
}

// Offset converts a line and byte column back to an offset.
func (ln *LineNumbers) Offset(pos Position) (int, bool) {
	start, ok := ln.LineStart(pos.Line)
	if !ok || pos.Column < 0 {
		return 0, false
	}
	offset := start + pos.Column
	if offset > len(ln.input) {
		return 0, false
	}
	return offset, true
}

// UTF16Len returns the number of UTF-16 code units needed to encode text.
// Invalid bytes count as one unit each.
func UTF16Len(text []byte) int {
	n := 0
	for len(text) > 0 {
		r, size := utf8.DecodeRune(text)
		text = text[size:]
		if r == utf8.RuneError && size == 1 {
			n++
			continue
		}
		n += utf16.RuneLen(r)
	}
	return n
}
