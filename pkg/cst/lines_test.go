package cst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/goswon/pkg/cst"
)

func TestLineNumbersPosition(t *testing.T) {
	t.Parallel()

	ln := cst.NewLineNumbers([]byte("ab\ncd\r\n\nx"))

	tests := []struct {
		name   string
		offset int
		want   cst.Position
	}{
		{name: "start", offset: 0, want: cst.Position{Line: 0, Column: 0}},
		{name: "first newline", offset: 2, want: cst.Position{Line: 0, Column: 2}},
		{name: "second line", offset: 4, want: cst.Position{Line: 1, Column: 1}},
		{name: "carriage return", offset: 5, want: cst.Position{Line: 1, Column: 2}},
		{name: "empty line", offset: 7, want: cst.Position{Line: 2, Column: 0}},
		{name: "last line", offset: 8, want: cst.Position{Line: 3, Column: 0}},
		{name: "end of input", offset: 9, want: cst.Position{Line: 3, Column: 1}},
		{name: "clamped", offset: 50, want: cst.Position{Line: 3, Column: 1}},
		{name: "negative", offset: -3, want: cst.Position{Line: 0, Column: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ln.Position(tc.offset))
		})
	}

	assert.Equal(t, 4, ln.LineCount())
	assert.Equal(t, "cd", string(ln.Line(1)))
	assert.Empty(t, ln.Line(2))
	assert.Equal(t, "x", string(ln.Line(3)))
	assert.Nil(t, ln.Line(4))

	offset, ok := ln.Offset(cst.Position{Line: 1, Column: 1})
	assert.True(t, ok)
	assert.Equal(t, 4, offset)
	_, ok = ln.Offset(cst.Position{Line: 7})
	assert.False(t, ok)
}

func TestLineNumbersUTF16(t *testing.T) {
	t.Parallel()

	// "é" is two bytes and one UTF-16 unit; "😀" is four bytes and two units.
	src := []byte("é😀x\nk")
	ln := cst.NewLineNumbers(src)

	assert.Equal(t, cst.Position{Line: 0, Column: 6}, ln.Position(6))
	assert.Equal(t, cst.Position{Line: 0, Column: 3}, ln.UTF16Position(6))
	assert.Equal(t, cst.Position{Line: 1, Column: 0}, ln.UTF16Position(8))

	assert.Equal(t, 3, cst.UTF16Len([]byte("é😀")))
	assert.Equal(t, 1, cst.UTF16Len([]byte{0xff}))
}
