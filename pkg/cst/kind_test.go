package cst_test

import (
	"slices"
	"testing"

	"github.com/yaklabco/goswon/pkg/cst"
)

func TestTerminalKindClasses(t *testing.T) {
	t.Parallel()

	for kind := cst.TokAt; kind <= cst.TokWs; kind++ {
		classes := 0
		for _, in := range []bool{
			kind.IsBuiltinTerminal(),
			kind.IsStructuralPunctuation(),
			kind.IsOpener(),
			kind.IsScalar(),
			kind.IsContent(),
			kind.IsBoundary(),
			kind == cst.TokEsc,
		} {
			if in {
				classes++
			}
		}
		if classes != 1 {
			t.Errorf("%s belongs to %d classes, want exactly 1", kind, classes)
		}
	}

	if !cst.TokLineComment.IsComment() || cst.TokNewLine.IsComment() {
		t.Error("comment classification is wrong")
	}
}

func TestTerminalKindMembers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		is   func(cst.TerminalKind) bool
		want []cst.TerminalKind
	}{
		{
			name: "builtin",
			is:   cst.TerminalKind.IsBuiltinTerminal,
			want: []cst.TerminalKind{cst.TokNewLine, cst.TokWhitespace, cst.TokLineComment, cst.TokBlockComment},
		},
		{
			name: "structural punctuation",
			is:   cst.TerminalKind.IsStructuralPunctuation,
			want: []cst.TerminalKind{
				cst.TokAt, cst.TokDollar, cst.TokDot, cst.TokLBrace, cst.TokRBrace,
				cst.TokLBracket, cst.TokRBracket, cst.TokBind, cst.TokComma,
				cst.TokTextStart, cst.TokCodeBlockDelimiter,
			},
		},
		{
			name: "opener",
			is:   cst.TerminalKind.IsOpener,
			want: []cst.TerminalKind{cst.TokQuote, cst.TokTypedQuote, cst.TokNamedCodeBlockBegin},
		},
		{
			name: "content",
			is:   cst.TerminalKind.IsContent,
			want: []cst.TerminalKind{cst.TokInStr, cst.TokText, cst.TokCode, cst.TokNamedCode, cst.TokCodeBlockLine},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var got []cst.TerminalKind
			for kind := cst.TokAt; kind <= cst.TokWs; kind++ {
				if tc.is(kind) {
					got = append(got, kind)
				}
			}
			if !slices.Equal(got, tc.want) {
				t.Errorf("members = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestKindStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind cst.Kind
		want string
	}{
		{kind: cst.TokNamedCodeBlockBegin.Kind(), want: "terminal NamedCodeBlockBegin"},
		{kind: cst.NodeSwonList0.Kind(), want: "non-terminal SwonList0"},
		{kind: cst.NodeNamedCode.Kind(), want: "non-terminal NamedCode"},
	}

	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}

	if got := cst.TerminalKind(200).String(); got != "TerminalKind(200)" {
		t.Errorf("out of range kind printed as %q", got)
	}
}

func TestNonTerminalKindShapes(t *testing.T) {
	t.Parallel()

	if !cst.NodeArrayList.IsList() || cst.NodeArray.IsList() {
		t.Error("list classification is wrong")
	}
	if !cst.NodeKeyOpt.IsOption() || cst.NodeKey.IsOption() {
		t.Error("option classification is wrong")
	}
	if !cst.NodeTextBinding.IsVerbatim() || cst.NodeObject.IsVerbatim() {
		t.Error("verbatim classification is wrong")
	}
}
