package cst

//go:generate stringer -type=TerminalKind -trimprefix=Tok
//go:generate stringer -type=NonTerminalKind -trimprefix=Node

// TerminalKind classifies a leaf of the tree.
type TerminalKind uint8

// Terminal kinds.
const (
	// Structural punctuation, plus the quote and fence openers.
	TokAt TerminalKind = iota
	TokDollar
	TokDot
	TokLBrace
	TokRBrace
	TokLBracket
	TokRBracket
	TokBind
	TokComma
	TokQuote
	TokTypedQuote
	TokTextStart
	TokNamedCodeBlockBegin
	TokCodeBlockDelimiter

	// Scalars.
	TokInteger
	TokTrue
	TokFalse
	TokNull
	TokHole
	TokIdent

	// Content.
	TokInStr
	TokText
	TokCode
	TokNamedCode
	TokCodeBlockLine

	// String continuation.
	TokEsc

	// Built-in trivia, skipped by views.
	TokNewLine
	TokWhitespace
	TokLineComment
	TokBlockComment

	// Boundary terminals: newlines and whitespace that belong to a production.
	TokNewline
	TokWs
)

// IsBuiltinTerminal returns true for trivia kinds that views skip.
func (k TerminalKind) IsBuiltinTerminal() bool {
	switch k {
	case TokNewLine, TokWhitespace, TokLineComment, TokBlockComment:
		return true
	default:
		return false
	}
}

// IsComment returns true for the two comment trivia kinds.
func (k TerminalKind) IsComment() bool {
	return k == TokLineComment || k == TokBlockComment
}

// IsStructuralPunctuation returns true for punctuation and delimiters.
func (k TerminalKind) IsStructuralPunctuation() bool {
	switch k {
	case TokAt, TokDollar, TokDot, TokLBrace, TokRBrace, TokLBracket, TokRBracket,
		TokBind, TokComma, TokTextStart, TokCodeBlockDelimiter:
		return true
	default:
		return false
	}
}

// IsOpener returns true for terminals that open string or code content:
// quotes and the named fence opener.
func (k TerminalKind) IsOpener() bool {
	switch k {
	case TokQuote, TokTypedQuote, TokNamedCodeBlockBegin:
		return true
	default:
		return false
	}
}

// IsScalar returns true for terminals that denote a value on their own.
func (k TerminalKind) IsScalar() bool {
	return k >= TokInteger && k <= TokIdent
}

// IsContent returns true for terminals whose text is user content that
// must never be reflowed.
func (k TerminalKind) IsContent() bool {
	return k >= TokInStr && k <= TokCodeBlockLine
}

// IsBoundary returns true for the newline and whitespace terminals that
// participate in productions.
func (k TerminalKind) IsBoundary() bool {
	return k == TokNewline || k == TokWs
}

// NonTerminalKind classifies an inner node. There is one kind per grammar
// production.
type NonTerminalKind uint8

// Non-terminal kinds.
const (
	// Document structure.
	NodeRoot NonTerminalKind = iota
	NodeSwon
	NodeSwonList
	NodeSwonList0

	// Bindings.
	NodeBinding
	NodeBindingRhs
	NodeValueBinding
	NodeSectionBinding
	NodeTextBinding
	NodeTextBindingOpt

	// Sections.
	NodeSection
	NodeSectionBody
	NodeSectionBodyList

	// Keys.
	NodeKeys
	NodeKeysList
	NodeKey
	NodeKeyBase
	NodeKeyOpt
	NodeExtensionNameSpace
	NodeExt
	NodeAt
	NodeDot
	NodeArrayMarker
	NodeArrayMarkerOpt

	// Containers.
	NodeObject
	NodeObjectList
	NodeObjectOpt
	NodeBegin
	NodeEnd
	NodeBind
	NodeArray
	NodeArrayBegin
	NodeArrayEnd
	NodeArrayList
	NodeArrayOpt
	NodeComma

	// Values.
	NodeValue
	NodeBoolean
	NodeTrue
	NodeFalse
	NodeNull
	NodeInteger
	NodeHole

	// Strings.
	NodeStr
	NodeStrContinues
	NodeStrContinuesList
	NodeQuote
	NodeTypedQuote
	NodeTypedStr
	NodeInStr
	NodeContinue

	// Text and code blocks.
	NodeText
	NodeTextStart
	NodeNamedCodeBlock
	NodeNamedCodeBlockBegin
	NodeCodeBlock
	NodeCodeBlockDelimiter
	NodeCodeBlockTailCommon
	NodeCodeBlockTailCommonList
	NodeCodeBlockTailCommonOpt
	NodeCodeBlockLine
	NodeNewline
	NodeWs

	// Inline code.
	NodeCode
	NodeNamedCode
)

// IsList returns true for right-recursive list productions.
func (k NonTerminalKind) IsList() bool {
	switch k {
	case NodeSwonList, NodeSwonList0, NodeSectionBodyList, NodeKeysList, NodeObjectList,
		NodeArrayList, NodeStrContinuesList, NodeCodeBlockTailCommonList:
		return true
	default:
		return false
	}
}

// IsOption returns true for productions that may be empty.
func (k NonTerminalKind) IsOption() bool {
	switch k {
	case NodeTextBindingOpt, NodeKeyOpt, NodeArrayMarkerOpt, NodeObjectOpt, NodeArrayOpt,
		NodeCodeBlockTailCommonOpt:
		return true
	default:
		return false
	}
}

// IsVerbatim returns true for productions whose interior layout is content.
// Formatting tools leave everything inside them untouched.
func (k NonTerminalKind) IsVerbatim() bool {
	switch k {
	case NodeStr, NodeTypedStr, NodeCodeBlock, NodeNamedCodeBlock, NodeTextBinding:
		return true
	default:
		return false
	}
}
