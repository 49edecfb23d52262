package cst

// AtTerminal refers to an At terminal.
type AtTerminal struct{ id NodeID }

// NewAtTerminal returns a handle for id after checking that it is an At terminal.
func NewAtTerminal(t *Tree, id NodeID) (AtTerminal, error) {
	if _, err := checkTerminal(t, id, TokAt); err != nil {
		return AtTerminal{}, err
	}
	return AtTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h AtTerminal) NodeID() NodeID { return h.id }

// Kind returns TokAt.
func (h AtTerminal) Kind() TerminalKind { return TokAt }

// Data returns the terminal's payload.
func (h AtTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokAt) }

// DollarTerminal refers to a Dollar terminal.
type DollarTerminal struct{ id NodeID }

// NewDollarTerminal returns a handle for id after checking that it is a Dollar terminal.
func NewDollarTerminal(t *Tree, id NodeID) (DollarTerminal, error) {
	if _, err := checkTerminal(t, id, TokDollar); err != nil {
		return DollarTerminal{}, err
	}
	return DollarTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h DollarTerminal) NodeID() NodeID { return h.id }

// Kind returns TokDollar.
func (h DollarTerminal) Kind() TerminalKind { return TokDollar }

// Data returns the terminal's payload.
func (h DollarTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokDollar) }

// DotTerminal refers to a Dot terminal.
type DotTerminal struct{ id NodeID }

// NewDotTerminal returns a handle for id after checking that it is a Dot terminal.
func NewDotTerminal(t *Tree, id NodeID) (DotTerminal, error) {
	if _, err := checkTerminal(t, id, TokDot); err != nil {
		return DotTerminal{}, err
	}
	return DotTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h DotTerminal) NodeID() NodeID { return h.id }

// Kind returns TokDot.
func (h DotTerminal) Kind() TerminalKind { return TokDot }

// Data returns the terminal's payload.
func (h DotTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokDot) }

// LBraceTerminal refers to a LBrace terminal.
type LBraceTerminal struct{ id NodeID }

// NewLBraceTerminal returns a handle for id after checking that it is a LBrace terminal.
func NewLBraceTerminal(t *Tree, id NodeID) (LBraceTerminal, error) {
	if _, err := checkTerminal(t, id, TokLBrace); err != nil {
		return LBraceTerminal{}, err
	}
	return LBraceTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h LBraceTerminal) NodeID() NodeID { return h.id }

// Kind returns TokLBrace.
func (h LBraceTerminal) Kind() TerminalKind { return TokLBrace }

// Data returns the terminal's payload.
func (h LBraceTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokLBrace) }

// RBraceTerminal refers to a RBrace terminal.
type RBraceTerminal struct{ id NodeID }

// NewRBraceTerminal returns a handle for id after checking that it is a RBrace terminal.
func NewRBraceTerminal(t *Tree, id NodeID) (RBraceTerminal, error) {
	if _, err := checkTerminal(t, id, TokRBrace); err != nil {
		return RBraceTerminal{}, err
	}
	return RBraceTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h RBraceTerminal) NodeID() NodeID { return h.id }

// Kind returns TokRBrace.
func (h RBraceTerminal) Kind() TerminalKind { return TokRBrace }

// Data returns the terminal's payload.
func (h RBraceTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokRBrace) }

// LBracketTerminal refers to a LBracket terminal.
type LBracketTerminal struct{ id NodeID }

// NewLBracketTerminal returns a handle for id after checking that it is a LBracket terminal.
func NewLBracketTerminal(t *Tree, id NodeID) (LBracketTerminal, error) {
	if _, err := checkTerminal(t, id, TokLBracket); err != nil {
		return LBracketTerminal{}, err
	}
	return LBracketTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h LBracketTerminal) NodeID() NodeID { return h.id }

// Kind returns TokLBracket.
func (h LBracketTerminal) Kind() TerminalKind { return TokLBracket }

// Data returns the terminal's payload.
func (h LBracketTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokLBracket) }

// RBracketTerminal refers to a RBracket terminal.
type RBracketTerminal struct{ id NodeID }

// NewRBracketTerminal returns a handle for id after checking that it is a RBracket terminal.
func NewRBracketTerminal(t *Tree, id NodeID) (RBracketTerminal, error) {
	if _, err := checkTerminal(t, id, TokRBracket); err != nil {
		return RBracketTerminal{}, err
	}
	return RBracketTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h RBracketTerminal) NodeID() NodeID { return h.id }

// Kind returns TokRBracket.
func (h RBracketTerminal) Kind() TerminalKind { return TokRBracket }

// Data returns the terminal's payload.
func (h RBracketTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokRBracket) }

// BindTerminal refers to a Bind terminal.
type BindTerminal struct{ id NodeID }

// NewBindTerminal returns a handle for id after checking that it is a Bind terminal.
func NewBindTerminal(t *Tree, id NodeID) (BindTerminal, error) {
	if _, err := checkTerminal(t, id, TokBind); err != nil {
		return BindTerminal{}, err
	}
	return BindTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h BindTerminal) NodeID() NodeID { return h.id }

// Kind returns TokBind.
func (h BindTerminal) Kind() TerminalKind { return TokBind }

// Data returns the terminal's payload.
func (h BindTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokBind) }

// CommaTerminal refers to a Comma terminal.
type CommaTerminal struct{ id NodeID }

// NewCommaTerminal returns a handle for id after checking that it is a Comma terminal.
func NewCommaTerminal(t *Tree, id NodeID) (CommaTerminal, error) {
	if _, err := checkTerminal(t, id, TokComma); err != nil {
		return CommaTerminal{}, err
	}
	return CommaTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h CommaTerminal) NodeID() NodeID { return h.id }

// Kind returns TokComma.
func (h CommaTerminal) Kind() TerminalKind { return TokComma }

// Data returns the terminal's payload.
func (h CommaTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokComma) }

// QuoteTerminal refers to a Quote terminal.
type QuoteTerminal struct{ id NodeID }

// NewQuoteTerminal returns a handle for id after checking that it is a Quote terminal.
func NewQuoteTerminal(t *Tree, id NodeID) (QuoteTerminal, error) {
	if _, err := checkTerminal(t, id, TokQuote); err != nil {
		return QuoteTerminal{}, err
	}
	return QuoteTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h QuoteTerminal) NodeID() NodeID { return h.id }

// Kind returns TokQuote.
func (h QuoteTerminal) Kind() TerminalKind { return TokQuote }

// Data returns the terminal's payload.
func (h QuoteTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokQuote) }

// TypedQuoteTerminal refers to a TypedQuote terminal.
type TypedQuoteTerminal struct{ id NodeID }

// NewTypedQuoteTerminal returns a handle for id after checking that it is a TypedQuote terminal.
func NewTypedQuoteTerminal(t *Tree, id NodeID) (TypedQuoteTerminal, error) {
	if _, err := checkTerminal(t, id, TokTypedQuote); err != nil {
		return TypedQuoteTerminal{}, err
	}
	return TypedQuoteTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h TypedQuoteTerminal) NodeID() NodeID { return h.id }

// Kind returns TokTypedQuote.
func (h TypedQuoteTerminal) Kind() TerminalKind { return TokTypedQuote }

// Data returns the terminal's payload.
func (h TypedQuoteTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokTypedQuote) }

// TextStartTerminal refers to a TextStart terminal.
type TextStartTerminal struct{ id NodeID }

// NewTextStartTerminal returns a handle for id after checking that it is a TextStart terminal.
func NewTextStartTerminal(t *Tree, id NodeID) (TextStartTerminal, error) {
	if _, err := checkTerminal(t, id, TokTextStart); err != nil {
		return TextStartTerminal{}, err
	}
	return TextStartTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h TextStartTerminal) NodeID() NodeID { return h.id }

// Kind returns TokTextStart.
func (h TextStartTerminal) Kind() TerminalKind { return TokTextStart }

// Data returns the terminal's payload.
func (h TextStartTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokTextStart) }

// NamedCodeBlockBeginTerminal refers to a NamedCodeBlockBegin terminal.
type NamedCodeBlockBeginTerminal struct{ id NodeID }

// NewNamedCodeBlockBeginTerminal returns a handle for id after checking that it is a NamedCodeBlockBegin terminal.
func NewNamedCodeBlockBeginTerminal(t *Tree, id NodeID) (NamedCodeBlockBeginTerminal, error) {
	if _, err := checkTerminal(t, id, TokNamedCodeBlockBegin); err != nil {
		return NamedCodeBlockBeginTerminal{}, err
	}
	return NamedCodeBlockBeginTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h NamedCodeBlockBeginTerminal) NodeID() NodeID { return h.id }

// Kind returns TokNamedCodeBlockBegin.
func (h NamedCodeBlockBeginTerminal) Kind() TerminalKind { return TokNamedCodeBlockBegin }

// Data returns the terminal's payload.
func (h NamedCodeBlockBeginTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokNamedCodeBlockBegin) }

// CodeBlockDelimiterTerminal refers to a CodeBlockDelimiter terminal.
type CodeBlockDelimiterTerminal struct{ id NodeID }

// NewCodeBlockDelimiterTerminal returns a handle for id after checking that it is a CodeBlockDelimiter terminal.
func NewCodeBlockDelimiterTerminal(t *Tree, id NodeID) (CodeBlockDelimiterTerminal, error) {
	if _, err := checkTerminal(t, id, TokCodeBlockDelimiter); err != nil {
		return CodeBlockDelimiterTerminal{}, err
	}
	return CodeBlockDelimiterTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h CodeBlockDelimiterTerminal) NodeID() NodeID { return h.id }

// Kind returns TokCodeBlockDelimiter.
func (h CodeBlockDelimiterTerminal) Kind() TerminalKind { return TokCodeBlockDelimiter }

// Data returns the terminal's payload.
func (h CodeBlockDelimiterTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokCodeBlockDelimiter) }

// IntegerTerminal refers to an Integer terminal.
type IntegerTerminal struct{ id NodeID }

// NewIntegerTerminal returns a handle for id after checking that it is an Integer terminal.
func NewIntegerTerminal(t *Tree, id NodeID) (IntegerTerminal, error) {
	if _, err := checkTerminal(t, id, TokInteger); err != nil {
		return IntegerTerminal{}, err
	}
	return IntegerTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h IntegerTerminal) NodeID() NodeID { return h.id }

// Kind returns TokInteger.
func (h IntegerTerminal) Kind() TerminalKind { return TokInteger }

// Data returns the terminal's payload.
func (h IntegerTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokInteger) }

// TrueTerminal refers to a True terminal.
type TrueTerminal struct{ id NodeID }

// NewTrueTerminal returns a handle for id after checking that it is a True terminal.
func NewTrueTerminal(t *Tree, id NodeID) (TrueTerminal, error) {
	if _, err := checkTerminal(t, id, TokTrue); err != nil {
		return TrueTerminal{}, err
	}
	return TrueTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h TrueTerminal) NodeID() NodeID { return h.id }

// Kind returns TokTrue.
func (h TrueTerminal) Kind() TerminalKind { return TokTrue }

// Data returns the terminal's payload.
func (h TrueTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokTrue) }

// FalseTerminal refers to a False terminal.
type FalseTerminal struct{ id NodeID }

// NewFalseTerminal returns a handle for id after checking that it is a False terminal.
func NewFalseTerminal(t *Tree, id NodeID) (FalseTerminal, error) {
	if _, err := checkTerminal(t, id, TokFalse); err != nil {
		return FalseTerminal{}, err
	}
	return FalseTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h FalseTerminal) NodeID() NodeID { return h.id }

// Kind returns TokFalse.
func (h FalseTerminal) Kind() TerminalKind { return TokFalse }

// Data returns the terminal's payload.
func (h FalseTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokFalse) }

// NullTerminal refers to a Null terminal.
type NullTerminal struct{ id NodeID }

// NewNullTerminal returns a handle for id after checking that it is a Null terminal.
func NewNullTerminal(t *Tree, id NodeID) (NullTerminal, error) {
	if _, err := checkTerminal(t, id, TokNull); err != nil {
		return NullTerminal{}, err
	}
	return NullTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h NullTerminal) NodeID() NodeID { return h.id }

// Kind returns TokNull.
func (h NullTerminal) Kind() TerminalKind { return TokNull }

// Data returns the terminal's payload.
func (h NullTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokNull) }

// HoleTerminal refers to a Hole terminal.
type HoleTerminal struct{ id NodeID }

// NewHoleTerminal returns a handle for id after checking that it is a Hole terminal.
func NewHoleTerminal(t *Tree, id NodeID) (HoleTerminal, error) {
	if _, err := checkTerminal(t, id, TokHole); err != nil {
		return HoleTerminal{}, err
	}
	return HoleTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h HoleTerminal) NodeID() NodeID { return h.id }

// Kind returns TokHole.
func (h HoleTerminal) Kind() TerminalKind { return TokHole }

// Data returns the terminal's payload.
func (h HoleTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokHole) }

// IdentTerminal refers to an Ident terminal.
type IdentTerminal struct{ id NodeID }

// NewIdentTerminal returns a handle for id after checking that it is an Ident terminal.
func NewIdentTerminal(t *Tree, id NodeID) (IdentTerminal, error) {
	if _, err := checkTerminal(t, id, TokIdent); err != nil {
		return IdentTerminal{}, err
	}
	return IdentTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h IdentTerminal) NodeID() NodeID { return h.id }

// Kind returns TokIdent.
func (h IdentTerminal) Kind() TerminalKind { return TokIdent }

// Data returns the terminal's payload.
func (h IdentTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokIdent) }

func (IdentTerminal) isKeyBaseView() {}

// InStrTerminal refers to an InStr terminal.
type InStrTerminal struct{ id NodeID }

// NewInStrTerminal returns a handle for id after checking that it is an InStr terminal.
func NewInStrTerminal(t *Tree, id NodeID) (InStrTerminal, error) {
	if _, err := checkTerminal(t, id, TokInStr); err != nil {
		return InStrTerminal{}, err
	}
	return InStrTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h InStrTerminal) NodeID() NodeID { return h.id }

// Kind returns TokInStr.
func (h InStrTerminal) Kind() TerminalKind { return TokInStr }

// Data returns the terminal's payload.
func (h InStrTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokInStr) }

// TextTerminal refers to a Text terminal.
type TextTerminal struct{ id NodeID }

// NewTextTerminal returns a handle for id after checking that it is a Text terminal.
func NewTextTerminal(t *Tree, id NodeID) (TextTerminal, error) {
	if _, err := checkTerminal(t, id, TokText); err != nil {
		return TextTerminal{}, err
	}
	return TextTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h TextTerminal) NodeID() NodeID { return h.id }

// Kind returns TokText.
func (h TextTerminal) Kind() TerminalKind { return TokText }

// Data returns the terminal's payload.
func (h TextTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokText) }

// CodeTerminal refers to a Code terminal.
type CodeTerminal struct{ id NodeID }

// NewCodeTerminal returns a handle for id after checking that it is a Code terminal.
func NewCodeTerminal(t *Tree, id NodeID) (CodeTerminal, error) {
	if _, err := checkTerminal(t, id, TokCode); err != nil {
		return CodeTerminal{}, err
	}
	return CodeTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h CodeTerminal) NodeID() NodeID { return h.id }

// Kind returns TokCode.
func (h CodeTerminal) Kind() TerminalKind { return TokCode }

// Data returns the terminal's payload.
func (h CodeTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokCode) }

// NamedCodeTerminal refers to a NamedCode terminal.
type NamedCodeTerminal struct{ id NodeID }

// NewNamedCodeTerminal returns a handle for id after checking that it is a NamedCode terminal.
func NewNamedCodeTerminal(t *Tree, id NodeID) (NamedCodeTerminal, error) {
	if _, err := checkTerminal(t, id, TokNamedCode); err != nil {
		return NamedCodeTerminal{}, err
	}
	return NamedCodeTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h NamedCodeTerminal) NodeID() NodeID { return h.id }

// Kind returns TokNamedCode.
func (h NamedCodeTerminal) Kind() TerminalKind { return TokNamedCode }

// Data returns the terminal's payload.
func (h NamedCodeTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokNamedCode) }

// CodeBlockLineTerminal refers to a CodeBlockLine terminal.
type CodeBlockLineTerminal struct{ id NodeID }

// NewCodeBlockLineTerminal returns a handle for id after checking that it is a CodeBlockLine terminal.
func NewCodeBlockLineTerminal(t *Tree, id NodeID) (CodeBlockLineTerminal, error) {
	if _, err := checkTerminal(t, id, TokCodeBlockLine); err != nil {
		return CodeBlockLineTerminal{}, err
	}
	return CodeBlockLineTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h CodeBlockLineTerminal) NodeID() NodeID { return h.id }

// Kind returns TokCodeBlockLine.
func (h CodeBlockLineTerminal) Kind() TerminalKind { return TokCodeBlockLine }

// Data returns the terminal's payload.
func (h CodeBlockLineTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokCodeBlockLine) }

// EscTerminal refers to an Esc terminal.
type EscTerminal struct{ id NodeID }

// NewEscTerminal returns a handle for id after checking that it is an Esc terminal.
func NewEscTerminal(t *Tree, id NodeID) (EscTerminal, error) {
	if _, err := checkTerminal(t, id, TokEsc); err != nil {
		return EscTerminal{}, err
	}
	return EscTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h EscTerminal) NodeID() NodeID { return h.id }

// Kind returns TokEsc.
func (h EscTerminal) Kind() TerminalKind { return TokEsc }

// Data returns the terminal's payload.
func (h EscTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokEsc) }

// NewLineTerminal refers to a NewLine terminal.
type NewLineTerminal struct{ id NodeID }

// NewNewLineTerminal returns a handle for id after checking that it is a NewLine terminal.
func NewNewLineTerminal(t *Tree, id NodeID) (NewLineTerminal, error) {
	if _, err := checkTerminal(t, id, TokNewLine); err != nil {
		return NewLineTerminal{}, err
	}
	return NewLineTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h NewLineTerminal) NodeID() NodeID { return h.id }

// Kind returns TokNewLine.
func (h NewLineTerminal) Kind() TerminalKind { return TokNewLine }

// Data returns the terminal's payload.
func (h NewLineTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokNewLine) }

// WhitespaceTerminal refers to a Whitespace terminal.
type WhitespaceTerminal struct{ id NodeID }

// NewWhitespaceTerminal returns a handle for id after checking that it is a Whitespace terminal.
func NewWhitespaceTerminal(t *Tree, id NodeID) (WhitespaceTerminal, error) {
	if _, err := checkTerminal(t, id, TokWhitespace); err != nil {
		return WhitespaceTerminal{}, err
	}
	return WhitespaceTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h WhitespaceTerminal) NodeID() NodeID { return h.id }

// Kind returns TokWhitespace.
func (h WhitespaceTerminal) Kind() TerminalKind { return TokWhitespace }

// Data returns the terminal's payload.
func (h WhitespaceTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokWhitespace) }

// LineCommentTerminal refers to a LineComment terminal.
type LineCommentTerminal struct{ id NodeID }

// NewLineCommentTerminal returns a handle for id after checking that it is a LineComment terminal.
func NewLineCommentTerminal(t *Tree, id NodeID) (LineCommentTerminal, error) {
	if _, err := checkTerminal(t, id, TokLineComment); err != nil {
		return LineCommentTerminal{}, err
	}
	return LineCommentTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h LineCommentTerminal) NodeID() NodeID { return h.id }

// Kind returns TokLineComment.
func (h LineCommentTerminal) Kind() TerminalKind { return TokLineComment }

// Data returns the terminal's payload.
func (h LineCommentTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokLineComment) }

// BlockCommentTerminal refers to a BlockComment terminal.
type BlockCommentTerminal struct{ id NodeID }

// NewBlockCommentTerminal returns a handle for id after checking that it is a BlockComment terminal.
func NewBlockCommentTerminal(t *Tree, id NodeID) (BlockCommentTerminal, error) {
	if _, err := checkTerminal(t, id, TokBlockComment); err != nil {
		return BlockCommentTerminal{}, err
	}
	return BlockCommentTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h BlockCommentTerminal) NodeID() NodeID { return h.id }

// Kind returns TokBlockComment.
func (h BlockCommentTerminal) Kind() TerminalKind { return TokBlockComment }

// Data returns the terminal's payload.
func (h BlockCommentTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokBlockComment) }

// NewlineTerminal refers to a Newline terminal.
type NewlineTerminal struct{ id NodeID }

// NewNewlineTerminal returns a handle for id after checking that it is a Newline terminal.
func NewNewlineTerminal(t *Tree, id NodeID) (NewlineTerminal, error) {
	if _, err := checkTerminal(t, id, TokNewline); err != nil {
		return NewlineTerminal{}, err
	}
	return NewlineTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h NewlineTerminal) NodeID() NodeID { return h.id }

// Kind returns TokNewline.
func (h NewlineTerminal) Kind() TerminalKind { return TokNewline }

// Data returns the terminal's payload.
func (h NewlineTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokNewline) }

// WsTerminal refers to a Ws terminal.
type WsTerminal struct{ id NodeID }

// NewWsTerminal returns a handle for id after checking that it is a Ws terminal.
func NewWsTerminal(t *Tree, id NodeID) (WsTerminal, error) {
	if _, err := checkTerminal(t, id, TokWs); err != nil {
		return WsTerminal{}, err
	}
	return WsTerminal{id: id}, nil
}

// NodeID returns the id of the node.
func (h WsTerminal) NodeID() NodeID { return h.id }

// Kind returns TokWs.
func (h WsTerminal) Kind() TerminalKind { return TokWs }

// Data returns the terminal's payload.
func (h WsTerminal) Data(t *Tree) (NodeData, error) { return checkTerminal(t, h.id, TokWs) }
