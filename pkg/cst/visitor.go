package cst

// Visitor receives callbacks from a Walker.
//
// There is one hook per production and one per terminal kind. A hook that
// wants the default traversal calls the Walker's matching Super method (or
// embeds BaseVisitor, which does exactly that). Returning an error stops
// the walk.
//
// Trivia terminals go to VisitNewLineTerminal, VisitWhitespaceTerminal,
// VisitLineCommentTerminal and VisitBlockCommentTerminal. Every terminal hook
// defaults to VisitTerminal.
type Visitor interface {
	VisitRoot(w *Walker, h RootHandle, view RootView) error
	VisitSwon(w *Walker, h SwonHandle, view SwonView) error
	VisitSwonList(w *Walker, h SwonListHandle, view *SwonListView) error
	VisitSwonList0(w *Walker, h SwonList0Handle, view *SwonList0View) error
	VisitBinding(w *Walker, h BindingHandle, view BindingView) error
	VisitBindingRhs(w *Walker, h BindingRhsHandle, view BindingRhsView) error
	VisitValueBinding(w *Walker, h ValueBindingHandle, view ValueBindingView) error
	VisitSectionBinding(w *Walker, h SectionBindingHandle, view SectionBindingView) error
	VisitTextBinding(w *Walker, h TextBindingHandle, view TextBindingView) error
	VisitTextBindingOpt(w *Walker, h TextBindingOptHandle, view *WsHandle) error
	VisitSection(w *Walker, h SectionHandle, view SectionView) error
	VisitSectionBody(w *Walker, h SectionBodyHandle, view SectionBodyView) error
	VisitSectionBodyList(w *Walker, h SectionBodyListHandle, view *SectionBodyListView) error
	VisitKeys(w *Walker, h KeysHandle, view KeysView) error
	VisitKeysList(w *Walker, h KeysListHandle, view *KeysListView) error
	VisitKey(w *Walker, h KeyHandle, view KeyView) error
	VisitKeyBase(w *Walker, h KeyBaseHandle, view KeyBaseView) error
	VisitKeyOpt(w *Walker, h KeyOptHandle, view *ArrayMarkerHandle) error
	VisitExtensionNameSpace(w *Walker, h ExtensionNameSpaceHandle, view ExtensionNameSpaceView) error
	VisitExt(w *Walker, h ExtHandle, view ExtView) error
	VisitAt(w *Walker, h AtHandle, view AtView) error
	VisitDot(w *Walker, h DotHandle, view DotView) error
	VisitArrayMarker(w *Walker, h ArrayMarkerHandle, view ArrayMarkerView) error
	VisitArrayMarkerOpt(w *Walker, h ArrayMarkerOptHandle, view *IntegerHandle) error
	VisitObject(w *Walker, h ObjectHandle, view ObjectView) error
	VisitObjectList(w *Walker, h ObjectListHandle, view *ObjectListView) error
	VisitObjectOpt(w *Walker, h ObjectOptHandle, view *CommaHandle) error
	VisitBegin(w *Walker, h BeginHandle, view BeginView) error
	VisitEnd(w *Walker, h EndHandle, view EndView) error
	VisitBind(w *Walker, h BindHandle, view BindView) error
	VisitArray(w *Walker, h ArrayHandle, view ArrayView) error
	VisitArrayBegin(w *Walker, h ArrayBeginHandle, view ArrayBeginView) error
	VisitArrayEnd(w *Walker, h ArrayEndHandle, view ArrayEndView) error
	VisitArrayList(w *Walker, h ArrayListHandle, view *ArrayListView) error
	VisitArrayOpt(w *Walker, h ArrayOptHandle, view *CommaHandle) error
	VisitComma(w *Walker, h CommaHandle, view CommaView) error
	VisitValue(w *Walker, h ValueHandle, view ValueView) error
	VisitBoolean(w *Walker, h BooleanHandle, view BooleanView) error
	VisitTrue(w *Walker, h TrueHandle, view TrueView) error
	VisitFalse(w *Walker, h FalseHandle, view FalseView) error
	VisitNull(w *Walker, h NullHandle, view NullView) error
	VisitInteger(w *Walker, h IntegerHandle, view IntegerView) error
	VisitHole(w *Walker, h HoleHandle, view HoleView) error
	VisitStr(w *Walker, h StrHandle, view StrView) error
	VisitStrContinues(w *Walker, h StrContinuesHandle, view StrContinuesView) error
	VisitStrContinuesList(w *Walker, h StrContinuesListHandle, view *StrContinuesListView) error
	VisitQuote(w *Walker, h QuoteHandle, view QuoteView) error
	VisitTypedQuote(w *Walker, h TypedQuoteHandle, view TypedQuoteView) error
	VisitTypedStr(w *Walker, h TypedStrHandle, view TypedStrView) error
	VisitInStr(w *Walker, h InStrHandle, view InStrView) error
	VisitContinue(w *Walker, h ContinueHandle, view ContinueView) error
	VisitText(w *Walker, h TextHandle, view TextView) error
	VisitTextStart(w *Walker, h TextStartHandle, view TextStartView) error
	VisitNamedCodeBlock(w *Walker, h NamedCodeBlockHandle, view NamedCodeBlockView) error
	VisitNamedCodeBlockBegin(w *Walker, h NamedCodeBlockBeginHandle, view NamedCodeBlockBeginView) error
	VisitCodeBlock(w *Walker, h CodeBlockHandle, view CodeBlockView) error
	VisitCodeBlockDelimiter(w *Walker, h CodeBlockDelimiterHandle, view CodeBlockDelimiterView) error
	VisitCodeBlockTailCommon(w *Walker, h CodeBlockTailCommonHandle, view CodeBlockTailCommonView) error
	VisitCodeBlockTailCommonList(w *Walker, h CodeBlockTailCommonListHandle, view *CodeBlockTailCommonListView) error
	VisitCodeBlockTailCommonOpt(w *Walker, h CodeBlockTailCommonOptHandle, view *WsHandle) error
	VisitCodeBlockLine(w *Walker, h CodeBlockLineHandle, view CodeBlockLineView) error
	VisitNewline(w *Walker, h NewlineHandle, view NewlineView) error
	VisitWs(w *Walker, h WsHandle, view WsView) error
	VisitCode(w *Walker, h CodeHandle, view CodeView) error
	VisitNamedCode(w *Walker, h NamedCodeHandle, view NamedCodeView) error

	VisitAtTerminal(w *Walker, t AtTerminal, data NodeData) error
	VisitDollarTerminal(w *Walker, t DollarTerminal, data NodeData) error
	VisitDotTerminal(w *Walker, t DotTerminal, data NodeData) error
	VisitLBraceTerminal(w *Walker, t LBraceTerminal, data NodeData) error
	VisitRBraceTerminal(w *Walker, t RBraceTerminal, data NodeData) error
	VisitLBracketTerminal(w *Walker, t LBracketTerminal, data NodeData) error
	VisitRBracketTerminal(w *Walker, t RBracketTerminal, data NodeData) error
	VisitBindTerminal(w *Walker, t BindTerminal, data NodeData) error
	VisitCommaTerminal(w *Walker, t CommaTerminal, data NodeData) error
	VisitQuoteTerminal(w *Walker, t QuoteTerminal, data NodeData) error
	VisitTypedQuoteTerminal(w *Walker, t TypedQuoteTerminal, data NodeData) error
	VisitTextStartTerminal(w *Walker, t TextStartTerminal, data NodeData) error
	VisitNamedCodeBlockBeginTerminal(w *Walker, t NamedCodeBlockBeginTerminal, data NodeData) error
	VisitCodeBlockDelimiterTerminal(w *Walker, t CodeBlockDelimiterTerminal, data NodeData) error
	VisitIntegerTerminal(w *Walker, t IntegerTerminal, data NodeData) error
	VisitTrueTerminal(w *Walker, t TrueTerminal, data NodeData) error
	VisitFalseTerminal(w *Walker, t FalseTerminal, data NodeData) error
	VisitNullTerminal(w *Walker, t NullTerminal, data NodeData) error
	VisitHoleTerminal(w *Walker, t HoleTerminal, data NodeData) error
	VisitIdentTerminal(w *Walker, t IdentTerminal, data NodeData) error
	VisitInStrTerminal(w *Walker, t InStrTerminal, data NodeData) error
	VisitTextTerminal(w *Walker, t TextTerminal, data NodeData) error
	VisitCodeTerminal(w *Walker, t CodeTerminal, data NodeData) error
	VisitNamedCodeTerminal(w *Walker, t NamedCodeTerminal, data NodeData) error
	VisitCodeBlockLineTerminal(w *Walker, t CodeBlockLineTerminal, data NodeData) error
	VisitEscTerminal(w *Walker, t EscTerminal, data NodeData) error
	VisitNewLineTerminal(w *Walker, t NewLineTerminal, data NodeData) error
	VisitWhitespaceTerminal(w *Walker, t WhitespaceTerminal, data NodeData) error
	VisitLineCommentTerminal(w *Walker, t LineCommentTerminal, data NodeData) error
	VisitBlockCommentTerminal(w *Walker, t BlockCommentTerminal, data NodeData) error
	VisitNewlineTerminal(w *Walker, t NewlineTerminal, data NodeData) error
	VisitWsTerminal(w *Walker, t WsTerminal, data NodeData) error

	// VisitTerminal is the fallback for every terminal hook.
	VisitTerminal(w *Walker, id NodeID, kind TerminalKind, data NodeData) error

	// VisitNonTerminal runs when a non-terminal is entered, before its hook.
	VisitNonTerminal(w *Walker, id NodeID, kind NonTerminalKind, data NodeData) error

	// VisitNonTerminalClose runs after a non-terminal and all its trivia are done.
	VisitNonTerminalClose(w *Walker, id NodeID, kind NonTerminalKind, data NodeData) error

	// OnConstructError runs when a node cannot be viewed as its production.
	// err is a *ConstructError.
	OnConstructError(w *Walker, id NodeID, err error) error
}

// BaseVisitor implements Visitor with the default traversal. Embed it and
// override the hooks of interest.
type BaseVisitor struct{}

var _ Visitor = BaseVisitor{}

func (BaseVisitor) VisitRoot(w *Walker, h RootHandle, view RootView) error {
	return w.VisitRootSuper(h, view)
}

func (BaseVisitor) VisitSwon(w *Walker, h SwonHandle, view SwonView) error {
	return w.VisitSwonSuper(h, view)
}

func (BaseVisitor) VisitSwonList(w *Walker, h SwonListHandle, view *SwonListView) error {
	return w.VisitSwonListSuper(h, view)
}

func (BaseVisitor) VisitSwonList0(w *Walker, h SwonList0Handle, view *SwonList0View) error {
	return w.VisitSwonList0Super(h, view)
}

func (BaseVisitor) VisitBinding(w *Walker, h BindingHandle, view BindingView) error {
	return w.VisitBindingSuper(h, view)
}

func (BaseVisitor) VisitBindingRhs(w *Walker, h BindingRhsHandle, view BindingRhsView) error {
	return w.VisitBindingRhsSuper(h, view)
}

func (BaseVisitor) VisitValueBinding(w *Walker, h ValueBindingHandle, view ValueBindingView) error {
	return w.VisitValueBindingSuper(h, view)
}

func (BaseVisitor) VisitSectionBinding(w *Walker, h SectionBindingHandle, view SectionBindingView) error {
	return w.VisitSectionBindingSuper(h, view)
}

func (BaseVisitor) VisitTextBinding(w *Walker, h TextBindingHandle, view TextBindingView) error {
	return w.VisitTextBindingSuper(h, view)
}

func (BaseVisitor) VisitTextBindingOpt(w *Walker, h TextBindingOptHandle, view *WsHandle) error {
	return w.VisitTextBindingOptSuper(h, view)
}

func (BaseVisitor) VisitSection(w *Walker, h SectionHandle, view SectionView) error {
	return w.VisitSectionSuper(h, view)
}

func (BaseVisitor) VisitSectionBody(w *Walker, h SectionBodyHandle, view SectionBodyView) error {
	return w.VisitSectionBodySuper(h, view)
}

func (BaseVisitor) VisitSectionBodyList(w *Walker, h SectionBodyListHandle, view *SectionBodyListView) error {
	return w.VisitSectionBodyListSuper(h, view)
}

func (BaseVisitor) VisitKeys(w *Walker, h KeysHandle, view KeysView) error {
	return w.VisitKeysSuper(h, view)
}

func (BaseVisitor) VisitKeysList(w *Walker, h KeysListHandle, view *KeysListView) error {
	return w.VisitKeysListSuper(h, view)
}

func (BaseVisitor) VisitKey(w *Walker, h KeyHandle, view KeyView) error {
	return w.VisitKeySuper(h, view)
}

func (BaseVisitor) VisitKeyBase(w *Walker, h KeyBaseHandle, view KeyBaseView) error {
	return w.VisitKeyBaseSuper(h, view)
}

func (BaseVisitor) VisitKeyOpt(w *Walker, h KeyOptHandle, view *ArrayMarkerHandle) error {
	return w.VisitKeyOptSuper(h, view)
}

func (BaseVisitor) VisitExtensionNameSpace(w *Walker, h ExtensionNameSpaceHandle, view ExtensionNameSpaceView) error {
	return w.VisitExtensionNameSpaceSuper(h, view)
}

func (BaseVisitor) VisitExt(w *Walker, h ExtHandle, view ExtView) error {
	return w.VisitExtSuper(h, view)
}

func (BaseVisitor) VisitAt(w *Walker, h AtHandle, view AtView) error {
	return w.VisitAtSuper(h, view)
}

func (BaseVisitor) VisitDot(w *Walker, h DotHandle, view DotView) error {
	return w.VisitDotSuper(h, view)
}

func (BaseVisitor) VisitArrayMarker(w *Walker, h ArrayMarkerHandle, view ArrayMarkerView) error {
	return w.VisitArrayMarkerSuper(h, view)
}

func (BaseVisitor) VisitArrayMarkerOpt(w *Walker, h ArrayMarkerOptHandle, view *IntegerHandle) error {
	return w.VisitArrayMarkerOptSuper(h, view)
}

func (BaseVisitor) VisitObject(w *Walker, h ObjectHandle, view ObjectView) error {
	return w.VisitObjectSuper(h, view)
}

func (BaseVisitor) VisitObjectList(w *Walker, h ObjectListHandle, view *ObjectListView) error {
	return w.VisitObjectListSuper(h, view)
}

func (BaseVisitor) VisitObjectOpt(w *Walker, h ObjectOptHandle, view *CommaHandle) error {
	return w.VisitObjectOptSuper(h, view)
}

func (BaseVisitor) VisitBegin(w *Walker, h BeginHandle, view BeginView) error {
	return w.VisitBeginSuper(h, view)
}

func (BaseVisitor) VisitEnd(w *Walker, h EndHandle, view EndView) error {
	return w.VisitEndSuper(h, view)
}

func (BaseVisitor) VisitBind(w *Walker, h BindHandle, view BindView) error {
	return w.VisitBindSuper(h, view)
}

func (BaseVisitor) VisitArray(w *Walker, h ArrayHandle, view ArrayView) error {
	return w.VisitArraySuper(h, view)
}

func (BaseVisitor) VisitArrayBegin(w *Walker, h ArrayBeginHandle, view ArrayBeginView) error {
	return w.VisitArrayBeginSuper(h, view)
}

func (BaseVisitor) VisitArrayEnd(w *Walker, h ArrayEndHandle, view ArrayEndView) error {
	return w.VisitArrayEndSuper(h, view)
}

func (BaseVisitor) VisitArrayList(w *Walker, h ArrayListHandle, view *ArrayListView) error {
	return w.VisitArrayListSuper(h, view)
}

func (BaseVisitor) VisitArrayOpt(w *Walker, h ArrayOptHandle, view *CommaHandle) error {
	return w.VisitArrayOptSuper(h, view)
}

func (BaseVisitor) VisitComma(w *Walker, h CommaHandle, view CommaView) error {
	return w.VisitCommaSuper(h, view)
}

func (BaseVisitor) VisitValue(w *Walker, h ValueHandle, view ValueView) error {
	return w.VisitValueSuper(h, view)
}

func (BaseVisitor) VisitBoolean(w *Walker, h BooleanHandle, view BooleanView) error {
	return w.VisitBooleanSuper(h, view)
}

func (BaseVisitor) VisitTrue(w *Walker, h TrueHandle, view TrueView) error {
	return w.VisitTrueSuper(h, view)
}

func (BaseVisitor) VisitFalse(w *Walker, h FalseHandle, view FalseView) error {
	return w.VisitFalseSuper(h, view)
}

func (BaseVisitor) VisitNull(w *Walker, h NullHandle, view NullView) error {
	return w.VisitNullSuper(h, view)
}

func (BaseVisitor) VisitInteger(w *Walker, h IntegerHandle, view IntegerView) error {
	return w.VisitIntegerSuper(h, view)
}

func (BaseVisitor) VisitHole(w *Walker, h HoleHandle, view HoleView) error {
	return w.VisitHoleSuper(h, view)
}

func (BaseVisitor) VisitStr(w *Walker, h StrHandle, view StrView) error {
	return w.VisitStrSuper(h, view)
}

func (BaseVisitor) VisitStrContinues(w *Walker, h StrContinuesHandle, view StrContinuesView) error {
	return w.VisitStrContinuesSuper(h, view)
}

func (BaseVisitor) VisitStrContinuesList(w *Walker, h StrContinuesListHandle, view *StrContinuesListView) error {
	return w.VisitStrContinuesListSuper(h, view)
}

func (BaseVisitor) VisitQuote(w *Walker, h QuoteHandle, view QuoteView) error {
	return w.VisitQuoteSuper(h, view)
}

func (BaseVisitor) VisitTypedQuote(w *Walker, h TypedQuoteHandle, view TypedQuoteView) error {
	return w.VisitTypedQuoteSuper(h, view)
}

func (BaseVisitor) VisitTypedStr(w *Walker, h TypedStrHandle, view TypedStrView) error {
	return w.VisitTypedStrSuper(h, view)
}

func (BaseVisitor) VisitInStr(w *Walker, h InStrHandle, view InStrView) error {
	return w.VisitInStrSuper(h, view)
}

func (BaseVisitor) VisitContinue(w *Walker, h ContinueHandle, view ContinueView) error {
	return w.VisitContinueSuper(h, view)
}

func (BaseVisitor) VisitText(w *Walker, h TextHandle, view TextView) error {
	return w.VisitTextSuper(h, view)
}

func (BaseVisitor) VisitTextStart(w *Walker, h TextStartHandle, view TextStartView) error {
	return w.VisitTextStartSuper(h, view)
}

func (BaseVisitor) VisitNamedCodeBlock(w *Walker, h NamedCodeBlockHandle, view NamedCodeBlockView) error {
	return w.VisitNamedCodeBlockSuper(h, view)
}

func (BaseVisitor) VisitNamedCodeBlockBegin(w *Walker, h NamedCodeBlockBeginHandle, view NamedCodeBlockBeginView) error {
	return w.VisitNamedCodeBlockBeginSuper(h, view)
}

func (BaseVisitor) VisitCodeBlock(w *Walker, h CodeBlockHandle, view CodeBlockView) error {
	return w.VisitCodeBlockSuper(h, view)
}

func (BaseVisitor) VisitCodeBlockDelimiter(w *Walker, h CodeBlockDelimiterHandle, view CodeBlockDelimiterView) error {
	return w.VisitCodeBlockDelimiterSuper(h, view)
}

func (BaseVisitor) VisitCodeBlockTailCommon(w *Walker, h CodeBlockTailCommonHandle, view CodeBlockTailCommonView) error {
	return w.VisitCodeBlockTailCommonSuper(h, view)
}

func (BaseVisitor) VisitCodeBlockTailCommonList(w *Walker, h CodeBlockTailCommonListHandle, view *CodeBlockTailCommonListView) error {
	return w.VisitCodeBlockTailCommonListSuper(h, view)
}

func (BaseVisitor) VisitCodeBlockTailCommonOpt(w *Walker, h CodeBlockTailCommonOptHandle, view *WsHandle) error {
	return w.VisitCodeBlockTailCommonOptSuper(h, view)
}

func (BaseVisitor) VisitCodeBlockLine(w *Walker, h CodeBlockLineHandle, view CodeBlockLineView) error {
	return w.VisitCodeBlockLineSuper(h, view)
}

func (BaseVisitor) VisitNewline(w *Walker, h NewlineHandle, view NewlineView) error {
	return w.VisitNewlineSuper(h, view)
}

func (BaseVisitor) VisitWs(w *Walker, h WsHandle, view WsView) error {
	return w.VisitWsSuper(h, view)
}

func (BaseVisitor) VisitCode(w *Walker, h CodeHandle, view CodeView) error {
	return w.VisitCodeSuper(h, view)
}

func (BaseVisitor) VisitNamedCode(w *Walker, h NamedCodeHandle, view NamedCodeView) error {
	return w.VisitNamedCodeSuper(h, view)
}

func (BaseVisitor) VisitAtTerminal(w *Walker, t AtTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokAt, data)
}

func (BaseVisitor) VisitDollarTerminal(w *Walker, t DollarTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokDollar, data)
}

func (BaseVisitor) VisitDotTerminal(w *Walker, t DotTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokDot, data)
}

func (BaseVisitor) VisitLBraceTerminal(w *Walker, t LBraceTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokLBrace, data)
}

func (BaseVisitor) VisitRBraceTerminal(w *Walker, t RBraceTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokRBrace, data)
}

func (BaseVisitor) VisitLBracketTerminal(w *Walker, t LBracketTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokLBracket, data)
}

func (BaseVisitor) VisitRBracketTerminal(w *Walker, t RBracketTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokRBracket, data)
}

func (BaseVisitor) VisitBindTerminal(w *Walker, t BindTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokBind, data)
}

func (BaseVisitor) VisitCommaTerminal(w *Walker, t CommaTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokComma, data)
}

func (BaseVisitor) VisitQuoteTerminal(w *Walker, t QuoteTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokQuote, data)
}

func (BaseVisitor) VisitTypedQuoteTerminal(w *Walker, t TypedQuoteTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokTypedQuote, data)
}

func (BaseVisitor) VisitTextStartTerminal(w *Walker, t TextStartTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokTextStart, data)
}

func (BaseVisitor) VisitNamedCodeBlockBeginTerminal(w *Walker, t NamedCodeBlockBeginTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokNamedCodeBlockBegin, data)
}

func (BaseVisitor) VisitCodeBlockDelimiterTerminal(w *Walker, t CodeBlockDelimiterTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokCodeBlockDelimiter, data)
}

func (BaseVisitor) VisitIntegerTerminal(w *Walker, t IntegerTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokInteger, data)
}

func (BaseVisitor) VisitTrueTerminal(w *Walker, t TrueTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokTrue, data)
}

func (BaseVisitor) VisitFalseTerminal(w *Walker, t FalseTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokFalse, data)
}

func (BaseVisitor) VisitNullTerminal(w *Walker, t NullTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokNull, data)
}

func (BaseVisitor) VisitHoleTerminal(w *Walker, t HoleTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokHole, data)
}

func (BaseVisitor) VisitIdentTerminal(w *Walker, t IdentTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokIdent, data)
}

func (BaseVisitor) VisitInStrTerminal(w *Walker, t InStrTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokInStr, data)
}

func (BaseVisitor) VisitTextTerminal(w *Walker, t TextTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokText, data)
}

func (BaseVisitor) VisitCodeTerminal(w *Walker, t CodeTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokCode, data)
}

func (BaseVisitor) VisitNamedCodeTerminal(w *Walker, t NamedCodeTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokNamedCode, data)
}

func (BaseVisitor) VisitCodeBlockLineTerminal(w *Walker, t CodeBlockLineTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokCodeBlockLine, data)
}

func (BaseVisitor) VisitEscTerminal(w *Walker, t EscTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokEsc, data)
}

func (BaseVisitor) VisitNewLineTerminal(w *Walker, t NewLineTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokNewLine, data)
}

func (BaseVisitor) VisitWhitespaceTerminal(w *Walker, t WhitespaceTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokWhitespace, data)
}

func (BaseVisitor) VisitLineCommentTerminal(w *Walker, t LineCommentTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokLineComment, data)
}

func (BaseVisitor) VisitBlockCommentTerminal(w *Walker, t BlockCommentTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokBlockComment, data)
}

func (BaseVisitor) VisitNewlineTerminal(w *Walker, t NewlineTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokNewline, data)
}

func (BaseVisitor) VisitWsTerminal(w *Walker, t WsTerminal, data NodeData) error {
	return w.Visitor().VisitTerminal(w, t.id, TokWs, data)
}

func (BaseVisitor) VisitTerminal(*Walker, NodeID, TerminalKind, NodeData) error {
	return nil
}

func (BaseVisitor) VisitNonTerminal(*Walker, NodeID, NonTerminalKind, NodeData) error {
	return nil
}

func (BaseVisitor) VisitNonTerminalClose(*Walker, NodeID, NonTerminalKind, NodeData) error {
	return nil
}

// OnConstructError recovers by visiting the node's children generically.
func (BaseVisitor) OnConstructError(w *Walker, id NodeID, _ error) error {
	return w.Recover(id)
}
