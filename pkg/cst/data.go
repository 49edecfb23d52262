package cst

import "fmt"

// NodeID is a dense index into a Tree's node arena.
// Ids are never reused; deleted nodes become tombstones.
type NodeID int

// InvalidNodeID is returned where no node could be produced.
const InvalidNodeID NodeID = -1

// InputSpan is a half-open byte interval [Start, End) into the original input.
type InputSpan struct {
	Start int
	End   int
}

// Len returns the length of the span in bytes.
func (s InputSpan) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true if the span covers no bytes.
func (s InputSpan) IsEmpty() bool {
	return s.Start == s.End
}

// Contains returns true if offset lies within the span.
func (s InputSpan) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Text returns the bytes the span covers, or nil if it is out of range.
func (s InputSpan) Text(input []byte) []byte {
	if s.Start < 0 || s.End > len(input) || s.Start > s.End {
		return nil
	}
	return input[s.Start:s.End]
}

// Origin records where a node came from.
type Origin uint8

const (
	// OriginInput marks nodes produced by the parser from the input.
	OriginInput Origin = iota
	// OriginDynamic marks nodes synthesized by an edit.
	OriginDynamic
	// OriginRecovered marks non-terminals the parser emitted for an error production.
	OriginRecovered
)

func (o Origin) String() string {
	switch o {
	case OriginInput:
		return "input"
	case OriginDynamic:
		return "dynamic"
	case OriginRecovered:
		return "recovered"
	default:
		return fmt.Sprintf("Origin(%d)", uint8(o))
	}
}

// Kind is either a TerminalKind or a NonTerminalKind.
type Kind struct {
	terminal    bool
	term        TerminalKind
	nonTerminal NonTerminalKind
}

// Kind lifts a terminal kind into the combined kind space.
func (k TerminalKind) Kind() Kind {
	return Kind{terminal: true, term: k}
}

// Kind lifts a non-terminal kind into the combined kind space.
func (k NonTerminalKind) Kind() Kind {
	return Kind{nonTerminal: k}
}

// IsTerminal returns true for terminal kinds.
func (k Kind) IsTerminal() bool {
	return k.terminal
}

// Terminal returns the terminal kind, if k is one.
func (k Kind) Terminal() (TerminalKind, bool) {
	return k.term, k.terminal
}

// NonTerminal returns the non-terminal kind, if k is one.
func (k Kind) NonTerminal() (NonTerminalKind, bool) {
	return k.nonTerminal, !k.terminal
}

func (k Kind) String() string {
	if k.terminal {
		return "terminal " + k.term.String()
	}
	return "non-terminal " + k.nonTerminal.String()
}

// NodeData is the payload stored for each node.
//
// Terminals with OriginInput reference the input through Span; terminals with
// OriginDynamic carry Text. Neither is edited in place: changing a terminal's
// text means replacing the node.
type NodeData struct {
	Kind   Kind
	Origin Origin
	Span   InputSpan
	Text   string
}

// NewTerminalData returns data for a terminal read from the input.
func NewTerminalData(kind TerminalKind, span InputSpan) NodeData {
	return NodeData{Kind: kind.Kind(), Origin: OriginInput, Span: span}
}

// NewDynamicTerminalData returns data for a terminal whose text is synthesized.
func NewDynamicTerminalData(kind TerminalKind, text string) NodeData {
	return NodeData{Kind: kind.Kind(), Origin: OriginDynamic, Text: text}
}

// NewNonTerminalData returns data for a normally matched production.
func NewNonTerminalData(kind NonTerminalKind) NodeData {
	return NodeData{Kind: kind.Kind(), Origin: OriginInput}
}

// NewDynamicNonTerminalData returns data for a production built by an edit.
func NewDynamicNonTerminalData(kind NonTerminalKind) NodeData {
	return NodeData{Kind: kind.Kind(), Origin: OriginDynamic}
}

// NewRecoveredNonTerminalData returns data for an error production.
func NewRecoveredNonTerminalData(kind NonTerminalKind) NodeData {
	return NodeData{Kind: kind.Kind(), Origin: OriginRecovered}
}

// IsTerminal returns true if the node is a terminal.
func (d NodeData) IsTerminal() bool {
	return d.Kind.terminal
}

// TerminalKind returns the terminal kind, if the node is a terminal.
func (d NodeData) TerminalKind() (TerminalKind, bool) {
	return d.Kind.Terminal()
}

// NonTerminalKind returns the non-terminal kind, if the node is a non-terminal.
func (d NodeData) NonTerminalKind() (NonTerminalKind, bool) {
	return d.Kind.NonTerminal()
}

// IsDynamic returns true for nodes synthesized by an edit.
func (d NodeData) IsDynamic() bool {
	return d.Origin == OriginDynamic
}

// IsRecovered returns true for error productions.
func (d NodeData) IsRecovered() bool {
	return d.Origin == OriginRecovered
}

// Bytes returns the text a terminal contributes to the rendered document.
// Non-terminals contribute nothing.
func (d NodeData) Bytes(input []byte) []byte {
	if !d.Kind.terminal {
		return nil
	}
	if d.Origin == OriginDynamic {
		return []byte(d.Text)
	}
	return d.Span.Text(input)
}

// String returns the text a terminal contributes, as a string.
func (d NodeData) String(input []byte) string {
	if d.Kind.terminal && d.Origin == OriginDynamic {
		return d.Text
	}
	return string(d.Bytes(input))
}

func (d NodeData) isTerminal(kind TerminalKind) bool {
	return d.Kind.terminal && d.Kind.term == kind
}

func (d NodeData) isNonTerminal(kind NonTerminalKind) bool {
	return !d.Kind.terminal && d.Kind.nonTerminal == kind
}

func (d NodeData) isTrivia() bool {
	return d.Kind.terminal && d.Kind.term.IsBuiltinTerminal()
}
