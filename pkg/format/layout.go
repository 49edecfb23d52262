package format

import (
	"github.com/yaklabco/goswon/pkg/cst"
)

// Break is the line structure a slot requires before it.
type Break uint8

const (
	BreakNone Break = iota
	// BreakLine starts the slot on a new line.
	BreakLine
	// BreakSection starts the slot after a blank line.
	BreakSection
)

// GapNode is a whitespace or newline trivia terminal between two slots.
type GapNode struct {
	ID   cst.NodeID
	Kind cst.TerminalKind
	Text string
}

// Slot is a significant terminal or a comment, in document order, together
// with the layout trivia that precedes it.
type Slot struct {
	ID     cst.NodeID
	Parent cst.NodeID
	Kind   cst.TerminalKind
	Text   string

	// Depth counts the section blocks enclosing the slot.
	Depth int
	Break Break

	// Verbatim marks slots whose preceding gap lies inside content that
	// must not change: strings, code blocks, text bindings and recovered
	// regions.
	Verbatim bool

	// OwnLine marks comments that begin a line.
	OwnLine bool
	// Lead is, for own-line comments, the Break of the next non-comment slot.
	Lead Break

	// BlockBrace marks the braces of a section block.
	BlockBrace bool

	Gap []GapNode
}

// IsComment returns true for comment slots.
func (s *Slot) IsComment() bool {
	return s.Kind.IsComment()
}

// EndsLine returns true if the slot's own text ends with a line break.
func (s *Slot) EndsLine() bool {
	switch s.Kind {
	case cst.TokNewline, cst.TokCodeBlockLine:
		return s.Text != ""
	default:
		return false
	}
}

// Layout is the sequence of slots of a document.
type Layout struct {
	Slots []Slot

	// Trailing is the layout trivia after the last slot.
	Trailing []GapNode
}

// GapText concatenates the text of gap nodes.
func GapText(gap []GapNode) string {
	var n int
	for _, g := range gap {
		n += len(g.Text)
	}
	buf := make([]byte, 0, n)
	for _, g := range gap {
		buf = append(buf, g.Text...)
	}
	return string(buf)
}

// HasNewLine returns true if the gap contains a NewLine trivia terminal.
func HasNewLine(gap []GapNode) bool {
	for _, g := range gap {
		if g.Kind == cst.TokNewLine {
			return true
		}
	}
	return false
}

// CollectLayout walks tree and records its slots.
func CollectLayout(tree *cst.Tree, input []byte) (*Layout, error) {
	c := &collector{tree: tree, input: input}
	if err := cst.Walk(tree, c); err != nil {
		return nil, err
	}
	c.layout.Trailing = c.gap

	// Own-line comments inherit the break of the slot they introduce.
	var lead Break
	for i := len(c.layout.Slots) - 1; i >= 0; i-- {
		s := &c.layout.Slots[i]
		if !s.IsComment() {
			lead = s.Break
			continue
		}
		if s.OwnLine {
			s.Lead = lead
		}
	}
	return &c.layout, nil
}

type collector struct {
	cst.BaseVisitor

	tree  *cst.Tree
	input []byte

	layout  Layout
	gap     []GapNode
	pending Break
	depth   int

	// verbatim counts open verbatim nodes; verbatimHead is set until the
	// first slot inside the outermost one is seen.
	verbatim     int
	verbatimHead bool
}

func (c *collector) VisitNonTerminal(_ *cst.Walker, _ cst.NodeID, kind cst.NonTerminalKind, data cst.NodeData) error {
	if kind.IsVerbatim() || data.IsRecovered() {
		if c.verbatim == 0 {
			c.verbatimHead = !data.IsRecovered()
		}
		c.verbatim++
	}
	return nil
}

func (c *collector) VisitNonTerminalClose(_ *cst.Walker, _ cst.NodeID, kind cst.NonTerminalKind, data cst.NodeData) error {
	if kind.IsVerbatim() || data.IsRecovered() {
		c.verbatim--
	}
	return nil
}

func (c *collector) VisitBinding(w *cst.Walker, h cst.BindingHandle, view cst.BindingView) error {
	c.pending = max(c.pending, BreakLine)
	return w.VisitBindingSuper(h, view)
}

func (c *collector) VisitSection(w *cst.Walker, h cst.SectionHandle, view cst.SectionView) error {
	c.pending = BreakSection
	return w.VisitSectionSuper(h, view)
}

func (c *collector) VisitSectionBinding(w *cst.Walker, _ cst.SectionBindingHandle, view cst.SectionBindingView) error {
	if err := w.VisitBeginHandle(view.Begin); err != nil {
		return err
	}
	c.depth++
	defer func() { c.depth-- }()
	if err := w.VisitSwonHandle(view.Swon); err != nil {
		return err
	}
	c.pending = BreakLine
	return w.VisitEndHandle(view.End)
}

func (c *collector) VisitWhitespaceTerminal(_ *cst.Walker, t cst.WhitespaceTerminal, data cst.NodeData) error {
	c.gap = append(c.gap, GapNode{ID: t.NodeID(), Kind: cst.TokWhitespace, Text: data.String(c.input)})
	return nil
}

func (c *collector) VisitNewLineTerminal(_ *cst.Walker, t cst.NewLineTerminal, data cst.NodeData) error {
	c.gap = append(c.gap, GapNode{ID: t.NodeID(), Kind: cst.TokNewLine, Text: data.String(c.input)})
	return nil
}

func (c *collector) VisitLineCommentTerminal(w *cst.Walker, t cst.LineCommentTerminal, data cst.NodeData) error {
	return c.VisitTerminal(w, t.NodeID(), cst.TokLineComment, data)
}

func (c *collector) VisitBlockCommentTerminal(w *cst.Walker, t cst.BlockCommentTerminal, data cst.NodeData) error {
	return c.VisitTerminal(w, t.NodeID(), cst.TokBlockComment, data)
}

// VisitTerminal records a slot. Every significant terminal hook falls back here.
func (c *collector) VisitTerminal(_ *cst.Walker, id cst.NodeID, kind cst.TerminalKind, data cst.NodeData) error {
	parent, _ := c.tree.Parent(id)
	slot := Slot{
		ID:       id,
		Parent:   parent,
		Kind:     kind,
		Text:     data.String(c.input),
		Depth:    c.depth,
		Verbatim: c.verbatim > 0 && !c.verbatimHead,
		Gap:      c.gap,
	}
	c.gap = nil
	if c.verbatim > 0 {
		c.verbatimHead = false
	}

	slots := c.layout.Slots
	if kind.IsComment() {
		slot.OwnLine = len(slots) == 0 || HasNewLine(slot.Gap)
		if n := len(slots); n > 0 {
			prev := &slots[n-1]
			slot.OwnLine = slot.OwnLine || prev.EndsLine() || prev.Kind == cst.TokLineComment
		}
	} else {
		slot.Break = c.pending
		c.pending = BreakNone
	}

	if kind == cst.TokLBrace || kind == cst.TokRBrace {
		if wrapper, ok := c.tree.Parent(id); ok {
			if outer, ok := c.tree.Parent(wrapper); ok {
				data, _ := c.tree.NodeData(outer)
				outerKind, _ := data.NonTerminalKind()
				slot.BlockBrace = !data.IsTerminal() && outerKind == cst.NodeSectionBinding
			}
		}
	}
	// Comments before a closing brace stay at the inner level.
	if slot.BlockBrace && kind == cst.TokRBrace {
		slot.Depth--
	}

	c.layout.Slots = append(c.layout.Slots, slot)
	return nil
}
