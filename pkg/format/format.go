// Package format rewrites the layout trivia of a SWON document into its
// canonical form. Only whitespace and newline trivia between tokens are
// edited; comments and content are preserved byte for byte.
package format

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/goswon/pkg/cst"
	"github.com/yaklabco/goswon/pkg/parser"
)

// DefaultIndentWidth is the number of spaces per section block level.
const DefaultIndentWidth = 2

// Options configures the formatter.
type Options struct {
	// IndentWidth is the number of spaces per section block level.
	// Zero means DefaultIndentWidth.
	IndentWidth int

	// Logger receives debug output. Nil disables logging.
	Logger *log.Logger
}

// DefaultOptions returns the canonical formatting options.
func DefaultOptions() Options {
	return Options{IndentWidth: DefaultIndentWidth}
}

// Commands computes the edits that bring tree to canonical layout.
// The tree is not modified. An empty buffer means the tree is already
// formatted.
func Commands(tree *cst.Tree, input []byte, opts Options) (*cst.Commands, error) {
	layout, err := CollectLayout(tree, input)
	if err != nil {
		return nil, fmt.Errorf("collect layout: %w", err)
	}

	f := &formatter{
		tree:   tree,
		cmds:   cst.NewCommands(tree),
		width:  opts.IndentWidth,
		layout: layout,
	}
	if f.width <= 0 {
		f.width = DefaultIndentWidth
	}
	if opts.Logger != nil {
		f.cmds.SetLogger(opts.Logger)
	}

	for i := range layout.Slots {
		cur := &layout.Slots[i]
		if cur.Verbatim {
			continue
		}
		var want string
		if i > 0 {
			want = f.separator(&layout.Slots[i-1], cur)
		}
		f.rewriteBefore(cur, want)
	}
	f.rewriteTrailing()

	if opts.Logger != nil {
		opts.Logger.Debug("format commands", "slots", len(layout.Slots), "commands", f.cmds.Len())
	}
	return f.cmds, nil
}

// Format applies the canonical layout to tree and returns the rendered
// document.
func Format(tree *cst.Tree, input []byte, opts Options) ([]byte, error) {
	cmds, err := Commands(tree, input, opts)
	if err != nil {
		return nil, err
	}
	if err := cmds.ApplyTo(tree); err != nil {
		return nil, fmt.Errorf("apply format commands: %w", err)
	}
	return tree.Render(input), nil
}

// Source parses input and returns it formatted.
func Source(input []byte, opts Options) ([]byte, error) {
	tree, err := parser.ParseWithOptions(input, parser.Options{Logger: opts.Logger})
	if err != nil {
		return nil, err
	}
	return Format(tree, input, opts)
}

type formatter struct {
	tree   *cst.Tree
	cmds   *cst.Commands
	width  int
	layout *Layout
}

func (f *formatter) indent(depth int) string {
	return strings.Repeat(" ", depth*f.width)
}

// separator returns the canonical gap between prev and cur.
func (f *formatter) separator(prev, cur *Slot) string {
	ind := f.indent(cur.Depth)

	if cur.IsComment() {
		if !cur.OwnLine {
			return " "
		}
		return f.lineBreak(prev, cur.Lead, ind)
	}
	if cur.Break != BreakNone {
		return f.lineBreak(prev, cur.Break, ind)
	}
	if prev.Kind == cst.TokLineComment {
		return "\n" + ind
	}
	if prev.EndsLine() {
		return ind
	}
	return tokenSeparator(prev, cur)
}

// lineBreak returns the gap that starts a new line, or a blank line for
// sections. An own-line comment directly above keeps its subject attached.
func (f *formatter) lineBreak(prev *Slot, brk Break, ind string) string {
	n := 1
	if brk == BreakSection && !(prev.IsComment() && prev.OwnLine) {
		n = 2
	}
	if prev.EndsLine() {
		n--
	}
	return strings.Repeat("\n", n) + ind
}

func tokenSeparator(prev, cur *Slot) string {
	switch {
	case cur.Kind == cst.TokBind, prev.Kind == cst.TokBind:
		return " "
	case cur.Kind == cst.TokComma:
		return ""
	case prev.Kind == cst.TokComma:
		return " "
	case cur.Kind == cst.TokEsc, prev.Kind == cst.TokEsc:
		return " "
	case cur.Kind == cst.TokLBrace && cur.BlockBrace:
		return " "
	case prev.Kind == cst.TokBlockComment:
		return " "
	default:
		return ""
	}
}

// rewriteBefore replaces the gap before cur when it differs from want.
func (f *formatter) rewriteBefore(cur *Slot, want string) {
	if GapText(cur.Gap) == want {
		return
	}
	for _, g := range cur.Gap {
		f.cmds.DeleteNode(g.ID)
	}
	if nodes := f.trivia(want); len(nodes) > 0 {
		f.cmds.AddNodesBefore(cur.Parent, cur.ID, nodes...)
	}
}

// rewriteTrailing collapses the trivia after the last slot to a single line
// break, or to nothing when the document had none.
func (f *formatter) rewriteTrailing() {
	trailing := f.layout.Trailing
	var want string
	if HasNewLine(trailing) {
		want = "\n"
		if n := len(f.layout.Slots); n > 0 && f.layout.Slots[n-1].EndsLine() {
			want = ""
		}
	}
	if GapText(trailing) == want {
		return
	}
	for _, g := range trailing {
		f.cmds.DeleteNode(g.ID)
	}
	if want == "" {
		return
	}
	root := f.tree.Root()
	anchor := cst.InvalidNodeID
	for id := range f.tree.Children(root) {
		anchor = id
	}
	if anchor == cst.InvalidNodeID {
		return
	}
	f.cmds.AddNodesAfter(root, anchor, f.trivia(want)...)
}

// trivia allocates dynamic trivia terminals spelling text.
func (f *formatter) trivia(text string) []cst.NodeID {
	var nodes []cst.NodeID
	for text != "" {
		if text[0] == '\n' {
			nodes = append(nodes, f.cmds.InsertDynamicTerminal(cst.TokNewLine, "\n"))
			text = text[1:]
			continue
		}
		n := strings.IndexByte(text, '\n')
		if n < 0 {
			n = len(text)
		}
		nodes = append(nodes, f.cmds.InsertDynamicTerminal(cst.TokWhitespace, text[:n]))
		text = text[n:]
	}
	return nodes
}
