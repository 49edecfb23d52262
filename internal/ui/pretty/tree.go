package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/goswon/pkg/cst"
)

// TreeOptions controls FormatTree.
type TreeOptions struct {
	// HideTrivia omits whitespace, newline and comment terminals.
	HideTrivia bool

	// Width truncates quoted terminal text so lines fit; 0 disables.
	Width int
}

const treeIndent = "  "

// FormatTree renders tree as an indented outline: one line per node with
// its kind, and for terminals the byte span and quoted text.
func (s *Styles) FormatTree(tree *cst.Tree, input []byte, opts TreeOptions) string {
	var builder strings.Builder
	if tree.Len() > 0 {
		s.formatNode(&builder, tree, input, tree.Root(), 0, opts)
	}
	return builder.String()
}

func (s *Styles) formatNode(b *strings.Builder, tree *cst.Tree, input []byte, id cst.NodeID, depth int, opts TreeOptions) {
	data, ok := tree.NodeData(id)
	if !ok {
		return
	}

	prefix := strings.Repeat(treeIndent, depth)

	if kind, ok := data.TerminalKind(); ok {
		if opts.HideTrivia && kind.IsBuiltinTerminal() {
			return
		}
		style := s.Terminal
		if kind.IsBuiltinTerminal() {
			style = s.Trivia
		}
		line := prefix + style.Render(kind.String()) + " " + s.origin(data)
		text := strconv.Quote(data.String(input))
		if opts.Width > 0 {
			text = truncateString(text, opts.Width-len(prefix)-len(kind.String())-len(s.plainOrigin(data))-2)
		}
		b.WriteString(line + " " + s.Text.Render(text) + "\n")
		return
	}

	kind, _ := data.NonTerminalKind()
	line := prefix + s.NonTerminal.Render(kind.String())
	if data.IsDynamic() {
		line += " " + s.Dynamic.Render("dynamic")
	}
	if data.IsRecovered() {
		line += " " + s.Recovered.Render("recovered")
	}
	b.WriteString(line + "\n")

	for child := range tree.Children(id) {
		s.formatNode(b, tree, input, child, depth+1, opts)
	}
}

func (s *Styles) origin(data cst.NodeData) string {
	if data.IsDynamic() {
		return s.Dynamic.Render(s.plainOrigin(data))
	}
	return s.Span.Render(s.plainOrigin(data))
}

func (s *Styles) plainOrigin(data cst.NodeData) string {
	if data.IsDynamic() {
		return "dynamic"
	}
	return fmt.Sprintf("[%d..%d]", data.Span.Start, data.Span.End)
}

// truncateString shortens str to maxLen runes, marking the cut with "...".
func truncateString(str string, maxLen int) string {
	const ellipsis = "..."
	runes := []rune(str)
	if maxLen <= len(ellipsis) || len(runes) <= maxLen {
		return str
	}
	return string(runes[:maxLen-len(ellipsis)]) + ellipsis
}
