package cst

import (
	"bytes"
	"io"
)

// Render returns the concatenated text of every terminal reachable from the
// root, in order. An unedited parse tree renders to its input exactly.
func (t *Tree) Render(input []byte) []byte {
	var buf bytes.Buffer
	// bytes.Buffer writes do not fail.
	_, _ = t.RenderTo(&buf, input)
	return buf.Bytes()
}

// RenderTo writes the rendered text to w.
func (t *Tree) RenderTo(w io.Writer, input []byte) (int64, error) {
	var total int64
	for id := range t.Descendants(t.root) {
		data := t.nodes[id].data
		if !data.IsTerminal() {
			continue
		}
		n, err := w.Write(data.Bytes(input))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// RenderNode returns the text under a single node.
func (t *Tree) RenderNode(id NodeID, input []byte) []byte {
	var buf bytes.Buffer
	for cur := range t.Descendants(id) {
		buf.Write(t.nodes[cur].data.Bytes(input))
	}
	return buf.Bytes()
}
