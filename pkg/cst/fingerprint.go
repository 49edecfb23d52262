package cst

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the shape of the tree together with the text of its
// terminals. Two trees with equal fingerprints render the same text through
// the same productions, regardless of node ids or whether terminals are
// input-backed or dynamic.
func (t *Tree) Fingerprint(input []byte) uint64 {
	return t.fingerprint(input, false)
}

// SignificantFingerprint is Fingerprint with all trivia ignored. Trees that
// differ only in layout and comments share it.
func (t *Tree) SignificantFingerprint(input []byte) uint64 {
	return t.fingerprint(input, true)
}

func (t *Tree) fingerprint(input []byte, skipTrivia bool) uint64 {
	digest := xxhash.New()
	var scratch [8]byte
	writeTag := func(tag byte, kind uint8) {
		scratch[0], scratch[1] = tag, kind
		_, _ = digest.Write(scratch[:2])
	}

	type entry struct {
		id    NodeID
		close bool
	}
	stack := []entry{{id: t.root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[top.id]
		if top.close {
			writeTag(')', 0)
			continue
		}
		if kind, ok := n.data.TerminalKind(); ok {
			if skipTrivia && kind.IsBuiltinTerminal() {
				continue
			}
			text := n.data.Bytes(input)
			writeTag('t', uint8(kind))
			binary.LittleEndian.PutUint64(scratch[:], uint64(len(text)))
			_, _ = digest.Write(scratch[:])
			_, _ = digest.Write(text)
			continue
		}
		kind, _ := n.data.NonTerminalKind()
		writeTag('(', uint8(kind))
		stack = append(stack, entry{id: top.id, close: true})
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, entry{id: n.children[i]})
		}
	}
	return digest.Sum64()
}
