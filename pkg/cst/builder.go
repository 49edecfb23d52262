package cst

import (
	"errors"
	"fmt"
)

// ErrUnbalancedBuild is reported when opens and closes do not pair up.
var ErrUnbalancedBuild = errors.New("unbalanced tree build")

// TreeBuilder is the interface a parser drives to produce a Tree.
type TreeBuilder interface {
	// OpenNonTerminal starts a node under the currently open one.
	OpenNonTerminal(kind NonTerminalKind) NodeID
	// CloseNonTerminal finishes the most recently opened node.
	CloseNonTerminal() error
	// EmitTerminal appends a terminal under the currently open node.
	EmitTerminal(kind TerminalKind, span InputSpan) NodeID
	// EmitRecoveryMarker opens a node flagged as an error production. It is
	// closed with CloseNonTerminal like any other node.
	EmitRecoveryMarker(kind NonTerminalKind) NodeID
}

// Builder implements TreeBuilder on top of a Tree.
// The first node opened becomes the root. Errors are sticky and reported by Build.
type Builder struct {
	tree  *Tree
	stack []NodeID
	err   error
}

var _ TreeBuilder = (*Builder)(nil)

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// OpenNonTerminal implements TreeBuilder.
func (b *Builder) OpenNonTerminal(kind NonTerminalKind) NodeID {
	return b.open(NewNonTerminalData(kind))
}

// EmitRecoveryMarker implements TreeBuilder.
func (b *Builder) EmitRecoveryMarker(kind NonTerminalKind) NodeID {
	return b.open(NewRecoveredNonTerminalData(kind))
}

func (b *Builder) open(data NodeData) NodeID {
	if b.err != nil {
		return InvalidNodeID
	}
	if b.tree == nil {
		b.tree = NewTree(data)
		b.stack = append(b.stack, b.tree.Root())
		return b.tree.Root()
	}
	if len(b.stack) == 0 {
		b.err = fmt.Errorf("%w: open %s after the root was closed", ErrUnbalancedBuild, data.Kind)
		return InvalidNodeID
	}
	id, err := b.tree.AddNode(b.stack[len(b.stack)-1], data)
	if err != nil {
		b.err = err
		return InvalidNodeID
	}
	b.stack = append(b.stack, id)
	return id
}

// CloseNonTerminal implements TreeBuilder.
func (b *Builder) CloseNonTerminal() error {
	if b.err != nil {
		return b.err
	}
	if len(b.stack) == 0 {
		b.err = fmt.Errorf("%w: close without open", ErrUnbalancedBuild)
		return b.err
	}
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

// EmitTerminal implements TreeBuilder.
func (b *Builder) EmitTerminal(kind TerminalKind, span InputSpan) NodeID {
	if b.err != nil {
		return InvalidNodeID
	}
	if len(b.stack) == 0 {
		b.err = fmt.Errorf("%w: terminal %s outside any node", ErrUnbalancedBuild, kind)
		return InvalidNodeID
	}
	id, err := b.tree.AddNode(b.stack[len(b.stack)-1], NewTerminalData(kind, span))
	if err != nil {
		b.err = err
		return InvalidNodeID
	}
	return id
}

// Depth returns the number of open nodes.
func (b *Builder) Depth() int {
	return len(b.stack)
}

// Build returns the finished tree.
func (b *Builder) Build() (*Tree, error) {
	switch {
	case b.err != nil:
		return nil, b.err
	case b.tree == nil:
		return nil, fmt.Errorf("%w: nothing was built", ErrUnbalancedBuild)
	case len(b.stack) != 0:
		return nil, fmt.Errorf("%w: %d nodes left open", ErrUnbalancedBuild, len(b.stack))
	}
	return b.tree, nil
}
