package cst

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching against ConstructError and ApplyError.
var (
	ErrNodeIDNotFound          = errors.New("node id not found")
	ErrUnexpectedTerminal      = errors.New("unexpected terminal")
	ErrUnexpectedNonTerminal   = errors.New("unexpected non-terminal")
	ErrUnexpectedEndOfChildren = errors.New("unexpected end of children")
	ErrUnexpectedExtraNode     = errors.New("unexpected extra node")
	ErrKindMismatch            = errors.New("node kind mismatch")

	ErrParentMissing = errors.New("parent node missing")
	ErrDanglingNode  = errors.New("dangling node")
)

// ConstructErrorKind classifies why a view could not be built.
type ConstructErrorKind uint8

const (
	NodeIDNotFound ConstructErrorKind = iota
	UnexpectedTerminal
	UnexpectedNonTerminal
	UnexpectedEndOfChildren
	UnexpectedExtraNode
	KindMismatch
)

var constructSentinels = [...]error{
	NodeIDNotFound:          ErrNodeIDNotFound,
	UnexpectedTerminal:      ErrUnexpectedTerminal,
	UnexpectedNonTerminal:   ErrUnexpectedNonTerminal,
	UnexpectedEndOfChildren: ErrUnexpectedEndOfChildren,
	UnexpectedExtraNode:     ErrUnexpectedExtraNode,
	KindMismatch:            ErrKindMismatch,
}

func (k ConstructErrorKind) String() string {
	if int(k) < len(constructSentinels) {
		return constructSentinels[k].Error()
	}
	return fmt.Sprintf("ConstructErrorKind(%d)", uint8(k))
}

// ConstructError reports a node whose children do not match its production.
type ConstructError struct {
	Kind ConstructErrorKind

	// Node is the offending node. For UnexpectedEndOfChildren it is the parent
	// whose children ran out.
	Node NodeID

	// Terminal is set for UnexpectedTerminal.
	Terminal TerminalKind

	// NonTerminal is set for UnexpectedNonTerminal.
	NonTerminal NonTerminalKind

	// Expected and Actual are set for KindMismatch.
	Expected Kind
	Actual   Kind
}

// Error implements the error interface.
func (e *ConstructError) Error() string {
	switch e.Kind {
	case UnexpectedTerminal:
		return fmt.Sprintf("node %d: unexpected terminal %s", e.Node, e.Terminal)
	case UnexpectedNonTerminal:
		return fmt.Sprintf("node %d: unexpected non-terminal %s", e.Node, e.NonTerminal)
	case KindMismatch:
		return fmt.Sprintf("node %d: expected %s, found %s", e.Node, e.Expected, e.Actual)
	default:
		return fmt.Sprintf("node %d: %s", e.Node, e.Kind)
	}
}

// Is matches the sentinel for the error's kind.
func (e *ConstructError) Is(target error) bool {
	return int(e.Kind) < len(constructSentinels) && target == constructSentinels[e.Kind]
}

// ApplyErrorKind classifies why a command could not be applied.
type ApplyErrorKind uint8

const (
	// ParentMissing means the parent of an insertion no longer exists.
	ParentMissing ApplyErrorKind = iota
	// DanglingNode means a command referenced a node that cannot be placed
	// or removed where the command asks.
	DanglingNode
)

func (k ApplyErrorKind) String() string {
	switch k {
	case ParentMissing:
		return ErrParentMissing.Error()
	case DanglingNode:
		return ErrDanglingNode.Error()
	default:
		return fmt.Sprintf("ApplyErrorKind(%d)", uint8(k))
	}
}

// ApplyError reports a structural edit that could not be carried out.
type ApplyError struct {
	Kind ApplyErrorKind
	Node NodeID

	// Command is the index of the failing command in its buffer, or -1 for
	// direct tree edits.
	Command int

	Reason string
}

// Error implements the error interface.
func (e *ApplyError) Error() string {
	msg := fmt.Sprintf("%s: node %d", e.Kind, e.Node)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Command >= 0 {
		msg = fmt.Sprintf("command %d: %s", e.Command, msg)
	}
	return msg
}

// Is matches ErrParentMissing or ErrDanglingNode.
func (e *ApplyError) Is(target error) bool {
	switch e.Kind {
	case ParentMissing:
		return target == ErrParentMissing
	case DanglingNode:
		return target == ErrDanglingNode
	default:
		return false
	}
}

func parentMissing(id NodeID, reason string) *ApplyError {
	return &ApplyError{Kind: ParentMissing, Node: id, Command: -1, Reason: reason}
}

func dangling(id NodeID, reason string) *ApplyError {
	return &ApplyError{Kind: DanglingNode, Node: id, Command: -1, Reason: reason}
}
