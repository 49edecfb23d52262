package cst

import "slices"

// frame tracks how far the walk has progressed through one open node.
type frame struct {
	id       NodeID
	children []NodeID
	pos      int
}

// Walker drives a Visitor through a Tree.
//
// Each open non-terminal keeps a cursor over its children. Before a child is
// visited, any trivia siblings between the cursor and that child are routed
// to the trivia hooks; trivia left over when the node closes is routed then.
// Trivia therefore reaches the visitor in source order, interleaved with the
// structural callbacks.
type Walker struct {
	tree    *Tree
	visitor Visitor
	frames  []frame
}

// NewWalker returns a Walker that reports to v.
func NewWalker(t *Tree, v Visitor) *Walker {
	return &Walker{tree: t, visitor: v}
}

// Walk visits the whole tree from its root.
func Walk(t *Tree, v Visitor) error {
	return NewWalker(t, v).VisitAny(t.Root())
}

// Tree returns the tree being walked.
func (w *Walker) Tree() *Tree {
	return w.tree
}

// Visitor returns the outermost visitor. Default hooks dispatch through it so
// that overrides are honoured.
func (w *Walker) Visitor() Visitor {
	return w.visitor
}

// Current returns the innermost open non-terminal.
func (w *Walker) Current() (NodeID, bool) {
	if len(w.frames) == 0 {
		return InvalidNodeID, false
	}
	return w.frames[len(w.frames)-1].id, true
}

// VisitAny dispatches id to the hook for its kind.
func (w *Walker) VisitAny(id NodeID) error {
	data, ok := w.tree.NodeData(id)
	if !ok {
		if err := w.enter(id); err != nil {
			return err
		}
		return w.visitor.OnConstructError(w, id, &ConstructError{Kind: NodeIDNotFound, Node: id})
	}
	if kind, ok := data.TerminalKind(); ok {
		return w.visitTerminal(id, kind)
	}
	kind, _ := data.NonTerminalKind()
	return w.visitNonTerminalKind(id, kind)
}

// VisitTerminalHandle visits a terminal through its kind's hook.
func (w *Walker) VisitTerminalHandle(h TerminalHandle) error {
	return w.visitTerminal(h.NodeID(), h.Kind())
}

// Recover visits every remaining child of id with VisitAny. It is the
// default response to a construct error.
func (w *Walker) Recover(id NodeID) error {
	if !w.tree.Contains(id) {
		return nil
	}
	cur, open := w.Current()
	if !open || cur != id {
		w.frames = append(w.frames, frame{id: id, children: w.tree.childSlice(id)})
		defer func() { w.frames = w.frames[:len(w.frames)-1] }()
	}
	top := len(w.frames) - 1
	for w.frames[top].pos < len(w.frames[top].children) {
		if err := w.VisitAny(w.frames[top].children[w.frames[top].pos]); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) visitTerminal(id NodeID, kind TerminalKind) error {
	if err := w.enter(id); err != nil {
		return err
	}
	data, err := checkTerminal(w.tree, id, kind)
	if err != nil {
		return w.visitor.OnConstructError(w, id, err)
	}
	return w.dispatchTerminal(id, kind, data)
}

// visitNonTerminal runs the steps shared by every production: resolve the
// node, check its kind, announce it, run body with the node's frame open,
// route remaining trivia and announce the close.
func (w *Walker) visitNonTerminal(id NodeID, kind NonTerminalKind, body func() error) error {
	if err := w.enter(id); err != nil {
		return err
	}
	data, ok := w.tree.NodeData(id)
	if !ok {
		return w.visitor.OnConstructError(w, id, &ConstructError{Kind: NodeIDNotFound, Node: id})
	}
	if !data.isNonTerminal(kind) {
		return w.visitor.OnConstructError(w, id, &ConstructError{
			Kind: KindMismatch, Node: id, Expected: kind.Kind(), Actual: data.Kind,
		})
	}
	if err := w.visitor.VisitNonTerminal(w, id, kind, data); err != nil {
		return err
	}

	children := w.tree.childSlice(id)
	w.frames = append(w.frames, frame{id: id, children: children})
	err := body()
	if err == nil {
		err = w.flushTrivia(len(children))
	}
	w.frames = w.frames[:len(w.frames)-1]
	if err != nil {
		return err
	}
	return w.visitor.VisitNonTerminalClose(w, id, kind, data)
}

// enter routes the trivia preceding id in the innermost frame and moves the
// cursor past it. Nodes that are not children of the open node are visited
// without touching the cursor.
func (w *Walker) enter(id NodeID) error {
	if len(w.frames) == 0 {
		return nil
	}
	top := len(w.frames) - 1
	f := w.frames[top]
	idx := slices.Index(f.children[f.pos:], id)
	if idx < 0 {
		return nil
	}
	idx += f.pos
	if err := w.flushTrivia(idx); err != nil {
		return err
	}
	w.frames[top].pos = idx + 1
	return nil
}

// flushTrivia routes trivia children of the innermost frame up to index until.
// Non-trivia children in that range were skipped by the visitor and stay unvisited.
func (w *Walker) flushTrivia(until int) error {
	top := len(w.frames) - 1
	for w.frames[top].pos < until {
		f := &w.frames[top]
		id := f.children[f.pos]
		f.pos++
		data, ok := w.tree.NodeData(id)
		if !ok || !data.isTrivia() {
			continue
		}
		kind, _ := data.TerminalKind()
		if err := w.dispatchTerminal(id, kind, data); err != nil {
			return err
		}
	}
	return nil
}
