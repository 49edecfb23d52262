package cst

// Handle is implemented by every typed node handle.
type Handle interface {
	NodeID() NodeID
}

// TerminalHandle is implemented by the typed terminal handles.
type TerminalHandle interface {
	Handle
	Kind() TerminalKind
}

// TriviaFunc receives each trivia terminal skipped while a view is built,
// in child order. Returning an error aborts construction.
type TriviaFunc func(id NodeID, kind TerminalKind, data NodeData) error

// childCursor walks a node's children while a view is built. The first
// failure sticks: later calls return InvalidNodeID and finish reports it.
type childCursor struct {
	tree     *Tree
	parent   NodeID
	children []NodeID
	pos      int
	trivia   TriviaFunc
	err      error
}

func openChildren(t *Tree, id NodeID, kind NonTerminalKind, trivia TriviaFunc) *childCursor {
	c := &childCursor{tree: t, parent: id, trivia: trivia}
	c.err = checkNonTerminal(t, id, kind)
	if c.err == nil {
		c.children = t.childSlice(id)
	}
	return c
}

func checkNonTerminal(t *Tree, id NodeID, kind NonTerminalKind) error {
	data, ok := t.NodeData(id)
	if !ok {
		return &ConstructError{Kind: NodeIDNotFound, Node: id}
	}
	if !data.isNonTerminal(kind) {
		return &ConstructError{Kind: KindMismatch, Node: id, Expected: kind.Kind(), Actual: data.Kind}
	}
	return nil
}

func checkTerminal(t *Tree, id NodeID, kind TerminalKind) (NodeData, error) {
	data, ok := t.NodeData(id)
	if !ok {
		return NodeData{}, &ConstructError{Kind: NodeIDNotFound, Node: id}
	}
	if !data.isTerminal(kind) {
		return NodeData{}, &ConstructError{Kind: KindMismatch, Node: id, Expected: kind.Kind(), Actual: data.Kind}
	}
	return data, nil
}

// skipTrivia advances past trivia children, reporting each one.
func (c *childCursor) skipTrivia() {
	for c.err == nil && c.pos < len(c.children) {
		id := c.children[c.pos]
		data, ok := c.tree.NodeData(id)
		if !ok {
			c.err = &ConstructError{Kind: NodeIDNotFound, Node: id}
			return
		}
		if !data.isTrivia() {
			return
		}
		c.pos++
		if c.trivia != nil {
			kind, _ := data.TerminalKind()
			c.err = c.trivia(id, kind, data)
		}
	}
}

// next returns the next non-trivia child.
func (c *childCursor) next() (NodeID, NodeData) {
	c.skipTrivia()
	if c.err != nil {
		return InvalidNodeID, NodeData{}
	}
	if c.pos >= len(c.children) {
		c.err = &ConstructError{Kind: UnexpectedEndOfChildren, Node: c.parent}
		return InvalidNodeID, NodeData{}
	}
	id := c.children[c.pos]
	c.pos++
	data, _ := c.tree.NodeData(id)
	return id, data
}

func (c *childCursor) nonTerminal(kind NonTerminalKind) NodeID {
	id, data := c.next()
	if c.err != nil {
		return InvalidNodeID
	}
	if !data.isNonTerminal(kind) {
		c.unexpected(id, data)
		return InvalidNodeID
	}
	return id
}

func (c *childCursor) terminal(kind TerminalKind) NodeID {
	id, data := c.next()
	if c.err != nil {
		return InvalidNodeID
	}
	if !data.isTerminal(kind) {
		c.unexpected(id, data)
		return InvalidNodeID
	}
	return id
}

func (c *childCursor) unexpected(id NodeID, data NodeData) {
	if c.err != nil {
		return
	}
	if kind, ok := data.TerminalKind(); ok {
		c.err = &ConstructError{Kind: UnexpectedTerminal, Node: id, Terminal: kind}
		return
	}
	kind, _ := data.NonTerminalKind()
	c.err = &ConstructError{Kind: UnexpectedNonTerminal, Node: id, NonTerminal: kind}
}

// empty reports whether only trivia remains. It does not consume anything.
func (c *childCursor) empty() bool {
	if c.err != nil {
		return false
	}
	for _, id := range c.children[c.pos:] {
		data, ok := c.tree.NodeData(id)
		if !ok || !data.isTrivia() {
			return false
		}
	}
	return true
}

// finish consumes trailing trivia and rejects leftover children.
func (c *childCursor) finish() error {
	c.skipTrivia()
	if c.err == nil && c.pos < len(c.children) {
		c.err = &ConstructError{Kind: UnexpectedExtraNode, Node: c.children[c.pos]}
	}
	return c.err
}
