package cst

import (
	"iter"
	"slices"
)

type node struct {
	data     NodeData
	parent   NodeID
	children []NodeID
	deleted  bool
}

// Tree is an arena of CST nodes rooted at a single node.
//
// Children are ordered; every live node except the root has exactly one
// parent. Nodes created but not yet placed are detached: they have no parent
// and are not reachable from the root.
type Tree struct {
	nodes []node
	root  NodeID
}

// NewTree returns a tree containing only a root node.
func NewTree(rootData NodeData) *Tree {
	t := &Tree{}
	t.root = t.alloc(rootData)
	return t
}

func (t *Tree) alloc(data NodeData) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{data: data, parent: InvalidNodeID})
	return id
}

// Root returns the id of the root node.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the size of the arena, including detached and deleted nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Contains returns true if id refers to a node that has not been deleted.
func (t *Tree) Contains(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes) && !t.nodes[id].deleted
}

func (t *Tree) get(id NodeID) *node {
	if !t.Contains(id) {
		return nil
	}
	return &t.nodes[id]
}

// NodeData returns the payload of id.
func (t *Tree) NodeData(id NodeID) (NodeData, bool) {
	n := t.get(id)
	if n == nil {
		return NodeData{}, false
	}
	return n.data, true
}

// Children yields the children of id in order.
// The sequence is empty for unknown ids.
func (t *Tree) Children(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		n := t.get(id)
		if n == nil {
			return
		}
		for _, child := range n.children {
			if !yield(child) {
				return
			}
		}
	}
}

// ChildIDs returns a copy of the children of id.
func (t *Tree) ChildIDs(id NodeID) []NodeID {
	n := t.get(id)
	if n == nil {
		return nil
	}
	return slices.Clone(n.children)
}

func (t *Tree) childSlice(id NodeID) []NodeID {
	n := t.get(id)
	if n == nil {
		return nil
	}
	return n.children
}

// ChildCount returns the number of children of id.
func (t *Tree) ChildCount(id NodeID) int {
	n := t.get(id)
	if n == nil {
		return 0
	}
	return len(n.children)
}

// HasNoChildren returns true if id has no children or does not exist.
func (t *Tree) HasNoChildren(id NodeID) bool {
	return t.ChildCount(id) == 0
}

// Parent returns the parent of id. The root and detached nodes have none.
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	n := t.get(id)
	if n == nil || n.parent == InvalidNodeID {
		return InvalidNodeID, false
	}
	return n.parent, true
}

// IsAttached returns true if id is reachable from the root.
func (t *Tree) IsAttached(id NodeID) bool {
	for t.Contains(id) {
		if id == t.root {
			return true
		}
		id = t.nodes[id].parent
	}
	return false
}

// Ancestors yields the parent chain of id, nearest first.
func (t *Tree) Ancestors(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for {
			parent, ok := t.Parent(id)
			if !ok || !yield(parent) {
				return
			}
			id = parent
		}
	}
}

// AddNode appends a new node as the last child of parent.
func (t *Tree) AddNode(parent NodeID, data NodeData) (NodeID, error) {
	if !t.Contains(parent) {
		return InvalidNodeID, parentMissing(parent, "cannot add child")
	}
	id := t.alloc(data)
	t.nodes[id].parent = parent
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id, nil
}

// AddDetached allocates a node that is not yet part of the tree.
func (t *Tree) AddDetached(data NodeData) NodeID {
	return t.alloc(data)
}

// Append adds detached nodes as the last children of parent.
func (t *Tree) Append(parent NodeID, nodes ...NodeID) error {
	p := t.get(parent)
	if p == nil {
		return parentMissing(parent, "cannot append")
	}
	return t.insertAt(parent, len(p.children), nodes)
}

// InsertBefore places detached nodes immediately before anchor.
// If anchor has been deleted the nodes are appended to parent instead.
func (t *Tree) InsertBefore(parent, anchor NodeID, nodes ...NodeID) error {
	return t.insertRelative(parent, anchor, 0, nodes)
}

// InsertAfter places detached nodes immediately after anchor.
// If anchor has been deleted the nodes are appended to parent instead.
func (t *Tree) InsertAfter(parent, anchor NodeID, nodes ...NodeID) error {
	return t.insertRelative(parent, anchor, 1, nodes)
}

func (t *Tree) insertRelative(parent, anchor NodeID, offset int, nodes []NodeID) error {
	p := t.get(parent)
	if p == nil {
		return parentMissing(parent, "cannot insert")
	}
	if !t.Contains(anchor) {
		if anchor < 0 || int(anchor) >= len(t.nodes) {
			return dangling(anchor, "unknown anchor")
		}
		return t.insertAt(parent, len(p.children), nodes)
	}
	idx := slices.Index(p.children, anchor)
	if idx < 0 {
		return dangling(anchor, "anchor is not a child of the given parent")
	}
	return t.insertAt(parent, idx+offset, nodes)
}

func (t *Tree) insertAt(parent NodeID, idx int, nodes []NodeID) error {
	for i, id := range nodes {
		n := t.get(id)
		switch {
		case n == nil:
			return dangling(id, "cannot place a missing node")
		case id == t.root || n.parent != InvalidNodeID:
			return dangling(id, "node is already placed")
		case id == parent || t.isAncestor(id, parent):
			return dangling(id, "placement would create a cycle")
		case slices.Contains(nodes[:i], id):
			return dangling(id, "node listed twice")
		}
	}
	p := &t.nodes[parent]
	p.children = slices.Insert(p.children, idx, nodes...)
	for _, id := range nodes {
		t.nodes[id].parent = parent
	}
	return nil
}

func (t *Tree) isAncestor(ancestor, id NodeID) bool {
	for a := range t.Ancestors(id) {
		if a == ancestor {
			return true
		}
	}
	return false
}

// Detach removes id from its parent without deleting it.
// The node and its subtree may be placed again later.
func (t *Tree) Detach(id NodeID) error {
	n := t.get(id)
	if n == nil {
		return dangling(id, "cannot detach a missing node")
	}
	if n.parent == InvalidNodeID {
		return nil
	}
	p := &t.nodes[n.parent]
	p.children = slices.DeleteFunc(p.children, func(c NodeID) bool { return c == id })
	n.parent = InvalidNodeID
	return nil
}

// Delete detaches id and tombstones its whole subtree.
// Deleting a node that is already deleted is a no-op; deleting the root is an error.
func (t *Tree) Delete(id NodeID) error {
	if id < 0 || int(id) >= len(t.nodes) {
		return dangling(id, "cannot delete an unknown node")
	}
	if t.nodes[id].deleted {
		return nil
	}
	if id == t.root {
		return dangling(id, "cannot delete the root")
	}
	if err := t.Detach(id); err != nil {
		return err
	}
	t.tombstone(id)
	return nil
}

func (t *Tree) tombstone(id NodeID) {
	stack := []NodeID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[cur]
		n.deleted = true
		stack = append(stack, n.children...)
	}
}

// Replace puts the detached node replacement where id was and deletes id.
// Replacing a node that is already deleted is a no-op.
func (t *Tree) Replace(id, replacement NodeID) error {
	if id < 0 || int(id) >= len(t.nodes) {
		return dangling(id, "cannot replace an unknown node")
	}
	if t.nodes[id].deleted {
		return nil
	}
	parent, ok := t.Parent(id)
	if !ok {
		return dangling(id, "cannot replace a node without a parent")
	}
	if err := t.InsertAfter(parent, id, replacement); err != nil {
		return err
	}
	return t.Delete(id)
}

// Clone returns a deep copy of the tree.
func (t *Tree) Clone() *Tree {
	c := &Tree{root: t.root, nodes: make([]node, len(t.nodes))}
	for i, n := range t.nodes {
		n.children = slices.Clone(n.children)
		c.nodes[i] = n
	}
	return c
}

// Descendants yields id and every node below it in pre-order.
func (t *Tree) Descendants(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		if !t.Contains(id) {
			return
		}
		stack := []NodeID{id}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(cur) {
				return
			}
			children := t.nodes[cur].children
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}
		}
	}
}
