package cst

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// ErrForeignTree is returned when a command buffer is applied to a tree
// other than the one it was recorded against.
var ErrForeignTree = errors.New("command buffer belongs to a different tree")

// CommandKind identifies a recorded edit.
type CommandKind uint8

const (
	CmdInsertDynamicTerminal CommandKind = iota
	CmdAddNodesBefore
	CmdAddNodesAfter
	CmdDeleteNode
	CmdReplaceNode
)

func (k CommandKind) String() string {
	switch k {
	case CmdInsertDynamicTerminal:
		return "InsertDynamicTerminal"
	case CmdAddNodesBefore:
		return "AddNodesBefore"
	case CmdAddNodesAfter:
		return "AddNodesAfter"
	case CmdDeleteNode:
		return "DeleteNode"
	case CmdReplaceNode:
		return "ReplaceNode"
	default:
		return fmt.Sprintf("CommandKind(%d)", uint8(k))
	}
}

// Command is one recorded edit. Which fields are meaningful depends on Kind.
type Command struct {
	Kind CommandKind

	// Node is the inserted terminal, the deleted node or the replaced node.
	Node NodeID

	// Parent and Anchor locate an insertion.
	Parent NodeID
	Anchor NodeID

	// Nodes are the detached nodes an insertion places.
	Nodes []NodeID

	// Replacement takes the place of Node in CmdReplaceNode.
	Replacement NodeID
}

// Commands records structural edits against a tree while it is being walked.
//
// Recording never changes what the walk sees: new terminals are allocated
// detached, and every placement or removal waits for ApplyTo. Ids are
// resolved when the commands are applied, in the order they were recorded.
type Commands struct {
	tree     *Tree
	commands []Command
	logger   *log.Logger
}

// NewCommands returns an empty buffer for t.
func NewCommands(t *Tree) *Commands {
	return &Commands{tree: t}
}

// SetLogger enables debug logging of applied commands.
func (c *Commands) SetLogger(logger *log.Logger) {
	c.logger = logger
}

// Len returns the number of recorded commands.
func (c *Commands) Len() int {
	return len(c.commands)
}

// IsEmpty returns true if nothing was recorded.
func (c *Commands) IsEmpty() bool {
	return len(c.commands) == 0
}

// Commands returns the recorded commands in order.
func (c *Commands) Commands() []Command {
	return c.commands
}

// InsertDynamicTerminal allocates a detached terminal with synthesized text and
// returns its id for use in a later AddNodesBefore or AddNodesAfter.
func (c *Commands) InsertDynamicTerminal(kind TerminalKind, text string) NodeID {
	id := c.tree.AddDetached(NewDynamicTerminalData(kind, text))
	c.commands = append(c.commands, Command{Kind: CmdInsertDynamicTerminal, Node: id})
	return id
}

// AddNodesBefore places nodes immediately before anchor under parent.
// If anchor has been deleted by the time this applies, the nodes are appended.
func (c *Commands) AddNodesBefore(parent, anchor NodeID, nodes ...NodeID) {
	c.commands = append(c.commands, Command{Kind: CmdAddNodesBefore, Parent: parent, Anchor: anchor, Nodes: nodes})
}

// AddNodesAfter places nodes immediately after anchor under parent.
// If anchor has been deleted by the time this applies, the nodes are appended.
func (c *Commands) AddNodesAfter(parent, anchor NodeID, nodes ...NodeID) {
	c.commands = append(c.commands, Command{Kind: CmdAddNodesAfter, Parent: parent, Anchor: anchor, Nodes: nodes})
}

// DeleteNode removes id and its subtree. Deleting a node that an earlier
// command already removed is a no-op.
func (c *Commands) DeleteNode(id NodeID) {
	c.commands = append(c.commands, Command{Kind: CmdDeleteNode, Node: id})
}

// ReplaceNode puts the detached node replacement where id is.
func (c *Commands) ReplaceNode(id, replacement NodeID) {
	c.commands = append(c.commands, Command{Kind: CmdReplaceNode, Node: id, Replacement: replacement})
}

// ApplyTo carries out the recorded commands on t, which must be the tree the
// buffer was created for. Either every command applies or t is left as it
// was and the first failure is returned as an *ApplyError.
func (c *Commands) ApplyTo(t *Tree) error {
	if t != c.tree {
		return ErrForeignTree
	}
	if len(c.commands) == 0 {
		return nil
	}

	work := t.Clone()
	for idx, cmd := range c.commands {
		if err := cmd.apply(work); err != nil {
			var applyErr *ApplyError
			if errors.As(err, &applyErr) {
				applyErr.Command = idx
			}
			return err
		}
	}
	*t = *work

	if c.logger != nil {
		c.logger.Debug("applied commands", "commands", len(c.commands), "nodes", t.Len())
	}
	return nil
}

func (cmd Command) apply(t *Tree) error {
	switch cmd.Kind {
	case CmdInsertDynamicTerminal:
		// Allocated at record time.
		return nil
	case CmdAddNodesBefore:
		return t.InsertBefore(cmd.Parent, cmd.Anchor, cmd.Nodes...)
	case CmdAddNodesAfter:
		return t.InsertAfter(cmd.Parent, cmd.Anchor, cmd.Nodes...)
	case CmdDeleteNode:
		return t.Delete(cmd.Node)
	case CmdReplaceNode:
		return t.Replace(cmd.Node, cmd.Replacement)
	default:
		return fmt.Errorf("unknown command %s", cmd.Kind)
	}
}
