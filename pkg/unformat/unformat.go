// Package unformat scrambles the layout of a SWON document without changing
// its meaning. It exercises the formatter: formatting an unformatted tree
// must give the same result as formatting the original.
package unformat

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/goswon/pkg/cst"
	"github.com/yaklabco/goswon/pkg/format"
)

// DefaultProbability is the default chance of each mutation per gap.
const DefaultProbability = 0.2

// Options configures the mutations. Each probability applies independently
// to every eligible gap.
type Options struct {
	// Seed makes the output deterministic.
	Seed uint64

	// WeirdSpace inserts a run of spaces and tabs.
	WeirdSpace float64
	// EmptyLine inserts one or two line breaks.
	EmptyLine float64
	// LineRemoval deletes the line breaks of a gap.
	LineRemoval float64
	// WhitespaceRemoval deletes the spaces and tabs of a gap.
	WhitespaceRemoval float64

	// Logger receives debug output. Nil disables logging.
	Logger *log.Logger
}

// DefaultOptions returns options with every probability at DefaultProbability.
func DefaultOptions() Options {
	return Options{
		WeirdSpace:        DefaultProbability,
		EmptyLine:         DefaultProbability,
		LineRemoval:       DefaultProbability,
		WhitespaceRemoval: DefaultProbability,
	}
}

var weirdSpaces = []string{" ", "  ", "\t", " \t ", "    "}

// Commands computes random layout edits for tree. The tree is not modified.
func Commands(tree *cst.Tree, input []byte, opts Options) (*cst.Commands, error) {
	layout, err := format.CollectLayout(tree, input)
	if err != nil {
		return nil, fmt.Errorf("collect layout: %w", err)
	}

	cmds := cst.NewCommands(tree)
	if opts.Logger != nil {
		cmds.SetLogger(opts.Logger)
	}
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))

	var mutated int
	for i := 1; i < len(layout.Slots); i++ {
		prev, cur := &layout.Slots[i-1], &layout.Slots[i]
		if !eligible(prev, cur) {
			continue
		}
		if mutate(cmds, rng, prev, cur, opts) {
			mutated++
		}
	}

	if opts.Logger != nil {
		opts.Logger.Debug("unformat commands", "seed", opts.Seed, "gaps", mutated, "commands", cmds.Len())
	}
	return cmds, nil
}

// Unformat applies random layout edits to tree and returns the rendered
// document.
func Unformat(tree *cst.Tree, input []byte, opts Options) ([]byte, error) {
	cmds, err := Commands(tree, input, opts)
	if err != nil {
		return nil, err
	}
	if err := cmds.ApplyTo(tree); err != nil {
		return nil, fmt.Errorf("apply unformat commands: %w", err)
	}
	return tree.Render(input), nil
}

// eligible reports whether the gap before cur may change. Gaps touching a
// comment, lying inside protected content, or splitting `$` from its
// extension name are kept.
func eligible(prev, cur *format.Slot) bool {
	if prev.Kind == cst.TokDollar {
		return false
	}
	return !cur.Verbatim && !prev.IsComment() && !cur.IsComment()
}

// mutate edits the gap before cur. It returns false when nothing changed.
func mutate(cmds *cst.Commands, rng *rand.Rand, prev, cur *format.Slot, opts Options) bool {
	removeLines := chance(rng, opts.LineRemoval)
	removeSpaces := chance(rng, opts.WhitespaceRemoval)
	addLine := chance(rng, opts.EmptyLine)
	addSpace := chance(rng, opts.WeirdSpace)

	var kept, removed []cst.NodeID
	for _, g := range cur.Gap {
		drop := (g.Kind == cst.TokNewLine && removeLines) || (g.Kind == cst.TokWhitespace && removeSpaces)
		if drop {
			removed = append(removed, g.ID)
		} else {
			kept = append(kept, g.ID)
		}
	}

	var added []cst.NodeID
	if addLine {
		for range 1 + rng.IntN(2) {
			added = append(added, cmds.InsertDynamicTerminal(cst.TokNewLine, "\n"))
		}
	}
	if addSpace {
		text := weirdSpaces[rng.IntN(len(weirdSpaces))]
		added = append(added, cmds.InsertDynamicTerminal(cst.TokWhitespace, text))
	}

	if len(kept) == 0 && len(added) == 0 && len(cur.Gap) > 0 && needsSeparator(prev, cur) {
		removed = nil
	}
	if len(removed) == 0 && len(added) == 0 {
		return false
	}

	for _, id := range removed {
		cmds.DeleteNode(id)
	}
	if len(added) > 0 {
		cmds.AddNodesBefore(cur.Parent, cur.ID, added...)
	}
	return true
}

func chance(rng *rand.Rand, p float64) bool {
	return p > 0 && rng.Float64() < p
}

// needsSeparator reports whether prev and cur would lex as a single token
// when written without a gap.
func needsSeparator(prev, cur *format.Slot) bool {
	if !wordLike(prev.Kind) {
		return false
	}
	if wordLike(cur.Kind) {
		return true
	}
	switch cur.Kind {
	case cst.TokQuote, cst.TokCode, cst.TokCodeBlockDelimiter, cst.TokNamedCodeBlockBegin:
		return true
	default:
		return false
	}
}

func wordLike(kind cst.TerminalKind) bool {
	switch kind {
	case cst.TokIdent, cst.TokInteger, cst.TokTrue, cst.TokFalse, cst.TokNull, cst.TokTypedQuote, cst.TokNamedCode:
		return true
	default:
		return false
	}
}
