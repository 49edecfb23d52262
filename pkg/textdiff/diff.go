// Package textdiff renders line-based unified diffs, used by `swon fmt --diff`
// and `swon unfmt --diff` to show what a rewrite would change.
package textdiff

import (
	"fmt"
	"strings"
)

// LineKind indicates the type of diff line.
type LineKind int

const (
	// Context is an unchanged line.
	Context LineKind = iota

	// Add is a line only in the modified content.
	Add

	// Remove is a line only in the original content.
	Remove
)

// Line is a single line in a hunk, without its diff prefix.
type Line struct {
	Kind    LineKind
	Content string
}

// Hunk is a run of changes with surrounding context. Starts are 1-based.
type Hunk struct {
	OriginalStart int
	OriginalCount int
	ModifiedStart int
	ModifiedCount int
	Lines         []Line
}

// Diff is a unified diff between two versions of a file.
type Diff struct {
	Path      string
	Hunks     []Hunk
	Additions int
	Deletions int
}

// DefaultContext is the number of unchanged lines kept around each change.
const DefaultContext = 3

// Compute returns the diff between original and modified, or nil if they
// have the same lines.
func Compute(path string, original, modified []byte) *Diff {
	return ComputeContext(path, original, modified, DefaultContext)
}

// ComputeContext is Compute with an explicit context size.
func ComputeContext(path string, original, modified []byte, context int) *Diff {
	ops := diffOps(splitLines(original), splitLines(modified))

	diff := &Diff{Path: path}
	for _, op := range ops {
		switch op.kind {
		case Add:
			diff.Additions++
		case Remove:
			diff.Deletions++
		}
	}
	if diff.Additions == 0 && diff.Deletions == 0 {
		return nil
	}

	diff.Hunks = group(ops, context)
	return diff
}

// String renders the diff in unified format with ---/+++ headers.
func (d *Diff) String() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- a/%s\n", path)
	fmt.Fprintf(&builder, "+++ b/%s\n", path)
	for _, hunk := range d.Hunks {
		fmt.Fprintf(&builder, "@@ -%d,%d +%d,%d @@\n",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)
		for _, line := range hunk.Lines {
			builder.WriteString(Prefix(line.Kind))
			builder.WriteString(line.Content)
			builder.WriteByte('\n')
		}
	}
	return builder.String()
}

// Prefix returns the unified diff marker for kind.
func Prefix(kind LineKind) string {
	switch kind {
	case Add:
		return "+"
	case Remove:
		return "-"
	default:
		return " "
	}
}

// HasChanges returns true if the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// splitLines splits content into lines, dropping the final empty line after
// a trailing newline.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

type op struct {
	kind    LineKind
	content string
	orig    int // 0-based line in original, valid for Context and Remove
	mod     int // 0-based line in modified, valid for Context and Add
}

// diffOps walks a longest-common-subsequence table to produce an edit script
// with removals ordered before additions inside each change.
func diffOps(orig, mod []string) []op {
	n, m := len(orig), len(mod)

	// lcs[i][j] is the LCS length of orig[i:] and mod[j:].
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if orig[i] == mod[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	ops := make([]op, 0, max(n, m))
	i, j := 0, 0
	for i < n || j < m {
		switch {
		case i < n && j < m && orig[i] == mod[j]:
			ops = append(ops, op{Context, orig[i], i, j})
			i++
			j++
		case j == m || (i < n && lcs[i+1][j] >= lcs[i][j+1]):
			ops = append(ops, op{Remove, orig[i], i, j})
			i++
		default:
			ops = append(ops, op{Add, mod[j], i, j})
			j++
		}
	}
	return ops
}

// group splits ops into hunks, merging changes separated by at most
// 2*context unchanged lines.
func group(ops []op, context int) []Hunk {
	var hunks []Hunk

	for start := 0; start < len(ops); {
		if ops[start].kind == Context {
			start++
			continue
		}

		end := start
		for end < len(ops) {
			if ops[end].kind != Context {
				end++
				continue
			}
			run := end
			for run < len(ops) && ops[run].kind == Context {
				run++
			}
			if run == len(ops) || run-end > 2*context {
				break
			}
			end = run
		}

		lo := max(start-context, 0)
		hi := min(end+context, len(ops))
		hunks = append(hunks, buildHunk(ops[lo:hi]))
		start = hi
	}
	return hunks
}

func buildHunk(ops []op) Hunk {
	hunk := Hunk{
		OriginalStart: ops[0].orig + 1,
		ModifiedStart: ops[0].mod + 1,
	}
	for _, o := range ops {
		hunk.Lines = append(hunk.Lines, Line{Kind: o.kind, Content: o.content})
		switch o.kind {
		case Context:
			hunk.OriginalCount++
			hunk.ModifiedCount++
		case Remove:
			hunk.OriginalCount++
		case Add:
			hunk.ModifiedCount++
		}
	}
	// An empty side starts at the line before, as in GNU diff.
	if hunk.OriginalCount == 0 {
		hunk.OriginalStart--
	}
	if hunk.ModifiedCount == 0 {
		hunk.ModifiedStart--
	}
	return hunk
}
