package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/goswon/pkg/textdiff"
)

// FormatDiff renders a unified diff with per-line colors.
func (s *Styles) FormatDiff(diff *textdiff.Diff) string {
	if !diff.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(diff.Path, "/")

	var builder strings.Builder
	builder.WriteString(s.DiffHeader.Render("--- a/"+path) + "\n")
	builder.WriteString(s.DiffHeader.Render("+++ b/"+path) + "\n")
	for _, hunk := range diff.Hunks {
		builder.WriteString(s.DiffHunk.Render(fmt.Sprintf("@@ -%d,%d +%d,%d @@",
			hunk.OriginalStart, hunk.OriginalCount, hunk.ModifiedStart, hunk.ModifiedCount)))
		builder.WriteByte('\n')
		for _, line := range hunk.Lines {
			style := s.DiffContext
			switch line.Kind {
			case textdiff.Add:
				style = s.DiffAdd
			case textdiff.Remove:
				style = s.DiffRemove
			}
			builder.WriteString(style.Render(textdiff.Prefix(line.Kind) + line.Content))
			builder.WriteByte('\n')
		}
	}
	return builder.String()
}
