package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/goswon/pkg/runner"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

func files(n int) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, wordFile)
	}
	return fmt.Sprintf("%d %s", n, wordFiles)
}

// FormatSummaryOneLine formats run statistics as a single line.
// changedVerb describes a changed file, e.g. "would be reformatted".
// Example: "3 files checked, 1 file would be reformatted, 1 failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats, changedVerb string) string {
	parts := []string{files(stats.FilesProcessed+stats.FilesErrored) + " checked"}

	switch {
	case stats.FilesWritten > 0:
		parts = append(parts, s.Success.Render(files(stats.FilesWritten)+" written"))
	case stats.FilesChanged > 0:
		parts = append(parts, s.Failure.Render(files(stats.FilesChanged)+" "+changedVerb))
	default:
		parts = append(parts, s.Success.Render("no changes"))
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}
	return strings.Join(parts, ", ") + "\n"
}
