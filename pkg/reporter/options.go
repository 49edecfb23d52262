package reporter

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/goswon/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer receives the report itself: changed paths, diffs or JSON.
	Writer io.Writer

	// ErrorWriter receives per-file errors and the summary line of the
	// text and diff formats.
	ErrorWriter io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	Color config.ColorMode

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// ListChanged prints the path of every changed file (text format).
	ListChanged bool

	// ChangedVerb describes a changed file in the summary,
	// e.g. "would be reformatted".
	ChangedVerb string

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Format:      FormatText,
		Color:       config.ColorAuto,
		ShowSummary: true,
		ChangedVerb: "would be reformatted",
	}
}

// displayPath returns path relative to the working directory when it lies
// inside it.
func (o Options) displayPath(path string) string {
	if o.WorkingDir == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(o.WorkingDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
