// Package reporter writes the outcome of a formatter run: changed files,
// unified diffs, per-file errors and a summary, as styled text or JSON.
package reporter

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/yaklabco/goswon/internal/ui/pretty"
	"github.com/yaklabco/goswon/pkg/parser"
	"github.com/yaklabco/goswon/pkg/runner"
)

// Reporter formats and writes run results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of files that changed or failed.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	defaults := DefaultOptions()
	if opts.Writer == nil {
		opts.Writer = defaults.Writer
	}
	if opts.ErrorWriter == nil {
		opts.ErrorWriter = defaults.ErrorWriter
	}
	if opts.ChangedVerb == "" {
		opts.ChangedVerb = defaults.ChangedVerb
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatDiff:
		return NewDiffReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// problems counts the files a report flags.
func problems(stats runner.Stats) int {
	return stats.FilesChanged + stats.FilesErrored
}

// writeFileError prints a per-file failure, with the offending source line
// for syntax errors.
func writeFileError(w io.Writer, styles *pretty.Styles, path string, file runner.FileOutcome) {
	var syntaxErr *parser.SyntaxError
	if errors.As(file.Error, &syntaxErr) {
		fmt.Fprint(w, styles.FormatSyntaxError(path, syntaxErr, file.Original))
		return
	}
	fmt.Fprint(w, styles.FormatError(path, file.Error))
}
