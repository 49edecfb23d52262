package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/goswon/internal/ui/pretty"
	"github.com/yaklabco/goswon/pkg/runner"
	"github.com/yaklabco/goswon/pkg/textdiff"
)

// DiffReporter writes a unified diff for every changed file.
type DiffReporter struct {
	opts         Options
	styles       *pretty.Styles
	colorEnabled bool
	bw           *bufio.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &DiffReporter{
		opts:         opts,
		styles:       pretty.NewStyles(colorEnabled),
		colorEnabled: colorEnabled,
		bw:           bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	for _, file := range result.Files {
		path := r.opts.displayPath(file.Path)
		if file.Error != nil {
			writeFileError(r.opts.ErrorWriter, r.styles, path, file)
			continue
		}
		if !file.Changed {
			continue
		}
		r.writeDiff(textdiff.Compute(path, file.Original, file.Output))
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.opts.ErrorWriter, r.styles.FormatSummaryOneLine(result.Stats, r.opts.ChangedVerb))
	}
	return problems(result.Stats), nil
}

// writeDiff writes one file's diff. Without colour the output is the plain
// unified diff, so it stays usable with patch.
func (r *DiffReporter) writeDiff(diff *textdiff.Diff) {
	if !diff.HasChanges() {
		return
	}
	if r.colorEnabled {
		fmt.Fprint(r.bw, r.styles.FormatDiff(diff))
		return
	}
	fmt.Fprint(r.bw, diff.String())
}
