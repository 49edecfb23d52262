package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/goswon/internal/ui/pretty"
	"github.com/yaklabco/goswon/pkg/runner"
)

// TextReporter lists changed files and errors as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
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
		if r.opts.ListChanged && file.Changed {
			fmt.Fprintln(r.bw, r.styles.FilePath.Render(path))
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.opts.ErrorWriter, r.styles.FormatSummaryOneLine(result.Stats, r.opts.ChangedVerb))
	}
	return problems(result.Stats), nil
}
