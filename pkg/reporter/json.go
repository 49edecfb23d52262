package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yaklabco/goswon/pkg/parser"
	"github.com/yaklabco/goswon/pkg/runner"
)

// jsonVersion is the version of the JSON report layout.
const jsonVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's outcome.
type JSONFileResult struct {
	Path    string     `json:"path"`
	Changed bool       `json:"changed"`
	Written bool       `json:"written,omitempty"`
	Error   *JSONError `json:"error,omitempty"`
}

// JSONError describes a failed file. Line and Column are set for syntax
// errors and are 1-based.
type JSONError struct {
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked int `json:"filesChecked"`
	FilesChanged int `json:"filesChanged"`
	FilesWritten int `json:"filesWritten"`
	FilesErrored int `json:"filesErrored"`
}

// JSONReporter formats results as a single JSON document.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.FilesChanged + output.Summary.FilesErrored, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonVersion,
		Files:   make([]JSONFileResult, 0),
	}
	if result == nil {
		return output
	}

	output.Files = make([]JSONFileResult, 0, len(result.Files))
	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:    r.opts.displayPath(file.Path),
			Changed: file.Changed,
			Written: file.Written,
		}
		if file.Error != nil {
			fileResult.Error = newJSONError(file.Error)
		}
		output.Files = append(output.Files, fileResult)
	}

	output.Summary = JSONSummary{
		FilesChecked: result.Stats.FilesProcessed + result.Stats.FilesErrored,
		FilesChanged: result.Stats.FilesChanged,
		FilesWritten: result.Stats.FilesWritten,
		FilesErrored: result.Stats.FilesErrored,
	}
	return output
}

func newJSONError(err error) *JSONError {
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &JSONError{Message: syntaxErr.Message, Line: syntaxErr.Line, Column: syntaxErr.Column}
	}
	return &JSONError{Message: err.Error()}
}
