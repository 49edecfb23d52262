package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goswon/pkg/config"
	"github.com/yaklabco/goswon/pkg/parser"
	"github.com/yaklabco/goswon/pkg/reporter"
	"github.com/yaklabco/goswon/pkg/runner"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "diff", input: "diff", want: reporter.FormatDiff},
		{name: "unknown format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	assert.True(t, reporter.FormatText.IsValid())
	assert.True(t, reporter.FormatJSON.IsValid())
	assert.True(t, reporter.FormatDiff.IsValid())
	assert.False(t, reporter.Format("sarif").IsValid())
	assert.False(t, reporter.Format("").IsValid())
}

func TestNew(t *testing.T) {
	for _, format := range []reporter.Format{reporter.FormatText, reporter.FormatJSON, reporter.FormatDiff, ""} {
		rep, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, ErrorWriter: &bytes.Buffer{}, Format: format})
		require.NoError(t, err, "format %q", format)
		assert.NotNil(t, rep)
	}

	_, err := reporter.New(reporter.Options{Format: "xml"})
	require.Error(t, err)
}

// sampleResult has one clean, one changed and one failed file under /work.
func sampleResult() *runner.Result {
	syntaxErr := &parser.SyntaxError{Offset: 10, Line: 2, Column: 5, Message: `unexpected ']', expected a value`}
	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: filepath.FromSlash("/work/a.swon"), Original: []byte("k = 1\n"), Output: []byte("k = 1\n")},
			{Path: filepath.FromSlash("/work/b.swon"), Original: []byte("x = 1\nk=1\n"), Output: []byte("x = 1\nk = 1\n"), Changed: true},
			{Path: filepath.FromSlash("/work/c.swon"), Original: []byte("a = 1\nb = ]\n"), Error: syntaxErr},
			{Path: filepath.FromSlash("/other/d.swon"), Error: errors.New("permission denied")},
		},
	}
	result.Stats = runner.Stats{FilesDiscovered: 4, FilesProcessed: 2, FilesChanged: 1, FilesErrored: 2}
	return result
}

func newReporter(t *testing.T, format reporter.Format, listChanged bool) (reporter.Reporter, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var out, errOut bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer:      &out,
		ErrorWriter: &errOut,
		Format:      format,
		Color:       config.ColorNever,
		ShowSummary: true,
		ListChanged: listChanged,
		WorkingDir:  filepath.FromSlash("/work"),
	})
	require.NoError(t, err)
	return rep, &out, &errOut
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	rep, out, errOut := newReporter(t, reporter.FormatText, true)

	n, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t, "b.swon\n", out.String())
	assert.Contains(t, errOut.String(), "  c.swon:2:5  error  unexpected ']', expected a value\n")
	assert.Contains(t, errOut.String(), "        b = ]\n")
	assert.Contains(t, errOut.String(), filepath.FromSlash("/other/d.swon")+"  error  permission denied\n")
	assert.Contains(t, errOut.String(), "4 files checked, 1 file would be reformatted, 2 failed\n")
}

func TestTextReporterWithoutList(t *testing.T) {
	t.Parallel()

	rep, out, _ := newReporter(t, reporter.FormatText, false)

	_, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestDiffReporter(t *testing.T) {
	t.Parallel()

	rep, out, errOut := newReporter(t, reporter.FormatDiff, false)

	n, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	want := "--- a/b.swon\n+++ b/b.swon\n@@ -1,2 +1,2 @@\n x = 1\n-k=1\n+k = 1\n"
	assert.Equal(t, want, out.String())
	assert.Contains(t, errOut.String(), "c.swon:2:5")
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	rep, out, errOut := newReporter(t, reporter.FormatJSON, false)

	n, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Empty(t, errOut.String())

	var decoded reporter.JSONOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))

	assert.Equal(t, "1.0.0", decoded.Version)
	require.Len(t, decoded.Files, 4)
	assert.Equal(t, "a.swon", decoded.Files[0].Path)
	assert.False(t, decoded.Files[0].Changed)
	assert.True(t, decoded.Files[1].Changed)
	require.NotNil(t, decoded.Files[2].Error)
	assert.Equal(t, reporter.JSONError{Message: `unexpected ']', expected a value`, Line: 2, Column: 5}, *decoded.Files[2].Error)
	assert.Equal(t, "permission denied", decoded.Files[3].Error.Message)
	assert.Equal(t, reporter.JSONSummary{FilesChecked: 4, FilesChanged: 1, FilesErrored: 2}, decoded.Summary)
}

func TestJSONReporterNilResult(t *testing.T) {
	t.Parallel()

	rep, out, _ := newReporter(t, reporter.FormatJSON, false)

	n, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.JSONEq(t, `{"version":"1.0.0","files":[],"summary":{"filesChecked":0,"filesChanged":0,"filesWritten":0,"filesErrored":0}}`, out.String())
}
