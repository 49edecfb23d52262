package pretty_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goswon/internal/ui/pretty"
	"github.com/yaklabco/goswon/pkg/parser"
	"github.com/yaklabco/goswon/pkg/runner"
	"github.com/yaklabco/goswon/pkg/semtok"
	"github.com/yaklabco/goswon/pkg/textdiff"
)

func TestFormatTree(t *testing.T) {
	t.Parallel()

	input := []byte("a = 1\n")
	tree, err := parser.Parse(input)
	require.NoError(t, err)

	styles := pretty.NewStyles(false)
	out := styles.FormatTree(tree, input, pretty.TreeOptions{})

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Equal(t, "Root", lines[0])
	assert.Equal(t, "  Swon", lines[1])
	assert.Contains(t, out, `Ident [0..1] "a"`)
	assert.Contains(t, out, `Whitespace [1..2] " "`)
	assert.Contains(t, out, `Integer [4..5] "1"`)

	hidden := styles.FormatTree(tree, input, pretty.TreeOptions{HideTrivia: true})
	assert.NotContains(t, hidden, "Whitespace")
	assert.NotContains(t, hidden, "NewLine")
	assert.Contains(t, hidden, `Bind [2..3] "="`)
}

func TestFormatTreeMarksRecovery(t *testing.T) {
	t.Parallel()

	input := []byte("a = 1\nb ?? junk\n")
	tree, err := parser.ParseWithOptions(input, parser.Options{Tolerant: true})
	require.NoError(t, err)

	out := pretty.NewStyles(false).FormatTree(tree, input, pretty.TreeOptions{})
	assert.Contains(t, out, "recovered")
}

func TestFormatTreeTruncatesText(t *testing.T) {
	t.Parallel()

	input := []byte(`k = "` + strings.Repeat("x", 200) + `"` + "\n")
	tree, err := parser.Parse(input)
	require.NoError(t, err)

	out := pretty.NewStyles(false).FormatTree(tree, input, pretty.TreeOptions{Width: 60})
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 60, line)
	}
	assert.Contains(t, out, "...")
}

func TestFormatTokenTable(t *testing.T) {
	t.Parallel()

	rows := []pretty.TokenRow{
		{Token: semtok.Token{Line: 0, Column: 0, Length: 1, Type: semtok.TypeProperty, Modifiers: semtok.ModDeclaration}, Text: "a"},
		{Token: semtok.Token{Line: 0, Column: 4, Length: 1, Type: semtok.TypeNumber}, Text: "1"},
	}

	out := pretty.NewStyles(false).FormatTokenTable(rows, 80)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "LINE  COL  LEN  TYPE      MODIFIERS    TEXT", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "===="))
	assert.Equal(t, `1     1    1    property  declaration  "a"`, lines[2])
	assert.Equal(t, `1     5    1    number    -            "1"`, lines[3])

	assert.Empty(t, pretty.NewStyles(false).FormatTokenTable(nil, 80))
}

func TestFormatDiff(t *testing.T) {
	t.Parallel()

	diff := textdiff.Compute("f.swon", []byte("a=1\n"), []byte("a = 1\n"))
	out := pretty.NewStyles(false).FormatDiff(diff)
	assert.Equal(t, diff.String(), out)
	assert.Empty(t, pretty.NewStyles(false).FormatDiff(nil))
}

func TestFormatSyntaxError(t *testing.T) {
	t.Parallel()

	input := []byte("a = 1\nb = ]\n")
	_, err := parser.Parse(input)
	var syntaxErr *parser.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)

	out := pretty.NewStyles(false).FormatSyntaxError("f.swon", syntaxErr, input)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "  f.swon:2:5  error  "+syntaxErr.Message, lines[0])
	assert.Equal(t, "        b = ]", lines[1])
	assert.Equal(t, strings.Repeat(" ", 8+syntaxErr.Column-1)+"^", lines[2])
}

func TestFormatError(t *testing.T) {
	t.Parallel()

	out := pretty.NewStyles(false).FormatError("f.swon", errors.New("boom"))
	assert.Equal(t, "  f.swon  error  boom\n", out)
}

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	tests := []struct {
		name  string
		stats runner.Stats
		want  string
	}{
		{"clean", runner.Stats{FilesProcessed: 3}, "3 files checked, no changes\n"},
		{"changed", runner.Stats{FilesProcessed: 2, FilesChanged: 1}, "2 files checked, 1 file would be reformatted\n"},
		{"written", runner.Stats{FilesProcessed: 1, FilesChanged: 1, FilesWritten: 1}, "1 file checked, 1 file written\n"},
		{"failed", runner.Stats{FilesProcessed: 1, FilesErrored: 1}, "2 files checked, no changes, 1 failed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.stats, "would be reformatted"))
		})
	}
}
