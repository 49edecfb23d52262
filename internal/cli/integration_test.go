package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goswon/internal/cli"
	"github.com/yaklabco/goswon/pkg/config"
	"github.com/yaklabco/goswon/pkg/format"
	"github.com/yaklabco/goswon/pkg/fsutil"
	"github.com/yaklabco/goswon/pkg/reporter"
	"github.com/yaklabco/goswon/pkg/semtok"
)

type cliResult struct {
	stdout string
	stderr string
	err    error
}

// runCLI executes swon with an isolated config file and colour disabled.
func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()

	cfgFile := filepath.Join(t.TempDir(), ".swon.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("format:\n  indent_width: 2\n"), 0o644))

	cmd := cli.NewRootCommand(testInfo())
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", cfgFile, "--color", "never"}, args...))

	err := cmd.Execute()
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIntegration_FmtPrintsFormatted(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "a.swon", "k=1\n")

	res := runCLI(t, "", "fmt", path)
	require.NoError(t, res.err)
	assert.Equal(t, "k = 1\n", res.stdout)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "k=1\n", string(content), "fmt without --write must not touch the file")
}

func TestIntegration_FmtStdin(t *testing.T) {
	t.Parallel()

	res := runCLI(t, "a   =  1\n\n\nb = 2\n\n", "fmt", "-")
	require.NoError(t, res.err)
	assert.Equal(t, "a = 1\nb = 2\n", res.stdout)
}

func TestIntegration_FmtIndentWidth(t *testing.T) {
	t.Parallel()

	res := runCLI(t, "@s {\nk=1\n}\n", "fmt", "--indent-width", "4", "-")
	require.NoError(t, res.err)
	assert.Equal(t, "@s {\n    k = 1\n}\n", res.stdout)
}

func TestIntegration_FmtCheck(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	clean := writeFile(t, dir, "clean.swon", "k = 1\n")
	dirty := writeFile(t, dir, "sub/dirty.swon", "k=1\n")
	writeFile(t, dir, "notes.txt", "k=1\n")

	res := runCLI(t, "", "fmt", "--check", dir)
	require.ErrorIs(t, res.err, cli.ErrWouldReformat)
	assert.Equal(t, cli.ExitFailure, cli.ExitCode(res.err))
	assert.Contains(t, res.stdout, dirty)
	assert.NotContains(t, res.stdout, clean)
	assert.Contains(t, res.stderr, "2 files checked")
	assert.Contains(t, res.stderr, "1 file would be reformatted")

	res = runCLI(t, "", "fmt", "--check", clean)
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "no changes")
}

func TestIntegration_FmtWriteWithBackup(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "a.swon", "a=[ 1 ,2 ]\n")

	res := runCLI(t, "", "fmt", "--write", "--backup", path)
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "1 file written")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a = [1, 2]\n", string(content))

	backup, err := os.ReadFile(fsutil.BackupPath(path))
	require.NoError(t, err)
	assert.Equal(t, "a=[ 1 ,2 ]\n", string(backup))
}

func TestIntegration_FmtDiff(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "a.swon", "x = 1\nk=1\n")

	res := runCLI(t, "", "fmt", "--diff", path)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "@@ -1,2 +1,2 @@")
	assert.Contains(t, res.stdout, "\n-k=1\n")
	assert.Contains(t, res.stdout, "\n+k = 1\n")
	assert.Contains(t, res.stdout, "\n x = 1\n")
}

func TestIntegration_FmtIgnore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "keep.swon", "k=1\n")
	skipped := writeFile(t, dir, "vendor/skip.swon", "k=1\n")

	res := runCLI(t, "", "fmt", "--check", "--ignore", "vendor/**", dir)
	require.ErrorIs(t, res.err, cli.ErrWouldReformat)
	assert.NotContains(t, res.stdout, skipped)
	assert.Contains(t, res.stderr, "1 file checked")
}

func TestIntegration_FmtSyntaxError(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "bad.swon", "a = 1\nb = ]\n")

	res := runCLI(t, "", "fmt", path)
	require.ErrorIs(t, res.err, cli.ErrFilesFailed)
	assert.Equal(t, cli.ExitInputErrors, cli.ExitCode(res.err))
	assert.Contains(t, res.stderr, "bad.swon:2:5")
	assert.Contains(t, res.stderr, "        b = ]\n")
	assert.Contains(t, res.stderr, "^")
}

func TestIntegration_FmtUsageErrors(t *testing.T) {
	t.Parallel()

	tests := [][]string{
		{"fmt", "--write", "--check", "."},
		{"fmt", "--backup", "."},
		{"fmt", "--write", "-"},
	}
	for _, args := range tests {
		res := runCLI(t, "", args...)
		require.ErrorIs(t, res.err, cli.ErrUsage, "args %v", args)
		assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(res.err))
	}
}

func TestIntegration_Unfmt(t *testing.T) {
	t.Parallel()

	const doc = "// settings\nname = \"demo\"\n@server {\n  port = 8080\n  hosts = [\"a\", \"b\"]\n}\n"

	t.Run("zero probabilities keep the document", func(t *testing.T) {
		t.Parallel()

		res := runCLI(t, doc, "unfmt", "--seed", "1",
			"--weird-space", "0", "--empty-line", "0", "--line-removal", "0", "--whitespace-removal", "0", "-")
		require.NoError(t, res.err)
		assert.Equal(t, doc, res.stdout)
	})

	t.Run("same seed same output", func(t *testing.T) {
		t.Parallel()

		first := runCLI(t, doc, "unfmt", "--seed", "42", "--weird-space", "0.9", "-")
		second := runCLI(t, doc, "unfmt", "--seed", "42", "--weird-space", "0.9", "-")
		require.NoError(t, first.err)
		require.NoError(t, second.err)
		assert.Equal(t, first.stdout, second.stdout)
	})

	t.Run("formatting undoes the noise", func(t *testing.T) {
		t.Parallel()

		res := runCLI(t, doc, "unfmt", "--seed", "7",
			"--weird-space", "1", "--empty-line", "1", "--line-removal", "0.5", "--whitespace-removal", "0.5", "-")
		require.NoError(t, res.err)

		want, err := format.Source([]byte(doc), format.DefaultOptions())
		require.NoError(t, err)
		got, err := format.Source([]byte(res.stdout), format.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got))
	})

	t.Run("random seed is logged", func(t *testing.T) {
		t.Parallel()

		res := runCLI(t, doc, "unfmt", "-")
		require.NoError(t, res.err)
		assert.Contains(t, res.stderr, "using random seed")
		assert.Contains(t, res.stderr, "seed=")
	})

	t.Run("explicit seed is not logged", func(t *testing.T) {
		t.Parallel()

		res := runCLI(t, doc, "unfmt", "--seed", "3", "-")
		require.NoError(t, res.err)
		assert.NotContains(t, res.stderr, "using random seed")
	})
}

func TestIntegration_UnfmtWrite(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "a.swon", "a = 1\nb = 2\n")

	res := runCLI(t, "", "unfmt", "--seed", "3", "--weird-space", "1", "--write", path)
	require.NoError(t, res.err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, "a = 1\nb = 2\n", string(content))

	formatted, err := format.Source(content, format.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "a = 1\nb = 2\n", string(formatted))
}

func TestIntegration_TokensRaw(t *testing.T) {
	t.Parallel()

	res := runCLI(t, "name = \"demo\"\n", "tokens", "--raw", "-")
	require.NoError(t, res.err)

	var decoded struct {
		Legend semtok.Legend `json:"legend"`
		Data   []uint32      `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &decoded))
	assert.Equal(t, semtok.TokenTypes, decoded.Legend.TokenTypes)
	assert.Equal(t, semtok.TokenModifiers, decoded.Legend.TokenModifiers)
	require.NotEmpty(t, decoded.Data)
	assert.Zero(t, len(decoded.Data)%5)
	// First token: the key on line 0, column 0, four units long.
	assert.Equal(t, []uint32{0, 0, 4, uint32(semtok.TypeProperty)}, decoded.Data[:4])
}

func TestIntegration_TokensTable(t *testing.T) {
	t.Parallel()

	res := runCLI(t, "name = 1\n", "tokens", "-")
	require.NoError(t, res.err)

	lines := strings.Split(strings.TrimSuffix(res.stdout, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.True(t, strings.HasPrefix(lines[0], "LINE"))
	assert.Contains(t, lines[2], "property")
	assert.True(t, strings.HasSuffix(lines[2], `"name"`), "row %q should end with the quoted token text", lines[2])
}

func TestIntegration_Tree(t *testing.T) {
	t.Parallel()

	res := runCLI(t, "a = 1\n", "tree", "--no-trivia", "-")
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.stdout, "Root\n"))
	assert.Contains(t, res.stdout, `Ident [0..1] "a"`)
	assert.NotContains(t, res.stdout, "Whitespace")

	res = runCLI(t, "a = 1\nb ?? junk\n", "tree", "-")
	require.ErrorIs(t, res.err, cli.ErrFilesFailed)

	res = runCLI(t, "a = 1\nb ?? junk\n", "tree", "--tolerant", "-")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "recovered")
}

func TestIntegration_Value(t *testing.T) {
	t.Parallel()

	res := runCLI(t, "b = 1\na = [1, 2]\n", "value", "-")
	require.NoError(t, res.err)
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": [\n    1,\n    2\n  ]\n}\n", res.stdout)

	res = runCLI(t, "z = 1\nb = \"x\"\n", "value", "--format", "yaml", "-")
	require.NoError(t, res.err)
	assert.Equal(t, "z: 1\nb: x\n", res.stdout)

	res = runCLI(t, "z = 1\n", "value", "--format", "xml", "-")
	require.ErrorIs(t, res.err, cli.ErrUsage)
}

func TestIntegration_ValueFormatFromConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "swon.yml", "value_format: yaml\n")
	input := writeFile(t, dir, "a.swon", "z = 1\n")

	cmd := cli.NewRootCommand(testInfo())
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgFile, "value", input})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "z: 1\n", stdout.String())
}

func TestIntegration_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfgFile := writeFile(t, t.TempDir(), "swon.yml", "unformat:\n  weird_space: 2\n")

	cmd := cli.NewRootCommand(testInfo())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("k = 1\n"))
	cmd.SetArgs([]string{"--config", cfgFile, "fmt", "-"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
}

func TestIntegration_Check(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.swon", "// c\nk=1\n@s {\nx = [1,2]\n}\n")
	writeFile(t, dir, "b.swon", "t:   text  \ncode = ```go\nx := 1\n```\n")

	res := runCLI(t, "", "check", dir)
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "2 files checked")

	bad := writeFile(t, dir, "c.swon", "k = \n")
	res = runCLI(t, "", "check", bad)
	require.ErrorIs(t, res.err, cli.ErrFilesFailed)
	assert.Contains(t, res.stderr, "c.swon:")
}

func TestIntegration_FmtCheckJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "clean.swon", "k = 1\n")
	dirty := writeFile(t, dir, "dirty.swon", "k=1\n")

	res := runCLI(t, "", "fmt", "--check", "--format", "json", dir)
	require.ErrorIs(t, res.err, cli.ErrWouldReformat)
	assert.Empty(t, res.stderr)

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
	require.Len(t, out.Files, 2)
	assert.Equal(t, reporter.JSONSummary{FilesChecked: 2, FilesChanged: 1}, out.Summary)
	for _, file := range out.Files {
		assert.Equal(t, file.Path == dirty, file.Changed, file.Path)
	}
}

func TestIntegration_CheckJSON(t *testing.T) {
	t.Parallel()

	bad := writeFile(t, t.TempDir(), "bad.swon", "a = 1\nb = ]\n")

	res := runCLI(t, "", "check", "--format", "json", bad)
	require.ErrorIs(t, res.err, cli.ErrFilesFailed)

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
	require.Len(t, out.Files, 1)
	require.NotNil(t, out.Files[0].Error)
	assert.Equal(t, 2, out.Files[0].Error.Line)
	assert.Equal(t, 5, out.Files[0].Error.Column)
	assert.Equal(t, 1, out.Summary.FilesErrored)
}

func TestIntegration_ReportFormatUsageErrors(t *testing.T) {
	t.Parallel()

	tests := [][]string{
		{"fmt", "--check", "--format", "xml", "."},
		{"fmt", "--diff", "--format", "json", "."},
		{"check", "--format", "diff", "."},
	}
	for _, args := range tests {
		res := runCLI(t, "", args...)
		require.ErrorIs(t, res.err, cli.ErrUsage, "args %v", args)
	}
}

func TestVerifyDocument(t *testing.T) {
	t.Parallel()

	docs := []string{
		"",
		"k = 1",
		"a   =  1\n\n\nb = 2\n\n",
		"// head\nk = 1   // tail\n@s\nj=2\n",
		"a {b {c = 1}}",
		"s = \"a\"\\\"b\"\n",
		"$ext=1\n",
	}
	for _, doc := range docs {
		assert.NoError(t, cli.VerifyDocument([]byte(doc), format.DefaultOptions()), "document %q", doc)
	}
	assert.Error(t, cli.VerifyDocument([]byte("k = ]"), format.DefaultOptions()))
}

func TestIntegration_Init(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, ".swon.yml")

	res := runCLI(t, "", "init", "--full", "--output", out)
	require.NoError(t, res.err)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	cfg, err := config.FromYAML(content)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultIndentWidth, cfg.Format.IndentWidth)

	res = runCLI(t, "", "init", "--output", out)
	require.ErrorIs(t, res.err, cli.ErrUsage)

	res = runCLI(t, "", "init", "--force", "--output", out)
	require.NoError(t, res.err)

	jsonOut := filepath.Join(dir, "swon.json")
	res = runCLI(t, "", "init", "--format", "json", "--output", jsonOut)
	require.NoError(t, res.err)
	jsonContent, err := os.ReadFile(jsonOut)
	require.NoError(t, err)
	assert.True(t, json.Valid(jsonContent))

	res = runCLI(t, "", "init", "--format", "toml", "--output", filepath.Join(dir, "x"))
	require.ErrorIs(t, res.err, cli.ErrUsage)
}

func TestIntegration_Version(t *testing.T) {
	t.Parallel()

	res := runCLI(t, "", "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "test-version")
	assert.Contains(t, res.stdout, "test-commit")
}

func TestIntegration_Help(t *testing.T) {
	t.Parallel()

	res := runCLI(t, "", "fmt", "--help")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Usage:")
	assert.Contains(t, res.stdout, "--write")
	assert.Contains(t, res.stdout, "Global Flags:")
}
