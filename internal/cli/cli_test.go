package cli_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/yaklabco/goswon/internal/cli"
	"github.com/yaklabco/goswon/internal/configloader"
	"github.com/yaklabco/goswon/pkg/fsutil"
	"github.com/yaklabco/goswon/pkg/parser"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "swon" {
		t.Errorf("expected Use to be 'swon', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	expectedSubcommands := []string{"fmt", "unfmt", "check", "tokens", "tree", "value", "init", "version"}

	for _, name := range expectedSubcommands {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestSubcommandFlags(t *testing.T) {
	t.Parallel()

	expected := map[string][]string{
		"fmt":    {"write", "check", "diff", "backup", "indent-width", "ignore", "jobs", "format"},
		"unfmt":  {"seed", "weird-space", "empty-line", "line-removal", "whitespace-removal", "write", "diff"},
		"check":  {"ignore", "jobs", "format"},
		"tokens": {"raw"},
		"tree":   {"no-trivia", "tolerant"},
		"value":  {"format"},
		"init":   {"force", "full", "format", "output"},
	}

	cmd := cli.NewRootCommand(testInfo())
	for name, flags := range expected {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Fatalf("%s command not found: %v", name, err)
		}
		for _, flagName := range flags {
			if subCmd.Flags().Lookup(flagName) == nil {
				t.Errorf("expected flag %q to exist on %s command", flagName, name)
			}
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	expectedFlags := []string{"debug", "config", "color", "log-level"}

	for _, flagName := range expectedFlags {
		flag := cmd.PersistentFlags().Lookup(flagName)
		if flag == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"would reformat", cli.ErrWouldReformat, cli.ExitFailure},
		{"files failed", cli.ErrFilesFailed, cli.ExitInputErrors},
		{"syntax error", &parser.SyntaxError{Line: 1, Column: 1, Message: "x"}, cli.ExitInputErrors},
		{"usage", fmt.Errorf("%w: bad flag", cli.ErrUsage), cli.ExitInvalidUsage},
		{"config", errors.Join(cli.ErrConfig, errors.New("boom")), cli.ExitConfigError},
		{"validation", &configloader.ValidationError{Field: "color", Message: "bad"}, cli.ExitConfigError},
		{"not found", fmt.Errorf("%w: a.swon", fsutil.ErrNotFound), cli.ExitIOError},
		{"modified", fmt.Errorf("%w: a.swon", fsutil.ErrModified), cli.ExitIOError},
		{"other", errors.New("boom"), cli.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := cli.ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsQuiet(t *testing.T) {
	t.Parallel()

	if !cli.IsQuiet(fmt.Errorf("%w: %w", cli.ErrFilesFailed, errors.New("x"))) {
		t.Error("expected wrapped ErrFilesFailed to be quiet")
	}
	if !cli.IsQuiet(cli.ErrWouldReformat) {
		t.Error("expected ErrWouldReformat to be quiet")
	}
	if cli.IsQuiet(errors.New("boom")) {
		t.Error("expected plain error to be reported")
	}
}
