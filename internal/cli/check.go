package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goswon/internal/logging"
	"github.com/yaklabco/goswon/pkg/format"
	"github.com/yaklabco/goswon/pkg/parser"
	"github.com/yaklabco/goswon/pkg/reporter"
	"github.com/yaklabco/goswon/pkg/runner"
)

// Verification failures reported by `swon check`.
var (
	// ErrRoundTrip means rendering the parsed tree did not reproduce the input.
	ErrRoundTrip = errors.New("rendering the syntax tree does not reproduce the input")

	// ErrNotIdempotent means formatting the formatted document changed it again.
	ErrNotIdempotent = errors.New("formatting is not idempotent")

	// ErrContentChanged means formatting altered more than layout.
	ErrContentChanged = errors.New("formatting changed significant tokens")
)

type checkFlags struct {
	ignore []string
	jobs   int
	format string
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Verify that SWON files parse and round-trip",
		Long: `Parse SWON documents and verify the toolchain invariants on them.

For every file, check confirms that the document parses, that rendering the
syntax tree reproduces the input byte for byte, that formatting is
idempotent, and that formatting changes nothing but layout. Files are not
modified.

Examples:
  swon check                 Check the current directory
  swon check a.swon b.swon   Check specific files`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringVar(&flags.format, "format", "text", "report format: text or json")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	reportFormat, err := reporter.ParseFormat(flags.format)
	if err != nil || reportFormat == reporter.FormatDiff {
		return fmt.Errorf("%w: invalid format %q: must be text or json", ErrUsage, flags.format)
	}

	sess, err := newSession(cmd, nil)
	if err != nil {
		return err
	}
	opts := format.Options{IndentWidth: sess.cfg.Format.IndentWidth}

	if len(args) == 1 && args[0] == stdinPath {
		input, _, err := sess.readInput(stdinPath)
		if err != nil {
			return err
		}
		if err := VerifyDocument(input, opts); err != nil {
			sess.reportError(stdinPath, input, err)
			return ErrFilesFailed
		}
		return nil
	}

	checkRunner := runner.New(func(_ context.Context, _ string, content []byte) ([]byte, error) {
		if err := VerifyDocument(content, opts); err != nil {
			return nil, err
		}
		return content, nil
	})

	result, err := checkRunner.Run(sess.ctx, runner.Options{
		Paths:        args,
		WorkingDir:   sess.workDir,
		ExcludeGlobs: append(slices.Clone(sess.cfg.Ignore), flags.ignore...),
		Jobs:         flags.jobs,
	})
	if err != nil {
		return fmt.Errorf("check run failed: %w", err)
	}

	sess.logger.Debug("check finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesFailed, result.Stats.FilesErrored,
	)

	rep, err := reporter.New(reporter.Options{
		Writer:      sess.stdout(),
		ErrorWriter: sess.stderr(),
		Format:      reportFormat,
		Color:       sess.cfg.Color,
		ShowSummary: true,
		ChangedVerb: "changed",
		WorkingDir:  sess.workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}
	if _, err := rep.Report(sess.ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if result.HasErrors() {
		return ErrFilesFailed
	}
	return nil
}

// VerifyDocument parses input and checks the lossless round trip, formatter
// idempotence, and that formatting keeps every significant token.
func VerifyDocument(input []byte, opts format.Options) error {
	tree, err := parser.Parse(input)
	if err != nil {
		return err
	}
	if !bytes.Equal(tree.Render(input), input) {
		return ErrRoundTrip
	}
	significant := tree.SignificantFingerprint(input)

	formatted, err := format.Format(tree, input, opts)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}

	reparsed, err := parser.Parse(formatted)
	if err != nil {
		return fmt.Errorf("formatted output does not parse: %v", err) //nolint:errorlint // positions refer to the formatted text
	}
	if reparsed.SignificantFingerprint(formatted) != significant {
		return ErrContentChanged
	}

	again, err := format.Format(reparsed, formatted, opts)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if !bytes.Equal(again, formatted) {
		return ErrNotIdempotent
	}
	return nil
}
