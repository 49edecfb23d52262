package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goswon/internal/logging"
	"github.com/yaklabco/goswon/pkg/config"
	"github.com/yaklabco/goswon/pkg/format"
	"github.com/yaklabco/goswon/pkg/reporter"
	"github.com/yaklabco/goswon/pkg/runner"
	"github.com/yaklabco/goswon/pkg/textdiff"
)

type fmtFlags struct {
	write       bool
	check       bool
	diff        bool
	backup      bool
	indentWidth int
	ignore      []string
	jobs        int
	format      string
}

func newFmtCommand() *cobra.Command {
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Format SWON files",
		Long: `Reformat SWON documents to the canonical layout.

Only whitespace and line breaks change: comments, keys and values are kept
byte for byte. By default the formatted documents are printed to stdout.
Directories are searched recursively for .swon files; "-" reads stdin.

Examples:
  swon fmt config.swon             Print the formatted document
  swon fmt --write .               Rewrite every file in place
  swon fmt --check .               Exit 1 if any file is not formatted
  swon fmt --diff docs/            Show what would change
  cat a.swon | swon fmt -          Format stdin`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "write the result back to the source files")
	cmd.Flags().BoolVar(&flags.check, "check", false, "report unformatted files and exit non-zero")
	cmd.Flags().BoolVarP(&flags.diff, "diff", "d", false, "print a unified diff instead of the documents")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep a .swon.bak copy of each rewritten file")
	cmd.Flags().IntVar(&flags.indentWidth, "indent-width", 0, "spaces per section block level")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringVar(&flags.format, "format", "text", "report format for --check and --write: text or json")

	return cmd
}

func runFmt(cmd *cobra.Command, args []string, flags *fmtFlags) error {
	if flags.write && flags.check {
		return fmt.Errorf("%w: --write and --check are mutually exclusive", ErrUsage)
	}
	if flags.backup && !flags.write {
		return fmt.Errorf("%w: --backup requires --write", ErrUsage)
	}
	reportFormat, err := reporter.ParseFormat(flags.format)
	if err != nil || reportFormat == reporter.FormatDiff {
		return fmt.Errorf("%w: invalid format %q: must be text or json", ErrUsage, flags.format)
	}
	if flags.diff {
		if reportFormat != reporter.FormatText {
			return fmt.Errorf("%w: --diff cannot be combined with --format %s", ErrUsage, reportFormat)
		}
		reportFormat = reporter.FormatDiff
	}

	cli := &config.Config{}
	if cmd.Flags().Changed("indent-width") {
		cli.Format.IndentWidth = flags.indentWidth
	}
	sess, err := newSession(cmd, cli)
	if err != nil {
		return err
	}

	opts := format.Options{
		IndentWidth: sess.cfg.Format.IndentWidth,
		Logger:      sess.logger,
	}

	if len(args) == 1 && args[0] == stdinPath {
		if flags.write {
			return fmt.Errorf("%w: cannot --write standard input", ErrUsage)
		}
		return fmtStdin(sess, opts, flags)
	}

	fmtRunner := runner.New(func(_ context.Context, _ string, content []byte) ([]byte, error) {
		return format.Source(content, opts)
	})
	fmtRunner.Write = flags.write
	fmtRunner.Backup = flags.backup

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   sess.workDir,
		ExcludeGlobs: append(slices.Clone(sess.cfg.Ignore), flags.ignore...),
		Jobs:         flags.jobs,
	}
	sess.logger.Debug("starting format run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
	)

	result, err := fmtRunner.Run(sess.ctx, runOpts)
	if err != nil {
		return fmt.Errorf("format run failed: %w", err)
	}

	sess.logger.Debug("format run finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesChanged, result.Stats.FilesChanged,
		logging.FieldFilesFailed, result.Stats.FilesErrored,
	)

	if !flags.write && !flags.check && !flags.diff {
		for _, outcome := range result.Files {
			if outcome.Error != nil {
				sess.reportError(outcome.Path, outcome.Original, outcome.Error)
				continue
			}
			_, _ = sess.stdout().Write(outcome.Output)
		}
		return fmtExitError(result, false)
	}

	verb := "would be reformatted"
	if flags.write {
		verb = "reformatted"
	}
	rep, err := reporter.New(reporter.Options{
		Writer:      sess.stdout(),
		ErrorWriter: sess.stderr(),
		Format:      reportFormat,
		Color:       sess.cfg.Color,
		ShowSummary: true,
		ListChanged: flags.check,
		ChangedVerb: verb,
		WorkingDir:  sess.workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}
	if _, err := rep.Report(sess.ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	return fmtExitError(result, flags.check)
}

func fmtStdin(sess *session, opts format.Options, flags *fmtFlags) error {
	input, _, err := sess.readInput(stdinPath)
	if err != nil {
		return err
	}
	output, err := format.Source(input, opts)
	if err != nil {
		sess.reportError(stdinPath, input, err)
		return errors.Join(ErrFilesFailed, err)
	}

	switch {
	case flags.diff:
		sess.printDiff(stdinPath, input, output)
	case flags.check:
		if string(output) != string(input) {
			fmt.Fprintln(sess.stdout(), stdinName)
			return ErrWouldReformat
		}
	default:
		_, _ = sess.stdout().Write(output)
	}
	return nil
}

// fmtExitError turns a run result into the command's error.
func fmtExitError(result *runner.Result, check bool) error {
	switch {
	case result.HasErrors():
		return ErrFilesFailed
	case check && result.HasChanges():
		return ErrWouldReformat
	default:
		return nil
	}
}

// printDiff writes the unified diff between original and modified, if any.
// Coloured output goes through the diff styles; plain output is the diff
// text itself so it can be applied with patch.
func (s *session) printDiff(path string, original, modified []byte) {
	diff := textdiff.Compute(s.displayPath(path), original, modified)
	if !diff.HasChanges() {
		return
	}
	if s.color {
		fmt.Fprint(s.stdout(), s.styles.FormatDiff(diff))
		return
	}
	fmt.Fprint(s.stdout(), diff.String())
}
