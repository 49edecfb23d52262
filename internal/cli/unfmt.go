package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goswon/internal/logging"
	"github.com/yaklabco/goswon/pkg/config"
	"github.com/yaklabco/goswon/pkg/fsutil"
	"github.com/yaklabco/goswon/pkg/parser"
	"github.com/yaklabco/goswon/pkg/unformat"
)

type unfmtFlags struct {
	seed              uint64
	weirdSpace        float64
	emptyLine         float64
	lineRemoval       float64
	whitespaceRemoval float64
	write             bool
	diff              bool
}

func newUnfmtCommand() *cobra.Command {
	flags := &unfmtFlags{}

	cmd := &cobra.Command{
		Use:   "unfmt <file>",
		Short: "Scramble the layout of a SWON file",
		Long: `Apply random layout mutations to a SWON document.

Spaces, tabs and line breaks between tokens are inserted or removed at
random while the document keeps its meaning; comments and string contents
are never touched. Useful for producing formatter test inputs. The same
--seed always yields the same output; without one a random seed is chosen
and logged.

Examples:
  swon unfmt config.swon                   Print a scrambled document
  swon unfmt --seed 7 config.swon          Reproducible output
  swon unfmt --line-removal 1 config.swon  Join as many lines as possible`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnfmt(cmd, args[0], flags)
		},
	}

	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "random seed")
	cmd.Flags().Float64Var(&flags.weirdSpace, "weird-space", config.DefaultProbability,
		"chance of inserting a run of spaces and tabs")
	cmd.Flags().Float64Var(&flags.emptyLine, "empty-line", config.DefaultProbability,
		"chance of inserting blank lines")
	cmd.Flags().Float64Var(&flags.lineRemoval, "line-removal", config.DefaultProbability,
		"chance of removing line breaks")
	cmd.Flags().Float64Var(&flags.whitespaceRemoval, "whitespace-removal", config.DefaultProbability,
		"chance of removing spaces and tabs")
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "write the result back to the file")
	cmd.Flags().BoolVarP(&flags.diff, "diff", "d", false, "print a unified diff instead of the document")

	return cmd
}

func runUnfmt(cmd *cobra.Command, path string, flags *unfmtFlags) error {
	if flags.write && path == stdinPath {
		return fmt.Errorf("%w: cannot --write standard input", ErrUsage)
	}

	cli := &config.Config{}
	changed := cmd.Flags().Changed
	if changed("seed") {
		cli.Unformat.Seed = config.Ptr(flags.seed)
	}
	if changed("weird-space") {
		cli.Unformat.WeirdSpace = config.Ptr(flags.weirdSpace)
	}
	if changed("empty-line") {
		cli.Unformat.EmptyLine = config.Ptr(flags.emptyLine)
	}
	if changed("line-removal") {
		cli.Unformat.LineRemoval = config.Ptr(flags.lineRemoval)
	}
	if changed("whitespace-removal") {
		cli.Unformat.WhitespaceRemoval = config.Ptr(flags.whitespaceRemoval)
	}

	sess, err := newSession(cmd, cli)
	if err != nil {
		return err
	}

	opts := unformatOptions(sess.cfg.Unformat)
	opts.Logger = sess.logger
	if sess.cfg.Unformat.Seed == nil {
		opts.Seed = rand.Uint64() //nolint:gosec // layout noise, not security
		sess.logger.Info("using random seed", logging.FieldSeed, opts.Seed)
	}

	input, info, err := sess.readInput(path)
	if err != nil {
		return err
	}

	tree, err := parser.ParseWithOptions(input, parser.Options{Logger: sess.logger})
	if err != nil {
		sess.reportError(path, input, err)
		return fmt.Errorf("%w: %w", ErrFilesFailed, err)
	}
	output, err := unformat.Unformat(tree, input, opts)
	if err != nil {
		return fmt.Errorf("unformat %s: %w", sess.displayPath(path), err)
	}

	switch {
	case flags.diff:
		sess.printDiff(path, input, output)
	case flags.write:
		if err := fsutil.WriteBack(sess.ctx, info, output); err != nil {
			return fmt.Errorf("write %s: %w", sess.displayPath(path), err)
		}
		sess.logger.Debug("wrote file", logging.FieldPath, path, logging.FieldBytes, len(output))
	default:
		_, _ = sess.stdout().Write(output)
	}
	return nil
}

// unformatOptions resolves the configured policy, filling unset values with
// the defaults.
func unformatOptions(cfg config.UnformatConfig) unformat.Options {
	return unformat.Options{
		Seed:              config.Get(cfg.Seed, 0),
		WeirdSpace:        config.Get(cfg.WeirdSpace, config.DefaultProbability),
		EmptyLine:         config.Get(cfg.EmptyLine, config.DefaultProbability),
		LineRemoval:       config.Get(cfg.LineRemoval, config.DefaultProbability),
		WhitespaceRemoval: config.Get(cfg.WhitespaceRemoval, config.DefaultProbability),
	}
}
