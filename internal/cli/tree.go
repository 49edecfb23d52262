package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goswon/internal/logging"
	"github.com/yaklabco/goswon/internal/ui/pretty"
	"github.com/yaklabco/goswon/pkg/parser"
)

type treeFlags struct {
	noTrivia bool
	tolerant bool
}

func newTreeCommand() *cobra.Command {
	flags := &treeFlags{}

	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Print the concrete syntax tree of a SWON file",
		Long: `Dump the concrete syntax tree of a SWON document.

Each line is a node: non-terminals show their kind, terminals show their
kind, byte span and text. Nodes produced by error recovery are marked
"recovered" when --tolerant is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd, args[0], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.noTrivia, "no-trivia", false, "hide whitespace, newline and comment terminals")
	cmd.Flags().BoolVar(&flags.tolerant, "tolerant", false, "recover from syntax errors instead of failing")

	return cmd
}

func runTree(cmd *cobra.Command, path string, flags *treeFlags) error {
	sess, err := newSession(cmd, nil)
	if err != nil {
		return err
	}
	input, _, err := sess.readInput(path)
	if err != nil {
		return err
	}

	tree, err := parser.ParseWithOptions(input, parser.Options{
		Tolerant: flags.tolerant,
		Logger:   sess.logger,
	})
	if err != nil {
		sess.reportError(path, input, err)
		return fmt.Errorf("%w: %w", ErrFilesFailed, err)
	}
	sess.logger.Debug("parsed tree", logging.FieldPath, path, logging.FieldNodes, tree.Len())

	fmt.Fprint(sess.stdout(), sess.styles.FormatTree(tree, input, pretty.TreeOptions{
		HideTrivia: flags.noTrivia,
		Width:      pretty.TerminalWidth(sess.stdout()),
	}))
	return nil
}
