package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goswon/internal/logging"
	"github.com/yaklabco/goswon/pkg/config"
	"github.com/yaklabco/goswon/pkg/value"
)

func newValueCommand() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "value <file>",
		Short: "Convert a SWON file to JSON or YAML",
		Long: `Extract the data a SWON document describes and print it as JSON or YAML.

Sections and dotted keys become nested objects, array markers build arrays,
and code blocks without a language tag get one guessed from their content.
Map order follows the document.

Examples:
  swon value config.swon                Print JSON
  swon value --format yaml config.swon  Print YAML`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValue(cmd, args[0], outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format: json or yaml (default from config)")

	return cmd
}

func runValue(cmd *cobra.Command, path, outputFormat string) error {
	cli := &config.Config{ValueFormat: config.ValueFormat(outputFormat)}
	if outputFormat != "" && !cli.ValueFormat.IsValid() {
		return fmt.Errorf("%w: invalid format %q: must be json or yaml", ErrUsage, outputFormat)
	}

	sess, err := newSession(cmd, cli)
	if err != nil {
		return err
	}
	input, _, err := sess.readInput(path)
	if err != nil {
		return err
	}

	doc, err := value.Parse(input)
	if err != nil {
		sess.reportError(path, input, err)
		return fmt.Errorf("%w: %w", ErrFilesFailed, err)
	}

	var out []byte
	switch sess.cfg.ValueFormat {
	case config.ValueYAML:
		out, err = value.ToYAML(doc)
	default:
		out, err = value.ToJSON(doc, "  ")
	}
	if err != nil {
		return fmt.Errorf("encode value: %w", err)
	}
	sess.logger.Debug("extracted value", logging.FieldPath, path, logging.FieldFormat, sess.cfg.ValueFormat)

	_, err = sess.stdout().Write(out)
	return err
}
