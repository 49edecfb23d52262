package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf16"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goswon/internal/logging"
	"github.com/yaklabco/goswon/internal/ui/pretty"
	"github.com/yaklabco/goswon/pkg/parser"
	"github.com/yaklabco/goswon/pkg/semtok"
)

// rawTokens is the `tokens --raw` document: the legend a language server
// advertises and the encoded token data it would send.
type rawTokens struct {
	Legend semtok.Legend `json:"legend"`
	Data   []uint32      `json:"data"`
}

func newTokensCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the semantic tokens of a SWON file",
		Long: `Compute LSP semantic tokens for a SWON document.

The default output is a table with 1-based positions and the text each
token covers. --raw prints the legend and the relative-encoded integer
array exactly as a language server would send them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args[0], raw)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the LSP legend and encoded data as JSON")

	return cmd
}

func runTokens(cmd *cobra.Command, path string, raw bool) error {
	sess, err := newSession(cmd, nil)
	if err != nil {
		return err
	}
	input, _, err := sess.readInput(path)
	if err != nil {
		return err
	}

	tree, err := parser.ParseWithOptions(input, parser.Options{Logger: sess.logger})
	if err != nil {
		sess.reportError(path, input, err)
		return fmt.Errorf("%w: %w", ErrFilesFailed, err)
	}
	tokens, err := semtok.Emit(tree, input)
	if err != nil {
		return err
	}
	sess.logger.Debug("emitted semantic tokens", logging.FieldTokens, len(tokens))

	if raw {
		out, err := json.MarshalIndent(rawTokens{
			Legend: semtok.DefaultLegend(),
			Data:   semtok.Encode(tokens),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("encode tokens: %w", err)
		}
		fmt.Fprintln(sess.stdout(), string(out))
		return nil
	}

	lines := bytes.Split(input, []byte("\n"))
	rows := make([]pretty.TokenRow, len(tokens))
	for i, tok := range tokens {
		rows[i] = pretty.TokenRow{Token: tok, Text: tokenText(lines, tok)}
	}
	fmt.Fprint(sess.stdout(), sess.styles.FormatTokenTable(rows, pretty.TerminalWidth(sess.stdout())))
	return nil
}

// tokenText returns the text a token covers. Token columns and lengths
// count UTF-16 code units.
func tokenText(lines [][]byte, tok semtok.Token) string {
	if tok.Line >= len(lines) {
		return ""
	}
	units := utf16.Encode([]rune(string(bytes.TrimSuffix(lines[tok.Line], []byte("\r")))))
	start := min(tok.Column, len(units))
	end := min(tok.Column+tok.Length, len(units))
	return string(utf16.Decode(units[start:end]))
}
