package pretty

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yaklabco/goswon/pkg/parser"
)

// FormatSyntaxError formats a parse failure with its source line and a caret.
func (s *Styles) FormatSyntaxError(path string, err *parser.SyntaxError, input []byte) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d", s.FilePath.Render(path), err.Line, err.Column)
	fmt.Fprintf(&builder, "  %s  %s  %s\n", location, s.Error.Render("error"), s.Message.Render(err.Message))

	if line := sourceLine(input, err.Line); line != "" {
		builder.WriteString(s.FormatSourceContext(line, err.Column))
	}
	return builder.String()
}

// FormatError formats any other per-file failure.
func (s *Styles) FormatError(path string, err error) string {
	return fmt.Sprintf("  %s  %s  %s\n", s.FilePath.Render(path), s.Error.Render("error"), s.Message.Render(err.Error()))
}

// FormatSourceContext formats the source line with a caret under column.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	const indent = "        "
	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")
	if column > 0 {
		builder.WriteString(indent + strings.Repeat(" ", column-1) + s.Caret.Render("^") + "\n")
	}
	return builder.String()
}

// sourceLine returns the 1-based line of input without its terminator.
func sourceLine(input []byte, line int) string {
	for i := 1; len(input) > 0; i++ {
		end := bytes.IndexByte(input, '\n')
		if end < 0 {
			end = len(input)
		}
		if i == line {
			return strings.TrimRight(string(input[:end]), "\r")
		}
		if end == len(input) {
			break
		}
		input = input[end+1:]
	}
	return ""
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, detail string) string {
	header := s.FilePath.Render(path)
	if detail != "" {
		header += s.Dim.Render(" (" + detail + ")")
	}
	return header
}
