package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/goswon/pkg/semtok"
)

// Token table layout.
const (
	tablePadding   = 2
	heavySeparator = "="
)

// TokenRow is one semantic token with the source text it covers.
type TokenRow struct {
	Token semtok.Token
	Text  string
}

// FormatTokenTable renders tokens as a LINE/COL/LEN/TYPE/MODIFIERS/TEXT
// table. Positions are shown 1-based. The TEXT column is cut to fit width.
func (s *Styles) FormatTokenTable(rows []TokenRow, width int) string {
	if len(rows) == 0 {
		return ""
	}
	if width <= 0 {
		width = defaultTermWidth
	}

	headers := []string{"LINE", "COL", "LEN", "TYPE", "MODIFIERS", "TEXT"}
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		tok := row.Token
		cells = append(cells, []string{
			fmt.Sprint(tok.Line + 1),
			fmt.Sprint(tok.Column + 1),
			fmt.Sprint(tok.Length),
			tok.Type.String(),
			modifierNames(tok.Modifiers),
			fmt.Sprintf("%q", row.Text),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range cells {
		for i, cell := range row[:len(row)-1] {
			widths[i] = max(widths[i], len(cell))
		}
	}
	used := 0
	for _, w := range widths[:len(widths)-1] {
		used += w + tablePadding
	}
	widths[len(widths)-1] = max(width-used, len(headers[len(headers)-1]))

	var builder strings.Builder
	builder.WriteString(s.TableHeader.Render(formatCells(headers, widths)) + "\n")
	builder.WriteString(s.TableSeparator.Render(strings.Repeat(heavySeparator, min(width, used+widths[len(widths)-1]))) + "\n")
	for _, row := range cells {
		row[len(row)-1] = truncateString(row[len(row)-1], widths[len(widths)-1])
		builder.WriteString(formatCells(row, widths) + "\n")
	}
	return builder.String()
}

func formatCells(cells []string, widths []int) string {
	var builder strings.Builder
	for i, cell := range cells {
		if i == len(cells)-1 {
			builder.WriteString(cell)
			break
		}
		builder.WriteString(cell)
		builder.WriteString(strings.Repeat(" ", widths[i]-len(cell)+tablePadding))
	}
	return strings.TrimRight(builder.String(), " ")
}

func modifierNames(mods semtok.Modifier) string {
	var names []string
	for i, name := range semtok.TokenModifiers {
		if mods&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ",")
}
