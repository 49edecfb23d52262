// Package semtok computes LSP semantic tokens for a SWON document.
package semtok

// TokenType indexes TokenTypes.
type TokenType uint32

const (
	TypeKeyword TokenType = iota
	TypeString
	TypeNumber
	TypeProperty
	TypeNamespace
	TypeOperator
	TypeComment
	TypeVariable
)

// TokenTypes is the legend's token type list, in index order.
var TokenTypes = []string{
	"keyword",
	"string",
	"number",
	"property",
	"namespace",
	"operator",
	"comment",
	"variable",
}

func (t TokenType) String() string {
	if int(t) < len(TokenTypes) {
		return TokenTypes[t]
	}
	return "unknown"
}

// Modifier is a bit set over TokenModifiers.
type Modifier uint32

const (
	ModDeclaration Modifier = 1 << iota
	ModDocumentation
)

// TokenModifiers is the legend's modifier list, in bit order.
var TokenModifiers = []string{
	"declaration",
	"documentation",
}

// Legend is the semantic tokens legend a server advertises.
type Legend struct {
	TokenTypes     []string `json:"tokenTypes"`
	TokenModifiers []string `json:"tokenModifiers"`
}

// DefaultLegend returns the legend matching TokenType and Modifier values.
func DefaultLegend() Legend {
	return Legend{
		TokenTypes:     append([]string(nil), TokenTypes...),
		TokenModifiers: append([]string(nil), TokenModifiers...),
	}
}
