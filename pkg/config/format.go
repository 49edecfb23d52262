package config

// DefaultIndentWidth is the formatter's default spaces per block level.
const DefaultIndentWidth = 2

// DefaultProbability is the unformatter's default mutation chance.
const DefaultProbability = 0.2

// FormatConfig holds the formatter policy.
type FormatConfig struct {
	// IndentWidth is the number of spaces per section block level.
	IndentWidth int `yaml:"indent_width,omitempty"`
}

// DefaultFormatConfig returns the canonical formatter policy.
func DefaultFormatConfig() FormatConfig {
	return FormatConfig{IndentWidth: DefaultIndentWidth}
}

// UnformatConfig holds the unformatter policy. Unset fields are nil so that
// an explicit zero survives merging.
type UnformatConfig struct {
	Seed              *uint64  `yaml:"seed,omitempty"`
	WeirdSpace        *float64 `yaml:"weird_space,omitempty"`
	EmptyLine         *float64 `yaml:"empty_line,omitempty"`
	LineRemoval       *float64 `yaml:"line_removal,omitempty"`
	WhitespaceRemoval *float64 `yaml:"whitespace_removal,omitempty"`
}

// DefaultUnformatConfig returns every probability at DefaultProbability.
// Seed stays unset so that callers can draw a fresh one per run.
func DefaultUnformatConfig() UnformatConfig {
	return UnformatConfig{
		WeirdSpace:        Ptr(DefaultProbability),
		EmptyLine:         Ptr(DefaultProbability),
		LineRemoval:       Ptr(DefaultProbability),
		WhitespaceRemoval: Ptr(DefaultProbability),
	}
}

// Probabilities returns the named probabilities in a fixed order, for
// validation and display.
func (u UnformatConfig) Probabilities() []NamedProbability {
	return []NamedProbability{
		{"unformat.weird_space", u.WeirdSpace},
		{"unformat.empty_line", u.EmptyLine},
		{"unformat.line_removal", u.LineRemoval},
		{"unformat.whitespace_removal", u.WhitespaceRemoval},
	}
}

// NamedProbability pairs a setting key with its value.
type NamedProbability struct {
	Key   string
	Value *float64
}

// Get returns the value of an optional setting, or def when unset.
func Get[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
