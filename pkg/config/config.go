// Package config defines the swon tool configuration.
// These types are plain data; loading and merging live in internal/configloader.
package config

// ColorMode controls styled terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// ValueFormat selects the encoding of `swon value`.
type ValueFormat string

const (
	ValueJSON ValueFormat = "json"
	ValueYAML ValueFormat = "yaml"
)

// IsValid returns true if the value format is known.
func (f ValueFormat) IsValid() bool {
	return f == ValueJSON || f == ValueYAML
}

// Config is the root configuration structure.
type Config struct {
	// Format is the formatter policy.
	Format FormatConfig `yaml:"format"`

	// Unformat is the unformatter policy.
	Unformat UnformatConfig `yaml:"unformat"`

	// Color is "auto", "always" or "never".
	Color ColorMode `yaml:"color,omitempty"`

	// LogLevel is "debug", "info", "warn" or "error".
	LogLevel string `yaml:"log_level,omitempty"`

	// ValueFormat is the default output of `swon value`.
	ValueFormat ValueFormat `yaml:"value_format,omitempty"`

	// Ignore contains glob patterns for files skipped during discovery.
	Ignore []string `yaml:"ignore,omitempty"`
}

// NewConfig returns a Config with every setting at its default.
func NewConfig() *Config {
	return &Config{
		Format:      DefaultFormatConfig(),
		Unformat:    DefaultUnformatConfig(),
		Color:       ColorAuto,
		LogLevel:    "info",
		ValueFormat: ValueJSON,
	}
}

// Ptr returns a pointer to v, for optional settings.
func Ptr[T any](v T) *T {
	return &v
}
