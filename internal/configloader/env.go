package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/goswon/pkg/config"
)

// envVarPrefix is the prefix for all swon environment variables.
const envVarPrefix = "SWON_"

// envMapping binds one environment variable to a config field.
type envMapping struct {
	suffix      string
	description string
	apply       func(cfg *config.Config, value string) error
}

// envMappings lists the supported variables in documentation order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = []envMapping{
	{"INDENT_WIDTH", "Spaces per nested block level", func(cfg *config.Config, v string) error {
		i, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		cfg.Format.IndentWidth = i
		return nil
	}},
	{"SEED", "Unformatter seed", func(cfg *config.Config, v string) error {
		u, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return err
		}
		cfg.Unformat.Seed = &u
		return nil
	}},
	{"WEIRD_SPACE", "Unformatter odd spacing probability", floatSetter(func(c *config.Config) **float64 { return &c.Unformat.WeirdSpace })},
	{"EMPTY_LINE", "Unformatter blank line probability", floatSetter(func(c *config.Config) **float64 { return &c.Unformat.EmptyLine })},
	{"LINE_REMOVAL", "Unformatter line removal probability", floatSetter(func(c *config.Config) **float64 { return &c.Unformat.LineRemoval })},
	{"WHITESPACE_REMOVAL", "Unformatter space removal probability", floatSetter(func(c *config.Config) **float64 { return &c.Unformat.WhitespaceRemoval })},
	{"COLOR", "Styled output: auto, always, or never", func(cfg *config.Config, v string) error {
		cfg.Color = config.ColorMode(v)
		return nil
	}},
	{"LOG_LEVEL", "Log level: debug, info, warn, or error", func(cfg *config.Config, v string) error {
		cfg.LogLevel = v
		return nil
	}},
	{"VALUE_FORMAT", "Encoding of swon value: json or yaml", func(cfg *config.Config, v string) error {
		cfg.ValueFormat = config.ValueFormat(v)
		return nil
	}},
	{"IGNORE", "Comma-separated list of ignore patterns", func(cfg *config.Config, v string) error {
		cfg.Ignore = parseSliceValue(v)
		return nil
	}},
}

func floatSetter(field func(*config.Config) **float64) func(*config.Config, string) error {
	return func(cfg *config.Config, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*field(cfg) = &f
		return nil
	}
}

// LoadFromEnv applies SWON_* environment variable overrides to cfg.
func LoadFromEnv(cfg *config.Config) error {
	return loadFromLookup(cfg, os.Getenv)
}

func loadFromLookup(cfg *config.Config, getenv func(string) string) error {
	if cfg == nil {
		return nil
	}
	if getenv == nil {
		getenv = os.Getenv
	}

	for _, mapping := range envMappings {
		envVar := envVarPrefix + mapping.suffix
		value := getenv(envVar)
		if value == "" {
			continue
		}
		if err := mapping.apply(cfg, value); err != nil {
			return fmt.Errorf("invalid value for %s: %q: %w", envVar, value, err)
		}
	}
	return nil
}

// parseSliceValue parses a comma-separated string into a trimmed slice.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// EnvVar pairs a variable name with its description.
type EnvVar struct {
	Name        string
	Description string
}

// ListEnvVars returns every supported environment variable.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, 0, len(envMappings))
	for _, m := range envMappings {
		vars = append(vars, EnvVar{Name: envVarPrefix + m.suffix, Description: m.description})
	}
	return vars
}
