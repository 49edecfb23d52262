package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/goswon/internal/logging"
	"github.com/yaklabco/goswon/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "unformat.seed").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// maxIndentWidth bounds format.indent_width.
const maxIndentWidth = 16

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Format.IndentWidth < 0 || cfg.Format.IndentWidth > maxIndentWidth {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format.indent_width",
			Value:   cfg.Format.IndentWidth,
			Message: fmt.Sprintf("indent width must be between 0 (default) and %d", maxIndentWidth),
		})
	}

	for _, p := range cfg.Unformat.Probabilities() {
		if p.Value == nil {
			continue
		}
		if v := *p.Value; v < 0 || v > 1 {
			result.Errors = append(result.Errors, ValidationError{
				Field:   p.Key,
				Value:   v,
				Message: fmt.Sprintf("probability %v must be between 0 and 1", v),
			})
		}
	}

	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	if cfg.ValueFormat != "" && !cfg.ValueFormat.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "value_format",
			Value:   cfg.ValueFormat,
			Message: fmt.Sprintf("invalid value format %q; must be one of: json, yaml", cfg.ValueFormat),
		})
	}

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: err.Error(),
		})
	}

	validateIgnorePatterns(cfg, result)

	return result
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		if pattern == "" {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Message: "empty pattern matches nothing",
			})
			continue
		}
		if _, err := filepath.Match(pattern, ""); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}
