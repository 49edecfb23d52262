package cli

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/yaklabco/goswon/internal/configloader"
	"github.com/yaklabco/goswon/pkg/fsutil"
	"github.com/yaklabco/goswon/pkg/parser"
)

// Exit codes for swon.
const (
	// ExitSuccess indicates successful execution with nothing to report.
	ExitSuccess = 0

	// ExitFailure indicates a check found files that are not formatted, or
	// any failure without a more specific code.
	ExitFailure = 1

	// ExitInputErrors indicates one or more inputs could not be parsed or
	// failed verification.
	ExitInputErrors = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinel errors returned by commands to select the exit code.
var (
	// ErrWouldReformat is returned by `fmt --check` when a file is not formatted.
	ErrWouldReformat = errors.New("files would be reformatted")

	// ErrFilesFailed is returned when at least one file could not be processed.
	ErrFilesFailed = errors.New("some files failed")

	// ErrConfig wraps configuration loading failures.
	ErrConfig = errors.New("failed to load configuration")

	// ErrUsage wraps invalid flag values and argument combinations.
	ErrUsage = errors.New("invalid usage")
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var validationErr *configloader.ValidationError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig), errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, ErrFilesFailed), errors.Is(err, parser.ErrSyntax):
		return ExitInputErrors
	case errors.Is(err, fsutil.ErrNotFound), errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory), errors.Is(err, fsutil.ErrModified):
		return ExitIOError
	default:
		return ExitFailure
	}
}

// IsQuiet reports whether err only signals an exit status and has already
// been reported to the user.
func IsQuiet(err error) bool {
	return errors.Is(err, ErrWouldReformat) || errors.Is(err, ErrFilesFailed)
}

func asSyntaxError(err error) (*parser.SyntaxError, bool) {
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr, true
	}
	return nil, false
}

// relativePath returns path relative to base, or path itself if it lies
// outside base.
func relativePath(base, path string) string {
	if base == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
