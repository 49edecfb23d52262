package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/goswon/internal/logging"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		level    string
		expected log.Level
	}{
		{"debug level", "debug", log.DebugLevel},
		{"info level", "info", log.InfoLevel},
		{"warn level", "warn", log.WarnLevel},
		{"warning level", "warning", log.WarnLevel},
		{"error level", "error", log.ErrorLevel},
		{"invalid defaults to info", "invalid", log.InfoLevel},
		{"empty defaults to info", "", log.InfoLevel},
		{"case insensitive DEBUG", "DEBUG", log.DebugLevel},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			logger := logging.New(testCase.level)
			if logger.GetLevel() != testCase.expected {
				t.Errorf("expected level %v, got %v", testCase.expected, logger.GetLevel())
			}
		})
	}
}

func TestParseLevelRejectsUnknown(t *testing.T) {
	t.Parallel()

	if _, err := logging.ParseLevel("verbose"); err == nil {
		t.Error("expected an error for an unknown level")
	}
	for _, level := range logging.Levels {
		if _, err := logging.ParseLevel(level); err != nil {
			t.Errorf("ParseLevel(%q): %v", level, err)
		}
	}
}

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "debug")
	logger.Debug("applied", logging.FieldCommands, 3)

	if !bytes.Contains(buf.Bytes(), []byte("commands=3")) {
		t.Errorf("missing field in %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	logger := logging.Discard()
	logger.Error("dropped")
	if logger.GetLevel() <= log.FatalLevel {
		t.Errorf("discard logger should be above fatal, got %v", logger.GetLevel())
	}
}

func TestSetLevel(t *testing.T) {
	// Not parallel: modifies the package-level logger.
	original := logging.Default()
	defer logging.SetDefault(original)

	logging.SetDefault(logging.New("info"))

	logging.SetLevel("debug")
	if logging.Default().GetLevel() != log.DebugLevel {
		t.Error("SetLevel to debug failed")
	}

	logging.SetLevel("nonsense")
	if logging.Default().GetLevel() != log.DebugLevel {
		t.Error("unknown level should be ignored")
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	logger := logging.New("error")
	ctx := logging.WithLogger(context.Background(), logger)
	if logging.FromContext(ctx) != logger {
		t.Error("FromContext did not return the stored logger")
	}
	if logging.FromContext(context.Background()) == nil {
		t.Error("FromContext without a logger returned nil")
	}
}
