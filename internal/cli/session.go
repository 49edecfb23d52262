package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/goswon/internal/configloader"
	"github.com/yaklabco/goswon/internal/logging"
	"github.com/yaklabco/goswon/internal/ui/pretty"
	"github.com/yaklabco/goswon/pkg/config"
	"github.com/yaklabco/goswon/pkg/fsutil"
)

// stdinPath is the path argument that selects standard input.
const stdinPath = "-"

// stdinName labels standard input in diagnostics.
const stdinName = "<stdin>"

// session is the per-invocation state shared by the subcommands: the
// resolved configuration, a logger and the output styles.
type session struct {
	ctx     context.Context
	cmd     *cobra.Command
	cfg     *config.Config
	logger  *log.Logger
	styles  *pretty.Styles
	color   bool
	workDir string
}

// newSession loads configuration with cli as the highest-precedence layer
// and prepares logging and styles from it.
func newSession(cmd *cobra.Command, cli *config.Config) (*session, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if cli == nil {
		cli = &config.Config{}
	}
	if err := applyGlobalFlags(cmd, cli); err != nil {
		return nil, err
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cli,
	})
	if err != nil {
		return nil, errors.Join(ErrConfig, err)
	}
	cfg := loadResult.Config

	logger := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel)
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldConfig, loadResult.LoadedFrom)
	}

	color := pretty.IsColorEnabled(cfg.Color, cmd.OutOrStdout())
	return &session{
		ctx:     logging.WithLogger(ctx, logger),
		cmd:     cmd,
		cfg:     cfg,
		logger:  logger,
		styles:  pretty.NewStyles(color),
		color:   color,
		workDir: workDir,
	}, nil
}

// applyGlobalFlags copies explicitly set root flags into cli.
func applyGlobalFlags(cmd *cobra.Command, cli *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("color") {
		color, err := flags.GetString("color")
		if err != nil {
			return fmt.Errorf("get color flag: %w", err)
		}
		cli.Color = config.ColorMode(color)
	}
	if flags.Changed("log-level") {
		level, err := flags.GetString("log-level")
		if err != nil {
			return fmt.Errorf("get log-level flag: %w", err)
		}
		cli.LogLevel = level
	}
	if debug, err := flags.GetBool("debug"); err == nil && debug {
		cli.LogLevel = "debug"
	}
	return nil
}

// stdout and stderr return the command's output streams.
func (s *session) stdout() io.Writer { return s.cmd.OutOrStdout() }
func (s *session) stderr() io.Writer { return s.cmd.ErrOrStderr() }

// readInput reads path, or standard input when path is "-". The returned
// FileInfo is nil for standard input.
func (s *session) readInput(path string) ([]byte, *fsutil.FileInfo, error) {
	if path == stdinPath {
		content, err := io.ReadAll(s.cmd.InOrStdin())
		if err != nil {
			return nil, nil, fmt.Errorf("read stdin: %w", err)
		}
		return content, nil, nil
	}
	content, info, err := fsutil.ReadFile(s.ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return content, info, nil
}

// displayPath returns path relative to the working directory when possible.
func (s *session) displayPath(path string) string {
	if path == stdinPath {
		return stdinName
	}
	return relativePath(s.workDir, path)
}

// reportError prints a per-file failure, with source context for syntax errors.
func (s *session) reportError(path string, input []byte, err error) {
	fmt.Fprint(s.stderr(), s.formatError(s.displayPath(path), input, err))
}

func (s *session) formatError(path string, input []byte, err error) string {
	if syntaxErr, ok := asSyntaxError(err); ok {
		return s.styles.FormatSyntaxError(path, syntaxErr, input)
	}
	return s.styles.FormatError(path, err)
}
