// Package cli provides the Cobra command structure for swon.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root swon command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "swon",
		Short: "Format, inspect and convert SWON documents",
		Long: `swon is a toolchain for SWON configuration documents.

It parses documents into a lossless concrete syntax tree, so every byte of
the input, comments included, survives formatting. swon can reformat files
to a canonical layout, scramble their layout for testing, emit LSP semantic
tokens, dump the syntax tree, and convert documents to JSON or YAML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level: debug, info, warn, error")

	// Add subcommands.
	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newUnfmtCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newTokensCommand())
	rootCmd.AddCommand(newTreeCommand())
	rootCmd.AddCommand(newValueCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
