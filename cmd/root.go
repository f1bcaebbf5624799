// Package cmd implements the CLI commands for specpipe using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gaurav-prasanna/specpipe/core/resolve"
)

// Flags shared by every subcommand.
var (
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "specpipe",
	Short: "specpipe — ingest W3C CSS specifications into navigable sections",
	Long: `specpipe ingests raw W3C CSS specification HTML, segments it into
addressable sections, normalizes each section into spec markup, and resolves
cross-document references for display.

Usage:
  specpipe fetch --all
  specpipe ingest <specName> [flags]
  specpipe export <specName> --html`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML file overriding the built-in route/bibref/anchor tables")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug diagnostics")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the diagnostics logger. User-facing progress stays on
// stdout; this logger carries pipeline diagnostics only.
func newLogger() *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	level := zapcore.InfoLevel
	if flagVerbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}

// loadTables returns the lookup tables, with --config overrides applied.
func loadTables() (*resolve.Tables, error) {
	if flagConfig == "" {
		return resolve.Default(), nil
	}
	return resolve.Load(flagConfig)
}
