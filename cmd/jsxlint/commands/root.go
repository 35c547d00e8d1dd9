// Package commands implements the jsxlint command line interface.
package commands

import (
	"io"
	"log/slog"
	"strings"

	"github.com/speakeasy-api/jsxlint/errors"
	"github.com/spf13/cobra"
)

// ErrProblemsFound is returned by the lint command when error-severity problems were reported.
const ErrProblemsFound = errors.Error("problems found")

// NewRootCommand builds the jsxlint command tree.
func NewRootCommand() *cobra.Command {
	var logLevel, logFormat string

	rootCmd := &cobra.Command{
		Use:   "jsxlint",
		Short: "Lint JSX and TSX sources",
		Long: `A linter for JSX and TSX sources.

Rules are grouped into plugins. Core rules always run; plugin rules such as
jsx-a11y (accessibility) and nextjs (Next.js pitfalls) run only when their
plugin is enabled in the configuration file or with --plugin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			InitLogger(cmd.ErrOrStderr(), logFormat, logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(newLintCommand())
	rootCmd.AddCommand(newListRulesCommand())
	rootCmd.AddCommand(newDocsCommand())

	return rootCmd
}

// InitLogger installs the process-wide logger writing to w.
func InitLogger(w io.Writer, format, level string) *slog.Logger {
	var h slog.Handler
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	if strings.ToLower(format) == "json" {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	} else {
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	}
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}
