package commands

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/linter/format"
	"github.com/speakeasy-api/jsxlint/parser"
	"github.com/speakeasy-api/jsxlint/rules"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// DefaultConfigFiles are looked up in the working directory when --config is not given.
var DefaultConfigFiles = []string{"jsxlint.yaml", "jsxlint.yml", "jsxlint.json", "jsxlint.toml"}

var sourceExtensions = []string{".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx", ".mts", ".cts"}

type lintOptions struct {
	configFile  string
	format      string
	plugins     []string
	rules       []string
	disable     []string
	noColor     bool
	concurrency int
}

func newLintCommand() *cobra.Command {
	opts := &lintOptions{}

	cmd := &cobra.Command{
		Use:   "lint <path>...",
		Short: "Lint JSX and TSX files",
		Long: `Lint JavaScript, JSX, TypeScript and TSX files.

Directories are searched recursively; node_modules and hidden directories are skipped.

CONFIGURATION:

By default, the linter looks for jsxlint.yaml, jsxlint.yml, jsxlint.json or
jsxlint.toml in the working directory. Use --config to specify a file.

Example configuration (jsxlint.yaml):

  plugins:
    jsx-a11y: true
    nextjs: true

  settings:
    jsx-a11y:
      components:
        MyButton: button

  rules:
    no-sync-scripts: error
    google-font-preconnect: off

The command exits non-zero when any error-severity problem is reported.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "Path to config file (yaml, json or toml)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: text, json or summary (overrides config)")
	cmd.Flags().StringSliceVarP(&opts.plugins, "plugin", "p", nil, "Plugins to enable (can be repeated)")
	cmd.Flags().StringSliceVarP(&opts.rules, "rule", "r", nil, "Only run the named rules (can be repeated)")
	cmd.Flags().StringSliceVarP(&opts.disable, "disable", "d", nil, "Rule names to disable (can be repeated)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable coloured output")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 0, "Number of files linted in parallel (default GOMAXPROCS)")

	return cmd
}

func runLint(cmd *cobra.Command, opts *lintOptions, args []string) error {
	ctx := cmd.Context()

	config, err := loadLintConfig(opts.configFile)
	if err != nil {
		return err
	}
	config.EnablePlugins(opts.plugins...)
	if opts.format != "" {
		config.OutputFormat = linter.OutputFormat(opts.format)
	}

	switch config.OutputFormat {
	case linter.OutputFormatText, linter.OutputFormatJSON, linter.OutputFormatSummary:
	default:
		return fmt.Errorf("unsupported output format %q", config.OutputFormat)
	}

	off := false
	for _, name := range opts.disable {
		config.Rules[name] = linter.RuleConfig{Enabled: &off}
	}

	all := rules.NewRegistry()
	registry := all
	if len(opts.rules) > 0 {
		if registry, err = all.Subset(opts.rules...); err != nil {
			return err
		}
		// Selecting a rule implies its plugin
		for _, rule := range registry.AllRules() {
			config.EnablePlugins(rule.Plugin())
		}
		narrowConfig(config, all, registry)
	}

	lint, err := linter.NewLinter(config, registry, linter.WithLogger(slog.Default()), linter.WithConcurrency(opts.concurrency))
	if err != nil {
		return fmt.Errorf("failed to create linter: %w", err)
	}

	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	sources := make([]linter.Source, 0, len(files))
	for _, file := range files {
		content, err := os.ReadFile(file) //nolint:gosec
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		sources = append(sources, linter.Source{Filename: file, Content: content})
	}
	slog.Debug("linting files", "count", len(sources), "rules", len(lint.ActiveRules()))

	output, err := lint.LintSources(ctx, parser.New(), sources)
	if err != nil {
		return fmt.Errorf("linting failed: %w", err)
	}

	formatter := format.ForOutputFormat(output.Format)
	if text, ok := formatter.(*format.TextFormatter); ok {
		text.WithColor(!opts.noColor && isTerminal(cmd))
	}
	rendered, err := formatter.Format(output.Problems())
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	if output.Format == linter.OutputFormatJSON {
		fmt.Fprintln(cmd.OutOrStdout())
	}

	if output.HasErrors() {
		return ErrProblemsFound.Wrapf("%d errors", output.ErrorCount())
	}
	return nil
}

// narrowConfig drops rule and plugin entries that exist in all but not in selected,
// so that only genuinely unknown names are reported by the linter.
func narrowConfig(config *linter.Config, all, selected *linter.Registry) {
	for name := range config.Rules {
		if _, err := selected.Lookup(name); err == nil {
			continue
		}
		if _, err := all.Lookup(name); err == nil {
			delete(config.Rules, name)
		}
	}
	for name := range config.Plugins {
		if !selected.HasPlugin(name) && all.HasPlugin(name) {
			delete(config.Plugins, name)
		}
	}
}

func loadLintConfig(path string) (*linter.Config, error) {
	if path != "" {
		return linter.LoadConfigFromFile(path)
	}
	for _, candidate := range DefaultConfigFiles {
		if _, err := os.Stat(candidate); err == nil {
			slog.Debug("using config file", "path", candidate)
			return linter.LoadConfigFromFile(candidate)
		}
	}
	return linter.NewConfig(), nil
}

// collectFiles expands directories into the source files beneath them, keeping argument order.
func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, filepath.Clean(arg))
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				name := d.Name()
				if path != arg && (name == "node_modules" || strings.HasPrefix(name, ".")) {
					return filepath.SkipDir
				}
				return nil
			}
			if slices.Contains(sourceExtensions, strings.ToLower(filepath.Ext(path))) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", arg, err)
		}
	}
	return files, nil
}

func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
