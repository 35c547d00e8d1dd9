package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/rules"
	"github.com/spf13/cobra"
)

func newDocsCommand() *cobra.Command {
	var (
		docsFormat string
		docsOutput string
	)

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Generate rule documentation",
		Long: `Generate documentation for every built-in rule as Markdown or JSON.

Examples:
  jsxlint docs > RULES.md
  jsxlint docs --format json --output rules.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if docsOutput != "" {
				f, err := os.Create(docsOutput) //nolint:gosec
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				w = f
			}
			return writeDocs(w, docsFormat)
		},
	}

	cmd.Flags().StringVarP(&docsFormat, "format", "f", "markdown", "Output format: markdown or json")
	cmd.Flags().StringVarP(&docsOutput, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

func writeDocs(w io.Writer, format string) error {
	gen := linter.NewDocGenerator(rules.NewRegistry())
	switch format {
	case "markdown", "md":
		return gen.WriteMarkdown(w)
	case "json":
		return gen.WriteJSON(w)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
