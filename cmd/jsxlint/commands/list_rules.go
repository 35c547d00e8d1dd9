package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/rules"
	"github.com/spf13/cobra"
)

type listRulesOptions struct {
	format   string
	category string
	plugin   string
}

type ruleInfo struct {
	Name            string `json:"name"`
	Plugin          string `json:"plugin"`
	Category        string `json:"category"`
	DefaultSeverity string `json:"defaultSeverity"`
	Summary         string `json:"summary"`
	Description     string `json:"description"`
	Link            string `json:"link,omitempty"`
}

func newListRulesCommand() *cobra.Command {
	opts := &listRulesOptions{}

	cmd := &cobra.Command{
		Use:   "list-rules",
		Short: "List all available linting rules",
		Long: `List all available linting rules with their metadata.

Shows each rule's name, plugin, default severity and summary.
Use --category or --plugin to filter.

Examples:
  jsxlint list-rules
  jsxlint list-rules --plugin nextjs
  jsxlint list-rules --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runListRules(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text or json")
	cmd.Flags().StringVar(&opts.category, "category", "", "Filter by category (e.g., correctness)")
	cmd.Flags().StringVar(&opts.plugin, "plugin", "", "Filter by plugin (e.g., jsx-a11y, nextjs)")

	return cmd
}

func runListRules(w io.Writer, opts *listRulesOptions) error {
	registry := rules.NewRegistry()
	if opts.plugin != "" && !registry.HasPlugin(opts.plugin) {
		return fmt.Errorf("unknown plugin %q, available: %s", opts.plugin, strings.Join(registry.AllPlugins(), ", "))
	}

	candidates := registry.AllRules()
	if opts.plugin != "" {
		candidates = registry.RulesInPlugin(opts.plugin)
	}

	var infos []ruleInfo
	for _, rule := range candidates {
		if opts.category != "" && rule.Category() != opts.category {
			continue
		}

		infos = append(infos, ruleInfo{
			Name:            linter.QualifiedName(rule),
			Plugin:          rule.Plugin(),
			Category:        rule.Category(),
			DefaultSeverity: rule.DefaultSeverity().String(),
			Summary:         rule.Summary(),
			Description:     rule.Description(),
			Link:            rule.Link(),
		})
	}

	switch opts.format {
	case "json":
		return printRulesJSON(w, infos)
	case "text", "":
		return printRulesText(w, infos, registry.AllCategories())
	default:
		return fmt.Errorf("unsupported format %q", opts.format)
	}
}

func printRulesText(w io.Writer, infos []ruleInfo, categories []string) error {
	if len(infos) == 0 {
		_, err := fmt.Fprintln(w, "No rules found matching the specified filters.")
		return err
	}

	// Group by category
	byCategory := make(map[string][]ruleInfo)
	for _, info := range infos {
		byCategory[info.Category] = append(byCategory[info.Category], info)
	}

	// Print in category order
	for _, cat := range categories {
		catRules, ok := byCategory[cat]
		if !ok {
			continue
		}

		fmt.Fprintf(w, "\n%s (%d rules)\n", strings.ToUpper(cat), len(catRules))
		fmt.Fprintln(w, strings.Repeat("─", 80))

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, info := range catRules {
			fmt.Fprintf(tw, "  %s\t%s\t[%s]\n", info.Name, info.Summary, info.DefaultSeverity)
			if info.Link != "" {
				fmt.Fprintf(tw, "  \tDocs: %s\n", info.Link)
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%d rules total\n", len(infos))
	return err
}

func printRulesJSON(w io.Writer, infos []ruleInfo) error {
	if infos == nil {
		infos = []ruleInfo{}
	}
	bytes, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(bytes))
	return err
}
