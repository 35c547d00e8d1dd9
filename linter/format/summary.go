package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/speakeasy-api/jsxlint/diagnostic"
)

// SummaryFormatter formats results as a per-rule summary table.
type SummaryFormatter struct{}

// NewSummaryFormatter creates a new SummaryFormatter.
func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

type ruleSummary struct {
	rule     string
	severity diagnostic.Severity
	count    int
}

// Format outputs a per-rule summary table sorted by count descending.
func (f *SummaryFormatter) Format(results []error) (string, error) {
	byRule := make(map[string]*ruleSummary)
	var c counts

	for _, err := range results {
		name, severity := "internal", diagnostic.SeverityError
		if d, ok := asDiagnostic(err); ok {
			name, severity = ruleName(d), d.Severity
		}

		rs, ok := byRule[name]
		if !ok {
			rs = &ruleSummary{rule: name, severity: severity}
			byRule[name] = rs
		}
		rs.count++
		c.add(severity)
	}

	// Sort by count descending, then by rule name
	sorted := make([]*ruleSummary, 0, len(byRule))
	for _, rs := range byRule {
		sorted = append(sorted, rs)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].rule < sorted[j].rule
	})

	var sb strings.Builder

	// Header
	fmt.Fprintf(&sb, "%-50s %8s %8s\n", "Rule", "Severity", "Count")
	sb.WriteString(strings.Repeat("─", 68))
	sb.WriteString("\n")

	for _, rs := range sorted {
		fmt.Fprintf(&sb, "%-50s %8s %8d\n", rs.rule, rs.severity, rs.count)
	}

	sb.WriteString(strings.Repeat("─", 68))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "✖ %d problems (%d errors, %d warnings, %d hints) across %d rules\n",
		len(results), c.errors, c.warnings, c.hints, len(byRule))

	return sb.String(), nil
}
