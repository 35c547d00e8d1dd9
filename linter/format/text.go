package format

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/speakeasy-api/jsxlint/diagnostic"
)

type TextFormatter struct {
	colorize bool
}

// NewTextFormatter creates a plain text formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// WithColor enables or disables ANSI colouring of severities.
func (f *TextFormatter) WithColor(enabled bool) *TextFormatter {
	f.colorize = enabled
	return f
}

func (f *TextFormatter) paint(s diagnostic.Severity) string {
	var c *color.Color
	switch s {
	case diagnostic.SeverityError:
		c = color.New(color.FgRed, color.Bold)
	case diagnostic.SeverityWarning:
		c = color.New(color.FgYellow)
	default:
		c = color.New(color.FgCyan)
	}
	if f.colorize {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s.String())
}

func (f *TextFormatter) Format(results []error) (string, error) {
	var sb strings.Builder
	var c counts

	for _, err := range results {
		d, ok := asDiagnostic(err)
		if !ok {
			// Non-diagnostic error
			fmt.Fprintf(&sb, "-\t-\t%s\tinternal\t%s\n", f.paint(diagnostic.SeverityError), err.Error())
			c.errors++
			continue
		}

		loc := fmt.Sprintf("%d:%d", d.GetLineNumber(), d.GetColumnNumber())
		if d.File != "" {
			loc = d.File + ":" + loc
		}
		fmt.Fprintf(&sb, "%s\t%s\t%s\t%s\n", loc, f.paint(d.Severity), ruleName(d), d.Message())
		if help := d.Help(); help != "" {
			fmt.Fprintf(&sb, "\thelp: %s\n", help)
		}
		c.add(d.Severity)
	}

	if len(results) > 0 {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "✖ %d problems (%d errors, %d warnings, %d hints)\n", len(results), c.errors, c.warnings, c.hints)
	}

	return sb.String(), nil
}
