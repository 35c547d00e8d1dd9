// Package format renders lint results. Results are diagnostic.Diagnostic values; any
// other error (such as a syntax error) is reported as an internal error.
package format

import (
	"errors"

	"github.com/speakeasy-api/jsxlint/diagnostic"
	"github.com/speakeasy-api/jsxlint/linter"
)

type Formatter interface {
	Format(results []error) (string, error)
}

// ForOutputFormat returns the formatter for the configured output format, defaulting to text.
func ForOutputFormat(f linter.OutputFormat) Formatter {
	switch f {
	case linter.OutputFormatJSON:
		return NewJSONFormatter()
	case linter.OutputFormatSummary:
		return NewSummaryFormatter()
	default:
		return NewTextFormatter()
	}
}

type counts struct {
	errors, warnings, hints int
}

func (c *counts) add(s diagnostic.Severity) {
	switch s {
	case diagnostic.SeverityError:
		c.errors++
	case diagnostic.SeverityWarning:
		c.warnings++
	case diagnostic.SeverityHint:
		c.hints++
	}
}

func asDiagnostic(err error) (diagnostic.Diagnostic, bool) {
	var d diagnostic.Diagnostic
	if errors.As(err, &d) {
		return d, true
	}
	return d, false
}

func ruleName(d diagnostic.Diagnostic) string {
	if d.Plugin == "" || d.Plugin == linter.PluginCore {
		return d.Rule
	}
	return d.Plugin + "/" + d.Rule
}
