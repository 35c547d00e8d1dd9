// Package diagnostic provides the value type rules use to report a single violation.
package diagnostic

import (
	"fmt"
	"slices"
	"strings"

	"github.com/speakeasy-api/jsxlint/ast"
)

// Field is a named value interpolated into a diagnostic's message and help text
// wherever `{Key}` appears.
type Field struct {
	Key   string
	Value string
}

// Label is a secondary span with an explanatory message.
type Label struct {
	Span    ast.Span
	Message string
}

// Diagnostic describes one reported violation.
//
// Diagnostics are values: the With* methods return modified copies and never alter
// the receiver, so a diagnostic can be shared freely once built.
type Diagnostic struct {
	// Rule is the name of the rule that reported the diagnostic. It is filled in by the
	// lint context when a rule leaves it empty.
	Rule string
	// Plugin is the plugin namespace of the reporting rule.
	Plugin string
	// Severity is replaced by the reporting rule's effective severity when the
	// diagnostic is recorded during dispatch.
	Severity Severity
	// File is the path of the linted file.
	File string
	// Span is the primary location, chosen by the rule to point at the most actionable spot.
	Span ast.Span

	MessageTemplate string
	HelpTemplate    string
	Fields          []Field
	Labels          []Label
}

// New creates a warning diagnostic at span. The message may contain `{key}`
// placeholders resolved from fields added with WithField.
func New(span ast.Span, message string) Diagnostic {
	return Diagnostic{
		Severity:        SeverityWarning,
		Span:            span,
		MessageTemplate: message,
	}
}

// WithHelp returns a copy of d with help text attached.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.HelpTemplate = help
	return d
}

// WithField returns a copy of d with an interpolation field appended.
func (d Diagnostic) WithField(key, value string) Diagnostic {
	d.Fields = append(slices.Clip(d.Fields), Field{Key: key, Value: value})
	return d
}

// WithLabel returns a copy of d with a secondary labelled span appended.
func (d Diagnostic) WithLabel(span ast.Span, message string) Diagnostic {
	d.Labels = append(slices.Clip(d.Labels), Label{Span: span, Message: message})
	return d
}

// Message returns the primary message with fields interpolated.
func (d Diagnostic) Message() string {
	return d.interpolate(d.MessageTemplate)
}

// Help returns the help text with fields interpolated, or "" when there is none.
func (d Diagnostic) Help() string {
	return d.interpolate(d.HelpTemplate)
}

// Field returns the value of the named interpolation field.
func (d Diagnostic) Field(key string) (string, bool) {
	for _, f := range d.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// GetLineNumber returns the 1-based line of the primary span.
func (d Diagnostic) GetLineNumber() int {
	return d.Span.Line
}

// GetColumnNumber returns the 1-based column of the primary span.
func (d Diagnostic) GetColumnNumber() int {
	return d.Span.Column
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("[%d:%d] %s %s %s", d.Span.Line, d.Span.Column, d.Severity, d.Rule, d.Message())
}

func (d Diagnostic) interpolate(template string) string {
	if template == "" || len(d.Fields) == 0 {
		return template
	}
	pairs := make([]string, 0, len(d.Fields)*2)
	for _, f := range d.Fields {
		pairs = append(pairs, "{"+f.Key+"}", f.Value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// Sort orders diagnostics by file, position, severity, rule and message.
// Diagnostics comparing equal keep their relative order.
func Sort(diags []Diagnostic) {
	slices.SortStableFunc(diags, compare)
}

func compare(a, b Diagnostic) int {
	if c := strings.Compare(a.File, b.File); c != 0 {
		return c
	}
	if a.Span.Start != b.Span.Start {
		if a.Span.Start < b.Span.Start {
			return -1
		}
		return 1
	}
	if a.Span.End != b.Span.End {
		if a.Span.End < b.Span.End {
			return -1
		}
		return 1
	}
	if a.Severity != b.Severity {
		return int(a.Severity) - int(b.Severity)
	}
	if c := strings.Compare(a.Rule, b.Rule); c != 0 {
		return c
	}
	return strings.Compare(a.Message(), b.Message())
}
