package tester

import (
	"fmt"
	"strings"

	"github.com/speakeasy-api/jsxlint/diagnostic"
	"github.com/speakeasy-api/jsxlint/linter"
)

// Report holds the results of one tester run
type Report struct {
	Rule linter.Rule
	Pass []Result
	Fail []Result
}

// Results returns the pass results followed by the fail results.
func (r *Report) Results() []Result {
	return append(append([]Result(nil), r.Pass...), r.Fail...)
}

// Mismatches returns the results that do not match their expectation.
func (r *Report) Mismatches() []Result {
	var out []Result
	for _, res := range r.Results() {
		if !res.OK() {
			out = append(out, res)
		}
	}
	return out
}

// DiagnosticCount returns the number of diagnostics across all fail fixtures.
func (r *Report) DiagnosticCount() int {
	n := 0
	for _, res := range r.Fail {
		n += len(res.Diagnostics)
	}
	return n
}

// Render formats the fail fixtures' diagnostics for snapshot comparison. Each
// diagnostic carries its rule, position, message, help and the source text it points at.
func (r *Report) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", linter.QualifiedName(r.Rule))

	for _, res := range r.Fail {
		fmt.Fprintf(&b, "\n## %s\n", res)
		if res.Err != nil {
			fmt.Fprintf(&b, "error: %s\n", res.Err)
			continue
		}
		for _, d := range res.Diagnostics {
			renderDiagnostic(&b, d, res.Fixture.Source)
		}
	}
	return b.String()
}

func renderDiagnostic(b *strings.Builder, d diagnostic.Diagnostic, source string) {
	fmt.Fprintf(b, "%s %s %s:%d:%d %s\n", d.Severity, ruleLabel(d), d.File, d.GetLineNumber(), d.GetColumnNumber(), d.Message())
	if text, ok := spanText(source, d.Span.Start, d.Span.End); ok {
		fmt.Fprintf(b, "  at: %s\n", text)
	}
	for _, l := range d.Labels {
		if text, ok := spanText(source, l.Span.Start, l.Span.End); ok {
			fmt.Fprintf(b, "  label %d:%d %s: %s\n", l.Span.Line, l.Span.Column, l.Message, text)
		}
	}
	if help := d.Help(); help != "" {
		fmt.Fprintf(b, "  help: %s\n", help)
	}
}

func ruleLabel(d diagnostic.Diagnostic) string {
	if d.Plugin == "" || d.Plugin == linter.PluginCore {
		return d.Rule
	}
	return d.Plugin + "/" + d.Rule
}

func spanText(source string, start, end uint32) (string, bool) {
	if start > end || int(end) > len(source) {
		return "", false
	}
	return source[start:end], true
}
