package linter_test

import (
	"testing"

	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/diagnostic"
	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/parser"
	"github.com/stretchr/testify/require"
)

// mockRule reports once for every node of its kinds, and records what it saw.
type mockRule struct {
	name     string
	plugin   string
	category string
	severity diagnostic.Severity
	kinds    []ast.Kind
	seen     *[]string
	// reportAs is written into each diagnostic before it is recorded
	reportAs *diagnostic.Severity
}

func (r *mockRule) Name() string { return r.name }
func (r *mockRule) Plugin() string {
	if r.plugin == "" {
		return linter.PluginCore
	}
	return r.plugin
}
func (r *mockRule) Category() string {
	if r.category == "" {
		return linter.CategoryStyle
	}
	return r.category
}
func (r *mockRule) Summary() string                      { return r.name + " summary" }
func (r *mockRule) Description() string                  { return r.name + " description" }
func (r *mockRule) Link() string                         { return "" }
func (r *mockRule) DefaultSeverity() diagnostic.Severity { return r.severity }
func (r *mockRule) NodeKinds() []ast.Kind                { return r.kinds }

func (r *mockRule) Run(node ast.Node, ctx *linter.Context) {
	if r.seen != nil {
		*r.seen = append(*r.seen, r.name+":"+node.Kind().String())
	}
	if r.kinds != nil && node.Kind() != r.kinds[0] {
		return
	}
	d := diagnostic.New(node.Span(), "{rule} saw {kind}").
		WithField("rule", r.name).
		WithField("kind", node.Kind().String())
	if r.reportAs != nil {
		d.Severity = *r.reportAs
	}
	ctx.Diagnostic(d)
}

func openingRule(name, plugin string) *mockRule {
	return &mockRule{
		name:     name,
		plugin:   plugin,
		severity: diagnostic.SeverityWarning,
		kinds:    []ast.Kind{ast.KindJSXOpeningElement},
	}
}

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, err := parser.New().Parse(t.Context(), "test.jsx", []byte(src))
	require.NoError(t, err)
	return program
}
