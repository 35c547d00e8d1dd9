package nextjs_test

import (
	"testing"

	"github.com/speakeasy-api/jsxlint/diagnostic"
	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/parser"
	"github.com/speakeasy-api/jsxlint/rules"
	"github.com/speakeasy-api/jsxlint/rules/nextjs"
	"github.com/stretchr/testify/require"
)

func componentSettings(name, element string) linter.Settings {
	return linter.Settings{
		nextjs.Plugin: map[string]any{
			"components": map[string]any{name: element},
		},
	}
}

func lint(t *testing.T, rule, src string) []diagnostic.Diagnostic {
	t.Helper()

	reg, err := rules.NewRegistry().Subset(rule)
	require.NoError(t, err)

	l, err := linter.NewLinter(linter.NewConfig().EnablePlugins(nextjs.Plugin), reg)
	require.NoError(t, err)

	program, err := parser.New().Parse(t.Context(), "page.jsx", []byte(src))
	require.NoError(t, err)

	return l.LintFile("page.jsx", program)
}
