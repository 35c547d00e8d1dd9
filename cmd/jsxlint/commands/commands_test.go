package commands_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/speakeasy-api/jsxlint/cmd/jsxlint/commands"
	"github.com/speakeasy-api/jsxlint/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const syncScript = `export default function Page() { return <script src="/a.js" />; }` + "\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(t.Context())
	return out.String(), err
}

func TestLint_PluginDisabledByDefault(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := writeFile(t, dir, "page.jsx", syncScript)
	config := writeFile(t, dir, "jsxlint.yaml", "rules: {}\n")

	out, err := execute(t, "lint", "--config", config, file)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestLint_PluginFlagReportsWarning(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := writeFile(t, dir, "page.jsx", syncScript)
	config := writeFile(t, dir, "jsxlint.yaml", "rules: {}\n")

	out, err := execute(t, "lint", "--config", config, "--plugin", "nextjs", "--no-color", file)
	require.NoError(t, err, "warnings should not fail the run")
	assert.Contains(t, out, file+":1:")
	assert.Contains(t, out, "nextjs/no-sync-scripts")
	assert.Contains(t, out, "Prevent synchronous scripts.")
	assert.Contains(t, out, "1 problems (0 errors, 1 warnings, 0 hints)")
}

func TestLint_ErrorSeverityFailsRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := writeFile(t, dir, "page.jsx", syncScript)
	config := writeFile(t, dir, "jsxlint.yaml", `plugins:
  nextjs: true
rules:
  no-sync-scripts: error
`)

	out, err := execute(t, "lint", "--config", config, "--no-color", file)
	require.Error(t, err)
	assert.True(t, errors.Is(err, commands.ErrProblemsFound))
	assert.Contains(t, out, "1 errors")
}

func TestLint_JSONFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := writeFile(t, dir, "page.jsx", syncScript)
	config := writeFile(t, dir, "jsxlint.json", `{"plugins": {"nextjs": true}, "output_format": "json"}`)

	out, err := execute(t, "lint", "--config", config, file)
	require.NoError(t, err)

	var decoded struct {
		Results []struct {
			Rule   string `json:"rule"`
			Plugin string `json:"plugin"`
			File   string `json:"file"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Results, 1)
	assert.Equal(t, "no-sync-scripts", decoded.Results[0].Rule)
	assert.Equal(t, "nextjs", decoded.Results[0].Plugin)
	assert.Equal(t, file, decoded.Results[0].File)
}

func TestLint_DisableRule(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := writeFile(t, dir, "page.jsx", syncScript)
	config := writeFile(t, dir, "jsxlint.toml", "[plugins]\nnextjs = true\n")

	out, err := execute(t, "lint", "--config", config, "--disable", "no-sync-scripts", file)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestLint_RuleSelectionEnablesPlugin(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := writeFile(t, dir, "page.jsx", `export const A = () => (
  <div role="checkbox">
    <script src="/a.js" />
  </div>
);
`)
	config := writeFile(t, dir, "jsxlint.yaml", `plugins:
  jsx-a11y: true
rules:
  role-has-required-aria-props: error
`)

	out, err := execute(t, "lint", "--config", config, "--rule", "nextjs/no-sync-scripts", "--no-color", file)
	require.NoError(t, err)
	assert.Contains(t, out, "nextjs/no-sync-scripts")
	assert.NotContains(t, out, "role-has-required-aria-props")
}

func TestLint_WalksDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "src/page.tsx", syncScript)
	writeFile(t, dir, "src/nested/other.jsx", syncScript)
	writeFile(t, dir, "src/readme.md", "<script src=\"/a.js\" />")
	writeFile(t, dir, "node_modules/dep/index.jsx", syncScript)
	writeFile(t, dir, ".cache/page.jsx", syncScript)
	config := writeFile(t, dir, "jsxlint.yaml", "plugins:\n  nextjs: true\n")

	out, err := execute(t, "lint", "--config", config, "--no-color", filepath.Join(dir))
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "src", "page.tsx"))
	assert.Contains(t, out, filepath.Join(dir, "src", "nested", "other.jsx"))
	assert.NotContains(t, out, "node_modules")
	assert.NotContains(t, out, ".cache")
	assert.NotContains(t, out, "readme.md")
	assert.Contains(t, out, "2 problems")
}

func TestLint_SyntaxErrorIsReported(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := writeFile(t, dir, "broken.jsx", "const a = <div ;\n")
	config := writeFile(t, dir, "jsxlint.yaml", "rules: {}\n")

	out, err := execute(t, "lint", "--config", config, "--no-color", file)
	require.Error(t, err)
	assert.True(t, errors.Is(err, commands.ErrProblemsFound))
	assert.Contains(t, out, "broken.jsx")
}

func TestLint_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := writeFile(t, dir, "page.jsx", syncScript)
	valid := writeFile(t, dir, "valid.yaml", "rules: {}\n")
	unknownPlugin := writeFile(t, dir, "plugin.yaml", "plugins:\n  react-perf: true\n")
	unknownRule := writeFile(t, dir, "rule.yaml", "rules:\n  no-such-rule: error\n")
	invalid := writeFile(t, dir, "invalid.yaml", "rules:\n  no-sync-scripts: loud\n")

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "unknown plugin", args: []string{"lint", "--config", unknownPlugin, file}, wantErr: errors.ErrUnknownPlugin},
		{name: "unknown rule", args: []string{"lint", "--config", unknownRule, file}, wantErr: errors.ErrUnknownRule},
		{name: "invalid config", args: []string{"lint", "--config", invalid, file}, wantErr: errors.ErrInvalidConfig},
		{name: "unknown selected rule", args: []string{"lint", "--config", valid, "--rule", "nope", file}, wantErr: errors.ErrUnknownRule},
		{name: "missing config file", args: []string{"lint", "--config", filepath.Join(dir, "missing.yaml"), file}},
		{name: "missing path", args: []string{"lint", "--config", valid, filepath.Join(dir, "missing.jsx")}},
		{name: "unsupported format", args: []string{"lint", "--config", valid, "--format", "xml", file}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.False(t, errors.Is(err, commands.ErrProblemsFound))
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLint_DiscoversConfigInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "page.jsx", syncScript)
	writeFile(t, dir, "jsxlint.yml", "plugins:\n  nextjs: true\n")
	t.Chdir(dir)

	out, err := execute(t, "lint", "--no-color", "page.jsx")
	require.NoError(t, err)
	assert.Contains(t, out, "nextjs/no-sync-scripts")
}

func TestListRules(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "list-rules")
	require.NoError(t, err)
	assert.Contains(t, out, "CORRECTNESS")
	assert.Contains(t, out, "jsx-a11y/role-has-required-aria-props")
	assert.Contains(t, out, "nextjs/no-sync-scripts")
	assert.Contains(t, out, "nextjs/google-font-preconnect")
	assert.Contains(t, out, "3 rules total")
}

func TestListRules_PluginFilterJSON(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "list-rules", "--plugin", "nextjs", "--format", "json")
	require.NoError(t, err)

	var infos []struct {
		Name   string `json:"name"`
		Plugin string `json:"plugin"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 2)
	for _, info := range infos {
		assert.Equal(t, "nextjs", info.Plugin)
	}
}

func TestListRules_Errors(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "list-rules", "--plugin", "react-perf")
	require.Error(t, err)

	_, err = execute(t, "list-rules", "--format", "xml")
	require.Error(t, err)
}

func TestListRules_NoMatches(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "list-rules", "--category", "style")
	require.NoError(t, err)
	assert.Contains(t, out, "No rules found")
}

func TestDocs(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "docs")
	require.NoError(t, err)
	assert.Contains(t, out, "# Lint Rules Reference")
	assert.Contains(t, out, "### nextjs/no-sync-scripts")
	assert.Contains(t, out, "**Plugin:** jsx-a11y")
}

func TestDocs_JSONToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rules.json")
	out, err := execute(t, "docs", "--format", "json", "--output", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path) //nolint:gosec
	require.NoError(t, err)

	var decoded struct {
		Rules   []map[string]any `json:"rules"`
		Plugins []string         `json:"plugins"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded.Rules, 3)
	assert.Equal(t, []string{"core", "jsx-a11y", "nextjs"}, decoded.Plugins)
}
