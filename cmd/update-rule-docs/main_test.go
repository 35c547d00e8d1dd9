package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRulesTable(t *testing.T) {
	t.Parallel()

	table := generateRulesTable(linter.NewDocGenerator(rules.NewRegistry()))
	assert.Contains(t, table, "| Rule | Plugin | Severity | Summary |")
	assert.Contains(t, table, "[`nextjs/no-sync-scripts`](https://nextjs.org/docs/messages/no-sync-scripts) | nextjs | warning |")
	assert.Contains(t, table, "`jsx-a11y/role-has-required-aria-props`")
}

func TestUpdateReadmeFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(path, []byte("# Title\n\n"+startMarker+"\nold\n"+endMarker+"\n\nFooter\n"), 0o600))

	require.NoError(t, updateReadmeFile(path, "new table\n"))
	require.NoError(t, updateReadmeFile(path, "new table\n"))

	data, err := os.ReadFile(path) //nolint:gosec
	require.NoError(t, err)
	assert.Equal(t, "# Title\n\n"+startMarker+"\n\nnew table\n\n"+endMarker+"\n\nFooter\n", string(data))
}

func TestUpdateReadmeFile_MissingMarkers(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(path, []byte("# Title\n"), 0o600))

	err := updateReadmeFile(path, "table\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not find lint rules markers")
}
