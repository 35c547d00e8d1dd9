package tester

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/speakeasy-api/jsxlint/errors"
	"github.com/speakeasy-api/jsxlint/linter"
)

// Snapshot is the stored rendering of a rule's fail diagnostics
type Snapshot struct {
	path string
}

// NewSnapshot returns the snapshot of rule stored under dir as <plugin>_<rule>.snap.
func NewSnapshot(dir string, rule linter.Rule) *Snapshot {
	name := rule.Name()
	if rule.Plugin() != "" {
		name = rule.Plugin() + "_" + name
	}
	return &Snapshot{path: filepath.Join(dir, name+".snap")}
}

// Path returns the snapshot file path.
func (s *Snapshot) Path() string {
	return s.path
}

// Exists reports whether the snapshot has been written.
func (s *Snapshot) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Read returns the stored snapshot with line endings normalised.
func (s *Snapshot) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("snapshot %s not found: %w", s.path, err)
		}
		return "", fmt.Errorf("failed to read snapshot: %w", err)
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

// Write stores content, creating the snapshot directory as needed.
func (s *Snapshot) Write(content string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(content), 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
