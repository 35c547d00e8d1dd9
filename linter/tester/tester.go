// Package tester runs a single rule over pass and fail fixtures and compares the
// diagnostics of the fail fixtures against a stored snapshot.
package tester

import (
	"context"
	"flag"
	"fmt"
	"maps"
	"testing"

	"github.com/speakeasy-api/jsxlint/diagnostic"
	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var updateSnapshots = flag.Bool("update-snapshots", false, "rewrite rule snapshots with the current diagnostics")

// DefaultFilename is used for fixtures that do not name a file.
const DefaultFilename = "fixture.jsx"

// DefaultSnapshotDir is where snapshots are stored, relative to the test's working directory.
const DefaultSnapshotDir = "testdata/snapshots"

// Fixture is one source sample fed to the rule under test
type Fixture struct {
	Source string
	// Filename selects the grammar by extension. Defaults to DefaultFilename.
	Filename string
	// Settings is handed to the rule unchanged
	Settings linter.Settings
	// Plugins overrides the default flags, which enable only the plugin owning the rule
	Plugins linter.Plugins
}

// Sources builds fixtures from bare source strings.
func Sources(sources ...string) []Fixture {
	fixtures := make([]Fixture, len(sources))
	for i, src := range sources {
		fixtures[i] = Fixture{Source: src}
	}
	return fixtures
}

func (f Fixture) filename() string {
	if f.Filename == "" {
		return DefaultFilename
	}
	return f.Filename
}

// Expectation is the outcome a fixture is tagged with
type Expectation int

const (
	// ExpectPass fixtures must yield zero diagnostics
	ExpectPass Expectation = iota
	// ExpectFail fixtures must yield at least one diagnostic
	ExpectFail
)

func (e Expectation) String() string {
	if e == ExpectFail {
		return "fail"
	}
	return "pass"
}

// Result is the outcome of running the rule over one fixture
type Result struct {
	Fixture     Fixture
	Expect      Expectation
	Index       int
	Diagnostics []diagnostic.Diagnostic
	// Err is set when the fixture could not be linted, e.g. a syntax error
	Err error
}

// OK reports whether the result matches its expectation.
func (r Result) OK() bool {
	if r.Err != nil {
		return false
	}
	if r.Expect == ExpectPass {
		return len(r.Diagnostics) == 0
	}
	return len(r.Diagnostics) > 0
}

func (r Result) String() string {
	return fmt.Sprintf("%s fixture %d (%s)", r.Expect, r.Index+1, r.Fixture.filename())
}

// Tester checks one rule against its fixtures
type Tester struct {
	registry    *linter.Registry
	ruleName    string
	pass        []Fixture
	fail        []Fixture
	parser      *parser.Parser
	snapshotDir string
}

// New creates a tester for the named rule of registry.
func New(registry *linter.Registry, ruleName string, pass, fail []Fixture) *Tester {
	return &Tester{
		registry:    registry,
		ruleName:    ruleName,
		pass:        pass,
		fail:        fail,
		parser:      parser.New(),
		snapshotDir: DefaultSnapshotDir,
	}
}

// WithSnapshotDir overrides the directory snapshots are read from and written to.
func (t *Tester) WithSnapshotDir(dir string) *Tester {
	t.snapshotDir = dir
	return t
}

// Run lints every fixture with a registry holding only the rule under test.
// An unknown rule name is returned as an error wrapping errors.ErrUnknownRule.
func (t *Tester) Run(ctx context.Context) (*Report, error) {
	rule, err := t.registry.Lookup(t.ruleName)
	if err != nil {
		return nil, err
	}
	sub, err := t.registry.Subset(rule.Name())
	if err != nil {
		return nil, err
	}

	report := &Report{Rule: rule}
	for i, f := range t.pass {
		report.Pass = append(report.Pass, t.runFixture(ctx, sub, rule, f, ExpectPass, i))
	}
	for i, f := range t.fail {
		report.Fail = append(report.Fail, t.runFixture(ctx, sub, rule, f, ExpectFail, i))
	}
	return report, nil
}

func (t *Tester) runFixture(ctx context.Context, sub *linter.Registry, rule linter.Rule, f Fixture, expect Expectation, index int) Result {
	result := Result{Fixture: f, Expect: expect, Index: index}

	cfg := linter.NewConfig()
	cfg.Plugins[rule.Plugin()] = true
	for name, enabled := range f.Plugins {
		// Flags for plugins outside the single-rule registry cannot change the outcome
		if sub.HasPlugin(name) {
			cfg.Plugins[name] = enabled
		}
	}
	if f.Settings != nil {
		cfg.Settings = maps.Clone(f.Settings)
	}

	l, err := linter.NewLinter(cfg, sub)
	if err != nil {
		result.Err = err
		return result
	}

	program, err := t.parser.Parse(ctx, f.filename(), []byte(f.Source))
	if err != nil {
		result.Err = err
		return result
	}

	result.Diagnostics = l.LintFile(f.filename(), program)
	return result
}

// Test runs the fixtures and asserts every result matches its expectation.
func (t *Tester) Test(tb testing.TB) *Report {
	tb.Helper()

	report, err := t.Run(tb.Context())
	require.NoError(tb, err)

	for _, r := range report.Results() {
		if !assert.NoError(tb, r.Err, "%s: %s", r, r.Fixture.Source) {
			continue
		}
		if r.Expect == ExpectPass {
			assert.Empty(tb, r.Diagnostics, "%s expected no diagnostics:\n%s", r, r.Fixture.Source)
		} else {
			assert.NotEmpty(tb, r.Diagnostics, "%s expected diagnostics:\n%s", r, r.Fixture.Source)
		}
	}
	return report
}

// TestAndSnapshot runs Test and then compares the rendered fail diagnostics with the
// stored snapshot. A missing snapshot is written; -update-snapshots rewrites it.
func (t *Tester) TestAndSnapshot(tb testing.TB) *Report {
	tb.Helper()

	report := t.Test(tb)
	snap := NewSnapshot(t.snapshotDir, report.Rule)
	got := report.Render()

	if *updateSnapshots || !snap.Exists() {
		require.NoError(tb, snap.Write(got))
		tb.Logf("wrote snapshot %s", snap.Path())
		return report
	}

	want, err := snap.Read()
	require.NoError(tb, err)
	assert.Equal(tb, want, got, "snapshot %s is out of date, rerun with -update-snapshots to accept", snap.Path())
	return report
}
