package linter

import (
	"context"
	"log/slog"
	"runtime"
	"slices"

	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/diagnostic"
	"github.com/speakeasy-api/jsxlint/errors"
	"golang.org/x/sync/errgroup"
)

// Parser produces a syntax tree for one source file
type Parser interface {
	Parse(ctx context.Context, filename string, source []byte) (*ast.Program, error)
}

// Source is one file submitted for linting
type Source struct {
	Filename string
	Content  []byte
}

// ActiveRule is a rule selected by configuration together with its effective severity
type ActiveRule struct {
	Rule     Rule
	Severity diagnostic.Severity
}

// Option configures a Linter
type Option func(*Linter)

// WithLogger sets the logger used for debug output. Defaults to discarding.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Linter) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithConcurrency bounds the number of files linted at once by LintSources. Defaults to GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(l *Linter) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

// Linter is the main linting engine. It is immutable once built and safe for concurrent use.
type Linter struct {
	config   *Config
	registry *Registry
	logger   *slog.Logger

	concurrency int

	active []ActiveRule
	byKind [ast.KindCount][]int // node kind -> indexes into active, in registration order
}

// NewLinter resolves the active rule set from config and builds the dispatch table.
// Unknown rule names and unknown plugins in config are reported as errors.
func NewLinter(config *Config, registry *Registry, opts ...Option) (*Linter, error) {
	if config == nil {
		config = NewConfig()
	}

	l := &Linter{
		config:      config,
		registry:    registry,
		logger:      slog.New(slog.DiscardHandler),
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := l.validateConfig(); err != nil {
		return nil, err
	}

	l.active = l.resolveActiveRules()
	for i, ar := range l.active {
		kinds := ar.Rule.NodeKinds()
		if kinds == nil {
			for k := range l.byKind {
				l.byKind[k] = append(l.byKind[k], i)
			}
			continue
		}
		for _, k := range kinds {
			if int(k) < len(l.byKind) && !slices.Contains(l.byKind[k], i) {
				l.byKind[k] = append(l.byKind[k], i)
			}
		}
	}

	return l, nil
}

// Registry returns the rule registry for documentation generation
func (l *Linter) Registry() *Registry {
	return l.registry
}

// Config returns the configuration the linter was built from
func (l *Linter) Config() *Config {
	return l.config
}

// ActiveRules returns the rules that will run, in registration order
func (l *Linter) ActiveRules() []ActiveRule {
	return slices.Clone(l.active)
}

func (l *Linter) validateConfig() error {
	for name := range l.config.Plugins {
		if !l.registry.HasPlugin(name) {
			return errors.ErrUnknownPlugin.Wrapf("%s", name)
		}
	}
	for name := range l.config.Rules {
		if _, err := l.registry.Lookup(name); err != nil {
			return err
		}
	}
	return nil
}

func (l *Linter) resolveActiveRules() []ActiveRule {
	ruleConfigs := make(map[string]RuleConfig, len(l.config.Rules))
	for name, rc := range l.config.Rules {
		rule, _ := l.registry.Lookup(name)
		ruleConfigs[rule.Name()] = rc
	}

	var active []ActiveRule
	for _, rule := range l.registry.AllRules() {
		if !l.config.Plugins.Enabled(rule.Plugin()) {
			l.logger.Debug("rule skipped, plugin disabled", "rule", rule.Name(), "plugin", rule.Plugin())
			continue
		}

		enabled := true
		severity := rule.DefaultSeverity()

		// Category config is overridden by individual rule config
		if catConfig, ok := l.config.Categories[rule.Category()]; ok {
			if catConfig.Enabled != nil {
				enabled = *catConfig.Enabled
			}
			if catConfig.Severity != nil {
				severity = *catConfig.Severity
			}
		}
		if rc, ok := ruleConfigs[rule.Name()]; ok {
			if rc.Enabled != nil {
				enabled = *rc.Enabled
			}
			severity = rc.GetSeverity(severity)
		}

		if !enabled {
			l.logger.Debug("rule disabled by config", "rule", rule.Name())
			continue
		}
		active = append(active, ActiveRule{Rule: rule, Severity: severity})
	}

	l.logger.Debug("resolved active rules", "count", len(active), "registered", l.registry.Len())
	return active
}

// LintFile runs the active rules over root using a fresh context and returns the
// diagnostics in the order they were reported: by node in pre-order, then by rule
// registration order.
func (l *Linter) LintFile(filename string, root ast.Node) []diagnostic.Diagnostic {
	ctx := l.NewContext(filename)
	l.Dispatch(root, ctx)
	return ctx.Diagnostics()
}

// NewContext creates the per-file context for filename using the configured settings and plugins
func (l *Linter) NewContext(filename string) *Context {
	return NewContext(filename, l.config.Settings, l.config.Plugins)
}

// Dispatch walks root once and hands every node to each interested active rule.
func (l *Linter) Dispatch(root ast.Node, ctx *Context) {
	visited := 0
	for node := range ast.Walk(root) {
		visited++
		k := node.Kind()
		if int(k) >= len(l.byKind) {
			continue
		}
		for _, i := range l.byKind[k] {
			ar := l.active[i]
			ctx.enter(ar.Rule, ar.Severity)
			ar.Rule.Run(node, ctx)
			ctx.leave()
		}
	}
	l.logger.Debug("dispatched file", "file", ctx.Filename(), "nodes", visited, "diagnostics", ctx.Len())
}

// FileResult is the outcome of linting one source
type FileResult struct {
	File        string
	Diagnostics []diagnostic.Diagnostic
	// Err is set when the file could not be parsed; no rules ran for it
	Err error
}

// LintSources parses and lints sources concurrently. Results are returned in input order.
// A parse failure is recorded on that file's result and does not stop the others;
// cancelling ctx leaves files that have not started with ctx's error, and the partial
// output is returned together with that error.
func (l *Linter) LintSources(ctx context.Context, parser Parser, sources []Source) (*Output, error) {
	results := make([]FileResult, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for i, src := range sources {
		results[i].File = src.Filename
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}

			program, err := parser.Parse(gctx, src.Filename, src.Content)
			if err != nil {
				l.logger.Debug("failed to parse file", "file", src.Filename, "error", err)
				results[i].Err = err
				return nil
			}

			results[i].Diagnostics = l.LintFile(src.Filename, program)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Output{
		Results: results,
		Format:  l.config.OutputFormat,
	}, ctx.Err()
}

// Output represents the result of linting
type Output struct {
	Results []FileResult
	Format  OutputFormat
}

// Diagnostics returns every diagnostic of every file, sorted by location
func (o *Output) Diagnostics() []diagnostic.Diagnostic {
	var all []diagnostic.Diagnostic
	for _, r := range o.Results {
		all = append(all, r.Diagnostics...)
	}
	diagnostic.Sort(all)
	return all
}

// Errors returns the per-file failures, such as syntax errors
func (o *Output) Errors() []error {
	var errs []error
	for _, r := range o.Results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errs
}

// Problems returns the per-file failures followed by every diagnostic sorted by location,
// in the shape the formatters consume
func (o *Output) Problems() []error {
	problems := o.Errors()
	for _, d := range o.Diagnostics() {
		problems = append(problems, d)
	}
	return problems
}

// HasErrors reports whether any file failed or produced an error-severity diagnostic
func (o *Output) HasErrors() bool {
	return o.ErrorCount() > 0
}

// ErrorCount returns the number of failed files plus error-severity diagnostics
func (o *Output) ErrorCount() int {
	count := 0
	for _, r := range o.Results {
		if r.Err != nil {
			count++
		}
		for _, d := range r.Diagnostics {
			if d.Severity == diagnostic.SeverityError {
				count++
			}
		}
	}
	return count
}
