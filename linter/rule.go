package linter

import (
	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/diagnostic"
)

// PluginCore is the plugin namespace of rules that are always active.
const PluginCore = "core"

// Rule categories
const (
	// CategoryCorrectness represents rules that catch code which is outright wrong or useless.
	CategoryCorrectness = "correctness"
	// CategorySuspicious represents rules that catch code which is most likely wrong.
	CategorySuspicious = "suspicious"
	// CategoryStyle represents rules that enforce idiomatic or consistent code.
	CategoryStyle = "style"
)

// Rule represents a single lint check.
//
// Rules are stateless: Run must not keep anything between calls, so one rule value can
// serve every file of a run, concurrently. A rule only reads the node it is given and
// reports through the context.
type Rule interface {
	// Name returns the unique identifier for this rule (e.g., "no-sync-scripts")
	Name() string

	// Plugin returns the plugin namespace the rule belongs to (e.g., "nextjs").
	// Rules in PluginCore are always active.
	Plugin() string

	// Category returns the rule category (e.g., "correctness")
	Category() string

	// Summary returns a short summary of what the rule checks
	Summary() string

	// Description returns a human-readable description of what the rule checks
	Description() string

	// Link returns an optional URL to documentation for this rule
	Link() string

	// DefaultSeverity returns the severity used when configuration does not override it
	DefaultSeverity() diagnostic.Severity

	// NodeKinds returns the node kinds the rule wants to see. Run is only called for
	// nodes of these kinds. A nil result means every node.
	NodeKinds() []ast.Kind

	// Run inspects node and reports violations through ctx. It must return immediately
	// for nodes it does not handle, and must decline rather than guess when the
	// structure it needs cannot be determined statically.
	Run(node ast.Node, ctx *Context)
}

// DocumentedRule provides extended documentation for a rule
type DocumentedRule interface {
	Rule

	// GoodExample returns source showing correct usage
	GoodExample() string

	// BadExample returns source showing incorrect usage
	BadExample() string

	// Rationale explains why this rule exists
	Rationale() string
}

// QualifiedName returns the rule name prefixed with its plugin, e.g. "nextjs/no-sync-scripts".
func QualifiedName(rule Rule) string {
	if rule.Plugin() == "" || rule.Plugin() == PluginCore {
		return rule.Name()
	}
	return rule.Plugin() + "/" + rule.Name()
}
