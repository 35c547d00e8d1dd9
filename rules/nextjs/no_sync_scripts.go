package nextjs

import (
	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/diagnostic"
	"github.com/speakeasy-api/jsxlint/jsx"
	"github.com/speakeasy-api/jsxlint/linter"
)

const RuleNoSyncScripts = "no-sync-scripts"

type NoSyncScriptsRule struct{}

func (r *NoSyncScriptsRule) Name() string     { return RuleNoSyncScripts }
func (r *NoSyncScriptsRule) Plugin() string   { return Plugin }
func (r *NoSyncScriptsRule) Category() string { return linter.CategoryCorrectness }
func (r *NoSyncScriptsRule) Summary() string {
	return "Prevent synchronous scripts."
}
func (r *NoSyncScriptsRule) Description() string {
	return "A `<script>` element with a `src` must also carry `async` or `defer`. Attribute names are matched exactly and spread attributes are ignored. Components listed in the `nextjs.components` setting are treated as the element they alias."
}
func (r *NoSyncScriptsRule) Rationale() string {
	return "Synchronous scripts block the browser from parsing and rendering the rest of the page."
}
func (r *NoSyncScriptsRule) GoodExample() string {
	return `<script src="https://example.com/a.js" async></script>`
}
func (r *NoSyncScriptsRule) BadExample() string {
	return `<script src="https://example.com/a.js"></script>`
}
func (r *NoSyncScriptsRule) Link() string {
	return "https://nextjs.org/docs/messages/no-sync-scripts"
}
func (r *NoSyncScriptsRule) DefaultSeverity() diagnostic.Severity {
	return diagnostic.SeverityWarning
}
func (r *NoSyncScriptsRule) NodeKinds() []ast.Kind {
	return []ast.Kind{ast.KindJSXOpeningElement}
}

func (r *NoSyncScriptsRule) Run(node ast.Node, ctx *linter.Context) {
	el, ok := node.(*ast.JSXOpeningElement)
	if !ok {
		return
	}
	if name, ok := jsx.ElementType(el, ctx.Settings(), Plugin); !ok || name != "script" {
		return
	}

	_, hasSrc := jsx.FindAttributeExact(el, "src")
	_, hasAsync := jsx.FindAttributeExact(el, "async")
	_, hasDefer := jsx.FindAttributeExact(el, "defer")

	if hasSrc && !hasAsync && !hasDefer {
		ctx.Diagnostic(diagnostic.New(jsx.NameSpan(el), "Prevent synchronous scripts.").
			WithHelp("See https://nextjs.org/docs/messages/no-sync-scripts"))
	}
}
