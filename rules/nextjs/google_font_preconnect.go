package nextjs

import (
	"strings"

	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/diagnostic"
	"github.com/speakeasy-api/jsxlint/jsx"
	"github.com/speakeasy-api/jsxlint/linter"
)

const RuleGoogleFontPreconnect = "google-font-preconnect"

const googleFontsStaticOrigin = "https://fonts.gstatic.com"

type GoogleFontPreconnectRule struct{}

func (r *GoogleFontPreconnectRule) Name() string     { return RuleGoogleFontPreconnect }
func (r *GoogleFontPreconnectRule) Plugin() string   { return Plugin }
func (r *GoogleFontPreconnectRule) Category() string { return linter.CategoryCorrectness }
func (r *GoogleFontPreconnectRule) Summary() string {
	return "Ensure `preconnect` is used with Google Fonts."
}
func (r *GoogleFontPreconnectRule) Description() string {
	return "A `<link>` whose literal `href` points at `https://fonts.gstatic.com` must carry `rel=\"preconnect\"`. The `rel` value must match exactly; space separated values are not split. Components listed in the `nextjs.components` setting are treated as the element they alias."
}
func (r *GoogleFontPreconnectRule) GoodExample() string {
	return `<link rel="preconnect" href="https://fonts.gstatic.com" />`
}
func (r *GoogleFontPreconnectRule) BadExample() string {
	return `<link href="https://fonts.gstatic.com" />`
}
func (r *GoogleFontPreconnectRule) Rationale() string {
	return "Preconnecting to the font origin lets the browser set up the connection before the font is requested."
}
func (r *GoogleFontPreconnectRule) Link() string {
	return "https://nextjs.org/docs/messages/google-font-preconnect"
}
func (r *GoogleFontPreconnectRule) DefaultSeverity() diagnostic.Severity {
	return diagnostic.SeverityWarning
}
func (r *GoogleFontPreconnectRule) NodeKinds() []ast.Kind {
	return []ast.Kind{ast.KindJSXOpeningElement}
}

func (r *GoogleFontPreconnectRule) Run(node ast.Node, ctx *linter.Context) {
	el, ok := node.(*ast.JSXOpeningElement)
	if !ok {
		return
	}
	if name, ok := jsx.ElementType(el, ctx.Settings(), Plugin); !ok || name != "link" {
		return
	}

	href, ok := jsx.AttributeLiteral(el, "href")
	if !ok || !strings.HasPrefix(href, googleFontsStaticOrigin) {
		return
	}

	if rel, ok := jsx.AttributeLiteral(el, "rel"); ok && rel == "preconnect" {
		return
	}

	ctx.Diagnostic(diagnostic.New(jsx.NameSpan(el), "`rel=\"preconnect\"` is missing from Google Font.").
		WithHelp("See: https://nextjs.org/docs/messages/google-font-preconnect"))
}
