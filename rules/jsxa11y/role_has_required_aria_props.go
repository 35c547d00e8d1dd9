package jsxa11y

import (
	"strings"

	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/diagnostic"
	"github.com/speakeasy-api/jsxlint/jsx"
	"github.com/speakeasy-api/jsxlint/linter"
)

const RuleRoleHasRequiredAriaProps = "role-has-required-aria-props"

// requiredAriaProps maps a role to the properties an element with that role must carry,
// in the order they are reported.
var requiredAriaProps = map[string][]string{
	"checkbox":  {"aria-checked"},
	"radio":     {"aria-checked"},
	"combobox":  {"aria-controls", "aria-expanded"},
	"tab":       {"aria-selected"},
	"slider":    {"aria-valuemax", "aria-valuemin", "aria-valuenow"},
	"scrollbar": {"aria-valuemax", "aria-valuemin", "aria-valuenow", "aria-orientation", "aria-controls"},
	"heading":   {"aria-level"},
	"option":    {"aria-selected"},
}

type RoleHasRequiredAriaPropsRule struct{}

func (r *RoleHasRequiredAriaPropsRule) Name() string     { return RuleRoleHasRequiredAriaProps }
func (r *RoleHasRequiredAriaPropsRule) Plugin() string   { return Plugin }
func (r *RoleHasRequiredAriaPropsRule) Category() string { return linter.CategoryCorrectness }
func (r *RoleHasRequiredAriaPropsRule) Summary() string {
	return "Elements with ARIA roles must have all required attributes for that role."
}
func (r *RoleHasRequiredAriaPropsRule) Description() string {
	return "Enforces that elements with a literal `role` carry every ARIA property that role requires. Every element is checked, whatever its tag name."
}
func (r *RoleHasRequiredAriaPropsRule) Rationale() string {
	return "Certain ARIA roles require specific attributes to express necessary semantics for assistive technology."
}
func (r *RoleHasRequiredAriaPropsRule) GoodExample() string {
	return `<div role="checkbox" aria-checked="false" />`
}
func (r *RoleHasRequiredAriaPropsRule) BadExample() string {
	return `<div role="checkbox" />`
}
func (r *RoleHasRequiredAriaPropsRule) Link() string {
	return "https://github.com/jsx-eslint/eslint-plugin-jsx-a11y/blob/main/docs/rules/role-has-required-aria-props.md"
}
func (r *RoleHasRequiredAriaPropsRule) DefaultSeverity() diagnostic.Severity {
	return diagnostic.SeverityWarning
}
func (r *RoleHasRequiredAriaPropsRule) NodeKinds() []ast.Kind {
	return []ast.Kind{ast.KindJSXOpeningElement}
}

func (r *RoleHasRequiredAriaPropsRule) Run(node ast.Node, ctx *linter.Context) {
	el, ok := node.(*ast.JSXOpeningElement)
	if !ok {
		return
	}

	roleAttr, ok := jsx.FindAttribute(el, "role")
	if !ok {
		return
	}
	roleValue, ok := jsx.LiteralStringValue(roleAttr)
	if !ok {
		return
	}

	for _, role := range strings.Fields(roleValue) {
		for _, prop := range requiredAriaProps[role] {
			if jsx.HasAttribute(el, prop) {
				continue
			}
			ctx.Diagnostic(diagnostic.New(roleAttr.Span(), "`{role}` role is missing required aria props `{props}`.").
				WithHelp("Add missing aria props `{props}` to the element with `{role}` role.").
				WithField("role", role).
				WithField("props", prop))
		}
	}
}
