// Package jsx provides read-only helpers for inspecting JSX elements and their attributes.
//
// Spread attributes (`{...props}`) are never treated as evidence for or against an
// attribute being present: their contents are unknown statically.
package jsx

import (
	"strings"

	"github.com/speakeasy-api/jsxlint/ast"
)

// FindAttribute returns the first named attribute of el whose name matches name
// case-insensitively. Spread attributes are skipped.
func FindAttribute(el *ast.JSXOpeningElement, name string) (*ast.JSXAttribute, bool) {
	if el == nil {
		return nil, false
	}
	for _, item := range el.Attributes {
		attr, ok := item.(*ast.JSXAttribute)
		if !ok {
			continue
		}
		if strings.EqualFold(attr.Name.Name, name) {
			return attr, true
		}
	}
	return nil, false
}

// FindAttributeExact is FindAttribute with a case-sensitive name comparison.
func FindAttributeExact(el *ast.JSXOpeningElement, name string) (*ast.JSXAttribute, bool) {
	if el == nil {
		return nil, false
	}
	for _, item := range el.Attributes {
		if attr, ok := item.(*ast.JSXAttribute); ok && attr.Name.Name == name {
			return attr, true
		}
	}
	return nil, false
}

// HasAttribute reports whether el has a named attribute matching name case-insensitively.
// A boolean shorthand attribute such as `async` counts as present.
func HasAttribute(el *ast.JSXOpeningElement, name string) bool {
	_, ok := FindAttribute(el, name)
	return ok
}

// LiteralStringValue returns the value of attr when it is a plain string literal.
//
// It reports false both for boolean shorthand attributes and for expression values.
// Callers must read false as "value unknown", not as "attribute missing".
func LiteralStringValue(attr *ast.JSXAttribute) (string, bool) {
	if attr == nil || attr.Value == nil {
		return "", false
	}
	lit, ok := attr.Value.(*ast.StringLiteral)
	if !ok {
		return "", false
	}
	return lit.Value, true
}

// AttributeLiteral combines FindAttribute and LiteralStringValue.
func AttributeLiteral(el *ast.JSXOpeningElement, name string) (string, bool) {
	attr, ok := FindAttribute(el, name)
	if !ok {
		return "", false
	}
	return LiteralStringValue(attr)
}
