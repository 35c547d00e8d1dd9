package jsx

import (
	"github.com/speakeasy-api/jsxlint/ast"
)

// Settings is the subset of lint settings element resolution needs.
type Settings interface {
	Components(namespace string) map[string]string
}

// ElementName returns the tag name of el when it is a plain identifier such as `div`
// or `MyComponent`. Member (`Foo.Bar`) and namespaced (`svg:rect`) names are reported
// as absent, as are nameless tags.
func ElementName(el *ast.JSXOpeningElement) (string, bool) {
	if el == nil || el.Name == nil || el.Name.Kind != ast.NameIdentifier || el.Name.Name == "" {
		return "", false
	}
	return el.Name.Name, true
}

// ElementType returns the element el renders, consulting the `components` alias table
// stored under namespace in settings before falling back to the literal tag name.
func ElementType(el *ast.JSXOpeningElement, settings Settings, namespace string) (string, bool) {
	name, ok := ElementName(el)
	if !ok {
		return "", false
	}
	if settings != nil {
		if alias, ok := settings.Components(namespace)[name]; ok && alias != "" {
			return alias, true
		}
	}
	return name, true
}

// NameSpan returns the span of el's tag name, or of el itself when it has no name.
func NameSpan(el *ast.JSXOpeningElement) ast.Span {
	if el.Name != nil {
		return el.Name.Span
	}
	return el.NodeSpan
}
