package jsx_test

import (
	"testing"

	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/jsx"
	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func firstOpening(t *testing.T, src string) *ast.JSXOpeningElement {
	t.Helper()

	program, err := parser.New().Parse(t.Context(), "test.jsx", []byte(src))
	require.NoError(t, err)

	for node := range ast.Walk(program) {
		if el, ok := node.(*ast.JSXOpeningElement); ok {
			return el
		}
	}
	require.FailNow(t, "no opening element found", src)
	return nil
}

func TestFindAttribute_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		attr     string
		expected string
	}{
		{name: "exact case", src: `<div role="checkbox" />`, attr: "role", expected: "role"},
		{name: "case insensitive", src: `<div ROLE="checkbox" />`, attr: "role", expected: "ROLE"},
		{name: "first match wins", src: `<div Role="a" role="b" />`, attr: "role", expected: "Role"},
		{name: "boolean shorthand", src: `<script async />`, attr: "async", expected: "async"},
		{name: "after spread", src: `<div {...props} role="tab" />`, attr: "role", expected: "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			el := firstOpening(t, tt.src)
			attr, ok := jsx.FindAttribute(el, tt.attr)
			require.True(t, ok)
			assert.Equal(t, tt.expected, attr.Name.Name)
		})
	}
}

func TestFindAttribute_NotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		attr string
	}{
		{name: "no attributes", src: `<div />`, attr: "role"},
		{name: "only spread", src: `<div {...{role: "checkbox"}} />`, attr: "role"},
		{name: "similar name", src: `<div aria-chcked />`, attr: "aria-checked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			el := firstOpening(t, tt.src)
			_, ok := jsx.FindAttribute(el, tt.attr)
			assert.False(t, ok)
			assert.False(t, jsx.HasAttribute(el, tt.attr))
		})
	}
}

func TestFindAttribute_NilElement(t *testing.T) {
	t.Parallel()

	_, ok := jsx.FindAttribute(nil, "role")
	assert.False(t, ok)
	_, ok = jsx.FindAttributeExact(nil, "role")
	assert.False(t, ok)
}

func TestFindAttributeExact_CaseSensitive(t *testing.T) {
	t.Parallel()

	el := firstOpening(t, `<script SRC="a.js" />`)
	_, ok := jsx.FindAttributeExact(el, "src")
	assert.False(t, ok)
	_, ok = jsx.FindAttributeExact(el, "SRC")
	assert.True(t, ok)
}

func TestLiteralStringValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		expected string
		ok       bool
	}{
		{name: "double quoted", src: `<div role="checkbox" />`, expected: "checkbox", ok: true},
		{name: "single quoted", src: `<div role='slider' />`, expected: "slider", ok: true},
		{name: "empty string", src: `<div role="" />`, expected: "", ok: true},
		{name: "boolean shorthand", src: `<div role />`, ok: false},
		{name: "identifier expression", src: `<div role={role} />`, ok: false},
		{name: "logical expression", src: `<div role={role || 'button'} />`, ok: false},
		{name: "string inside expression", src: `<div role={"checkbox"} />`, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			el := firstOpening(t, tt.src)
			attr, found := jsx.FindAttribute(el, "role")
			require.True(t, found)

			value, ok := jsx.LiteralStringValue(attr)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestAttributeLiteral_Missing(t *testing.T) {
	t.Parallel()

	el := firstOpening(t, `<link href="https://fonts.gstatic.com" />`)
	_, ok := jsx.AttributeLiteral(el, "rel")
	assert.False(t, ok)

	href, ok := jsx.AttributeLiteral(el, "HREF")
	require.True(t, ok)
	assert.Equal(t, "https://fonts.gstatic.com", href)
}

func TestElementName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		expected string
		ok       bool
	}{
		{name: "dom element", src: `<div />`, expected: "div", ok: true},
		{name: "component", src: `<MyComponent />`, expected: "MyComponent", ok: true},
		{name: "member expression", src: `<Foo.Bar />`, ok: false},
		{name: "namespaced", src: `<svg:rect />`, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			name, ok := jsx.ElementName(firstOpening(t, tt.src))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestElementType_Aliasing(t *testing.T) {
	t.Parallel()

	settings := linter.Settings{
		"jsx-a11y": map[string]any{
			"components": map[string]any{
				"MyComponent": "div",
				"Broken":      42,
			},
		},
	}

	tests := []struct {
		name      string
		src       string
		settings  jsx.Settings
		namespace string
		expected  string
	}{
		{name: "alias resolved", src: `<MyComponent />`, settings: settings, namespace: "jsx-a11y", expected: "div"},
		{name: "other namespace ignored", src: `<MyComponent />`, settings: settings, namespace: "nextjs", expected: "MyComponent"},
		{name: "non-string alias ignored", src: `<Broken />`, settings: settings, namespace: "jsx-a11y", expected: "Broken"},
		{name: "no settings", src: `<MyComponent />`, settings: nil, namespace: "jsx-a11y", expected: "MyComponent"},
		{name: "empty settings", src: `<span />`, settings: linter.Settings{}, namespace: "jsx-a11y", expected: "span"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			typ, ok := jsx.ElementType(firstOpening(t, tt.src), tt.settings, tt.namespace)
			require.True(t, ok)
			assert.Equal(t, tt.expected, typ)
		})
	}
}

func TestNameSpan(t *testing.T) {
	t.Parallel()

	el := firstOpening(t, `<script src="a.js" />`)
	span := jsx.NameSpan(el)
	assert.Equal(t, 1, span.Line)
	assert.Equal(t, 2, span.Column)
	assert.Equal(t, uint32(6), span.Len())
}
