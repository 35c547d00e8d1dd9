package ast_test

import (
	"testing"

	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/stretchr/testify/assert"
)

func TestWalk_PreOrder(t *testing.T) {
	t.Parallel()

	role := &ast.JSXAttribute{
		Name:  ast.JSXName{Name: "role"},
		Value: &ast.StringLiteral{Value: "checkbox"},
	}
	spread := &ast.JSXSpreadAttribute{Argument: &ast.Generic{Type: "identifier"}}
	opening := &ast.JSXOpeningElement{
		Name:       &ast.JSXName{Name: "div"},
		Attributes: []ast.AttributeItem{role, spread},
	}
	text := &ast.JSXText{Value: "hi"}
	closing := &ast.JSXClosingElement{Name: &ast.JSXName{Name: "div"}}
	element := &ast.JSXElement{Opening: opening, Nodes: []ast.Node{text}, Closing: closing}
	program := &ast.Program{Body: []ast.Node{&ast.Generic{Type: "expression_statement", Nodes: []ast.Node{element}}}}

	var kinds []ast.Kind
	for node := range ast.Walk(program) {
		kinds = append(kinds, node.Kind())
	}

	assert.Equal(t, []ast.Kind{
		ast.KindProgram,
		ast.KindGeneric,
		ast.KindJSXElement,
		ast.KindJSXOpeningElement,
		ast.KindJSXAttribute,
		ast.KindStringLiteral,
		ast.KindJSXSpreadAttribute,
		ast.KindGeneric,
		ast.KindJSXText,
		ast.KindJSXClosingElement,
	}, kinds)
}

func TestWalk_BreakStopsIteration(t *testing.T) {
	t.Parallel()

	program := &ast.Program{Body: []ast.Node{
		&ast.Generic{Type: "a"},
		&ast.Generic{Type: "b"},
		&ast.Generic{Type: "c"},
	}}

	visited := 0
	for node := range ast.Walk(program) {
		visited++
		if g, ok := node.(*ast.Generic); ok && g.Type == "b" {
			break
		}
	}

	assert.Equal(t, 3, visited)
}

func TestWalk_NilRoot(t *testing.T) {
	t.Parallel()

	for range ast.Walk(nil) {
		t.Fatal("nil root should yield nothing")
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     ast.Kind
		expected string
	}{
		{kind: ast.KindJSXOpeningElement, expected: "JSXOpeningElement"},
		{kind: ast.KindStringLiteral, expected: "StringLiteral"},
		{kind: ast.KindCount, expected: "Kind(11)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestSpan_Len(t *testing.T) {
	t.Parallel()

	span := ast.Span{Start: 4, End: 10, Line: 1, Column: 5}
	assert.Equal(t, uint32(6), span.Len())
	assert.False(t, span.Empty())
	assert.Equal(t, "1:5", span.String())
}
