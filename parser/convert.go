package parser

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/speakeasy-api/jsxlint/ast"
)

type converter struct {
	source []byte
}

func (c *converter) node(n *sitter.Node) ast.Node {
	switch n.Type() {
	case "jsx_element":
		return c.element(n)
	case "jsx_self_closing_element":
		opening := c.opening(n)
		opening.SelfClosing = true
		return &ast.JSXElement{Opening: opening, NodeSpan: spanOf(n)}
	case "jsx_opening_element":
		return c.opening(n)
	case "jsx_closing_element":
		return &ast.JSXClosingElement{Name: c.elementName(n), NodeSpan: spanOf(n)}
	case "jsx_fragment":
		return &ast.JSXFragment{Nodes: c.namedChildren(n), NodeSpan: spanOf(n)}
	case "jsx_text":
		return &ast.JSXText{Value: n.Content(c.source), NodeSpan: spanOf(n)}
	case "jsx_expression":
		return c.expression(n)
	case "string":
		return c.stringLiteral(n)
	default:
		return &ast.Generic{Type: n.Type(), Nodes: c.namedChildren(n), NodeSpan: spanOf(n)}
	}
}

func (c *converter) namedChildren(n *sitter.Node) []ast.Node {
	count := int(n.NamedChildCount())
	if count == 0 {
		return nil
	}
	out := make([]ast.Node, 0, count)
	for i := 0; i < count; i++ {
		child := n.NamedChild(i)
		if child == nil {
			continue
		}
		out = append(out, c.node(child))
	}
	return out
}

func (c *converter) element(n *sitter.Node) *ast.JSXElement {
	el := &ast.JSXElement{NodeSpan: spanOf(n)}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "jsx_opening_element":
			if el.Opening == nil {
				el.Opening = c.opening(child)
				continue
			}
		case "jsx_closing_element":
			el.Closing = &ast.JSXClosingElement{Name: c.elementName(child), NodeSpan: spanOf(child)}
			continue
		}
		el.Nodes = append(el.Nodes, c.node(child))
	}

	return el
}

func (c *converter) opening(n *sitter.Node) *ast.JSXOpeningElement {
	el := &ast.JSXOpeningElement{
		Name:     c.elementName(n),
		NodeSpan: spanOf(n),
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "jsx_attribute":
			el.Attributes = append(el.Attributes, c.attribute(child))
		case "jsx_expression":
			if arg := c.spreadArgument(child); arg != nil {
				el.Attributes = append(el.Attributes, &ast.JSXSpreadAttribute{
					Argument: c.node(arg),
					NodeSpan: spanOf(child),
				})
			}
		}
	}

	return el
}

func (c *converter) elementName(n *sitter.Node) *ast.JSXName {
	name := n.ChildByFieldName("name")
	if name == nil {
		return nil
	}
	out := c.name(name)
	return &out
}

func (c *converter) name(n *sitter.Node) ast.JSXName {
	kind := ast.NameIdentifier
	switch n.Type() {
	case "jsx_namespace_name":
		kind = ast.NameNamespaced
	case "member_expression", "nested_identifier":
		kind = ast.NameMember
	}
	return ast.JSXName{Kind: kind, Name: n.Content(c.source), Span: spanOf(n)}
}

func (c *converter) attribute(n *sitter.Node) *ast.JSXAttribute {
	attr := &ast.JSXAttribute{NodeSpan: spanOf(n)}

	seenName := false
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child == nil || child.Type() == "comment" {
			continue
		}
		if !seenName {
			attr.Name = c.name(child)
			seenName = true
			continue
		}
		attr.Value = c.node(child)
		break
	}

	return attr
}

// spreadArgument returns the argument of a `{...expr}` attribute, or nil when the
// expression container holds anything other than a spread.
func (c *converter) spreadArgument(n *sitter.Node) *sitter.Node {
	inner := firstNonComment(n)
	if inner == nil || inner.Type() != "spread_element" {
		return nil
	}
	if arg := firstNonComment(inner); arg != nil {
		return arg
	}
	return inner
}

func (c *converter) expression(n *sitter.Node) ast.Node {
	container := &ast.JSXExpressionContainer{NodeSpan: spanOf(n)}
	if inner := firstNonComment(n); inner != nil {
		container.Expression = c.node(inner)
	}
	return container
}

func (c *converter) stringLiteral(n *sitter.Node) *ast.StringLiteral {
	return &ast.StringLiteral{Value: unquote(n.Content(c.source)), NodeSpan: spanOf(n)}
}

func firstNonComment(n *sitter.Node) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child != nil && child.Type() != "comment" {
			return child
		}
	}
	return nil
}

func unquote(raw string) string {
	if len(raw) >= 2 {
		first, last := raw[0], raw[len(raw)-1]
		if (first == '"' || first == '\'') && first == last {
			return raw[1 : len(raw)-1]
		}
	}
	return raw
}
