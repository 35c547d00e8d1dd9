// Package ast defines the immutable syntax tree the lint engine walks.
//
// The tree is produced by a parser outside the engine and is never mutated once built.
// Only the node kinds the JSX rules care about are modelled precisely. Everything else
// is carried as a Generic node so traversal still reaches nested JSX.
package ast

import "fmt"

// Kind tags a node with its syntactic category.
type Kind uint8

const (
	KindProgram Kind = iota
	KindJSXElement
	KindJSXFragment
	KindJSXOpeningElement
	KindJSXClosingElement
	KindJSXAttribute
	KindJSXSpreadAttribute
	KindJSXExpressionContainer
	KindJSXText
	KindStringLiteral
	KindGeneric

	// KindCount is the number of node kinds, usable as an array bound.
	KindCount
)

var kindNames = [KindCount]string{
	KindProgram:                "Program",
	KindJSXElement:             "JSXElement",
	KindJSXFragment:            "JSXFragment",
	KindJSXOpeningElement:      "JSXOpeningElement",
	KindJSXClosingElement:      "JSXClosingElement",
	KindJSXAttribute:           "JSXAttribute",
	KindJSXSpreadAttribute:     "JSXSpreadAttribute",
	KindJSXExpressionContainer: "JSXExpressionContainer",
	KindJSXText:                "JSXText",
	KindStringLiteral:          "StringLiteral",
	KindGeneric:                "Generic",
}

func (k Kind) String() string {
	if k < KindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Span is a half-open byte range in the source along with the 1-based line and column of its start.
type Span struct {
	Start  uint32
	End    uint32
	Line   int
	Column int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() uint32 {
	return s.End - s.Start
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// Node is implemented by every node of the tree.
type Node interface {
	Kind() Kind
	Span() Span
	// Children returns the node's direct children in source order.
	Children() []Node
}

// Program is the root of a parsed file.
type Program struct {
	Body     []Node
	NodeSpan Span
}

func (n *Program) Kind() Kind       { return KindProgram }
func (n *Program) Span() Span       { return n.NodeSpan }
func (n *Program) Children() []Node { return n.Body }

// Generic is any node the engine does not model explicitly, such as statements and expressions.
type Generic struct {
	// Type is the parser's own name for the node, e.g. "call_expression".
	Type     string
	Nodes    []Node
	NodeSpan Span
}

func (n *Generic) Kind() Kind       { return KindGeneric }
func (n *Generic) Span() Span       { return n.NodeSpan }
func (n *Generic) Children() []Node { return n.Nodes }

// StringLiteral is a quoted string, with Value holding the text between the quotes.
type StringLiteral struct {
	Value    string
	NodeSpan Span
}

func (n *StringLiteral) Kind() Kind       { return KindStringLiteral }
func (n *StringLiteral) Span() Span       { return n.NodeSpan }
func (n *StringLiteral) Children() []Node { return nil }
