package ast

// NameKind distinguishes the shapes a JSX element or attribute name can take.
type NameKind uint8

const (
	// NameIdentifier is a plain identifier such as `div` or `MyComponent`.
	NameIdentifier NameKind = iota
	// NameNamespaced is a namespaced name such as `svg:rect` or `xlink:href`.
	NameNamespaced
	// NameMember is a member expression such as `Foo.Bar`.
	NameMember
)

// JSXName is the name of an element or attribute.
type JSXName struct {
	Kind NameKind
	// Name is the full source text of the name, e.g. "div", "xlink:href" or "Foo.Bar".
	Name string
	Span Span
}

// JSXElement is an element with an opening tag, children and an optional closing tag.
// Self-closing elements have a nil Closing and no children.
type JSXElement struct {
	Opening  *JSXOpeningElement
	Nodes    []Node
	Closing  *JSXClosingElement
	NodeSpan Span
}

func (n *JSXElement) Kind() Kind { return KindJSXElement }
func (n *JSXElement) Span() Span { return n.NodeSpan }
func (n *JSXElement) Children() []Node {
	out := make([]Node, 0, len(n.Nodes)+2)
	if n.Opening != nil {
		out = append(out, n.Opening)
	}
	out = append(out, n.Nodes...)
	if n.Closing != nil {
		out = append(out, n.Closing)
	}
	return out
}

// JSXFragment is a `<>...</>` fragment.
type JSXFragment struct {
	Nodes    []Node
	NodeSpan Span
}

func (n *JSXFragment) Kind() Kind       { return KindJSXFragment }
func (n *JSXFragment) Span() Span       { return n.NodeSpan }
func (n *JSXFragment) Children() []Node { return n.Nodes }

// JSXOpeningElement is the opening tag of an element, including a self-closing tag.
type JSXOpeningElement struct {
	// Name is nil when the tag has no name.
	Name        *JSXName
	Attributes  []AttributeItem
	SelfClosing bool
	NodeSpan    Span
}

func (n *JSXOpeningElement) Kind() Kind { return KindJSXOpeningElement }
func (n *JSXOpeningElement) Span() Span { return n.NodeSpan }
func (n *JSXOpeningElement) Children() []Node {
	out := make([]Node, len(n.Attributes))
	for i, attr := range n.Attributes {
		out[i] = attr
	}
	return out
}

// JSXClosingElement is a closing tag.
type JSXClosingElement struct {
	Name     *JSXName
	NodeSpan Span
}

func (n *JSXClosingElement) Kind() Kind       { return KindJSXClosingElement }
func (n *JSXClosingElement) Span() Span       { return n.NodeSpan }
func (n *JSXClosingElement) Children() []Node { return nil }

// AttributeItem is one entry of an opening element's attribute list:
// either a *JSXAttribute or a *JSXSpreadAttribute.
type AttributeItem interface {
	Node
	attributeItem()
}

// JSXAttribute is a named attribute, e.g. `role="checkbox"` or the bare `async`.
type JSXAttribute struct {
	Name JSXName
	// Value is nil for boolean shorthand attributes such as `async`.
	Value    Node
	NodeSpan Span
}

func (n *JSXAttribute) Kind() Kind { return KindJSXAttribute }
func (n *JSXAttribute) Span() Span { return n.NodeSpan }
func (n *JSXAttribute) Children() []Node {
	if n.Value == nil {
		return nil
	}
	return []Node{n.Value}
}
func (n *JSXAttribute) attributeItem() {}

// JSXSpreadAttribute is a `{...props}` entry whose contents are unknown statically.
type JSXSpreadAttribute struct {
	Argument Node
	NodeSpan Span
}

func (n *JSXSpreadAttribute) Kind() Kind { return KindJSXSpreadAttribute }
func (n *JSXSpreadAttribute) Span() Span { return n.NodeSpan }
func (n *JSXSpreadAttribute) Children() []Node {
	if n.Argument == nil {
		return nil
	}
	return []Node{n.Argument}
}
func (n *JSXSpreadAttribute) attributeItem() {}

// JSXExpressionContainer is a `{...}` expression, either as an attribute value or a child.
type JSXExpressionContainer struct {
	// Expression is nil for an empty container such as `{}` or `{/* comment */}`.
	Expression Node
	NodeSpan   Span
}

func (n *JSXExpressionContainer) Kind() Kind { return KindJSXExpressionContainer }
func (n *JSXExpressionContainer) Span() Span { return n.NodeSpan }
func (n *JSXExpressionContainer) Children() []Node {
	if n.Expression == nil {
		return nil
	}
	return []Node{n.Expression}
}

// JSXText is literal text between tags.
type JSXText struct {
	Value    string
	NodeSpan Span
}

func (n *JSXText) Kind() Kind       { return KindJSXText }
func (n *JSXText) Span() Span       { return n.NodeSpan }
func (n *JSXText) Children() []Node { return nil }
