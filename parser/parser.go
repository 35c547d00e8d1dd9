// Package parser turns JavaScript, JSX and TSX source into the engine's immutable syntax tree.
//
// Parsing is delegated to tree-sitter; this package only adapts the concrete syntax tree
// into the ast node model the rules inspect.
package parser

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
	"github.com/speakeasy-api/jsxlint/ast"
	"github.com/speakeasy-api/jsxlint/errors"
)

const (
	// ErrSyntax is returned when the source does not parse cleanly.
	ErrSyntax = errors.Error("syntax error")
)

// Parser parses source files into ast trees. It is safe for concurrent use.
type Parser struct{}

// New creates a new Parser.
func New() *Parser {
	return &Parser{}
}

// Parse parses source using the grammar selected by filename's extension:
// .tsx uses the TSX grammar, .ts/.mts/.cts the TypeScript grammar, and anything else
// the JavaScript grammar, which includes JSX.
func (p *Parser) Parse(ctx context.Context, filename string, source []byte) (*ast.Program, error) {
	sp := sitter.NewParser()
	defer sp.Close()
	sp.SetLanguage(languageFor(filename))

	tree, err := sp.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		if bad := firstError(root); bad != nil {
			pt := bad.StartPoint()
			return nil, ErrSyntax.Wrapf("%s:%d:%d", filename, pt.Row+1, pt.Column+1)
		}
		return nil, ErrSyntax.Wrapf("%s", filename)
	}

	c := &converter{source: source}
	return &ast.Program{
		Body:     c.namedChildren(root),
		NodeSpan: spanOf(root),
	}, nil
}

func languageFor(filename string) *sitter.Language {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".tsx":
		return tsx.GetLanguage()
	case ".ts", ".mts", ".cts":
		return typescript.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || !child.HasError() && !child.IsMissing() {
			continue
		}
		if bad := firstError(child); bad != nil {
			return bad
		}
	}
	return nil
}

func spanOf(n *sitter.Node) ast.Span {
	pt := n.StartPoint()
	return ast.Span{
		Start:  n.StartByte(),
		End:    n.EndByte(),
		Line:   int(pt.Row) + 1,
		Column: int(pt.Column) + 1,
	}
}
