package linter

import (
	"encoding/json"
	"fmt"
	"io"
)

// DocGenerator generates documentation from registered rules
type DocGenerator struct {
	registry *Registry
}

// NewDocGenerator creates a new documentation generator
func NewDocGenerator(registry *Registry) *DocGenerator {
	return &DocGenerator{registry: registry}
}

// RuleDoc represents documentation for a single rule
type RuleDoc struct {
	Name            string `json:"name" yaml:"name"`
	Plugin          string `json:"plugin" yaml:"plugin"`
	Category        string `json:"category" yaml:"category"`
	Summary         string `json:"summary" yaml:"summary"`
	Description     string `json:"description" yaml:"description"`
	Rationale       string `json:"rationale,omitempty" yaml:"rationale,omitempty"`
	Link            string `json:"link,omitempty" yaml:"link,omitempty"`
	DefaultSeverity string `json:"default_severity" yaml:"default_severity"`
	GoodExample     string `json:"good_example,omitempty" yaml:"good_example,omitempty"`
	BadExample      string `json:"bad_example,omitempty" yaml:"bad_example,omitempty"`
}

// GenerateRuleDoc generates documentation for a single rule
func (g *DocGenerator) GenerateRuleDoc(rule Rule) *RuleDoc {
	doc := &RuleDoc{
		Name:            QualifiedName(rule),
		Plugin:          rule.Plugin(),
		Category:        rule.Category(),
		Summary:         rule.Summary(),
		Description:     rule.Description(),
		Link:            rule.Link(),
		DefaultSeverity: rule.DefaultSeverity().String(),
	}

	// Check for optional documentation interface
	if documented, ok := rule.(DocumentedRule); ok {
		doc.GoodExample = documented.GoodExample()
		doc.BadExample = documented.BadExample()
		doc.Rationale = documented.Rationale()
	}

	return doc
}

// GenerateAllRuleDocs generates documentation for all registered rules
func (g *DocGenerator) GenerateAllRuleDocs() []*RuleDoc {
	var docs []*RuleDoc
	for _, rule := range g.registry.AllRules() {
		docs = append(docs, g.GenerateRuleDoc(rule))
	}
	return docs
}

// GenerateCategoryDocs groups rules by category
func (g *DocGenerator) GenerateCategoryDocs() map[string][]*RuleDoc {
	categories := make(map[string][]*RuleDoc)
	for _, rule := range g.registry.AllRules() {
		doc := g.GenerateRuleDoc(rule)
		categories[doc.Category] = append(categories[doc.Category], doc)
	}
	return categories
}

// WriteJSON writes rule documentation as JSON
func (g *DocGenerator) WriteJSON(w io.Writer) error {
	docs := g.GenerateAllRuleDocs()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"rules":      docs,
		"categories": g.registry.AllCategories(),
		"plugins":    g.registry.AllPlugins(),
	})
}

// WriteMarkdown writes rule documentation as Markdown
func (g *DocGenerator) WriteMarkdown(w io.Writer) error {
	docs := g.GenerateCategoryDocs()
	categories := g.registry.AllCategories()

	if err := writeLine(w, "# Lint Rules Reference"); err != nil {
		return err
	}
	if err := writeEmptyLine(w); err != nil {
		return err
	}

	// Table of contents
	if err := writeLine(w, "## Categories"); err != nil {
		return err
	}
	if err := writeEmptyLine(w); err != nil {
		return err
	}
	for _, category := range categories {
		if err := writeF(w, "- [%s](#%s)\n", category, category); err != nil {
			return err
		}
	}
	if err := writeEmptyLine(w); err != nil {
		return err
	}

	// Rules by category
	for _, category := range categories {
		if err := writeF(w, "## %s\n\n", category); err != nil {
			return err
		}

		for _, rule := range docs[category] {
			if err := g.writeRuleMarkdown(w, rule); err != nil {
				return err
			}
		}
	}

	return nil
}

func (g *DocGenerator) writeRuleMarkdown(w io.Writer, rule *RuleDoc) error {
	if err := writeF(w, "### %s\n\n", rule.Name); err != nil {
		return err
	}
	if err := writeF(w, "**Severity:** %s  \n", rule.DefaultSeverity); err != nil {
		return err
	}
	if err := writeF(w, "**Plugin:** %s  \n", rule.Plugin); err != nil {
		return err
	}
	if rule.Summary != "" {
		if err := writeF(w, "**Summary:** %s  \n", rule.Summary); err != nil {
			return err
		}
	}
	if err := writeEmptyLine(w); err != nil {
		return err
	}

	if err := writeF(w, "%s\n\n", rule.Description); err != nil {
		return err
	}

	if rule.Rationale != "" {
		if err := writeF(w, "#### Rationale\n\n%s\n\n", rule.Rationale); err != nil {
			return err
		}
	}

	if err := writeExample(w, "#### ❌ Incorrect", rule.BadExample); err != nil {
		return err
	}
	if err := writeExample(w, "#### ✅ Correct", rule.GoodExample); err != nil {
		return err
	}

	if rule.Link != "" {
		if err := writeF(w, "[Documentation →](%s)\n\n", rule.Link); err != nil {
			return err
		}
	}

	if err := writeLine(w, "---"); err != nil {
		return err
	}
	return writeEmptyLine(w)
}

func writeExample(w io.Writer, heading, example string) error {
	if example == "" {
		return nil
	}
	if err := writeLine(w, heading); err != nil {
		return err
	}
	if err := writeLine(w, "```jsx"); err != nil {
		return err
	}
	if err := writeLine(w, example); err != nil {
		return err
	}
	if err := writeLine(w, "```"); err != nil {
		return err
	}
	return writeEmptyLine(w)
}

func writeLine(w io.Writer, text string) error {
	_, err := fmt.Fprintln(w, text)
	return err
}

func writeEmptyLine(w io.Writer) error {
	_, err := fmt.Fprintln(w)
	return err
}

func writeF(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
