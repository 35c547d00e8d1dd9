package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/rules"
)

const (
	startMarker = "<!-- START LINT RULES -->"
	endMarker   = "<!-- END LINT RULES -->"
)

func main() {
	readme := "README.md"
	if len(os.Args) > 1 {
		readme = os.Args[1]
	}
	if err := updateRuleDocs(readme); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func updateRuleDocs(readmeFile string) error {
	fmt.Println("🔄 Updating lint rules in README...")

	// Check if README exists
	if _, err := os.Stat(readmeFile); os.IsNotExist(err) {
		fmt.Printf("⚠️  No README file found: %s\n", readmeFile)
		return nil
	}

	docGen := linter.NewDocGenerator(rules.NewRegistry())
	content := generateRulesTable(docGen)

	if err := updateReadmeFile(readmeFile, content); err != nil {
		return fmt.Errorf("failed to update README: %w", err)
	}

	fmt.Printf("✅ Updated %s\n", readmeFile)
	return nil
}

func generateRulesTable(docGen *linter.DocGenerator) string {
	docs := docGen.GenerateAllRuleDocs()

	// Sort rules alphabetically by qualified name
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].Name < docs[j].Name
	})

	var content strings.Builder
	content.WriteString("| Rule | Plugin | Severity | Summary |\n")
	content.WriteString("|------|--------|----------|---------|\n")

	for _, doc := range docs {
		// Escape pipe characters in summary
		summary := strings.ReplaceAll(doc.Summary, "|", "\\|")
		summary = strings.ReplaceAll(summary, "\n", " ")
		name := fmt.Sprintf("`%s`", doc.Name)
		if doc.Link != "" {
			name = fmt.Sprintf("[`%s`](%s)", doc.Name, doc.Link)
		}
		fmt.Fprintf(&content, "| %s | %s | %s | %s |\n", name, doc.Plugin, doc.DefaultSeverity, summary)
	}

	return content.String()
}

func updateReadmeFile(filename, newContent string) error {
	data, err := os.ReadFile(filename) //nolint:gosec
	if err != nil {
		return err
	}

	content := string(data)

	startIdx := strings.Index(content, startMarker)
	endIdx := strings.Index(content, endMarker)

	if startIdx == -1 || endIdx == -1 || endIdx < startIdx {
		return fmt.Errorf("could not find lint rules markers in %s", filename)
	}

	// Replace the content between markers
	before := content[:startIdx+len(startMarker)]
	after := content[endIdx:]

	newFileContent := before + "\n\n" + newContent + "\n" + after

	return os.WriteFile(filename, []byte(newFileContent), 0600)
}
