// Package rules wires the built-in rules into a registry.
package rules

import (
	"github.com/speakeasy-api/jsxlint/linter"
	"github.com/speakeasy-api/jsxlint/rules/jsxa11y"
	"github.com/speakeasy-api/jsxlint/rules/nextjs"
)

// All returns a fresh instance of every built-in rule in registration order.
func All() []linter.Rule {
	return []linter.Rule{
		&jsxa11y.RoleHasRequiredAriaPropsRule{},
		&nextjs.GoogleFontPreconnectRule{},
		&nextjs.NoSyncScriptsRule{},
	}
}

// Register adds every built-in rule to registry.
func Register(registry *linter.Registry) error {
	for _, rule := range All() {
		if err := registry.Register(rule); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry holding every built-in rule.
func NewRegistry() *linter.Registry {
	registry := linter.NewRegistry()
	registry.MustRegister(All()...)
	return registry
}
