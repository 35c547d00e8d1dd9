package linter

import (
	"slices"
	"sort"
	"strings"

	"github.com/speakeasy-api/jsxlint/errors"
)

// Registry holds registered rules in registration order
type Registry struct {
	rules []Rule
	index map[string]int // rule name -> position in rules
}

// NewRegistry creates a new rule registry
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]int),
	}
}

// Register registers a rule. Rule names must be unique across plugins.
func (r *Registry) Register(rule Rule) error {
	if _, exists := r.index[rule.Name()]; exists {
		return errors.ErrDuplicateRule.Wrapf("%s", rule.Name())
	}
	r.index[rule.Name()] = len(r.rules)
	r.rules = append(r.rules, rule)
	return nil
}

// MustRegister registers rules and panics on a duplicate name
func (r *Registry) MustRegister(rules ...Rule) {
	for _, rule := range rules {
		if err := r.Register(rule); err != nil {
			panic(err)
		}
	}
}

// GetRule returns a rule by name
func (r *Registry) GetRule(name string) (Rule, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.rules[i], true
}

// Lookup returns a rule by name, accepting either the bare name or the
// plugin-qualified form ("nextjs/no-sync-scripts").
func (r *Registry) Lookup(name string) (Rule, error) {
	if rule, ok := r.GetRule(name); ok {
		return rule, nil
	}
	if plugin, bare, ok := strings.Cut(name, "/"); ok {
		if rule, ok := r.GetRule(bare); ok && rule.Plugin() == plugin {
			return rule, nil
		}
	}
	return nil, errors.ErrUnknownRule.Wrapf("%s", name)
}

// Len returns the number of registered rules
func (r *Registry) Len() int {
	return len(r.rules)
}

// AllRules returns all registered rules in registration order
func (r *Registry) AllRules() []Rule {
	return slices.Clone(r.rules)
}

// AllRuleNames returns all registered rule names in registration order
func (r *Registry) AllRuleNames() []string {
	names := make([]string, 0, len(r.rules))
	for _, rule := range r.rules {
		names = append(names, rule.Name())
	}
	return names
}

// AllCategories returns all unique categories
func (r *Registry) AllCategories() []string {
	categories := make(map[string]bool)
	for _, rule := range r.rules {
		categories[rule.Category()] = true
	}

	cats := make([]string, 0, len(categories))
	for cat := range categories {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

// AllPlugins returns all unique plugin names, always including PluginCore
func (r *Registry) AllPlugins() []string {
	plugins := map[string]bool{PluginCore: true}
	for _, rule := range r.rules {
		if rule.Plugin() != "" {
			plugins[rule.Plugin()] = true
		}
	}

	names := make([]string, 0, len(plugins))
	for name := range plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasPlugin reports whether any registered rule belongs to plugin
func (r *Registry) HasPlugin(plugin string) bool {
	return slices.Contains(r.AllPlugins(), plugin)
}

// RulesInPlugin returns the rules of plugin in registration order
func (r *Registry) RulesInPlugin(plugin string) []Rule {
	var rules []Rule
	for _, rule := range r.rules {
		if rule.Plugin() == plugin {
			rules = append(rules, rule)
		}
	}
	return rules
}

// Subset returns a new registry holding only the named rules, keeping registration order
func (r *Registry) Subset(names ...string) (*Registry, error) {
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		rule, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}
		wanted[rule.Name()] = true
	}

	sub := NewRegistry()
	for _, rule := range r.rules {
		if wanted[rule.Name()] {
			sub.MustRegister(rule)
		}
	}
	return sub, nil
}
