package linter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/speakeasy-api/jsxlint/diagnostic"
	"gopkg.in/yaml.v3"
)

// Config represents the linter configuration
type Config struct {
	// Plugins enables optional rule plugins (e.g., "jsx-a11y", "nextjs"). The core plugin is always enabled.
	Plugins Plugins `yaml:"plugins,omitempty" json:"plugins,omitempty" toml:"plugins,omitempty"`

	// Settings is the opaque settings document handed to rules
	Settings Settings `yaml:"settings,omitempty" json:"settings,omitempty" toml:"settings,omitempty"`

	// Rules contains per-rule configuration keyed by rule name
	Rules map[string]RuleConfig `yaml:"rules,omitempty" json:"rules,omitempty" toml:"rules,omitempty"`

	// Categories contains per-category configuration
	Categories map[string]CategoryConfig `yaml:"categories,omitempty" json:"categories,omitempty" toml:"categories,omitempty"`

	// OutputFormat specifies the output format
	OutputFormat OutputFormat `yaml:"output_format,omitempty" json:"output_format,omitempty" toml:"output_format,omitempty"`
}

// RuleConfig configures a specific rule.
//
// Besides the object form, a rule may be configured with a scalar: "off", "on",
// a boolean, or a severity name (which implies enabled).
type RuleConfig struct {
	// Enabled controls whether the rule is active
	Enabled *bool `yaml:"enabled,omitempty" json:"enabled,omitempty" toml:"enabled,omitempty"`

	// Severity overrides the default severity
	Severity *diagnostic.Severity `yaml:"severity,omitempty" json:"severity,omitempty" toml:"severity,omitempty"`
}

// GetSeverity returns the effective severity, falling back to default if not overridden
func (c *RuleConfig) GetSeverity(defaultSeverity diagnostic.Severity) diagnostic.Severity {
	if c != nil && c.Severity != nil {
		return *c.Severity
	}
	return defaultSeverity
}

func (c *RuleConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw any
	if err := value.Decode(&raw); err != nil {
		return err
	}
	return c.fromValue(raw)
}

func (c *RuleConfig) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return c.fromValue(raw)
}

func (c *RuleConfig) UnmarshalTOML(data any) error {
	return c.fromValue(data)
}

func (c *RuleConfig) fromValue(raw any) error {
	*c = RuleConfig{}

	switch v := raw.(type) {
	case nil:
		return nil
	case bool:
		c.Enabled = &v
		return nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "off":
			c.Enabled = boolPtr(false)
			return nil
		case "on":
			c.Enabled = boolPtr(true)
			return nil
		}
		sev, err := diagnostic.ParseSeverity(v)
		if err != nil {
			return err
		}
		c.Enabled = boolPtr(true)
		c.Severity = &sev
		return nil
	case map[string]any:
		if enabled, ok := v["enabled"]; ok {
			b, ok := enabled.(bool)
			if !ok {
				return fmt.Errorf("enabled must be a boolean, got %T", enabled)
			}
			c.Enabled = &b
		}
		if severity, ok := v["severity"]; ok {
			s, ok := severity.(string)
			if !ok {
				return fmt.Errorf("severity must be a string, got %T", severity)
			}
			sev, err := diagnostic.ParseSeverity(s)
			if err != nil {
				return err
			}
			c.Severity = &sev
		}
		return nil
	default:
		return fmt.Errorf("unsupported rule configuration %T", raw)
	}
}

// CategoryConfig configures an entire category of rules
type CategoryConfig struct {
	// Enabled controls whether all rules in the category are active
	Enabled *bool `yaml:"enabled,omitempty" json:"enabled,omitempty" toml:"enabled,omitempty"`

	// Severity overrides the default severity for all rules in the category
	Severity *diagnostic.Severity `yaml:"severity,omitempty" json:"severity,omitempty" toml:"severity,omitempty"`
}

type OutputFormat string

const (
	OutputFormatText    OutputFormat = "text"
	OutputFormatJSON    OutputFormat = "json"
	OutputFormatSummary OutputFormat = "summary"
)

// NewConfig creates a new default configuration
func NewConfig() *Config {
	return &Config{
		Plugins:      make(Plugins),
		Settings:     make(Settings),
		Rules:        make(map[string]RuleConfig),
		Categories:   make(map[string]CategoryConfig),
		OutputFormat: OutputFormatText,
	}
}

// EnablePlugins marks the named plugins as enabled and returns the config.
func (c *Config) EnablePlugins(names ...string) *Config {
	if c.Plugins == nil {
		c.Plugins = make(Plugins)
	}
	for _, name := range names {
		c.Plugins[name] = true
	}
	return c
}

func boolPtr(b bool) *bool {
	return &b
}
