package linter

import (
	"slices"

	"github.com/speakeasy-api/jsxlint/diagnostic"
)

// Plugins holds plugin enablement flags. PluginCore is always enabled.
type Plugins map[string]bool

// Enabled reports whether the named plugin is enabled.
func (p Plugins) Enabled(name string) bool {
	if name == "" || name == PluginCore {
		return true
	}
	return p[name]
}

// Context is the per-file state shared by every rule processing that file.
// It is created before traversal starts and read once traversal completes.
type Context struct {
	filename string
	settings Settings
	plugins  Plugins

	rule     Rule
	severity diagnostic.Severity

	diagnostics []diagnostic.Diagnostic
}

// NewContext creates a fresh context for linting one file.
func NewContext(filename string, settings Settings, plugins Plugins) *Context {
	return &Context{
		filename: filename,
		settings: settings,
		plugins:  plugins,
	}
}

// Filename returns the path of the file being linted.
func (c *Context) Filename() string {
	return c.filename
}

// Settings returns the resolved, read-only settings.
func (c *Context) Settings() Settings {
	return c.settings
}

// Plugins returns the read-only plugin enablement flags.
func (c *Context) Plugins() Plugins {
	return c.plugins
}

// Diagnostic records a violation. The current rule's name, plugin and effective
// severity are stamped onto d along with the file name.
func (c *Context) Diagnostic(d diagnostic.Diagnostic) {
	if c.rule != nil {
		if d.Rule == "" {
			d.Rule = c.rule.Name()
			d.Plugin = c.rule.Plugin()
		}
		d.Severity = c.severity
	}
	if d.File == "" {
		d.File = c.filename
	}
	c.diagnostics = append(c.diagnostics, d)
}

// Diagnostics returns a copy of the diagnostics recorded so far, in the order they were reported.
func (c *Context) Diagnostics() []diagnostic.Diagnostic {
	return slices.Clone(c.diagnostics)
}

// Len returns the number of diagnostics recorded so far.
func (c *Context) Len() int {
	return len(c.diagnostics)
}

func (c *Context) enter(rule Rule, severity diagnostic.Severity) {
	c.rule = rule
	c.severity = severity
}

func (c *Context) leave() {
	c.rule = nil
}
