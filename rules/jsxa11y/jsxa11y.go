// Package jsxa11y contains accessibility rules for JSX elements.
package jsxa11y

// Plugin is the plugin and settings namespace of the accessibility rules.
const Plugin = "jsx-a11y"
