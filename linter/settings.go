package linter

import "fmt"

// Settings is the opaque, plugin-namespaced settings document supplied by configuration,
// e.g. {"jsx-a11y": {"components": {"MyButton": "button"}}}.
//
// Lookups never fail: absent or malformed values yield the zero value.
type Settings map[string]any

// Namespace returns the settings object stored under key.
func (s Settings) Namespace(key string) map[string]any {
	if s == nil {
		return nil
	}
	return asObject(s[key])
}

// Lookup returns the value stored at namespace.key.
func (s Settings) Lookup(namespace, key string) (any, bool) {
	ns := s.Namespace(namespace)
	if ns == nil {
		return nil, false
	}
	v, ok := ns[key]
	return v, ok
}

// Components returns the component alias table of namespace, mapping a custom
// component name to the element it renders. Non-string entries are skipped.
func (s Settings) Components(namespace string) map[string]string {
	v, ok := s.Lookup(namespace, "components")
	if !ok {
		return nil
	}
	obj := asObject(v)
	if obj == nil {
		return nil
	}

	components := make(map[string]string, len(obj))
	for name, target := range obj {
		if str, ok := target.(string); ok {
			components[name] = str
		}
	}
	return components
}

func asObject(v any) map[string]any {
	switch obj := v.(type) {
	case map[string]any:
		return obj
	case Settings:
		return obj
	case map[string]string:
		out := make(map[string]any, len(obj))
		for k, v := range obj {
			out[k] = v
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(obj))
		for k, v := range obj {
			out[fmt.Sprint(k)] = v
		}
		return out
	default:
		return nil
	}
}
