package model

import (
	"fmt"
	"sort"
)

// Variable is a named application-state value usable as a binding target.
// The default is stored as text and parsed against Type when resolved.
type Variable struct {
	Name    string       `json:"name"`
	Type    VariableType `json:"type"`
	Default string       `json:"default"`
}

// DefaultValue parses the stored default into a typed value.
func (v Variable) DefaultValue() Value {
	return ParseValue(v.Type, v.Default)
}

// Variables is the document's variable store.
type Variables map[string]Variable

// Get looks up a variable by name.
func (vs Variables) Get(name string) (Variable, bool) {
	v, ok := vs[name]
	return v, ok
}

// Set creates or replaces a variable.
func (vs Variables) Set(v Variable) error {
	if v.Name == "" {
		return fmt.Errorf("variable name must not be empty")
	}
	if !v.Type.Valid() {
		return fmt.Errorf("variable %q: invalid type %q", v.Name, v.Type)
	}
	vs[v.Name] = v
	return nil
}

// Delete removes a variable. Bindings referencing it become dangling and are
// reported at resolve time, not here.
func (vs Variables) Delete(name string) error {
	if _, ok := vs[name]; !ok {
		return fmt.Errorf("%w: %s", ErrVariableNotFound, name)
	}
	delete(vs, name)
	return nil
}

// Names returns all variable names in sorted order.
func (vs Variables) Names() []string {
	names := make([]string, 0, len(vs))
	for name := range vs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the store.
func (vs Variables) Clone() Variables {
	out := make(Variables, len(vs))
	for name, v := range vs {
		out[name] = v
	}
	return out
}
