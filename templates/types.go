// Package templates provides the built-in starter documents the palette's
// "new project" flow offers.
package templates

import (
	"fmt"
	"sort"

	"github.com/aether-xyz/go-aether/model"
)

// Template builds a ready-to-edit starter document.
type Template interface {
	Name() string
	Description() string
	Build() (*model.Document, error)
}

// Registry holds all available templates.
var Registry = map[string]Template{
	"empty":     &EmptyTemplate{},
	"counter":   &CounterTemplate{},
	"form":      &FormTemplate{},
	"dashboard": &DashboardTemplate{},
}

// Get returns a template by name.
func Get(name string) (Template, error) {
	t, ok := Registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown template: %s", name)
	}
	return t, nil
}

// List returns all available template names in sorted order.
func List() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
