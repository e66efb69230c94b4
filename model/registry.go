package model

import (
	"fmt"
	"sort"
	"sync"
)

// The kind registry is process-wide state: populated by widget packages at
// init and read-only afterwards. It keeps the kind set open without a
// central type switch.
var (
	registryMu sync.RWMutex
	registry   = map[string]func() Widget{}
)

// Register associates a kind tag with a factory producing a
// default-initialized widget of that kind. Registering a tag twice panics:
// tags are stable interchange identifiers and must not be contested.
func Register(kind string, factory func() Widget) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[kind]; exists {
		panic(fmt.Sprintf("model: widget kind %q registered twice", kind))
	}
	registry[kind] = factory
}

// New constructs a default widget for the given kind tag.
func New(kind string) (Widget, error) {
	registryMu.RLock()
	factory, ok := registry[kind]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return factory(), nil
}

// Kinds returns all registered kind tags in sorted order.
func Kinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	kinds := make([]string, 0, len(registry))
	for kind := range registry {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
