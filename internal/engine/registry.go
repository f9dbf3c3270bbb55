package engine

import (
	"fmt"
	"sort"
	"sync"
)

// The preset registry lets part combinations register themselves in
// init() functions, so front-ends can discover them by name without
// hardcoded dependencies.

// PresetInfo describes a registered preset.
type PresetInfo struct {
	Name        string
	Description string
}

var (
	presets = make(map[string]Parts)
	mu      sync.RWMutex
)

// Register adds a named preset. Typically called from an init() function.
// Panics on duplicate names or incomplete part sets: both are programming
// errors.
func Register(name string, parts Parts) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := presets[name]; exists {
		panic(fmt.Sprintf("engine: preset %q already registered", name))
	}
	if !parts.Complete() {
		panic(fmt.Sprintf("engine: preset %q is missing parts", name))
	}

	presets[name] = parts
}

// List returns information about all registered presets, sorted by name.
func List() []PresetInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PresetInfo, 0, len(presets))
	for name, parts := range presets {
		result = append(result, PresetInfo{Name: name, Description: parts.Description})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Lookup returns the preset with the given name.
func Lookup(name string) (Parts, error) {
	mu.RLock()
	defer mu.RUnlock()

	parts, ok := presets[name]
	if !ok {
		return Parts{}, fmt.Errorf("engine: unknown preset %q", name)
	}

	return parts, nil
}

// Exists checks if a preset with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := presets[name]
	return ok
}
