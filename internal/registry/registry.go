// Package registry provides a global registry of named board presets.
// Presets register themselves in init() functions, allowing the platform
// to list and instantiate boards without hardcoded sizes.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Preset describes a named board configuration.
type Preset struct {
	ID     string // Identifier used by CLI commands and run history
	Title  string // Human-readable name for menus
	Width  int
	Height int
}

// Size returns the board size as "WxH".
func (p Preset) Size() string {
	return fmt.Sprintf("%dx%d", p.Width, p.Height)
}

var (
	presets = make(map[string]Preset)
	mu      sync.RWMutex
)

// Register adds a preset to the registry.
// Panics if a preset with the same ID is already registered.
func Register(p Preset) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := presets[p.ID]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", p.ID))
	}
	presets[p.ID] = p
}

// List returns all registered presets, sorted by board area then ID.
func List() []Preset {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Preset, 0, len(presets))
	for _, p := range presets {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		ai := result[i].Width * result[i].Height
		aj := result[j].Width * result[j].Height
		if ai != aj {
			return ai < aj
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the preset with the given ID.
// Returns an error if the ID is not registered.
func Get(id string) (Preset, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("registry: unknown preset %q", id)
	}
	return p, nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := presets[id]
	return ok
}
