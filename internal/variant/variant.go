// Package variant provides a global registry of named policy presets.
// Presets register themselves in init() functions, allowing the CLI and TUI
// to discover hunt variants without hardcoded dependencies.
package variant

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/monster-hunt/internal/sim"
)

// Variant is a named, documented combination of simulation policies.
type Variant struct {
	// ID is the unique identifier used on the command line and in run
	// storage (e.g. "classic").
	ID string

	// Title is a human-readable name for display.
	Title string

	// Summary is a one-line description of how the variant hunts.
	Summary string

	// Policies are the strategy choices this variant plays with.
	Policies sim.Policies
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry. Typically called from an init()
// function. Panics if the ID is already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("variant: %q already registered", v.ID))
	}
	variants[v.ID] = v
}

// List returns all registered variants, sorted by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Lookup returns the variant with the given ID.
func Lookup(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("variant: unknown variant %q", id)
	}
	return v, nil
}

// Exists checks whether a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
