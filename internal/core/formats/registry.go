// Package formats registers the decodable file formats in a keyed registry
// so envelope consumers (the CLI, upload shells) can look extractors up by
// name or by classifier guess without hard-coding the format set.
package formats

import (
	"fmt"
	"sort"
	"sync"

	"labparse/internal/core"
)

// Definition binds a registry key to one extractor.
type Definition struct {
	Key   string           // unique identifier: "dissolution"
	Label string           // display name: "Dissolution results"
	Guess core.FormatGuess // the classifier guess this format serves

	// Parse runs the extractor and wraps the outcome in the uniform
	// success/error envelope.
	Parse func(content string) Outcome
}

// Outcome is the JSON-ready envelope around one parse attempt. Data and
// Error are never both populated.
type Outcome struct {
	Success bool             `json:"success"`
	Data    any              `json:"data,omitempty"`
	Error   *core.ParseError `json:"error,omitempty"`
}

var (
	registry   = make(map[string]Definition)
	registryMu sync.RWMutex
)

// Register adds a format definition to the registry.
// Panics if a format with the same key is already registered.
func Register(def Definition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[def.Key]; exists {
		panic(fmt.Sprintf("format already registered: %s", def.Key))
	}

	registry[def.Key] = def
}

// Get returns a format definition by key.
// Returns false if not found.
func Get(key string) (Definition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[key]
	return def, ok
}

// ForGuess returns the format definition serving a classifier guess.
func ForGuess(guess core.FormatGuess) (Definition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, def := range registry {
		if def.Guess == guess {
			return def, true
		}
	}
	return Definition{}, false
}

// All returns all registered format definitions, sorted by key.
func All() []Definition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]Definition, 0, len(registry))
	for _, def := range registry {
		result = append(result, def)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})

	return result
}

// Keys returns the registered format keys, sorted.
func Keys() []string {
	defs := All()
	keys := make([]string, len(defs))
	for i, def := range defs {
		keys[i] = def.Key
	}
	return keys
}
