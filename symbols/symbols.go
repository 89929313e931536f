// Package symbols provides named symbolic-value sources for the naming
// engine. A source maps semantic concepts to the canonical short strings
// used inside names (e.g. "left" -> "l", "joint" -> "jnt"). Sources are
// read-only lookup tables referenced by name from from_enums rule specs.
package symbols

import (
	"sort"
	"sync"
)

// Source maps semantic concepts to canonical short token strings.
type Source map[string]string

// Canonical returns the canonical string for a concept.
func (s Source) Canonical(concept string) (string, bool) {
	v, ok := s[concept]
	return v, ok
}

// Values returns the distinct canonical strings of the source, sorted.
func (s Source) Values() []string {
	seen := make(map[string]struct{}, len(s))
	for _, v := range s {
		seen[v] = struct{}{}
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// registry holds all named sources.
var registry = struct {
	mu      sync.RWMutex
	sources map[string]Source
}{
	sources: make(map[string]Source),
}

// Register adds or replaces a named source.
// Typically called from init() by packages that define sources.
func Register(name string, src Source) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.sources[name] = src
}

// Lookup returns the source registered under name.
func Lookup(name string) (Source, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	src, ok := registry.sources[name]
	return src, ok
}

// Names returns all registered source names, sorted.
func Names() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	names := make([]string, 0, len(registry.sources))
	for name := range registry.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
