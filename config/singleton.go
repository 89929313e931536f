package config

import (
	"sync"

	"github.com/openrig/namekit/convention"
)

// Global manager instance and initialization guard.
var (
	globalManager *convention.Manager
	globalOnce    sync.Once
)

// Global returns the singleton naming manager.
// Creates a manager from the default configuration on first call if not
// already initialized. Panics if the default configuration cannot be
// materialized, which indicates a programming error in the defaults.
func Global() *convention.Manager {
	globalOnce.Do(func() {
		manager, err := DefaultConfig().BuildManager()
		if err != nil {
			panic("namekit: default configuration is invalid: " + err.Error())
		}
		globalManager = manager
	})
	return globalManager
}

// InitGlobal initializes the global manager with a custom instance.
// Must be called before any call to Global() to take effect.
// Safe for concurrent use but only the first call has any effect.
func InitGlobal(m *convention.Manager) {
	globalOnce.Do(func() {
		globalManager = m
	})
}

// ResetGlobal resets the global manager for testing purposes.
// This is NOT thread-safe and should only be used in tests.
func ResetGlobal() {
	globalOnce = sync.Once{}
	globalManager = nil
}
