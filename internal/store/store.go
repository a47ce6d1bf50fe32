// Package store provides the durable key-value adapters the theme engine
// persists its active variant through.
//
// Every implementation satisfies the same small contract: Get returns the
// empty string for a key that was never set, and any error from either
// method means "store unavailable" — the engine logs it and proceeds with
// defaults rather than propagating.
package store

import "sync"

// Store is the persistence adapter contract.
type Store interface {
	// Get returns the value stored under key, or "" when unset.
	Get(key string) (string, error)
	// Set durably writes value under key.
	Set(key, value string) error
}

// KeyVariant is the well-known key the engine persists its active variant
// under. The stored content is exactly one variant name; anything else is
// treated as corrupt and ignored by the engine.
const KeyVariant = "theme.variant"

// Noop is the adapter used when no durable storage capability exists.
// Reads see nothing, writes go nowhere, and neither ever fails.
type Noop struct{}

func (Noop) Get(string) (string, error) { return "", nil }

func (Noop) Set(string, string) error { return nil }

// Memory is an in-process adapter, used in tests and as a cheap default
// when persistence across runs is not wanted.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns an empty in-process store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key], nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
