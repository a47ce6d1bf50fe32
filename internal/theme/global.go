package theme

import "sync"

// The package-level engine gives ambient access for hosts that want it,
// with an explicit configure/reset lifecycle so tests can isolate state.
// Reading it before Configure is a wiring mistake, not a runtime data
// condition, and is the one failure in this module that panics.

var (
	defaultMu     sync.RWMutex
	defaultEngine *Engine
)

// Configure builds an engine, runs its initialization, and installs it as
// the package default. It returns the engine for callers that prefer the
// explicit handle.
func Configure(cfg Config, opts ...Option) *Engine {
	e := New(cfg, opts...)
	e.Init()

	defaultMu.Lock()
	defaultEngine = e
	defaultMu.Unlock()
	return e
}

// Default returns the package-level engine. It panics when called before
// Configure.
func Default() *Engine {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	if defaultEngine == nil {
		panic("theme: Default called before Configure")
	}
	return defaultEngine
}

// Reset tears down the package default so tests start clean.
func Reset() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultEngine != nil {
		defaultEngine.Close()
		defaultEngine = nil
	}
}
