package theme

import (
	"sync"

	"themekit/internal/debug"
	terrors "themekit/internal/errors"
	"themekit/internal/prefs"
	"themekit/internal/store"
	"themekit/internal/tokens"
	"themekit/internal/validate"
)

// Config and Tree are re-exported so hosts wiring an engine only need
// this package.
type (
	Config = tokens.Config
	Tree   = tokens.Tree
)

// Engine is the theme state machine. It holds the single source of truth
// for the active variant, merges runtime overrides into the effective
// token tree, and persists variant changes best-effort through its store.
//
// All failure modes short of miswiring are recovered locally: persistence
// errors, invalid variant names, and pre-ready mutations are logged as
// diagnostics and never escape as errors or panics.
type Engine struct {
	mu sync.RWMutex

	cfg      tokens.Config
	active   Variant
	ready    bool
	override tokens.Tree
	system   prefs.Preference

	// syncedToSystem marks that the current variant was adopted from the
	// environment preference, so the three-way cycle knows its position.
	syncedToSystem bool

	defaultVariant Variant
	store          store.Store
	probe          prefs.Probe
	onChange       func(Variant)
	stopProbe      func()

	validation *validate.Result
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithStore persists the active variant through s. Without this option
// the engine never touches durable storage.
func WithStore(s store.Store) Option {
	return func(e *Engine) { e.store = s }
}

// WithProbe supplies the environment preference probe. Without it the
// system preference stays unknown and system sync is a no-op.
func WithProbe(p prefs.Probe) Option {
	return func(e *Engine) { e.probe = p }
}

// WithDefault sets the variant used when no valid persisted value exists.
func WithDefault(v Variant) Option {
	return func(e *Engine) { e.defaultVariant = v }
}

// WithOnChange registers the change observer. It fires synchronously,
// immediately after each successful SetVariant, with the new variant.
func WithOnChange(fn func(Variant)) Option {
	return func(e *Engine) { e.onChange = fn }
}

// WithValidation runs the structural validator over the config at
// construction. Findings are logged and kept for Validation(); they never
// block resolution.
func WithValidation(strict bool) Option {
	return func(e *Engine) {
		result := validate.New(strict).Validate(e.cfg)
		e.validation = &result
	}
}

// New builds an engine around cfg. The engine stays uninitialized — and
// every mutator a diagnosed no-op — until Init is called.
func New(cfg tokens.Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:            cfg,
		defaultVariant: Variants()[0],
		probe:          prefs.None{},
		system:         prefs.Unknown,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.validation != nil {
		for _, msg := range e.validation.Errors {
			debug.Logf("theme: config error: %s", msg)
		}
		for _, msg := range e.validation.Warnings {
			debug.Logf("theme: config warning: %s", msg)
		}
	}
	return e
}

// Init performs the one-shot transition to ready: read the persisted
// variant, check it against the enumeration, fall back to the configured
// default and finally the enumeration's first member. Persistence
// failures are diagnostics, never fatal. Calling Init again is a no-op.
func (e *Engine) Init() {
	e.mu.Lock()
	if e.ready {
		e.mu.Unlock()
		debug.Log("theme: Init called on a ready engine, ignoring")
		return
	}

	variant := e.defaultVariant
	if !variant.Valid() {
		variant = Variants()[0]
	}

	if e.store != nil {
		stored, err := e.store.Get(store.KeyVariant)
		switch {
		case err != nil:
			debug.Logf("theme: %v", terrors.New(terrors.CodeStoreUnavailable, "read persisted variant", err))
		case stored != "":
			if v, ok := ParseVariant(stored); ok {
				variant = v
			} else {
				debug.Logf("theme: ignoring corrupt persisted variant %q", stored)
			}
		}
	}

	e.active = variant
	e.ready = true
	e.system = e.probe.Current()
	e.stopProbe = e.probe.Subscribe(e.setSystemPreference)
	e.mu.Unlock()
}

// Close detaches the engine from its preference probe. The engine remains
// usable; it just stops seeing preference changes.
func (e *Engine) Close() {
	e.mu.Lock()
	stop := e.stopProbe
	e.stopProbe = nil
	e.mu.Unlock()
	if stop != nil {
		stop()
	}
}

// Ready reports whether initialization has completed.
func (e *Engine) Ready() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ready
}

// ActiveVariant returns the active variant, or "" before readiness.
func (e *Engine) ActiveVariant() Variant {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if !e.ready {
		return ""
	}
	return e.active
}

// IsDark reports whether the dark variant is active.
func (e *Engine) IsDark() bool {
	return e.ActiveVariant() == Dark
}

// SystemPreference returns the detected environment preference.
func (e *Engine) SystemPreference() prefs.Preference {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.system
}

// Validation returns the construction-time validator result, or nil when
// validation was not requested.
func (e *Engine) Validation() *validate.Result {
	return e.validation
}

// SetVariant makes v the active variant, persists it best-effort, and
// notifies the change observer. Names outside the enumeration are
// rejected with a diagnostic and leave state (and the persisted value)
// untouched.
func (e *Engine) SetVariant(v Variant) {
	e.setVariant(v, false)
}

func (e *Engine) setVariant(v Variant, fromSystem bool) {
	e.mu.Lock()
	if !e.ready {
		e.mu.Unlock()
		debug.Logf("theme: %v", terrors.New(terrors.CodeNotReady, "SetVariant before Init", nil))
		return
	}
	if !v.Valid() {
		e.mu.Unlock()
		debug.Logf("theme: %v", terrors.New(terrors.CodeInvalidVariant, "invalid variant "+string(v), nil))
		return
	}

	e.active = v
	e.syncedToSystem = fromSystem
	st := e.store
	fn := e.onChange
	e.mu.Unlock()

	if st != nil {
		if err := st.Set(store.KeyVariant, string(v)); err != nil {
			debug.Logf("theme: %v", terrors.New(terrors.CodeStoreUnavailable, "persist variant", err))
		}
	}
	if fn != nil {
		fn(v)
	}
}

// ToggleVariant switches to the binary complement of the active variant.
func (e *Engine) ToggleVariant() {
	e.mu.RLock()
	ready, active := e.ready, e.active
	e.mu.RUnlock()
	if !ready {
		debug.Logf("theme: %v", terrors.New(terrors.CodeNotReady, "ToggleVariant before Init", nil))
		return
	}
	e.SetVariant(active.Other())
}

// CycleVariant advances light -> dark -> system preference -> light.
// Without a detected system preference the cycle degenerates to the
// binary toggle.
func (e *Engine) CycleVariant() {
	e.mu.RLock()
	ready, active, system, synced := e.ready, e.active, e.system, e.syncedToSystem
	e.mu.RUnlock()
	if !ready {
		debug.Logf("theme: %v", terrors.New(terrors.CodeNotReady, "CycleVariant before Init", nil))
		return
	}
	if system == prefs.Unknown {
		e.SetVariant(active.Other())
		return
	}

	switch {
	case synced:
		e.SetVariant(Light)
	case active == Light:
		e.SetVariant(Dark)
	default:
		e.UseSystem()
	}
}

// UseSystem adopts the environment preference as the active variant. With
// no preference detected this is a diagnosed no-op.
func (e *Engine) UseSystem() {
	e.mu.RLock()
	ready, system := e.ready, e.system
	e.mu.RUnlock()
	if !ready {
		debug.Logf("theme: %v", terrors.New(terrors.CodeNotReady, "UseSystem before Init", nil))
		return
	}
	v, ok := ParseVariant(string(system))
	if !ok {
		debug.Logf("theme: %v", terrors.New(terrors.CodeProbeUnavailable, "UseSystem with no detected preference", nil))
		return
	}
	e.setVariant(v, true)
}

// UpdateToken deep-sets value at path inside the override tree, creating
// intermediate mappings as needed. Values are not checked against the
// schema; that stays the caller's responsibility.
func (e *Engine) UpdateToken(path string, value any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.ready {
		debug.Logf("theme: %v", terrors.New(terrors.CodeNotReady, "UpdateToken before Init", nil))
		return
	}
	if e.override == nil {
		e.override = tokens.Tree{}
	}
	tokens.DeepSet(e.override, path, value)
}

// ResetOverrides clears the override tree.
func (e *Engine) ResetOverrides() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.ready {
		debug.Logf("theme: %v", terrors.New(terrors.CodeNotReady, "ResetOverrides before Init", nil))
		return
	}
	e.override = nil
}

// EffectiveTree returns the active variant's tree with any overrides
// merged on top (shallow, per top-level category), or nil before
// readiness.
func (e *Engine) EffectiveTree() tokens.Tree {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.effectiveTreeLocked()
}

func (e *Engine) effectiveTreeLocked() tokens.Tree {
	if !e.ready {
		return nil
	}
	base := e.cfg.Light
	if e.active == Dark {
		base = e.cfg.Dark
	}
	if e.override == nil {
		return base
	}
	return tokens.Merge(base, e.override)
}

// setSystemPreference is the probe subscription callback. The preference
// is read-only input: it never changes the active variant by itself.
func (e *Engine) setSystemPreference(p prefs.Preference) {
	e.mu.Lock()
	e.system = p
	e.mu.Unlock()
}
