// Package prefs detects the environment-level theme preference (the
// OS-reported light/dark choice) and exposes it to the engine as an
// injected capability. When the hosting environment has no such signal
// the None probe stands in, reporting Unknown — absence of the capability
// is never an error.
package prefs

import "sync"

// Preference is the detected environment-level variant preference.
type Preference string

const (
	Light   Preference = "light"
	Dark    Preference = "dark"
	Unknown Preference = "unknown"
)

// Parse maps arbitrary content to a Preference, treating anything outside
// the enumeration as Unknown.
func Parse(s string) Preference {
	switch s {
	case string(Light):
		return Light
	case string(Dark):
		return Dark
	default:
		return Unknown
	}
}

// Probe is the preference-detection contract: a point query plus a
// subscription for subsequent changes. Stop functions returned by
// Subscribe are idempotent.
type Probe interface {
	Current() Preference
	Subscribe(fn func(Preference)) (stop func())
}

// None is the probe used when the environment exposes no preference.
type None struct{}

func (None) Current() Preference { return Unknown }

func (None) Subscribe(func(Preference)) func() { return func() {} }

// Static holds a fixed preference that tests (or host applications with
// their own detection) can update; updates notify subscribers.
type Static struct {
	mu   sync.Mutex
	pref Preference
	subs map[int]func(Preference)
	next int
}

// NewStatic returns a probe reporting pref until Set is called.
func NewStatic(pref Preference) *Static {
	return &Static{pref: pref, subs: make(map[int]func(Preference))}
}

func (s *Static) Current() Preference {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pref
}

func (s *Static) Subscribe(fn func(Preference)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Set updates the preference and notifies subscribers of the change.
func (s *Static) Set(pref Preference) {
	s.mu.Lock()
	s.pref = pref
	fns := make([]func(Preference), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(pref)
	}
}
