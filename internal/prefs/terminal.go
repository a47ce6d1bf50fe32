package prefs

import "github.com/muesli/termenv"

// Terminal reports the preference implied by the terminal's background
// color. Terminals emit no change events for this, so Subscribe is a
// registration that never fires.
type Terminal struct{}

func (Terminal) Current() Preference {
	if termenv.HasDarkBackground() {
		return Dark
	}
	return Light
}

func (Terminal) Subscribe(func(Preference)) func() { return func() {} }
