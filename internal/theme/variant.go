// Package theme owns the runtime theme state: which named variant is
// active, the overrides layered on top of its token tree, and the
// dot-path resolution consumers read tokens through.
//
// The engine is a state machine with exactly two states. It starts
// uninitialized — consumers resolving tokens get fallbacks only — and
// becomes ready once Init has reconciled the persisted variant with the
// caller's default. Readiness is one-shot and never reverts.
package theme

// Variant names one alternative token tree. The enumeration is closed;
// every mutation is checked against it.
type Variant string

const (
	Light Variant = "light"
	Dark  Variant = "dark"
)

// Variants returns the closed enumeration in its canonical order. The
// first member is the final initialization fallback.
func Variants() []Variant {
	return []Variant{Light, Dark}
}

// ParseVariant reports whether s names a member of the enumeration.
func ParseVariant(s string) (Variant, bool) {
	for _, v := range Variants() {
		if s == string(v) {
			return v, true
		}
	}
	return "", false
}

// Valid reports membership in the enumeration.
func (v Variant) Valid() bool {
	_, ok := ParseVariant(string(v))
	return ok
}

// Other returns the binary complement: light for dark, dark for light.
func (v Variant) Other() Variant {
	if v == Dark {
		return Light
	}
	return Dark
}
