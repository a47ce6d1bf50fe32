package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themekit/internal/tokens"
)

func readyEngine(t *testing.T) *Engine {
	t.Helper()
	e := New(tokens.DefaultConfig())
	e.Init()
	return e
}

func TestTokenReturnsExactStoredValues(t *testing.T) {
	e := readyEngine(t)
	tree := tokens.DefaultLight()

	paths := []string{
		"colors.primary",
		"colors.text.disabled",
		"spacing.md",
		"typography.fontSize.lg",
		"typography.fontWeight.bold",
		"shadows.sm",
		"borderRadius.full",
		"breakpoints.xl",
		"transitions.slow",
		"zIndex.tooltip",
	}
	for _, p := range paths {
		want, ok := tokens.Lookup(tree, p)
		require.True(t, ok, "path %s should exist in the default tree", p)
		assert.Equal(t, want, e.Token(p), "path %s", p)
	}
}

func TestTokenMissingPathFallsBack(t *testing.T) {
	e := readyEngine(t)

	assert.Equal(t, "#F0F", e.Token("colors.nope", "#F0F"))
	assert.NotPanics(t, func() {
		e.Token("completely.made.up.path")
	})
}

func TestTokenBeforeReadyAlwaysFallsBack(t *testing.T) {
	e := New(tokens.DefaultConfig())

	// Repeated calls are idempotent and never touch the tree.
	for i := 0; i < 3; i++ {
		assert.Equal(t, "#F0F", e.Token("colors.primary", "#F0F"))
		assert.Equal(t, "", e.Token("colors.primary"))
		assert.Equal(t, "0", e.Token("spacing.md"))
		assert.Equal(t, "1rem", e.Token("typography.fontSize.base"))
		assert.Equal(t, 400, e.Token("typography.fontWeight.bold"))
		assert.Equal(t, "none", e.Token("shadows.lg"))
		assert.Equal(t, "none", e.Token("transitions.fast"))
		assert.Equal(t, 0, e.Token("zIndex.modal"))
	}
}

func TestCSSVariable(t *testing.T) {
	e := readyEngine(t)

	assert.Equal(t, "var(--colors-primary, #000)", e.CSSVariable("colors.primary", "#000"))

	// Without an explicit fallback the resolved value fills the slot.
	primary := e.Color("primary")
	assert.Equal(t, "var(--colors-primary, "+primary+")", e.CSSVariable("colors.primary"))

	assert.Equal(t, "var(--colors-text-primary, "+e.Color("text.primary")+")",
		e.CSSVariable("colors.text.primary"))
}

func TestCSSVariableOmitsEmptyFallbackSlot(t *testing.T) {
	e := New(tokens.DefaultConfig())

	// Before readiness the colors zero value is ""; the fallback slot is
	// dropped rather than rendered empty.
	assert.Equal(t, "var(--colors-primary)", e.CSSVariable("colors.primary"))

	e.Init()
	assert.Equal(t, "var(--colors-nope)", e.CSSVariable("colors.nope"))
}

func TestStyledMixesPathsAndLiterals(t *testing.T) {
	e := readyEngine(t)

	out := e.Styled(map[string]any{
		"color":        "colors.primary",
		"padding":      "spacing.md",
		"display":      "flex", // literal, no separator
		"border":       "1px",  // literal
		"fontWeight":   "typography.fontWeight.bold",
		"lineHeight":   "1.5", // dotted literal, not a token path
		"opacity":      "0.5",
		"customNumber": 3, // non-string passes through
	})

	assert.Equal(t, e.Color("primary"), out["color"])
	assert.Equal(t, "16px", out["padding"])
	assert.Equal(t, "flex", out["display"])
	assert.Equal(t, "1px", out["border"])
	assert.Equal(t, 700, out["fontWeight"])
	assert.Equal(t, "1.5", out["lineHeight"])
	assert.Equal(t, "0.5", out["opacity"])
	assert.Equal(t, 3, out["customNumber"])
}

func TestStyledAppliesFallbackMap(t *testing.T) {
	e := readyEngine(t)

	out := e.Styled(
		map[string]any{
			"color":      "colors.doesNotExist",
			"background": "colors.primary",
		},
		map[string]any{
			"color": "#FALLBACK",
		},
	)

	assert.Equal(t, "#FALLBACK", out["color"])
	assert.Equal(t, e.Color("primary"), out["background"])
}

func TestResponsive(t *testing.T) {
	e := readyEngine(t)
	styles := map[string]any{"display": "grid"}

	out := e.Responsive("md", styles)
	require.Len(t, out, 1)
	wrapped, ok := out["@media (min-width: 768px)"]
	require.True(t, ok, "got %v", out)
	assert.Equal(t, styles, wrapped)
}

func TestResponsiveBeforeReadyIsEmpty(t *testing.T) {
	e := New(tokens.DefaultConfig())

	out := e.Responsive("md", map[string]any{"display": "grid"})
	assert.Empty(t, out)
}

func TestResponsiveUnknownBreakpointIsEmpty(t *testing.T) {
	e := readyEngine(t)

	out := e.Responsive("ultrawide", map[string]any{"display": "grid"})
	assert.Empty(t, out)
}

func TestCategoryGetters(t *testing.T) {
	e := readyEngine(t)

	assert.Equal(t, "#7C3AED", e.Color("primary"))
	assert.Equal(t, "#18181B", e.Color("text.primary"))
	assert.Equal(t, "16px", e.Spacing("md"))
	assert.Equal(t, "1.125rem", e.Typography("fontSize.lg"))
	assert.Equal(t, 700, e.FontWeight("bold"))
	assert.Equal(t, 400, e.FontWeight("missing"))
	assert.Contains(t, e.FontFamily(), "Inter")
	assert.Equal(t, "none", e.Shadow("none"))
	assert.Equal(t, "6px", e.BorderRadius("md"))
	assert.Equal(t, "200ms ease-in-out", e.Transition("normal"))
}

func TestScale(t *testing.T) {
	e := readyEngine(t)
	assert.Equal(t, "12px", e.Scale(3))

	// Without a callable scale entry the getter degrades to "0".
	e.UpdateToken("spacing.scale", "literal")
	assert.Equal(t, "0", e.Scale(3))
}

func TestGettersTrackVariantSwitch(t *testing.T) {
	e := readyEngine(t)
	lightPrimary := e.Color("primary")

	e.SetVariant(Dark)
	darkPrimary := e.Color("primary")

	assert.NotEqual(t, lightPrimary, darkPrimary)
	assert.Equal(t, "#A78BFA", darkPrimary)
}
