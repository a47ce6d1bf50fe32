package theme

import (
	"fmt"

	"themekit/internal/debug"
	terrors "themekit/internal/errors"
	"themekit/internal/tokens"
)

// Token resolves a dot-path against the effective tree. Before readiness
// it returns the fallback (or the category's zero value) without touching
// the tree, so nothing styled before initialization can flash the wrong
// variant. Once ready, a missing path logs a diagnostic and falls back
// the same way; resolution never fails.
func (e *Engine) Token(path string, fallback ...any) any {
	e.mu.RLock()
	tree := e.effectiveTreeLocked()
	ready := e.ready
	e.mu.RUnlock()

	if !ready {
		return fallbackOrZero(path, fallback)
	}
	value, ok := tokens.Lookup(tree, path)
	if !ok {
		debug.Logf("theme: %v", terrors.New(terrors.CodePathNotFound, "token not found: "+path, nil))
		return fallbackOrZero(path, fallback)
	}
	return value
}

// CSSVariable renders path as a CSS custom-property reference:
// var(--colors-primary, #7C3AED). The second slot carries the explicit
// fallback when given, otherwise the resolved value, so consumers can
// choose between exact server-rendered values and browser-resolved
// custom properties. An empty fallback drops the slot entirely;
// var(--x, ) is not valid CSS.
func (e *Engine) CSSVariable(path string, fallback ...string) string {
	fb := ""
	if len(fallback) > 0 {
		fb = fallback[0]
	} else {
		fb = stringify(e.Token(path))
	}
	if fb == "" {
		return fmt.Sprintf("var(%s)", tokens.CSSVarName(path))
	}
	return fmt.Sprintf("var(%s, %s)", tokens.CSSVarName(path), fb)
}

// Styled resolves every dotted-path value in styles and passes literal
// values (no separator) through unchanged, letting one declarative style
// map mix token references and plain CSS. An optional fallback map
// supplies per-key fallbacks for the resolved entries; absent that, the
// original string is the fallback, so dotted CSS literals like "1.5rem"
// survive the resolution miss intact.
func (e *Engine) Styled(styles map[string]any, fallbacks ...map[string]any) map[string]any {
	var fbs map[string]any
	if len(fallbacks) > 0 {
		fbs = fallbacks[0]
	}

	out := make(map[string]any, len(styles))
	for key, value := range styles {
		path, ok := value.(string)
		if !ok || !tokens.IsPath(path) {
			out[key] = value
			continue
		}
		if fb, ok := fbs[key]; ok {
			out[key] = e.Token(path, fb)
		} else {
			out[key] = e.Token(path, path)
		}
	}
	return out
}

// Responsive wraps styles under a min-width media condition read from the
// breakpoints category. Before readiness it returns an empty map: no
// media-query assumptions are made before the real tree is known.
func (e *Engine) Responsive(breakpoint string, styles map[string]any) map[string]any {
	if !e.Ready() {
		return map[string]any{}
	}
	width := stringify(e.Token("breakpoints." + breakpoint))
	if width == "" || width == "0" {
		return map[string]any{}
	}
	return map[string]any{
		fmt.Sprintf("@media (min-width: %s)", width): styles,
	}
}

// Category getters: fixed-path wrappers over Token with the
// category-appropriate zero values, for call-site ergonomics.

// Color resolves colors.<name>; nested names like "text.primary" work too.
func (e *Engine) Color(name string) string {
	return stringify(e.Token("colors." + name))
}

// Spacing resolves spacing.<name>.
func (e *Engine) Spacing(name string) string {
	return stringify(e.Token("spacing." + name))
}

// Scale applies the spacing scale function to a multiplier. Without a
// callable scale entry it falls back to "0".
func (e *Engine) Scale(multiplier float64) string {
	if fn, ok := e.Token("spacing.scale").(tokens.ScaleFunc); ok {
		return fn(multiplier)
	}
	return "0"
}

// Typography resolves typography.<path>, e.g. "fontSize.lg".
func (e *Engine) Typography(path string) string {
	return stringify(e.Token("typography." + path))
}

// FontFamily resolves the typeface stack.
func (e *Engine) FontFamily() string {
	return stringify(e.Token("typography.fontFamily"))
}

// FontWeight resolves typography.fontWeight.<name> as a number.
func (e *Engine) FontWeight(name string) int {
	switch w := e.Token("typography.fontWeight." + name).(type) {
	case int:
		return w
	case int64:
		return int(w)
	case float64:
		return int(w)
	default:
		return 400
	}
}

// Shadow resolves shadows.<name>.
func (e *Engine) Shadow(name string) string {
	return stringify(e.Token("shadows." + name))
}

// BorderRadius resolves borderRadius.<name>.
func (e *Engine) BorderRadius(name string) string {
	return stringify(e.Token("borderRadius." + name))
}

// Transition resolves transitions.<name>.
func (e *Engine) Transition(name string) string {
	return stringify(e.Token("transitions." + name))
}

// fallbackOrZero picks the caller's fallback when supplied, else the
// hard-coded zero value for the path's category.
func fallbackOrZero(path string, fallback []any) any {
	if len(fallback) > 0 {
		return fallback[0]
	}
	return zeroValue(path)
}

// zeroValue is the per-category value consumers see when resolution
// cannot produce a real one: invisible rather than wrong.
func zeroValue(path string) any {
	segments := tokens.SplitPath(path)
	if len(segments) == 0 {
		return ""
	}
	switch segments[0] {
	case "colors":
		return ""
	case "spacing", "borderRadius", "breakpoints":
		return "0"
	case "typography":
		if len(segments) > 1 && segments[1] == "fontWeight" {
			return 400
		}
		return "1rem"
	case "shadows", "transitions":
		return "none"
	case "zIndex":
		return 0
	default:
		return ""
	}
}

func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case tokens.ScaleFunc:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
