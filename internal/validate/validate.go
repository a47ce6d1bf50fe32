// Package validate performs the structural check of a theme config before
// the host application trusts it. Validation is pure and advisory: it
// produces a Result the caller may log, ignore, or treat as fatal, and it
// never gates token resolution.
package validate

import (
	"fmt"
	"regexp"

	"themekit/internal/tokens"
)

// Result aggregates one validation pass. It is produced fresh on every
// call and never mutated afterwards.
type Result struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// Validator checks theme configs. Strict promotes every warning to an
// error before Valid is computed; cross-variant key asymmetry and
// out-of-range font weights are promoted like any other warning.
type Validator struct {
	Strict bool
}

// New returns a validator pre-bound to the given strictness.
func New(strict bool) *Validator {
	return &Validator{Strict: strict}
}

// requiredPaths lists the dotted paths every variant must carry with a
// non-empty value.
var requiredPaths = []string{
	"colors.primary",
	"colors.secondary",
	"colors.background",
	"colors.text.primary",
	"spacing.xs",
	"spacing.sm",
	"spacing.md",
	"spacing.lg",
	"spacing.xl",
	"typography.fontFamily",
	"typography.fontSize.base",
	"typography.fontWeight.regular",
}

var (
	hexColorRe  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	funcColorRe = regexp.MustCompile(`^(?:rgb|rgba|hsl|hsla)\([^()]*\)$`)
	lengthRe    = regexp.MustCompile(`^-?[0-9]+(?:\.[0-9]+)?(?:px|rem|em|%|vh|vw|pt)$`)

	colorKeywords = map[string]bool{
		"transparent":  true,
		"currentColor": true,
		"inherit":      true,
		"initial":      true,
		"none":         true,
		"white":        true,
		"black":        true,
	}
)

// Validate checks a light/dark config pair: per-variant required paths and
// value formats, then cross-variant key consistency.
func (v *Validator) Validate(cfg tokens.Config) Result {
	var errs, warns []string

	for _, variant := range []struct {
		label string
		tree  tokens.Tree
	}{{"light", cfg.Light}, {"dark", cfg.Dark}} {
		if variant.tree == nil {
			errs = append(errs, fmt.Sprintf("missing %s theme", variant.label))
			continue
		}
		e, w := checkTree(variant.tree, variant.label)
		errs = append(errs, e...)
		warns = append(warns, w...)
	}

	warns = append(warns, checkSymmetry(cfg.Light, cfg.Dark)...)

	return v.finish(errs, warns)
}

// ValidateTree checks a single variant tree. The label names the variant
// in any findings.
func (v *Validator) ValidateTree(tree tokens.Tree, label string) Result {
	if tree == nil {
		return v.finish([]string{fmt.Sprintf("missing %s theme", label)}, nil)
	}
	errs, warns := checkTree(tree, label)
	return v.finish(errs, warns)
}

func (v *Validator) finish(errs, warns []string) Result {
	if v.Strict {
		errs = append(errs, warns...)
		warns = nil
	}
	return Result{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warns,
	}
}

func checkTree(tree tokens.Tree, label string) (errs, warns []string) {
	for _, path := range requiredPaths {
		value, ok := tokens.Lookup(tree, path)
		if !ok || isEmpty(value) {
			errs = append(errs, fmt.Sprintf("%s: missing required token %s", label, path))
		}
	}

	errs = append(errs, checkColors(tree.Category("colors"), label, "colors")...)
	errs = append(errs, checkSpacing(tree.Category("spacing"), label)...)

	warns = append(warns, checkFontWeights(tree.Category("typography").Category("fontWeight"), label)...)

	return errs, warns
}

// checkColors walks the colors category recursively; every leaf must match
// the CSS color grammar (hex, rgb()/rgba()/hsl()/hsla(), or a keyword).
// Nested groups may be Tree or plain map[string]any, same as Lookup.
func checkColors(node tokens.Tree, label, prefix string) []string {
	var errs []string
	for key, value := range node {
		path := prefix + "." + key
		if child, ok := tokens.AsTree(value); ok {
			errs = append(errs, checkColors(child, label, path)...)
			continue
		}
		s, ok := value.(string)
		if !ok || !isColor(s) {
			errs = append(errs, fmt.Sprintf("%s: %s has invalid color value %v", label, path, value))
		}
	}
	return errs
}

// checkSpacing requires CSS length values throughout, with the single
// exception of the dynamic "scale" entry, which must be callable.
func checkSpacing(node tokens.Tree, label string) []string {
	var errs []string
	if node != nil {
		if _, ok := node["scale"]; !ok {
			errs = append(errs, fmt.Sprintf("%s: missing required token spacing.scale", label))
		}
	}
	for key, value := range node {
		if key == "scale" {
			if _, ok := value.(tokens.ScaleFunc); !ok {
				errs = append(errs, fmt.Sprintf("%s: spacing.scale must be a function", label))
			}
			continue
		}
		s, ok := value.(string)
		if !ok || !isLength(s) {
			errs = append(errs, fmt.Sprintf("%s: spacing.%s has invalid length value %v", label, key, value))
		}
	}
	return errs
}

// checkFontWeights flags numeric weights outside [100,900]. Out-of-range
// weights still render, so this is a warning rather than an error.
func checkFontWeights(node tokens.Tree, label string) []string {
	var warns []string
	for key, value := range node {
		weight, ok := asNumber(value)
		if !ok {
			continue
		}
		if weight < 100 || weight > 900 {
			warns = append(warns, fmt.Sprintf("%s: typography.fontWeight.%s is outside [100,900]: %v", label, key, value))
		}
	}
	return warns
}

// checkSymmetry warns on the symmetric difference of top-level keys
// between the two variants. Asymmetric custom categories are allowed, so
// this never produces an error.
func checkSymmetry(light, dark tokens.Tree) []string {
	if light == nil || dark == nil {
		return nil
	}
	var warns []string
	for key := range light {
		if _, ok := dark[key]; !ok {
			warns = append(warns, fmt.Sprintf("category %q present in light but not dark", key))
		}
	}
	for key := range dark {
		if _, ok := light[key]; !ok {
			warns = append(warns, fmt.Sprintf("category %q present in dark but not light", key))
		}
	}
	return warns
}

func isColor(s string) bool {
	return hexColorRe.MatchString(s) || funcColorRe.MatchString(s) || colorKeywords[s]
}

func isLength(s string) bool {
	return s == "0" || lengthRe.MatchString(s)
}

func isEmpty(v any) bool {
	s, ok := v.(string)
	return ok && s == ""
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
