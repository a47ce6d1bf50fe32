// Package tokens defines the design-token tree: the nested mapping of
// category -> token -> value that one named theme variant is built from.
//
// A Tree is plain data. The engine in internal/theme selects between the
// light and dark trees of a Config and layers runtime overrides on top;
// the validator in internal/validate checks a Config's shape before the
// host application trusts it.
package tokens

// ScaleFunc maps a numeric multiplier to a CSS length string.
// It is the single derived (non-literal) entry in a tree, stored at
// "spacing.scale".
type ScaleFunc func(multiplier float64) string

// Tree is the nested category -> token -> value mapping for one variant.
// Values are strings (CSS literals), numbers (font weights, z-index) or a
// ScaleFunc. Trees are immutable by convention: nothing in this module
// writes to a Tree after construction.
type Tree map[string]any

// Config pairs the two named variant trees supplied by the host
// application at configuration time.
type Config struct {
	Light Tree
	Dark  Tree
}

// Categories lists the top-level keys a complete tree carries.
var Categories = []string{
	"colors",
	"spacing",
	"typography",
	"shadows",
	"borderRadius",
	"breakpoints",
	"transitions",
	"zIndex",
}

// Category returns the sub-mapping for a top-level category, or nil when
// the category is absent or not a mapping.
func (t Tree) Category(name string) Tree {
	if t == nil {
		return nil
	}
	switch v := t[name].(type) {
	case Tree:
		return v
	case map[string]any:
		return Tree(v)
	default:
		return nil
	}
}
