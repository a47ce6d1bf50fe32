package tokens

import "fmt"

// DefaultScale is the spacing scale used by the built-in trees:
// multiples of a 4px base unit.
func DefaultScale(multiplier float64) string {
	return fmt.Sprintf("%gpx", multiplier*4)
}

// DefaultLight returns the built-in light variant tree.
func DefaultLight() Tree {
	t := baseTree()
	t["colors"] = Tree{
		"primary":    "#7C3AED",
		"secondary":  "#0891B2",
		"accent":     "#D97706",
		"background": "#FFFFFF",
		"surface":    "#F5F5F5",
		"border":     "#D4D4D8",
		"error":      "#E11D48",
		"warning":    "#D97706",
		"success":    "#059669",
		"info":       "#0E7490",
		"text": Tree{
			"primary":   "#18181B",
			"secondary": "#52525B",
			"disabled":  "#A1A1AA",
		},
	}
	t["shadows"] = Tree{
		"none": "none",
		"sm":   "0 1px 2px rgba(0, 0, 0, 0.05)",
		"md":   "0 4px 6px rgba(0, 0, 0, 0.10)",
		"lg":   "0 10px 15px rgba(0, 0, 0, 0.15)",
	}
	return t
}

// DefaultDark returns the built-in dark variant tree.
func DefaultDark() Tree {
	t := baseTree()
	t["colors"] = Tree{
		"primary":    "#A78BFA",
		"secondary":  "#22D3EE",
		"accent":     "#FBBF24",
		"background": "#1E1E2E",
		"surface":    "#181825",
		"border":     "#313244",
		"error":      "#FB7185",
		"warning":    "#FBBF24",
		"success":    "#34D399",
		"info":       "#7DCFFF",
		"text": Tree{
			"primary":   "#C8D3F5",
			"secondary": "#A9B1D6",
			"disabled":  "#565F89",
		},
	}
	t["shadows"] = Tree{
		"none": "none",
		"sm":   "0 1px 2px rgba(0, 0, 0, 0.40)",
		"md":   "0 4px 6px rgba(0, 0, 0, 0.50)",
		"lg":   "0 10px 15px rgba(0, 0, 0, 0.60)",
	}
	return t
}

// DefaultConfig pairs the built-in light and dark trees.
func DefaultConfig() Config {
	return Config{Light: DefaultLight(), Dark: DefaultDark()}
}

// baseTree holds the categories that are identical across the built-in
// variants.
func baseTree() Tree {
	return Tree{
		"spacing": Tree{
			"xs":    "4px",
			"sm":    "8px",
			"md":    "16px",
			"lg":    "24px",
			"xl":    "32px",
			"scale": ScaleFunc(DefaultScale),
		},
		"typography": Tree{
			"fontFamily": `"Inter", system-ui, sans-serif`,
			"fontSize": Tree{
				"xs":   "0.75rem",
				"sm":   "0.875rem",
				"base": "1rem",
				"lg":   "1.125rem",
				"xl":   "1.25rem",
				"xxl":  "1.5rem",
			},
			"fontWeight": Tree{
				"light":   300,
				"regular": 400,
				"medium":  500,
				"bold":    700,
			},
			"lineHeight": Tree{
				"tight":   "1.25",
				"normal":  "1.5",
				"relaxed": "1.75",
			},
		},
		"borderRadius": Tree{
			"none": "0",
			"sm":   "2px",
			"md":   "6px",
			"lg":   "12px",
			"full": "9999px",
		},
		"breakpoints": Tree{
			"sm": "640px",
			"md": "768px",
			"lg": "1024px",
			"xl": "1280px",
		},
		"transitions": Tree{
			"fast":   "100ms ease-in-out",
			"normal": "200ms ease-in-out",
			"slow":   "400ms ease-in-out",
		},
		"zIndex": Tree{
			"dropdown": 1000,
			"sticky":   1100,
			"modal":    1300,
			"popover":  1500,
			"tooltip":  1700,
		},
	}
}
