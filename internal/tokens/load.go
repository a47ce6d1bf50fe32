package tokens

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// LoadConfig reads a light/dark theme config from a TOML file laid out as
//
//	[light.colors]
//	primary = "#7C3AED"
//	[dark.colors]
//	primary = "#A78BFA"
//
// TOML has no function values, so the derived "spacing.scale" entry is
// installed after decoding whenever a variant carries a spacing category
// without one. Structural problems beyond TOML syntax are left to the
// validator.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: theme configs are user-supplied paths
	if err != nil {
		return Config{}, fmt.Errorf("read theme config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes TOML bytes into a Config. See LoadConfig.
func ParseConfig(data []byte) (Config, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse theme config: %w", err)
	}

	cfg := Config{
		Light: fromRaw(raw["light"]),
		Dark:  fromRaw(raw["dark"]),
	}
	installScale(cfg.Light)
	installScale(cfg.Dark)
	return cfg, nil
}

// fromRaw converts a decoded TOML table into a Tree, normalizing nested
// tables so path lookups see a uniform shape.
func fromRaw(v any) Tree {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	tree := make(Tree, len(m))
	for k, val := range m {
		if child, ok := val.(map[string]any); ok {
			tree[k] = fromRaw(child)
			continue
		}
		tree[k] = val
	}
	return tree
}

func installScale(tree Tree) {
	spacing := tree.Category("spacing")
	if spacing == nil {
		return
	}
	if _, ok := spacing["scale"]; !ok {
		spacing["scale"] = ScaleFunc(DefaultScale)
	}
}
