package tokens

import "testing"

func TestDefaultTreesCarryEveryCategory(t *testing.T) {
	for _, variant := range []struct {
		name string
		tree Tree
	}{
		{"light", DefaultLight()},
		{"dark", DefaultDark()},
	} {
		for _, category := range Categories {
			if variant.tree.Category(category) == nil {
				t.Errorf("%s tree missing category %s", variant.name, category)
			}
		}
	}
}

func TestDefaultTreesShareStructure(t *testing.T) {
	light, dark := DefaultLight(), DefaultDark()
	paths := []string{
		"colors.primary",
		"colors.text.disabled",
		"spacing.xl",
		"typography.fontWeight.bold",
		"shadows.lg",
		"breakpoints.md",
		"zIndex.modal",
	}
	for _, p := range paths {
		if _, ok := Lookup(light, p); !ok {
			t.Errorf("light tree missing %s", p)
		}
		if _, ok := Lookup(dark, p); !ok {
			t.Errorf("dark tree missing %s", p)
		}
	}
}

func TestDefaultScale(t *testing.T) {
	tree := DefaultLight()
	v, ok := Lookup(tree, "spacing.scale")
	if !ok {
		t.Fatal("spacing.scale missing")
	}
	fn, ok := v.(ScaleFunc)
	if !ok {
		t.Fatalf("spacing.scale is %T, want ScaleFunc", v)
	}
	if got := fn(2); got != "8px" {
		t.Errorf("scale(2) = %q, want 8px", got)
	}
	if got := fn(0.5); got != "2px" {
		t.Errorf("scale(0.5) = %q, want 2px", got)
	}
}
