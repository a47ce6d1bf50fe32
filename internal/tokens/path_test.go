package tokens

import (
	"reflect"
	"testing"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{"simple", "colors.primary", []string{"colors", "primary"}},
		{"deep", "typography.fontSize.lg", []string{"typography", "fontSize", "lg"}},
		{"single", "colors", []string{"colors"}},
		{"empty segments dropped", "colors..primary", []string{"colors", "primary"}},
		{"leading separator", ".colors.primary", []string{"colors", "primary"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitPath(tt.path)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	tree := Tree{
		"colors": Tree{
			"primary": "#FFF",
			"text": Tree{
				"primary": "#000",
			},
		},
		"spacing": map[string]any{
			"md": "16px",
		},
	}

	tests := []struct {
		name   string
		path   string
		want   any
		wantOK bool
	}{
		{"top-level hit", "colors.primary", "#FFF", true},
		{"nested hit", "colors.text.primary", "#000", true},
		{"plain map node", "spacing.md", "16px", true},
		{"missing leaf", "colors.missing", nil, false},
		{"missing category", "nothing.here", nil, false},
		{"descend through leaf", "colors.primary.deeper", nil, false},
		{"empty path", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tree, tt.path)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Lookup(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestDeepSetCreatesIntermediates(t *testing.T) {
	tree := Tree{}
	DeepSet(tree, "colors.text.primary", "#ABC")

	got, ok := Lookup(tree, "colors.text.primary")
	if !ok || got != "#ABC" {
		t.Fatalf("expected #ABC at colors.text.primary, got %v (ok=%v)", got, ok)
	}
}

func TestDeepSetReplacesNonMapIntermediate(t *testing.T) {
	tree := Tree{"colors": "not-a-map"}
	DeepSet(tree, "colors.primary.deep.deeper", "#ABC")

	got, ok := Lookup(tree, "colors.primary.deep.deeper")
	if !ok || got != "#ABC" {
		t.Fatalf("expected deep set to replace the literal intermediate, got %v (ok=%v)", got, ok)
	}
}

func TestDeepSetArbitraryDepth(t *testing.T) {
	tree := Tree{}
	DeepSet(tree, "a.b.c.d.e.f.g.h", 42)

	got, ok := Lookup(tree, "a.b.c.d.e.f.g.h")
	if !ok || got != 42 {
		t.Fatalf("expected 42 at depth 8, got %v (ok=%v)", got, ok)
	}
}

func TestMergeReplacesCategoriesShallow(t *testing.T) {
	base := Tree{
		"colors":  Tree{"primary": "#111", "secondary": "#222"},
		"spacing": Tree{"md": "16px"},
	}
	override := Tree{
		"colors": Tree{"primary": "#999"},
	}

	merged := Merge(base, override)

	// The override's colors category fully replaces the base category.
	if got, _ := Lookup(merged, "colors.primary"); got != "#999" {
		t.Errorf("colors.primary = %v, want #999", got)
	}
	if _, ok := Lookup(merged, "colors.secondary"); ok {
		t.Error("colors.secondary should be gone: override replaces the category")
	}
	// Untouched categories come through from the base.
	if got, _ := Lookup(merged, "spacing.md"); got != "16px" {
		t.Errorf("spacing.md = %v, want 16px", got)
	}
	// Inputs are not mutated.
	if got, _ := Lookup(base, "colors.primary"); got != "#111" {
		t.Errorf("base mutated: colors.primary = %v", got)
	}
}

func TestMergeEmptyOverrideReturnsBase(t *testing.T) {
	base := Tree{"colors": Tree{"primary": "#111"}}
	if got := Merge(base, nil); !reflect.DeepEqual(got, base) {
		t.Errorf("Merge(base, nil) = %v, want base", got)
	}
}

func TestCSSVarName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"colors.primary", "--colors-primary"},
		{"typography.fontSize.lg", "--typography-fontSize-lg"},
		{"spacing", "--spacing"},
	}
	for _, tt := range tests {
		if got := CSSVarName(tt.path); got != tt.want {
			t.Errorf("CSSVarName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestIsPath(t *testing.T) {
	if !IsPath("colors.primary") {
		t.Error("colors.primary should be a path")
	}
	if IsPath("#FFFFFF") {
		t.Error("#FFFFFF should be a literal")
	}
	if IsPath("12px") {
		t.Error("12px should be a literal")
	}
}
