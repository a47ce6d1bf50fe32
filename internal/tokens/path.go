package tokens

import "strings"

// PathSeparator separates the segments of a token path such as
// "typography.fontSize.lg".
const PathSeparator = "."

// SplitPath breaks a dotted token path into its segments.
// Empty segments are dropped, so "colors..primary" and ".colors.primary"
// resolve the same way as "colors.primary".
func SplitPath(path string) []string {
	parts := strings.Split(path, PathSeparator)
	segments := parts[:0]
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// IsPath reports whether s looks like a token path rather than a literal
// CSS value. Batch resolution uses this to pass literals through untouched.
func IsPath(s string) bool {
	return strings.Contains(s, PathSeparator)
}

// Lookup walks path segment by segment through the tree and returns the
// value found there. The second return is false when any segment is
// missing or a non-mapping value is reached before the final segment.
func Lookup(tree Tree, path string) (any, bool) {
	segments := SplitPath(path)
	if len(segments) == 0 {
		return nil, false
	}

	var current any = tree
	for _, seg := range segments {
		node, ok := AsTree(current)
		if !ok {
			return nil, false
		}
		current, ok = node[seg]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// DeepSet writes value at path inside the tree, creating intermediate
// mappings as needed. An intermediate that exists but is not a mapping is
// replaced, so a set on an arbitrarily deep path never fails.
func DeepSet(tree Tree, path string, value any) {
	segments := SplitPath(path)
	if tree == nil || len(segments) == 0 {
		return
	}

	node := tree
	for _, seg := range segments[:len(segments)-1] {
		child, ok := AsTree(node[seg])
		if !ok {
			child = Tree{}
			node[seg] = child
		}
		node = child
	}
	node[segments[len(segments)-1]] = value
}

// Merge layers an override tree over a base tree, shallow per top-level
// category: a category present in the override fully replaces the base
// category's mapping, matching spread semantics. Neither input is mutated.
func Merge(base, override Tree) Tree {
	if len(override) == 0 {
		return base
	}
	merged := make(Tree, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

// CSSVarName converts a token path to its CSS custom-property name, e.g.
// "colors.text.primary" -> "--colors-text-primary".
func CSSVarName(path string) string {
	return "--" + strings.Join(SplitPath(path), "-")
}

// AsTree normalizes a nested node to a Tree. Hosts build sub-mappings as
// either Tree or plain map[string]any; both walk the same way.
func AsTree(v any) (Tree, bool) {
	switch m := v.(type) {
	case Tree:
		return m, m != nil
	case map[string]any:
		return Tree(m), m != nil
	default:
		return nil, false
	}
}
