package canon

import (
	"fmt"
	"reflect"
	"sort"
)

// FieldDiff holds the two sides of a single differing field.
type FieldDiff struct {
	A any `json:"a"`
	B any `json:"b"`
}

// DiffTree maps a dotted field path ("meta.savedAt", "cards") to the values
// it holds on each side. It exists purely to populate diagnostic output shown
// during conflict resolution and must never influence merge decisions.
type DiffTree map[string]FieldDiff

// Paths returns the differing field paths in sorted order.
func (d DiffTree) Paths() []string {
	paths := make([]string, 0, len(d))
	for p := range d {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Diff computes the recursive field-level difference between a and b after
// normalization. Objects are walked per key; arrays are compared as whole
// units — any element difference reports the two full arrays, since array
// reordering has no defined merge semantics here.
func Diff(a, b any) (DiffTree, error) {
	normA, err := Normalize(a)
	if err != nil {
		return nil, fmt.Errorf("normalize left side: %w", err)
	}
	normB, err := Normalize(b)
	if err != nil {
		return nil, fmt.Errorf("normalize right side: %w", err)
	}

	tree := make(DiffTree)
	walkDiff(tree, "", normA, normB)
	return tree, nil
}

func walkDiff(tree DiffTree, path string, a, b any) {
	mapA, okA := a.(map[string]any)
	mapB, okB := b.(map[string]any)
	if okA && okB {
		for _, key := range unionKeys(mapA, mapB) {
			valA, inA := mapA[key]
			valB, inB := mapB[key]
			switch {
			case inA && inB:
				walkDiff(tree, joinPath(path, key), valA, valB)
			case inA:
				tree[joinPath(path, key)] = FieldDiff{A: valA, B: nil}
			default:
				tree[joinPath(path, key)] = FieldDiff{A: nil, B: valB}
			}
		}
		return
	}

	if !reflect.DeepEqual(a, b) {
		if path == "" {
			path = "."
		}
		tree[path] = FieldDiff{A: a, B: b}
	}
}

func unionKeys(a, b map[string]any) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := seen[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
