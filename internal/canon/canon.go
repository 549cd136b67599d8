// Package canon implements deterministic, order-independent serialization of
// snapshots into comparable content hashes, plus a recursive structural diff
// used for conflict diagnostics.
//
// The content hash is the single source of truth for "has anything changed":
// two values hash equal iff they are equal after dropping null fields and
// normalizing object key order. Empty strings and empty collections are
// preserved — they are meaningful schema states, distinct from "absent".
package canon

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Hash serializes v into its canonical string form. The inputs are small, so
// the canonical serialization itself serves as the hash; string equality is
// all callers ever need.
func Hash(v any) (string, error) {
	norm, err := Normalize(v)
	if err != nil {
		return "", err
	}

	out, err := marshalCanonical(norm)
	if err != nil {
		return "", fmt.Errorf("serialize normalized tree: %w", err)
	}
	return out, nil
}

// Normalize round-trips v through JSON and strips nulls: object keys whose
// value is null are dropped, arrays keep their order, primitives pass
// through. The result is a tree of map[string]any, []any, and primitives.
func Normalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode value for normalization: %w", err)
	}

	var tree any
	if err = json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("decode value for normalization: %w", err)
	}

	return stripNulls(tree), nil
}

func stripNulls(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if val == nil {
				continue
			}
			out[k] = stripNulls(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, el := range t {
			// null array elements are positions, not absent fields; keep them
			out[i] = stripNulls(el)
		}
		return out
	default:
		return v
	}
}

// marshalCanonical writes the normalized tree with object keys in
// lexicographic order. encoding/json already sorts map keys, but the explicit
// walk keeps the ordering guarantee independent of that implementation
// detail.
func marshalCanonical(v any) (string, error) {
	var b strings.Builder
	if err := writeCanonical(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeCanonical(b *strings.Builder, v any) error {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			key, err := json.Marshal(k)
			if err != nil {
				return err
			}
			b.Write(key)
			b.WriteByte(':')
			if err = writeCanonical(b, t[k]); err != nil {
				return err
			}
		}
		b.WriteByte('}')
		return nil
	case []any:
		b.WriteByte('[')
		for i, el := range t {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := writeCanonical(b, el); err != nil {
				return err
			}
		}
		b.WriteByte(']')
		return nil
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return err
		}
		b.Write(raw)
		return nil
	}
}
