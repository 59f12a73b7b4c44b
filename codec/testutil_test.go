package codec_test

import (
	"sort"

	"go.schemacodec.dev/codec/value"
)

// kv is a plain, exported-fields-only stand-in for one entry of a
// decoded object, used so github.com/google/go-cmp (which panics on
// unexported fields by default) can diff decoded trees without
// reaching into *orderedmap.OrderedMap's internals.
type kv struct {
	Key string
	Val any
}

// comparable recursively converts a value.Value tree into a shape
// built entirely from exported fields/slices/maps, preserving object
// key order as kv slices.
func comparable(v value.Value) any {
	switch t := v.(type) {
	case *value.Object:
		if t == nil {
			return nil
		}
		out := make([]kv, 0, t.Len())
		for p := t.Oldest(); p != nil; p = p.Next() {
			out = append(out, kv{Key: p.Key, Val: comparable(p.Value)})
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = comparable(e)
		}
		return out
	default:
		return v
	}
}

// comparableUnordered is like comparable but sorts object keys, for
// comparing against a plain map[string]any whose order is not
// meaningful (e.g. JSON text the caller supplied by hand).
func comparableUnordered(v value.Value) any {
	switch t := v.(type) {
	case *value.Object:
		if t == nil {
			return nil
		}
		out := make([]kv, 0, t.Len())
		for p := t.Oldest(); p != nil; p = p.Next() {
			out = append(out, kv{Key: p.Key, Val: comparableUnordered(p.Value)})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
		return out
	case map[string]any:
		out := make([]kv, 0, len(t))
		for k, val := range t {
			out = append(out, kv{Key: k, Val: comparableUnordered(val)})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = comparableUnordered(e)
		}
		return out
	default:
		return v
	}
}
