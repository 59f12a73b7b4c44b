// Package value is the dynamic JSON value tree that the codec package
// decodes into and encodes from.
//
// A Value is one of: nil, bool, string (including the decimal strings
// used for 128-bit integers), json.Number (all other numeric leaves,
// signed or unsigned, integer or float), []any (sequences,
// tuples, and unnamed-field structs), or *orderedmap.OrderedMap[string, any]
// (named-field structs and single-key enum objects). json.Number is
// used instead of float64 so u64/i64 values round-trip without
// precision loss, and OrderedMap is used instead of map[string]any so
// a NamedFields struct's declared field order survives into any JSON
// text the value is later marshaled to.
package value

import (
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Value is a node of the dynamic JSON value tree.
type Value = any

// Object is the concrete type used for struct/enum objects produced
// by codec.Decode.
type Object = orderedmap.OrderedMap[string, any]

// NewObject returns an empty, ordered JSON object.
func NewObject() *Object {
	return orderedmap.New[string, any]()
}

// SingleKeyObject builds the one-key object shape used for decoded
// enum values: { variantName: payload }.
func SingleKeyObject(key string, payload Value) *Object {
	o := NewObject()
	o.Set(key, payload)
	return o
}

// AsObject adapts v to an ordered (key, value) view regardless of
// whether it is the *Object the decoder produces or a plain
// map[string]any (e.g. from encoding/json.Unmarshal of caller-supplied
// JSON text). Plain maps have no defined order, so their pairs are
// returned in the order Go's map iteration happens to choose; callers
// encoding a NamedFields struct look keys up by name, so this only
// matters for single-key enum detection.
func AsObject(v Value) (pairs []Pair, ok bool) {
	switch o := v.(type) {
	case *Object:
		if o == nil {
			return nil, false
		}
		for p := o.Oldest(); p != nil; p = p.Next() {
			pairs = append(pairs, Pair{Key: p.Key, Val: p.Value})
		}
		return pairs, true
	case map[string]any:
		for k, val := range o {
			pairs = append(pairs, Pair{Key: k, Val: val})
		}
		return pairs, true
	default:
		return nil, false
	}
}

// Pair is one (key, value) entry of an object, as returned by
// AsObject.
type Pair struct {
	Key string
	Val Value
}

// ObjectGet looks up key in v, supporting both *Object and
// map[string]any.
func ObjectGet(v Value, key string) (Value, bool) {
	switch o := v.(type) {
	case *Object:
		if o == nil {
			return nil, false
		}
		return o.Get(key)
	case map[string]any:
		val, ok := o[key]
		return val, ok
	default:
		return nil, false
	}
}

// SingleKey returns the lone (key, value) pair of an object that has
// exactly one entry, as required when decoding/encoding an enum's
// JSON object form.
func SingleKey(v Value) (key string, val Value, ok bool) {
	pairs, isObj := AsObject(v)
	if !isObj || len(pairs) != 1 {
		return "", nil, false
	}
	return pairs[0].Key, pairs[0].Val, true
}

// Number wraps a numeric leaf as json.Number so it marshals as a bare
// JSON number and round-trips exactly.
func Number(s string) json.Number {
	return json.Number(s)
}

// NumberFromInt64 renders a signed integer as a json.Number.
func NumberFromInt64(v int64) json.Number {
	return json.Number(fmt.Sprintf("%d", v))
}

// NumberFromUint64 renders an unsigned integer as a json.Number.
func NumberFromUint64(v uint64) json.Number {
	return json.Number(fmt.Sprintf("%d", v))
}

// NumberFromFloat64 renders a float as a json.Number using Go's
// shortest round-trippable representation.
func NumberFromFloat64(v float64) json.Number {
	return json.Number(formatFloat(v, 64))
}

// NumberFromFloat32 renders a float32 as a json.Number using Go's
// shortest round-trippable representation for the narrower width.
func NumberFromFloat32(v float32) json.Number {
	return json.Number(formatFloat(float64(v), 32))
}
