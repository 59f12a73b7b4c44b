package value

import (
	"fmt"
	"reflect"
)

// Reach walks a dotted path of object keys / array indices through a
// decoded Value tree and coerces the leaf it finds into dst.
//
// Returns (false, nil) if any segment of the path is absent. Returns
// an error if the path resolves but the found value cannot be
// coerced into dst's type.
//
// Adapted from the teacher's bson.Map.Reach/bson.Slice.Reach, which
// offer the same "pick one field out of a deeply nested document
// without boilerplate" convenience for BSON documents; here it walks
// *Object/[]any instead of bson.Map/bson.Slice.
func Reach(v Value, dst any, path ...string) (bool, error) {
	cur := v
	for _, seg := range path {
		switch c := cur.(type) {
		case *Object:
			if c == nil {
				return false, nil
			}
			next, ok := c.Get(seg)
			if !ok {
				return false, nil
			}
			cur = next
		case map[string]any:
			next, ok := c[seg]
			if !ok {
				return false, nil
			}
			cur = next
		case []any:
			idx, err := parseIndex(seg)
			if err != nil || idx < 0 || idx >= len(c) {
				return false, nil
			}
			cur = c[idx]
		default:
			return false, nil
		}
	}
	return assign(dst, cur)
}

func parseIndex(s string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, err
	}
	return n, nil
}

// assign coerces src into dst, which must be a non-nil pointer.
func assign(dst any, src Value) (bool, error) {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return false, fmt.Errorf("value: dst must be a non-nil pointer, got %T", dst)
	}
	elem := rv.Elem()

	switch elem.Kind() {
	case reflect.String:
		s, ok := AsString(src)
		if !ok {
			return false, fmt.Errorf("value: cannot coerce %T to string", src)
		}
		elem.SetString(s)
	case reflect.Bool:
		b, ok := AsBool(src)
		if !ok {
			return false, fmt.Errorf("value: cannot coerce %T to bool", src)
		}
		elem.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := AsInt64(src)
		if !ok {
			return false, fmt.Errorf("value: cannot coerce %T to %s", src, elem.Kind())
		}
		elem.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, ok := AsUint64(src)
		if !ok {
			return false, fmt.Errorf("value: cannot coerce %T to %s", src, elem.Kind())
		}
		elem.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, ok := AsFloat64(src)
		if !ok {
			return false, fmt.Errorf("value: cannot coerce %T to %s", src, elem.Kind())
		}
		elem.SetFloat(f)
	case reflect.Interface:
		elem.Set(reflect.ValueOf(src))
	default:
		srv := reflect.ValueOf(src)
		if !srv.IsValid() || !srv.Type().AssignableTo(elem.Type()) {
			return false, fmt.Errorf("value: cannot coerce %T to %s", src, elem.Type())
		}
		elem.Set(srv)
	}
	return true, nil
}
