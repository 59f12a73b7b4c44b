package value

import (
	"encoding/json"
	"strconv"
)

func formatFloat(v float64, bitSize int) string {
	return strconv.FormatFloat(v, 'g', -1, bitSize)
}

// AsInt64 coerces v to an int64, accepting json.Number, float64,
// int, and int64 (the shapes a caller-constructed Value tree or a
// generic encoding/json.Unmarshal result may produce).
func AsInt64(v Value) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case float64:
		return int64(n), n == float64(int64(n))
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

// AsUint64 coerces v to a uint64, rejecting negative values.
func AsUint64(v Value) (uint64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err == nil {
			if i < 0 {
				return 0, false
			}
			return uint64(i), true
		}
		u, err := strconv.ParseUint(n.String(), 10, 64)
		return u, err == nil
	case float64:
		if n < 0 {
			return 0, false
		}
		return uint64(n), n == float64(uint64(n))
	case int:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case uint64:
		return n, true
	}
	return 0, false
}

// AsFloat64 coerces v to a float64, accepting json.Number, float64,
// and int.
func AsFloat64(v Value) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

// AsBool coerces v to a bool.
func AsBool(v Value) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// AsString coerces v to a string.
func AsString(v Value) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// AsArray coerces v to a []any.
func AsArray(v Value) ([]any, bool) {
	a, ok := v.([]any)
	return a, ok
}

// IsNumber reports whether v is a numeric leaf.
func IsNumber(v Value) bool {
	switch v.(type) {
	case json.Number, float64, int, int64, uint64:
		return true
	}
	return false
}
