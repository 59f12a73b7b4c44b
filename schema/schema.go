// Package schema is the in-memory model of a binary wire layout: a
// top-level declaration plus the transitive closure of named
// definitions it reaches.
//
// The derivation of a schema from a Go type declaration is out of
// scope for this package. Callers either hand-author a Container with
// Builder or deserialize one a peer produced.
package schema

// Declaration is the textual name of a type: either one of the
// primitive names below, or a user-defined name that must resolve to
// a Definition inside the enclosing Container.
type Declaration string

// Primitive declarations. This set is closed; no other name is a
// primitive regardless of what a Container's definitions map contains.
const (
	U8     Declaration = "u8"
	U16    Declaration = "u16"
	U32    Declaration = "u32"
	U64    Declaration = "u64"
	U128   Declaration = "u128"
	I8     Declaration = "i8"
	I16    Declaration = "i16"
	I32    Declaration = "i32"
	I64    Declaration = "i64"
	I128   Declaration = "i128"
	F32    Declaration = "f32"
	F64    Declaration = "f64"
	String Declaration = "String"
	Bool   Declaration = "bool"
)

var primitives = map[Declaration]bool{
	U8: true, U16: true, U32: true, U64: true, U128: true,
	I8: true, I16: true, I32: true, I64: true, I128: true,
	F32: true, F64: true, String: true, Bool: true,
}

// IsPrimitive reports whether d names one of the closed set of
// primitive declarations.
func IsPrimitive(d Declaration) bool {
	return primitives[d]
}

// Is128Bit reports whether d is one of the two wide-integer
// primitives that decode to JSON as decimal strings rather than
// numbers; encoding them is not supported.
func Is128Bit(d Declaration) bool {
	return d == U128 || d == I128
}

// IsSigned reports whether d is one of the signed integer
// primitives.
func IsSigned(d Declaration) bool {
	switch d {
	case I8, I16, I32, I64, I128:
		return true
	}
	return false
}
