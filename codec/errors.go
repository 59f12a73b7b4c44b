package codec

import "golang.org/x/xerrors"

// The error taxonomy below mirrors original_source's ExpectationError
// enum (Rust thiserror) and the structural failure kinds spec.md §7
// names. Go has no enum-of-errors idiom, so each kind is a sentinel
// error that callers match with errors.Is/xerrors.Is; concrete
// failures wrap the sentinel with xerrors.Errorf("...: %w", ...) so
// both a human-readable message and the programmatic kind survive.
var (
	// ErrStructural covers malformed bytes: buffer underflow, invalid
	// UTF-8, a boolean byte that isn't 0/1, an enum discriminant out
	// of range, or a sequence length outside its declared range.
	ErrStructural = xerrors.New("codec: structural error")

	// ErrSchema covers a schema that is internally broken: a dangling
	// declaration reference, an enum with zero variants, a
	// NamedFields struct missing a required key during encode, or a
	// duplicate field name.
	ErrSchema = xerrors.New("codec: schema error")

	// ErrShapeMismatch covers a JSON value that doesn't match the
	// shape its declaration requires: wrong JSON kind, or an array
	// whose length doesn't match a fixed-width sequence or tuple.
	ErrShapeMismatch = xerrors.New("codec: shape mismatch")

	// ErrRange covers a JSON number that doesn't fit the target
	// integer width.
	ErrRange = xerrors.New("codec: value out of range")

	// ErrUnsupported covers operations this specification explicitly
	// does not support: encoding u128/i128.
	ErrUnsupported = xerrors.New("codec: unsupported operation")
)

func structuralf(format string, args ...any) error {
	return xerrors.Errorf(format+": %w", append(args, ErrStructural)...)
}

func schemaf(format string, args ...any) error {
	return xerrors.Errorf(format+": %w", append(args, ErrSchema)...)
}

func shapef(format string, args ...any) error {
	return xerrors.Errorf(format+": %w", append(args, ErrShapeMismatch)...)
}

func rangef(format string, args ...any) error {
	return xerrors.Errorf(format+": %w", append(args, ErrRange)...)
}

func unsupportedf(format string, args ...any) error {
	return xerrors.Errorf(format+": %w", append(args, ErrUnsupported)...)
}
