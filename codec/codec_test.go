package codec_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.schemacodec.dev/codec/codec"
	"go.schemacodec.dev/codec/schema"
	"go.schemacodec.dev/codec/value"
)

func personSchema() *schema.Container {
	return schema.NewBuilder("Person").
		Define("Person", schema.StructNamed(
			schema.Field{Name: "first_name", Declaration: schema.String},
			schema.Field{Name: "last_name", Declaration: schema.String},
		)).
		Container()
}

// S1: Person struct round-trip, literal hex bytes from spec.md §8.
func TestS1PersonRoundTrip(t *testing.T) {
	s := personSchema()

	obj := value.NewObject()
	obj.Set("first_name", "John")
	obj.Set("last_name", "Doe")

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, obj, s))

	want, err := hex.DecodeString("040000004a6f686e03000000446f65")
	require.NoError(t, err)
	assert.Equal(t, want, buf.Bytes())

	decoded, err := codec.Decode(buf.Bytes(), s)
	require.NoError(t, err)
	if diff := cmp.Diff(comparable(obj), comparable(decoded)); diff != "" {
		t.Fatalf("decode mismatch (-want +got):\n%s", diff)
	}
}

// S2: Enum encoded/decoded against the three-variant u8-payload enum.
func enumSchema() *schema.Container {
	return schema.NewBuilder("E").
		Define("E", schema.Enum(1,
			schema.Variant{Index: 0, Name: "One", Declaration: schema.U8},
			schema.Variant{Index: 1, Name: "Two", Declaration: schema.U8},
			schema.Variant{Index: 2, Name: "Three", Declaration: schema.U8},
		)).
		Container()
}

func TestS2EnumObjectForm(t *testing.T) {
	s := enumSchema()

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, value.SingleKeyObject("One", value.NumberFromInt64(1)), s))
	assert.Equal(t, []byte{0x00, 0x01}, buf.Bytes())

	decoded, err := codec.Decode(buf.Bytes(), s)
	require.NoError(t, err)
	want := value.SingleKeyObject("One", value.NumberFromInt64(1))
	if diff := cmp.Diff(comparable(want), comparable(decoded)); diff != "" {
		t.Fatalf("decode mismatch (-want +got):\n%s", diff)
	}
}

func TestS2EnumStringFormRejectedForNonEmptyPayload(t *testing.T) {
	s := enumSchema()
	var buf bytes.Buffer
	err := codec.Encode(&buf, "One", s)
	assert.Error(t, err)
}

func TestS2EnumStringFormAcceptedForEmptyPayload(t *testing.T) {
	s := schema.NewBuilder("E").
		Define("E", schema.Enum(1,
			schema.Variant{Index: 0, Name: "One", Declaration: "OneStruct"},
		)).
		Define("OneStruct", schema.StructEmpty()).
		Container()

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, "One", s))
	assert.Equal(t, []byte{0x00}, buf.Bytes())
}

// S3: u128 decode-only.
func TestS3U128DecodeOnly(t *testing.T) {
	s := schema.NewBuilder(schema.U128).Container()
	buf := bytes.Repeat([]byte{0xFF}, 16)

	decoded, err := codec.Decode(buf, s)
	require.NoError(t, err)
	assert.Equal(t, "340282366920938463463374607431768211455", decoded)

	var out bytes.Buffer
	err = codec.Encode(&out, decoded, s)
	assert.ErrorIs(t, err, codec.ErrUnsupported)
}

// S4: fixed-size array.
func TestS4FixedArray(t *testing.T) {
	s := schema.NewBuilder("Arr").
		Define("Arr", schema.FixedArray(3, schema.U8)).
		Container()

	var buf bytes.Buffer
	arr := []any{value.NumberFromInt64(97), value.NumberFromInt64(98), value.NumberFromInt64(99)}
	require.NoError(t, codec.Encode(&buf, arr, s))
	assert.Equal(t, []byte{97, 98, 99}, buf.Bytes())

	var short bytes.Buffer
	err := codec.Encode(&short, arr[:2], s)
	assert.ErrorIs(t, err, codec.ErrShapeMismatch)
}

// S5: dynamic sequence of Strings.
func TestS5DynamicSequence(t *testing.T) {
	s := schema.NewBuilder("Seq").
		Define("Seq", schema.Sequence(4, schema.Range{Lo: 0, Hi: 1<<32 - 1}, schema.String)).
		Container()

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, []any{"a", "b", "c"}, s))

	expected := []byte{
		0x03, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00, 'a',
		0x01, 0x00, 0x00, 0x00, 'b',
		0x01, 0x00, 0x00, 0x00, 'c',
	}
	assert.Equal(t, expected, buf.Bytes())
}

// S6: shape mismatch.
func TestS6ShapeMismatch(t *testing.T) {
	s := schema.NewBuilder(schema.U32).Container()
	var buf bytes.Buffer
	err := codec.Encode(&buf, "abc", s)
	assert.ErrorIs(t, err, codec.ErrShapeMismatch)
}

// Law 1: primitive round trip (decode(encode(v)) == v), narrower
// widths.
func TestLawPrimitiveRoundTrip(t *testing.T) {
	cases := []struct {
		decl schema.Declaration
		val  value.Value
	}{
		{schema.U8, value.NumberFromInt64(200)},
		{schema.U16, value.NumberFromInt64(60000)},
		{schema.I32, value.NumberFromInt64(-123456)},
		{schema.I64, value.NumberFromInt64(-1)},
		{schema.F64, value.NumberFromFloat64(3.5)},
		{schema.Bool, true},
		{schema.String, "hello world"},
	}
	for _, tc := range cases {
		s := schema.NewBuilder(tc.decl).Container()
		var buf bytes.Buffer
		require.NoError(t, codec.Encode(&buf, tc.val, s))
		decoded, err := codec.Decode(buf.Bytes(), s)
		require.NoError(t, err)
		assert.Equal(t, tc.val, decoded)
	}
}

// Law 3: length discipline for fixed sequences.
func TestLawLengthDiscipline(t *testing.T) {
	s := schema.NewBuilder("Arr").
		Define("Arr", schema.FixedArray(3, schema.U8)).
		Container()
	var buf bytes.Buffer
	err := codec.Encode(&buf, []any{value.NumberFromInt64(1), value.NumberFromInt64(2)}, s)
	assert.ErrorIs(t, err, codec.ErrShapeMismatch)
}

// Law 4: enum stability — renaming a variant doesn't change wire
// bytes; reordering does.
func TestLawEnumStability(t *testing.T) {
	renamed := schema.NewBuilder("E").
		Define("E", schema.Enum(1,
			schema.Variant{Index: 0, Name: "Uno", Declaration: schema.U8},
			schema.Variant{Index: 1, Name: "Two", Declaration: schema.U8},
		)).
		Container()
	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, value.SingleKeyObject("Uno", value.NumberFromInt64(9)), renamed))
	assert.Equal(t, []byte{0x00, 0x09}, buf.Bytes())

	reordered := schema.NewBuilder("E").
		Define("E", schema.Enum(1,
			schema.Variant{Index: 0, Name: "Two", Declaration: schema.U8},
			schema.Variant{Index: 1, Name: "Uno", Declaration: schema.U8},
		)).
		Container()
	var buf2 bytes.Buffer
	require.NoError(t, codec.Encode(&buf2, value.SingleKeyObject("Uno", value.NumberFromInt64(9)), reordered))
	assert.Equal(t, []byte{0x01, 0x09}, buf2.Bytes())
}

// Law 5: field order depends only on schema order, not JSON object
// key order. Exercised via a plain map[string]any input (Go map
// iteration order is randomized, so this tests the schema, not the
// input, drives wire order).
func TestLawFieldOrderFromSchema(t *testing.T) {
	s := personSchema()
	input := map[string]any{"last_name": "Doe", "first_name": "John"}
	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, input, s))
	want, _ := hex.DecodeString("040000004a6f686e03000000446f65")
	assert.Equal(t, want, buf.Bytes())
}

// Law 6: transparent single-field tuple struct.
func TestLawTransparentWrapper(t *testing.T) {
	wrapper := schema.NewBuilder("Wrapper").
		Define("Wrapper", schema.StructUnnamed(schema.U32)).
		Container()
	plain := schema.NewBuilder(schema.U32).Container()

	var bufW, bufP bytes.Buffer
	require.NoError(t, codec.Encode(&bufW, value.NumberFromInt64(42), wrapper))
	require.NoError(t, codec.Encode(&bufP, value.NumberFromInt64(42), plain))
	assert.Equal(t, bufP.Bytes(), bufW.Bytes())

	decoded, err := codec.Decode(bufW.Bytes(), wrapper)
	require.NoError(t, err)
	assert.Equal(t, value.NumberFromInt64(42), decoded)
}

// Law 7: determinism.
func TestLawDeterminism(t *testing.T) {
	s := personSchema()
	obj := value.NewObject()
	obj.Set("first_name", "Ann")
	obj.Set("last_name", "Lee")

	var b1, b2 bytes.Buffer
	require.NoError(t, codec.Encode(&b1, obj, s))
	require.NoError(t, codec.Encode(&b2, obj, s))
	assert.Equal(t, b1.Bytes(), b2.Bytes())
}

// Unknown declaration recovers locally on both paths.
func TestUnknownDeclarationRecovers(t *testing.T) {
	s := schema.NewBuilder("Missing").Container()
	decoded, err := codec.Decode([]byte{}, s)
	require.NoError(t, err)
	assert.Nil(t, decoded)

	var buf bytes.Buffer
	err = codec.Encode(&buf, "whatever", s)
	require.NoError(t, err)
	assert.Equal(t, 0, buf.Len())
}

// Enum with zero variants is a SchemaError.
func TestEnumZeroVariantsIsSchemaError(t *testing.T) {
	s := schema.NewBuilder("E").
		Define("E", schema.Enum(1)).
		Container()
	_, err := codec.Decode([]byte{0x00}, s)
	assert.ErrorIs(t, err, codec.ErrSchema)
}

// NamedFields struct missing a required key is a SchemaError.
func TestMissingRequiredKeyIsSchemaError(t *testing.T) {
	s := personSchema()
	obj := value.NewObject()
	obj.Set("first_name", "John")
	var buf bytes.Buffer
	err := codec.Encode(&buf, obj, s)
	assert.ErrorIs(t, err, codec.ErrSchema)
}

// Sequence length range is enforced on decode (lower and upper
// bound), per spec.md §9 Open Question 3.
func TestSequenceLengthRangeEnforcedOnDecode(t *testing.T) {
	s := schema.NewBuilder("Seq").
		Define("Seq", schema.Sequence(4, schema.Range{Lo: 2, Hi: 4}, schema.U8)).
		Container()

	// length 1 is below Lo=2
	buf := []byte{0x01, 0x00, 0x00, 0x00, 0xAA}
	_, err := codec.Decode(buf, s)
	assert.ErrorIs(t, err, codec.ErrStructural)

	// length 5 is above Hi=4
	buf2 := []byte{0x05, 0x00, 0x00, 0x00, 1, 2, 3, 4, 5}
	_, err = codec.Decode(buf2, s)
	assert.ErrorIs(t, err, codec.ErrStructural)
}

// Enum tag_width is honored on both decode and encode paths (spec.md
// §9 Open Question 1), using a 2-byte discriminant.
func TestEnumTagWidthHonoredBothPaths(t *testing.T) {
	s := schema.NewBuilder("E").
		Define("E", schema.Enum(2,
			schema.Variant{Index: 0, Name: "A", Declaration: schema.U8},
			schema.Variant{Index: 1, Name: "B", Declaration: schema.U8},
		)).
		Container()

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, value.SingleKeyObject("B", value.NumberFromInt64(7)), s))
	assert.Equal(t, []byte{0x01, 0x00, 0x07}, buf.Bytes())

	decoded, err := codec.Decode(buf.Bytes(), s)
	require.NoError(t, err)
	want := value.SingleKeyObject("B", value.NumberFromInt64(7))
	if diff := cmp.Diff(comparable(want), comparable(decoded)); diff != "" {
		t.Fatalf("decode mismatch (-want +got):\n%s", diff)
	}
}

// A tag_width wider than 8 bytes cannot be honored by a uint64
// discriminant accumulator and is rejected as a structural error on
// both paths.
func TestEnumTagWidthOver8BytesRejected(t *testing.T) {
	s := schema.NewBuilder("E").
		Define("E", schema.Enum(9,
			schema.Variant{Index: 0, Name: "A", Declaration: schema.U8},
		)).
		Container()

	var buf bytes.Buffer
	err := codec.Encode(&buf, value.SingleKeyObject("A", value.NumberFromInt64(1)), s)
	assert.ErrorIs(t, err, codec.ErrStructural)

	_, err = codec.Decode(bytes.Repeat([]byte{0x00}, 9), s)
	assert.ErrorIs(t, err, codec.ErrStructural)
}

// Enum variant selection on encode matches by name, not position
// (spec.md §9 Open Question 2's bug fix).
func TestEnumEncodeSelectsByName(t *testing.T) {
	s := enumSchema()
	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, value.SingleKeyObject("Three", value.NumberFromInt64(5)), s))
	assert.Equal(t, []byte{0x02, 0x05}, buf.Bytes())
}

// Composite round-trip law (law 2) over a richer schema mixing
// sequences, tuples, and nested structs.
func TestLawCompositeRoundTrip(t *testing.T) {
	s := schema.NewBuilder("Outer").
		Define("Outer", schema.StructNamed(
			schema.Field{Name: "name", Declaration: schema.String},
			schema.Field{Name: "pair", Declaration: "Pair"},
			schema.Field{Name: "tags", Declaration: "Tags"},
		)).
		Define("Pair", schema.Tuple(schema.U8, schema.Bool)).
		Define("Tags", schema.Sequence(4, schema.Range{Lo: 0, Hi: 1<<32 - 1}, schema.String)).
		Container()

	obj := value.NewObject()
	obj.Set("name", "widget")
	obj.Set("pair", []any{value.NumberFromInt64(7), true})
	obj.Set("tags", []any{"a", "bb"})

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, obj, s))
	decoded, err := codec.Decode(buf.Bytes(), s)
	require.NoError(t, err)
	if diff := cmp.Diff(comparable(obj), comparable(decoded)); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
