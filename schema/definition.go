package schema

// Kind discriminates the tagged variants a Definition can hold. The
// ordinal value of each Kind has no wire meaning; only Definition.Variants'
// slice position and Definition.TagWidth matter on the wire (see package
// codec).
type Kind int

const (
	KindPrimitive Kind = iota
	KindSequence
	KindTuple
	KindEnum
	KindStruct
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "Primitive"
	case KindSequence:
		return "Sequence"
	case KindTuple:
		return "Tuple"
	case KindEnum:
		return "Enum"
	case KindStruct:
		return "Struct"
	}
	return "Unknown"
}

// FieldsKind discriminates the three shapes a Struct's payload can
// take.
type FieldsKind int

const (
	NamedFields FieldsKind = iota
	UnnamedFields
	EmptyFields
)

// Field is one (name, declaration) pair of a NamedFields struct. Order
// within the containing Fields.Named slice is the wire order.
type Field struct {
	Name        string
	Declaration Declaration
}

// Fields is a Struct definition's payload: exactly one of Named (when
// Kind == NamedFields), Unnamed (when Kind == UnnamedFields), or
// neither (when Kind == EmptyFields).
type Fields struct {
	Kind    FieldsKind
	Named   []Field
	Unnamed []Declaration
}

// Variant is one entry of an Enum's ordered variant list. Index is the
// informational discriminant value recorded alongside the variant;
// the variant's position in Definition.Variants, not Index, is what is
// written on the wire (spec: "the discriminant value is informational
// for the JSON projection").
type Variant struct {
	Index       uint64
	Name        string
	Declaration Declaration
}

// Range is an inclusive [Lo, Hi] bound on a Sequence's element count.
type Range struct {
	Lo uint64
	Hi uint64
}

// Contains reports whether n falls within the closed interval.
func (r Range) Contains(n uint64) bool {
	return n >= r.Lo && n <= r.Hi
}

// Definition is the structural description of a user-defined
// Declaration: a tagged union over Primitive/Sequence/Tuple/Enum/Struct.
// Go has no native sum type, so Kind selects which of the payload
// fields below is meaningful; the rest are left zero.
type Definition struct {
	Kind Kind

	// KindPrimitive
	Size int

	// KindSequence
	LengthWidth int // 0, 1, 2, 4, or 8 bytes; 0 means fixed-length
	LengthRange Range
	Elements    Declaration

	// KindTuple
	TupleElements []Declaration

	// KindEnum
	TagWidth int // byte width of the discriminant; 0 defaults to 1
	Variants []Variant

	// KindStruct
	StructFields Fields
}

// effectiveTagWidth returns TagWidth, defaulting to 1 when unset.
func (d Definition) effectiveTagWidth() int {
	if d.TagWidth == 0 {
		return 1
	}
	return d.TagWidth
}

// EnumTagWidth reports the byte width of this Enum's discriminant,
// defaulting to 1 when the definition leaves it unset.
func (d Definition) EnumTagWidth() int {
	return d.effectiveTagWidth()
}

// Primitive builds a Primitive definition of the given byte size.
// Primitives are rarely authored directly; most schemas reference
// primitive declarations by name instead.
func Primitive(size int) Definition {
	return Definition{Kind: KindPrimitive, Size: size}
}

// Sequence builds a homogeneous-repetition definition.
func Sequence(lengthWidth int, lengthRange Range, elements Declaration) Definition {
	return Definition{
		Kind:        KindSequence,
		LengthWidth: lengthWidth,
		LengthRange: lengthRange,
		Elements:    elements,
	}
}

// FixedArray builds a Sequence with no length prefix and a fixed
// element count n.
func FixedArray(n uint64, elements Declaration) Definition {
	return Sequence(0, Range{Lo: n, Hi: n}, elements)
}

// Tuple builds a fixed, heterogeneous sequence definition.
func Tuple(elements ...Declaration) Definition {
	return Definition{Kind: KindTuple, TupleElements: elements}
}

// Enum builds a tagged-union definition. tagWidth of 0 defaults to 1
// byte on the wire.
func Enum(tagWidth int, variants ...Variant) Definition {
	return Definition{Kind: KindEnum, TagWidth: tagWidth, Variants: variants}
}

// StructNamed builds a Struct definition with named, order-significant
// fields.
func StructNamed(fields ...Field) Definition {
	return Definition{
		Kind:         KindStruct,
		StructFields: Fields{Kind: NamedFields, Named: fields},
	}
}

// StructUnnamed builds a tuple-like struct definition.
func StructUnnamed(elements ...Declaration) Definition {
	return Definition{
		Kind:         KindStruct,
		StructFields: Fields{Kind: UnnamedFields, Unnamed: elements},
	}
}

// StructEmpty builds a Struct definition with no payload.
func StructEmpty() Definition {
	return Definition{Kind: KindStruct, StructFields: Fields{Kind: EmptyFields}}
}
