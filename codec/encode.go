package codec

import (
	"io"

	"go.schemacodec.dev/codec/diag"
	"go.schemacodec.dev/codec/schema"
	"go.schemacodec.dev/codec/value"
	"go.schemacodec.dev/codec/wire"
)

// Encode walks s starting from s.TopDeclaration(), consuming v and
// writing bytes to w. This is the single recursive walk spec.md §4.4
// describes, translated from original_source's
// serialize_serde_json_by_declaration_with_schema, with Open Question
// 2 (enum variant selection) corrected to match the input variant
// name against the schema rather than always picking the first
// variant.
func Encode(w io.Writer, v value.Value, s *schema.Container) error {
	return EncodeWithOptions(w, v, s, Options{})
}

// EncodeWithOptions is Encode with an explicit Options.
func EncodeWithOptions(w io.Writer, v value.Value, s *schema.Container, opts Options) error {
	c := &encodeCtx{w: wire.NewWriter(w), depth: 0, max: opts.maxDepth()}
	return encodeDeclaration(c, v, s, s.TopDeclaration())
}

type encodeCtx struct {
	w     *wire.Writer
	depth int
	max   int
}

func (c *encodeCtx) enter() (func(), error) {
	if c.depth >= c.max {
		return func() {}, wire.ErrDepthExceeded
	}
	c.depth++
	return func() { c.depth-- }, nil
}

func encodeDeclaration(c *encodeCtx, v value.Value, s *schema.Container, d schema.Declaration) error {
	leave, err := c.enter()
	defer leave()
	if err != nil {
		return structuralf("encoding %q", d)
	}

	if schema.IsPrimitive(d) {
		return encodePrimitive(c, v, d)
	}

	def, ok := s.Definition(d)
	if !ok {
		diag.Logger().Warn("unknown declaration", "name", string(d))
		return nil
	}

	switch def.Kind {
	case schema.KindPrimitive:
		return encodePrimitive(c, v, d)
	case schema.KindSequence:
		return encodeSequence(c, v, s, def)
	case schema.KindTuple:
		return encodeTuple(c, v, s, def)
	case schema.KindEnum:
		return encodeEnum(c, v, s, def)
	case schema.KindStruct:
		return encodeStruct(c, v, s, def)
	}
	return schemaf("declaration %q has unrecognized definition kind", d)
}

func encodePrimitive(c *encodeCtx, v value.Value, d schema.Declaration) error {
	switch d {
	case schema.U8, schema.U16, schema.U32, schema.U64:
		u, ok := value.AsUint64(v)
		if !ok {
			return shapef("%s: expected unsigned integer", d)
		}
		width := primitiveWidth(d)
		if !fitsUnsigned(u, width) {
			return rangef("%s: %d out of range", d, u)
		}
		return werr(c.w.WriteUint(u, width))

	case schema.I8, schema.I16, schema.I32, schema.I64:
		i, ok := value.AsInt64(v)
		if !ok {
			return shapef("%s: expected signed integer", d)
		}
		width := primitiveWidth(d)
		if !fitsSigned(i, width) {
			return rangef("%s: %d out of range", d, i)
		}
		return werr(c.w.WriteInt(i, width))

	case schema.U128, schema.I128:
		return unsupportedf("encoding %s is not supported", d)

	case schema.F32:
		f, ok := value.AsFloat64(v)
		if !ok {
			return shapef("f32: expected number")
		}
		return werr(c.w.WriteFloat32(float32(f)))

	case schema.F64:
		f, ok := value.AsFloat64(v)
		if !ok {
			return shapef("f64: expected number")
		}
		return werr(c.w.WriteFloat64(f))

	case schema.Bool:
		b, ok := value.AsBool(v)
		if !ok {
			return shapef("bool: expected boolean")
		}
		return werr(c.w.WriteBool(b))

	case schema.String:
		str, ok := value.AsString(v)
		if !ok {
			return shapef("String: expected string")
		}
		return werr(c.w.WriteString(str))
	}
	return schemaf("%q is not a primitive declaration", d)
}

func werr(err error) error {
	if err != nil {
		return structuralf("writing wire bytes")
	}
	return nil
}

func primitiveWidth(d schema.Declaration) int {
	switch d {
	case schema.U8, schema.I8:
		return 1
	case schema.U16, schema.I16:
		return 2
	case schema.U32, schema.I32:
		return 4
	case schema.U64, schema.I64:
		return 8
	}
	return 0
}

func fitsUnsigned(u uint64, width int) bool {
	if width >= 8 {
		return true
	}
	max := uint64(1)<<(uint(width)*8) - 1
	return u <= max
}

func fitsSigned(i int64, width int) bool {
	if width >= 8 {
		return true
	}
	bits := uint(width) * 8
	max := int64(1)<<(bits-1) - 1
	min := -int64(1) << (bits - 1)
	return i >= min && i <= max
}

func encodeSequence(c *encodeCtx, v value.Value, s *schema.Container, def schema.Definition) error {
	arr, ok := value.AsArray(v)
	if !ok {
		return shapef("sequence: expected array")
	}
	if def.LengthWidth == 0 {
		want := def.LengthRange.Hi
		if uint64(len(arr)) != want {
			return shapef("fixed sequence: expected array of length %d, got %d", want, len(arr))
		}
	} else {
		if err := werr(c.w.WriteUint(uint64(len(arr)), def.LengthWidth)); err != nil {
			return err
		}
	}
	for _, item := range arr {
		if err := encodeDeclaration(c, item, s, def.Elements); err != nil {
			return err
		}
	}
	return nil
}

func encodeTuple(c *encodeCtx, v value.Value, s *schema.Container, def schema.Definition) error {
	arr, ok := value.AsArray(v)
	if !ok {
		return shapef("tuple: expected array")
	}
	if len(arr) != len(def.TupleElements) {
		return shapef("tuple: expected array of length %d, got %d", len(def.TupleElements), len(arr))
	}
	for i, elem := range def.TupleElements {
		if err := encodeDeclaration(c, arr[i], s, elem); err != nil {
			return err
		}
	}
	return nil
}

func encodeEnum(c *encodeCtx, v value.Value, s *schema.Container, def schema.Definition) error {
	if len(def.Variants) == 0 {
		return schemaf("enum has zero variants")
	}

	var inputVariant string
	var payload value.Value
	var hasPayload bool

	if key, val, ok := value.SingleKey(v); ok {
		inputVariant, payload, hasPayload = key, val, true
	} else if str, ok := value.AsString(v); ok {
		inputVariant = str
	} else {
		return shapef("enum: expected a single-key object or a string")
	}

	// Resolution of spec.md §9 Open Question 2: select the variant by
	// matching its declared name, not by always taking the first
	// entry (the bug observed in original_source's find_map).
	idx := -1
	for i, variant := range def.Variants {
		if variant.Name == inputVariant {
			idx = i
			break
		}
	}
	if idx < 0 {
		return schemaf("variant %q does not exist in schema", inputVariant)
	}
	variant := def.Variants[idx]

	// The wire discriminant is the variant's ordinal position in the
	// schema, not its informational Index field (spec: "The ordinal
	// position in the list is what is written on the wire").
	if err := werr(c.w.WriteUint(uint64(idx), def.EnumTagWidth())); err != nil {
		return err
	}

	if !hasPayload {
		// The string form supplies no payload value; per spec this is
		// only valid when the variant's payload declaration is Empty
		// (an Empty struct ignores its input value entirely). Any
		// other payload declaration rejects the empty object via
		// ShapeMismatch/SchemaError, exactly like the original
		// json!({}) placeholder.
		payload = value.NewObject()
	}
	return encodeDeclaration(c, payload, s, variant.Declaration)
}

func encodeStruct(c *encodeCtx, v value.Value, s *schema.Container, def schema.Definition) error {
	switch def.StructFields.Kind {
	case schema.NamedFields:
		seen := map[string]bool{}
		for _, f := range def.StructFields.Named {
			if seen[f.Name] {
				return schemaf("duplicate field name %q", f.Name)
			}
			seen[f.Name] = true
		}
		if _, ok := value.AsObject(v); !ok {
			return shapef("struct: expected object")
		}
		for _, f := range def.StructFields.Named {
			val, ok := value.ObjectGet(v, f.Name)
			if !ok {
				return schemaf("expected property %q", f.Name)
			}
			if err := encodeDeclaration(c, val, s, f.Declaration); err != nil {
				return err
			}
		}
		return nil

	case schema.UnnamedFields:
		elems := def.StructFields.Unnamed
		if len(elems) == 1 {
			// Transparent single-field wrapper: encode(v, S) ==
			// encode(v, schema_of(inner)).
			return encodeDeclaration(c, v, s, elems[0])
		}
		arr, ok := value.AsArray(v)
		if !ok {
			return shapef("struct: expected array")
		}
		if len(arr) != len(elems) {
			return shapef("struct: expected array of length %d, got %d", len(elems), len(arr))
		}
		for i, elem := range elems {
			if err := encodeDeclaration(c, arr[i], s, elem); err != nil {
				return err
			}
		}
		return nil

	case schema.EmptyFields:
		return nil
	}
	return schemaf("struct has unrecognized fields kind")
}
