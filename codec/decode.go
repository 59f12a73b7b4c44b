package codec

import (
	"go.schemacodec.dev/codec/diag"
	"go.schemacodec.dev/codec/schema"
	"go.schemacodec.dev/codec/value"
	"go.schemacodec.dev/codec/wire"
)

// Options configures a Decode/Encode call. The zero Options uses the
// package defaults.
type Options struct {
	// MaxDepth overrides wire.MaxDepth when non-zero.
	MaxDepth int
}

func (o Options) maxDepth() int {
	if o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return wire.MaxDepth
}

// Decode walks s starting from s.TopDeclaration(), consuming buf and
// producing a value.Value. This is the single recursive walk spec.md
// §4.3 describes, translated from original_source's
// deserialize_to_serde_json: a primitive declaration is decoded
// directly; a user-defined declaration is resolved to its Definition
// and dispatched by Definition.Kind; an unknown declaration recovers
// locally by emitting JSON null and logging a diagnostic.
func Decode(buf []byte, s *schema.Container) (value.Value, error) {
	return DecodeWithOptions(buf, s, Options{})
}

// DecodeWithOptions is Decode with an explicit Options, primarily to
// override the recursion-depth cap.
func DecodeWithOptions(buf []byte, s *schema.Container, opts Options) (value.Value, error) {
	c := wire.NewCursor(buf).WithMaxDepth(opts.maxDepth())
	return decodeDeclaration(c, s, s.TopDeclaration())
}

func decodeDeclaration(c *wire.Cursor, s *schema.Container, d schema.Declaration) (value.Value, error) {
	leave, err := c.Enter()
	defer leave()
	if err != nil {
		return nil, structuralf("decoding %q", d)
	}

	if schema.IsPrimitive(d) {
		return decodePrimitive(c, d)
	}

	def, ok := s.Definition(d)
	if !ok {
		diag.Logger().Warn("unknown declaration", "name", string(d))
		return nil, nil
	}

	switch def.Kind {
	case schema.KindPrimitive:
		// The by-name primitive path is authoritative; delegate back
		// to it (spec.md §4.3 step 2, "Primitive definition").
		return decodePrimitive(c, d)

	case schema.KindSequence:
		return decodeSequence(c, s, def)

	case schema.KindTuple:
		return decodeTuple(c, s, def)

	case schema.KindEnum:
		return decodeEnum(c, s, def)

	case schema.KindStruct:
		return decodeStruct(c, s, def)
	}

	return nil, schemaf("declaration %q has unrecognized definition kind", d)
}

func decodePrimitive(c *wire.Cursor, d schema.Declaration) (value.Value, error) {
	switch d {
	case schema.U8:
		u, err := c.ReadUint(1)
		return numOrErr(value.NumberFromUint64(u), err)
	case schema.U16:
		u, err := c.ReadUint(2)
		return numOrErr(value.NumberFromUint64(u), err)
	case schema.U32:
		u, err := c.ReadUint(4)
		return numOrErr(value.NumberFromUint64(u), err)
	case schema.U64:
		u, err := c.ReadUint(8)
		return numOrErr(value.NumberFromUint64(u), err)
	case schema.U128:
		big, err := c.ReadUint128()
		if err != nil {
			return nil, structuralf("reading u128")
		}
		return big.String(), nil
	case schema.I8:
		i, err := c.ReadInt(1)
		return numOrErr(value.NumberFromInt64(i), err)
	case schema.I16:
		i, err := c.ReadInt(2)
		return numOrErr(value.NumberFromInt64(i), err)
	case schema.I32:
		i, err := c.ReadInt(4)
		return numOrErr(value.NumberFromInt64(i), err)
	case schema.I64:
		i, err := c.ReadInt(8)
		return numOrErr(value.NumberFromInt64(i), err)
	case schema.I128:
		big, err := c.ReadInt128()
		if err != nil {
			return nil, structuralf("reading i128")
		}
		return big.String(), nil
	case schema.F32:
		f, err := c.ReadFloat32()
		if err != nil {
			return nil, structuralf("reading f32")
		}
		return value.NumberFromFloat32(f), nil
	case schema.F64:
		f, err := c.ReadFloat64()
		if err != nil {
			return nil, structuralf("reading f64")
		}
		return value.NumberFromFloat64(f), nil
	case schema.Bool:
		b, err := c.ReadBool()
		if err != nil {
			return nil, structuralf("reading bool")
		}
		return b, nil
	case schema.String:
		str, err := c.ReadString()
		if err != nil {
			return nil, structuralf("reading string")
		}
		return str, nil
	}
	return nil, schemaf("%q is not a primitive declaration", d)
}

func numOrErr(n any, err error) (value.Value, error) {
	if err != nil {
		return nil, structuralf("reading integer")
	}
	return n, nil
}

func decodeSequence(c *wire.Cursor, s *schema.Container, def schema.Definition) (value.Value, error) {
	var length uint64
	if def.LengthWidth == 0 {
		length = def.LengthRange.Hi
	} else {
		n, err := c.ReadUint(def.LengthWidth)
		if err != nil {
			return nil, structuralf("reading sequence length")
		}
		length = n
		if !def.LengthRange.Contains(length) {
			return nil, structuralf("sequence length %d outside range [%d,%d]",
				length, def.LengthRange.Lo, def.LengthRange.Hi)
		}
	}

	out := make([]any, 0, length)
	for i := uint64(0); i < length; i++ {
		v, err := decodeDeclaration(c, s, def.Elements)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func decodeTuple(c *wire.Cursor, s *schema.Container, def schema.Definition) (value.Value, error) {
	out := make([]any, 0, len(def.TupleElements))
	for _, elem := range def.TupleElements {
		v, err := decodeDeclaration(c, s, elem)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func decodeEnum(c *wire.Cursor, s *schema.Container, def schema.Definition) (value.Value, error) {
	if len(def.Variants) == 0 {
		return nil, schemaf("enum has zero variants")
	}
	// Resolution of spec.md §9 Open Question 1: the discriminant is
	// read with the schema's declared tag_width, not hardcoded to one
	// byte.
	idx, err := c.ReadUint(def.EnumTagWidth())
	if err != nil {
		return nil, structuralf("reading enum discriminant")
	}
	if idx >= uint64(len(def.Variants)) {
		return nil, structuralf("enum discriminant %d out of range [0,%d)", idx, len(def.Variants))
	}
	variant := def.Variants[idx]
	payload, err := decodeDeclaration(c, s, variant.Declaration)
	if err != nil {
		return nil, err
	}
	return value.SingleKeyObject(variant.Name, payload), nil
}

func decodeStruct(c *wire.Cursor, s *schema.Container, def schema.Definition) (value.Value, error) {
	switch def.StructFields.Kind {
	case schema.NamedFields:
		obj := value.NewObject()
		for _, f := range def.StructFields.Named {
			v, err := decodeDeclaration(c, s, f.Declaration)
			if err != nil {
				return nil, err
			}
			obj.Set(f.Name, v)
		}
		return obj, nil

	case schema.UnnamedFields:
		elems := def.StructFields.Unnamed
		if len(elems) == 1 {
			// Transparent single-field wrapper: the decoded value
			// passes through unwrapped.
			return decodeDeclaration(c, s, elems[0])
		}
		out := make([]any, 0, len(elems))
		for _, elem := range elems {
			v, err := decodeDeclaration(c, s, elem)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil

	case schema.EmptyFields:
		return []any{}, nil
	}
	return nil, schemaf("struct has unrecognized fields kind")
}
