package schemajson

import (
	"go.schemacodec.dev/codec/codec"
	"go.schemacodec.dev/codec/schema"
	"go.schemacodec.dev/codec/value"
)

// Parse decodes data (as produced by Bytes/WriteSchema) back into a
// schema.Container, completing the round trip Write/Bytes only
// projects one direction. It decodes against ContainerSchema() rather
// than a bespoke parser and then mirrors convert.go's
// containerToValue/definitionToValue/fieldsToValue in reverse.
func Parse(data []byte) (*schema.Container, error) {
	decoded, err := codec.Decode(data, ContainerSchema())
	if err != nil {
		return nil, err
	}
	return valueToContainer(decoded)
}

func valueToContainer(v value.Value) (*schema.Container, error) {
	top, ok := value.ObjectGet(v, "declaration")
	if !ok {
		return nil, codec.ErrSchema
	}
	topDecl, ok := value.AsString(top)
	if !ok {
		return nil, codec.ErrSchema
	}

	defsVal, ok := value.ObjectGet(v, "definitions")
	if !ok {
		return nil, codec.ErrSchema
	}
	entries, ok := value.AsArray(defsVal)
	if !ok {
		return nil, codec.ErrSchema
	}

	c := schema.NewContainer(schema.Declaration(topDecl))
	for _, entry := range entries {
		pair, ok := value.AsArray(entry)
		if !ok || len(pair) != 2 {
			return nil, codec.ErrSchema
		}
		name, ok := value.AsString(pair[0])
		if !ok {
			return nil, codec.ErrSchema
		}
		def, err := valueToDefinition(pair[1])
		if err != nil {
			return nil, err
		}
		c.Insert(schema.Declaration(name), def)
	}
	return c, nil
}

func valueToDefinition(v value.Value) (schema.Definition, error) {
	kind, payload, ok := value.SingleKey(v)
	if !ok {
		return schema.Definition{}, codec.ErrSchema
	}

	switch kind {
	case "Primitive":
		size, _ := value.ObjectGet(payload, "size")
		n, _ := value.AsInt64(size)
		return schema.Primitive(int(n)), nil

	case "Sequence":
		lw, _ := value.ObjectGet(payload, "length_width")
		lwn, _ := value.AsInt64(lw)
		rngVal, _ := value.ObjectGet(payload, "length_range")
		lo, _ := value.ObjectGet(rngVal, "lo")
		hi, _ := value.ObjectGet(rngVal, "hi")
		loN, _ := value.AsUint64(lo)
		hiN, _ := value.AsUint64(hi)
		elems, _ := value.ObjectGet(payload, "elements")
		elemsStr, _ := value.AsString(elems)
		return schema.Sequence(int(lwn), schema.Range{Lo: loN, Hi: hiN}, schema.Declaration(elemsStr)), nil

	case "Tuple":
		elemsVal, _ := value.ObjectGet(payload, "elements")
		decls, err := valueToDeclList(elemsVal)
		if err != nil {
			return schema.Definition{}, err
		}
		return schema.Tuple(decls...), nil

	case "Enum":
		tw, _ := value.ObjectGet(payload, "tag_width")
		twn, _ := value.AsInt64(tw)
		variantsVal, _ := value.ObjectGet(payload, "variants")
		variantsArr, ok := value.AsArray(variantsVal)
		if !ok {
			return schema.Definition{}, codec.ErrSchema
		}
		variants := make([]schema.Variant, 0, len(variantsArr))
		for _, vv := range variantsArr {
			idx, _ := value.ObjectGet(vv, "index")
			name, _ := value.ObjectGet(vv, "name")
			decl, _ := value.ObjectGet(vv, "declaration")
			idxN, _ := value.AsUint64(idx)
			nameStr, _ := value.AsString(name)
			declStr, _ := value.AsString(decl)
			variants = append(variants, schema.Variant{
				Index:       idxN,
				Name:        nameStr,
				Declaration: schema.Declaration(declStr),
			})
		}
		return schema.Enum(int(twn), variants...), nil

	case "Struct":
		fieldsVal, _ := value.ObjectGet(payload, "fields")
		fields, err := valueToFields(fieldsVal)
		if err != nil {
			return schema.Definition{}, err
		}
		return schema.Definition{Kind: schema.KindStruct, StructFields: fields}, nil
	}
	return schema.Definition{}, codec.ErrSchema
}

func valueToFields(v value.Value) (schema.Fields, error) {
	kind, payload, ok := value.SingleKey(v)
	if !ok {
		return schema.Fields{}, codec.ErrSchema
	}
	switch kind {
	case "NamedFields":
		arr, ok := value.AsArray(payload)
		if !ok {
			return schema.Fields{}, codec.ErrSchema
		}
		named := make([]schema.Field, 0, len(arr))
		for _, entry := range arr {
			pair, ok := value.AsArray(entry)
			if !ok || len(pair) != 2 {
				return schema.Fields{}, codec.ErrSchema
			}
			name, _ := value.AsString(pair[0])
			decl, _ := value.AsString(pair[1])
			named = append(named, schema.Field{Name: name, Declaration: schema.Declaration(decl)})
		}
		return schema.Fields{Kind: schema.NamedFields, Named: named}, nil

	case "UnnamedFields":
		decls, err := valueToDeclList(payload)
		if err != nil {
			return schema.Fields{}, err
		}
		return schema.Fields{Kind: schema.UnnamedFields, Unnamed: decls}, nil

	case "Empty":
		return schema.Fields{Kind: schema.EmptyFields}, nil
	}
	return schema.Fields{}, codec.ErrSchema
}

func valueToDeclList(v value.Value) ([]schema.Declaration, error) {
	arr, ok := value.AsArray(v)
	if !ok {
		return nil, codec.ErrSchema
	}
	out := make([]schema.Declaration, 0, len(arr))
	for _, e := range arr {
		s, ok := value.AsString(e)
		if !ok {
			return nil, codec.ErrSchema
		}
		out = append(out, schema.Declaration(s))
	}
	return out, nil
}
