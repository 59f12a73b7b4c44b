package schemajson

import (
	"go.schemacodec.dev/codec/schema"
	"go.schemacodec.dev/codec/value"
)

// containerToValue converts a schema.Container into the value.Value
// shape ContainerSchema() describes, so it can be fed through
// codec.Encode against that schema.
func containerToValue(c *schema.Container) value.Value {
	entries := c.Definitions()
	list := make([]any, 0, len(entries))
	for _, e := range entries {
		list = append(list, []any{string(e.Name), definitionToValue(e.Definition)})
	}
	obj := value.NewObject()
	obj.Set("declaration", string(c.TopDeclaration()))
	obj.Set("definitions", list)
	return obj
}

func definitionToValue(d schema.Definition) value.Value {
	switch d.Kind {
	case schema.KindPrimitive:
		obj := value.NewObject()
		obj.Set("size", value.NumberFromInt64(int64(d.Size)))
		return value.SingleKeyObject("Primitive", obj)

	case schema.KindSequence:
		obj := value.NewObject()
		obj.Set("length_width", value.NumberFromInt64(int64(d.LengthWidth)))
		rng := value.NewObject()
		rng.Set("lo", value.NumberFromUint64(d.LengthRange.Lo))
		rng.Set("hi", value.NumberFromUint64(d.LengthRange.Hi))
		obj.Set("length_range", rng)
		obj.Set("elements", string(d.Elements))
		return value.SingleKeyObject("Sequence", obj)

	case schema.KindTuple:
		obj := value.NewObject()
		obj.Set("elements", declListToValue(d.TupleElements))
		return value.SingleKeyObject("Tuple", obj)

	case schema.KindEnum:
		obj := value.NewObject()
		obj.Set("tag_width", value.NumberFromInt64(int64(d.EnumTagWidth())))
		variants := make([]any, 0, len(d.Variants))
		for _, v := range d.Variants {
			vo := value.NewObject()
			vo.Set("index", value.NumberFromUint64(v.Index))
			vo.Set("name", v.Name)
			vo.Set("declaration", string(v.Declaration))
			variants = append(variants, vo)
		}
		obj.Set("variants", variants)
		return value.SingleKeyObject("Enum", obj)

	case schema.KindStruct:
		obj := value.NewObject()
		obj.Set("fields", fieldsToValue(d.StructFields))
		return value.SingleKeyObject("Struct", obj)
	}
	return value.NewObject()
}

func fieldsToValue(f schema.Fields) value.Value {
	switch f.Kind {
	case schema.NamedFields:
		list := make([]any, 0, len(f.Named))
		for _, nf := range f.Named {
			list = append(list, []any{nf.Name, string(nf.Declaration)})
		}
		return value.SingleKeyObject("NamedFields", list)
	case schema.UnnamedFields:
		return value.SingleKeyObject("UnnamedFields", declListToValue(f.Unnamed))
	default:
		return value.SingleKeyObject("Empty", []any{})
	}
}

func declListToValue(decls []schema.Declaration) []any {
	out := make([]any, 0, len(decls))
	for _, d := range decls {
		out = append(out, string(d))
	}
	return out
}
