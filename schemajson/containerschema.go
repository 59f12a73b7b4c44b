// Package schemajson implements the schema-as-JSON projection
// (spec.md §4.5, §6.3): a self-describing emission of a schema.Container
// produced by running the container's own bytes back through the
// codec against "the schema of the schema container" — exactly the
// trick original_source's write_schema_as_json performs via
// BorshSchemaContainer::for_type::<BorshSchemaContainer>().
package schemajson

import "go.schemacodec.dev/codec/schema"

var containerSchema *schema.Container

// ContainerSchema returns the hand-built schema describing
// schema.Container itself. Deriving this via reflection over
// schema.Container's Go struct tags would be the out-of-scope
// derivation facility (spec.md §1); since schema.Container is one
// fixed, known type, it is described once here instead, the Go
// analogue of original_source/borsh-serde-adapter's
// schema_container_of::<BorshSchemaContainer>().
func ContainerSchema() *schema.Container {
	if containerSchema != nil {
		return containerSchema
	}

	dyn := schema.Range{Lo: 0, Hi: ^uint64(0)}

	b := schema.NewBuilder("Container").
		Define("Container", schema.StructNamed(
			schema.Field{Name: "declaration", Declaration: "String"},
			schema.Field{Name: "definitions", Declaration: "DefinitionEntryList"},
		)).
		Define("DefinitionEntryList", schema.Sequence(4, dyn, "DefinitionEntry")).
		Define("DefinitionEntry", schema.Tuple("String", "Definition")).
		Define("Definition", schema.Enum(1,
			schema.Variant{Index: 0, Name: "Primitive", Declaration: "PrimitiveDef"},
			schema.Variant{Index: 1, Name: "Sequence", Declaration: "SequenceDef"},
			schema.Variant{Index: 2, Name: "Tuple", Declaration: "TupleDef"},
			schema.Variant{Index: 3, Name: "Enum", Declaration: "EnumDef"},
			schema.Variant{Index: 4, Name: "Struct", Declaration: "StructDef"},
		)).
		Define("PrimitiveDef", schema.StructNamed(
			schema.Field{Name: "size", Declaration: "u32"},
		)).
		Define("SequenceDef", schema.StructNamed(
			schema.Field{Name: "length_width", Declaration: "u8"},
			schema.Field{Name: "length_range", Declaration: "Range"},
			schema.Field{Name: "elements", Declaration: "String"},
		)).
		Define("Range", schema.StructNamed(
			schema.Field{Name: "lo", Declaration: "u64"},
			schema.Field{Name: "hi", Declaration: "u64"},
		)).
		Define("TupleDef", schema.StructNamed(
			schema.Field{Name: "elements", Declaration: "DeclarationList"},
		)).
		Define("DeclarationList", schema.Sequence(4, dyn, "String")).
		Define("EnumDef", schema.StructNamed(
			schema.Field{Name: "tag_width", Declaration: "u8"},
			schema.Field{Name: "variants", Declaration: "VariantList"},
		)).
		Define("VariantList", schema.Sequence(4, dyn, "Variant")).
		Define("Variant", schema.StructNamed(
			schema.Field{Name: "index", Declaration: "u64"},
			schema.Field{Name: "name", Declaration: "String"},
			schema.Field{Name: "declaration", Declaration: "String"},
		)).
		Define("StructDef", schema.StructNamed(
			schema.Field{Name: "fields", Declaration: "FieldsDef"},
		)).
		Define("FieldsDef", schema.Enum(1,
			schema.Variant{Index: 0, Name: "NamedFields", Declaration: "NamedFieldList"},
			schema.Variant{Index: 1, Name: "UnnamedFields", Declaration: "DeclarationList"},
			schema.Variant{Index: 2, Name: "Empty", Declaration: "EmptyStruct"},
		)).
		Define("NamedFieldList", schema.Sequence(4, dyn, "NamedField")).
		Define("NamedField", schema.Tuple("String", "String")).
		Define("EmptyStruct", schema.StructEmpty())

	containerSchema = b.Container()
	return containerSchema
}
