// Package schemaio provides the file-system and in-memory convenience
// wrappers spec.md §6.4 lists as library surface
// (WriteSchema/SchemaToBytes/WriteSchemaAsJSON) but spec.md §1
// explicitly keeps out of "the core": persistence and I/O choices for
// a schema are the caller's concern, not the codec's. This package is
// the thin shell that owns those choices, grounded directly on
// original_source's borsh-schema-writer/src/lib.rs (write_schema,
// schema_to_bytes) and borsh-serde-adapter/src/lib.rs
// (write_schema_as_json).
package schemaio

import (
	"os"

	"go.schemacodec.dev/codec/schema"
	"go.schemacodec.dev/codec/schemajson"
)

// WriteSchema writes c's canonical binary schema form to path.
func WriteSchema(c *schema.Container, path string) error {
	data, err := schemajson.Bytes(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// SchemaToBytes returns c's canonical binary schema form.
func SchemaToBytes(c *schema.Container) ([]byte, error) {
	return schemajson.Bytes(c)
}

// WriteSchemaAsJSON writes c's human-readable JSON projection to
// path, for consumers in other language ecosystems.
func WriteSchemaAsJSON(c *schema.Container, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return schemajson.Write(c, f)
}
