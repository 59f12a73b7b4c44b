package schemajson

import (
	"bytes"
	"io"

	gojson "github.com/goccy/go-json"

	"go.schemacodec.dev/codec/codec"
	"go.schemacodec.dev/codec/schema"
)

// Write emits c as human-readable JSON to w, following the four-step
// algorithm spec.md §4.5 describes:
//  1. encode c against ContainerSchema() to produce bytes
//  2. decode those bytes, again against ContainerSchema(), to produce
//     a value.Value
//  3. marshal that value to JSON text
//  4. write that text to w
//
// Running the container back through the codec (rather than marshaling
// containerToValue's result directly) is what makes the output
// self-describing: any consumer implementing this specification can
// reproduce it from the binary form alone, without needing Go's
// in-memory schema.Container type.
func Write(c *schema.Container, w io.Writer) error {
	cs := ContainerSchema()

	var buf bytes.Buffer
	if err := codec.Encode(&buf, containerToValue(c), cs); err != nil {
		return err
	}

	decoded, err := codec.Decode(buf.Bytes(), cs)
	if err != nil {
		return err
	}

	text, err := gojson.MarshalIndent(decoded, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}

// Bytes returns c's canonical binary schema form (step 1 of Write,
// without the round trip through the decoder).
func Bytes(c *schema.Container) ([]byte, error) {
	var buf bytes.Buffer
	if err := codec.Encode(&buf, containerToValue(c), ContainerSchema()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
