// Package main provides the CLI entry point for schemacodec, a tool
// that encodes and decodes binary values against a schema and projects
// a binary schema to its self-describing JSON form.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"go.schemacodec.dev/codec/codec"
	"go.schemacodec.dev/codec/diag"
	"go.schemacodec.dev/codec/schema"
	"go.schemacodec.dev/codec/schemajson"
)

func main() {
	diagCfg := diag.NewConfig()

	rootCmd := &cobra.Command{
		Use:           "schemacodec",
		Short:         "Encode and decode values against a schema",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			handler, err := diagCfg.NewHandler(os.Stderr)
			if err != nil {
				return err
			}
			diag.SetLogger(slog.New(handler))
			return nil
		},
	}
	diagCfg.RegisterFlags(rootCmd.PersistentFlags())

	var schemaPath string

	decodeCmd := &cobra.Command{
		Use:   "decode <data-file>",
		Short: "Decode a binary value against --schema and print its JSON projection",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runDecode(schemaPath, args[0])
		},
	}
	decodeCmd.Flags().StringVar(&schemaPath, "schema", "", "path to a binary schema file (required)")
	_ = decodeCmd.MarkFlagRequired("schema")

	encodeCmd := &cobra.Command{
		Use:   "encode <json-file>",
		Short: "Encode a JSON value against --schema and print the binary result",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runEncode(schemaPath, args[0])
		},
	}
	encodeCmd.Flags().StringVar(&schemaPath, "schema", "", "path to a binary schema file (required)")
	_ = encodeCmd.MarkFlagRequired("schema")

	schemaJSONCmd := &cobra.Command{
		Use:   "schema-json",
		Short: "Project --schema to its human-readable, self-describing JSON form",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSchemaJSON(schemaPath)
		},
	}
	schemaJSONCmd.Flags().StringVar(&schemaPath, "schema", "", "path to a binary schema file (required)")
	_ = schemaJSONCmd.MarkFlagRequired("schema")

	rootCmd.AddCommand(decodeCmd, encodeCmd, schemaJSONCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func loadSchema(path string) (*schema.Container, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	return schemajson.Parse(raw)
}

func runDecode(schemaPath, dataPath string) error {
	s, err := loadSchema(schemaPath)
	if err != nil {
		return err
	}
	buf, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("reading data: %w", err)
	}
	decoded, err := codec.Decode(buf, s)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	out, err := gojson.MarshalIndent(decoded, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	_, err = os.Stdout.Write(append(out, '\n'))
	return err
}

func runEncode(schemaPath, jsonPath string) error {
	s, err := loadSchema(schemaPath)
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("reading JSON: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("parsing JSON: %w", err)
	}

	var out bytes.Buffer
	if err := codec.Encode(&out, v, s); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	_, err = os.Stdout.Write(out.Bytes())
	return err
}

func runSchemaJSON(schemaPath string) error {
	s, err := loadSchema(schemaPath)
	if err != nil {
		return err
	}
	return schemajson.Write(s, os.Stdout)
}
