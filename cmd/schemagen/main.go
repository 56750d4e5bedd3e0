package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/GodfreyDev/ChatGame/internal/net/proto"
)

const defaultOutPath = "docs/schema/client-message.schema.json"

// schemagen emits a JSON schema for the client-to-server message envelope so
// client implementations can validate their payloads before sending.
func main() {
	outPath := flag.String("out", defaultOutPath, "path to write the JSON schema")
	stdout := flag.Bool("stdout", false, "print the schema instead of writing -out")
	flag.Parse()

	data, err := renderSchema()
	if err != nil {
		fmt.Fprintf(os.Stderr, "schemagen: %v\n", err)
		os.Exit(1)
	}

	if *stdout {
		os.Stdout.Write(data)
		return
	}
	if err := replaceFile(*outPath, data); err != nil {
		fmt.Fprintf(os.Stderr, "schemagen: %v\n", err)
		os.Exit(1)
	}
}

func renderSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(proto.ClientMessage))
	schema.ID = jsonschema.ID("https://github.com/GodfreyDev/ChatGame/docs/schema/client-message.schema.json")
	schema.Title = "ChatGame Client Message"
	schema.Description = "Validates the JSON envelope clients send over the websocket"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}

// replaceFile swaps the schema in atomically via a sibling temp file.
func replaceFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}
	return nil
}
