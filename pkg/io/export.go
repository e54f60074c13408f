package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSON encodes a scene document as JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(s *Scene, w io.Writer) error {
	root, err := encodeNode(s.Root)
	if err != nil {
		return err
	}

	out := document{
		NaturalWidth:  s.NaturalWidth,
		NaturalHeight: s.NaturalHeight,
		Scene:         root,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the scene to a JSON file at path, creating or
// truncating the file. The error wraps the underlying cause with the file
// path for context.
func ExportJSON(s *Scene, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteJSON(s, f); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}
