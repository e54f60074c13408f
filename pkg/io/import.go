package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadJSON decodes a JSON scene document from r.
//
// The input must be a JSON object with a "scene" node and optional
// "natural_width"/"natural_height" fields:
//
//	{
//	  "natural_width": 200,
//	  "natural_height": 100,
//	  "scene": {"kind": "group", "children": [...]}
//	}
//
// ReadJSON returns an error if:
//   - The JSON is malformed or the "scene" node is missing
//   - A node carries an unknown "kind"
//   - A style or texture carries an unrecognized enumeration value
//
// Unknown kinds and enumeration values are hard errors carrying
// errors.ErrCodeInvalidScene; the decoder never substitutes a default for
// a value it does not recognize.
//
// The returned Scene is independent of r and can be modified safely after
// ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Scene, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if data.Scene == nil {
		return nil, fmt.Errorf("decode: missing scene node")
	}

	root, err := decodeNode(data.Scene)
	if err != nil {
		return nil, err
	}

	return &Scene{
		NaturalWidth:  data.NaturalWidth,
		NaturalHeight: data.NaturalHeight,
		Root:          root,
	}, nil
}

// ImportJSON reads a JSON file at path and returns the decoded scene.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. If the file cannot be opened, or if decoding fails, ImportJSON
// returns an error describing the failure. The error wraps the underlying
// cause with the file path for context.
func ImportJSON(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	s, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return s, nil
}
