package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/notewall/pkg/pipeline"
)

// WriteJSON encodes a wall as indented JSON and writes it to w.
func WriteJSON(res *pipeline.Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a wall to a JSON file at path. The file is replaced
// atomically so a reader never sees a partial wall.
func ExportJSON(res *pipeline.Result, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".wall-*.json")
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteJSON(res, tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}
