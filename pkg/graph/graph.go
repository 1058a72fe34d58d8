package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Result Serialization API
// =============================================================================

// Marshal converts a Result to indented JSON bytes.
func Marshal(r Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(r, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes JSON bytes into a Result.
func Unmarshal(data []byte) (Result, error) {
	return Read(bytes.NewReader(data))
}

// Write writes a Result as indented JSON to w.
func Write(r Result, w io.Writer) error {
	r = NewResult(r.Nodes, r.Edges)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes a Result to a JSON file.
func WriteFile(r Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(r, f)
}

// Read decodes a JSON Result from r.
func Read(r io.Reader) (Result, error) {
	var out Result
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return Result{}, fmt.Errorf("decode: %w", err)
	}
	return NewResult(out.Nodes, out.Edges), nil
}

// ReadFile reads a JSON Result file.
func ReadFile(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
