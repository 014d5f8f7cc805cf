package netio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/netlistkit/netrw/pkg/netlist"
)

// MarshalDesign converts a design to indented JSON bytes.
// Output is fully sorted, so identical designs marshal identically.
func MarshalDesign(d *netlist.Design) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteDesign(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteDesign writes a design as JSON to an io.Writer.
func WriteDesign(w io.Writer, d *netlist.Design) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromDesign(d)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteDesignFile writes a design to a JSON file with 0644 permissions.
func WriteDesignFile(d *netlist.Design, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteDesign(f, d)
}

// ReadDesign decodes a JSON design from an io.Reader.
// Structural violations in the file (duplicate names, multiple drivers,
// bad directions, dangling refs) are reported as errors.
func ReadDesign(r io.Reader) (*netlist.Design, error) {
	var dj Design
	if err := json.NewDecoder(r).Decode(&dj); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToDesign(dj)
}

// ReadDesignFile reads a JSON design file.
func ReadDesignFile(path string) (*netlist.Design, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadDesign(f)
}
