// Package vectors loads the shared YAML test-vector files under testdata.
// The vectors pin byte-order and numeric-parse behavior to fixed examples so
// every package checks against the same corpus; cmd/fdtvec regenerates the
// files from the defaults here.
package vectors

import (
	"encoding/hex"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WordVector is one byte-order vector: the big-endian wire bytes of a value,
// hex-encoded, and the host value they decode to.
type WordVector struct {
	Name  string `yaml:"name"`
	Width int    `yaml:"width"`
	Wire  string `yaml:"wire"`
	Value uint64 `yaml:"value"`
}

// WireBytes decodes the hex-encoded wire representation.
func (v WordVector) WireBytes() ([]byte, error) {
	b, err := hex.DecodeString(v.Wire)
	if err != nil {
		return nil, fmt.Errorf("vector %q: decoding wire bytes: %w", v.Name, err)
	}
	if len(b)*8 != v.Width {
		return nil, fmt.Errorf("vector %q: %d wire bytes for width %d", v.Name, len(b), v.Width)
	}
	return b, nil
}

// WordFile is the on-disk form of a byte-order vector file.
type WordFile struct {
	Vectors []WordVector `yaml:"vectors"`
}

// ParseVector is one numeric-parse vector: input bytes, requested base, and
// the expected value and consumed-byte count.
type ParseVector struct {
	Name     string `yaml:"name"`
	Input    string `yaml:"input"`
	Base     int    `yaml:"base"`
	Value    uint64 `yaml:"value"`
	Consumed int    `yaml:"consumed"`
}

// ParseFile is the on-disk form of a numeric-parse vector file.
type ParseFile struct {
	Vectors []ParseVector `yaml:"vectors"`
}

// ParseWordFile parses a byte-order vector file from YAML bytes.
func ParseWordFile(data []byte) (*WordFile, error) {
	var f WordFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing word vectors: %w", err)
	}
	return &f, nil
}

// LoadWordFile loads and parses a byte-order vector file.
func LoadWordFile(path string) (*WordFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseWordFile(data)
}

// ParseParseFile parses a numeric-parse vector file from YAML bytes.
func ParseParseFile(data []byte) (*ParseFile, error) {
	var f ParseFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing parse vectors: %w", err)
	}
	return &f, nil
}

// LoadParseFile loads and parses a numeric-parse vector file.
func LoadParseFile(path string) (*ParseFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseParseFile(data)
}
