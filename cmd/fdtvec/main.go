// Command fdtvec regenerates the checked-in YAML test-vector files from the
// canonical corpus in internal/vectors.
//
// Usage:
//
//	fdtvec [-root path]
//
// -root is the repository root (default "."). The tool rewrites:
//   - pkg/wire/testdata/byteorder.yaml
//   - pkg/mem/testdata/parse_uint.yaml
//
// Run it after extending the corpus and commit the result.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kernelfdt/fdtenv-go/internal/vectors"
)

func main() {
	root := flag.String("root", ".", "repository root")
	flag.Parse()

	files := []struct {
		path string
		data any
	}{
		{
			path: filepath.Join(*root, "pkg", "wire", "testdata", "byteorder.yaml"),
			data: &vectors.WordFile{Vectors: vectors.DefaultWordVectors()},
		},
		{
			path: filepath.Join(*root, "pkg", "mem", "testdata", "parse_uint.yaml"),
			data: &vectors.ParseFile{Vectors: vectors.DefaultParseVectors()},
		},
	}

	for _, f := range files {
		if err := writeYAML(f.path, f.data); err != nil {
			fmt.Fprintf(os.Stderr, "fdtvec: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", f.path)
	}
}

func writeYAML(path string, data any) error {
	out, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
