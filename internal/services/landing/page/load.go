package page

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed variants/*.yaml
var embeddedVariants embed.FS

// LoadEmbedded returns the variants shipped with the binary.
func LoadEmbedded() ([]Variant, error) {
	sub, err := fs.Sub(embeddedVariants, "variants")
	if err != nil {
		return nil, fmt.Errorf("open embedded variants: %w", err)
	}
	return LoadFromFS(sub)
}

// LoadDir reads variant files from a directory on disk.
func LoadDir(dir string) ([]Variant, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("variants directory is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat variants directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("variants path %q is not a directory", dir)
	}
	return LoadFromFS(os.DirFS(dir))
}

// LoadFromFS decodes and validates every *.yaml file at the root of fsys, in
// file name order.
func LoadFromFS(fsys fs.FS) ([]Variant, error) {
	if fsys == nil {
		return nil, errors.New("variants filesystem is required")
	}
	paths, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob variant files: %w", err)
	}
	if len(paths) == 0 {
		return nil, errors.New("no variant files found")
	}
	sort.Strings(paths)

	variants := make([]Variant, 0, len(paths))
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read variant %s: %w", path, err)
		}
		v, err := decodeVariant(data)
		if err != nil {
			return nil, fmt.Errorf("decode variant %s: %w", path, err)
		}
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("variant %s: %w", path, err)
		}
		variants = append(variants, v)
	}
	return variants, nil
}

func decodeVariant(data []byte) (Variant, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var v Variant
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return Variant{}, errors.New("empty document")
		}
		return Variant{}, err
	}
	return v, nil
}
