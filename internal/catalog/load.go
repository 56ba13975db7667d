package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/*.json defaults/*.yaml
var defaultFiles embed.FS

// Defaults returns the built-in catalog documents.
func Defaults() fs.FS {
	sub, err := fs.Sub(defaultFiles, "defaults")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}

// LoadDir loads every catalog document in dir.
func LoadDir(dir string) (*Catalog, error) {
	return Load(os.DirFS(dir))
}

// Load reads all *.json, *.yaml and *.yml documents at the root of fsys,
// merges them in file-name order and validates the result.
func Load(fsys fs.FS) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading catalog directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !isCatalogFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("no catalog documents found")
	}

	merged := &Catalog{}
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		doc, err := Parse(name, data)
		if err != nil {
			return nil, err
		}
		merged.Merge(doc)
	}

	if errs := Validate(merged); len(errs) > 0 {
		return nil, fmt.Errorf("invalid catalog: %w", joinErrors(errs))
	}
	return merged, nil
}

// Parse decodes a single catalog document. The format is chosen from the
// file extension of name.
func Parse(name string, data []byte) (*Catalog, error) {
	var doc Catalog
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing catalog %s: %w", name, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing catalog %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("parsing catalog %s: unsupported format", name)
	}
	return &doc, nil
}

func isCatalogFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
