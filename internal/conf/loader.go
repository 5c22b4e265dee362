package conf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/catalystcommunity/bbvar/internal/datastore"
	"gopkg.in/yaml.v3"
)

// Load reads a variable file into a fresh store. Files ending in .yaml or
// .yml are parsed as a flat name-to-value map; everything else is parsed as
// conf syntax. extra lists override names active in addition to whatever
// the file's OVERRIDES variable names.
func Load(path string, extra []string) (*datastore.DataStore, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("variable file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to open variable file %s: %w", path, err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		return LoadYAML(file)
	}
	return LoadFromReader(file, extra)
}

// LoadFromReader parses conf syntax from r and applies it to a fresh store.
func LoadFromReader(r io.Reader, extra []string) (*datastore.DataStore, error) {
	assignments, err := ParseReader(r)
	if err != nil {
		return nil, err
	}

	d := datastore.New()
	ApplyAll(d, assignments, extra)
	return d, nil
}

// LoadYAML parses a flat YAML map of variable names to string values.
func LoadYAML(r io.Reader) (*datastore.DataStore, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read variable file: %w", err)
	}

	vars := make(map[string]string)
	if err := yaml.Unmarshal(data, &vars); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return datastore.NewFromMap(vars), nil
}
