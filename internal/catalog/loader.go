package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML catalog. A missing file is not an error: the built-in
// catalog is returned instead.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	return Parse(data)
}

// Parse builds a catalog from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if f.Version == "" {
		f.Version = "1"
	}
	return New(f)
}

// Marshal renders the catalog as YAML, suitable for Load.
func Marshal(c *Catalog) ([]byte, error) {
	return yaml.Marshal(c.File())
}
