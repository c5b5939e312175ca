// Package yamlcatalog loads user-supplied construct catalogs. The
// built-in languages are compiled in; this is for adding one without
// rebuilding.
package yamlcatalog

import (
	"fmt"
	"os"

	"github.com/gveselov/morfa"
	"gopkg.in/yaml.v3"
)

// Open reads and validates a catalog. A malformed construct definition
// surfaces here, at load time, never during analysis.
func Open(filePath string) (*morfa.Catalog, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	catalog := morfa.Catalog{}
	if err := yaml.NewDecoder(file).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", filePath, err)
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	return &catalog, nil
}
