package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/catalog.yaml
var defaultCatalogYAML []byte

// Load loads the mini-game catalog.
// Search order: customPath -> ~/.pasha/catalog.yaml -> embedded default.
// A custom path that fails to load is an error; the user-dir file is only
// used when it parses and validates cleanly, otherwise the embedded
// default wins.
func Load(customPath string) (*Catalog, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("catalog: cannot read %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	if userPath := userCatalogPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if c, err := parse(data, userPath); err == nil {
				return c, nil
			}
		}
	}

	return parse(defaultCatalogYAML, "embedded default")
}

// Default returns the embedded catalog. It panics on a malformed embed,
// which is a build defect rather than a runtime condition.
func Default() *Catalog {
	c, err := parse(defaultCatalogYAML, "embedded default")
	if err != nil {
		panic(err)
	}
	return c
}

func parse(data []byte, source string) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("catalog: cannot parse %s: %w", source, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog: invalid %s: %w", source, err)
	}
	return &c, nil
}

// userCatalogPath returns the user override path, or empty if home is
// unavailable.
func userCatalogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pasha", "catalog.yaml")
}
