// Processing recipes loaded from YAML or TOML
package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Step is one algorithm invocation in a recipe
type Step struct {
	Algorithm  string                 `yaml:"algorithm" toml:"algorithm"`
	Parameters map[string]interface{} `yaml:"parameters" toml:"parameters"`
	Disabled   bool                   `yaml:"disabled" toml:"disabled"`
}

// Recipe is an ordered list of steps
type Recipe struct {
	Name  string `yaml:"name" toml:"name"`
	Steps []Step `yaml:"steps" toml:"steps"`
}

// Format names a recipe encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the recipe format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unsupported recipe format: %s", path)
}

// LoadRecipe reads and decodes a recipe file
func LoadRecipe(path string) (*Recipe, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipe: %w", err)
	}
	return ParseRecipe(data, format)
}

// ParseRecipe decodes a recipe in the given format
func ParseRecipe(data []byte, format Format) (*Recipe, error) {
	var r Recipe
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&r); err != nil {
			return nil, fmt.Errorf("decode yaml recipe: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &r)
		if err != nil {
			return nil, fmt.Errorf("decode toml recipe: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown recipe keys: %v", undecoded)
		}
	default:
		return nil, fmt.Errorf("unsupported recipe format: %s", format)
	}
	return &r, nil
}
