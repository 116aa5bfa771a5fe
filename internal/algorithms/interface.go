// Named algorithm registry over the core transforms
package algorithms

import (
	"fmt"
	"sort"
	"strings"

	"yaipt/internal/core"
)

// Algorithm defines the interface for image processing algorithms
type Algorithm interface {
	Apply(input *core.Image, params map[string]interface{}) (*core.Image, error)
	GetDefaultParams() map[string]interface{}
	GetName() string
	GetDescription() string
	Validate(params map[string]interface{}) error
	GetParameterInfo() []ParameterInfo
}

// ParameterInfo describes a parameter for CLI help and recipe validation
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "int", "float", "string", "enum", "list"
	Min         interface{} `json:"min,omitempty"`
	Max         interface{} `json:"max,omitempty"`
	Default     interface{} `json:"default"`
	Description string      `json:"description"`
	Options     []string    `json:"options,omitempty"` // For enum type
}

var algorithms = make(map[string]Algorithm)

func Register(name string, algorithm Algorithm) {
	algorithms[name] = algorithm
}

func Get(name string) (Algorithm, bool) {
	algorithm, exists := algorithms[name]
	return algorithm, exists
}

func Apply(name string, input *core.Image, params map[string]interface{}) (*core.Image, error) {
	algorithm, exists := algorithms[name]
	if !exists {
		return nil, fmt.Errorf("algorithm not found: %s", name)
	}

	return algorithm.Apply(input, params)
}

func ValidateParameters(name string, params map[string]interface{}) error {
	algorithm, exists := algorithms[name]
	if !exists {
		return fmt.Errorf("algorithm not found: %s", name)
	}

	return algorithm.Validate(params)
}

func IsValidAlgorithm(name string) bool {
	_, exists := algorithms[name]
	return exists
}

// Names returns every registered algorithm name in sorted order.
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func GetAlgorithmsByCategory() map[string][]string {
	return map[string][]string{
		"Channels": {
			"red",
			"green",
			"blue",
		},
		"Color": {
			"grayscale",
			"sepia",
			"invert",
		},
		"Tone": {
			"brightness",
			"contrast",
			"brightness_contrast",
		},
		"Filters": {
			"blur",
			"convolve",
		},
	}
}

func init() {
	Register("red", NewChannelIsolation("red"))
	Register("green", NewChannelIsolation("green"))
	Register("blue", NewChannelIsolation("blue"))

	Register("grayscale", NewGrayscale())
	Register("sepia", NewSepia())
	Register("invert", NewInvert())

	Register("brightness", NewBrightness())
	Register("contrast", NewContrast())
	Register("brightness_contrast", NewBrightnessContrast())

	Register("blur", NewBlur())
	Register("convolve", NewConvolve())
}

// floatParam reads a numeric parameter. Recipes decoded from YAML and TOML
// produce ints as well as floats.
func floatParam(params map[string]interface{}, name string, def float64) (float64, error) {
	val, ok := params[name]
	if !ok || val == nil {
		return def, nil
	}
	if f, ok := toFloat(val); ok {
		return f, nil
	}
	return 0, fmt.Errorf("%s must be a number, got %T: %w", name, val, core.ErrInvalidArgument)
}

func floatRangeParam(params map[string]interface{}, name string, def, min, max float64) (float64, error) {
	v, err := floatParam(params, name, def)
	if err != nil {
		return 0, err
	}
	if v < min || v > max {
		return 0, fmt.Errorf("%s must be between %g and %g: %w", name, min, max, core.ErrInvalidArgument)
	}
	return v, nil
}

func enumParam(params map[string]interface{}, name, def string, options []string) (string, error) {
	val, ok := params[name]
	if !ok || val == nil {
		return def, nil
	}
	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string, got %T: %w", name, val, core.ErrInvalidArgument)
	}
	s = strings.ToLower(s)
	for _, opt := range options {
		if s == opt {
			return s, nil
		}
	}
	return "", fmt.Errorf("%s must be one of %s, got %q: %w", name, strings.Join(options, ", "), s, core.ErrInvalidArgument)
}

// floatListParam reads a list of numbers, or nil when the parameter is absent.
func floatListParam(params map[string]interface{}, name string) ([]float64, error) {
	val, ok := params[name]
	if !ok || val == nil {
		return nil, nil
	}
	switch v := val.(type) {
	case []float64:
		return v, nil
	case []interface{}:
		out := make([]float64, len(v))
		for i, item := range v {
			f, ok := toFloat(item)
			if !ok {
				return nil, fmt.Errorf("%s[%d] must be a number, got %T: %w", name, i, item, core.ErrInvalidArgument)
			}
			out[i] = f
		}
		return out, nil
	}
	return nil, fmt.Errorf("%s must be a list of numbers, got %T: %w", name, val, core.ErrInvalidArgument)
}

func toFloat(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}
