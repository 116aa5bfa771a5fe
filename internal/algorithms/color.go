// Channel, grayscale and tint algorithms
package algorithms

import (
	"fmt"

	"yaipt/internal/core"
)

// ChannelIsolation keeps a single color channel
type ChannelIsolation struct {
	channel string
}

// NewChannelIsolation creates an algorithm keeping "red", "green" or "blue"
func NewChannelIsolation(channel string) *ChannelIsolation {
	return &ChannelIsolation{channel: channel}
}

func (c *ChannelIsolation) Apply(input *core.Image, params map[string]interface{}) (*core.Image, error) {
	switch c.channel {
	case "red":
		return input.Red(core.Copy)
	case "green":
		return input.Green(core.Copy)
	case "blue":
		return input.Blue(core.Copy)
	}
	return nil, fmt.Errorf("unknown channel %q: %w", c.channel, core.ErrInvalidArgument)
}

func (c *ChannelIsolation) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{}
}

func (c *ChannelIsolation) GetName() string {
	return "Channel Isolation (" + c.channel + ")"
}

func (c *ChannelIsolation) GetDescription() string {
	return "Zero every color channel except " + c.channel
}

func (c *ChannelIsolation) Validate(params map[string]interface{}) error {
	return nil
}

func (c *ChannelIsolation) GetParameterInfo() []ParameterInfo {
	return nil
}

var grayModes = []string{"luminance", "luma", "average", "random", "custom"}

// Grayscale implements weighted grayscale conversion
type Grayscale struct{}

// NewGrayscale creates a new grayscale algorithm
func NewGrayscale() *Grayscale {
	return &Grayscale{}
}

func (g *Grayscale) mode(params map[string]interface{}) (core.GrayMode, error) {
	mode, err := enumParam(params, "mode", "luminance", grayModes)
	if err != nil {
		return nil, err
	}

	switch mode {
	case "luma":
		return core.Luma{}, nil
	case "average":
		return core.Average{}, nil
	case "random":
		return core.Random{}, nil
	case "custom":
		weights, err := floatListParam(params, "weights")
		if err != nil {
			return nil, err
		}
		return core.Custom{Weights: weights}, nil
	}
	return core.Luminance{}, nil
}

func (g *Grayscale) Apply(input *core.Image, params map[string]interface{}) (*core.Image, error) {
	mode, err := g.mode(params)
	if err != nil {
		return nil, err
	}
	return input.Grayscale(mode, core.Copy)
}

func (g *Grayscale) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{
		"mode": "luminance",
	}
}

func (g *Grayscale) GetName() string {
	return "Grayscale"
}

func (g *Grayscale) GetDescription() string {
	return "Replace R, G and B with a weighted sum of the three"
}

func (g *Grayscale) Validate(params map[string]interface{}) error {
	mode, err := g.mode(params)
	if err != nil {
		return err
	}
	if custom, ok := mode.(core.Custom); ok && len(custom.Weights) != 3 {
		return fmt.Errorf("custom mode needs 3 weights, got %d: %w", len(custom.Weights), core.ErrInvalidArgument)
	}
	return nil
}

func (g *Grayscale) GetParameterInfo() []ParameterInfo {
	return []ParameterInfo{
		{
			Name:        "mode",
			Type:        "enum",
			Default:     "luminance",
			Description: "Channel weighting",
			Options:     grayModes,
		},
		{
			Name:        "weights",
			Type:        "list",
			Description: "R, G and B weights for custom mode",
		},
	}
}

// Sepia implements the sepia tone matrix
type Sepia struct{}

// NewSepia creates a new sepia algorithm
func NewSepia() *Sepia {
	return &Sepia{}
}

func (s *Sepia) Apply(input *core.Image, params map[string]interface{}) (*core.Image, error) {
	return input.Sepia(core.Copy)
}

func (s *Sepia) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{}
}

func (s *Sepia) GetName() string {
	return "Sepia"
}

func (s *Sepia) GetDescription() string {
	return "Warm brown tint through a fixed channel-mixing matrix"
}

func (s *Sepia) Validate(params map[string]interface{}) error {
	return nil
}

func (s *Sepia) GetParameterInfo() []ParameterInfo {
	return nil
}

// Invert implements the color negative
type Invert struct{}

// NewInvert creates a new invert algorithm
func NewInvert() *Invert {
	return &Invert{}
}

func (i *Invert) Apply(input *core.Image, params map[string]interface{}) (*core.Image, error) {
	return input.Invert(core.Copy)
}

func (i *Invert) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{}
}

func (i *Invert) GetName() string {
	return "Invert"
}

func (i *Invert) GetDescription() string {
	return "Replace every color channel with 255 minus its value"
}

func (i *Invert) Validate(params map[string]interface{}) error {
	return nil
}

func (i *Invert) GetParameterInfo() []ParameterInfo {
	return nil
}
