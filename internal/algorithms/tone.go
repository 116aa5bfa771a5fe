// Brightness and contrast algorithms
package algorithms

import (
	"yaipt/internal/core"
)

var contrastModes = []string{"linear", "non_linear"}

type toneParams struct {
	brightness float64
	contrast   float64
	linear     bool
}

// parseTone reads brightness, contrast and mode. The contrast range depends
// on the mode: a multiplier for linear, a level in [-255,255] otherwise.
func parseTone(params map[string]interface{}) (toneParams, error) {
	var tp toneParams
	var err error

	if tp.brightness, err = floatRangeParam(params, "brightness", 0, -255, 255); err != nil {
		return tp, err
	}
	mode, err := enumParam(params, "mode", "linear", contrastModes)
	if err != nil {
		return tp, err
	}
	tp.linear = mode == "linear"

	if tp.linear {
		tp.contrast, err = floatRangeParam(params, "contrast", 1, 0, 10)
	} else {
		tp.contrast, err = floatRangeParam(params, "contrast", 0, -255, 255)
	}
	return tp, err
}

var (
	brightnessInfo = ParameterInfo{
		Name:        "brightness",
		Type:        "float",
		Min:         -255.0,
		Max:         255.0,
		Default:     0.0,
		Description: "Offset added to R, G and B",
	}
	contrastInfo = ParameterInfo{
		Name:        "contrast",
		Type:        "float",
		Min:         -255.0,
		Max:         255.0,
		Default:     1.0,
		Description: "Multiplier in linear mode (0 to 10), level in non_linear mode (-255 to 255)",
	}
	contrastModeInfo = ParameterInfo{
		Name:        "mode",
		Type:        "enum",
		Default:     "linear",
		Description: "Contrast formula",
		Options:     contrastModes,
	}
)

// Brightness shifts R, G and B by a constant
type Brightness struct{}

// NewBrightness creates a new brightness algorithm
func NewBrightness() *Brightness {
	return &Brightness{}
}

func (b *Brightness) Apply(input *core.Image, params map[string]interface{}) (*core.Image, error) {
	delta, err := floatRangeParam(params, "brightness", 0, -255, 255)
	if err != nil {
		return nil, err
	}
	return input.Brightness(delta, core.Copy)
}

func (b *Brightness) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{
		"brightness": 0.0,
	}
}

func (b *Brightness) GetName() string {
	return "Brightness"
}

func (b *Brightness) GetDescription() string {
	return "Add a signed offset to every color channel"
}

func (b *Brightness) Validate(params map[string]interface{}) error {
	_, err := floatRangeParam(params, "brightness", 0, -255, 255)
	return err
}

func (b *Brightness) GetParameterInfo() []ParameterInfo {
	return []ParameterInfo{brightnessInfo}
}

// Contrast scales channels linearly or around the pixel luminance
type Contrast struct{}

// NewContrast creates a new contrast algorithm
func NewContrast() *Contrast {
	return &Contrast{}
}

func (c *Contrast) Apply(input *core.Image, params map[string]interface{}) (*core.Image, error) {
	tp, err := parseTone(params)
	if err != nil {
		return nil, err
	}
	if tp.linear {
		return input.Contrast(tp.contrast, core.Copy)
	}
	return input.ContrastNonLinear(tp.contrast, core.Copy)
}

func (c *Contrast) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{
		"contrast": 1.0,
		"mode":     "linear",
	}
}

func (c *Contrast) GetName() string {
	return "Contrast"
}

func (c *Contrast) GetDescription() string {
	return "Linear gain or luminance-relative contrast stretch"
}

func (c *Contrast) Validate(params map[string]interface{}) error {
	_, err := parseTone(params)
	return err
}

func (c *Contrast) GetParameterInfo() []ParameterInfo {
	return []ParameterInfo{contrastInfo, contrastModeInfo}
}

// BrightnessContrast applies contrast and then brightness in one pass
type BrightnessContrast struct{}

// NewBrightnessContrast creates a new combined brightness/contrast algorithm
func NewBrightnessContrast() *BrightnessContrast {
	return &BrightnessContrast{}
}

func (bc *BrightnessContrast) Apply(input *core.Image, params map[string]interface{}) (*core.Image, error) {
	tp, err := parseTone(params)
	if err != nil {
		return nil, err
	}
	return input.BrightnessContrast(tp.brightness, tp.contrast, tp.linear, core.Copy)
}

func (bc *BrightnessContrast) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{
		"brightness": 0.0,
		"contrast":   1.0,
		"mode":       "linear",
	}
}

func (bc *BrightnessContrast) GetName() string {
	return "Brightness/Contrast"
}

func (bc *BrightnessContrast) GetDescription() string {
	return "Contrast adjustment followed by a brightness offset"
}

func (bc *BrightnessContrast) Validate(params map[string]interface{}) error {
	_, err := parseTone(params)
	return err
}

func (bc *BrightnessContrast) GetParameterInfo() []ParameterInfo {
	return []ParameterInfo{brightnessInfo, contrastInfo, contrastModeInfo}
}
