// Filter algorithms for smoothing and custom convolution
package algorithms

import (
	"fmt"

	"yaipt/internal/core"
)

var blurModes = []string{"average", "median", "gaussian"}

// Blur implements average, median and Gaussian smoothing
type Blur struct{}

// NewBlur creates a new blur algorithm
func NewBlur() *Blur {
	return &Blur{}
}

func (b *Blur) mode(params map[string]interface{}) (core.BlurMode, error) {
	mode, err := enumParam(params, "mode", "average", blurModes)
	if err != nil {
		return nil, err
	}
	kernelSize, err := floatRangeParam(params, "kernel_size", 3, 3, 21)
	if err != nil {
		return nil, err
	}
	size := int(kernelSize)
	if float64(size) != kernelSize || size%2 == 0 {
		return nil, fmt.Errorf("kernel_size must be an odd integer, got %g: %w", kernelSize, core.ErrInvalidArgument)
	}

	switch mode {
	case "median":
		return core.MedianBlur{Size: size}, nil
	case "gaussian":
		sigma, err := floatRangeParam(params, "sigma", 1, 0, 10)
		if err != nil {
			return nil, err
		}
		return core.GaussianBlur{Size: size, Sigma: sigma}, nil
	}
	return core.AverageBlur{Size: size}, nil
}

func (b *Blur) Apply(input *core.Image, params map[string]interface{}) (*core.Image, error) {
	mode, err := b.mode(params)
	if err != nil {
		return nil, err
	}
	return input.Blur(mode, core.Copy)
}

func (b *Blur) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{
		"mode":        "average",
		"kernel_size": 3.0,
		"sigma":       1.0,
	}
}

func (b *Blur) GetName() string {
	return "Blur"
}

func (b *Blur) GetDescription() string {
	return "Box, median or Gaussian smoothing"
}

func (b *Blur) Validate(params map[string]interface{}) error {
	_, err := b.mode(params)
	return err
}

func (b *Blur) GetParameterInfo() []ParameterInfo {
	return []ParameterInfo{
		{
			Name:        "mode",
			Type:        "enum",
			Default:     "average",
			Description: "Smoothing strategy",
			Options:     blurModes,
		},
		{
			Name:        "kernel_size",
			Type:        "int",
			Min:         3.0,
			Max:         21.0,
			Default:     3.0,
			Description: "Size of the neighborhood (must be odd)",
		},
		{
			Name:        "sigma",
			Type:        "float",
			Min:         0.0,
			Max:         10.0,
			Default:     1.0,
			Description: "Standard deviation for gaussian mode, 0 falls back to 1",
		},
	}
}

// Convolve applies a caller-supplied kernel
type Convolve struct{}

// NewConvolve creates a new convolution algorithm
func NewConvolve() *Convolve {
	return &Convolve{}
}

func (c *Convolve) options(params map[string]interface{}) (core.FilterOptions, error) {
	opts := core.FilterOptions{Mode: core.Copy}

	kernel, err := kernelParam(params, "kernel")
	if err != nil {
		return opts, err
	}
	if kernel == nil {
		kernel = sharpenKernel()
	}
	rows, cols, err := kernel.Size()
	if err != nil {
		return opts, err
	}
	if rows%2 == 0 || cols%2 == 0 {
		return opts, fmt.Errorf("kernel %dx%d must have odd dimensions: %w", rows, cols, core.ErrInvalidArgument)
	}
	opts.Kernel = kernel

	fill, err := floatListParam(params, "fill")
	if err != nil {
		return opts, err
	}
	if fill != nil {
		p, err := core.PixelFromValues(fill...)
		if err != nil {
			return opts, fmt.Errorf("fill: %w", err)
		}
		opts.Fill = &p
	}
	return opts, nil
}

func (c *Convolve) Apply(input *core.Image, params map[string]interface{}) (*core.Image, error) {
	opts, err := c.options(params)
	if err != nil {
		return nil, err
	}
	return input.Filter(core.ColorSpaceRGB, opts)
}

func (c *Convolve) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{
		"kernel": sharpenKernel(),
	}
}

func (c *Convolve) GetName() string {
	return "Convolve"
}

func (c *Convolve) GetDescription() string {
	return "Convolution with a custom kernel, normalized by a positive kernel sum"
}

func (c *Convolve) Validate(params map[string]interface{}) error {
	_, err := c.options(params)
	return err
}

func (c *Convolve) GetParameterInfo() []ParameterInfo {
	return []ParameterInfo{
		{
			Name:        "kernel",
			Type:        "list",
			Default:     sharpenKernel(),
			Description: "Rows of kernel weights (odd dimensions)",
		},
		{
			Name:        "fill",
			Type:        "list",
			Description: "RGBA used for neighbors outside the image, center pixel when unset",
		},
	}
}

func sharpenKernel() core.Kernel {
	return core.Kernel{
		{0, -1, 0},
		{-1, 5, -1},
		{0, -1, 0},
	}
}

// kernelParam reads a matrix given as a list of numeric rows.
func kernelParam(params map[string]interface{}, name string) (core.Kernel, error) {
	val, ok := params[name]
	if !ok || val == nil {
		return nil, nil
	}
	switch v := val.(type) {
	case core.Kernel:
		return v, nil
	case [][]float64:
		return core.Kernel(v), nil
	case []interface{}:
		k := make(core.Kernel, len(v))
		for i, row := range v {
			weights, err := floatListParam(map[string]interface{}{name: row}, name)
			if err != nil {
				return nil, fmt.Errorf("%s row %d: %w", name, i, err)
			}
			k[i] = weights
		}
		return k, nil
	}
	return nil, fmt.Errorf("%s must be a list of rows, got %T: %w", name, val, core.ErrInvalidArgument)
}
