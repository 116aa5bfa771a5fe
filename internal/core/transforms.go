// Named color transforms built on Iterate
package core

import (
	"fmt"
	"math/rand"
	"sort"
)

// Red keeps only the red channel.
func (img *Image) Red(mode Mode) (*Image, error) {
	return img.Iterate(ColorSpaceRGB, func(p Pixel, _, _ int) Pixel {
		return Pixel{p[R], 0, 0, p[A]}
	}, mode)
}

// Green keeps only the green channel.
func (img *Image) Green(mode Mode) (*Image, error) {
	return img.Iterate(ColorSpaceRGB, func(p Pixel, _, _ int) Pixel {
		return Pixel{0, p[G], 0, p[A]}
	}, mode)
}

// Blue keeps only the blue channel.
func (img *Image) Blue(mode Mode) (*Image, error) {
	return img.Iterate(ColorSpaceRGB, func(p Pixel, _, _ int) Pixel {
		return Pixel{0, 0, p[B], p[A]}
	}, mode)
}

// GrayMode selects the channel weights used by Grayscale.
type GrayMode interface {
	weights() ([3]float64, error)
}

// Luminance weights channels per ITU-R BT.709.
type Luminance struct{}

// Luma weights channels per ITU-R BT.601.
type Luma struct{}

// Average weights every channel equally.
type Average struct{}

// Random draws a fresh split of weights summing to 1 on every call.
type Random struct{}

// Custom uses caller-supplied R, G and B weights.
type Custom struct {
	Weights []float64
}

func (Luminance) weights() ([3]float64, error) { return [3]float64{.2126, .7152, .0722}, nil }
func (Luma) weights() ([3]float64, error)      { return [3]float64{.299, .587, .114}, nil }
func (Average) weights() ([3]float64, error)   { return [3]float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, nil }

func (Random) weights() ([3]float64, error) {
	cuts := []float64{rand.Float64(), rand.Float64()}
	sort.Float64s(cuts)
	return [3]float64{cuts[0], cuts[1] - cuts[0], 1 - cuts[1]}, nil
}

func (c Custom) weights() ([3]float64, error) {
	if len(c.Weights) != 3 {
		return [3]float64{}, fmt.Errorf("custom grayscale needs 3 weights, got %d: %w", len(c.Weights), ErrInvalidArgument)
	}
	return [3]float64{c.Weights[0], c.Weights[1], c.Weights[2]}, nil
}

// Grayscale replaces R, G and B with their weighted sum. A nil gm means
// Luminance.
func (img *Image) Grayscale(gm GrayMode, mode Mode) (*Image, error) {
	if gm == nil {
		gm = Luminance{}
	}
	w, err := gm.weights()
	if err != nil {
		return nil, err
	}
	return img.Iterate(ColorSpaceRGB, func(p Pixel, _, _ int) Pixel {
		y := p[R]*w[0] + p[G]*w[1] + p[B]*w[2]
		return Pixel{y, y, y, p[A]}
	}, mode)
}

// Sepia mixes R, G and B through the classic sepia tone matrix.
func (img *Image) Sepia(mode Mode) (*Image, error) {
	return img.Iterate(ColorSpaceRGB, func(p Pixel, _, _ int) Pixel {
		return Pixel{
			p[R]*.393 + p[G]*.769 + p[B]*.189,
			p[R]*.349 + p[G]*.686 + p[B]*.168,
			p[R]*.272 + p[G]*.534 + p[B]*.131,
			p[A],
		}
	}, mode)
}

// Invert replaces every color channel with 255 minus its value.
func (img *Image) Invert(mode Mode) (*Image, error) {
	return img.Iterate(ColorSpaceRGB, func(p Pixel, _, _ int) Pixel {
		return Pixel{255 - p[R], 255 - p[G], 255 - p[B], p[A]}
	}, mode)
}

// Brightness adds delta to R, G and B.
func (img *Image) Brightness(delta float64, mode Mode) (*Image, error) {
	return img.BrightnessContrast(delta, 1, true, mode)
}

// Contrast multiplies R, G and B by factor.
func (img *Image) Contrast(factor float64, mode Mode) (*Image, error) {
	return img.BrightnessContrast(0, factor, true, mode)
}

// ContrastNonLinear stretches each channel away from the pixel's
// luminance. contrast runs from -255 (flat) through 0 (unchanged) to 255
// (binarized).
func (img *Image) ContrastNonLinear(contrast float64, mode Mode) (*Image, error) {
	return img.BrightnessContrast(0, contrast, false, mode)
}

// BrightnessContrast applies contrast first and then adds brightness. With
// linear set, contrast is a multiplier; otherwise it is the non-linear
// contrast level of ContrastNonLinear.
func (img *Image) BrightnessContrast(brightness, contrast float64, linear bool, mode Mode) (*Image, error) {
	adjust := linearContrast(contrast)
	if !linear {
		adjust = nonLinearContrast(contrast)
	}
	return img.Iterate(ColorSpaceRGB, func(p Pixel, _, _ int) Pixel {
		p = adjust(p)
		p[R] += brightness
		p[G] += brightness
		p[B] += brightness
		return p
	}, mode)
}

func linearContrast(factor float64) func(Pixel) Pixel {
	return func(p Pixel) Pixel {
		p[R] *= factor
		p[G] *= factor
		p[B] *= factor
		return p
	}
}

func nonLinearContrast(contrast float64) func(Pixel) Pixel {
	return func(p Pixel) Pixel {
		t := .2126*p[R] + .7152*p[G] + .0722*p[B]
		for c := R; c <= B; c++ {
			switch {
			case contrast >= 255:
				if p[c] > t {
					p[c] = 255
				} else {
					p[c] = 0
				}
			case contrast >= 0:
				p[c] += (p[c] - t) * (1/(1-contrast/255) - 1)
			case contrast > -255:
				p[c] += (p[c] - t) * contrast / 255
			default:
				p[c] = t
			}
		}
		return p
	}
}
