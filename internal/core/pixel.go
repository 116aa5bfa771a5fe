// Pixel values and channel clamping
package core

import (
	"fmt"
	"math"
)

// Channel indexes inside a Pixel.
const (
	R = iota
	G
	B
	A
)

// Pixel is an RGBA sample. Channels are real-valued while a transform
// computes them and are clamped to [0,255] when stored.
type Pixel [4]float64

// PixelFromValues builds a Pixel from an arbitrary list of channel values.
func PixelFromValues(values ...float64) (Pixel, error) {
	if len(values) != 4 {
		return Pixel{}, fmt.Errorf("pixel needs 4 channel values, got %d: %w", len(values), ErrInvalidArgument)
	}
	return Pixel{values[0], values[1], values[2], values[3]}, nil
}

func clampChannel(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 255:
		return 255
	}
	return v
}

// toByte rounds half to even, matching a clamped byte array store.
func toByte(v float64) byte {
	return byte(math.RoundToEven(clampChannel(v)))
}
