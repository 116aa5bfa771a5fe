// Per-pixel transform pipeline
package core

import (
	"time"

	"github.com/sirupsen/logrus"
)

// PixelFunc maps one pixel to its replacement. It must not depend on any
// other pixel of the image being transformed.
type PixelFunc func(p Pixel, row, col int) Pixel

// Iterate applies fn to every pixel in row-major order and stores the
// clamped results. In InPlace mode the receiver is rewritten and returned;
// in Copy mode a new image is returned and the receiver is untouched.
func (img *Image) Iterate(space string, fn PixelFunc, mode Mode) (*Image, error) {
	if err := img.requireColorSpace("iterate", space); err != nil {
		return nil, err
	}
	start := time.Now()

	src := img.pixels
	dst := img.target(mode)
	for row := 0; row < img.height; row++ {
		for col := 0; col < img.width; col++ {
			i := (row*img.width + col) * 4
			dst.put(i, fn(src.at(i), row, col))
		}
	}

	img.logger.WithFields(logrus.Fields{
		"op":       "iterate",
		"mode":     mode.String(),
		"width":    img.width,
		"height":   img.height,
		"duration": time.Since(start),
	}).Debug("Raster pass complete")

	return img.result(mode, dst), nil
}
