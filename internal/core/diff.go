// Pairwise absolute difference between two images
package core

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Diff returns |a-b| per color channel with opaque alpha. The result
// covers the larger extent of the two; pixels missing from either side
// count as transparent black.
func Diff(a, b *Image) (*Image, error) {
	if err := a.requireColorSpace("diff", ColorSpaceRGB); err != nil {
		return nil, err
	}
	if err := b.requireColorSpace("diff", ColorSpaceRGB); err != nil {
		return nil, err
	}
	start := time.Now()

	width, height := max(a.width, b.width), max(a.height, b.height)
	dst, err := NewPixelBuffer(width, height)
	if err != nil {
		return nil, err
	}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			pa, pb := a.pixelOrZero(row, col), b.pixelOrZero(row, col)
			dst.put((row*width+col)*4, Pixel{
				absDiff(pa[R], pb[R]),
				absDiff(pa[G], pb[G]),
				absDiff(pa[B], pb[B]),
				255,
			})
		}
	}

	a.logger.WithFields(logrus.Fields{
		"op":       "diff",
		"width":    width,
		"height":   height,
		"duration": time.Since(start),
	}).Debug("Raster pass complete")

	return a.derive(dst), nil
}

func (img *Image) pixelOrZero(row, col int) Pixel {
	if row >= img.height || col >= img.width {
		return Pixel{}
	}
	return img.pixels.at((row*img.width + col) * 4)
}

func absDiff(x, y float64) float64 {
	if x > y {
		return x - y
	}
	return y - x
}
