// Neighborhood extraction and convolution pipeline
package core

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Neighborhood holds the rows×cols pixels around a center pixel.
type Neighborhood [][]Pixel

// Center returns the pixel the neighborhood was built around.
func (n Neighborhood) Center() Pixel {
	return n[len(n)/2][len(n[0])/2]
}

// Aggregator reduces a neighborhood to one output pixel. k is the kernel
// passed to Filter and may be nil. n is reused for the next pixel, so an
// aggregator must not keep it.
type Aggregator func(n Neighborhood, k Kernel) Pixel

// FilterOptions configures a Filter pass. At least one of Kernel and
// Aggregate must be set; a Kernel alone is aggregated with WeightedSum.
// Rows and Cols size the neighborhood when no Kernel is given and default
// to 3. Fill replaces out-of-bounds neighbors; when nil the center pixel
// is repeated instead.
type FilterOptions struct {
	Kernel    Kernel
	Aggregate Aggregator
	Rows      int
	Cols      int
	Fill      *Pixel
	Mode      Mode
}

// Filter builds a neighborhood for every pixel and stores the clamped
// aggregate. Neighbors are always read from the image as it was before
// the pass, so InPlace and Copy produce identical pixels.
func (img *Image) Filter(space string, opts FilterOptions) (*Image, error) {
	if err := img.requireColorSpace("filter", space); err != nil {
		return nil, err
	}

	aggregate := opts.Aggregate
	if aggregate == nil {
		if opts.Kernel == nil {
			return nil, fmt.Errorf("filter needs a kernel or an aggregator: %w", ErrInvalidArgument)
		}
		aggregate = WeightedSum
	}

	rows, cols := opts.Rows, opts.Cols
	if opts.Kernel != nil {
		var err error
		if rows, cols, err = opts.Kernel.Size(); err != nil {
			return nil, err
		}
	}
	if rows == 0 {
		rows = 3
	}
	if cols == 0 {
		cols = 3
	}
	if rows < 0 || cols < 0 || rows%2 == 0 || cols%2 == 0 {
		return nil, fmt.Errorf("neighborhood %dx%d must have odd positive dimensions: %w", rows, cols, ErrInvalidArgument)
	}

	start := time.Now()
	src := img.pixels
	if opts.Mode == InPlace {
		src = img.pixels.Clone()
	}
	dst := img.target(opts.Mode)

	n := make(Neighborhood, rows)
	for i := range n {
		n[i] = make([]Pixel, cols)
	}
	offRow, offCol := rows/2, cols/2

	for row := 0; row < img.height; row++ {
		for col := 0; col < img.width; col++ {
			center := src.at((row*img.width + col) * 4)
			fill := center
			if opts.Fill != nil {
				fill = *opts.Fill
				fill[A] = center[A]
			}

			for i := 0; i < rows; i++ {
				r := row + i - offRow
				for j := 0; j < cols; j++ {
					c := col + j - offCol
					if r < 0 || r >= img.height || c < 0 || c >= img.width {
						n[i][j] = fill
						continue
					}
					n[i][j] = src.at((r*img.width + c) * 4)
				}
			}

			dst.put((row*img.width+col)*4, aggregate(n, opts.Kernel))
		}
	}

	img.logger.WithFields(logrus.Fields{
		"op":       "filter",
		"mode":     opts.Mode.String(),
		"window":   fmt.Sprintf("%dx%d", rows, cols),
		"width":    img.width,
		"height":   img.height,
		"duration": time.Since(start),
	}).Debug("Raster pass complete")

	return img.result(opts.Mode, dst), nil
}
