// Blur transforms built on Filter
package core

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

const defaultBlurSize = 3

// BlurMode selects the smoothing strategy used by Blur.
type BlurMode interface {
	filterOptions(logger logrus.FieldLogger) (FilterOptions, error)
}

// AverageBlur convolves with a box kernel.
type AverageBlur struct {
	Size int
}

// MedianBlur takes the per-channel median of each neighborhood.
type MedianBlur struct {
	Size int
}

// GaussianBlur convolves with a sampled Gaussian kernel. A zero Sigma
// falls back to 1.
type GaussianBlur struct {
	Size  int
	Sigma float64
}

func blurSize(size int) (int, error) {
	if size == 0 {
		return defaultBlurSize, nil
	}
	if size < 0 || size%2 == 0 {
		return 0, fmt.Errorf("blur size %d must be odd and positive: %w", size, ErrInvalidArgument)
	}
	return size, nil
}

func (b AverageBlur) filterOptions(logrus.FieldLogger) (FilterOptions, error) {
	size, err := blurSize(b.Size)
	if err != nil {
		return FilterOptions{}, err
	}
	return FilterOptions{Kernel: BoxKernel(size)}, nil
}

func (b MedianBlur) filterOptions(logrus.FieldLogger) (FilterOptions, error) {
	size, err := blurSize(b.Size)
	if err != nil {
		return FilterOptions{}, err
	}
	return FilterOptions{Aggregate: MedianAggregate, Rows: size, Cols: size}, nil
}

func (b GaussianBlur) filterOptions(logger logrus.FieldLogger) (FilterOptions, error) {
	size, err := blurSize(b.Size)
	if err != nil {
		return FilterOptions{}, err
	}
	return FilterOptions{Kernel: GaussianKernel(size, b.Sigma, logger)}, nil
}

// Blur smooths the image with the selected strategy. Out-of-bounds
// neighbors repeat the center pixel. A nil bm means AverageBlur.
func (img *Image) Blur(bm BlurMode, mode Mode) (*Image, error) {
	if bm == nil {
		bm = AverageBlur{}
	}
	opts, err := bm.filterOptions(img.logger)
	if err != nil {
		return nil, err
	}
	opts.Mode = mode
	return img.Filter(ColorSpaceRGB, opts)
}
