// Convolution kernels and their generators
package core

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Kernel is a rectangular weight matrix with odd dimensions.
type Kernel [][]float64

// Size returns the row and column count. A ragged kernel is reported as
// InvalidArgument.
func (k Kernel) Size() (rows, cols int, err error) {
	rows = len(k)
	if rows == 0 {
		return 0, 0, fmt.Errorf("empty kernel: %w", ErrInvalidArgument)
	}
	cols = len(k[0])
	for i, r := range k {
		if len(r) != cols {
			return 0, 0, fmt.Errorf("kernel row %d has %d weights, want %d: %w", i, len(r), cols, ErrInvalidArgument)
		}
	}
	return rows, cols, nil
}

// Sum adds up every weight.
func (k Kernel) Sum() float64 {
	var s float64
	for _, r := range k {
		for _, w := range r {
			s += w
		}
	}
	return s
}

// BoxKernel returns a size×size matrix of ones.
func BoxKernel(size int) Kernel {
	k := make(Kernel, size)
	for i := range k {
		k[i] = make([]float64, size)
		for j := range k[i] {
			k[i][j] = 1
		}
	}
	return k
}

// GaussianKernel samples the 2D Gaussian with the given sigma on a
// size×size grid centred on size/2. Weights are not normalized; the
// convolution divides by the kernel sum. A zero sigma falls back to 1 and
// is reported on logger, which may be nil.
func GaussianKernel(size int, sigma float64, logger logrus.FieldLogger) Kernel {
	if sigma == 0 {
		if logger != nil {
			logger.WithField("size", size).Warn("Gaussian sigma is 0, using 1")
		}
		sigma = 1
	}

	offset := size / 2
	twoSigmaSq := 2 * sigma * sigma
	norm := 1 / (math.Pi * twoSigmaSq)

	k := make(Kernel, size)
	for i := range k {
		k[i] = make([]float64, size)
		y := float64(i - offset)
		for j := range k[i] {
			x := float64(j - offset)
			k[i][j] = norm * math.Exp(-(x*x+y*y)/twoSigmaSq)
		}
	}
	return k
}
