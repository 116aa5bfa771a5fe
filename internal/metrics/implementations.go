// Concrete implementations of quality metrics
package metrics

import (
	"fmt"
	"math"

	"yaipt/internal/core"
)

func sameSize(original, processed *core.Image) error {
	if original == nil || processed == nil {
		return fmt.Errorf("nil image")
	}
	if original.Width() != processed.Width() || original.Height() != processed.Height() {
		return fmt.Errorf("image dimensions mismatch: %dx%d vs %dx%d",
			original.Width(), original.Height(), processed.Width(), processed.Height())
	}
	if original.Width() == 0 || original.Height() == 0 {
		return fmt.Errorf("empty images")
	}
	return nil
}

// meanSquaredError averages the squared R, G and B differences.
func meanSquaredError(original, processed *core.Image) float64 {
	a, b := original.Export().Pix, processed.Export().Pix

	sumSquaredDiff := 0.0
	for i := 0; i < len(a); i += 4 {
		for c := 0; c < 3; c++ {
			diff := float64(a[i+c]) - float64(b[i+c])
			sumSquaredDiff += diff * diff
		}
	}
	return sumSquaredDiff / float64(len(a)/4*3)
}

// MSE implements Mean Squared Error metric
type MSE struct{}

// NewMSE creates a new MSE metric
func NewMSE() *MSE {
	return &MSE{}
}

func (m *MSE) Calculate(original, processed *core.Image) (float64, error) {
	if err := sameSize(original, processed); err != nil {
		return 0, err
	}
	return meanSquaredError(original, processed), nil
}

func (m *MSE) GetName() string {
	return "MSE"
}

func (m *MSE) GetDescription() string {
	return "Mean Squared Error over the color channels"
}

func (m *MSE) GetRange() (float64, float64) {
	return 0, 65025 // 255^2
}

func (m *MSE) IsHigherBetter() bool {
	return false
}

// PSNR implements Peak Signal-to-Noise Ratio metric
type PSNR struct{}

// NewPSNR creates a new PSNR metric
func NewPSNR() *PSNR {
	return &PSNR{}
}

func (p *PSNR) Calculate(original, processed *core.Image) (float64, error) {
	if err := sameSize(original, processed); err != nil {
		return 0, err
	}

	mse := meanSquaredError(original, processed)
	if mse == 0 {
		return math.Inf(1), nil // Perfect match
	}

	maxVal := 255.0
	return 20 * math.Log10(maxVal/math.Sqrt(mse)), nil
}

func (p *PSNR) GetName() string {
	return "PSNR"
}

func (p *PSNR) GetDescription() string {
	return "Peak Signal-to-Noise Ratio - measures image quality"
}

func (p *PSNR) GetRange() (float64, float64) {
	return 0, 100 // Practical range, can go higher
}

func (p *PSNR) IsHigherBetter() bool {
	return true
}

// MAE implements Mean Absolute Error on top of the diff operator, so
// images of different sizes are compared over their combined extent.
type MAE struct{}

// NewMAE creates a new MAE metric
func NewMAE() *MAE {
	return &MAE{}
}

func (m *MAE) Calculate(original, processed *core.Image) (float64, error) {
	d, err := core.Diff(original, processed)
	if err != nil {
		return 0, err
	}
	pix := d.Export().Pix
	if len(pix) == 0 {
		return 0, fmt.Errorf("empty images")
	}

	sum := 0.0
	for i := 0; i < len(pix); i += 4 {
		sum += float64(pix[i]) + float64(pix[i+1]) + float64(pix[i+2])
	}
	return sum / float64(len(pix)/4*3), nil
}

func (m *MAE) GetName() string {
	return "MAE"
}

func (m *MAE) GetDescription() string {
	return "Mean absolute per-channel difference"
}

func (m *MAE) GetRange() (float64, float64) {
	return 0, 255
}

func (m *MAE) IsHigherBetter() bool {
	return false
}

// ChangedRatio reports the fraction of pixels whose color differs
type ChangedRatio struct{}

// NewChangedRatio creates a new changed-pixel ratio metric
func NewChangedRatio() *ChangedRatio {
	return &ChangedRatio{}
}

func (c *ChangedRatio) Calculate(original, processed *core.Image) (float64, error) {
	d, err := core.Diff(original, processed)
	if err != nil {
		return 0, err
	}
	pix := d.Export().Pix
	if len(pix) == 0 {
		return 0, fmt.Errorf("empty images")
	}

	changed := 0
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != 0 || pix[i+1] != 0 || pix[i+2] != 0 {
			changed++
		}
	}
	return float64(changed) / float64(len(pix)/4), nil
}

func (c *ChangedRatio) GetName() string {
	return "Changed Pixels"
}

func (c *ChangedRatio) GetDescription() string {
	return "Fraction of pixels whose color differs"
}

func (c *ChangedRatio) GetRange() (float64, float64) {
	return 0, 1
}

func (c *ChangedRatio) IsHigherBetter() bool {
	return false
}
