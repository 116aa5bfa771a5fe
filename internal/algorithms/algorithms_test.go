package algorithms

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"yaipt/internal/core"
)

func testImage(t *testing.T) *core.Image {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	pix := make([]byte, 0, 4*4*4)
	for i := 0; i < 16; i++ {
		pix = append(pix, byte(i*15), byte(255-i*10), byte(i*3), 255)
	}
	img, err := core.NewImage(core.RawImage{Width: 4, Height: 4, Pix: pix}, core.WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestEveryAlgorithmAppliesDefaults(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			algorithm, ok := Get(name)
			if !ok {
				t.Fatalf("Get(%q) failed", name)
			}
			params := algorithm.GetDefaultParams()
			if err := ValidateParameters(name, params); err != nil {
				t.Fatalf("default params invalid: %v", err)
			}

			img := testImage(t)
			before := img.Export().Pix
			out, err := Apply(name, img, params)
			if err != nil {
				t.Fatal(err)
			}
			if out == img {
				t.Error("algorithm returned its input")
			}
			if out.Width() != 4 || out.Height() != 4 {
				t.Errorf("output size %dx%d", out.Width(), out.Height())
			}
			if !bytes.Equal(before, img.Export().Pix) {
				t.Error("algorithm mutated its input")
			}
		})
	}
}

func TestCategoriesAreRegistered(t *testing.T) {
	var listed []string
	for _, names := range GetAlgorithmsByCategory() {
		for _, name := range names {
			if !IsValidAlgorithm(name) {
				t.Errorf("category lists unregistered algorithm %q", name)
			}
			listed = append(listed, name)
		}
	}
	if len(listed) != len(Names()) {
		t.Errorf("categories list %d algorithms, registry has %d", len(listed), len(Names()))
	}
}

func TestUnknownAlgorithm(t *testing.T) {
	if _, err := Apply("posterize", testImage(t), nil); err == nil {
		t.Error("expected an error for an unknown algorithm")
	}
	if err := ValidateParameters("posterize", nil); err == nil {
		t.Error("expected a validation error for an unknown algorithm")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]interface{}
	}{
		{"grayscale", map[string]interface{}{"mode": "sepia"}},
		{"grayscale", map[string]interface{}{"mode": "custom"}},
		{"grayscale", map[string]interface{}{"mode": "custom", "weights": []interface{}{1, 0}}},
		{"brightness", map[string]interface{}{"brightness": 300}},
		{"brightness", map[string]interface{}{"brightness": "bright"}},
		{"contrast", map[string]interface{}{"contrast": -1}},
		{"contrast", map[string]interface{}{"mode": "non_linear", "contrast": 400}},
		{"blur", map[string]interface{}{"kernel_size": 4}},
		{"blur", map[string]interface{}{"kernel_size": 3.5}},
		{"blur", map[string]interface{}{"mode": "bilateral"}},
		{"blur", map[string]interface{}{"mode": "gaussian", "sigma": -1}},
		{"convolve", map[string]interface{}{"kernel": []interface{}{[]interface{}{1, 1}, []interface{}{1, 1}}}},
		{"convolve", map[string]interface{}{"kernel": []interface{}{[]interface{}{1, 1, 1}, []interface{}{1}}}},
		{"convolve", map[string]interface{}{"fill": []interface{}{0, 0, 0}}},
	}
	for _, tc := range tests {
		if err := ValidateParameters(tc.name, tc.params); !errors.Is(err, core.ErrInvalidArgument) {
			t.Errorf("%s %v: error = %v, want ErrInvalidArgument", tc.name, tc.params, err)
		}
	}
}

func TestGrayscaleCustomFromRecipeValues(t *testing.T) {
	params := map[string]interface{}{
		"mode":    "CUSTOM",
		"weights": []interface{}{0, int64(1), 0.0},
	}
	out, err := Apply("grayscale", testImage(t), params)
	if err != nil {
		t.Fatal(err)
	}
	p, _ := out.Pixels().Get(0, 0)
	if diff := cmp.Diff(core.Pixel{255, 255, 255, 255}, p); diff != "" {
		t.Errorf("pixel (-want +got):\n%s", diff)
	}
}

func TestConvolveIdentityKernel(t *testing.T) {
	params := map[string]interface{}{
		"kernel": []interface{}{
			[]interface{}{0, 0, 0},
			[]interface{}{0, 1, 0},
			[]interface{}{0, 0, 0},
		},
		"fill": []interface{}{0, 0, 0, 0},
	}
	img := testImage(t)
	out, err := Apply("convolve", img, params)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(img.Export().Pix, out.Export().Pix) {
		t.Error("identity kernel changed the image")
	}
}

func TestNonLinearContrastBinarizes(t *testing.T) {
	params := map[string]interface{}{"mode": "non_linear", "contrast": 255}
	out, err := Apply("contrast", testImage(t), params)
	if err != nil {
		t.Fatal(err)
	}
	for _, b := range out.Export().Pix {
		if b != 0 && b != 255 {
			t.Fatalf("non-binary channel value %d", b)
		}
	}
}
