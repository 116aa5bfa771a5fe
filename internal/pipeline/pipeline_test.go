package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"yaipt/internal/core"
)

const yamlRecipe = `
name: tone
steps:
  - algorithm: grayscale
    parameters:
      mode: custom
      weights: [0, 1, 0]
  - algorithm: blur
    parameters:
      mode: median
      kernel_size: 3
  - algorithm: invert
    disabled: true
  - algorithm: brightness
    parameters:
      brightness: -10
`

const tomlRecipe = `
name = "tone"

[[steps]]
algorithm = "grayscale"
[steps.parameters]
mode = "custom"
weights = [0, 1, 0]

[[steps]]
algorithm = "blur"
[steps.parameters]
mode = "median"
kernel_size = 3

[[steps]]
algorithm = "invert"
disabled = true

[[steps]]
algorithm = "brightness"
[steps.parameters]
brightness = -10
`

func testImage(t *testing.T, logger logrus.FieldLogger) *core.Image {
	t.Helper()
	pix := make([]byte, 0, 3*3*4)
	for i := 0; i < 9; i++ {
		pix = append(pix, 200, 100, 50, 255)
	}
	img, err := core.NewImage(core.RawImage{Width: 3, Height: 3, Pix: pix}, core.WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestParseRecipeFormats(t *testing.T) {
	fromYAML, err := ParseRecipe([]byte(yamlRecipe), FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	fromTOML, err := ParseRecipe([]byte(tomlRecipe), FormatTOML)
	if err != nil {
		t.Fatal(err)
	}

	var algs []string
	for _, s := range fromYAML.Steps {
		algs = append(algs, s.Algorithm)
	}
	if diff := cmp.Diff([]string{"grayscale", "blur", "invert", "brightness"}, algs); diff != "" {
		t.Errorf("yaml steps (-want +got):\n%s", diff)
	}
	if len(fromTOML.Steps) != 4 || !fromTOML.Steps[2].Disabled {
		t.Errorf("toml steps = %+v", fromTOML.Steps)
	}

	logger, _ := logtest.NewNullLogger()
	var outputs [][]byte
	for _, r := range []*Recipe{fromYAML, fromTOML} {
		p, err := FromRecipe(r, logger)
		if err != nil {
			t.Fatal(err)
		}
		out, results, err := p.Run(testImage(t, logger))
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != 3 {
			t.Errorf("ran %d steps, want 3", len(results))
		}
		outputs = append(outputs, out.Export().Pix)
	}
	if !bytes.Equal(outputs[0], outputs[1]) {
		t.Error("yaml and toml recipes produced different images")
	}
	// green channel 100, minus 10
	if diff := cmp.Diff([]byte{90, 90, 90, 255}, outputs[0][:4]); diff != "" {
		t.Errorf("first pixel (-want +got):\n%s", diff)
	}
}

func TestParseRecipeRejectsUnknownKeys(t *testing.T) {
	if _, err := ParseRecipe([]byte("steps:\n  - algo: invert\n"), FormatYAML); err == nil {
		t.Error("yaml recipe with unknown key accepted")
	}
	if _, err := ParseRecipe([]byte("[[steps]]\nalgo = \"invert\"\n"), FormatTOML); err == nil {
		t.Error("toml recipe with unknown key accepted")
	}
}

func TestLoadRecipe(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "recipe.yml")
	if err := os.WriteFile(path, []byte(yamlRecipe), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := LoadRecipe(path)
	if err != nil {
		t.Fatal(err)
	}
	if r.Name != "tone" {
		t.Errorf("name = %q", r.Name)
	}

	if _, err := LoadRecipe(filepath.Join(dir, "recipe.json")); err == nil {
		t.Error("json recipe accepted")
	}
}

func TestFromRecipeValidates(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	tests := []Recipe{
		{Name: "unknown", Steps: []Step{{Algorithm: "posterize"}}},
		{Name: "bad", Steps: []Step{{Algorithm: "blur", Parameters: map[string]interface{}{"kernel_size": 2}}}},
	}
	for _, r := range tests {
		if _, err := FromRecipe(&r, logger); err == nil || !strings.Contains(err.Error(), r.Name) {
			t.Errorf("recipe %q error = %v", r.Name, err)
		}
	}
}

func TestRunLeavesInputUntouched(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	p := NewPipeline(logger)
	if err := p.AddStep(Step{Algorithm: "invert"}); err != nil {
		t.Fatal(err)
	}
	if err := p.AddStep(Step{Algorithm: "sepia", Disabled: true}); err != nil {
		t.Fatal(err)
	}

	img := testImage(t, logger)
	before := img.Export().Pix
	out, results, err := p.Run(img)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, img.Export().Pix) {
		t.Error("pipeline mutated its input")
	}
	if diff := cmp.Diff([]byte{55, 155, 205, 255}, out.Export().Pix[:4]); diff != "" {
		t.Errorf("first pixel (-want +got):\n%s", diff)
	}
	if len(results) != 1 || results[0].Metrics["mae"] == 0 {
		t.Errorf("results = %+v", results)
	}
	if hook.LastEntry() == nil || hook.LastEntry().Message != "PIPELINE: Processing completed" {
		t.Errorf("last log entry = %v", hook.LastEntry())
	}
}

func TestRunWithoutStepsCopies(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	img := testImage(t, logger)
	out, results, err := NewPipeline(logger).Run(img)
	if err != nil {
		t.Fatal(err)
	}
	if out == img || len(results) != 0 {
		t.Error("empty pipeline should return a copy and no results")
	}
}
