package io

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"yaipt/internal/core"
)

func TestIsSupportedImageFormat(t *testing.T) {
	tests := map[string]bool{
		"photo.JPG":         true,
		"scan.tiff":         true,
		"dir/image.png":     true,
		"archive.tar.gz":    false,
		"noext":             false,
		"dir.png/noext":     false,
		`C:\images\pic.bmp`: true,
	}
	for path, want := range tests {
		if got := IsSupportedImageFormat(path); got != want {
			t.Errorf("IsSupportedImageFormat(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	il := NewImageLoader(logger)

	raw := core.RawImage{Width: 2, Height: 2, Pix: []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 128, 10, 20, 30, 0,
	}}
	path := filepath.Join(t.TempDir(), "out.png")
	if err := il.Save(raw, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := il.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(raw, got); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	il := NewImageLoader(logger)

	if _, err := il.Load("image.gif"); err == nil {
		t.Error("gif accepted")
	}
	if _, err := il.Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("missing file loaded")
	}
	if err := il.Save(core.RawImage{}, filepath.Join(t.TempDir(), "empty.png")); err == nil {
		t.Error("empty image saved")
	}
}
