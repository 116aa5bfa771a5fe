// Image file loading and saving through OpenCV
package io

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"yaipt/internal/core"
)

// ImageLoader converts image files to and from raw RGBA buffers
type ImageLoader struct {
	logger logrus.FieldLogger
}

func NewImageLoader(logger logrus.FieldLogger) *ImageLoader {
	return &ImageLoader{
		logger: logger,
	}
}

// Load decodes filepath into tightly packed RGBA bytes
func (il *ImageLoader) Load(filepath string) (core.RawImage, error) {
	il.logger.WithField("filepath", filepath).Debug("Loading image")

	if !IsSupportedImageFormat(filepath) {
		return core.RawImage{}, fmt.Errorf("unsupported image format: %s", filepath)
	}

	mat := gocv.IMRead(filepath, gocv.IMReadUnchanged)
	defer mat.Close()
	if mat.Empty() {
		return core.RawImage{}, fmt.Errorf("failed to load image: %s", filepath)
	}

	code, err := toRGBACode(mat.Channels())
	if err != nil {
		return core.RawImage{}, fmt.Errorf("%s: %w", filepath, err)
	}

	rgba := gocv.NewMat()
	defer rgba.Close()
	if err := gocv.CvtColor(mat, &rgba, code); err != nil {
		return core.RawImage{}, fmt.Errorf("convert %s to RGBA: %w", filepath, err)
	}
	if rgba.Type() != gocv.MatTypeCV8UC4 {
		return core.RawImage{}, fmt.Errorf("unsupported pixel depth in %s: %v", filepath, mat.Type())
	}

	raw := core.RawImage{
		Width:  rgba.Cols(),
		Height: rgba.Rows(),
		Pix:    rgba.ToBytes(),
	}

	il.logger.WithFields(logrus.Fields{
		"filepath": filepath,
		"width":    raw.Width,
		"height":   raw.Height,
		"channels": mat.Channels(),
	}).Info("Image loaded successfully")

	return raw, nil
}

// Save encodes raw to filepath; the format follows the extension
func (il *ImageLoader) Save(raw core.RawImage, filepath string) error {
	il.logger.WithField("filepath", filepath).Debug("Saving image")

	if raw.Width == 0 || raw.Height == 0 {
		return fmt.Errorf("cannot save empty image")
	}

	if !IsSupportedImageFormat(filepath) {
		return fmt.Errorf("unsupported image format: %s", filepath)
	}

	rgba, err := gocv.NewMatFromBytes(raw.Height, raw.Width, gocv.MatTypeCV8UC4, raw.Pix)
	if err != nil {
		return fmt.Errorf("wrap pixels: %w", err)
	}
	defer rgba.Close()

	bgra := gocv.NewMat()
	defer bgra.Close()
	if err := gocv.CvtColor(rgba, &bgra, gocv.ColorRGBAToBGRA); err != nil {
		return fmt.Errorf("convert to BGRA: %w", err)
	}

	if !gocv.IMWrite(filepath, bgra) {
		return fmt.Errorf("failed to save image: %s", filepath)
	}

	il.logger.WithFields(logrus.Fields{
		"filepath": filepath,
		"width":    raw.Width,
		"height":   raw.Height,
	}).Info("Image saved successfully")

	return nil
}

func toRGBACode(channels int) (gocv.ColorConversionCode, error) {
	switch channels {
	case 1:
		return gocv.ColorGrayToRGBA, nil
	case 3:
		return gocv.ColorBGRToRGBA, nil
	case 4:
		return gocv.ColorBGRAToRGBA, nil
	}
	return 0, fmt.Errorf("unsupported number of channels: %d", channels)
}

// IsSupportedImageFormat reports whether filepath has a known extension
func IsSupportedImageFormat(filepath string) bool {
	ext := strings.ToLower(getFileExtension(filepath))
	supportedFormats := []string{".jpg", ".jpeg", ".png", ".tiff", ".tif", ".bmp"}

	for _, format := range supportedFormats {
		if ext == format {
			return true
		}
	}

	return false
}

func getFileExtension(filepath string) string {
	for i := len(filepath) - 1; i >= 0; i-- {
		if filepath[i] == '.' {
			return filepath[i:]
		}
		if filepath[i] == '/' || filepath[i] == '\\' {
			break
		}
	}
	return ""
}

func (il *ImageLoader) GetSupportedFormats() []string {
	return []string{"JPEG", "PNG", "TIFF", "BMP"}
}
