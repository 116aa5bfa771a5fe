// Color-space tagged image owning a single pixel buffer
package core

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// ColorSpaceRGB is the tag given to every image built from raw RGBA bytes.
const ColorSpaceRGB = "RGB"

// maxDimension keeps a single raster scan within reasonable memory.
const maxDimension = 16384

// Mode selects whether a transform rewrites the receiver or returns a copy.
type Mode int

const (
	InPlace Mode = iota
	Copy
)

func (m Mode) String() string {
	if m == InPlace {
		return "in_place"
	}
	return "copy"
}

// Image wraps a PixelBuffer with its color-space tag.
type Image struct {
	width      int
	height     int
	colorSpace string
	pixels     *PixelBuffer
	logger     logrus.FieldLogger
}

// Option configures an Image at construction time.
type Option func(*Image)

// WithLogger routes transform diagnostics to logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(img *Image) {
		if logger != nil {
			img.logger = logger
		}
	}
}

// NewImage takes ownership of raw.Pix and tags the image RGB.
func NewImage(raw RawImage, opts ...Option) (*Image, error) {
	if err := validateDimensions(raw.Width, raw.Height); err != nil {
		return nil, err
	}
	pb, err := NewPixelBufferFromRaw(raw.Width, raw.Height, raw.Pix)
	if err != nil {
		return nil, err
	}
	return newImage(pb, opts...), nil
}

// NewBlankImage allocates a transparent black RGB image.
func NewBlankImage(width, height int, opts ...Option) (*Image, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}
	pb, err := NewPixelBuffer(width, height)
	if err != nil {
		return nil, err
	}
	return newImage(pb, opts...), nil
}

func newImage(pb *PixelBuffer, opts ...Option) *Image {
	img := &Image{
		width:      pb.width,
		height:     pb.height,
		colorSpace: ColorSpaceRGB,
		pixels:     pb,
		logger:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(img)
	}
	return img
}

// derive wraps pb in a new Image that inherits the receiver's tag and logger.
func (img *Image) derive(pb *PixelBuffer) *Image {
	return &Image{
		width:      pb.width,
		height:     pb.height,
		colorSpace: img.colorSpace,
		pixels:     pb,
		logger:     img.logger,
	}
}

func validateDimensions(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("invalid image dimensions: %dx%d: %w", width, height, ErrInvalidArgument)
	}
	if width > maxDimension || height > maxDimension {
		return fmt.Errorf("image too large: %dx%d (max: %d): %w", width, height, maxDimension, ErrInvalidArgument)
	}
	return nil
}

func (img *Image) Width() int         { return img.width }
func (img *Image) Height() int        { return img.height }
func (img *Image) ColorSpace() string { return img.colorSpace }

// Pixels exposes the owned buffer for direct pixel access.
func (img *Image) Pixels() *PixelBuffer { return img.pixels }

// Export copies the full image out for a display or encoder.
func (img *Image) Export() RawImage {
	return img.pixels.Export()
}

// ExportRegion copies a sub-rectangle out.
func (img *Image) ExportRegion(r Region) (RawImage, error) {
	return img.pixels.ExportRegion(r)
}

// Clone returns an independent image with the same tag and contents.
func (img *Image) Clone() *Image {
	return img.derive(img.pixels.Clone())
}

func (img *Image) requireColorSpace(op, space string) error {
	if !strings.EqualFold(img.colorSpace, space) {
		return fmt.Errorf("%s needs %s, image is %s: %w", op, space, img.colorSpace, ErrColorSpaceMismatch)
	}
	return nil
}

// target returns the buffer a transform writes to for the given mode.
func (img *Image) target(mode Mode) *PixelBuffer {
	if mode == InPlace {
		return img.pixels
	}
	return &PixelBuffer{
		width:  img.width,
		height: img.height,
		data:   make([]byte, len(img.pixels.data)),
	}
}

// result returns the image a transform hands back for the given mode.
func (img *Image) result(mode Mode, dst *PixelBuffer) *Image {
	if mode == InPlace {
		return img
	}
	return img.derive(dst)
}
