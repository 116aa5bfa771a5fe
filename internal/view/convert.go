// Conversions from raw buffers to Go images for display
package view

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"yaipt/internal/core"
)

// ToImage wraps a copy of raw as a non-premultiplied RGBA image.
func ToImage(raw core.RawImage) *image.NRGBA {
	pix := make([]byte, len(raw.Pix))
	copy(pix, raw.Pix)
	return &image.NRGBA{
		Pix:    pix,
		Stride: raw.Width * 4,
		Rect:   image.Rect(0, 0, raw.Width, raw.Height),
	}
}

// Thumbnail scales raw down so that neither side exceeds maxSize,
// keeping the aspect ratio. Smaller images are returned unscaled.
func Thumbnail(raw core.RawImage, maxSize int) *image.NRGBA {
	src := ToImage(raw)
	if maxSize <= 0 || (raw.Width <= maxSize && raw.Height <= maxSize) {
		return src
	}

	w, h := raw.Width, raw.Height
	if w >= h {
		h = max(1, h*maxSize/w)
		w = maxSize
	} else {
		w = max(1, w*maxSize/h)
		h = maxSize
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
