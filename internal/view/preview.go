// Side-by-side preview window for original and processed images
package view

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"yaipt/internal/core"
)

// maxPreviewSize bounds the longest side of a displayed image
const maxPreviewSize = 1024

// Preview shows a before/after pair in a window of the given app. The app
// handle is owned by the caller.
type Preview struct {
	app    fyne.App
	logger logrus.FieldLogger
}

func NewPreview(app fyne.App, logger logrus.FieldLogger) *Preview {
	return &Preview{
		app:    app,
		logger: logger,
	}
}

// Content builds the split view for original and processed.
func (p *Preview) Content(original, processed core.RawImage) fyne.CanvasObject {
	originalView := widget.NewCard("Original", sizeLabel(original), newImage(original))
	processedView := widget.NewCard("Processed", sizeLabel(processed), newImage(processed))

	split := container.NewHSplit(originalView, processedView)
	split.SetOffset(0.5)
	return split
}

// Show opens the preview window and blocks until the app quits.
func (p *Preview) Show(title string, original, processed core.RawImage) {
	window := p.app.NewWindow(title)
	window.SetContent(p.Content(original, processed))
	window.Resize(fyne.NewSize(1600, 900))
	window.CenterOnScreen()

	p.logger.WithFields(logrus.Fields{
		"title":            title,
		"original_width":   original.Width,
		"original_height":  original.Height,
		"processed_width":  processed.Width,
		"processed_height": processed.Height,
	}).Info("Showing preview")

	window.ShowAndRun()
}

func newImage(raw core.RawImage) *canvas.Image {
	img := canvas.NewImageFromImage(Thumbnail(raw, maxPreviewSize))
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScalePixels
	img.SetMinSize(fyne.NewSize(200, 150))
	return img
}

func sizeLabel(raw core.RawImage) string {
	return fmt.Sprintf("%d × %d", raw.Width, raw.Height)
}
