// Package viewer provides a read-only window showing the analyzed film
// with its region outlines and the report text. It only consumes the
// session's exported views; all values are computed before it opens.
package viewer

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"bite-tracer/internal/analysis"
	"bite-tracer/pkg/geometry"
)

var (
	aoiColor = color.RGBA{G: 170, A: 255}
	aorColor = color.RGBA{A: 255}
)

// Show opens the viewer window and blocks until it is closed.
func Show(session *analysis.Session, reportText string) {
	fyneApp := app.New()
	win := fyneApp.NewWindow("Bite Tracer")

	width, height := session.Image().Bounds()
	filmImage := canvas.NewImageFromImage(session.Image().ToImage())
	filmImage.FillMode = canvas.ImageFillOriginal
	filmImage.Resize(fyne.NewSize(float32(width), float32(height)))

	overlay := container.NewWithoutLayout(filmImage)
	addBoundary(overlay, session.AOIBoundary(), aoiColor)
	if boundary, ok := session.AORBoundary(); ok {
		addBoundary(overlay, boundary, aorColor)
	}
	overlay.Resize(fyne.NewSize(float32(width), float32(height)))

	reportLabel := widget.NewLabel(reportText)
	reportLabel.TextStyle = fyne.TextStyle{Monospace: true}

	split := container.NewHSplit(
		container.NewScroll(overlay),
		container.NewScroll(reportLabel),
	)
	split.SetOffset(0.7)

	win.SetContent(split)
	win.Resize(fyne.NewSize(1200, 800))
	win.ShowAndRun()
}

// addBoundary draws the four boundary segments as lines over the film.
func addBoundary(overlay *fyne.Container, boundary geometry.BoundaryPolygon, strokeColor color.RGBA) {
	for _, seg := range boundary {
		line := canvas.NewLine(strokeColor)
		line.StrokeWidth = 2
		line.Position1 = fyne.NewPos(float32(seg.XRange[0]), float32(seg.YRange[0]))
		line.Position2 = fyne.NewPos(float32(seg.XRange[1]), float32(seg.YRange[1]))
		overlay.Add(line)
	}
}
