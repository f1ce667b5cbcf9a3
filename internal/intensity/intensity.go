// Package intensity converts a film region into a scalar darkness field.
//
// The pressure film develops magenta ink, so darkness is carried almost
// entirely by the green and blue channels; red is ignored by design.
package intensity

import "bite-tracer/internal/film"

// Field is a 2D scalar grid with the spatial shape of its source region.
type Field struct {
	Width  int
	Height int
	Pix    []float64 // row-major, len Width*Height
}

// NewField allocates a zeroed field.
func NewField(width, height int) Field {
	return Field{Width: width, Height: height, Pix: make([]float64, width*height)}
}

// Compute derives the intensity field of a region:
// per pixel, ((1-green) + (1-blue)) / 2.
func Compute(region *film.Image) Field {
	f := NewField(region.Width, region.Height)
	for i := range f.Pix {
		f.Pix[i] = ((1 - region.G[i]) + (1 - region.B[i])) / 2
	}
	return f
}

// At returns the intensity at pixel (x, y).
func (f Field) At(x, y int) float64 {
	return f.Pix[y*f.Width+x]
}

// Len returns the number of cells.
func (f Field) Len() int {
	return len(f.Pix)
}
