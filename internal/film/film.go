// Package film holds the in-memory representation of a scanned
// pressure-sensitive film and the conversions that produce it.
//
// A film image is stored as three normalized float64 channel planes in
// [0,1] (8-bit samples scaled by 255), row-major. The planes are treated
// as immutable once built; every downstream computation reads, none write.
package film

import (
	"fmt"
	"image"
)

// Image is a normalized 3-channel raster of the scanned film.
type Image struct {
	Width  int
	Height int
	R      []float64 // row-major, len Width*Height
	G      []float64
	B      []float64
}

// New allocates a zeroed image of the given dimensions.
func New(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}
	n := width * height
	return &Image{
		Width:  width,
		Height: height,
		R:      make([]float64, n),
		G:      make([]float64, n),
		B:      make([]float64, n),
	}, nil
}

// FromImage converts a decoded Go image into normalized channel planes.
func FromImage(src image.Image) (*Image, error) {
	bounds := src.Bounds()
	img, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			// RGBA returns 16-bit samples; keep the high byte to match
			// the 8-bit source scale before normalizing.
			img.R[i] = float64(r>>8) / 255.0
			img.G[i] = float64(g>>8) / 255.0
			img.B[i] = float64(b>>8) / 255.0
			i++
		}
	}
	return img, nil
}

// At returns the normalized (r, g, b) triple at pixel (x, y).
func (img *Image) At(x, y int) (r, g, b float64) {
	i := y*img.Width + x
	return img.R[i], img.G[i], img.B[i]
}

// Bounds returns the image extent as width and height.
func (img *Image) Bounds() (width, height int) {
	return img.Width, img.Height
}

// ToImage renders the planes back into an 8-bit RGBA image for display.
func (img *Image) ToImage() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		rowOffset := y * out.Stride
		for x := 0; x < img.Width; x++ {
			i := y*img.Width + x
			pixOffset := rowOffset + x*4
			out.Pix[pixOffset+0] = clamp8(img.R[i])
			out.Pix[pixOffset+1] = clamp8(img.G[i])
			out.Pix[pixOffset+2] = clamp8(img.B[i])
			out.Pix[pixOffset+3] = 255
		}
	}
	return out
}

func clamp8(v float64) uint8 {
	s := v * 255.0
	if s <= 0 {
		return 0
	}
	if s >= 255 {
		return 255
	}
	return uint8(s + 0.5)
}
