// Package region extracts rectangular sub-regions (the bite areas) from a
// scanned film image.
package region

import (
	"fmt"

	"bite-tracer/internal/film"
	"bite-tracer/pkg/geometry"
)

// BoundsError reports a crop request that does not fit inside the source
// image. Crops are never silently clipped: a clipped region would carry a
// wrong pixel count into the physical-area conversion downstream.
type BoundsError struct {
	Origin        geometry.PointInt
	Height, Width int
	ImageWidth    int
	ImageHeight   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("region %dx%d at (%d,%d) exceeds image bounds %dx%d",
		e.Width, e.Height, e.Origin.X, e.Origin.Y, e.ImageWidth, e.ImageHeight)
}

// Crop copies the requested rectangle out of the source image and returns
// it together with its boundary polygon in source-image coordinates.
// Origin and extent must be non-negative and origin+extent must lie within
// the image; anything else fails with *BoundsError.
func Crop(img *film.Image, origin geometry.PointInt, height, width int) (*film.Image, geometry.BoundaryPolygon, error) {
	if origin.X < 0 || origin.Y < 0 || height <= 0 || width <= 0 ||
		origin.X+width > img.Width || origin.Y+height > img.Height {
		return nil, geometry.BoundaryPolygon{}, &BoundsError{
			Origin:      origin,
			Height:      height,
			Width:       width,
			ImageWidth:  img.Width,
			ImageHeight: img.Height,
		}
	}

	sub, err := film.New(width, height)
	if err != nil {
		return nil, geometry.BoundaryPolygon{}, err
	}
	for y := 0; y < height; y++ {
		srcRow := (origin.Y + y) * img.Width
		dstRow := y * width
		copy(sub.R[dstRow:dstRow+width], img.R[srcRow+origin.X:srcRow+origin.X+width])
		copy(sub.G[dstRow:dstRow+width], img.G[srcRow+origin.X:srcRow+origin.X+width])
		copy(sub.B[dstRow:dstRow+width], img.B[srcRow+origin.X:srcRow+origin.X+width])
	}

	return sub, geometry.BoundaryOf(origin, height, width), nil
}
