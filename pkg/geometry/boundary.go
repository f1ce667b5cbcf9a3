package geometry

// Segment is an axis-aligned line segment described as a pair of coordinate
// ranges: XRange holds the x coordinates of both endpoints, YRange the y
// coordinates. A vertical segment has XRange[0] == XRange[1]; a horizontal
// one has YRange[0] == YRange[1]. This matches the shape plotting libraries
// expect for line overlays.
type Segment struct {
	XRange [2]int `json:"x_range"`
	YRange [2]int `json:"y_range"`
}

// BoundaryPolygon outlines a rectangular region with exactly four segments,
// ordered left, top, right, bottom.
type BoundaryPolygon [4]Segment

// BoundaryOf builds the boundary polygon for a rectangle with the given
// origin and extent, in the coordinate space of the source image.
func BoundaryOf(origin PointInt, height, width int) BoundaryPolygon {
	x, y := origin.X, origin.Y
	return BoundaryPolygon{
		{XRange: [2]int{x, x}, YRange: [2]int{y, y + height}},                  // left
		{XRange: [2]int{x, x + width}, YRange: [2]int{y, y}},                   // top
		{XRange: [2]int{x + width, x + width}, YRange: [2]int{y, y + height}},  // right
		{XRange: [2]int{x, x + width}, YRange: [2]int{y + height, y + height}}, // bottom
	}
}

// Rect recovers the rectangle the polygon outlines.
func (b BoundaryPolygon) Rect() RectInt {
	left, top := b[0], b[1]
	return RectInt{
		X:      left.XRange[0],
		Y:      top.YRange[0],
		Width:  top.XRange[1] - top.XRange[0],
		Height: left.YRange[1] - left.YRange[0],
	}
}
