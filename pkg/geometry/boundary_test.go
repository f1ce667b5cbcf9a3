package geometry

import "testing"

func TestBoundaryOfSegmentLayout(t *testing.T) {
	b := BoundaryOf(PointInt{X: 10, Y: 20}, 30, 40)

	want := BoundaryPolygon{
		{XRange: [2]int{10, 10}, YRange: [2]int{20, 50}}, // left
		{XRange: [2]int{10, 50}, YRange: [2]int{20, 20}}, // top
		{XRange: [2]int{50, 50}, YRange: [2]int{20, 50}}, // right
		{XRange: [2]int{10, 50}, YRange: [2]int{50, 50}}, // bottom
	}
	if b != want {
		t.Errorf("BoundaryOf = %+v, want %+v", b, want)
	}
}

func TestBoundaryRoundTrip(t *testing.T) {
	tests := []struct {
		name          string
		origin        PointInt
		height, width int
	}{
		{"at origin", PointInt{}, 5, 7},
		{"offset", PointInt{X: 3, Y: 9}, 100, 50},
		{"single pixel", PointInt{X: 1, Y: 1}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rect := BoundaryOf(tt.origin, tt.height, tt.width).Rect()
			if rect.Origin() != tt.origin || rect.Height != tt.height || rect.Width != tt.width {
				t.Errorf("round trip = %+v, want origin %+v height %d width %d",
					rect, tt.origin, tt.height, tt.width)
			}
		})
	}
}
