package film

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestFromImageNormalizes(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.RGBA{R: 255, G: 0, B: 51, A: 255})
	src.Set(1, 0, color.RGBA{R: 0, G: 255, B: 255, A: 255})

	img, err := FromImage(src)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if img.Width != 2 || img.Height != 1 {
		t.Fatalf("dimensions = %dx%d, want 2x1", img.Width, img.Height)
	}

	r, g, b := img.At(0, 0)
	if r != 1 || g != 0 || math.Abs(b-51.0/255.0) > 1e-12 {
		t.Errorf("pixel (0,0) = (%g, %g, %g), want (1, 0, %g)", r, g, b, 51.0/255.0)
	}
	r, g, b = img.At(1, 0)
	if r != 0 || g != 1 || b != 1 {
		t.Errorf("pixel (1,0) = (%g, %g, %g), want (0, 1, 1)", r, g, b)
	}
}

func TestFromImageRespectsBoundsOffset(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 6))
	src.Set(5, 5, color.RGBA{G: 255, A: 255})

	img, err := FromImage(src)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if _, g, _ := img.At(0, 0); g != 1 {
		t.Errorf("pixel (0,0) green = %g, want 1", g)
	}
}

func TestNewRejectsBadDimensions(t *testing.T) {
	if _, err := New(0, 10); err == nil {
		t.Error("New(0, 10) succeeded, want error")
	}
	if _, err := New(10, -1); err == nil {
		t.Error("New(10, -1) succeeded, want error")
	}
}

func TestToImageClamps(t *testing.T) {
	img, err := New(1, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	img.R[0] = 1.5
	img.G[0] = -0.2
	img.B[0] = 0.5

	out := img.ToImage()
	r, g, b, a := out.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 || a>>8 != 255 {
		t.Errorf("clamped pixel = (%d, %d, %d), want r=255 g=0", r>>8, g>>8, b>>8)
	}
	if b>>8 != 128 {
		t.Errorf("blue = %d, want 128", b>>8)
	}
}
