package film

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"gocv.io/x/gocv"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Decode reads any registered raster format (PNG, JPEG, TIFF, BMP) and
// converts it to normalized channel planes.
func Decode(r io.Reader) (*Image, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	img, err := FromImage(src)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s image: %w", format, err)
	}
	return img, nil
}

// ReadFile loads a scan from disk through OpenCV, which accepts every
// format the scanner software is likely to emit.
func ReadFile(path string) (*Image, error) {
	mat := gocv.IMRead(path, gocv.IMReadColor)
	if mat.Empty() {
		return nil, fmt.Errorf("failed to read image %s", path)
	}
	defer mat.Close()
	return fromMat(mat)
}

// fromMat converts an 8-bit BGR Mat into normalized channel planes.
func fromMat(mat gocv.Mat) (*Image, error) {
	img, err := New(mat.Cols(), mat.Rows())
	if err != nil {
		return nil, err
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			i := y*img.Width + x
			// OpenCV stores channels as BGR
			img.B[i] = float64(mat.GetUCharAt(y, x*3+0)) / 255.0
			img.G[i] = float64(mat.GetUCharAt(y, x*3+1)) / 255.0
			img.R[i] = float64(mat.GetUCharAt(y, x*3+2)) / 255.0
		}
	}
	return img, nil
}
