package analysis

import (
	"errors"
	"math"
	"testing"
)

func TestAreaMM2OneSquareInch(t *testing.T) {
	// 800x800 pixels at 800 dpi is one square inch: 25.4mm x 25.4mm.
	got := AreaMM2(800*800, 1.0)
	if math.Abs(got-25.4*25.4) > 1e-9 {
		t.Errorf("AreaMM2(800*800, 1) = %g, want %g", got, 25.4*25.4)
	}
}

func TestAreaMM2CorrectionFactor(t *testing.T) {
	base := AreaMM2(1000, 1.0)
	corrected := AreaMM2(1000, 1.0021)
	if math.Abs(corrected-base/1.0021) > 1e-12 {
		t.Errorf("AreaMM2 with correction = %g, want %g", corrected, base/1.0021)
	}
}

func TestPressure(t *testing.T) {
	p, err := Pressure(50, 2)
	if err != nil {
		t.Fatalf("Pressure: %v", err)
	}
	if p != 25 {
		t.Errorf("Pressure(50, 2) = %g, want 25", p)
	}
}

func TestPressureZeroArea(t *testing.T) {
	if _, err := Pressure(50, 0); !errors.Is(err, ErrZeroArea) {
		t.Errorf("Pressure(50, 0) = %v, want ErrZeroArea", err)
	}
}
