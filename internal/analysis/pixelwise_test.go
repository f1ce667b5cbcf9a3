package analysis

import (
	"errors"
	"math"
	"testing"

	"bite-tracer/internal/calibration"
)

var testModel = &calibration.Exponential{A: 2, B: 3, C: 1}

func TestComputeForceMapMasksAndApplies(t *testing.T) {
	f := fieldOf(2, 2, 0.1, 0.3, 0.5, 0.9)

	m := ComputeForceMap(f, 0.3, testModel, 0)
	if !m.IsMissing(0, 0) {
		t.Error("cell below threshold is not missing")
	}
	for _, c := range []struct{ x, y int }{{1, 0}, {0, 1}, {1, 1}} {
		if m.IsMissing(c.x, c.y) {
			t.Fatalf("cell (%d,%d) missing, want value", c.x, c.y)
		}
		want := testModel.Eval(f.At(c.x, c.y))
		if got := m.At(c.x, c.y); got != want {
			t.Errorf("force (%d,%d) = %g, want %g", c.x, c.y, got, want)
		}
	}
}

func TestComputeForceMapClipsImplausibleForces(t *testing.T) {
	f := fieldOf(2, 1, 0.5, 0.9)
	// Eval(0.9) ≈ 30.8 N exceeds the clip; Eval(0.5) ≈ 9.96 N survives.
	m := ComputeForceMap(f, 0.3, testModel, 20)

	if m.IsMissing(0, 0) {
		t.Error("plausible force was clipped")
	}
	if !m.IsMissing(1, 0) {
		t.Error("implausible force survived the clip")
	}
}

func TestComputePressureMapPropagatesMissing(t *testing.T) {
	f := fieldOf(2, 1, 0.1, 0.5)
	forceMap := ComputeForceMap(f, 0.3, testModel, 0)

	areaPerPixel := AreaMM2(1, 1.0)
	pressureMap, err := ComputePressureMap(forceMap, areaPerPixel)
	if err != nil {
		t.Fatalf("ComputePressureMap: %v", err)
	}

	if !pressureMap.IsMissing(0, 0) {
		t.Error("missing force cell produced a pressure value")
	}
	want := forceMap.At(1, 0) / areaPerPixel
	if got := pressureMap.At(1, 0); math.Abs(got-want) > 1e-9 {
		t.Errorf("pressure = %g, want %g", got, want)
	}
}

func TestComputePressureMapZeroArea(t *testing.T) {
	f := fieldOf(1, 1, 0.5)
	forceMap := ComputeForceMap(f, 0.3, testModel, 0)
	if _, err := ComputePressureMap(forceMap, 0); !errors.Is(err, ErrZeroArea) {
		t.Errorf("ComputePressureMap = %v, want ErrZeroArea", err)
	}
}

func TestSummarizeSkipsMissing(t *testing.T) {
	f := fieldOf(2, 2, 0.1, 0.4, 0.6, 0.8)
	forceMap := ComputeForceMap(f, 0.3, testModel, 0)
	pressureMap, err := ComputePressureMap(forceMap, AreaMM2(1, 1.0))
	if err != nil {
		t.Fatalf("ComputePressureMap: %v", err)
	}

	summary, err := Summarize(forceMap, pressureMap, 1.0)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	f04 := testModel.Eval(0.4)
	f06 := testModel.Eval(0.6)
	f08 := testModel.Eval(0.8)

	if summary.Count != 3 {
		t.Errorf("Count = %d, want 3", summary.Count)
	}
	if math.Abs(summary.AreaMM2-AreaMM2(3, 1.0)) > 1e-12 {
		t.Errorf("AreaMM2 = %g, want %g", summary.AreaMM2, AreaMM2(3, 1.0))
	}
	if summary.MinForceN != f04 || summary.MaxForceN != f08 {
		t.Errorf("min/max = %g/%g, want %g/%g", summary.MinForceN, summary.MaxForceN, f04, f08)
	}
	wantMean := (f04 + f06 + f08) / 3
	if math.Abs(summary.MeanForceN-wantMean) > 1e-9 {
		t.Errorf("MeanForceN = %g, want %g", summary.MeanForceN, wantMean)
	}
	if math.Abs(summary.MedianForceN-f06) > 1e-9 {
		t.Errorf("MedianForceN = %g, want %g", summary.MedianForceN, f06)
	}
	wantMeanPressure := wantMean / AreaMM2(1, 1.0)
	if math.Abs(summary.MeanPressureMPa-wantMeanPressure) > 1e-6 {
		t.Errorf("MeanPressureMPa = %g, want %g", summary.MeanPressureMPa, wantMeanPressure)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	f := fieldOf(2, 1, 0.1, 0.2)
	forceMap := ComputeForceMap(f, 0.3, testModel, 0)
	pressureMap, err := ComputePressureMap(forceMap, AreaMM2(1, 1.0))
	if err != nil {
		t.Fatalf("ComputePressureMap: %v", err)
	}
	if _, err := Summarize(forceMap, pressureMap, 1.0); !errors.Is(err, ErrEmptyRegion) {
		t.Errorf("Summarize = %v, want ErrEmptyRegion", err)
	}
}
