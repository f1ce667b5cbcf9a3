package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"bite-tracer/internal/calibration"
	"bite-tracer/internal/intensity"
)

// Map is a per-pixel scalar grid with the spatial shape of its source
// intensity field. Cells below threshold (or clipped as implausible) are
// missing: they hold NaN, propagate silently through elementwise
// operations, and are excluded from every reduction.
type Map struct {
	Width  int
	Height int
	Cells  []float64 // row-major; NaN marks a missing cell
}

func newMap(width, height int) Map {
	return Map{Width: width, Height: height, Cells: make([]float64, width*height)}
}

// At returns the value at pixel (x, y); check IsMissing before using it.
func (m Map) At(x, y int) float64 {
	return m.Cells[y*m.Width+x]
}

// IsMissing reports whether the cell at (x, y) holds no value.
func (m Map) IsMissing(x, y int) bool {
	return math.IsNaN(m.Cells[y*m.Width+x])
}

// present collects the non-missing cell values.
func (m Map) present() []float64 {
	vals := make([]float64, 0, len(m.Cells))
	for _, v := range m.Cells {
		if !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	return vals
}

// ComputeForceMap maps every surviving pixel of an intensity field through
// the exponential calibration model. Pixels below the threshold are
// missing. When maxForceN is positive, computed forces above it are also
// marked missing: they model physically implausible readings such as
// saturated pixels.
func ComputeForceMap(field intensity.Field, threshold float64, model *calibration.Exponential, maxForceN float64) Map {
	m := newMap(field.Width, field.Height)
	for i, v := range field.Pix {
		if v < threshold {
			m.Cells[i] = math.NaN()
			continue
		}
		force := model.Eval(v)
		if maxForceN > 0 && force > maxForceN {
			m.Cells[i] = math.NaN()
			continue
		}
		m.Cells[i] = force
	}
	return m
}

// ComputePressureMap divides every non-missing force cell by the physical
// area of one pixel. Missing propagates as missing.
func ComputePressureMap(forceMap Map, areaPerPixelMM2 float64) (Map, error) {
	if areaPerPixelMM2 == 0 {
		return Map{}, ErrZeroArea
	}
	m := newMap(forceMap.Width, forceMap.Height)
	for i, v := range forceMap.Cells {
		m.Cells[i] = v / areaPerPixelMM2 // NaN / x stays NaN
	}
	return m, nil
}

// PixelwiseSummary aggregates the per-pixel maps over their non-missing
// cells only.
type PixelwiseSummary struct {
	Count           int     `json:"count"`    // non-missing pixels
	AreaMM2         float64 `json:"area_mm2"` // physical area of the non-missing pixels
	MinForceN       float64 `json:"min_force_n"`
	MaxForceN       float64 `json:"max_force_n"`
	MeanForceN      float64 `json:"mean_force_n"`
	MedianForceN    float64 `json:"median_force_n"`
	MeanPressureMPa float64 `json:"mean_pressure_mpa"`
}

// Summarize reduces the force and pressure maps to summary statistics,
// skipping missing cells entirely. Fails with ErrEmptyRegion when no cell
// survived.
func Summarize(forceMap, pressureMap Map, areaCorrFactor float64) (PixelwiseSummary, error) {
	forces := forceMap.present()
	if len(forces) == 0 {
		return PixelwiseSummary{}, ErrEmptyRegion
	}
	pressures := pressureMap.present()

	sort.Float64s(forces)
	return PixelwiseSummary{
		Count:           len(forces),
		AreaMM2:         AreaMM2(float64(len(forces)), areaCorrFactor),
		MinForceN:       forces[0],
		MaxForceN:       forces[len(forces)-1],
		MeanForceN:      stat.Mean(forces, nil),
		MedianForceN:    stat.Quantile(0.5, stat.Empirical, forces, nil),
		MeanPressureMPa: stat.Mean(pressures, nil),
	}, nil
}
