// Package calibration loads the two calibration tables and fits the
// regression models that turn color weight into physical force.
package calibration

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// ForceCorrectionTable pairs ratiometrically computed forces with forces
// measured on a reference gauge. Fitted by a degree-2 polynomial.
type ForceCorrectionTable struct {
	XComputed []float64 `json:"x_computed"`
	YMeasured []float64 `json:"y_measured"`
}

// PixelWeightTable pairs single-pixel color weights with the force applied
// while producing them. Fitted by an exponential model.
type PixelWeightTable struct {
	PixelWeight []float64 `json:"pixelweight"`
	ForceN      []float64 `json:"force_N"`
}

// Validate checks the table shape: both arrays present, equal length, at
// least enough points for the polynomial fit, all values finite.
func (t *ForceCorrectionTable) Validate() error {
	return validatePairs("force correction", "x_computed", t.XComputed, "y_measured", t.YMeasured, polynomialDegree+1)
}

// Validate checks the table shape against the exponential fit requirements.
func (t *PixelWeightTable) Validate() error {
	return validatePairs("pixel weight", "pixelweight", t.PixelWeight, "force_N", t.ForceN, exponentialMinPoints)
}

func validatePairs(table, xName string, xs []float64, yName string, ys []float64, minPoints int) error {
	if xs == nil {
		return &Error{Kind: KindBadTable, Message: fmt.Sprintf("%s table is missing %q", table, xName)}
	}
	if ys == nil {
		return &Error{Kind: KindBadTable, Message: fmt.Sprintf("%s table is missing %q", table, yName)}
	}
	if len(xs) != len(ys) {
		return &Error{
			Kind:    KindBadTable,
			Message: fmt.Sprintf("%s table length mismatch: %d %s vs %d %s", table, len(xs), xName, len(ys), yName),
		}
	}
	if len(xs) < minPoints {
		return &Error{
			Kind:    KindInsufficientData,
			Message: fmt.Sprintf("%s table needs at least %d points, got %d", table, minPoints, len(xs)),
		}
	}
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			return &Error{
				Kind:    KindBadTable,
				Message: fmt.Sprintf("%s table has a non-finite value at index %d", table, i),
			}
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// LoadForceCorrectionTable reads and validates a force-correction table
// from a JSON file.
func LoadForceCorrectionTable(path string) (*ForceCorrectionTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: KindBadTable, Message: "failed to read force correction table", Cause: err}
	}

	var table ForceCorrectionTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, &Error{Kind: KindBadTable, Message: "failed to parse force correction table", Cause: err}
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &table, nil
}

// LoadPixelWeightTable reads and validates a pixel-weight correction table
// from a JSON file.
func LoadPixelWeightTable(path string) (*PixelWeightTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: KindBadTable, Message: "failed to read pixel weight table", Cause: err}
	}

	var table PixelWeightTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, &Error{Kind: KindBadTable, Message: "failed to parse pixel weight table", Cause: err}
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &table, nil
}
