// Package analysis turns intensity fields into calibrated force and
// pressure values, both as whole-region aggregates and per-pixel maps.
package analysis

import "bite-tracer/internal/intensity"

// AggregateStats summarizes a thresholded intensity field as region-wide
// scalars.
type AggregateStats struct {
	AreaPixels  int     // count of pixels above threshold
	ColorWeight float64 // sum of surviving intensities
	Ratio       float64 // ColorWeight / AreaPixels
}

// Aggregate masks intensities below the threshold to zero and computes the
// surviving area, the summed color weight, and their ratio. An empty
// surviving set fails with ErrEmptyRegion.
func Aggregate(field intensity.Field, threshold float64) (AggregateStats, error) {
	var stats AggregateStats
	for _, v := range field.Pix {
		if v < threshold {
			continue
		}
		if v > 0 {
			stats.AreaPixels++
			stats.ColorWeight += v
		}
	}
	if stats.AreaPixels == 0 {
		return AggregateStats{}, ErrEmptyRegion
	}
	stats.Ratio = stats.ColorWeight / float64(stats.AreaPixels)
	return stats, nil
}
