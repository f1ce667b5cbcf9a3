// Package report renders analysis results as text. Pure formatting; all
// values come from the structured results the analysis package produces.
package report

import (
	"fmt"
	"math"
	"strings"

	"bite-tracer/internal/analysis"
)

// Render formats the two-region aggregate report, reference region first.
func Render(r *analysis.Report) string {
	var b strings.Builder

	b.WriteString("\nArea of reference\n")
	b.WriteString("------------------------------\n")
	writeAggregate(&b, r.AOR)

	b.WriteString("\nArea of interest\n")
	b.WriteString("------------------------------\n")
	writeAggregate(&b, r.AOI.AggregateResult)
	fmt.Fprintf(&b, "Force (N, corrected):    %.2f\n", r.AOI.ForceCorrectedN)
	fmt.Fprintf(&b, "Pressure (MPa, corr.):   %.2f\n", r.AOI.PressureCorrectedMPa)

	return b.String()
}

func writeAggregate(b *strings.Builder, a analysis.AggregateResult) {
	fmt.Fprintf(b, "Area (pixel):            %d\n", a.AreaPixels)
	fmt.Fprintf(b, "Color weight:            %d\n", int(math.Round(a.ColorWeight)))
	fmt.Fprintf(b, "Weight/area:             %.3f\n", a.Ratio)
	fmt.Fprintf(b, "Area (mm2, corrected):   %.2f\n", a.AreaMM2)
	fmt.Fprintf(b, "Force (N):               %.2f\n", a.ForceN)
	fmt.Fprintf(b, "Pressure (MPa):          %.2f\n", a.PressureMPa)
}

// RenderPixelwise formats the per-pixel summary statistics.
func RenderPixelwise(s analysis.PixelwiseSummary) string {
	var b strings.Builder

	b.WriteString("\nPixelwise analysis\n")
	b.WriteString("------------------------------\n")
	fmt.Fprintf(&b, "Pixels above threshold:  %d\n", s.Count)
	fmt.Fprintf(&b, "Area (mm2, corrected):   %.2f\n", s.AreaMM2)
	fmt.Fprintf(&b, "Force min (N):           %.2f\n", s.MinForceN)
	fmt.Fprintf(&b, "Force max (N):           %.2f\n", s.MaxForceN)
	fmt.Fprintf(&b, "Force mean (N):          %.2f\n", s.MeanForceN)
	fmt.Fprintf(&b, "Force median (N):        %.2f\n", s.MedianForceN)
	fmt.Fprintf(&b, "Pressure mean (MPa):     %.2f\n", s.MeanPressureMPa)

	return b.String()
}
