package report

import (
	"strings"
	"testing"

	"bite-tracer/internal/analysis"
)

func TestRenderLayout(t *testing.T) {
	r := &analysis.Report{
		AOR: analysis.AggregateResult{
			AreaPixels:  100,
			ColorWeight: 50.4,
			Ratio:       0.504,
			AreaMM2:     0.1008,
			ForceN:      50,
			PressureMPa: 496.03,
		},
		AOI: analysis.AOIResult{
			AggregateResult: analysis.AggregateResult{
				AreaPixels:  200,
				ColorWeight: 120,
				Ratio:       0.6,
				AreaMM2:     0.2016,
				ForceN:      119.05,
				PressureMPa: 590.52,
			},
			ForceCorrectedN:      124.3,
			PressureCorrectedMPa: 616.57,
		},
	}

	text := Render(r)

	aorIdx := strings.Index(text, "Area of reference")
	aoiIdx := strings.Index(text, "Area of interest")
	if aorIdx < 0 || aoiIdx < 0 || aorIdx > aoiIdx {
		t.Fatalf("reference block must precede interest block:\n%s", text)
	}
	for _, want := range []string{
		"Area (pixel):            100",
		"Color weight:            50", // rounded to int
		"Weight/area:             0.504",
		"Force (N):               50.00",
		"Pressure (MPa):          496.03",
		"Force (N, corrected):    124.30",
		"Pressure (MPa, corr.):   616.57",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q:\n%s", want, text)
		}
	}
}

func TestRenderPixelwise(t *testing.T) {
	text := RenderPixelwise(analysis.PixelwiseSummary{
		Count:           321,
		AreaMM2:         0.3236,
		MinForceN:       1.2,
		MaxForceN:       40.7,
		MeanForceN:      15.25,
		MedianForceN:    14.9,
		MeanPressureMPa: 15129.4,
	})

	for _, want := range []string{
		"Pixelwise analysis",
		"Pixels above threshold:  321",
		"Force median (N):        14.90",
		"Pressure mean (MPa):     15129.40",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q:\n%s", want, text)
		}
	}
}
