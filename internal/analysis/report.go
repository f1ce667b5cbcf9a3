package analysis

import (
	"fmt"

	"bite-tracer/internal/intensity"
)

// AggregateResult holds the whole-region scalars for one analyzed region.
type AggregateResult struct {
	AreaPixels  int     `json:"area_pixels"`
	ColorWeight float64 `json:"color_weight"`
	Ratio       float64 `json:"color_weight_area_ratio"`
	AreaMM2     float64 `json:"area_mm2"`
	ForceN      float64 `json:"force_n"`
	PressureMPa float64 `json:"pressure_mpa"`
}

// AOIResult extends the aggregate scalars of the area of interest with the
// polynomially corrected force and pressure.
type AOIResult struct {
	AggregateResult
	ForceCorrectedN      float64 `json:"force_corrected_n"`
	PressureCorrectedMPa float64 `json:"pressure_corrected_mpa"`
}

// Report is the structured outcome of an aggregate analysis run,
// reference region first.
type Report struct {
	AOR AggregateResult `json:"aor"`
	AOI AOIResult       `json:"aoi"`
}

// PixelwiseResult bundles the per-pixel maps with their summary.
type PixelwiseResult struct {
	Force    Map
	Pressure Map
	Summary  PixelwiseSummary
}

// RunAggregate runs the two-stage aggregate pipeline: the reference region
// first (it anchors the force scale), then the area of interest, whose
// force is derived ratiometrically from the reference color weight and
// corrected through the fitted polynomial.
func (s *Session) RunAggregate() (*Report, error) {
	if !s.aorSet {
		return nil, fmt.Errorf("area of reference: %w", ErrMissingRegion)
	}

	aorStats, err := Aggregate(intensity.Compute(s.aor), s.params.Threshold)
	if err != nil {
		return nil, fmt.Errorf("area of reference: %w", err)
	}
	aorAreaMM2 := AreaMM2(float64(aorStats.AreaPixels), s.params.AreaCorrFactor)
	aorPressure, err := Pressure(s.params.ReferenceForceN, aorAreaMM2)
	if err != nil {
		return nil, fmt.Errorf("area of reference: %w", err)
	}
	s.log.Debug().
		Int("area_px", aorStats.AreaPixels).
		Float64("color_weight", aorStats.ColorWeight).
		Msg("reference region analyzed")

	aoiStats, err := Aggregate(intensity.Compute(s.aoi), s.params.Threshold)
	if err != nil {
		return nil, fmt.Errorf("area of interest: %w", err)
	}
	aoiAreaMM2 := AreaMM2(float64(aoiStats.AreaPixels), s.params.AreaCorrFactor)

	// Ratiometric calibration against the known reference bite.
	aoiForce := aoiStats.ColorWeight / aorStats.ColorWeight * s.params.ReferenceForceN
	aoiPressure, err := Pressure(aoiForce, aoiAreaMM2)
	if err != nil {
		return nil, fmt.Errorf("area of interest: %w", err)
	}

	forceCorrected := s.forceModel.Eval(aoiForce)
	pressureCorrected, err := Pressure(forceCorrected, aoiAreaMM2)
	if err != nil {
		return nil, fmt.Errorf("area of interest: %w", err)
	}
	s.log.Debug().
		Int("area_px", aoiStats.AreaPixels).
		Float64("force_n", aoiForce).
		Float64("force_corrected_n", forceCorrected).
		Msg("interest region analyzed")

	return &Report{
		AOR: AggregateResult{
			AreaPixels:  aorStats.AreaPixels,
			ColorWeight: aorStats.ColorWeight,
			Ratio:       aorStats.Ratio,
			AreaMM2:     aorAreaMM2,
			ForceN:      s.params.ReferenceForceN,
			PressureMPa: aorPressure,
		},
		AOI: AOIResult{
			AggregateResult: AggregateResult{
				AreaPixels:  aoiStats.AreaPixels,
				ColorWeight: aoiStats.ColorWeight,
				Ratio:       aoiStats.Ratio,
				AreaMM2:     aoiAreaMM2,
				ForceN:      aoiForce,
				PressureMPa: aoiPressure,
			},
			ForceCorrectedN:      forceCorrected,
			PressureCorrectedMPa: pressureCorrected,
		},
	}, nil
}

// RunPixelwise derives the per-pixel force and pressure maps of the area
// of interest and their summary statistics. Maps are cached on the session
// and reused until a setter invalidates them.
func (s *Session) RunPixelwise() (*PixelwiseResult, error) {
	forceMap, pressureMap, err := s.pixelwiseMaps()
	if err != nil {
		return nil, err
	}
	summary, err := Summarize(forceMap, pressureMap, s.params.AreaCorrFactor)
	if err != nil {
		return nil, fmt.Errorf("area of interest: %w", err)
	}
	return &PixelwiseResult{Force: forceMap, Pressure: pressureMap, Summary: summary}, nil
}

// pixelwiseMaps returns the cached maps, computing them when the cache was
// invalidated. Repeated calls under unchanged session state return
// identical maps.
func (s *Session) pixelwiseMaps() (Map, Map, error) {
	if s.cachedForce != nil && s.cachedPressure != nil {
		return *s.cachedForce, *s.cachedPressure, nil
	}
	if s.pixelModel == nil {
		return Map{}, Map{}, fmt.Errorf("no pixel weight model configured")
	}

	forceMap := ComputeForceMap(intensity.Compute(s.aoi), s.params.Threshold, s.pixelModel, s.params.MaxForceN)
	pressureMap, err := ComputePressureMap(forceMap, AreaMM2(1, s.params.AreaCorrFactor))
	if err != nil {
		return Map{}, Map{}, fmt.Errorf("area of interest: %w", err)
	}
	s.cachedForce = &forceMap
	s.cachedPressure = &pressureMap
	s.log.Debug().
		Int("width", forceMap.Width).
		Int("height", forceMap.Height).
		Msg("pixelwise maps computed")
	return forceMap, pressureMap, nil
}
