package analysis

import (
	"fmt"

	"github.com/rs/zerolog"

	"bite-tracer/internal/calibration"
	"bite-tracer/internal/film"
	"bite-tracer/internal/region"
	"bite-tracer/pkg/geometry"
)

// Params holds the tunable analysis parameters of a session.
type Params struct {
	Threshold       float64 // intensity below this is ignored
	AreaCorrFactor  float64 // pixel→mm² correction for lens/perspective distortion
	ReferenceForceN float64 // force applied on the reference bite
	MaxForceN       float64 // per-pixel force clip; 0 disables clipping
}

// DefaultParams returns the parameters the films are normally analyzed
// with: intensity threshold 0.3, empirically determined area correction
// 1.0021, and a 50 N reference bite.
func DefaultParams() Params {
	return Params{
		Threshold:       0.3,
		AreaCorrFactor:  1.0021,
		ReferenceForceN: 50,
		MaxForceN:       0,
	}
}

// WithThreshold returns a copy of params with the intensity threshold set.
func (p Params) WithThreshold(threshold float64) Params {
	p.Threshold = threshold
	return p
}

// WithAreaCorrFactor returns a copy of params with the area correction set.
func (p Params) WithAreaCorrFactor(factor float64) Params {
	p.AreaCorrFactor = factor
	return p
}

// WithReferenceForce returns a copy of params with the reference force set.
func (p Params) WithReferenceForce(forceN float64) Params {
	p.ReferenceForceN = forceN
	return p
}

// WithMaxForce returns a copy of params with the per-pixel force clip set.
func (p Params) WithMaxForce(forceN float64) Params {
	p.MaxForceN = forceN
	return p
}

// Validate checks that every configured parameter is positive.
func (p Params) Validate() error {
	if p.Threshold <= 0 {
		return fmt.Errorf("threshold must be positive, got %g", p.Threshold)
	}
	if p.AreaCorrFactor <= 0 {
		return fmt.Errorf("area correction factor must be positive, got %g", p.AreaCorrFactor)
	}
	if p.ReferenceForceN <= 0 {
		return fmt.Errorf("reference force must be positive, got %g", p.ReferenceForceN)
	}
	if p.MaxForceN < 0 {
		return fmt.Errorf("max force must be positive or zero, got %g", p.MaxForceN)
	}
	return nil
}

// Session owns one film image, its configured regions, the fitted
// calibration models, and the derived per-pixel maps. Sessions are
// independent of each other; a session itself must not be mutated
// concurrently.
type Session struct {
	img        *film.Image
	forceModel *calibration.Polynomial
	pixelModel *calibration.Exponential
	params     Params
	log        zerolog.Logger

	aoi         *film.Image
	aoiBoundary geometry.BoundaryPolygon
	aor         *film.Image
	aorBoundary geometry.BoundaryPolygon
	aorSet      bool

	// Cached pixelwise maps, valid only for the params they were computed
	// under. Every setter clears them.
	cachedForce    *Map
	cachedPressure *Map
}

// NewSession builds a session over a loaded film image. The AOI defaults
// to the full image until SetAOI narrows it; the AOR starts unset. The
// pixel-weight model may be nil when only aggregate analysis is wanted.
func NewSession(img *film.Image, forceModel *calibration.Polynomial, pixelModel *calibration.Exponential, params Params) (*Session, error) {
	if img == nil {
		return nil, fmt.Errorf("nil film image")
	}
	if forceModel == nil {
		return nil, fmt.Errorf("nil force correction model")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		img:         img,
		forceModel:  forceModel,
		pixelModel:  pixelModel,
		params:      params,
		log:         zerolog.Nop(),
		aoi:         img,
		aoiBoundary: geometry.BoundaryOf(geometry.PointInt{}, img.Height, img.Width),
	}, nil
}

// SetLogger routes pipeline stage logging to the given logger.
func (s *Session) SetLogger(log zerolog.Logger) {
	s.log = log
}

// SetAOI crops the area of interest out of the film image.
func (s *Session) SetAOI(origin geometry.PointInt, height, width int) error {
	sub, boundary, err := region.Crop(s.img, origin, height, width)
	if err != nil {
		return fmt.Errorf("area of interest: %w", err)
	}
	s.aoi = sub
	s.aoiBoundary = boundary
	s.invalidate()
	return nil
}

// SetAOR crops the area of reference out of the film image.
func (s *Session) SetAOR(origin geometry.PointInt, height, width int) error {
	sub, boundary, err := region.Crop(s.img, origin, height, width)
	if err != nil {
		return fmt.Errorf("area of reference: %w", err)
	}
	s.aor = sub
	s.aorBoundary = boundary
	s.aorSet = true
	s.invalidate()
	return nil
}

// SetThreshold replaces the intensity threshold.
func (s *Session) SetThreshold(threshold float64) error {
	if threshold <= 0 {
		return fmt.Errorf("threshold must be positive, got %g", threshold)
	}
	s.params.Threshold = threshold
	s.invalidate()
	return nil
}

// SetAreaCorrFactor replaces the pixel→mm² correction factor.
func (s *Session) SetAreaCorrFactor(factor float64) error {
	if factor <= 0 {
		return fmt.Errorf("area correction factor must be positive, got %g", factor)
	}
	s.params.AreaCorrFactor = factor
	s.invalidate()
	return nil
}

// SetReferenceForce replaces the known force of the reference bite.
func (s *Session) SetReferenceForce(forceN float64) error {
	if forceN <= 0 {
		return fmt.Errorf("reference force must be positive, got %g", forceN)
	}
	s.params.ReferenceForceN = forceN
	s.invalidate()
	return nil
}

// SetMaxForce replaces the per-pixel force clip; zero disables clipping.
func (s *Session) SetMaxForce(forceN float64) error {
	if forceN < 0 {
		return fmt.Errorf("max force must be positive or zero, got %g", forceN)
	}
	s.params.MaxForceN = forceN
	s.invalidate()
	return nil
}

// invalidate drops derived maps computed under the previous configuration.
func (s *Session) invalidate() {
	s.cachedForce = nil
	s.cachedPressure = nil
}

// Image returns the full film image for display.
func (s *Session) Image() *film.Image {
	return s.img
}

// AOI returns the current area of interest.
func (s *Session) AOI() *film.Image {
	return s.aoi
}

// AOIBoundary returns the AOI outline in film-image coordinates.
func (s *Session) AOIBoundary() geometry.BoundaryPolygon {
	return s.aoiBoundary
}

// AOR returns the area of reference, or nil when none is configured.
func (s *Session) AOR() *film.Image {
	return s.aor
}

// AORBoundary returns the AOR outline and whether an AOR is configured.
func (s *Session) AORBoundary() (geometry.BoundaryPolygon, bool) {
	return s.aorBoundary, s.aorSet
}

// Params returns the current analysis parameters.
func (s *Session) Params() Params {
	return s.params
}
