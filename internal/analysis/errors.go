package analysis

import "errors"

// Hard failures of the analysis pipeline. Each indicates a configuration or
// input precondition violation; none are recovered internally. Callers test
// with errors.Is.
var (
	// ErrMissingRegion is returned when analysis needs a region that was
	// never configured on the session.
	ErrMissingRegion = errors.New("required region not configured")

	// ErrEmptyRegion is returned when thresholding leaves no surviving
	// pixels, which would otherwise silently divide by zero.
	ErrEmptyRegion = errors.New("no pixels above threshold in region")

	// ErrZeroArea is returned when a pressure is requested over a zero
	// physical area.
	ErrZeroArea = errors.New("zero physical area")
)
