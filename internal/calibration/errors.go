package calibration

import "fmt"

// ErrorKind categorizes calibration failures.
type ErrorKind string

const (
	KindBadTable         ErrorKind = "bad_table"          // missing keys, mismatched lengths, non-numeric values
	KindInsufficientData ErrorKind = "insufficient_data"  // fewer points than the model requires
	KindNoConvergence    ErrorKind = "no_convergence"     // nonlinear fit did not converge
)

// Error is a calibration failure. All calibration problems indicate bad or
// insufficient input data and are surfaced to the caller unmodified.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("calibration %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("calibration %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsKind reports whether err is a calibration Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	if calErr, ok := err.(*Error); ok {
		return calErr.Kind == kind
	}
	return false
}
