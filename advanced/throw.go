package advanced

import "github.com/pkg/errors"

// Threading errors through every helper would clutter the geometry code with
// checks that can only fail on bad input. Instead, invalid input panics with a
// geometryError, and the public API recovers to convert it to an error.

var (
	// The point set has no points.
	ErrEmptyInput = errors.New("empty point set")
	// Fewer than three distinct, non-collinear points, so no rectangle with
	// positive area exists.
	ErrDegenerateHull = errors.New("degenerate hull")
)

type geometryError struct {
	error
}

func (e geometryError) Unwrap() error {
	return e.error
}

// Panic with a geometryError wrapping cause.
func fatalf(cause error, format string, args ...interface{}) {
	panic(geometryError{errors.Wrapf(cause, format, args...)})
}

// Converts a value returned by recover() into an error. Panics that did not
// come from this package are re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if err, ok := r.(geometryError); ok {
			return err.error
		}
		panic(r)
	}
	return nil
}
