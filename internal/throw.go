package internal

import "github.com/pkg/errors"

// The sort comparator and the sweep have invariants that cannot fail for
// correct input, and threading an error return through a sort.Less callback
// isn't possible anyway. Instead, we panic with an invariantError, and the
// public API recovers to convert to an error.

var ErrInvariantViolation = errors.New("convexhull: internal invariant violated")

type invariantError struct {
	error
}

func (e invariantError) Unwrap() error {
	return e.error
}

// Panic with an error wrapping ErrInvariantViolation.
func fatalf(format string, args ...interface{}) {
	panic(invariantError{errors.Wrapf(ErrInvariantViolation, format, args...)})
}

// Convert a recovered fatalf panic into an error. Any other panic is
// re-raised, since it's a genuine bug rather than a broken invariant.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if err, ok := r.(invariantError); ok {
			return err.error
		}
		panic(r)
	}
	return nil
}
