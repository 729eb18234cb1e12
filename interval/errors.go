package interval

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBounds indicates an interval whose start lies after its end.
	ErrInvalidBounds = errors.New("interval: start must not exceed end")
	// ErrNonPositiveLength indicates a (start, length) pair with length ≤ 0.
	ErrNonPositiveLength = errors.New("interval: length must be positive")
	// ErrEmpty indicates a reduction over an empty collection of intervals.
	ErrEmpty = errors.New("interval: no intervals to reduce")
)

// ValidationError reports the offending values of a rejected interval.
type ValidationError struct {
	Start int
	End   int
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: [%d, %d]", e.Err, e.Start, e.End)
}

func (e *ValidationError) Unwrap() error { return e.Err }
