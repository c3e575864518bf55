package pipes

import (
	"errors"
	"fmt"
)

// Malformed-grid errors. None of them are recoverable; a grid that produces
// one has no answer.
var (
	ErrNoStart          = errors.New("grid has no start cell")
	ErrMultipleStarts   = errors.New("grid has more than one start cell")
	ErrStartConnections = errors.New("start cell must connect to exactly two neighbours")
	ErrNoExit           = errors.New("pipe has no exit")
	ErrRunaway          = errors.New("loop did not close within the step limit")
)

// TraceError records where a traversal failed.
type TraceError struct {
	Op    string
	At    Point
	Count int
	Err   error
}

func (e *TraceError) Error() string {
	switch {
	case errors.Is(e.Err, ErrStartConnections):
		return fmt.Sprintf("%s %v: %v (found %d)", e.Op, e.At, e.Err, e.Count)
	case errors.Is(e.Err, ErrRunaway):
		return fmt.Sprintf("%s %v: %v (limit %d)", e.Op, e.At, e.Err, e.Count)
	default:
		return fmt.Sprintf("%s %v: %v", e.Op, e.At, e.Err)
	}
}

func (e *TraceError) Unwrap() error {
	return e.Err
}

// IsMalformed reports whether err comes from a grid that cannot be traced.
func IsMalformed(err error) bool {
	var te *TraceError
	return errors.As(err, &te) ||
		errors.Is(err, ErrNoStart) ||
		errors.Is(err, ErrMultipleStarts)
}
