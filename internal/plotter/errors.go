package plotter

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by every construction failure.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOutOfRange indicates the element count reaches past the end of the data.
	ErrIndexOutOfRange = errors.New("cell index out of range")
)

// ArgumentError describes which constructor input was rejected.
type ArgumentError struct {
	Field  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("plotter: %s %s", e.Field, e.Reason)
}

// Is reports ArgumentError as ErrInvalidArgument so callers can match either.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// RenderError is returned when a render phase fails part way.
// The text produced before the failure is still returned alongside it.
type RenderError struct {
	Title string
	Phase string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Phase, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
