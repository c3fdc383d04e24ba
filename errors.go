package bitgrid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape is returned for a shape with a zero dimension.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrTableTooLarge is returned when a blocker table would need more
	// than MaxBlockerBits relevant cells for one square.
	ErrTableTooLarge = errors.New("blocker table too large")

	// ErrInvalidOffset is returned when an offset list cannot be parsed.
	ErrInvalidOffset = errors.New("invalid offset")
)

// ErrCapacityExceeded indicates a shape that does not fit a backend.
//
// Constructors panic with this error: an oversized shape is a composition
// mistake, not a runtime data condition.
type ErrCapacityExceeded struct {
	Shape    Shape
	Kind     Kind
	Capacity int
}

func (e *ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("%s grid of %s needs %d bits, capacity is %d",
		e.Kind, e.Shape, e.Shape.Squares(), e.Capacity)
}

// ErrBlockerMaskTooWide indicates a square whose relevant blocker mask is
// wider than the configured limit.
//
// It unwraps to ErrTableTooLarge.
type ErrBlockerMaskTooWide struct {
	Square int
	Bits   int
	Max    int
}

func (e *ErrBlockerMaskTooWide) Error() string {
	return fmt.Sprintf("square %d: blocker mask has %d bits, limit is %d", e.Square, e.Bits, e.Max)
}

func (e *ErrBlockerMaskTooWide) Unwrap() error { return ErrTableTooLarge }

// ErrOffsetSyntax indicates a malformed offset list.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrOffsetSyntax struct {
	Input string
	cause error
}

func (e *ErrOffsetSyntax) Error() string {
	return fmt.Sprintf("%v: %q", e.cause, e.Input)
}

func (e *ErrOffsetSyntax) Unwrap() error { return e.cause }
