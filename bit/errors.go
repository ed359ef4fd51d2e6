package bit

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalArgument is returned for a wrong argument count, a missing
	// operand or an invalid shape request.
	ErrIllegalArgument = errors.New("bit: illegal argument")

	// ErrIndexOutOfBounds indicates a coordinate outside the container extent.
	ErrIndexOutOfBounds = errors.New("bit: index out of bounds")

	// ErrDimensionMismatch indicates operand shapes incompatible for a
	// binary operation.
	ErrDimensionMismatch = errors.New("bit: dimension mismatch")

	// ErrTypeCoercion is returned when a value is neither boolean nor numeric.
	ErrTypeCoercion = errors.New("bit: unsupported value type")
)

// IndexError reports an out-of-bounds access.
//
// It matches ErrIndexOutOfBounds via errors.Is.
type IndexError struct {
	Coords []int
	Shape  []int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("bit: index %v out of bounds for shape %v", e.Coords, e.Shape)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfBounds }

// DimensionError reports a shape mismatch between a target and the operand
// at Position in the argument list (the target is position 0).
//
// It matches ErrDimensionMismatch via errors.Is.
type DimensionError struct {
	Expected []int
	Actual   []int
	Position int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("bit: dimension mismatch at operand %d: expected %v, got %v", e.Position, e.Expected, e.Actual)
}

func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

func illegalf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrIllegalArgument}, args...)...)
}
