package blas

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is negative or too large.
	ErrBadShape = errors.New("blas: invalid shape")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	ErrOutOfRange = errors.New("blas: index out of range")

	// ErrUnsupportedFormat is returned for an unknown storage format name.
	ErrUnsupportedFormat = errors.New("blas: unsupported format")
)

// indexErrorf wraps ErrOutOfRange with the method and coordinates.
func indexErrorf(method string, i, j int) error {
	return fmt.Errorf("%s(%d,%d): %w", method, i, j, ErrOutOfRange)
}
