package blas

import (
	"fmt"
	"strings"
)

// Format selects the storage strategy of a numeric representation.
type Format uint8

const (
	// FormatDense stores every entry.
	FormatDense Format = iota
	// FormatSparse stores only non-zero entries.
	FormatSparse
)

// String returns the canonical name of the format.
func (f Format) String() string {
	switch f {
	case FormatDense:
		return "dense"
	case FormatSparse:
		return "sparse"
	default:
		return fmt.Sprintf("Unknown(%d)", f)
	}
}

// ParseFormat parses a format name. The empty string selects FormatDense.
// Names are case-insensitive and surrounding whitespace is ignored.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dense":
		return FormatDense, nil
	case "sparse":
		return FormatSparse, nil
	default:
		return FormatDense, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// NewMatrix allocates a zero rows×cols matrix in the given format.
func NewMatrix(f Format, rows, cols int) (Matrix, error) {
	switch f {
	case FormatDense:
		return NewDense(rows, cols)
	case FormatSparse:
		return NewSparse(rows, cols)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
}

// NewVector allocates a zero vector of length n in the given format.
func NewVector(f Format, n int) (Vector, error) {
	switch f {
	case FormatDense:
		return NewDenseVector(n)
	case FormatSparse:
		return NewSparseVector(n)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
}
