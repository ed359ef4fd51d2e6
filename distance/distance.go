package distance

import (
	"fmt"

	"github.com/hupe1980/bitgo/bit"
	"github.com/hupe1980/bitgo/internal/simd"
)

// Hamming returns the number of positions at which a and b differ.
// Both containers must have the same shape.
func Hamming(a, b bit.Container) (int, error) {
	if bit.IsNil(a) || bit.IsNil(b) {
		return 0, fmt.Errorf("%w: nil container", bit.ErrIllegalArgument)
	}
	if !bit.SameShape(a, b) {
		return 0, &bit.DimensionError{
			Expected: a.Layout().Shape(),
			Actual:   b.Layout().Shape(),
			Position: 1,
		}
	}
	return simd.HammingWords(bit.Words(a), bit.Words(b)), nil
}

// Metric represents the distance metric used for container comparison.
type Metric int

const (
	MetricHamming Metric = iota
)

func (m Metric) String() string {
	switch m {
	case MetricHamming:
		return "Hamming"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation between containers.
type Func func(a, b bit.Container) (int, error)

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricHamming:
		return Hamming, nil
	default:
		return nil, fmt.Errorf("%w: unsupported metric %v", bit.ErrIllegalArgument, m)
	}
}
