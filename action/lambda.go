package action

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/hupe1980/bitgo/bit"
)

// LambdaStreaming turns a container into a lazy sequence of 0/1 values in
// linear order, for iteration constructs of the calling runtime.
type LambdaStreaming struct{}

// Assignable returns the argument types Apply accepts.
func (LambdaStreaming) Assignable() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[*bit.Vector](),
		reflect.TypeFor[*bit.Matrix](),
	}
}

// Apply returns the stream of v. Nothing is read until the sequence is
// ranged over.
func (LambdaStreaming) Apply(v any) (iter.Seq[int], error) {
	switch c := v.(type) {
	case *bit.Vector:
		if c != nil {
			return bit.Stream(c), nil
		}
	case *bit.Matrix:
		if c != nil {
			return bit.Stream(c), nil
		}
	}
	return nil, fmt.Errorf("%w: cannot stream %T", bit.ErrIllegalArgument, v)
}
