package bitgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bitgo/bit"
	"github.com/hupe1980/bitgo/blas"
	"github.com/hupe1980/bitgo/internal/resource"
)

var (
	// ErrIllegalArgument is returned for a wrong argument count or type.
	ErrIllegalArgument = bit.ErrIllegalArgument

	// ErrIndexOutOfBounds indicates a coordinate outside a container.
	ErrIndexOutOfBounds = bit.ErrIndexOutOfBounds

	// ErrDimensionMismatch indicates operands of different shapes.
	ErrDimensionMismatch = bit.ErrDimensionMismatch

	// ErrTypeCoercion is returned when a value cannot become a bit.
	ErrTypeCoercion = bit.ErrTypeCoercion

	// ErrUnsupportedFormat is returned for an unknown numeric format name.
	ErrUnsupportedFormat = blas.ErrUnsupportedFormat

	// ErrUnknownAction is returned when no action is registered under a name.
	ErrUnknownAction = errors.New("unknown action")

	// ErrBusy is returned by TryExecute when every action slot is taken.
	ErrBusy = resource.ErrBusy

	// ErrRateLimited is returned by TryExecute when the rate limit has no
	// token available.
	ErrRateLimited = resource.ErrRateLimited
)

// ErrActionNotFound reports a dispatch to an unregistered name.
//
// It matches ErrUnknownAction via errors.Is.
type ErrActionNotFound struct {
	Name string
}

func (e *ErrActionNotFound) Error() string {
	return fmt.Sprintf("unknown action: %s", e.Name)
}

func (e *ErrActionNotFound) Unwrap() error { return ErrUnknownAction }
