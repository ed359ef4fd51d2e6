// Package action exposes the bit container operations as named actions that
// take an ordered argument list and return an ordered result list.
//
// Names follow a path scheme: "math/bit/vector/<op>" for the vector family,
// "math/bit/matrix/<op>" for the matrix family and "math/bit/create" for the
// shape-dispatched constructor.
//
// # Arguments
//
// Containers are passed as *bit.Vector or *bit.Matrix; a family only
// accepts its own container type. Indices may be any Go integer or an
// integral float. Values written by "set" are coerced with bit.Coerce.
//
// # Errors
//
// Every failure is returned as an *Error carrying the action name; a call
// that fails returns no results. Arity violations match
// bit.ErrIllegalArgument.
//
// # Usage
//
//	reg := action.Default()
//	a, _ := reg.Lookup("math/bit/vector/hammingdistance")
//	out, err := a.Execute(ctx, []any{v1, v2})
package action
