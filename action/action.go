package action

import (
	"context"
	"fmt"
)

const (
	// Root is the common name prefix of all actions.
	Root = "math/bit"

	// VectorFamily is the name prefix of the vector actions.
	VectorFamily = Root + "/vector"

	// MatrixFamily is the name prefix of the matrix actions.
	MatrixFamily = Root + "/matrix"
)

// Action is a named operation over an ordered argument list.
type Action interface {
	// Name returns the full action path, e.g. "math/bit/vector/and".
	Name() string

	// MinArity returns the minimum number of arguments.
	MinArity() int

	// Execute runs the action. On error no results are returned.
	Execute(ctx context.Context, args []any) ([]any, error)
}

// Error wraps an action failure with the action name.
type Error struct {
	Action string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("action %s: %v", e.Action, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

type runFunc func(args []any) ([]any, error)

// fn is the Action used by every family member: arity check, then run.
type fn struct {
	name  string
	arity int
	run   runFunc
}

func newAction(family, op string, arity int, run runFunc) *fn {
	return &fn{name: family + "/" + op, arity: arity, run: run}
}

func (a *fn) Name() string { return a.name }

func (a *fn) MinArity() int { return a.arity }

func (a *fn) Execute(ctx context.Context, args []any) ([]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, &Error{Action: a.name, Err: err}
	}
	if len(args) < a.arity {
		return nil, &Error{Action: a.name, Err: arityError(a.arity, len(args))}
	}
	out, err := a.run(args)
	if err != nil {
		return nil, &Error{Action: a.name, Err: err}
	}
	return out, nil
}
