package action

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrDuplicateAction is returned when two actions share a name.
var ErrDuplicateAction = errors.New("action: duplicate name")

// Registry maps action names to actions. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]Action
}

// NewRegistry creates a registry holding the given actions.
func NewRegistry(actions ...Action) (*Registry, error) {
	r := &Registry{actions: make(map[string]Action, len(actions))}
	for _, a := range actions {
		if err := r.Register(a); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Default returns a registry with the vector family, the matrix family and
// the generic create action.
func Default(opts ...Option) *Registry {
	actions := append(VectorActions(opts...), MatrixActions(opts...)...)
	actions = append(actions, Create())

	r, err := NewRegistry(actions...)
	if err != nil {
		// names are fixed at compile time
		panic(err)
	}
	return r
}

// Register adds a. A name already present fails with ErrDuplicateAction.
func (r *Registry) Register(a Action) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.actions[a.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateAction, a.Name())
	}
	r.actions[a.Name()] = a
	return nil
}

// Lookup returns the action registered under name.
func (r *Registry) Lookup(name string) (Action, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.actions[name]
	return a, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered actions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.actions)
}
