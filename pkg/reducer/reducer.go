package reducer

import (
	"github.com/JRed1989/ambari/pkg/domain"
)

// Reducer is the type-erased transition function a store registers.
// Reduce must be pure: it never mutates state and returns changed=false with
// the untouched state when the action does not address its model.
type Reducer interface {
	// Model is the slice this reducer owns.
	Model() domain.ModelName
	// Initial is the state the slice holds before any action.
	Initial() any
	// Reduce computes the next state of the slice.
	Reduce(state any, action domain.Action) (next any, changed bool, err error)
}
