package reducer

import (
	"fmt"
	"maps"

	"github.com/JRed1989/ambari/pkg/domain"
)

// Object reduces a mapping-valued slice.
type Object struct {
	model   domain.ModelName
	initial domain.Params
}

// ObjectOption configures an Object reducer.
type ObjectOption func(*Object)

// WithDefaultParams sets the state held before the first action (default: empty).
func WithDefaultParams(params domain.Params) ObjectOption {
	return func(o *Object) {
		o.initial = params
	}
}

// NewObject creates the reducer of the object slice named model.
func NewObject(model domain.ModelName, opts ...ObjectOption) *Object {
	o := &Object{
		model:   model,
		initial: domain.Params{},
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.initial == nil {
		o.initial = domain.Params{}
	}
	return o
}

// Model returns the slice name.
func (o *Object) Model() domain.ModelName {
	return o.model
}

// Initial returns the default state.
func (o *Object) Initial() any {
	return o.initial
}

// Apply computes the next state. A nil state stands for the default.
// SET merges shallowly: nested values under a key are replaced, not merged.
func (o *Object) Apply(state domain.Params, action domain.Action) (domain.Params, error) {
	next, _ := o.apply(state, action)
	return next, nil
}

// Reduce implements Reducer.
func (o *Object) Reduce(state any, action domain.Action) (any, bool, error) {
	var current domain.Params
	switch s := state.(type) {
	case nil:
	case domain.Params:
		current = s
	case map[string]any:
		current = s
	default:
		return state, false, fmt.Errorf("%w: %s holds %T", domain.ErrPayloadType, o.model, state)
	}

	next, matched := o.apply(current, action)
	if !matched {
		return state, false, nil
	}
	return next, true, nil
}

func (o *Object) apply(state domain.Params, action domain.Action) (domain.Params, bool) {
	if state == nil {
		state = o.initial
	}

	set, ok := action.(domain.Set)
	if !ok || set.Model != o.model {
		return state, false
	}

	next := make(domain.Params, len(state)+len(set.Params))
	maps.Copy(next, state)
	maps.Copy(next, set.Params)
	return next, true
}
