package reducer

import (
	"fmt"
	"reflect"

	"github.com/JRed1989/ambari/pkg/domain"
)

// Collection reduces a sequence-valued slice of T.
type Collection[T any] struct {
	model    domain.ModelName
	initial  []T
	identity func(T) (string, bool)
	equal    func(a, b T) bool
}

// CollectionOption configures a Collection reducer.
type CollectionOption[T any] func(*Collection[T])

// WithDefault sets the state held before the first action (default: empty).
func WithDefault[T any](items []T) CollectionOption[T] {
	return func(c *Collection[T]) {
		c.initial = items
	}
}

// WithIdentity sets how DELETE_OBJECT identifies items.
// By default items implementing domain.Identified are matched on EntityID.
func WithIdentity[T any](fn func(T) string) CollectionOption[T] {
	return func(c *Collection[T]) {
		c.identity = func(item T) (string, bool) { return fn(item), true }
	}
}

// WithEquality sets how DELETE_PRIMITIVE compares items (default: reflect.DeepEqual).
func WithEquality[T any](fn func(a, b T) bool) CollectionOption[T] {
	return func(c *Collection[T]) {
		c.equal = fn
	}
}

// NewCollection creates the reducer of the collection slice named model.
func NewCollection[T any](model domain.ModelName, opts ...CollectionOption[T]) *Collection[T] {
	c := &Collection[T]{
		model:    model,
		initial:  []T{},
		identity: entityID[T],
		equal:    func(a, b T) bool { return reflect.DeepEqual(a, b) },
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.initial == nil {
		c.initial = []T{}
	}
	return c
}

func entityID[T any](item T) (string, bool) {
	id, ok := any(item).(domain.Identified)
	if !ok {
		return "", false
	}
	return id.EntityID(), true
}

// Model returns the slice name.
func (c *Collection[T]) Model() domain.ModelName {
	return c.model
}

// Initial returns the default state.
func (c *Collection[T]) Initial() any {
	return c.initial
}

// Apply computes the next state. A nil state stands for the default.
// Unmatched actions return state itself.
func (c *Collection[T]) Apply(state []T, action domain.Action) ([]T, error) {
	next, _, err := c.apply(state, action)
	return next, err
}

// Reduce implements Reducer.
func (c *Collection[T]) Reduce(state any, action domain.Action) (any, bool, error) {
	var current []T
	if state != nil {
		typed, ok := state.([]T)
		if !ok {
			return state, false, fmt.Errorf("%w: %s holds %T", domain.ErrPayloadType, c.model, state)
		}
		current = typed
	}

	next, matched, err := c.apply(current, action)
	if err != nil || !matched {
		return state, false, err
	}
	return next, true, nil
}

func (c *Collection[T]) apply(state []T, action domain.Action) ([]T, bool, error) {
	if state == nil {
		state = c.initial
	}

	t := action.Type()
	if t.Model != c.model {
		return state, false, nil
	}

	switch a := action.(type) {
	case domain.Add[T]:
		next := make([]T, 0, len(state)+len(a.Items))
		next = append(next, state...)
		return append(next, a.Items...), true, nil

	case domain.DeleteObject[T]:
		id, ok := c.identity(a.Item)
		if !ok {
			return state, false, fmt.Errorf("%w: %s", domain.ErrNoIdentity, t)
		}
		return filter(state, func(item T) bool {
			other, ok := c.identity(item)
			return !ok || other != id
		}), true, nil

	case domain.DeletePrimitive[T]:
		return filter(state, func(item T) bool {
			return !c.equal(item, a.Item)
		}), true, nil

	case domain.Clear:
		return []T{}, true, nil

	case domain.Map[T]:
		if a.Modifier == nil {
			return state, false, fmt.Errorf("%w: %s has no modifier", domain.ErrPayloadType, t)
		}
		next := make([]T, len(state))
		for i, item := range state {
			next[i] = a.Modifier(item)
		}
		return next, true, nil
	}

	// Right verb and model, wrong element type.
	if t.Verb.IsCollection() {
		return state, false, fmt.Errorf("%w: %s carries %T", domain.ErrPayloadType, t, action)
	}
	return state, false, nil
}

// filter always allocates, so the result never aliases state.
func filter[T any](state []T, keep func(T) bool) []T {
	next := make([]T, 0, len(state))
	for _, item := range state {
		if keep(item) {
			next = append(next, item)
		}
	}
	return next
}
