package model

import (
	"github.com/JRed1989/ambari/pkg/domain"
	"github.com/JRed1989/ambari/pkg/store"
)

// CollectionService writes to a collection slice of T.
// Each method submits exactly one action; the returned error is the
// dispatcher's, nil unless a reducer rejected the action.
type CollectionService[T any] struct {
	Service[[]T]
}

// NewCollectionService binds a collection service to model.
func NewCollectionService[T any](s *store.Store, model domain.ModelName, opts ...Option) *CollectionService[T] {
	return &CollectionService[T]{Service: newService[[]T](s, model, opts)}
}

// AddInstance appends one item.
func (c *CollectionService[T]) AddInstance(item T) error {
	return c.AddInstances([]T{item})
}

// AddInstances appends items in order.
func (c *CollectionService[T]) AddInstances(items []T) error {
	return c.dispatch(domain.Add[T]{Model: c.model, Items: items})
}

// DeleteObjectInstance removes every item with the same identity as item.
func (c *CollectionService[T]) DeleteObjectInstance(item T) error {
	return c.dispatch(domain.DeleteObject[T]{Model: c.model, Item: item})
}

// DeletePrimitiveInstance removes every item equal to item.
func (c *CollectionService[T]) DeletePrimitiveInstance(item T) error {
	return c.dispatch(domain.DeletePrimitive[T]{Model: c.model, Item: item})
}

// Clear removes all items.
func (c *CollectionService[T]) Clear() error {
	return c.dispatch(domain.Clear{Model: c.model})
}

// MapCollection replaces every item with modifier(item).
// modifier must be pure; a panic inside it reaches the caller.
func (c *CollectionService[T]) MapCollection(modifier func(T) T) error {
	return c.dispatch(domain.Map[T]{Model: c.model, Modifier: modifier})
}
