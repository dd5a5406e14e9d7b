package store

import (
	"context"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/JRed1989/ambari/pkg/domain"
)

// View is a push-based read handle on one slice, or on one field of an object slice.
// Creating a View has no side effect; each Subscribe call is independent.
type View[T any] struct {
	store    *Store
	model    domain.ModelName
	project  func(any) any
	distinct bool
}

// Select returns a view of the whole slice named model.
// Every committed change of the slice is delivered, even if equal in content.
func Select[T any](s *Store, model domain.ModelName) *View[T] {
	return &View[T]{
		store:   s,
		model:   model,
		project: func(v any) any { return v },
	}
}

// SelectField returns a view of one key of an object slice.
// Only changes of that key's value (reflect.DeepEqual) are delivered; a
// missing key reads as the zero value of T.
func SelectField[T any](s *Store, model domain.ModelName, key string) *View[T] {
	return &View[T]{
		store:    s,
		model:    model,
		project:  field(key),
		distinct: true,
	}
}

func field(key string) func(any) any {
	return func(v any) any {
		switch m := v.(type) {
		case domain.Params:
			return m[key]
		case map[string]any:
			return m[key]
		}
		return nil
	}
}

// Model returns the slice the view reads.
func (v *View[T]) Model() domain.ModelName {
	return v.model
}

// Current returns the latest value, or the zero value if the slice is not registered.
func (v *View[T]) Current() T {
	state, _ := v.store.Get(v.model)
	return cast[T](v.project(state))
}

// Subscribe delivers the current value (once the slice exists) and every
// subsequent value to fn, in commit order, until Unsubscribe.
func (v *View[T]) Subscribe(fn func(T)) *Subscription {
	sub := &Subscription{
		store:    v.store,
		model:    v.model,
		project:  v.project,
		distinct: v.distinct,
		equal:    reflect.DeepEqual,
		deliver:  func(val any) { fn(cast[T](val)) },
	}
	v.store.subscribe(sub)
	return sub
}

// Watch is Subscribe over a channel. The channel holds at most the latest
// undelivered value, so a slow reader skips intermediate states but never
// blocks the store. It is closed when ctx is done.
func (v *View[T]) Watch(ctx context.Context) <-chan T {
	ch := make(chan T, 1)
	var (
		mu   sync.Mutex
		done bool
	)

	sub := v.Subscribe(func(val T) {
		mu.Lock()
		defer mu.Unlock()
		if done {
			return
		}
		select {
		case <-ch:
		default:
		}
		ch <- val
	})

	go func() {
		<-ctx.Done()
		sub.Unsubscribe()
		mu.Lock()
		done = true
		close(ch)
		mu.Unlock()
	}()

	return ch
}

func cast[T any](v any) T {
	t, _ := v.(T)
	return t
}

// Subscription is one consumer attached to a View.
type Subscription struct {
	store    *Store
	model    domain.ModelName
	project  func(any) any
	distinct bool
	equal    func(a, b any) bool
	deliver  func(any)

	// Guarded by store.mu.
	last any
	seen bool

	closed atomic.Bool
}

// Unsubscribe stops future deliveries to this subscriber only. It is idempotent.
func (s *Subscription) Unsubscribe() {
	if s.closed.Swap(true) {
		return
	}
	s.store.unsubscribe(s)
}

// Closed reports whether Unsubscribe was called.
func (s *Subscription) Closed() bool {
	return s.closed.Load()
}
