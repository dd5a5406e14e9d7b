package model

import (
	"github.com/JRed1989/ambari/pkg/domain"
	"github.com/JRed1989/ambari/pkg/ports"
	"github.com/JRed1989/ambari/pkg/store"
)

// Option configures a service.
type Option func(*options)

type options struct {
	dispatcher ports.ActionDispatcher
}

// WithDispatcher routes the service's writes through d instead of the store.
func WithDispatcher(d ports.ActionDispatcher) Option {
	return func(o *options) {
		o.dispatcher = d
	}
}

// Service is the read side of one slice. S is the slice's state type.
type Service[S any] struct {
	model      domain.ModelName
	store      *store.Store
	dispatcher ports.ActionDispatcher
}

func newService[S any](s *store.Store, model domain.ModelName, opts []Option) Service[S] {
	o := options{dispatcher: s}
	for _, opt := range opts {
		opt(&o)
	}
	return Service[S]{
		model:      model,
		store:      s,
		dispatcher: o.dispatcher,
	}
}

// NewService creates a read-only service bound to model.
func NewService[S any](s *store.Store, model domain.ModelName) *Service[S] {
	svc := newService[S](s, model, nil)
	return &svc
}

// Model returns the slice name the service is bound to.
func (s *Service[S]) Model() domain.ModelName {
	return s.model
}

// GetAll returns a push-based view of the whole slice.
func (s *Service[S]) GetAll() *store.View[S] {
	return store.Select[S](s.store, s.model)
}

func (s *Service[S]) dispatch(action domain.Action) error {
	return s.dispatcher.Dispatch(action)
}
