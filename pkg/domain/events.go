package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventDispatch    EventType = "dispatch"
	EventSliceChange EventType = "slice_change"
	EventReduceError EventType = "reduce_error"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// DispatchEvent describes one action handed to the store.
type DispatchEvent struct {
	EventBase
	Action ActionType  `json:"action"`
	Models []ModelName `json:"models,omitempty"` // Slices whose state changed
	Err    error       `json:"-"`
}

// SliceEvent describes a committed change of one slice.
type SliceEvent struct {
	EventBase
	Model  ModelName  `json:"model"`
	Action ActionType `json:"action"`
}

// LifecycleHooks defines callbacks for store observability.
type LifecycleHooks struct {
	OnDispatch    func(context.Context, *DispatchEvent)
	OnSliceChange func(context.Context, *SliceEvent)
	OnReduceError func(context.Context, *DispatchEvent)
}
