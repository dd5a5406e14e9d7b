package domain

import "errors"

// ErrPayloadType is returned when an action addresses a slice with a payload of the wrong element type.
var ErrPayloadType = errors.New("payload type mismatch")

// ErrNoIdentity is returned when DELETE_OBJECT targets a collection whose items carry no id.
var ErrNoIdentity = errors.New("collection items have no identity")

// ErrDuplicateModel is returned when two reducers are registered for the same model name.
var ErrDuplicateModel = errors.New("model already registered")

// ErrUnknownModel is returned when a model name has no registered slice.
var ErrUnknownModel = errors.New("unknown model")

// ErrUnsupportedVerb is returned when a verb cannot be applied to a slice kind.
var ErrUnsupportedVerb = errors.New("unsupported verb")
