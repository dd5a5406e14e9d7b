package model

import (
	"fmt"

	"github.com/JRed1989/ambari/pkg/domain"
	"github.com/JRed1989/ambari/pkg/store"
	"github.com/mitchellh/mapstructure"
)

// ObjectService reads and writes an object slice.
type ObjectService struct {
	Service[domain.Params]
}

// NewObjectService binds an object service to model.
func NewObjectService(s *store.Store, model domain.ModelName, opts ...Option) *ObjectService {
	return &ObjectService{Service: newService[domain.Params](s, model, opts)}
}

// GetParameter returns a push-based view of one key of the slice.
func (o *ObjectService) GetParameter(key string) *store.View[any] {
	return Parameter[any](o, key)
}

// Parameter is GetParameter with a typed value. Values of another type read as zero.
func Parameter[T any](o *ObjectService, key string) *store.View[T] {
	return store.SelectField[T](o.store, o.model, key)
}

// SetParameter sets a single key.
func (o *ObjectService) SetParameter(key string, value any) error {
	return o.SetParameters(domain.Params{key: value})
}

// SetParameters shallow-merges params into the slice.
func (o *ObjectService) SetParameters(params domain.Params) error {
	return o.dispatch(domain.Set{Model: o.model, Params: params})
}

// SetStruct flattens v (a struct with mapstructure tags) into one SET.
func (o *ObjectService) SetStruct(v any) error {
	params := domain.Params{}
	if err := mapstructure.Decode(v, &params); err != nil {
		return fmt.Errorf("failed to flatten %T: %w", v, err)
	}
	return o.SetParameters(params)
}

// Decode copies the current mapping into out, a pointer to a struct with
// mapstructure tags. Scalar types are converted weakly ("50" fills an int).
func (o *ObjectService) Decode(out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(map[string]any(o.GetAll().Current())); err != nil {
		return fmt.Errorf("failed to decode %s: %w", o.model, err)
	}
	return nil
}
