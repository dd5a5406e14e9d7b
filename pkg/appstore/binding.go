package appstore

import (
	"fmt"

	"github.com/JRed1989/ambari/pkg/domain"
	"github.com/JRed1989/ambari/pkg/model"
	"github.com/JRed1989/ambari/pkg/script"
)

// binding turns an untyped step into a typed service call.
type binding interface {
	apply(verb domain.Verb, step script.Step) error
}

type collectionBinding[T any] struct {
	svc *model.CollectionService[T]
}

func (b collectionBinding[T]) apply(verb domain.Verb, step script.Step) error {
	switch verb {
	case domain.VerbAdd:
		items, err := script.DecodeAll[T](step.Items)
		if err != nil {
			return err
		}
		return b.svc.AddInstances(items)

	case domain.VerbDeleteObject, domain.VerbDeletePrimitive:
		item, err := script.Decode[T](step.Item)
		if err != nil {
			return err
		}
		if verb == domain.VerbDeleteObject {
			return b.svc.DeleteObjectInstance(item)
		}
		return b.svc.DeletePrimitiveInstance(item)

	case domain.VerbClear:
		return b.svc.Clear()
	}

	// MAP needs a function and cannot be scripted.
	return fmt.Errorf("%w: %s on collection %q", domain.ErrUnsupportedVerb, verb, b.svc.Model())
}

type objectBinding struct {
	svc *model.ObjectService
}

func (b objectBinding) apply(verb domain.Verb, step script.Step) error {
	if verb != domain.VerbSet {
		return fmt.Errorf("%w: %s on object %q", domain.ErrUnsupportedVerb, verb, b.svc.Model())
	}
	return b.svc.SetParameters(step.Params)
}
