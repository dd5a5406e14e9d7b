package domain

import (
	"strings"
)

// Verb is the operation part of an action type.
type Verb string

// Collection verbs operate on sequence-valued slices, VerbSet on mapping-valued ones.
const (
	VerbAdd             Verb = "ADD"
	VerbDeletePrimitive Verb = "DELETE_PRIMITIVE"
	VerbDeleteObject    Verb = "DELETE_OBJECT"
	VerbClear           Verb = "CLEAR"
	VerbMap             Verb = "MAP"
	VerbSet             Verb = "SET"
)

// Verbs lists every known verb.
var Verbs = []Verb{
	VerbDeletePrimitive,
	VerbDeleteObject,
	VerbAdd,
	VerbClear,
	VerbMap,
	VerbSet,
}

// IsCollection reports whether the verb applies to collection slices.
func (v Verb) IsCollection() bool {
	switch v {
	case VerbAdd, VerbDeletePrimitive, VerbDeleteObject, VerbClear, VerbMap:
		return true
	}
	return false
}

// ModelName identifies one slice of the application state.
type ModelName string

// ActionType is the (verb, model) key a reducer matches on.
type ActionType struct {
	Verb  Verb
	Model ModelName
}

// NewActionType builds the key for verb applied to model.
func NewActionType(verb Verb, model ModelName) ActionType {
	return ActionType{Verb: verb, Model: model}
}

// String renders the type as "<VERB>_<model>".
func (t ActionType) String() string {
	if t.Model == "" {
		return string(t.Verb)
	}
	return string(t.Verb) + "_" + string(t.Model)
}

// ParseActionType splits a rendered action type back into verb and model.
// It returns false when s does not start with a known verb.
func ParseActionType(s string) (ActionType, bool) {
	for _, v := range Verbs {
		prefix := string(v) + "_"
		if strings.HasPrefix(s, prefix) && len(s) > len(prefix) {
			return ActionType{Verb: v, Model: ModelName(s[len(prefix):])}, true
		}
	}
	return ActionType{}, false
}

// Action is a request to transition one slice of state.
type Action interface {
	Type() ActionType
}

// Identified is implemented by collection items that carry an id.
type Identified interface {
	EntityID() string
}

// Params is the state of an object slice.
type Params map[string]any

// Add appends Items to the end of a collection.
type Add[T any] struct {
	Model ModelName
	Items []T
}

func (a Add[T]) Type() ActionType { return NewActionType(VerbAdd, a.Model) }

// DeleteObject removes every element sharing Item's identity.
type DeleteObject[T any] struct {
	Model ModelName
	Item  T
}

func (a DeleteObject[T]) Type() ActionType { return NewActionType(VerbDeleteObject, a.Model) }

// DeletePrimitive removes every element equal to Item.
type DeletePrimitive[T any] struct {
	Model ModelName
	Item  T
}

func (a DeletePrimitive[T]) Type() ActionType { return NewActionType(VerbDeletePrimitive, a.Model) }

// Clear empties a collection.
type Clear struct {
	Model ModelName
}

func (a Clear) Type() ActionType { return NewActionType(VerbClear, a.Model) }

// Map replaces every element with Modifier(element).
type Map[T any] struct {
	Model    ModelName
	Modifier func(T) T
}

func (a Map[T]) Type() ActionType { return NewActionType(VerbMap, a.Model) }

// Set shallow-merges Params into an object slice.
type Set struct {
	Model  ModelName
	Params Params
}

func (a Set) Type() ActionType { return NewActionType(VerbSet, a.Model) }

// Unknown carries an arbitrary type string. No reducer matches it.
type Unknown struct {
	Name string
}

// Type keeps the whole name as the verb so it never collides with a model key.
func (a Unknown) Type() ActionType { return ActionType{Verb: Verb(a.Name)} }
