package script

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/JRed1989/ambari/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of an action script.
type File struct {
	Steps []Step `yaml:"steps" json:"steps"`
}

// Step is one untyped action. Either Action ("ADD_clusters") or Verb and
// Model name the action type; the payload field used depends on the verb.
type Step struct {
	Action string           `yaml:"action,omitempty" json:"action,omitempty"`
	Verb   domain.Verb      `yaml:"verb,omitempty" json:"verb,omitempty"`
	Model  domain.ModelName `yaml:"model,omitempty" json:"model,omitempty"`

	Items  []any         `yaml:"items,omitempty" json:"items,omitempty"`   // ADD
	Item   any           `yaml:"item,omitempty" json:"item,omitempty"`     // DELETE_OBJECT, DELETE_PRIMITIVE
	Params domain.Params `yaml:"params,omitempty" json:"params,omitempty"` // SET
}

// Type resolves the step's action type.
func (s Step) Type() (domain.ActionType, error) {
	if s.Action != "" {
		t, ok := domain.ParseActionType(s.Action)
		if !ok {
			return domain.ActionType{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedVerb, s.Action)
		}
		return t, nil
	}

	if s.Model == "" {
		return domain.ActionType{}, fmt.Errorf("step %s has no model", s.Verb)
	}
	for _, v := range domain.Verbs {
		if v == s.Verb {
			return domain.NewActionType(v, s.Model), nil
		}
	}
	return domain.ActionType{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedVerb, s.Verb)
}

// Load reads a script file (YAML or JSON).
func Load(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		var f File
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
		return f.Steps, validate(f.Steps)
	}
	return Parse(data)
}

// Parse decodes a YAML script.
func Parse(data []byte) ([]Step, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	return f.Steps, validate(f.Steps)
}

func validate(steps []Step) error {
	for i, s := range steps {
		if _, err := s.Type(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

// Decode converts a raw payload value (scalar or map) into T.
// Scalars are converted weakly, so "3" fills an int.
func Decode[T any](raw any) (T, error) {
	var out T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return out, err
	}
	if err := decoder.Decode(raw); err != nil {
		return out, fmt.Errorf("failed to decode %T: %w", out, err)
	}
	return out, nil
}

// DecodeAll converts every raw value of items into T.
func DecodeAll[T any](items []any) ([]T, error) {
	out := make([]T, 0, len(items))
	for i, raw := range items {
		v, err := Decode[T](raw)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
