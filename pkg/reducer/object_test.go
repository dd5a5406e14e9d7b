package reducer_test

import (
	"reflect"
	"testing"

	"github.com/JRed1989/ambari/pkg/domain"
	"github.com/JRed1989/ambari/pkg/reducer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_Set(t *testing.T) {
	r := reducer.NewObject("appSettings")

	tests := []struct {
		name   string
		state  domain.Params
		params domain.Params
		want   domain.Params
	}{
		{
			name:   "Adds new keys",
			state:  domain.Params{"a": 1},
			params: domain.Params{"b": 2},
			want:   domain.Params{"a": 1, "b": 2},
		},
		{
			name:   "Overwrites existing keys",
			state:  domain.Params{"a": 1, "b": 2},
			params: domain.Params{"a": 9},
			want:   domain.Params{"a": 9, "b": 2},
		},
		{
			name:   "Shallow merge replaces nested values",
			state:  domain.Params{"n": map[string]any{"x": 1, "y": 2}},
			params: domain.Params{"n": map[string]any{"x": 3}},
			want:   domain.Params{"n": map[string]any{"x": 3}},
		},
		{
			name:   "Nil payload still copies",
			state:  domain.Params{"a": 1},
			params: nil,
			want:   domain.Params{"a": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Apply(tt.state, domain.Set{Model: "appSettings", Params: tt.params})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotEqual(t, reflect.ValueOf(tt.state).Pointer(), reflect.ValueOf(got).Pointer())
		})
	}
}

func TestObject_SetDoesNotMutateInput(t *testing.T) {
	r := reducer.NewObject("appState")
	state := domain.Params{"isAuthorized": false}

	_, err := r.Apply(state, domain.Set{Model: "appState", Params: domain.Params{"isAuthorized": true}})
	require.NoError(t, err)
	assert.Equal(t, domain.Params{"isAuthorized": false}, state)
}

func TestObject_Unmatched(t *testing.T) {
	r := reducer.NewObject("appState")
	state := domain.Params{"a": 1}

	for _, action := range []domain.Action{
		domain.Unknown{Name: "UNKNOWN_X"},
		domain.Set{Model: "appSettings", Params: domain.Params{"a": 2}},
		domain.Clear{Model: "appState"},
	} {
		got, err := r.Apply(state, action)
		require.NoError(t, err)
		assert.Equal(t, reflect.ValueOf(state).Pointer(), reflect.ValueOf(got).Pointer())

		next, changed, err := r.Reduce(state, action)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, reflect.ValueOf(state).Pointer(), reflect.ValueOf(next).Pointer())
	}
}

func TestObject_Default(t *testing.T) {
	r := reducer.NewObject("appSettings", reducer.WithDefaultParams(domain.Params{"timeZone": "UTC"}))

	got, err := r.Apply(nil, domain.Set{Model: "appSettings", Params: domain.Params{"pageSize": 50}})
	require.NoError(t, err)
	assert.Equal(t, domain.Params{"timeZone": "UTC", "pageSize": 50}, got)

	assert.Equal(t, domain.Params{}, reducer.NewObject("x").Initial())
}

func TestObject_Scenario(t *testing.T) {
	r := reducer.NewObject("obj")

	state, err := r.Apply(domain.Params{"a": 1}, domain.Set{Model: "obj", Params: domain.Params{"b": 2}})
	require.NoError(t, err)
	assert.Equal(t, domain.Params{"a": 1, "b": 2}, state)

	state, err = r.Apply(state, domain.Set{Model: "obj", Params: domain.Params{"a": 9}})
	require.NoError(t, err)
	assert.Equal(t, domain.Params{"a": 9, "b": 2}, state)
}

func TestObject_RejectsForeignState(t *testing.T) {
	r := reducer.NewObject("obj")
	_, _, err := r.Reduce([]string{"x"}, domain.Set{Model: "obj"})
	assert.ErrorIs(t, err, domain.ErrPayloadType)
}
