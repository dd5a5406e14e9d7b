package model_test

import (
	"testing"

	"github.com/JRed1989/ambari/pkg/domain"
	"github.com/JRed1989/ambari/pkg/model"
	"github.com/JRed1989/ambari/pkg/reducer"
	"github.com/JRed1989/ambari/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettings(t *testing.T) (*store.Store, *model.ObjectService) {
	t.Helper()
	s := store.New()
	require.NoError(t, s.Register(reducer.NewObject("appSettings", reducer.WithDefaultParams(domain.Params{"timeZone": "UTC"}))))
	return s, model.NewObjectService(s, "appSettings")
}

func TestObjectService_SetParameter(t *testing.T) {
	d := new(MockDispatcher)
	svc := model.NewObjectService(store.New(), "appState", model.WithDispatcher(d))

	d.On("Dispatch", domain.Set{Model: "appState", Params: domain.Params{"isAuthorized": true}}).Return(nil).Once()
	d.On("Dispatch", domain.Set{Model: "appState", Params: domain.Params{"a": 1, "b": 2}}).Return(nil).Once()

	require.NoError(t, svc.SetParameter("isAuthorized", true))
	require.NoError(t, svc.SetParameters(domain.Params{"a": 1, "b": 2}))
	d.AssertExpectations(t)
}

func TestObjectService_GetParameter(t *testing.T) {
	_, svc := newSettings(t)

	var zones []any
	sub := svc.GetParameter("timeZone").Subscribe(func(v any) { zones = append(zones, v) })
	defer sub.Unsubscribe()

	var sizes []int
	model.Parameter[int](svc, "pageSize").Subscribe(func(v int) { sizes = append(sizes, v) })

	require.NoError(t, svc.SetParameter("pageSize", 25))
	require.NoError(t, svc.SetParameter("timeZone", "Europe/Budapest"))

	assert.Equal(t, []any{"UTC", "Europe/Budapest"}, zones)
	assert.Equal(t, []int{0, 25}, sizes)
	assert.Equal(t, domain.Params{"timeZone": "Europe/Budapest", "pageSize": 25}, svc.GetAll().Current())
}

func TestObjectService_StructRoundTrip(t *testing.T) {
	_, svc := newSettings(t)

	require.NoError(t, svc.SetStruct(domain.AppSettings{LogsType: "serviceLogs", PageSize: 100, DarkMode: true}))

	params := svc.GetAll().Current()
	assert.Equal(t, "serviceLogs", params["logsType"])
	assert.NotContains(t, params, "sortingField", "omitempty fields are not written")

	require.NoError(t, svc.SetParameter("pageSize", "50"))

	var settings domain.AppSettings
	require.NoError(t, svc.Decode(&settings))
	assert.Equal(t, domain.AppSettings{Timezone: "", LogsType: "serviceLogs", PageSize: 50, DarkMode: true}, settings)
}

func TestObjectService_DecodeRejectsBadTarget(t *testing.T) {
	_, svc := newSettings(t)
	assert.Error(t, svc.Decode(domain.AppSettings{}))
}
