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

func TestService_GetAll(t *testing.T) {
	s := store.New()
	require.NoError(t, s.Register(reducer.NewCollection[string]("components")))

	svc := model.NewService[[]string](s, "components")
	assert.Equal(t, domain.ModelName("components"), svc.Model())

	view := svc.GetAll()
	assert.Equal(t, domain.ModelName("components"), view.Model())

	var got [][]string
	sub := view.Subscribe(func(v []string) { got = append(got, v) })
	defer sub.Unsubscribe()

	require.NoError(t, s.Dispatch(domain.Add[string]{Model: "components", Items: []string{"kafka_broker"}}))

	assert.Equal(t, [][]string{{}, {"kafka_broker"}}, got)
	assert.Equal(t, []string{"kafka_broker"}, view.Current())
}
