package model_test

import (
	"strings"
	"testing"

	"github.com/JRed1989/ambari/pkg/domain"
	"github.com/JRed1989/ambari/pkg/model"
	"github.com/JRed1989/ambari/pkg/reducer"
	"github.com/JRed1989/ambari/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDispatcher records submitted actions.
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(action domain.Action) error {
	args := m.Called(action)
	return args.Error(0)
}

func TestCollectionService_EmitsOneActionPerCall(t *testing.T) {
	d := new(MockDispatcher)
	svc := model.NewCollectionService[domain.ServiceLog](store.New(), "serviceLogs", model.WithDispatcher(d))

	log1 := domain.ServiceLog{ID: "1", Level: "ERROR"}
	log2 := domain.ServiceLog{ID: "2", Level: "WARN"}

	d.On("Dispatch", domain.Add[domain.ServiceLog]{Model: "serviceLogs", Items: []domain.ServiceLog{log1}}).Return(nil).Once()
	d.On("Dispatch", domain.Add[domain.ServiceLog]{Model: "serviceLogs", Items: []domain.ServiceLog{log1, log2}}).Return(nil).Once()
	d.On("Dispatch", domain.DeleteObject[domain.ServiceLog]{Model: "serviceLogs", Item: log1}).Return(nil).Once()
	d.On("Dispatch", domain.DeletePrimitive[domain.ServiceLog]{Model: "serviceLogs", Item: log2}).Return(nil).Once()
	d.On("Dispatch", domain.Clear{Model: "serviceLogs"}).Return(nil).Once()
	d.On("Dispatch", mock.MatchedBy(func(a domain.Map[domain.ServiceLog]) bool {
		return a.Model == "serviceLogs" && a.Modifier != nil
	})).Return(nil).Once()

	require.NoError(t, svc.AddInstance(log1))
	require.NoError(t, svc.AddInstances([]domain.ServiceLog{log1, log2}))
	require.NoError(t, svc.DeleteObjectInstance(log1))
	require.NoError(t, svc.DeletePrimitiveInstance(log2))
	require.NoError(t, svc.Clear())
	require.NoError(t, svc.MapCollection(func(l domain.ServiceLog) domain.ServiceLog { return l }))

	d.AssertExpectations(t)
	d.AssertNumberOfCalls(t, "Dispatch", 6)
}

func TestCollectionService_AgainstStore(t *testing.T) {
	s := store.New()
	require.NoError(t, s.Register(reducer.NewCollection[domain.AuditLog]("auditLogs")))

	writer := model.NewCollectionService[domain.AuditLog](s, "auditLogs")
	reader := model.NewCollectionService[domain.AuditLog](s, "auditLogs")

	var seen [][]domain.AuditLog
	sub := reader.GetAll().Subscribe(func(v []domain.AuditLog) { seen = append(seen, v) })
	defer sub.Unsubscribe()

	require.NoError(t, writer.AddInstances([]domain.AuditLog{{ID: "1", ReqUser: "admin"}, {ID: "2", ReqUser: "guest"}}))
	require.NoError(t, writer.DeleteObjectInstance(domain.AuditLog{ID: "1"}))
	require.NoError(t, writer.MapCollection(func(l domain.AuditLog) domain.AuditLog {
		l.ReqUser = strings.ToUpper(l.ReqUser)
		return l
	}))

	require.Len(t, seen, 4)
	assert.Empty(t, seen[0])
	assert.Equal(t, []domain.AuditLog{{ID: "2", ReqUser: "GUEST"}}, seen[3])
	assert.Equal(t, domain.ModelName("auditLogs"), reader.Model())

	require.NoError(t, writer.Clear())
	assert.Empty(t, reader.GetAll().Current())
}

func TestCollectionService_Primitives(t *testing.T) {
	s := store.New()
	require.NoError(t, s.Register(reducer.NewCollection[string]("clusters")))
	clusters := model.NewCollectionService[string](s, "clusters")

	require.NoError(t, clusters.AddInstances([]string{"cl1", "cl2", "cl1"}))
	require.NoError(t, clusters.DeletePrimitiveInstance("cl1"))
	assert.Equal(t, []string{"cl2"}, clusters.GetAll().Current())

	err := clusters.DeleteObjectInstance("cl2")
	assert.ErrorIs(t, err, domain.ErrNoIdentity)
	assert.Equal(t, []string{"cl2"}, clusters.GetAll().Current())
}

func TestCollectionService_UnregisteredModelIsSilent(t *testing.T) {
	s := store.New()
	svc := model.NewCollectionService[string](s, "nobody")

	assert.NoError(t, svc.AddInstance("x"))
	assert.Nil(t, svc.GetAll().Current())
}
