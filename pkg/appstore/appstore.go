package appstore

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"

	"github.com/JRed1989/ambari/internal/logging"
	"github.com/JRed1989/ambari/pkg/config"
	"github.com/JRed1989/ambari/pkg/domain"
	"github.com/JRed1989/ambari/pkg/model"
	"github.com/JRed1989/ambari/pkg/reducer"
	"github.com/JRed1989/ambari/pkg/script"
	"github.com/JRed1989/ambari/pkg/store"
)

// AppStore is the typed shape of the log-search state: one store, one
// reducer and one service per slice.
type AppStore struct {
	Store *store.Store

	AppSettings              *model.ObjectService
	AppState                 *model.ObjectService
	AuditLogs                *model.CollectionService[domain.AuditLog]
	ServiceLogs              *model.CollectionService[domain.ServiceLog]
	ServiceLogsHistogramData *model.CollectionService[domain.BarGraph]
	Graphs                   *model.CollectionService[domain.Graph]
	Hosts                    *model.CollectionService[domain.Node]
	UserConfigs              *model.CollectionService[domain.UserConfig]
	Filters                  *model.CollectionService[domain.Filter]
	Clusters                 *model.CollectionService[string]
	Components               *model.CollectionService[string]
	ServiceLogsFields        *model.CollectionService[domain.ServiceLogField]
	AuditLogsFields          *model.CollectionService[domain.AuditLogField]

	catalog  []SliceInfo
	bindings map[domain.ModelName]binding
	logger   *slog.Logger
}

// Option configures New.
type Option func(*settings)

type settings struct {
	cfg       config.Config
	logger    *slog.Logger
	storeOpts []store.Option
}

// WithConfig seeds the object slices from cfg (default: config.Default()).
func WithConfig(cfg config.Config) Option {
	return func(s *settings) {
		s.cfg = cfg
	}
}

// WithLogger sets the logger of the store and of scripted replays.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithLifecycleHooks forwards observability hooks to the store.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *settings) {
		s.storeOpts = append(s.storeOpts, store.WithLifecycleHooks(hooks))
	}
}

// New builds the store and registers every slice.
func New(opts ...Option) (*AppStore, error) {
	st := settings{
		cfg:    config.Default(),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(&st)
	}

	s := store.New(append([]store.Option{store.WithLogger(st.logger)}, st.storeOpts...)...)
	a := &AppStore{
		Store:    s,
		bindings: make(map[domain.ModelName]binding),
		logger:   st.logger,
	}

	var reducers []reducer.Reducer
	a.AppSettings = object(a, &reducers, AppSettings, st.cfg.AppSettings, domain.AppSettings{})
	a.AppState = object(a, &reducers, AppState, st.cfg.AppState, domain.AppState{})
	a.AuditLogs = collection[domain.AuditLog](a, &reducers, AuditLogs)
	a.ServiceLogs = collection[domain.ServiceLog](a, &reducers, ServiceLogs)
	a.ServiceLogsHistogramData = collection[domain.BarGraph](a, &reducers, ServiceLogsHistogramData)
	a.Graphs = collection[domain.Graph](a, &reducers, Graphs)
	a.Hosts = collection[domain.Node](a, &reducers, Hosts)
	a.UserConfigs = collection[domain.UserConfig](a, &reducers, UserConfigs)
	a.Filters = collection[domain.Filter](a, &reducers, Filters)
	a.Clusters = collection[string](a, &reducers, Clusters)
	a.Components = collection[string](a, &reducers, Components)
	a.ServiceLogsFields = collection[domain.ServiceLogField](a, &reducers, ServiceLogsFields)
	a.AuditLogsFields = collection[domain.AuditLogField](a, &reducers, AuditLogsFields)

	if err := s.Register(reducers...); err != nil {
		return nil, fmt.Errorf("failed to register slices: %w", err)
	}
	return a, nil
}

func collection[T any](a *AppStore, reducers *[]reducer.Reducer, name domain.ModelName) *model.CollectionService[T] {
	*reducers = append(*reducers, reducer.NewCollection[T](name))
	svc := model.NewCollectionService[T](a.Store, name)
	a.bindings[name] = collectionBinding[T]{svc: svc}
	a.catalog = append(a.catalog, SliceInfo{Model: name, Kind: KindCollection, Item: typeName[T]()})
	return svc
}

func object(a *AppStore, reducers *[]reducer.Reducer, name domain.ModelName, defaults domain.Params, shape any) *model.ObjectService {
	*reducers = append(*reducers, reducer.NewObject(name, reducer.WithDefaultParams(defaults)))
	svc := model.NewObjectService(a.Store, name)
	a.bindings[name] = objectBinding{svc: svc}
	a.catalog = append(a.catalog, SliceInfo{Model: name, Kind: KindObject, Item: reflect.TypeOf(shape).String()})
	return svc
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// Slices describes every slice in registration order.
func (a *AppStore) Slices() []SliceInfo {
	return slices.Clone(a.catalog)
}

// Apply dispatches one scripted step through the service of its slice,
// decoding the untyped payload into the slice's item type.
func (a *AppStore) Apply(step script.Step) error {
	t, err := step.Type()
	if err != nil {
		return err
	}
	b, ok := a.bindings[t.Model]
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownModel, t.Model)
	}
	return b.apply(t.Verb, step)
}

// Replay applies steps in order and stops at the first failure.
func (a *AppStore) Replay(steps []script.Step) error {
	for i, step := range steps {
		if err := a.Apply(step); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		a.logger.Debug("replayed step", "index", i+1)
	}
	return nil
}
