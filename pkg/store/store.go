package store

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/JRed1989/ambari/internal/logging"
	"github.com/JRed1989/ambari/pkg/domain"
	"github.com/JRed1989/ambari/pkg/ports"
	"github.com/JRed1989/ambari/pkg/reducer"
)

var _ ports.ActionDispatcher = (*Store)(nil)

// Store holds every slice of application state and the reducers that own them.
type Store struct {
	mu       sync.Mutex
	reducers []reducer.Reducer
	state    map[domain.ModelName]any
	subs     map[domain.ModelName][]*Subscription

	// Notifications committed but not yet delivered, in commit order.
	pending    []delivery
	delivering bool

	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

type delivery struct {
	sub   *Subscription
	value any
}

// New creates an empty store. Slices appear once their reducer is registered.
func New(opts ...Option) *Store {
	s := &Store{
		state:  make(map[domain.ModelName]any),
		subs:   make(map[domain.ModelName][]*Subscription),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	return s
}

// Register adds reducers and seeds their slices with the reducers' initial state.
// If any model name is already taken, nothing is registered.
func (s *Store) Register(reducers ...reducer.Reducer) error {
	s.mu.Lock()
	seen := make(map[domain.ModelName]bool, len(reducers))
	for _, r := range reducers {
		m := r.Model()
		if _, exists := s.state[m]; exists || seen[m] {
			s.mu.Unlock()
			s.logger.Error("duplicate model registration", "model", m)
			return fmt.Errorf("register %q: %w", m, domain.ErrDuplicateModel)
		}
		seen[m] = true
	}

	for _, r := range reducers {
		m := r.Model()
		initial := r.Initial()
		s.reducers = append(s.reducers, r)
		s.state[m] = initial
		// Views opened before registration receive the initial value now.
		for _, sub := range s.subs[m] {
			s.enqueue(sub, initial)
		}
		s.logger.Debug("registered slice", "model", m)
	}
	s.mu.Unlock()

	s.flush()
	return nil
}

// Dispatch hands action to every registered reducer.
// See DispatchContext.
func (s *Store) Dispatch(action domain.Action) error {
	return s.DispatchContext(context.Background(), action)
}

// DispatchContext hands action to every registered reducer and commits the
// resulting slices atomically: if one reducer fails, no slice changes and the
// error is returned. Actions nobody handles are silently ignored.
//
// Subscribers of changed slices are notified before DispatchContext returns,
// unless a delivery is already in progress (a subscriber dispatching from its
// callback, or another goroutine): the in-flight delivery then flushes the
// notifications, still in commit order.
//
// ctx is only handed to the lifecycle hooks.
func (s *Store) DispatchContext(ctx context.Context, action domain.Action) error {
	t := action.Type()

	changed, err := s.commit(action)
	if err != nil {
		s.logger.Warn("reducer rejected action", "action", t.String(), "error", err)
		if s.hooks.OnReduceError != nil {
			s.hooks.OnReduceError(ctx, &domain.DispatchEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventReduceError},
				Action:    t,
				Err:       err,
			})
		}
		return err
	}

	if len(changed) == 0 {
		s.logger.Debug("action ignored", "action", t.String())
	} else {
		s.logger.Debug("action dispatched", "action", t.String(), "models", changed)
	}

	if s.hooks.OnDispatch != nil {
		s.hooks.OnDispatch(ctx, &domain.DispatchEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventDispatch},
			Action:    t,
			Models:    changed,
		})
	}
	if s.hooks.OnSliceChange != nil {
		for _, m := range changed {
			s.hooks.OnSliceChange(ctx, &domain.SliceEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventSliceChange},
				Model:     m,
				Action:    t,
			})
		}
	}

	s.flush()
	return nil
}

// commit runs the reducers under the lock. A panicking reducer leaves the state untouched.
func (s *Store) commit(action domain.Action) ([]domain.ModelName, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var changed []domain.ModelName
	next := make(map[domain.ModelName]any)
	for _, r := range s.reducers {
		m := r.Model()
		ns, ok, err := r.Reduce(s.state[m], action)
		if err != nil {
			return nil, fmt.Errorf("reduce %s on %q: %w", action.Type(), m, err)
		}
		if ok {
			next[m] = ns
			changed = append(changed, m)
		}
	}

	for _, m := range changed {
		ns := next[m]
		s.state[m] = ns
		for _, sub := range s.subs[m] {
			s.enqueue(sub, ns)
		}
	}
	return changed, nil
}

// enqueue schedules the projected value for sub. Caller holds s.mu.
func (s *Store) enqueue(sub *Subscription, state any) {
	value := sub.project(state)
	if sub.distinct && sub.seen && sub.equal(sub.last, value) {
		return
	}
	sub.last = value
	sub.seen = true
	s.pending = append(s.pending, delivery{sub: sub, value: value})
}

// flush delivers pending notifications unless another call is already doing so.
// A panicking callback does not stop delivery to the other subscribers; the
// first panic is re-raised once the queue is drained.
func (s *Store) flush() {
	s.mu.Lock()
	if s.delivering {
		s.mu.Unlock()
		return
	}
	s.delivering = true
	s.mu.Unlock()

	var (
		failure  any
		panicked bool
	)
	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.delivering = false
			s.mu.Unlock()
			break
		}
		batch := s.pending
		s.pending = nil
		s.mu.Unlock()

		for _, d := range batch {
			if d.sub.closed.Load() {
				continue
			}
			if r, ok := d.run(); ok && !panicked {
				failure, panicked = r, true
			}
		}
	}

	if panicked {
		panic(failure)
	}
}

// run calls the subscriber and reports a recovered panic.
func (d delivery) run() (recovered any, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			recovered, panicked = r, true
		}
	}()
	d.sub.deliver(d.value)
	return nil, false
}

// Snapshot returns the current value of every slice.
// The values are shared with the store and must not be modified.
func (s *Store) Snapshot() map[domain.ModelName]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[domain.ModelName]any, len(s.state))
	for k, v := range s.state {
		out[k] = v
	}
	return out
}

// Models returns the registered slice names, sorted.
func (s *Store) Models() []domain.ModelName {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]domain.ModelName, 0, len(s.state))
	for k := range s.state {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// Get returns the current value of one slice.
func (s *Store) Get(model domain.ModelName) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.state[model]
	return v, ok
}

func (s *Store) subscribe(sub *Subscription) {
	s.mu.Lock()
	s.subs[sub.model] = append(s.subs[sub.model], sub)
	if cur, ok := s.state[sub.model]; ok {
		s.enqueue(sub, cur)
	}
	s.mu.Unlock()

	s.flush()
}

func (s *Store) unsubscribe(sub *Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs := s.subs[sub.model]
	for i, candidate := range subs {
		if candidate == sub {
			s.subs[sub.model] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(s.subs[sub.model]) == 0 {
		delete(s.subs, sub.model)
	}
}
