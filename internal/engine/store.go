package engine

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/tartampluch/go-yourage/internal/config"
)

// Location is the capability to read and write the page's query string.
// Production code backs it with application preferences; tests use a
// MemoryLocation.
type Location interface {
	ReadQuery() (string, error)
	WriteQuery(query string) error
}

// MemoryLocation is an in-process Location.
type MemoryLocation struct {
	mu    sync.Mutex
	query string
}

// NewMemoryLocation returns a Location holding query.
func NewMemoryLocation(query string) *MemoryLocation {
	return &MemoryLocation{query: query}
}

// ReadQuery returns the stored query string.
func (m *MemoryLocation) ReadQuery() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.query, nil
}

// WriteQuery replaces the stored query string.
func (m *MemoryLocation) WriteQuery(query string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.query = query
	return nil
}

// ErrStoreStopped is returned by Dispatch once Run has returned.
var ErrStoreStopped = errors.New(config.ErrStoreStopped)

// Store is the single owner of the widget state. Callbacks never touch the
// state directly: they Dispatch actions, and the Run loop applies them one
// at a time in delivery order.
type Store struct {
	// state uses atomic.Pointer for lock-free reads by renderers
	// while the Run loop swaps in successor snapshots.
	state    atomic.Pointer[State]
	location Location
	actions  chan Action
	done     chan struct{}

	mu          sync.Mutex
	subscribers []func(State)
}

// NewStore decodes the initial state from location and stamps it with clock.
// An unreadable location is logged and treated as an empty query.
func NewStore(clock Clock, location Location) *Store {
	s := &Store{
		location: location,
		actions:  make(chan Action, config.ActionBufferSize),
		done:     make(chan struct{}),
	}

	var query string
	if location != nil {
		q, err := location.ReadQuery()
		if err != nil {
			slog.Warn(config.ErrQueryRead,
				config.LogKeyComponent, config.CompStore,
				config.LogKeyError, err,
			)
		}
		query = q
	}

	initial := NewState(DecodeQuery(query), clock.Now())
	s.state.Store(&initial)

	slog.Debug(config.MsgQueryLoaded,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyQuery, query,
	)
	return s
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	return *s.state.Load()
}

// Subscribe registers fn to receive every new snapshot. fn runs on the Run
// goroutine and must not call Dispatch synchronously with a full queue.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Dispatch queues a for the Run loop. It blocks only while the queue is full.
func (s *Store) Dispatch(ctx context.Context, a Action) error {
	select {
	case <-s.done:
		return ErrStoreStopped
	default:
	}

	select {
	case s.actions <- a:
		return nil
	case <-s.done:
		return ErrStoreStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run applies queued actions until ctx is cancelled.
func (s *Store) Run(ctx context.Context) {
	log := slog.With(config.LogKeyComponent, config.CompStore)
	log.Info(config.MsgStoreStart)
	defer close(s.done)

	for {
		select {
		case <-ctx.Done():
			log.Info(config.MsgStoreStop)
			return
		case a := <-s.actions:
			s.apply(a)
		}
	}
}

// apply performs one transition: reduce, publish, persist, notify.
func (s *Store) apply(a Action) State {
	next, persist := Reduce(s.Snapshot(), a)
	s.state.Store(&next)

	if persist {
		s.persist(next.Query())
		slog.Debug(config.MsgActionApplied,
			config.LogKeyComponent, config.CompStore,
			config.LogKeyAction, a.kind(),
		)
	}

	s.mu.Lock()
	subs := make([]func(State), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next
}

// persist writes the query projection. Failures are logged and swallowed:
// the in-memory transition has already completed.
func (s *Store) persist(p QueryParams) {
	if s.location == nil {
		return
	}
	query := EncodeQuery(p)
	if err := s.location.WriteQuery(query); err != nil {
		slog.Warn(config.ErrQueryWrite,
			config.LogKeyComponent, config.CompStore,
			config.LogKeyQuery, query,
			config.LogKeyError, err,
		)
		return
	}
	slog.Debug(config.MsgQueryPersisted,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyQuery, query,
	)
}
