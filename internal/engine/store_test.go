package engine_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-yourage/internal/engine"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// MockLocation records query writes using testify/mock.
type MockLocation struct {
	mock.Mock
}

func (m *MockLocation) ReadQuery() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockLocation) WriteQuery(query string) error {
	return m.Called(query).Error(0)
}

// -----------------------------------------------------------------------------
// Test Setup Helper
// -----------------------------------------------------------------------------

// runStore starts the owner loop and stops it when the test ends.
func runStore(t *testing.T, s *engine.Store) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return ctx
}

// -----------------------------------------------------------------------------
// Test Cases
// -----------------------------------------------------------------------------

func TestNewStore_DecodesInitialQuery(t *testing.T) {
	loc := engine.NewMemoryLocation("?name=Ada&birthday=1815-12-10")

	s := engine.NewStore(MockClock{CurrentTime: t0}, loc)

	snap := s.Snapshot()
	assert.Equal(t, "Ada", snap.Name)
	assert.Equal(t, adaBirth, snap.Birthday)
	assert.Equal(t, t0, snap.CurrentTime)
}

func TestNewStore_UnreadableLocation(t *testing.T) {
	loc := new(MockLocation)
	loc.On("ReadQuery").Return("", errors.New("no page"))

	s := engine.NewStore(MockClock{CurrentTime: t0}, loc)

	assert.Equal(t, engine.State{CurrentTime: t0}, s.Snapshot())
	loc.AssertExpectations(t)
}

// TestStore_EndToEnd walks the reference scenario: name, birthday, then a tick
// one day after the birthday.
func TestStore_EndToEnd(t *testing.T) {
	loc := engine.NewMemoryLocation("")
	s := engine.NewStore(MockClock{CurrentTime: t0}, loc)
	ctx := runStore(t, s)

	tickAt := time.Date(1990, 6, 16, 0, 0, 0, 0, time.Local)

	require.NoError(t, s.Dispatch(ctx, engine.UpdateName{Text: "Ada"}))
	require.NoError(t, s.Dispatch(ctx, engine.UpdateBirthday{Text: "1990-06-15"}))
	require.NoError(t, s.Dispatch(ctx, engine.Tick{At: tickAt}))

	require.Eventually(t, func() bool {
		return s.Snapshot().CurrentTime.Equal(tickAt)
	}, 2*time.Second, 5*time.Millisecond)

	view := engine.NewView(s.Snapshot())
	require.True(t, view.HasAge)
	assert.Equal(t, int64(1), view.Age.Days)
	assert.Equal(t, "1 day old", view.Lines[2].String())

	q, err := loc.ReadQuery()
	require.NoError(t, err)
	assert.Equal(t, engine.QueryParams{
		Name:     "Ada",
		Birthday: engine.Date{Year: 1990, Month: time.June, Day: 15},
	}, engine.DecodeQuery(q))
}

func TestStore_TickDoesNotPersist(t *testing.T) {
	loc := new(MockLocation)
	loc.On("ReadQuery").Return("name=Ada", nil)
	// No WriteQuery expectation: any call fails the test.

	s := engine.NewStore(MockClock{CurrentTime: t0}, loc)
	ctx := runStore(t, s)

	last := t0.Add(3 * time.Second)
	for i := 1; i <= 3; i++ {
		require.NoError(t, s.Dispatch(ctx, engine.Tick{At: t0.Add(time.Duration(i) * time.Second)}))
	}

	require.Eventually(t, func() bool {
		return s.Snapshot().CurrentTime.Equal(last)
	}, 2*time.Second, 5*time.Millisecond)

	assert.Equal(t, "Ada", s.Snapshot().Name)
	loc.AssertExpectations(t)
	loc.AssertNotCalled(t, "WriteQuery", mock.Anything)
}

// TestStore_PersistFailureDoesNotBlock checks that a failing location never
// prevents the transition.
func TestStore_PersistFailureDoesNotBlock(t *testing.T) {
	loc := new(MockLocation)
	loc.On("ReadQuery").Return("", nil)
	loc.On("WriteQuery", "name=Grace").Return(errors.New("location unavailable"))

	s := engine.NewStore(MockClock{CurrentTime: t0}, loc)
	ctx := runStore(t, s)

	require.NoError(t, s.Dispatch(ctx, engine.UpdateName{Text: "Grace"}))

	require.Eventually(t, func() bool {
		return s.Snapshot().Name == "Grace"
	}, 2*time.Second, 5*time.Millisecond)
	loc.AssertExpectations(t)
}

// TestStore_OrderPreserved fires many edits and checks the last one wins and
// subscribers see them in delivery order.
func TestStore_OrderPreserved(t *testing.T) {
	s := engine.NewStore(MockClock{CurrentTime: t0}, engine.NewMemoryLocation(""))

	var mu sync.Mutex
	var seen []string
	s.Subscribe(func(st engine.State) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, st.Name)
	})

	ctx := runStore(t, s)

	names := []string{"A", "Ad", "Ada", "Ada ", "Ada L"}
	for _, n := range names {
		require.NoError(t, s.Dispatch(ctx, engine.UpdateName{Text: n}))
	}

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == len(names)
	}, 2*time.Second, 5*time.Millisecond)

	mu.Lock()
	assert.Equal(t, names, seen)
	mu.Unlock()
	assert.Equal(t, "Ada L", s.Snapshot().Name)
}

func TestStore_DispatchAfterStop(t *testing.T) {
	s := engine.NewStore(MockClock{CurrentTime: t0}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()
	cancel()
	<-done

	err := s.Dispatch(context.Background(), engine.UpdateName{Text: "late"})
	assert.ErrorIs(t, err, engine.ErrStoreStopped)
}
