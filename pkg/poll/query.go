// Package poll provides a read-through cache that refreshes itself on an interval.
//
// A Query holds the last successful result of a fetch function together with
// the error of the most recent attempt. Failed fetches never discard data that
// was already loaded, and a later successful fetch clears the error.
package poll

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval matches the refresh period of the on-chain views
const DefaultInterval = 30 * time.Second

// Fetcher loads a fresh value
type Fetcher[T any] func(ctx context.Context) (T, error)

// State is a snapshot of a Query
type State[T any] struct {
	Data T
	// HasData is true once any fetch has succeeded
	HasData bool
	// IsLoading is true while the first fetch is in flight
	IsLoading bool
	// IsFetching is true while any fetch is in flight
	IsFetching bool
	Err        error
	UpdatedAt  time.Time
}

// Query caches the result of a Fetcher
type Query[T any] struct {
	fetch    Fetcher[T]
	interval time.Duration
	now      func() time.Time

	fetchMu sync.Mutex

	mu      sync.RWMutex
	state   State[T]
	subs    map[int]chan struct{}
	nextSub int

	runMu   sync.Mutex
	running bool
}

// Option configures a Query
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the clock used for UpdatedAt
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New creates a Query. A non-positive interval falls back to DefaultInterval.
func New[T any](fetch Fetcher[T], interval time.Duration, opts ...Option) *Query[T] {
	if interval <= 0 {
		interval = DefaultInterval
	}
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Query[T]{
		fetch:    fetch,
		interval: interval,
		now:      o.now,
		subs:     make(map[int]chan struct{}),
	}
}

// Interval returns the refresh period
func (q *Query[T]) Interval() time.Duration {
	return q.interval
}

// State returns the current snapshot
func (q *Query[T]) State() State[T] {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.state
}

// Data returns the cached value and whether one has been loaded
func (q *Query[T]) Data() (T, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.state.Data, q.state.HasData
}

// Refetch runs the fetcher now and returns its result. Concurrent refetches
// are serialised so snapshots are applied in order.
func (q *Query[T]) Refetch(ctx context.Context) (T, error) {
	q.fetchMu.Lock()
	defer q.fetchMu.Unlock()

	q.update(func(s *State[T]) {
		s.IsFetching = true
		s.IsLoading = !s.HasData
	})

	data, err := q.fetch(ctx)

	q.update(func(s *State[T]) {
		s.IsFetching = false
		s.IsLoading = false
		s.Err = err
		if err == nil {
			s.Data = data
			s.HasData = true
			s.UpdatedAt = q.now()
		}
	})
	return data, err
}

// Run fetches immediately and then once per interval until ctx is done.
// Only one Run loop may be active per Query; extra calls return at once.
func (q *Query[T]) Run(ctx context.Context) {
	q.runMu.Lock()
	if q.running {
		q.runMu.Unlock()
		return
	}
	q.running = true
	q.runMu.Unlock()

	defer func() {
		q.runMu.Lock()
		q.running = false
		q.runMu.Unlock()
	}()

	ticker := time.NewTicker(q.interval)
	defer ticker.Stop()

	for {
		_, _ = q.Refetch(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Start runs the polling loop in a goroutine. The returned function cancels
// it and waits for the goroutine to exit.
func (q *Query[T]) Start(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		q.Run(ctx)
	}()
	return func() {
		cancel()
		<-done
	}
}

// Subscribe returns a channel that receives a signal after every state
// change. Signals coalesce, so a slow reader only sees the latest state.
func (q *Query[T]) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	q.mu.Lock()
	id := q.nextSub
	q.nextSub++
	q.subs[id] = ch
	q.mu.Unlock()

	return ch, func() {
		q.mu.Lock()
		delete(q.subs, id)
		q.mu.Unlock()
	}
}

func (q *Query[T]) update(fn func(*State[T])) {
	q.mu.Lock()
	fn(&q.state)
	for _, ch := range q.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	q.mu.Unlock()
}
