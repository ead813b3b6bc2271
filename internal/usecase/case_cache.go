package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/trebuchet-org/arbiter/internal/config"
	"github.com/trebuchet-org/arbiter/internal/domain"
	"github.com/trebuchet-org/arbiter/pkg/poll"
)

// CaseCache holds one polled query per contract read so that every view
// of a case shares the same data and refetches
type CaseCache struct {
	reader   CaseReader
	interval time.Duration
	clock    Clock

	mu      sync.Mutex
	count   *poll.Query[uint64]
	cases   map[uint64]*poll.Query[*domain.Case]
	results map[uint64]*poll.Query[*domain.CaseResult]
	ctx     context.Context
	stops   []func()
}

// NewCaseCache creates a new CaseCache
func NewCaseCache(cfg *config.RuntimeConfig, reader CaseReader, clock Clock) *CaseCache {
	if clock == nil {
		clock = time.Now
	}
	c := &CaseCache{
		reader:   reader,
		interval: cfg.PollInterval,
		clock:    clock,
		cases:    make(map[uint64]*poll.Query[*domain.Case]),
		results:  make(map[uint64]*poll.Query[*domain.CaseResult]),
	}
	c.count = poll.New(reader.CurrentCaseNum, c.interval, poll.WithClock(clock))
	return c
}

// Count is the currentCaseNum query
func (c *CaseCache) Count() *poll.Query[uint64] {
	return c.count
}

// Case returns the query for one case struct
func (c *CaseCache) Case(number uint64) *poll.Query[*domain.Case] {
	c.mu.Lock()
	defer c.mu.Unlock()
	q, ok := c.cases[number]
	if !ok {
		q = poll.New(func(ctx context.Context) (*domain.Case, error) {
			return c.reader.Case(ctx, number)
		}, c.interval, poll.WithClock(c.clock))
		c.cases[number] = q
		c.startLocked(q.Start)
	}
	return q
}

// Result returns the query for one case result
func (c *CaseCache) Result(number uint64) *poll.Query[*domain.CaseResult] {
	c.mu.Lock()
	defer c.mu.Unlock()
	q, ok := c.results[number]
	if !ok {
		q = poll.New(func(ctx context.Context) (*domain.CaseResult, error) {
			return c.reader.CaseResult(ctx, number)
		}, c.interval, poll.WithClock(c.clock))
		c.results[number] = q
		c.startLocked(q.Start)
	}
	return q
}

// Refresh refetches the case and its result, typically after a confirmed write
func (c *CaseCache) Refresh(ctx context.Context, number uint64) error {
	if _, err := c.Case(number).Refetch(ctx); err != nil {
		return err
	}
	_, err := c.Result(number).Refetch(ctx)
	return err
}

// Start begins background polling of every query, including queries
// created later. The returned func stops all pollers.
func (c *CaseCache) Start(ctx context.Context) func() {
	c.mu.Lock()
	c.ctx = ctx
	c.startLocked(c.count.Start)
	for _, q := range c.cases {
		c.startLocked(q.Start)
	}
	for _, q := range c.results {
		c.startLocked(q.Start)
	}
	c.mu.Unlock()

	return c.stop
}

func (c *CaseCache) startLocked(start func(context.Context) func()) {
	if c.ctx == nil {
		return
	}
	c.stops = append(c.stops, start(c.ctx))
}

func (c *CaseCache) stop() {
	c.mu.Lock()
	stops := c.stops
	c.stops = nil
	c.ctx = nil
	c.mu.Unlock()

	for _, stop := range stops {
		stop()
	}
}
