package metrics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"orusconsole/internal/models"

	"go.uber.org/zap"
)

// Source loads the metrics snapshot for a range.
type Source interface {
	DashboardMetrics(ctx context.Context, r models.DateRange) (*models.DashboardMetrics, error)
}

type Loading struct {
	Message string `json:"message"`
}

// Model is what the card renders. While a fetch is pending only Loading is
// set.
type Model struct {
	Period  Period           `json:"period"`
	Periods []Period         `json:"periods"`
	Range   models.DateRange `json:"range"`
	Loading *Loading         `json:"loading,omitempty"`
	Chart   []Point          `json:"chart,omitempty"`
	Summary []Tile           `json:"summary,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// Card is one mounted metrics card. Each selection starts a fetch; only the
// newest selection's response is ever applied.
type Card struct {
	source Source
	logger *zap.Logger
	now    func() time.Time

	mu         sync.Mutex
	period     Period
	rng        models.DateRange
	generation uint64
	cancel     context.CancelFunc
	pending    bool
	done       chan struct{}
	metrics    *models.DashboardMetrics
	err        error
}

type Option func(*Card)

// WithClock replaces time.Now for range computation.
func WithClock(now func() time.Time) Option {
	return func(c *Card) { c.now = now }
}

// NewCard mounts a card on the default period and starts its first fetch.
func NewCard(source Source, logger *zap.Logger, opts ...Option) *Card {
	c := &Card{
		source: source,
		logger: logger,
		now:    time.Now,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Select(DefaultPeriod)
	return c
}

// Select switches the card to p, cancelling any fetch still in flight.
func (c *Card) Select(p Period) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	}
	if c.pending {
		close(c.done)
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.generation++
	c.period = p
	c.rng = RangeFor(p, c.now())
	c.cancel = cancel
	c.pending = true
	c.done = make(chan struct{})
	c.metrics = nil
	c.err = nil

	go c.fetch(ctx, c.generation, c.rng)
}

func (c *Card) fetch(ctx context.Context, generation uint64, r models.DateRange) {
	metrics, err := c.source.DashboardMetrics(ctx, r)

	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		c.logger.Debug("discarding stale metrics response",
			zap.String("range", r.Key()), zap.Uint64("generation", generation))
		return
	}

	c.pending = false
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if err != nil {
		c.logger.Warn("metrics fetch failed", zap.String("range", r.Key()), zap.Error(err))
		c.err = err
	} else {
		c.metrics = metrics
	}
	close(c.done)
}

// Snapshot renders the card as it is right now.
func (c *Card) Snapshot() Model {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := Model{
		Period:  c.period,
		Periods: Periods,
		Range:   c.rng,
	}
	if c.pending {
		m.Loading = &Loading{Message: fmt.Sprintf("Fetching %s records...", c.period)}
		return m
	}
	m.Chart = Chart(c.metrics)
	m.Summary = Summary(c.metrics)
	if c.err != nil {
		m.Error = c.err.Error()
	}
	return m
}

// Await blocks until the current selection settles or ctx ends, then
// renders the card. A newer Select while waiting wakes the caller early.
func (c *Card) Await(ctx context.Context) Model {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()

	select {
	case <-done:
	case <-ctx.Done():
	}
	return c.Snapshot()
}

// Close cancels any fetch still in flight and discards its response.
func (c *Card) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.pending {
		c.pending = false
		close(c.done)
	}
}
