// Package overview builds the console landing page: the default metrics
// snapshot plus customer and merchant counts.
package overview

import (
	"context"
	"fmt"
	"time"

	"orusconsole/internal/services/metrics"
	"orusconsole/internal/services/query"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Overview struct {
	Period    metrics.Period  `json:"period"`
	Chart     []metrics.Point `json:"chart"`
	Summary   []metrics.Tile  `json:"summary"`
	Customers int             `json:"customers"`
	Merchants int             `json:"merchants"`
}

type Service struct {
	queries query.Service
	logger  *zap.Logger
	now     func() time.Time
}

func NewService(queries query.Service, logger *zap.Logger) *Service {
	return &Service{queries: queries, logger: logger, now: time.Now}
}

// Get loads the three sections concurrently. Any failure fails the whole
// overview.
func (s *Service) Get(ctx context.Context) (*Overview, error) {
	out := &Overview{Period: metrics.DefaultPeriod}
	rng := metrics.RangeFor(metrics.DefaultPeriod, s.now())

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		m, err := s.queries.DashboardMetrics(ctx, rng)
		if err != nil {
			return fmt.Errorf("load metrics: %w", err)
		}
		out.Chart = metrics.Chart(m)
		out.Summary = metrics.Summary(m)
		return nil
	})

	g.Go(func() error {
		customers, err := s.queries.Customers(ctx)
		if err != nil {
			return fmt.Errorf("load customers: %w", err)
		}
		out.Customers = len(customers)
		return nil
	})

	g.Go(func() error {
		merchants, err := s.queries.Merchants(ctx)
		if err != nil {
			return fmt.Errorf("load merchants: %w", err)
		}
		out.Merchants = len(merchants)
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("overview load failed", zap.Error(err))
		return nil, err
	}
	return out, nil
}
