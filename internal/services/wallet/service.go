package wallet

import (
	"context"
	"time"

	"orusconsole/internal/errors"
	"orusconsole/internal/models"
	"orusconsole/internal/platform"
	"orusconsole/internal/services/auth"
	"orusconsole/internal/services/journal"
	"orusconsole/internal/services/query"
	"orusconsole/internal/utils/cache"
	"orusconsole/internal/validation"

	"github.com/shopspring/decimal"
)

// Adjustment is one operator-initiated change to a wallet. A negative
// amount deducts.
type Adjustment struct {
	Kind       models.EntityKind
	AccountID  string
	WalletID   string
	WalletType string
	Amount     decimal.Decimal
	Reason     string
}

type Service interface {
	AdjustPoints(ctx context.Context, a Adjustment) error
	AdjustBalance(ctx context.Context, a Adjustment) error
}

type service struct {
	client    platform.Client
	queries   query.Service
	validator *validation.Validator
	journal   *journal.Journal
	metrics   MetricsCollector
}

func NewService(
	client platform.Client,
	queries query.Service,
	validator *validation.Validator,
	journal *journal.Journal,
	metrics MetricsCollector,
) Service {
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	return &service{
		client:    client,
		queries:   queries,
		validator: validator,
		journal:   journal,
		metrics:   metrics,
	}
}

func (s *service) AdjustPoints(ctx context.Context, a Adjustment) error {
	adminID := auth.AdminIDFromContext(ctx)
	if adminID == "" {
		return errors.ErrAdminNotFound
	}

	req := models.PointsAdjustment{
		WalletID:   a.WalletID,
		WalletType: a.WalletType,
		Points:     a.Amount,
		Reason:     a.Reason,
		AdminID:    adminID,
	}
	if err := s.validator.ValidatePointsAdjustment(req); err != nil {
		return err
	}

	return s.run(ctx, models.ActionAdjustPoints, adminID, a, func(ctx context.Context) error {
		return s.client.AdjustPoints(ctx, req)
	})
}

func (s *service) AdjustBalance(ctx context.Context, a Adjustment) error {
	adminID := auth.AdminIDFromContext(ctx)
	if adminID == "" {
		return errors.ErrAdminNotFound
	}

	req := models.BalanceAdjustment{
		WalletID:   a.WalletID,
		WalletType: a.WalletType,
		Balance:    a.Amount,
		Reason:     a.Reason,
		AdminID:    adminID,
	}
	if err := s.validator.ValidateBalanceAdjustment(req); err != nil {
		return err
	}

	return s.run(ctx, models.ActionAdjustBalance, adminID, a, func(ctx context.Context) error {
		return s.client.AdjustBalance(ctx, req)
	})
}

func (s *service) run(ctx context.Context, action, adminID string, a Adjustment, send func(context.Context) error) error {
	start := time.Now()
	err := s.journal.Track(ctx, models.AdminAction{
		AdminID:    adminID,
		Action:     action,
		TargetType: string(a.Kind),
		TargetID:   a.AccountID,
		WalletID:   a.WalletID,
		WalletType: a.WalletType,
		Amount:     a.Amount.String(),
		Reason:     a.Reason,
	}, send)
	s.metrics.RecordOperationDuration(action, time.Since(start))

	if err != nil {
		s.metrics.RecordOperationResult(action, models.OutcomeFailed)
		return err
	}
	s.metrics.RecordOperationResult(action, models.OutcomeSucceeded)
	s.queries.Invalidate(ctx, EntityFor(a.Kind), cache.EntityDashboard)
	return nil
}

// EntityFor maps an account kind to its cache entity.
func EntityFor(kind models.EntityKind) cache.EntityType {
	if kind == models.KindMerchant {
		return cache.EntityMerchant
	}
	return cache.EntityCustomer
}
