// Package query memoizes platform reads and tracks the state of platform
// mutations for the views.
package query

import (
	"context"
	"fmt"
	"net/url"

	"orusconsole/internal/models"
	"orusconsole/internal/platform"
	"orusconsole/internal/utils/cache"

	"go.uber.org/zap"
)

// Cache is the subset of the query cache the service needs.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	InvalidatePattern(ctx context.Context, pattern string) error
}

type Service interface {
	DashboardMetrics(ctx context.Context, r models.DateRange) (*models.DashboardMetrics, error)
	Customers(ctx context.Context) ([]models.Customer, error)
	Customer(ctx context.Context, customerID string) (*models.Customer, error)
	CustomerTransactions(ctx context.Context, customerID string) ([]models.Transaction, error)
	Merchants(ctx context.Context) ([]models.Merchant, error)
	Merchant(ctx context.Context, merchantID string) (*models.Merchant, error)
	MerchantTransactions(ctx context.Context, merchantID string) ([]models.Transaction, error)
	MerchantKYC(ctx context.Context, merchantID string) (*models.KYCInfo, error)

	// Invalidate drops every memoized result for the given entities so the
	// next read refetches.
	Invalidate(ctx context.Context, entities ...cache.EntityType)
}

type service struct {
	client platform.Client
	cache  Cache
	logger *zap.Logger
}

// NewService builds the query service. c may be nil, in which case every
// read goes straight to the platform.
func NewService(client platform.Client, c Cache, logger *zap.Logger) Service {
	return &service{
		client: client,
		cache:  c,
		logger: logger,
	}
}

// fetch returns the memoized value at key or loads and stores it. Cache
// failures are logged and never fail the read. A Refetch context always
// loads.
func fetch[T any](ctx context.Context, s *service, key string, load func(context.Context) (T, error)) (T, error) {
	if s.cache != nil && !isRefetch(ctx) {
		var cached T
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.logger.Warn("query cache read failed", zap.String("key", key), zap.Error(err))
		} else if found {
			return cached, nil
		}
	}

	value, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, value); err != nil {
			s.logger.Warn("query cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return value, nil
}

func (s *service) DashboardMetrics(ctx context.Context, r models.DateRange) (*models.DashboardMetrics, error) {
	key := cache.GenerateCompositeKey(cache.EntityDashboard, url.Values{
		"fromDate": {r.FromDate},
		"toDate":   {r.ToDate},
	})
	return fetch(ctx, s, key, func(ctx context.Context) (*models.DashboardMetrics, error) {
		return s.client.GetDashboardMetrics(ctx, r)
	})
}

func (s *service) Customers(ctx context.Context) ([]models.Customer, error) {
	key := cache.GenerateKey(cache.EntityCustomer, cache.KeyList, "all")
	return fetch(ctx, s, key, s.client.ListCustomers)
}

func (s *service) Customer(ctx context.Context, customerID string) (*models.Customer, error) {
	key := cache.GenerateKey(cache.EntityCustomer, cache.KeyID, customerID)
	return fetch(ctx, s, key, func(ctx context.Context) (*models.Customer, error) {
		return s.client.GetCustomer(ctx, customerID)
	})
}

func (s *service) CustomerTransactions(ctx context.Context, customerID string) ([]models.Transaction, error) {
	key := cache.GenerateKey(cache.EntityTransactions, cache.KeyID, fmt.Sprintf("customer-%s", customerID))
	return fetch(ctx, s, key, func(ctx context.Context) ([]models.Transaction, error) {
		return s.client.GetCustomerTransactions(ctx, customerID)
	})
}

func (s *service) Merchants(ctx context.Context) ([]models.Merchant, error) {
	key := cache.GenerateKey(cache.EntityMerchant, cache.KeyList, "all")
	return fetch(ctx, s, key, s.client.ListMerchants)
}

func (s *service) Merchant(ctx context.Context, merchantID string) (*models.Merchant, error) {
	key := cache.GenerateKey(cache.EntityMerchant, cache.KeyID, merchantID)
	return fetch(ctx, s, key, func(ctx context.Context) (*models.Merchant, error) {
		return s.client.GetMerchant(ctx, merchantID)
	})
}

func (s *service) MerchantTransactions(ctx context.Context, merchantID string) ([]models.Transaction, error) {
	key := cache.GenerateKey(cache.EntityTransactions, cache.KeyID, fmt.Sprintf("merchant-%s", merchantID))
	return fetch(ctx, s, key, func(ctx context.Context) ([]models.Transaction, error) {
		return s.client.GetMerchantTransactions(ctx, merchantID)
	})
}

func (s *service) MerchantKYC(ctx context.Context, merchantID string) (*models.KYCInfo, error) {
	key := cache.GenerateKey(cache.EntityKYC, cache.KeyID, merchantID)
	return fetch(ctx, s, key, func(ctx context.Context) (*models.KYCInfo, error) {
		return s.client.GetMerchantKYC(ctx, merchantID)
	})
}

func (s *service) Invalidate(ctx context.Context, entities ...cache.EntityType) {
	if s.cache == nil {
		return
	}
	for _, entity := range entities {
		if err := s.cache.InvalidatePattern(ctx, cache.EntityPattern(entity)); err != nil {
			s.logger.Warn("query cache invalidation failed",
				zap.String("entity", string(entity)), zap.Error(err))
		}
	}
}
