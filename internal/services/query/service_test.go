package query

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"orusconsole/internal/models"
	"orusconsole/internal/platform/mocks"
	"orusconsole/internal/utils/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	failGet bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGet {
		return false, errors.New("connection refused")
	}
	data, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return nil
}

func (c *memoryCache) InvalidatePattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	return nil
}

func TestCustomers_Memoized(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListCustomers", mock.Anything).
		Return([]models.Customer{{CustomerID: "c-1", Name: "Ada"}}, nil).Once()

	s := NewService(client, newMemoryCache(), zap.NewNop())

	first, err := s.Customers(context.Background())
	require.NoError(t, err)
	second, err := s.Customers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	client.AssertNumberOfCalls(t, "ListCustomers", 1)
}

func TestInvalidate_Refetches(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListMerchants", mock.Anything).Return([]models.Merchant{{MerchantID: "m-1"}}, nil)
	client.On("GetDashboardMetrics", mock.Anything, mock.Anything).Return(&models.DashboardMetrics{}, nil)

	s := NewService(client, newMemoryCache(), zap.NewNop())
	r := models.DateRange{FromDate: "01-01-2024", ToDate: "07-01-2024"}

	_, err := s.Merchants(context.Background())
	require.NoError(t, err)
	_, err = s.DashboardMetrics(context.Background(), r)
	require.NoError(t, err)

	s.Invalidate(context.Background(), cache.EntityMerchant)

	_, err = s.Merchants(context.Background())
	require.NoError(t, err)
	_, err = s.DashboardMetrics(context.Background(), r)
	require.NoError(t, err)

	client.AssertNumberOfCalls(t, "ListMerchants", 2)
	client.AssertNumberOfCalls(t, "GetDashboardMetrics", 1)
}

func TestFetch_NilCacheAlwaysLoads(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetCustomer", mock.Anything, "c-1").Return(&models.Customer{CustomerID: "c-1"}, nil)

	s := NewService(client, nil, zap.NewNop())
	for i := 0; i < 2; i++ {
		customer, err := s.Customer(context.Background(), "c-1")
		require.NoError(t, err)
		assert.Equal(t, "c-1", customer.CustomerID)
	}
	client.AssertNumberOfCalls(t, "GetCustomer", 2)
	s.Invalidate(context.Background(), cache.EntityCustomer)
}

func TestFetch_CacheFailureFallsThrough(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetMerchantKYC", mock.Anything, "m-1").Return(&models.KYCInfo{Status: "approved"}, nil)

	c := newMemoryCache()
	c.failGet = true
	s := NewService(client, c, zap.NewNop())

	kyc, err := s.MerchantKYC(context.Background(), "m-1")
	require.NoError(t, err)
	assert.Equal(t, "approved", kyc.Status)
}

func TestFetch_ErrorsAreNotCached(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetCustomerTransactions", mock.Anything, "c-1").Return(nil, errors.New("boom")).Once()
	client.On("GetCustomerTransactions", mock.Anything, "c-1").Return([]models.Transaction{{TransactionID: "t-1"}}, nil).Once()

	s := NewService(client, newMemoryCache(), zap.NewNop())

	_, err := s.CustomerTransactions(context.Background(), "c-1")
	require.Error(t, err)

	txs, err := s.CustomerTransactions(context.Background(), "c-1")
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestCustomers_RefetchSeesNewMembers(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListCustomers", mock.Anything).
		Return([]models.Customer{{CustomerID: "c-1"}}, nil).Once()
	client.On("ListCustomers", mock.Anything).
		Return([]models.Customer{{CustomerID: "c-1"}, {CustomerID: "c-2"}}, nil).Once()

	s := NewService(client, newMemoryCache(), zap.NewNop())

	mounted, err := s.Customers(context.Background())
	require.NoError(t, err)
	assert.Len(t, mounted, 1)

	refreshed, err := s.Customers(Refetch(context.Background()))
	require.NoError(t, err)
	assert.Len(t, refreshed, 2)

	// the fresh answer replaced the memoized one
	cached, err := s.Customers(context.Background())
	require.NoError(t, err)
	assert.Len(t, cached, 2)
	client.AssertNumberOfCalls(t, "ListCustomers", 2)
}
