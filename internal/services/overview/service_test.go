package overview

import (
	"context"
	"errors"
	"testing"
	"time"

	"orusconsole/internal/models"
	"orusconsole/internal/platform/mocks"
	"orusconsole/internal/services/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(client *mocks.Client) *Service {
	s := NewService(query.NewService(client, nil, zap.NewNop()), zap.NewNop())
	s.now = func() time.Time { return time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC) }
	return s
}

func TestGet(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetDashboardMetrics", mock.Anything, models.DateRange{FromDate: "17-02-2024", ToDate: "15-03-2024"}).
		Return(&models.DashboardMetrics{
			Customers: models.CustomerMetrics{TotalCustomers: 10, ActiveCustomers: 5},
		}, nil)
	client.On("ListCustomers", mock.Anything).Return([]models.Customer{{CustomerID: "c-1"}, {CustomerID: "c-2"}}, nil)
	client.On("ListMerchants", mock.Anything).Return([]models.Merchant{{MerchantID: "m-1"}}, nil)

	out, err := newService(client).Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, out.Customers)
	assert.Equal(t, 1, out.Merchants)
	assert.Len(t, out.Chart, 16)
	require.Len(t, out.Summary, 3)
	assert.Equal(t, "10", out.Summary[0].Value)
	assert.Equal(t, 50, out.Summary[0].Progress)
	client.AssertExpectations(t)
}

func TestGet_FailureFailsOverview(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetDashboardMetrics", mock.Anything, mock.Anything).Return(&models.DashboardMetrics{}, nil)
	client.On("ListCustomers", mock.Anything).Return(nil, errors.New("upstream down"))
	client.On("ListMerchants", mock.Anything).Return([]models.Merchant{}, nil).Maybe()

	out, err := newService(client).Get(context.Background())
	assert.Nil(t, out)
	assert.ErrorContains(t, err, "load customers")
}
