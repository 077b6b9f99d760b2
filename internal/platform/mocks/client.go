// Package mocks provides a testify mock of the platform client.
package mocks

import (
	"context"

	"orusconsole/internal/models"

	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (m *Client) GetDashboardMetrics(ctx context.Context, r models.DateRange) (*models.DashboardMetrics, error) {
	args := m.Called(ctx, r)
	metrics, _ := args.Get(0).(*models.DashboardMetrics)
	return metrics, args.Error(1)
}

func (m *Client) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	args := m.Called(ctx)
	customers, _ := args.Get(0).([]models.Customer)
	return customers, args.Error(1)
}

func (m *Client) GetCustomer(ctx context.Context, customerID string) (*models.Customer, error) {
	args := m.Called(ctx, customerID)
	customer, _ := args.Get(0).(*models.Customer)
	return customer, args.Error(1)
}

func (m *Client) GetCustomerTransactions(ctx context.Context, customerID string) ([]models.Transaction, error) {
	args := m.Called(ctx, customerID)
	txs, _ := args.Get(0).([]models.Transaction)
	return txs, args.Error(1)
}

func (m *Client) ListMerchants(ctx context.Context) ([]models.Merchant, error) {
	args := m.Called(ctx)
	merchants, _ := args.Get(0).([]models.Merchant)
	return merchants, args.Error(1)
}

func (m *Client) GetMerchant(ctx context.Context, merchantID string) (*models.Merchant, error) {
	args := m.Called(ctx, merchantID)
	merchant, _ := args.Get(0).(*models.Merchant)
	return merchant, args.Error(1)
}

func (m *Client) GetMerchantTransactions(ctx context.Context, merchantID string) ([]models.Transaction, error) {
	args := m.Called(ctx, merchantID)
	txs, _ := args.Get(0).([]models.Transaction)
	return txs, args.Error(1)
}

func (m *Client) GetMerchantKYC(ctx context.Context, merchantID string) (*models.KYCInfo, error) {
	args := m.Called(ctx, merchantID)
	kyc, _ := args.Get(0).(*models.KYCInfo)
	return kyc, args.Error(1)
}

func (m *Client) AdjustPoints(ctx context.Context, req models.PointsAdjustment) error {
	return m.Called(ctx, req).Error(0)
}

func (m *Client) AdjustBalance(ctx context.Context, req models.BalanceAdjustment) error {
	return m.Called(ctx, req).Error(0)
}

func (m *Client) ResetPassword(ctx context.Context, kind models.EntityKind, accountID string, req models.PasswordReset) error {
	return m.Called(ctx, kind, accountID, req).Error(0)
}

func (m *Client) DeleteAccount(ctx context.Context, kind models.EntityKind, accountID string) error {
	return m.Called(ctx, kind, accountID).Error(0)
}
