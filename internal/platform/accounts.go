package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"orusconsole/internal/errors"
	"orusconsole/internal/models"

	"github.com/gofiber/fiber/v2"
)

func (c *client) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var env dataEnvelope[[]models.Customer]
	if err := c.do(ctx, fiber.MethodGet, "/admin/customers", "", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetCustomer unwraps the double-nested customer answer and copies the
// level onto the record.
func (c *client) GetCustomer(ctx context.Context, customerID string) (*models.Customer, error) {
	var env customerEnvelope
	if err := c.do(ctx, fiber.MethodGet, accountPath(models.KindCustomer, customerID), "", nil, &env); err != nil {
		return nil, err
	}
	if env.Data.Data == nil {
		return nil, errors.ErrUpstream.WithMessage("customer %s not found in platform response", customerID)
	}
	customer := *env.Data.Data
	if customer.Level == "" {
		customer.Level = env.Level
	}
	return &customer, nil
}

func (c *client) GetCustomerTransactions(ctx context.Context, customerID string) ([]models.Transaction, error) {
	var env dataEnvelope[[]models.Transaction]
	if err := c.do(ctx, fiber.MethodGet, accountPath(models.KindCustomer, customerID)+"/transactions", "", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *client) ListMerchants(ctx context.Context) ([]models.Merchant, error) {
	var env dataEnvelope[[]models.Merchant]
	if err := c.do(ctx, fiber.MethodGet, "/admin/merchants", "", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *client) GetMerchant(ctx context.Context, merchantID string) (*models.Merchant, error) {
	var env dataEnvelope[*models.Merchant]
	if err := c.do(ctx, fiber.MethodGet, accountPath(models.KindMerchant, merchantID), "", nil, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, errors.ErrUpstream.WithMessage("merchant %s not found in platform response", merchantID)
	}
	return env.Data, nil
}

func (c *client) GetMerchantTransactions(ctx context.Context, merchantID string) ([]models.Transaction, error) {
	var env dataEnvelope[[]models.Transaction]
	if err := c.do(ctx, fiber.MethodGet, accountPath(models.KindMerchant, merchantID)+"/transactions", "", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *client) GetMerchantKYC(ctx context.Context, merchantID string) (*models.KYCInfo, error) {
	var env dataEnvelope[*models.KYCInfo]
	if err := c.do(ctx, fiber.MethodGet, accountPath(models.KindMerchant, merchantID)+"/kyc", "", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *client) AdjustPoints(ctx context.Context, req models.PointsAdjustment) error {
	payload := adjustmentPayload{
		WalletID:   req.WalletID,
		WalletType: req.WalletType,
		Points:     json.Number(req.Points.String()),
		Reason:     req.Reason,
		AdminID:    req.AdminID,
	}
	return c.do(ctx, fiber.MethodPost, "/admin/wallets/adjust-points", "", payload, nil)
}

func (c *client) AdjustBalance(ctx context.Context, req models.BalanceAdjustment) error {
	payload := adjustmentPayload{
		WalletID:   req.WalletID,
		WalletType: req.WalletType,
		Balance:    json.Number(req.Balance.String()),
		Reason:     req.Reason,
		AdminID:    req.AdminID,
	}
	return c.do(ctx, fiber.MethodPost, "/admin/wallets/adjust-balance", "", payload, nil)
}

func (c *client) ResetPassword(ctx context.Context, kind models.EntityKind, accountID string, req models.PasswordReset) error {
	return c.do(ctx, fiber.MethodPost, accountPath(kind, accountID)+"/reset-password", "", req, nil)
}

func (c *client) DeleteAccount(ctx context.Context, kind models.EntityKind, accountID string) error {
	return c.do(ctx, fiber.MethodDelete, accountPath(kind, accountID), "", nil, nil)
}

func accountPath(kind models.EntityKind, id string) string {
	return fmt.Sprintf("/admin/%ss/%s", kind, url.PathEscape(id))
}
