// Package platform is the console's HTTP-JSON client for the Orus platform
// API. Response envelopes are normalised here so the rest of the console only
// sees plain models.
package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"orusconsole/internal/errors"
	"orusconsole/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Client is everything the console asks of the platform.
type Client interface {
	GetDashboardMetrics(ctx context.Context, r models.DateRange) (*models.DashboardMetrics, error)

	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, customerID string) (*models.Customer, error)
	GetCustomerTransactions(ctx context.Context, customerID string) ([]models.Transaction, error)

	ListMerchants(ctx context.Context) ([]models.Merchant, error)
	GetMerchant(ctx context.Context, merchantID string) (*models.Merchant, error)
	GetMerchantTransactions(ctx context.Context, merchantID string) ([]models.Transaction, error)
	GetMerchantKYC(ctx context.Context, merchantID string) (*models.KYCInfo, error)

	AdjustPoints(ctx context.Context, req models.PointsAdjustment) error
	AdjustBalance(ctx context.Context, req models.BalanceAdjustment) error
	ResetPassword(ctx context.Context, kind models.EntityKind, accountID string, req models.PasswordReset) error
	DeleteAccount(ctx context.Context, kind models.EntityKind, accountID string) error
}

// Config configures the platform client.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// APIError is a non-2xx answer from the platform.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("platform API returned %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return errors.ErrUpstream
}

type client struct {
	baseURL string
	token   string
	timeout time.Duration
	logger  *zap.Logger
}

func NewClient(cfg Config, logger *zap.Logger) Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

// do issues one request and decodes a 2xx body into out when out is non-nil.
func (c *client) do(ctx context.Context, method, path, query string, body, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a := fiber.AcquireAgent()
	req := a.Request()
	req.Header.SetMethod(method)

	uri := c.baseURL + path
	if query != "" {
		uri += "?" + query
	}
	req.SetRequestURI(uri)
	req.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if c.token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+c.token)
	}
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			fiber.ReleaseAgent(a)
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		req.Header.SetContentType(fiber.MIMEApplicationJSON)
		req.SetBody(payload)
	}
	a.Timeout(c.timeoutFor(ctx))

	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return fmt.Errorf("%w: %v", errors.ErrUpstream, err)
	}

	start := time.Now()
	status, respBody, errs := a.Bytes()
	if len(errs) > 0 {
		c.logger.Warn("platform request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Errors("errors", errs))
		return fmt.Errorf("%w: %v", errors.ErrUpstream, errs[0])
	}
	c.logger.Debug("platform request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.Duration("latency", time.Since(start)))

	if err := ctx.Err(); err != nil {
		return err
	}

	if status < 200 || status >= 300 {
		return &APIError{Status: status, Message: errorMessage(respBody, status)}
	}
	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", errors.ErrUpstream, path, err)
	}
	return nil
}

func (c *client) timeoutFor(ctx context.Context) time.Duration {
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < c.timeout {
			if remaining <= 0 {
				return time.Millisecond
			}
			return remaining
		}
	}
	return c.timeout
}

func errorMessage(body []byte, status int) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return fmt.Sprintf("status %d", status)
}
