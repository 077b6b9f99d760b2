// Package account resets passwords and deletes customer and merchant
// accounts on the platform.
package account

import (
	"context"

	"orusconsole/internal/errors"
	"orusconsole/internal/models"
	"orusconsole/internal/platform"
	"orusconsole/internal/services/auth"
	"orusconsole/internal/services/journal"
	"orusconsole/internal/services/query"
	"orusconsole/internal/services/wallet"
	"orusconsole/internal/utils/cache"
	"orusconsole/internal/validation"
)

type Service interface {
	ResetPassword(ctx context.Context, kind models.EntityKind, accountID string, req models.PasswordReset) error
	DeleteAccount(ctx context.Context, kind models.EntityKind, accountID string) error
}

type service struct {
	client    platform.Client
	queries   query.Service
	validator *validation.Validator
	journal   *journal.Journal
}

func NewService(client platform.Client, queries query.Service, validator *validation.Validator, journal *journal.Journal) Service {
	return &service{
		client:    client,
		queries:   queries,
		validator: validator,
		journal:   journal,
	}
}

func (s *service) ResetPassword(ctx context.Context, kind models.EntityKind, accountID string, req models.PasswordReset) error {
	adminID := auth.AdminIDFromContext(ctx)
	if adminID == "" {
		return errors.ErrAdminNotFound
	}
	if err := s.validator.ValidatePasswordReset(req); err != nil {
		return err
	}

	return s.journal.Track(ctx, models.AdminAction{
		AdminID:    adminID,
		Action:     models.ActionResetPassword,
		TargetType: string(kind),
		TargetID:   accountID,
	}, func(ctx context.Context) error {
		return s.client.ResetPassword(ctx, kind, accountID, req)
	})
}

// DeleteAccount removes the account and drops every memoized read that
// could still list it.
func (s *service) DeleteAccount(ctx context.Context, kind models.EntityKind, accountID string) error {
	adminID := auth.AdminIDFromContext(ctx)
	if adminID == "" {
		return errors.ErrAdminNotFound
	}

	err := s.journal.Track(ctx, models.AdminAction{
		AdminID:    adminID,
		Action:     models.ActionDeleteAccount,
		TargetType: string(kind),
		TargetID:   accountID,
	}, func(ctx context.Context) error {
		return s.client.DeleteAccount(ctx, kind, accountID)
	})
	if err != nil {
		return err
	}
	s.queries.Invalidate(ctx, wallet.EntityFor(kind), cache.EntityTransactions, cache.EntityDashboard)
	return nil
}
