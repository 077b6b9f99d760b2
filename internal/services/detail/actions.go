package detail

import (
	"context"
	stderrors "errors"

	"orusconsole/internal/errors"
	"orusconsole/internal/models"
	"orusconsole/internal/platform"
	"orusconsole/internal/services/account"
	"orusconsole/internal/services/notification"
	"orusconsole/internal/services/wallet"

	"github.com/shopspring/decimal"
)

// AccountActions carries out a detail view's admin controls against one
// account. It satisfies controls.Actions.
type AccountActions struct {
	Kind     models.EntityKind
	Wallets  wallet.Service
	Accounts account.Service
	Notices  *notification.Queue

	// AccountID returns the id the platform knows the account by.
	AccountID func() string
	// Changed runs after a successful wallet adjustment.
	Changed func(ctx context.Context)
	// Deleted runs after the account is deleted.
	Deleted func()
}

func (a *AccountActions) AdjustPoints(ctx context.Context, accountID, walletID, walletType string, points decimal.Decimal, reason string) error {
	err := a.Wallets.AdjustPoints(ctx, wallet.Adjustment{
		Kind:       a.Kind,
		AccountID:  accountID,
		WalletID:   walletID,
		WalletType: walletType,
		Amount:     points,
		Reason:     reason,
	})
	return a.settle(ctx, err, "Points adjusted successfully")
}

func (a *AccountActions) AdjustBalance(ctx context.Context, accountID, walletID, walletType string, balance decimal.Decimal, reason string) error {
	err := a.Wallets.AdjustBalance(ctx, wallet.Adjustment{
		Kind:       a.Kind,
		AccountID:  accountID,
		WalletID:   walletID,
		WalletType: walletType,
		Amount:     balance,
		Reason:     reason,
	})
	return a.settle(ctx, err, "Balance adjusted successfully")
}

func (a *AccountActions) ResetPassword(ctx context.Context, req models.PasswordReset) error {
	err := a.Accounts.ResetPassword(ctx, a.Kind, a.AccountID(), req)
	if err != nil {
		a.Notices.Error(message(err))
		return err
	}
	a.Notices.Success("Password reset successfully")
	return nil
}

func (a *AccountActions) DeleteAccount(ctx context.Context) error {
	err := a.Accounts.DeleteAccount(ctx, a.Kind, a.AccountID())
	if err != nil {
		a.Notices.Error(message(err))
		return err
	}
	a.Notices.Success("Account deleted")
	if a.Deleted != nil {
		a.Deleted()
	}
	return nil
}

func (a *AccountActions) settle(ctx context.Context, err error, success string) error {
	if err != nil {
		a.Notices.Error(message(err))
		return err
	}
	a.Notices.Success(success)
	if a.Changed != nil {
		a.Changed(ctx)
	}
	return nil
}

// message is the operator-facing text for err.
func message(err error) string {
	var apiErr *platform.APIError
	if stderrors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	var de *errors.DomainError
	if stderrors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
