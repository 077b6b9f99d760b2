// Package controls holds the admin controls panel of a detail view: the
// adjust points, adjust balance, reset password and delete dialogs.
package controls

import (
	"context"
	"fmt"
	"sync"

	"orusconsole/internal/errors"
	"orusconsole/internal/models"
	"orusconsole/internal/services/notification"
	"orusconsole/internal/services/query"

	"github.com/shopspring/decimal"
)

type Dialog string

const (
	DialogAdjustPoints  Dialog = "adjust-points"
	DialogAdjustBalance Dialog = "adjust-balance"
	DialogResetPassword Dialog = "reset-password"
	DialogDelete        Dialog = "delete"
)

var dialogs = []Dialog{DialogAdjustPoints, DialogAdjustBalance, DialogResetPassword, DialogDelete}

func ParseDialog(s string) (Dialog, error) {
	for _, d := range dialogs {
		if string(d) == s {
			return d, nil
		}
	}
	return "", errors.ErrInvalidDialog.WithMessage("unknown dialog %q", s)
}

// Actions carries out confirmed dialogs. The panel itself does no I/O.
type Actions interface {
	AdjustPoints(ctx context.Context, accountID, walletID, walletType string, points decimal.Decimal, reason string) error
	AdjustBalance(ctx context.Context, accountID, walletID, walletType string, balance decimal.Decimal, reason string) error
	ResetPassword(ctx context.Context, req models.PasswordReset) error
	DeleteAccount(ctx context.Context) error
}

// Target is the account the panel acts on.
type Target struct {
	Kind         models.EntityKind
	AccountID    string
	WalletID     string
	Name         string
	BusinessName string
}

// Adjustment is what an adjust dialog submits.
type Adjustment struct {
	WalletType string          `json:"wallet"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
}

type Panel struct {
	actions Actions
	notices *notification.Queue

	mu        sync.Mutex
	target    Target
	open      map[Dialog]bool
	mutations map[Dialog]*query.Mutation
}

func NewPanel(target Target, actions Actions, notices *notification.Queue) *Panel {
	p := &Panel{
		actions:   actions,
		notices:   notices,
		target:    target,
		open:      make(map[Dialog]bool, len(dialogs)),
		mutations: make(map[Dialog]*query.Mutation, len(dialogs)),
	}
	for _, d := range dialogs {
		p.mutations[d] = &query.Mutation{}
	}
	return p
}

// SetTarget updates the account after a reload.
func (p *Panel) SetTarget(t Target) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.target = t
}

// Open shows a dialog. Adjust dialogs need a configured wallet; without one
// a notice is queued and nothing opens.
func (p *Panel) Open(d Dialog) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if (d == DialogAdjustPoints || d == DialogAdjustBalance) && p.target.WalletID == "" {
		name := p.target.Name
		if name == "" {
			name = "Unknown"
		}
		msg := fmt.Sprintf("This %s %s doesn't have a configured wallet", p.target.Kind, name)
		p.notices.Error(msg)
		return errors.ErrWalletNotConfigured.WithMessage("%s", msg)
	}

	// a success left over from an earlier submit would close the dialog again
	p.mutations[d].Reset()
	p.open[d] = true
	return nil
}

func (p *Panel) Close(d Dialog) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.open[d] = false
}

func (p *Panel) IsOpen(d Dialog) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open[d]
}

// ConfirmAdjustPoints submits the points dialog. Nothing is sent unless both
// the account and its wallet are known.
func (p *Panel) ConfirmAdjustPoints(ctx context.Context, in Adjustment) error {
	return p.confirmAdjust(ctx, DialogAdjustPoints, func(ctx context.Context, t Target) error {
		return p.actions.AdjustPoints(ctx, t.AccountID, t.WalletID, in.WalletType, in.Amount, in.Reason)
	})
}

// ConfirmAdjustBalance submits the balance dialog under the same rules as
// ConfirmAdjustPoints.
func (p *Panel) ConfirmAdjustBalance(ctx context.Context, in Adjustment) error {
	return p.confirmAdjust(ctx, DialogAdjustBalance, func(ctx context.Context, t Target) error {
		return p.actions.AdjustBalance(ctx, t.AccountID, t.WalletID, in.WalletType, in.Amount, in.Reason)
	})
}

func (p *Panel) confirmAdjust(ctx context.Context, d Dialog, run func(context.Context, Target) error) error {
	p.mu.Lock()
	if !p.open[d] {
		p.mu.Unlock()
		return errors.ErrDialogNotOpen
	}
	t := p.target
	p.mu.Unlock()

	if t.AccountID == "" || t.WalletID == "" {
		return nil
	}

	err := p.mutations[d].Run(ctx, func(ctx context.Context) error {
		return run(ctx, t)
	})
	p.Observe()
	return err
}

func (p *Panel) ConfirmResetPassword(ctx context.Context, req models.PasswordReset) error {
	if !p.IsOpen(DialogResetPassword) {
		return errors.ErrDialogNotOpen
	}
	err := p.mutations[DialogResetPassword].Run(ctx, func(ctx context.Context) error {
		return p.actions.ResetPassword(ctx, req)
	})
	p.Observe()
	return err
}

// RequestDelete opens the delete confirmation.
func (p *Panel) RequestDelete() {
	_ = p.Open(DialogDelete)
}

// ConfirmDelete deletes the account, but only from the open confirmation.
func (p *Panel) ConfirmDelete(ctx context.Context) error {
	if !p.IsOpen(DialogDelete) {
		return errors.ErrDialogNotOpen
	}
	err := p.mutations[DialogDelete].Run(ctx, p.actions.DeleteAccount)
	p.Observe()
	return err
}

// Observe closes every dialog whose mutation has succeeded. It runs after
// each mutation completes and on each render.
func (p *Panel) Observe() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, d := range dialogs {
		if p.open[d] && p.mutations[d].IsSuccess() {
			p.open[d] = false
		}
	}
}

// Succeeded reports whether the last run of d succeeded.
func (p *Panel) Succeeded(d Dialog) bool {
	return p.mutations[d].IsSuccess()
}
