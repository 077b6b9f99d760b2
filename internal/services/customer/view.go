// Package customer is the customer detail view: header, tabs, overview with
// admin controls, and lazily loaded transactions.
package customer

import (
	"context"
	"sync"

	"orusconsole/internal/models"
	"orusconsole/internal/services/account"
	"orusconsole/internal/services/controls"
	"orusconsole/internal/services/detail"
	"orusconsole/internal/services/notification"
	"orusconsole/internal/services/query"
	"orusconsole/internal/services/wallet"

	"go.uber.org/zap"
)

// Deps are the services a customer view is built from.
type Deps struct {
	Queries  query.Service
	Wallets  wallet.Service
	Accounts account.Service
	Logger   *zap.Logger
}

type View struct {
	customerID string
	notices    *notification.Queue
	logger     *zap.Logger

	record       *detail.Loader[*models.Customer]
	transactions *detail.Loader[[]models.Transaction]
	tabs         *detail.Tabs
	panel        *controls.Panel

	mu      sync.Mutex
	deleted bool
}

func NewView(customerID string, deps Deps) *View {
	v := &View{
		customerID: customerID,
		notices:    notification.NewQueue(deps.Logger),
		logger:     deps.Logger.With(zap.String("customer_id", customerID)),
		tabs:       detail.NewTabs(detail.TabOverview, detail.TabTransactions, detail.TabRewards),
	}
	v.record = detail.NewLoader(func(ctx context.Context) (*models.Customer, error) {
		return deps.Queries.Customer(ctx, customerID)
	})
	v.transactions = detail.NewLoader(func(ctx context.Context) ([]models.Transaction, error) {
		return deps.Queries.CustomerTransactions(ctx, customerID)
	})
	v.panel = controls.NewPanel(controls.Target{Kind: models.KindCustomer, AccountID: customerID}, &detail.AccountActions{
		Kind:      models.KindCustomer,
		Wallets:   deps.Wallets,
		Accounts:  deps.Accounts,
		Notices:   v.notices,
		AccountID: func() string { return customerID },
		Changed:   v.reload,
		Deleted:   v.markDeleted,
	}, v.notices)
	return v
}

// Load fetches the customer once.
func (v *View) Load(ctx context.Context) error {
	err := v.record.Load(ctx)
	v.syncTarget()
	return err
}

// Retry fetches the customer again after an error.
func (v *View) Retry(ctx context.Context) error {
	err := v.record.Retry(ctx)
	v.syncTarget()
	return err
}

// SwitchTab activates a tab, loading its content on first use.
func (v *View) SwitchTab(ctx context.Context, name string) error {
	tab, err := v.tabs.Switch(name)
	if err != nil {
		return err
	}
	if tab == detail.TabTransactions {
		if err := v.transactions.Load(ctx); err != nil {
			v.logger.Warn("failed to load customer transactions", zap.Error(err))
		}
	}
	return nil
}

func (v *View) Panel() *controls.Panel {
	return v.panel
}

func (v *View) reload(ctx context.Context) {
	if err := v.Retry(ctx); err != nil {
		v.logger.Warn("failed to reload customer after adjustment", zap.Error(err))
	}
}

func (v *View) markDeleted() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.deleted = true
}

func (v *View) syncTarget() {
	_, c, _ := v.record.Snapshot()
	if c == nil {
		return
	}
	v.panel.SetTarget(controls.Target{
		Kind:      models.KindCustomer,
		AccountID: v.customerID,
		WalletID:  c.WalletID,
		Name:      c.Name,
	})
}
