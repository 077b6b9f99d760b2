// Package merchant is the merchant detail view: header, tabs, overview with
// admin controls, and lazily loaded KYC and transactions.
package merchant

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

type Deps struct {
	Queries  query.Service
	Wallets  wallet.Service
	Accounts account.Service
	Logger   *zap.Logger
}

type View struct {
	merchantID string
	notices    *notification.Queue
	logger     *zap.Logger

	record       *detail.Loader[*models.Merchant]
	kyc          *detail.Loader[*models.KYCInfo]
	transactions *detail.Loader[[]models.Transaction]
	tabs         *detail.Tabs
	panel        *controls.Panel

	mu      sync.Mutex
	deleted bool
}

func NewView(merchantID string, deps Deps) *View {
	v := &View{
		merchantID: merchantID,
		notices:    notification.NewQueue(deps.Logger),
		logger:     deps.Logger.With(zap.String("merchant_id", merchantID)),
		tabs:       detail.NewTabs(detail.TabOverview, detail.TabKYC, detail.TabTransactions, detail.TabRewards),
	}
	v.record = detail.NewLoader(func(ctx context.Context) (*models.Merchant, error) {
		return deps.Queries.Merchant(ctx, merchantID)
	})
	v.kyc = detail.NewLoader(func(ctx context.Context) (*models.KYCInfo, error) {
		return deps.Queries.MerchantKYC(ctx, merchantID)
	})
	v.transactions = detail.NewLoader(func(ctx context.Context) ([]models.Transaction, error) {
		return deps.Queries.MerchantTransactions(ctx, merchantID)
	})
	v.panel = controls.NewPanel(controls.Target{Kind: models.KindMerchant, AccountID: merchantID}, &detail.AccountActions{
		Kind:      models.KindMerchant,
		Wallets:   deps.Wallets,
		Accounts:  deps.Accounts,
		Notices:   v.notices,
		AccountID: func() string { return merchantID },
		Changed:   v.reload,
		Deleted:   v.markDeleted,
	}, v.notices)
	return v
}

func (v *View) Load(ctx context.Context) error {
	err := v.record.Load(ctx)
	v.syncTarget()
	return err
}

func (v *View) Retry(ctx context.Context) error {
	err := v.record.Retry(ctx)
	v.syncTarget()
	return err
}

// SwitchTab activates a tab. KYC and transactions are fetched the first
// time their tab opens and kept afterwards.
func (v *View) SwitchTab(ctx context.Context, name string) error {
	tab, err := v.tabs.Switch(name)
	if err != nil {
		return err
	}
	switch tab {
	case detail.TabKYC:
		if err := v.kyc.Load(ctx); err != nil {
			v.logger.Warn("failed to load merchant kyc", zap.Error(err))
		}
	case detail.TabTransactions:
		if err := v.transactions.Load(ctx); err != nil {
			v.logger.Warn("failed to load merchant transactions", zap.Error(err))
		}
	}
	return nil
}

func (v *View) Panel() *controls.Panel {
	return v.panel
}

func (v *View) reload(ctx context.Context) {
	if err := v.Retry(ctx); err != nil {
		v.logger.Warn("failed to reload merchant after adjustment", zap.Error(err))
	}
}

func (v *View) markDeleted() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.deleted = true
}

func (v *View) syncTarget() {
	_, m, _ := v.record.Snapshot()
	if m == nil {
		return
	}
	v.panel.SetTarget(controls.Target{
		Kind:         models.KindMerchant,
		AccountID:    v.merchantID,
		WalletID:     m.WalletID,
		Name:         m.Name,
		BusinessName: m.BusinessName,
	})
}
