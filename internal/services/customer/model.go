package customer

import (
	"orusconsole/internal/models"
	"orusconsole/internal/services/controls"
	"orusconsole/internal/services/detail"
	"orusconsole/internal/services/notification"

	"github.com/shopspring/decimal"
)

type Header struct {
	Name       string `json:"name"`
	CustomerID string `json:"customerId"`
	Level      string `json:"level,omitempty"`
}

type Overview struct {
	Customer *models.Customer `json:"customer"`
	Controls controls.Model   `json:"controls"`
}

type Transactions struct {
	Status detail.Status        `json:"status"`
	Items  []models.Transaction `json:"items,omitempty"`
}

type Rewards struct {
	Points  decimal.Decimal `json:"points"`
	Balance decimal.Decimal `json:"balance"`
	Level   string          `json:"level,omitempty"`
}

// Model is the rendered customer detail view. Only the active tab's
// section is set.
type Model struct {
	Status       detail.Status         `json:"status"`
	Deleted      bool                  `json:"deleted"`
	Header       *Header               `json:"header,omitempty"`
	Tabs         []detail.Tab          `json:"tabs"`
	ActiveTab    detail.Tab            `json:"activeTab"`
	Overview     *Overview             `json:"overview,omitempty"`
	Transactions *Transactions         `json:"transactions,omitempty"`
	Rewards      *Rewards              `json:"rewards,omitempty"`
	Notices      []notification.Notice `json:"notices"`
}

// Model renders the view and hands over any pending notices.
func (v *View) Model() Model {
	state, c, err := v.record.Snapshot()

	v.mu.Lock()
	deleted := v.deleted
	v.mu.Unlock()

	m := Model{
		Status:    detail.StatusFor("customer", state, err),
		Deleted:   deleted,
		Tabs:      v.tabs.List(),
		ActiveTab: v.tabs.Active(),
	}

	// a refetch error after a good load keeps showing the last data
	if c != nil {
		if state == detail.StateError {
			m.Status = detail.Status{State: detail.StateSuccess}
		}
		m.Header = &Header{Name: c.Name, CustomerID: c.UserID, Level: c.Level}

		switch m.ActiveTab {
		case detail.TabOverview:
			m.Overview = &Overview{Customer: c, Controls: v.panel.Model()}
		case detail.TabTransactions:
			txState, txs, txErr := v.transactions.Snapshot()
			m.Transactions = &Transactions{
				Status: detail.StatusFor("transaction", txState, txErr),
				Items:  txs,
			}
		case detail.TabRewards:
			m.Rewards = &Rewards{Points: c.Points, Balance: c.Balance, Level: c.Level}
		}
	}

	m.Notices = v.notices.Drain()
	return m
}
