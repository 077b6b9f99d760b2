package merchant

import (
	"orusconsole/internal/models"
	"orusconsole/internal/services/controls"
	"orusconsole/internal/services/detail"
	"orusconsole/internal/services/notification"

	"github.com/shopspring/decimal"
)

type Header struct {
	BusinessName string `json:"businessName"`
	MerchantID   string `json:"merchantId"`
}

type PersonalInformation struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address"`
	Status  string `json:"status,omitempty"`
}

type Reports struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

type Overview struct {
	Personal     PersonalInformation `json:"personal"`
	Description  string              `json:"description"`
	CharityCount int                 `json:"charityCount"`
	Reports      Reports             `json:"reports"`
	Controls     controls.Model      `json:"controls"`
}

type KYC struct {
	Status detail.Status   `json:"status"`
	Info   *models.KYCInfo `json:"info,omitempty"`
}

type Transactions struct {
	Status detail.Status        `json:"status"`
	Items  []models.Transaction `json:"items,omitempty"`
}

type Rewards struct {
	Points  decimal.Decimal `json:"points"`
	Balance decimal.Decimal `json:"balance"`
}

type Model struct {
	Status       detail.Status         `json:"status"`
	Deleted      bool                  `json:"deleted"`
	Header       *Header               `json:"header,omitempty"`
	Tabs         []detail.Tab          `json:"tabs"`
	ActiveTab    detail.Tab            `json:"activeTab"`
	Overview     *Overview             `json:"overview,omitempty"`
	KYC          *KYC                  `json:"kyc,omitempty"`
	Transactions *Transactions         `json:"transactions,omitempty"`
	Rewards      *Rewards              `json:"rewards,omitempty"`
	Notices      []notification.Notice `json:"notices"`
}

func (v *View) Model() Model {
	state, mr, err := v.record.Snapshot()

	v.mu.Lock()
	deleted := v.deleted
	v.mu.Unlock()

	m := Model{
		Status:    detail.StatusFor("merchant", state, err),
		Deleted:   deleted,
		Tabs:      v.tabs.List(),
		ActiveTab: v.tabs.Active(),
	}

	if mr != nil {
		if state == detail.StateError {
			m.Status = detail.Status{State: detail.StateSuccess}
		}
		m.Header = &Header{BusinessName: mr.BusinessName, MerchantID: mr.MerchantID}

		switch m.ActiveTab {
		case detail.TabOverview:
			m.Overview = &Overview{
				Personal: PersonalInformation{
					Name:    mr.Name,
					Email:   mr.Email,
					Phone:   mr.Phone,
					Address: mr.Address,
					Status:  mr.Status,
				},
				Description:  mr.BusinessDescription,
				CharityCount: mr.CharityCount,
				Reports:      Reports{Completed: mr.ReportsCompleted, Total: mr.TotalReports},
				Controls:     v.panel.Model(),
			}
		case detail.TabKYC:
			kycState, info, kycErr := v.kyc.Snapshot()
			m.KYC = &KYC{Status: detail.StatusFor("KYC", kycState, kycErr), Info: info}
		case detail.TabTransactions:
			txState, txs, txErr := v.transactions.Snapshot()
			m.Transactions = &Transactions{Status: detail.StatusFor("transaction", txState, txErr), Items: txs}
		case detail.TabRewards:
			m.Rewards = &Rewards{Points: mr.Points, Balance: mr.Balance}
		}
	}

	m.Notices = v.notices.Drain()
	return m
}
