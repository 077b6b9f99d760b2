package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Merchant is a platform merchant as the console sees it.
type Merchant struct {
	MerchantID          string          `json:"merchantId"`
	UserID              string          `json:"userId,omitempty"`
	Name                string          `json:"name,omitempty"`
	BusinessName        string          `json:"businessName"`
	BusinessDescription string          `json:"businessDescription,omitempty"`
	Email               string          `json:"email"`
	Phone               string          `json:"phone,omitempty"`
	Address             string          `json:"address"`
	WalletID            string          `json:"walletId,omitempty"`
	WalletType          string          `json:"walletType,omitempty"`
	Points              decimal.Decimal `json:"points"`
	Balance             decimal.Decimal `json:"balance"`
	Status              string          `json:"status,omitempty"`
	CharityCount        int             `json:"charityCount"`
	ReportsCompleted    int             `json:"reportsCompleted"`
	TotalReports        int             `json:"totalReports"`
	JoinedAt            *time.Time      `json:"joinedAt,omitempty"`
}

func (m Merchant) ID() string { return m.MerchantID }
func (m Merchant) Wallet() string { return m.WalletID }
func (m Merchant) RecordStatus() string { return m.Status }
func (m Merchant) Joined() *time.Time { return m.JoinedAt }

// DisplayName prefers the business name, as merchant screens do.
func (m Merchant) DisplayName() string {
	if m.BusinessName != "" {
		return m.BusinessName
	}
	return m.Name
}

func (m Merchant) SearchFields() []Field {
	return []Field{
		{Name: FieldName, Value: m.BusinessName},
		{Name: FieldEmail, Value: m.Email},
		{Name: FieldID, Value: m.MerchantID},
		{Name: FieldAddress, Value: m.Address},
	}
}

// KYCInfo summarises a merchant's verification state.
type KYCInfo struct {
	Status       string     `json:"status"`
	DocumentType string     `json:"documentType,omitempty"`
	DocumentID   string     `json:"documentId,omitempty"`
	ReviewedBy   string     `json:"reviewedBy,omitempty"`
	SubmittedAt  *time.Time `json:"submittedAt,omitempty"`
	ReviewedAt   *time.Time `json:"reviewedAt,omitempty"`
}
