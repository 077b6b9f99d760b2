package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a platform customer as the console sees it. Records are
// immutable once fetched; list membership only changes on refetch.
type Customer struct {
	CustomerID string          `json:"customerId"`
	UserID     string          `json:"userId"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone,omitempty"`
	Address    string          `json:"address"`
	WalletID   string          `json:"walletId,omitempty"`
	WalletType string          `json:"walletType,omitempty"`
	Points     decimal.Decimal `json:"points"`
	Balance    decimal.Decimal `json:"balance"`
	Status     string          `json:"status,omitempty"`
	KYCStatus  string          `json:"kycStatus,omitempty"`
	Level      string          `json:"level,omitempty"`
	JoinedAt   *time.Time      `json:"joinedAt,omitempty"`
}

func (c Customer) ID() string { return c.CustomerID }
func (c Customer) DisplayName() string { return c.Name }
func (c Customer) Wallet() string { return c.WalletID }
func (c Customer) RecordStatus() string { return c.Status }
func (c Customer) Joined() *time.Time { return c.JoinedAt }

func (c Customer) SearchFields() []Field {
	return []Field{
		{Name: FieldName, Value: c.Name},
		{Name: FieldEmail, Value: c.Email},
		{Name: FieldID, Value: c.CustomerID},
		{Name: FieldAddress, Value: c.Address},
	}
}

// Transaction is one line of an account's transaction history.
type Transaction struct {
	TransactionID string          `json:"transactionId"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Points        decimal.Decimal `json:"points"`
	Status        string          `json:"status"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     *time.Time      `json:"createdAt,omitempty"`
}
