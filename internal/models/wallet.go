package models

import "github.com/shopspring/decimal"

// PointsAdjustment credits or debits loyalty points on a wallet on behalf
// of an operator. A negative value deducts.
type PointsAdjustment struct {
	WalletID   string          `json:"walletId" validate:"required"`
	WalletType string          `json:"walletType" validate:"required"`
	Points     decimal.Decimal `json:"points" validate:"required"`
	Reason     string          `json:"reason" validate:"required,max=255"`
	AdminID    string          `json:"adminId" validate:"required"`
}

// BalanceAdjustment credits or debits a wallet balance on behalf of an
// operator. A negative value deducts.
type BalanceAdjustment struct {
	WalletID   string          `json:"walletId" validate:"required"`
	WalletType string          `json:"walletType" validate:"required"`
	Balance    decimal.Decimal `json:"balance" validate:"required"`
	Reason     string          `json:"reason" validate:"required,max=255"`
	AdminID    string          `json:"adminId" validate:"required"`
}

// PasswordReset is what the reset-password dialog submits.
type PasswordReset struct {
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

// Wallet types the adjustment dialogs offer.
const (
	WalletTypePoints  = "points"
	WalletTypeCash    = "cash"
	WalletTypeRewards = "rewards"
)
