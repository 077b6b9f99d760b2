package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Admin is a console operator account.
type Admin struct {
	gorm.Model
	Email        string         `gorm:"uniqueIndex;not null"`
	Password     string         `gorm:"not null"`
	Name         string         `gorm:"not null"`
	Role         string         `gorm:"default:'admin'"`
	Permissions  pq.StringArray `gorm:"type:text[]"`
	Status       string         `gorm:"default:'active'"`
	TokenVersion int            `gorm:"default:1"`
	LastLoginAt  *time.Time
}

// EffectivePermissions falls back to the role defaults when none are stored.
func (a *Admin) EffectivePermissions() []string {
	if len(a.Permissions) > 0 {
		return []string(a.Permissions)
	}
	return GetDefaultPermissions(a.Role)
}

// AdminAction is one journal row for an operator-initiated mutation.
type AdminAction struct {
	ID         uint   `gorm:"primarykey"`
	AdminID    string `gorm:"index;not null"`
	Action     string `gorm:"not null"`
	TargetType string `gorm:"not null"`
	TargetID   string `gorm:"index"`
	WalletID   string
	WalletType string
	Amount     string
	Reason     string
	Outcome    string `gorm:"default:'pending'"`
	Error      string
	CreatedAt  time.Time
}

// Journal actions
const (
	ActionAdjustPoints  = "adjust_points"
	ActionAdjustBalance = "adjust_balance"
	ActionResetPassword = "reset_password"
	ActionDeleteAccount = "delete_account"
)

// Journal outcomes
const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
)
