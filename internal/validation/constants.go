package validation

import "github.com/shopspring/decimal"

const (
	// Password rules for operator-initiated resets
	MinPasswordLength = 8
)

var (
	// Largest single adjustment an operator may submit, either direction.
	MaxPointsAdjustment  = decimal.NewFromInt(1_000_000)
	MaxBalanceAdjustment = decimal.NewFromInt(100_000)
)
