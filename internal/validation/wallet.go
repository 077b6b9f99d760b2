package validation

import (
	"orusconsole/internal/errors"
	"orusconsole/internal/models"
)

// ValidatePointsAdjustment rejects empty, zero, or oversized point changes.
func (v *Validator) ValidatePointsAdjustment(req models.PointsAdjustment) error {
	if err := v.Validate(req); err != nil {
		return errors.ErrInvalidAdjustment.WithMessage("%s", err.Error())
	}
	if req.Points.Abs().GreaterThan(MaxPointsAdjustment) {
		return errors.ErrInvalidAdjustment.WithMessage("points adjustment exceeds %s", MaxPointsAdjustment.String())
	}
	return nil
}

// ValidateBalanceAdjustment rejects empty, zero, or oversized balance changes.
func (v *Validator) ValidateBalanceAdjustment(req models.BalanceAdjustment) error {
	if err := v.Validate(req); err != nil {
		return errors.ErrInvalidAdjustment.WithMessage("%s", err.Error())
	}
	if req.Balance.Abs().GreaterThan(MaxBalanceAdjustment) {
		return errors.ErrInvalidAdjustment.WithMessage("balance adjustment exceeds %s", MaxBalanceAdjustment.String())
	}
	return nil
}
