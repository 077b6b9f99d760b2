package validation

import (
	"regexp"

	"orusconsole/internal/errors"
	"orusconsole/internal/models"
)

var specialChars = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)

// HasSpecialChar checks if a string contains at least one special character
func HasSpecialChar(s string) bool {
	return specialChars.MatchString(s)
}

// ValidatePasswordReset applies the structural rules and the special
// character rule to a reset request.
func (v *Validator) ValidatePasswordReset(req models.PasswordReset) error {
	if err := v.Validate(req); err != nil {
		return errors.ErrInvalidPassword.WithMessage("%s", err.Error())
	}
	if len(req.NewPassword) < MinPasswordLength || !HasSpecialChar(req.NewPassword) {
		return errors.ErrInvalidPassword
	}
	return nil
}
