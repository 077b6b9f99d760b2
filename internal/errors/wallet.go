package errors

import "net/http"

var (
	ErrWalletNotConfigured = &DomainError{
		Code:    "WALLET_NOT_CONFIGURED",
		Message: "account doesn't have a configured wallet",
		Status:  http.StatusUnprocessableEntity,
	}
	ErrAdminNotFound = &DomainError{
		Code:    "ADMIN_NOT_FOUND",
		Message: "Admin user not found",
		Status:  http.StatusUnauthorized,
	}
	ErrInvalidAdjustment = &DomainError{
		Code:    "INVALID_ADJUSTMENT",
		Message: "invalid adjustment",
		Status:  http.StatusBadRequest,
	}
	ErrInvalidPassword = &DomainError{
		Code:    "INVALID_PASSWORD",
		Message: "password must be at least 8 characters and contain special characters",
		Status:  http.StatusBadRequest,
	}
	ErrInvalidDialog = &DomainError{
		Code:    "INVALID_DIALOG",
		Message: "unknown dialog",
		Status:  http.StatusBadRequest,
	}
	ErrDialogNotOpen = &DomainError{
		Code:    "DIALOG_NOT_OPEN",
		Message: "dialog is not open",
		Status:  http.StatusConflict,
	}
)

// IsPrecondition reports whether err aborted an action before any request
// was made. Views answer these with a notice rather than an error status.
func IsPrecondition(err error) bool {
	switch Code(err) {
	case ErrWalletNotConfigured.Code, ErrAdminNotFound.Code:
		return true
	default:
		return false
	}
}
