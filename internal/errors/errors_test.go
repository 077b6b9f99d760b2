package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_IsMatchesByCode(t *testing.T) {
	specific := ErrWalletNotConfigured.WithMessage("This customer %s doesn't have a configured wallet", "Ada")
	wrapped := fmt.Errorf("open dialog: %w", specific)

	assert.True(t, stderrors.Is(wrapped, ErrWalletNotConfigured))
	assert.False(t, stderrors.Is(wrapped, ErrAdminNotFound))
	assert.Equal(t, "This customer Ada doesn't have a configured wallet", specific.Error())
}

func TestHTTPStatusAndCode(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"domain", ErrInvalidPeriod, http.StatusBadRequest, "INVALID_PERIOD"},
		{"wrapped", Wrap(ErrViewNotFound, "lookup"), http.StatusNotFound, "VIEW_NOT_FOUND"},
		{"plain", stderrors.New("boom"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
			assert.Equal(t, tt.code, Code(tt.err))
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
}

func TestIsPrecondition(t *testing.T) {
	assert.True(t, IsPrecondition(ErrAdminNotFound))
	assert.True(t, IsPrecondition(Wrap(ErrWalletNotConfigured.WithMessage("no wallet"), "open dialog")))
	assert.False(t, IsPrecondition(ErrUpstream))
	assert.False(t, IsPrecondition(nil))
}
