package detail

import (
	"context"
	"errors"
	"testing"

	apperrors "orusconsole/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_ErrorThenRetry(t *testing.T) {
	calls := 0
	l := NewLoader(func(context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("timeout")
		}
		return "ok", nil
	})

	state, _, _ := l.Snapshot()
	assert.Equal(t, StateIdle, state)

	require.Error(t, l.Load(context.Background()))
	state, _, err := l.Snapshot()
	assert.Equal(t, StateError, state)
	assert.EqualError(t, err, "timeout")

	require.NoError(t, l.Retry(context.Background()))
	state, data, err := l.Snapshot()
	assert.Equal(t, StateSuccess, state)
	assert.Equal(t, "ok", data)
	assert.NoError(t, err)

	// a held result is not fetched again
	require.NoError(t, l.Load(context.Background()))
	assert.Equal(t, 2, calls)
}

func TestTabs(t *testing.T) {
	tabs := NewTabs(TabOverview, TabKYC, TabTransactions, TabRewards)
	assert.Equal(t, TabOverview, tabs.Active())

	tab, err := tabs.Switch("kyc")
	require.NoError(t, err)
	assert.Equal(t, TabKYC, tab)
	assert.Equal(t, TabKYC, tabs.Active())

	_, err = tabs.Switch("reviews")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTab)
	assert.Equal(t, TabKYC, tabs.Active())

	customerTabs := NewTabs(TabOverview, TabTransactions, TabRewards)
	_, err = customerTabs.Switch("kyc")
	assert.Error(t, err)
}

func TestStatusFor(t *testing.T) {
	loading := StatusFor("customer", StateLoading, nil)
	assert.Equal(t, "Loading customer details...", loading.Loading.Message)
	assert.Nil(t, loading.Error)

	failed := StatusFor("merchant", StateError, nil)
	require.NotNil(t, failed.Error)
	assert.Equal(t, "Error Loading Merchant", failed.Error.Title)
	assert.Equal(t, "There was an error loading the merchant data. Please try again.", failed.Error.Message)
	assert.Equal(t, "Retry", failed.Error.ActionLabel)

	withCause := StatusFor("customer", StateError, errors.New("platform API returned 404: not found"))
	assert.Equal(t, "platform API returned 404: not found", withCause.Error.Message)

	assert.Nil(t, StatusFor("customer", StateSuccess, nil).Loading)
}
