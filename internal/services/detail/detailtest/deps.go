// Package detailtest wires detail view dependencies around a mocked
// platform client for tests.
package detailtest

import (
	"orusconsole/internal/platform/mocks"
	"orusconsole/internal/services/account"
	"orusconsole/internal/services/journal"
	"orusconsole/internal/services/query"
	"orusconsole/internal/services/wallet"
	"orusconsole/internal/validation"

	"go.uber.org/zap"
)

// Services are the real services built on top of a mocked client.
type Services struct {
	Client   *mocks.Client
	Queries  query.Service
	Wallets  wallet.Service
	Accounts account.Service
	Logger   *zap.Logger
}

func New() Services {
	return NewCached(nil)
}

// NewCached is New with the query service memoizing into c.
func NewCached(c query.Cache) Services {
	logger := zap.NewNop()
	client := new(mocks.Client)
	queries := query.NewService(client, c, logger)
	validator := validation.New()
	j := journal.New(nil, logger)
	return Services{
		Client:   client,
		Queries:  queries,
		Wallets:  wallet.NewService(client, queries, validator, j, nil),
		Accounts: account.NewService(client, queries, validator, j),
		Logger:   logger,
	}
}
