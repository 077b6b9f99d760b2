/*
Package wallet adjusts customer and merchant wallets on behalf of the
signed-in operator.

Every adjustment:
  - requires an operator identity on the context (auth.WithAdminID)
  - is validated before anything is sent to the platform
  - is written to the admin action journal with its outcome
  - invalidates the memoized reads it makes stale

Usage:

	svc := wallet.NewService(client, queries, validator, journal, metrics)

	err := svc.AdjustPoints(auth.WithAdminID(ctx, adminID), wallet.Adjustment{
	    Kind:       models.KindCustomer,
	    AccountID:  "c-1",
	    WalletID:   "w-9",
	    WalletType: models.WalletTypePoints,
	    Amount:     decimal.NewFromInt(50),
	    Reason:     "goodwill",
	})

Errors:
  - errors.ErrAdminNotFound: no operator identity; nothing was sent
  - errors.ErrInvalidAdjustment: the request failed validation
  - errors.ErrUpstream (via platform.APIError): the platform refused or was unreachable
*/
package wallet
