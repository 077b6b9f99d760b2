package platform

import (
	"encoding/json"

	"orusconsole/internal/models"
)

type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

// customerEnvelope is the customer detail answer, which nests the record one
// level deeper than every other endpoint and carries the level beside it.
type customerEnvelope struct {
	Data struct {
		Data *models.Customer `json:"data"`
	} `json:"data"`
	Level string `json:"level"`
}

// adjustmentPayload sends amounts as JSON numbers, which the platform expects.
type adjustmentPayload struct {
	WalletID   string      `json:"walletId"`
	Points     json.Number `json:"points,omitempty"`
	Balance    json.Number `json:"balance,omitempty"`
	Reason     string      `json:"reason"`
	AdminID    string      `json:"adminId"`
	WalletType string      `json:"walletType"`
}
