package cache

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

type EntityType string

const (
	EntityDashboard    EntityType = "dashboard"
	EntityCustomer     EntityType = "customer"
	EntityMerchant     EntityType = "merchant"
	EntityTransactions EntityType = "transactions"
	EntityKYC          EntityType = "kyc"
)

type KeyType string

const (
	KeyID   KeyType = "id"
	KeyList KeyType = "list"
)

// Prefix namespaces every console query key.
const Prefix = "console:query"

// GenerateKey creates a standardized cache key
func GenerateKey(entity EntityType, keyType KeyType, value interface{}) string {
	return fmt.Sprintf("%s:%s:%s:%v", Prefix, entity, keyType, value)
}

// GenerateCompositeKey creates a cache key from query parameters. Parameters
// are sorted so equal queries share a key.
func GenerateCompositeKey(entity EntityType, params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := []string{Prefix, string(entity)}
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, strings.Join(params[k], ",")))
	}
	return strings.Join(parts, ":")
}

// EntityPattern matches every key stored for an entity.
func EntityPattern(entity EntityType) string {
	return fmt.Sprintf("%s:%s:*", Prefix, entity)
}
