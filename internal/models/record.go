package models

import "time"

// Searchable field names accepted by list filters.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldID      = "id"
	FieldAddress = "address"
)

// Field is one searchable value of a record.
type Field struct {
	Name  string
	Value string
}

// Record is what list and detail views need from a customer or merchant.
type Record interface {
	ID() string
	DisplayName() string
	Wallet() string
	RecordStatus() string
	Joined() *time.Time
	SearchFields() []Field
}

// EntityKind names the account type a view is working on.
type EntityKind string

const (
	KindCustomer EntityKind = "customer"
	KindMerchant EntityKind = "merchant"
)
