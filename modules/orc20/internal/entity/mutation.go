package entity

import "github.com/shopspring/decimal"

// Mutation is a single store write produced by processing one event.
// The set of mutations of an event is applied atomically, in order.
type Mutation interface {
	mutation()
}

type (
	// InsertTransaction appends the event's record to the transaction log.
	// It is a no-op when a record with the same id exists.
	InsertTransaction struct{ Transaction *Transaction }

	// UpdateTransaction rewrites the validity of an earlier record. Nil
	// fields are left unchanged.
	UpdateTransaction struct {
		ID            int64
		Valid         bool
		InvalidReason string
		TokenID       *string
		Quantity      *decimal.Decimal
	}

	InsertToken   struct{ Token *Token }
	UpdateToken   struct{ Token *Token }
	InsertBalance struct{ Balance *Balance }
	UpdateBalance struct{ Balance *Balance }
)

func (InsertTransaction) mutation() {}
func (UpdateTransaction) mutation() {}
func (InsertToken) mutation()       {}
func (UpdateToken) mutation()       {}
func (InsertBalance) mutation()     {}
func (UpdateBalance) mutation()     {}
