package entity

import "github.com/shopspring/decimal"

type Method string

const (
	MethodInscribeDeploy    Method = "inscribe-deploy"
	MethodInscribeMint      Method = "inscribe-mint"
	MethodInscribeSend      Method = "inscribe-send"
	MethodInscribeRemaining Method = "inscribe-remaining"
	MethodInscribeCancel    Method = "inscribe-cancel"
	MethodInscribeUpgrade   Method = "inscribe-upgrade"
	MethodTransfer          Method = "transfer"
	MethodTransferUpgrade   Method = "transfer-upgrade"
)

// Transaction is the log record of one processed event. ID is the event id.
type Transaction struct {
	ID                int64
	BlockHeight       int64
	InscriptionID     string
	InscriptionNumber int64
	Method            Method
	TokenID           *string
	Quantity          *decimal.Decimal
	From              string
	To                string
	Time              int64
	Valid             bool
	InvalidReason     string
}

func (t *Transaction) Clone() *Transaction {
	c := *t
	c.TokenID = clonePtr(t.TokenID)
	c.Quantity = clonePtr(t.Quantity)
	return &c
}

// Invalidate marks the transaction invalid with reason.
func (t *Transaction) Invalidate(reason string) {
	t.Valid = false
	t.InvalidReason = reason
}

// Validate marks the transaction valid.
func (t *Transaction) Validate() {
	t.Valid = true
	t.InvalidReason = ""
}

// TransactionFilter selects transaction log records. Zero fields are ignored.
type TransactionFilter struct {
	Address     string // matches either side
	TokenID     string
	BlockHeight int64
	Limit       int32
	Offset      int32
}
