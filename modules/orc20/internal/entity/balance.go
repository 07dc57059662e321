package entity

import (
	"slices"

	"github.com/shopspring/decimal"
)

type Balance struct {
	ID                string // address + "-" + tokenId
	Address           string
	TokenID           string
	Tick              string
	TickID            string
	InscriptionID     string // deploy inscription of the token
	InscriptionNumber int64
	Balance           decimal.Decimal
	AvailableBalance  decimal.Decimal

	PendingSendPool   Pool
	AvailableSendPool Pool
	SentSendPool      Pool
	ReceivedSendPool  Pool
	ReceivedMintPool  Pool
}

// NewBalance returns an empty balance row of address for token.
func NewBalance(address string, token *Token) *Balance {
	return &Balance{
		ID:                BalanceID(address, token.ID),
		Address:           address,
		TokenID:           token.ID,
		Tick:              token.Tick,
		TickID:            token.TickID,
		InscriptionID:     token.InscriptionID,
		InscriptionNumber: token.InscriptionNumber,
		Balance:           decimal.Zero,
		AvailableBalance:  decimal.Zero,
	}
}

func BalanceID(address, tokenID string) string {
	return address + "-" + tokenID
}

func (b *Balance) Clone() *Balance {
	c := *b
	c.PendingSendPool = slices.Clone(b.PendingSendPool)
	c.AvailableSendPool = slices.Clone(b.AvailableSendPool)
	c.SentSendPool = slices.Clone(b.SentSendPool)
	c.ReceivedSendPool = slices.Clone(b.ReceivedSendPool)
	c.ReceivedMintPool = slices.Clone(b.ReceivedMintPool)
	return &c
}

// Credit raises both balance figures by amount.
func (b *Balance) Credit(amount decimal.Decimal) {
	b.Balance = b.Balance.Add(amount)
	b.AvailableBalance = b.AvailableBalance.Add(amount)
}

// Debit lowers both balance figures by amount.
func (b *Balance) Debit(amount decimal.Decimal) {
	b.Balance = b.Balance.Sub(amount)
	b.AvailableBalance = b.AvailableBalance.Sub(amount)
}

// PoolEntry is one lock or credit tracked by a transfer pool.
// Nonce is only set for send locks.
type PoolEntry struct {
	TransactionID int64           `json:"transaction_id"`
	InscriptionID string          `json:"inscription_id"`
	Nonce         *string         `json:"nonce,omitempty"`
	Amount        decimal.Decimal `json:"amt"`
}

// Pool is an insertion ordered sequence of entries. Lookups return the first match.
type Pool []PoolEntry

// IndexOfInscription returns the index of the first entry for inscriptionID, or -1.
func (p Pool) IndexOfInscription(inscriptionID string) int {
	return slices.IndexFunc(p, func(e PoolEntry) bool {
		return e.InscriptionID == inscriptionID
	})
}

// IndexOfNonce returns the index of the first entry locked with nonce, or -1.
func (p Pool) IndexOfNonce(nonce string) int {
	return slices.IndexFunc(p, func(e PoolEntry) bool {
		return e.Nonce != nil && *e.Nonce == nonce
	})
}

func (p Pool) ContainsInscription(inscriptionID string) bool {
	return p.IndexOfInscription(inscriptionID) >= 0
}

func (p Pool) ContainsNonce(nonce string) bool {
	return p.IndexOfNonce(nonce) >= 0
}

// RemoveAt returns the pool without the entry at i. The receiver is not modified.
func (p Pool) RemoveAt(i int) Pool {
	out := make(Pool, 0, len(p)-1)
	out = append(out, p[:i]...)
	return append(out, p[i+1:]...)
}

// Sum returns the total amount of all entries.
func (p Pool) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, e := range p {
		total = total.Add(e.Amount)
	}
	return total
}
