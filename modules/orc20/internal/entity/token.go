package entity

import (
	"slices"

	"github.com/shopspring/decimal"
)

type Token struct {
	ID                string // tick + "-" + tickId
	Tick              string
	TickID            string
	Name              string
	V                 string
	Msg               string
	Upgradable        bool // ug
	WP                bool // wp
	Dec               int
	Max               decimal.Decimal
	Lim               decimal.Decimal
	InscriptionID     string
	InscriptionNumber int64
	Deployer          string
	DeployTime        int64
	Minted            decimal.Decimal
	StartNumber       *int64
	StartTime         *int64
	EndNumber         *int64
	EndTime           *int64
	UpgradeTime       *int64
	UpgradePending    []UpgradeRecord
	UpgradeHistory    []UpgradeRecord
}

// MintEnded reports whether the token has been minted out.
func (t *Token) MintEnded() bool {
	return t.EndNumber != nil
}

// Clone returns a deep copy so a working set never aliases cached records.
func (t *Token) Clone() *Token {
	c := *t
	c.StartNumber = clonePtr(t.StartNumber)
	c.StartTime = clonePtr(t.StartTime)
	c.EndNumber = clonePtr(t.EndNumber)
	c.EndTime = clonePtr(t.EndTime)
	c.UpgradeTime = clonePtr(t.UpgradeTime)
	c.UpgradePending = cloneUpgradeRecords(t.UpgradePending)
	c.UpgradeHistory = cloneUpgradeRecords(t.UpgradeHistory)
	return &c
}

// UpgradeRecord is a proposed (pending) or applied (history) parameter change.
type UpgradeRecord struct {
	InscriptionIndex       int64          `json:"inscription_index"`
	InscriptionTime        int64          `json:"inscription_time"`
	InscriptionBlockHeight int64          `json:"inscription_block_height"`
	InscriptionID          string         `json:"inscription_id"`
	InscriptionNumber      int64          `json:"inscription_number"`
	Content                UpgradeContent `json:"content"`

	EffectiveIndex       *int64 `json:"effective_index,omitempty"`
	EffectiveTime        *int64 `json:"effective_time,omitempty"`
	EffectiveBlockHeight *int64 `json:"effective_block_height,omitempty"`
}

// UpgradeContent holds the token fields an upgrade sets. Dec is always present,
// inherited from the token when the payload omits it.
type UpgradeContent struct {
	Dec int              `json:"dec"`
	V   *string          `json:"v,omitempty"`
	Msg *string          `json:"msg,omitempty"`
	Ug  *bool            `json:"ug,omitempty"`
	Max *decimal.Decimal `json:"max,omitempty"`
	Lim *decimal.Decimal `json:"lim,omitempty"`
}

// ApplyTo writes the upgrade fields onto the token.
func (c UpgradeContent) ApplyTo(t *Token) {
	t.Dec = c.Dec
	if c.V != nil {
		t.V = *c.V
	}
	if c.Msg != nil {
		t.Msg = *c.Msg
	}
	if c.Ug != nil {
		t.Upgradable = *c.Ug
	}
	if c.Max != nil {
		t.Max = *c.Max
	}
	if c.Lim != nil {
		t.Lim = *c.Lim
	}
}

func cloneUpgradeRecords(src []UpgradeRecord) []UpgradeRecord {
	if src == nil {
		return nil
	}
	dst := slices.Clone(src)
	for i := range dst {
		dst[i].EffectiveIndex = clonePtr(src[i].EffectiveIndex)
		dst[i].EffectiveTime = clonePtr(src[i].EffectiveTime)
		dst[i].EffectiveBlockHeight = clonePtr(src[i].EffectiveBlockHeight)
	}
	return dst
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
