package types

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

// EventKind is the on-chain action that produced an inscription event.
type EventKind string

const (
	// EventKindInscribe is the creation of an inscription.
	EventKindInscribe EventKind = "inscribe"
	// EventKindTransfer is an inscription moving to a new owner.
	EventKindTransfer EventKind = "transfer"
)

func (k EventKind) IsValid() bool {
	return k == EventKindInscribe || k == EventKindTransfer
}

// InscriptionEvent is one record of the upstream event feed. Events are
// globally ordered by ID and grouped by BlockHeight.
type InscriptionEvent struct {
	ID                int64
	InscriptionID     string
	InscriptionNumber int64
	BlockHeight       int64
	Kind              EventKind
	From              string
	To                string
	Time              int64 // unix seconds
	Value             int64 // sats of the output carrying the inscription
	Content           string
	Spent             bool
}

// ParseEventTime reads the unix seconds the event feed stores as text, e.g. "1700000000" or "1700000000.0".
func ParseEventTime(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid event time %q", s)
	}
	return d.IntPart(), nil
}
