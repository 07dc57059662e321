package orc20

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
	"github.com/gaze-network/orc20-indexer/pkg/decimals"
	"github.com/shopspring/decimal"
)

const (
	// OIP3Height is the first block where a deploy's tick id is its inscription number.
	OIP3Height = 788836

	// UpgradeActivationAddress receives upgrade inscriptions to activate them.
	UpgradeActivationAddress = "bc1pgha2vs4m4d70aw82qzrhmg98yea4fuxtnf7lpguez3z9cjtukpssrhakhl"
)

var ErrUnknownOp = errors.New("unknown op")

type Op string

const (
	OpDeploy  Op = "deploy"
	OpMint    Op = "mint"
	OpSend    Op = "send"
	OpCancel  Op = "cancel"
	OpUpgrade Op = "upgrade"
)

// ParseOp maps the payload "op" value to an Op. "transfer" is an alias of "send".
func ParseOp(s string) (Op, bool) {
	switch strings.ToLower(s) {
	case "deploy":
		return OpDeploy, true
	case "mint":
		return OpMint, true
	case "send", "transfer":
		return OpSend, true
	case "cancel":
		return OpCancel, true
	case "upgrade":
		return OpUpgrade, true
	default:
		return "", false
	}
}

// Operation is one of *Deploy, *Mint, *Send, *Cancel or *Upgrade.
type Operation interface {
	Op() Op
	operation()
}

// TokenRef identifies a token by tick and tick id as written in a payload.
type TokenRef struct {
	Tick   string
	TickID string
}

// ID returns the token key for the reference.
func (r TokenRef) ID() string {
	return TokenID(r.Tick, r.TickID)
}

func TokenID(tick, tickID string) string {
	return tick + "-" + tickID
}

type Deploy struct {
	TokenRef
	Name string
	V    string
	Msg  string
	Ug   bool
	Wp   bool
	Dec  int
	Max  decimal.Decimal
	Lim  decimal.Decimal
}

type Mint struct {
	TokenRef
	Amount decimal.Decimal
	Msg    string
}

// Send locks Amount under Nonce. A send without amount is a "remaining" that
// settles all locks of the sender.
type Send struct {
	TokenRef
	Nonce  string
	Amount *decimal.Decimal
	Msg    string
}

func (s *Send) IsRemaining() bool {
	return s.Amount == nil
}

type Cancel struct {
	TokenRef
	Nonces []string
	Msg    string
}

// Upgrade carries the raw upgrade payload. Its fields can only be validated
// against the token being upgraded, see Resolve.
type Upgrade struct {
	TokenRef
	content Content
}

func (*Deploy) Op() Op  { return OpDeploy }
func (*Mint) Op() Op    { return OpMint }
func (*Send) Op() Op    { return OpSend }
func (*Cancel) Op() Op  { return OpCancel }
func (*Upgrade) Op() Op { return OpUpgrade }

func (*Deploy) operation()  {}
func (*Mint) operation()    {}
func (*Send) operation()    {}
func (*Cancel) operation()  {}
func (*Upgrade) operation() {}

// Parse validates content as the operation named by its "op" field.
// blockHeight and inscriptionNumber are those of the inscribing event; only a
// deploy uses them.
func Parse(content Content, blockHeight int64, inscriptionNumber int64) (Operation, error) {
	op, ok := ParseOp(content.Op())
	if !ok {
		return nil, errors.Wrapf(ErrUnknownOp, "op %q", content.Op())
	}
	switch op {
	case OpDeploy:
		return ParseDeploy(content, blockHeight, inscriptionNumber)
	case OpMint:
		return ParseMint(content)
	case OpSend:
		return ParseSend(content)
	case OpCancel:
		return ParseCancel(content)
	case OpUpgrade:
		return ParseUpgrade(content)
	}
	return nil, errors.Wrapf(ErrUnknownOp, "op %q", op)
}

func parseTokenRef(content Content) (TokenRef, error) {
	tick, err := content.tick()
	if err != nil {
		return TokenRef{}, err
	}
	tickID, err := content.tickID()
	if err != nil {
		return TokenRef{}, err
	}
	return TokenRef{Tick: tick, TickID: tickID}, nil
}

func ParseDeploy(content Content, blockHeight int64, inscriptionNumber int64) (*Deploy, error) {
	tick, err := content.tick()
	if err != nil {
		return nil, err
	}

	var tickID string
	if blockHeight >= OIP3Height {
		tickID = strconv.FormatInt(inscriptionNumber, 10)
	} else if tickID, err = content.tickID(); err != nil {
		return nil, err
	}

	dec, err := content.dec()
	if err != nil {
		return nil, err
	}

	supply := decimals.MaxUint256
	if content.Has("max") {
		if supply, err = content.bounded("max", dec); err != nil {
			return nil, err
		}
	}

	lim := DefaultLim
	if content.Has("lim") {
		if lim, err = content.bounded("lim", dec); err != nil {
			return nil, err
		}
	}
	if lim.GreaterThan(supply) {
		return nil, invalid("lim")
	}

	ug, err := content.flag("ug")
	if err != nil {
		return nil, err
	}
	wp, err := content.flag("wp")
	if err != nil {
		return nil, err
	}

	return &Deploy{
		TokenRef: TokenRef{Tick: tick, TickID: tickID},
		Name:     content.optionalText("name"),
		V:        content.optionalText("v"),
		Msg:      content.optionalText("msg"),
		Ug:       ug,
		Wp:       wp,
		Dec:      dec,
		Max:      supply,
		Lim:      lim,
	}, nil
}

func ParseMint(content Content) (*Mint, error) {
	ref, err := parseTokenRef(content)
	if err != nil {
		return nil, err
	}
	amt, err := content.amount("amt")
	if err != nil {
		return nil, err
	}
	return &Mint{
		TokenRef: ref,
		Amount:   amt,
		Msg:      content.optionalText("msg"),
	}, nil
}

func ParseSend(content Content) (*Send, error) {
	ref, err := parseTokenRef(content)
	if err != nil {
		return nil, err
	}
	nonce, ok := content["n"]
	if !ok {
		return nil, invalid("n")
	}
	send := &Send{
		TokenRef: ref,
		Nonce:    normalizeNonce(nonce),
		Msg:      content.optionalText("msg"),
	}
	if content.Has("amt") {
		amt, err := content.amount("amt")
		if err != nil {
			return nil, err
		}
		send.Amount = &amt
	}
	return send, nil
}

func ParseCancel(content Content) (*Cancel, error) {
	ref, err := parseTokenRef(content)
	if err != nil {
		return nil, err
	}
	raw, ok := content["n"]
	if !ok {
		return nil, invalid("n")
	}
	nonces, err := parseNonceList(raw)
	if err != nil {
		return nil, invalid("n")
	}
	return &Cancel{
		TokenRef: ref,
		Nonces:   nonces,
		Msg:      content.optionalText("msg"),
	}, nil
}

func ParseUpgrade(content Content) (*Upgrade, error) {
	ref, err := parseTokenRef(content)
	if err != nil {
		return nil, err
	}
	return &Upgrade{TokenRef: ref, content: content}, nil
}

// Resolve validates the fields present in the upgrade against the token's
// current dec, max and lim. Absent fields are left unset, except dec which
// is inherited.
func (u *Upgrade) Resolve(token *entity.Token) (entity.UpgradeContent, error) {
	c := u.content
	result := entity.UpgradeContent{Dec: token.Dec}

	if c.Has("dec") {
		dec, err := c.dec()
		if err != nil {
			return entity.UpgradeContent{}, err
		}
		result.Dec = dec
	}
	if c.Has("v") {
		v := c.optionalText("v")
		result.V = &v
	}
	if c.Has("msg") {
		msg := c.optionalText("msg")
		result.Msg = &msg
	}
	if c.Has("ug") {
		ug, err := c.flag("ug")
		if err != nil {
			return entity.UpgradeContent{}, err
		}
		result.Ug = &ug
	}

	supply := token.Max
	if c.Has("max") {
		m, err := c.bounded("max", result.Dec)
		if err != nil {
			return entity.UpgradeContent{}, err
		}
		supply = m
		result.Max = &m
	}
	if c.Has("lim") {
		lim, err := c.bounded("lim", result.Dec)
		if err != nil {
			return entity.UpgradeContent{}, err
		}
		if lim.GreaterThan(supply) {
			return entity.UpgradeContent{}, invalid("lim")
		}
		result.Lim = &lim
	} else if result.Max != nil && token.Lim.GreaterThan(supply) {
		return entity.UpgradeContent{}, invalid("lim")
	}
	return result, nil
}
