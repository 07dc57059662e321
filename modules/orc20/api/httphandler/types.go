package httphandler

import (
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
	"github.com/shopspring/decimal"
)

type token struct {
	ID                string                 `json:"id"`
	Tick              string                 `json:"tick"`
	TickID            string                 `json:"tickId"`
	Name              string                 `json:"name"`
	Version           string                 `json:"v"`
	Msg               string                 `json:"msg"`
	Upgradable        bool                   `json:"upgradable"`
	WP                bool                   `json:"wp"`
	Decimals          int                    `json:"decimals"`
	Max               decimal.Decimal        `json:"max"`
	Limit             decimal.Decimal        `json:"limit"`
	Minted            decimal.Decimal        `json:"minted"`
	InscriptionID     string                 `json:"inscriptionId"`
	InscriptionNumber int64                  `json:"inscriptionNumber"`
	Deployer          string                 `json:"deployer"`
	DeployTime        int64                  `json:"deployTime"`
	MintStartNumber   *int64                 `json:"mintStartNumber"`
	MintStartTime     *int64                 `json:"mintStartTime"`
	MintEndNumber     *int64                 `json:"mintEndNumber"`
	MintEndTime       *int64                 `json:"mintEndTime"`
	UpgradeTime       *int64                 `json:"upgradeTime"`
	UpgradePending    []entity.UpgradeRecord `json:"upgradePending"`
	UpgradeHistory    []entity.UpgradeRecord `json:"upgradeHistory"`
}

func mapToken(src *entity.Token) token {
	return token{
		ID:                src.ID,
		Tick:              src.Tick,
		TickID:            src.TickID,
		Name:              src.Name,
		Version:           src.V,
		Msg:               src.Msg,
		Upgradable:        src.Upgradable,
		WP:                src.WP,
		Decimals:          src.Dec,
		Max:               src.Max,
		Limit:             src.Lim,
		Minted:            src.Minted,
		InscriptionID:     src.InscriptionID,
		InscriptionNumber: src.InscriptionNumber,
		Deployer:          src.Deployer,
		DeployTime:        src.DeployTime,
		MintStartNumber:   src.StartNumber,
		MintStartTime:     src.StartTime,
		MintEndNumber:     src.EndNumber,
		MintEndTime:       src.EndTime,
		UpgradeTime:       src.UpgradeTime,
		UpgradePending:    nilToEmpty(src.UpgradePending),
		UpgradeHistory:    nilToEmpty(src.UpgradeHistory),
	}
}

type balance struct {
	Address           string          `json:"address"`
	TokenID           string          `json:"tokenId"`
	Tick              string          `json:"tick"`
	TickID            string          `json:"tickId"`
	InscriptionID     string          `json:"inscriptionId"`
	InscriptionNumber int64           `json:"inscriptionNumber"`
	Balance           decimal.Decimal `json:"balance"`
	AvailableBalance  decimal.Decimal `json:"availableBalance"`
	PendingSend       entity.Pool     `json:"pendingSendPool"`
	AvailableSend     entity.Pool     `json:"availableSendPool"`
	SentSend          entity.Pool     `json:"sentSendPool"`
	ReceivedSend      entity.Pool     `json:"receivedSendPool"`
	ReceivedMint      entity.Pool     `json:"receivedMintPool"`
}

func mapBalance(src *entity.Balance) balance {
	return balance{
		Address:           src.Address,
		TokenID:           src.TokenID,
		Tick:              src.Tick,
		TickID:            src.TickID,
		InscriptionID:     src.InscriptionID,
		InscriptionNumber: src.InscriptionNumber,
		Balance:           src.Balance,
		AvailableBalance:  src.AvailableBalance,
		PendingSend:       nilToEmpty(src.PendingSendPool),
		AvailableSend:     nilToEmpty(src.AvailableSendPool),
		SentSend:          nilToEmpty(src.SentSendPool),
		ReceivedSend:      nilToEmpty(src.ReceivedSendPool),
		ReceivedMint:      nilToEmpty(src.ReceivedMintPool),
	}
}

type transaction struct {
	ID                int64            `json:"id"`
	BlockHeight       int64            `json:"blockHeight"`
	InscriptionID     string           `json:"inscriptionId"`
	InscriptionNumber int64            `json:"inscriptionNumber"`
	Method            entity.Method    `json:"method"`
	TokenID           *string          `json:"tokenId"`
	Quantity          *decimal.Decimal `json:"quantity"`
	From              string           `json:"from"`
	To                string           `json:"to"`
	Time              int64            `json:"time"`
	Valid             bool             `json:"valid"`
	InvalidReason     string           `json:"invalidReason,omitempty"`
}

func mapTransaction(src *entity.Transaction) transaction {
	return transaction{
		ID:                src.ID,
		BlockHeight:       src.BlockHeight,
		InscriptionID:     src.InscriptionID,
		InscriptionNumber: src.InscriptionNumber,
		Method:            src.Method,
		TokenID:           src.TokenID,
		Quantity:          src.Quantity,
		From:              src.From,
		To:                src.To,
		Time:              src.Time,
		Valid:             src.Valid,
		InvalidReason:     src.InvalidReason,
	}
}

func nilToEmpty[S ~[]E, E any](s S) S {
	if s == nil {
		return S{}
	}
	return s
}
