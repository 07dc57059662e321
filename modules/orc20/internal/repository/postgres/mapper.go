package postgres

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/core/types"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/repository/postgres/gen"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func decimalFromNumeric(src pgtype.Numeric) (decimal.Decimal, error) {
	if !src.Valid {
		return decimal.Zero, nil
	}
	bytes, err := src.MarshalJSON()
	if err != nil {
		return decimal.Decimal{}, errors.WithStack(err)
	}
	result, err := decimal.NewFromString(string(bytes))
	if err != nil {
		return decimal.Decimal{}, errors.WithStack(err)
	}
	return result, nil
}

func numericFromDecimal(src decimal.Decimal) (pgtype.Numeric, error) {
	var result pgtype.Numeric
	if err := result.UnmarshalJSON([]byte(src.String())); err != nil {
		return pgtype.Numeric{}, errors.WithStack(err)
	}
	return result, nil
}

func optionalDecimalFromNumeric(src pgtype.Numeric) (*decimal.Decimal, error) {
	if !src.Valid {
		return nil, nil
	}
	result, err := decimalFromNumeric(src)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func numericFromOptionalDecimal(src *decimal.Decimal) (pgtype.Numeric, error) {
	if src == nil {
		return pgtype.Numeric{}, nil
	}
	return numericFromDecimal(*src)
}

func int64FromInt8(src pgtype.Int8) *int64 {
	if !src.Valid {
		return nil
	}
	v := src.Int64
	return &v
}

func int8FromInt64(src *int64) pgtype.Int8 {
	if src == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *src, Valid: true}
}

func stringFromText(src pgtype.Text) *string {
	if !src.Valid {
		return nil
	}
	v := src.String
	return &v
}

func textFromString(src *string) pgtype.Text {
	if src == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *src, Valid: true}
}

// marshalList encodes a list column. Empty lists are stored as [] rather than null.
func marshalList[T any](src []T) ([]byte, error) {
	if len(src) == 0 {
		return []byte("[]"), nil
	}
	bytes, err := json.Marshal(src)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return bytes, nil
}

func unmarshalList[T any](src []byte) ([]T, error) {
	if len(src) == 0 {
		return nil, nil
	}
	var result []T
	if err := json.Unmarshal(src, &result); err != nil {
		return nil, errors.WithStack(err)
	}
	if len(result) == 0 {
		return nil, nil
	}
	return result, nil
}

func mapTokenModelToType(src gen.Orc20Token) (entity.Token, error) {
	supply, err := decimalFromNumeric(src.Max)
	if err != nil {
		return entity.Token{}, errors.Wrap(err, "failed to parse max")
	}
	lim, err := decimalFromNumeric(src.Lim)
	if err != nil {
		return entity.Token{}, errors.Wrap(err, "failed to parse lim")
	}
	minted, err := decimalFromNumeric(src.Minted)
	if err != nil {
		return entity.Token{}, errors.Wrap(err, "failed to parse minted")
	}
	upgradePending, err := unmarshalList[entity.UpgradeRecord](src.UpgradePending)
	if err != nil {
		return entity.Token{}, errors.Wrap(err, "failed to parse upgrade pending")
	}
	upgradeHistory, err := unmarshalList[entity.UpgradeRecord](src.UpgradeHistory)
	if err != nil {
		return entity.Token{}, errors.Wrap(err, "failed to parse upgrade history")
	}
	return entity.Token{
		ID:                src.ID,
		Tick:              src.Tick,
		TickID:            src.TickID,
		Name:              src.Name,
		V:                 src.V,
		Msg:               src.Msg,
		Upgradable:        src.Ug,
		WP:                src.Wp,
		Dec:               int(src.Dec),
		Max:               supply,
		Lim:               lim,
		InscriptionID:     src.InscriptionID,
		InscriptionNumber: src.InscriptionNumber,
		Deployer:          src.Deployer,
		DeployTime:        src.DeployTime,
		Minted:            minted,
		StartNumber:       int64FromInt8(src.StartNumber),
		StartTime:         int64FromInt8(src.StartTime),
		EndNumber:         int64FromInt8(src.EndNumber),
		EndTime:           int64FromInt8(src.EndTime),
		UpgradeTime:       int64FromInt8(src.UpgradeTime),
		UpgradePending:    upgradePending,
		UpgradeHistory:    upgradeHistory,
	}, nil
}

func mapTokenTypeToParams(src *entity.Token) (gen.UpsertTokensParams, error) {
	supply, err := numericFromDecimal(src.Max)
	if err != nil {
		return gen.UpsertTokensParams{}, errors.Wrap(err, "failed to convert max")
	}
	lim, err := numericFromDecimal(src.Lim)
	if err != nil {
		return gen.UpsertTokensParams{}, errors.Wrap(err, "failed to convert lim")
	}
	minted, err := numericFromDecimal(src.Minted)
	if err != nil {
		return gen.UpsertTokensParams{}, errors.Wrap(err, "failed to convert minted")
	}
	upgradePending, err := marshalList(src.UpgradePending)
	if err != nil {
		return gen.UpsertTokensParams{}, errors.Wrap(err, "failed to marshal upgrade pending")
	}
	upgradeHistory, err := marshalList(src.UpgradeHistory)
	if err != nil {
		return gen.UpsertTokensParams{}, errors.Wrap(err, "failed to marshal upgrade history")
	}
	return gen.UpsertTokensParams{
		ID:                src.ID,
		Tick:              src.Tick,
		TickID:            src.TickID,
		Name:              src.Name,
		V:                 src.V,
		Msg:               src.Msg,
		Ug:                src.Upgradable,
		Wp:                src.WP,
		Dec:               int16(src.Dec),
		Max:               supply,
		Lim:               lim,
		InscriptionID:     src.InscriptionID,
		InscriptionNumber: src.InscriptionNumber,
		Deployer:          src.Deployer,
		DeployTime:        src.DeployTime,
		Minted:            minted,
		StartNumber:       int8FromInt64(src.StartNumber),
		StartTime:         int8FromInt64(src.StartTime),
		EndNumber:         int8FromInt64(src.EndNumber),
		EndTime:           int8FromInt64(src.EndTime),
		UpgradeTime:       int8FromInt64(src.UpgradeTime),
		UpgradePending:    upgradePending,
		UpgradeHistory:    upgradeHistory,
	}, nil
}

func mapBalanceModelToType(src gen.Orc20Balance) (entity.Balance, error) {
	balance, err := decimalFromNumeric(src.Balance)
	if err != nil {
		return entity.Balance{}, errors.Wrap(err, "failed to parse balance")
	}
	available, err := decimalFromNumeric(src.AvailableBalance)
	if err != nil {
		return entity.Balance{}, errors.Wrap(err, "failed to parse available balance")
	}
	pools := [...][]byte{src.PendingSendPool, src.AvailableSendPool, src.SentSendPool, src.ReceivedSendPool, src.ReceivedMintPool}
	var parsed [len(pools)]entity.Pool
	for i, raw := range pools {
		if parsed[i], err = unmarshalList[entity.PoolEntry](raw); err != nil {
			return entity.Balance{}, errors.Wrap(err, "failed to parse pool")
		}
	}
	return entity.Balance{
		ID:                src.ID,
		Address:           src.Address,
		TokenID:           src.TokenID,
		Tick:              src.Tick,
		TickID:            src.TickID,
		InscriptionID:     src.InscriptionID,
		InscriptionNumber: src.InscriptionNumber,
		Balance:           balance,
		AvailableBalance:  available,
		PendingSendPool:   parsed[0],
		AvailableSendPool: parsed[1],
		SentSendPool:      parsed[2],
		ReceivedSendPool:  parsed[3],
		ReceivedMintPool:  parsed[4],
	}, nil
}

func mapBalanceTypeToParams(src *entity.Balance) (gen.UpsertBalancesParams, error) {
	balance, err := numericFromDecimal(src.Balance)
	if err != nil {
		return gen.UpsertBalancesParams{}, errors.Wrap(err, "failed to convert balance")
	}
	available, err := numericFromDecimal(src.AvailableBalance)
	if err != nil {
		return gen.UpsertBalancesParams{}, errors.Wrap(err, "failed to convert available balance")
	}
	pools := [...]entity.Pool{src.PendingSendPool, src.AvailableSendPool, src.SentSendPool, src.ReceivedSendPool, src.ReceivedMintPool}
	var encoded [len(pools)][]byte
	for i, pool := range pools {
		if encoded[i], err = marshalList(pool); err != nil {
			return gen.UpsertBalancesParams{}, errors.Wrap(err, "failed to marshal pool")
		}
	}
	return gen.UpsertBalancesParams{
		ID:                src.ID,
		Address:           src.Address,
		TokenID:           src.TokenID,
		Tick:              src.Tick,
		TickID:            src.TickID,
		InscriptionID:     src.InscriptionID,
		InscriptionNumber: src.InscriptionNumber,
		Balance:           balance,
		AvailableBalance:  available,
		PendingSendPool:   encoded[0],
		AvailableSendPool: encoded[1],
		SentSendPool:      encoded[2],
		ReceivedSendPool:  encoded[3],
		ReceivedMintPool:  encoded[4],
	}, nil
}

func mapTransactionModelToType(src gen.Orc20Transaction) (entity.Transaction, error) {
	quantity, err := optionalDecimalFromNumeric(src.Quantity)
	if err != nil {
		return entity.Transaction{}, errors.Wrap(err, "failed to parse quantity")
	}
	return entity.Transaction{
		ID:                src.ID,
		BlockHeight:       src.BlockHeight,
		InscriptionID:     src.InscriptionID,
		InscriptionNumber: src.InscriptionNumber,
		Method:            entity.Method(src.Method),
		TokenID:           stringFromText(src.TokenID),
		Quantity:          quantity,
		From:              src.FromAddress,
		To:                src.ToAddress,
		Time:              src.Time,
		Valid:             src.Valid,
		InvalidReason:     src.InvalidReason,
	}, nil
}

func mapTransactionTypeToParams(src *entity.Transaction) (gen.CreateTransactionParams, error) {
	quantity, err := numericFromOptionalDecimal(src.Quantity)
	if err != nil {
		return gen.CreateTransactionParams{}, errors.Wrap(err, "failed to convert quantity")
	}
	return gen.CreateTransactionParams{
		ID:                src.ID,
		BlockHeight:       src.BlockHeight,
		InscriptionID:     src.InscriptionID,
		InscriptionNumber: src.InscriptionNumber,
		Method:            string(src.Method),
		TokenID:           textFromString(src.TokenID),
		Quantity:          quantity,
		FromAddress:       src.From,
		ToAddress:         src.To,
		Time:              src.Time,
		Valid:             src.Valid,
		InvalidReason:     src.InvalidReason,
	}, nil
}

func mapUpdateTransactionToParams(src entity.UpdateTransaction) (gen.UpdateTransactionsParams, error) {
	quantity, err := numericFromOptionalDecimal(src.Quantity)
	if err != nil {
		return gen.UpdateTransactionsParams{}, errors.Wrap(err, "failed to convert quantity")
	}
	return gen.UpdateTransactionsParams{
		Valid:         src.Valid,
		InvalidReason: src.InvalidReason,
		TokenID:       textFromString(src.TokenID),
		Quantity:      quantity,
		ID:            src.ID,
	}, nil
}

func mapIndexedBlockModelToType(src gen.Orc20IndexedBlock) entity.IndexedBlock {
	var createdAt time.Time
	if src.CreatedAt.Valid {
		createdAt = src.CreatedAt.Time.UTC()
	}
	return entity.IndexedBlock{
		Height:     src.Height,
		EventCount: src.EventCount,
		CreatedAt:  createdAt,
	}
}

func mapIndexerStateModelToType(src gen.Orc20IndexerState) entity.IndexerState {
	var createdAt time.Time
	if src.CreatedAt.Valid {
		createdAt = src.CreatedAt.Time.UTC()
	}
	return entity.IndexerState{
		CreatedAt:     createdAt,
		ClientVersion: src.ClientVersion,
		DBVersion:     src.DbVersion,
		Namespace:     src.Namespace,
	}
}

func mapIndexerStateTypeToParams(src entity.IndexerState) gen.CreateIndexerStateParams {
	return gen.CreateIndexerStateParams{
		ClientVersion: src.ClientVersion,
		DbVersion:     src.DBVersion,
		Namespace:     src.Namespace,
	}
}

func mapEventRowToType(src gen.GetEventsByBlockHeightRow) (*types.InscriptionEvent, error) {
	kind := types.EventKind(src.Kind)
	if !kind.IsValid() {
		return nil, errors.Errorf("unknown event kind %q", src.Kind)
	}
	eventTime, err := types.ParseEventTime(src.Time)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse time of event %d", src.ID)
	}
	return &types.InscriptionEvent{
		ID:                src.ID,
		InscriptionID:     src.InscriptionID,
		InscriptionNumber: src.InscriptionNumber,
		BlockHeight:       src.BlockHeight,
		Kind:              kind,
		From:              src.FromAddress,
		To:                src.ToAddress,
		Time:              eventTime,
		Value:             src.Value,
		Content:           src.Content,
		Spent:             src.Spent,
	}, nil
}
