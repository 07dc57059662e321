package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/common/errs"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/datagateway"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/repository/postgres/gen"
	"github.com/jackc/pgx/v5"
)

var _ datagateway.ORC20DataGateway = (*Repository)(nil)

func (r *Repository) GetLatestIndexedBlock(ctx context.Context) (*entity.IndexedBlock, error) {
	model, err := r.queries.GetLatestIndexedBlock(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	block := mapIndexedBlockModelToType(model)
	return &block, nil
}

func (r *Repository) CreateIndexedBlock(ctx context.Context, block *entity.IndexedBlock) error {
	if err := r.queries.CreateIndexedBlock(ctx, gen.CreateIndexedBlockParams{
		Height:     block.Height,
		EventCount: block.EventCount,
	}); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) GetTokenByID(ctx context.Context, id string) (*entity.Token, error) {
	model, err := r.queries.GetTokenByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	token, err := mapTokenModelToType(model)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token model")
	}
	return &token, nil
}

func (r *Repository) GetTokenByTickAndInscriptionNumber(ctx context.Context, tick string, inscriptionNumber int64) (*entity.Token, error) {
	model, err := r.queries.GetTokenByTickAndInscriptionNumber(ctx, gen.GetTokenByTickAndInscriptionNumberParams{
		Tick:              tick,
		InscriptionNumber: inscriptionNumber,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	token, err := mapTokenModelToType(model)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token model")
	}
	return &token, nil
}

func (r *Repository) GetTokens(ctx context.Context, tick string, limit int32, offset int32) ([]*entity.Token, error) {
	models, err := r.queries.GetTokens(ctx, gen.GetTokensParams{
		Tick:   tick,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	tokens := make([]*entity.Token, 0, len(models))
	for _, model := range models {
		token, err := mapTokenModelToType(model)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse token model")
		}
		tokens = append(tokens, &token)
	}
	return tokens, nil
}

func (r *Repository) GetBalanceByID(ctx context.Context, id string) (*entity.Balance, error) {
	model, err := r.queries.GetBalanceByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	balance, err := mapBalanceModelToType(model)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse balance model")
	}
	return &balance, nil
}

func (r *Repository) GetBalancesByAddress(ctx context.Context, address string) ([]*entity.Balance, error) {
	models, err := r.queries.GetBalancesByAddress(ctx, address)
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return mapBalanceModels(models)
}

func (r *Repository) GetHoldersByTokenID(ctx context.Context, tokenID string, limit int32, offset int32) ([]*entity.Balance, error) {
	models, err := r.queries.GetHoldersByTokenID(ctx, gen.GetHoldersByTokenIDParams{
		TokenID: tokenID,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return mapBalanceModels(models)
}

func mapBalanceModels(models []gen.Orc20Balance) ([]*entity.Balance, error) {
	balances := make([]*entity.Balance, 0, len(models))
	for _, model := range models {
		balance, err := mapBalanceModelToType(model)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse balance model")
		}
		balances = append(balances, &balance)
	}
	return balances, nil
}

func (r *Repository) CountHoldersByTokenID(ctx context.Context, tokenID string) (int64, error) {
	count, err := r.queries.CountHoldersByTokenID(ctx, tokenID)
	if err != nil {
		return 0, errors.Wrap(err, "error during query")
	}
	return count, nil
}

func (r *Repository) GetTransactionByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	model, err := r.queries.GetTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	tx, err := mapTransactionModelToType(model)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse transaction model")
	}
	return &tx, nil
}

func (r *Repository) GetTransactions(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	models, err := r.queries.GetTransactions(ctx, gen.GetTransactionsParams{
		Address:     filter.Address,
		TokenID:     filter.TokenID,
		BlockHeight: filter.BlockHeight,
		Limit:       filter.Limit,
		Offset:      filter.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	txs := make([]*entity.Transaction, 0, len(models))
	for _, model := range models {
		tx, err := mapTransactionModelToType(model)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse transaction model")
		}
		txs = append(txs, &tx)
	}
	return txs, nil
}

func (r *Repository) ApplyMutations(ctx context.Context, mutations []entity.Mutation) (bool, error) {
	if len(mutations) == 0 {
		return false, errors.Wrap(errs.InvalidArgument, "no mutations to apply")
	}
	insert, ok := mutations[0].(entity.InsertTransaction)
	if !ok {
		return false, errors.Wrapf(errs.InvalidArgument, "first mutation must insert a transaction, got %T", mutations[0])
	}
	txParams, err := mapTransactionTypeToParams(insert.Transaction)
	if err != nil {
		return false, errors.WithStack(err)
	}
	inserted, err := r.queries.CreateTransaction(ctx, txParams)
	if err != nil {
		return false, errors.Wrap(err, "error during exec CreateTransaction")
	}
	if inserted == 0 {
		return false, nil
	}

	var (
		tokens    []gen.UpsertTokensParams
		balances  []gen.UpsertBalancesParams
		txUpdates []gen.UpdateTransactionsParams
	)
	for _, mutation := range mutations[1:] {
		switch m := mutation.(type) {
		case entity.InsertToken:
			err = appendParams(&tokens, m.Token, mapTokenTypeToParams)
		case entity.UpdateToken:
			err = appendParams(&tokens, m.Token, mapTokenTypeToParams)
		case entity.InsertBalance:
			err = appendParams(&balances, m.Balance, mapBalanceTypeToParams)
		case entity.UpdateBalance:
			err = appendParams(&balances, m.Balance, mapBalanceTypeToParams)
		case entity.UpdateTransaction:
			err = appendParams(&txUpdates, m, mapUpdateTransactionToParams)
		default:
			err = errors.Wrapf(errs.Unsupported, "unexpected mutation %T", mutation)
		}
		if err != nil {
			return false, errors.WithStack(err)
		}
	}

	if len(tokens) > 0 {
		if err := execBatch(r.queries.UpsertTokens(ctx, tokens)); err != nil {
			return false, errors.Wrap(err, "error during exec UpsertTokens")
		}
	}
	if len(balances) > 0 {
		if err := execBatch(r.queries.UpsertBalances(ctx, balances)); err != nil {
			return false, errors.Wrap(err, "error during exec UpsertBalances")
		}
	}
	if len(txUpdates) > 0 {
		if err := execBatch(r.queries.UpdateTransactions(ctx, txUpdates)); err != nil {
			return false, errors.Wrap(err, "error during exec UpdateTransactions")
		}
	}
	return true, nil
}

func appendParams[S, P any](dst *[]P, src S, mapper func(S) (P, error)) error {
	params, err := mapper(src)
	if err != nil {
		return errors.WithStack(err)
	}
	*dst = append(*dst, params)
	return nil
}

type batchResults interface {
	Exec(f func(int, error))
}

func execBatch(result batchResults) error {
	var execErrors []error
	result.Exec(func(i int, err error) {
		if err != nil {
			execErrors = append(execErrors, err)
		}
	})
	if len(execErrors) > 0 {
		return errors.Join(execErrors...)
	}
	return nil
}
