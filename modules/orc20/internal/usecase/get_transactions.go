package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
)

func (u *Usecase) GetTransactions(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	txs, err := u.orc20Dg.GetTransactions(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetTransactions")
	}
	return txs, nil
}

func (u *Usecase) GetTransactionByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	tx, err := u.orc20Dg.GetTransactionByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetTransactionByID")
	}
	return tx, nil
}
