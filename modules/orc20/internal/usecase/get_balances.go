package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
)

func (u *Usecase) GetBalancesByAddress(ctx context.Context, address string) ([]*entity.Balance, error) {
	balances, err := u.orc20Dg.GetBalancesByAddress(ctx, address)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetBalancesByAddress")
	}
	return balances, nil
}
