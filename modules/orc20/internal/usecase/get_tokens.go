package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
	"golang.org/x/sync/errgroup"
)

func (u *Usecase) GetTokens(ctx context.Context, tick string, limit int32, offset int32) ([]*entity.Token, error) {
	tokens, err := u.orc20Dg.GetTokens(ctx, tick, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetTokens")
	}
	return tokens, nil
}

type TokenInfo struct {
	Token   *entity.Token
	Holders int64
}

func (u *Usecase) GetTokenInfo(ctx context.Context, id string) (*TokenInfo, error) {
	var info TokenInfo
	group, groupctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		token, err := u.orc20Dg.GetTokenByID(groupctx, id)
		if err != nil {
			return errors.Wrap(err, "error during GetTokenByID")
		}
		info.Token = token
		return nil
	})
	group.Go(func() error {
		holders, err := u.orc20Dg.CountHoldersByTokenID(groupctx, id)
		if err != nil {
			return errors.Wrap(err, "error during CountHoldersByTokenID")
		}
		info.Holders = holders
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, errors.WithStack(err)
	}
	return &info, nil
}

func (u *Usecase) GetHolders(ctx context.Context, tokenID string, limit int32, offset int32) ([]*entity.Balance, error) {
	balances, err := u.orc20Dg.GetHoldersByTokenID(ctx, tokenID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get holders by token id")
	}
	return balances, nil
}
