package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
)

func (u *Usecase) GetLatestBlock(ctx context.Context) (*entity.IndexedBlock, error) {
	block, err := u.orc20Dg.GetLatestIndexedBlock(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetLatestIndexedBlock")
	}
	return block, nil
}

// GetChainTip returns the latest block height of the inscription event feed.
func (u *Usecase) GetChainTip(ctx context.Context) (int64, error) {
	height, err := u.cacheDg.GetCurrentBlockHeight(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "error during GetCurrentBlockHeight")
	}
	return height, nil
}
