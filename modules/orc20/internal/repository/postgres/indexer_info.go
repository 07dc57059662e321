package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/common/errs"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/datagateway"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
	"github.com/jackc/pgx/v5"
)

var _ datagateway.IndexerInfoDataGateway = (*Repository)(nil)

func (r *Repository) GetLatestIndexerState(ctx context.Context) (entity.IndexerState, error) {
	model, err := r.queries.GetLatestIndexerState(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.IndexerState{}, errors.WithStack(errs.NotFound)
		}
		return entity.IndexerState{}, errors.Wrap(err, "error during query")
	}
	state := mapIndexerStateModelToType(model)
	return state, nil
}

func (r *Repository) CreateIndexerState(ctx context.Context, state entity.IndexerState) error {
	params := mapIndexerStateTypeToParams(state)
	if err := r.queries.CreateIndexerState(ctx, params); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}
