package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/common/errs"
	"github.com/gaze-network/orc20-indexer/core/types"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/datagateway"
	"github.com/jackc/pgx/v5"
)

var _ datagateway.EventDataGateway = (*Repository)(nil)

func (r *Repository) GetEventsByBlockHeight(ctx context.Context, height int64) ([]*types.InscriptionEvent, error) {
	rows, err := r.queries.GetEventsByBlockHeight(ctx, height)
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	events := make([]*types.InscriptionEvent, 0, len(rows))
	for _, row := range rows {
		event, err := mapEventRowToType(row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse event row")
		}
		events = append(events, event)
	}
	return events, nil
}

func (r *Repository) GetLatestEventBlockHeight(ctx context.Context) (int64, error) {
	height, err := r.queries.GetLatestEventBlockHeight(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errors.WithStack(errs.NotFound)
		}
		return 0, errors.Wrap(err, "error during query")
	}
	return height, nil
}
