package datasources

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/core/types"
)

var _ Datasource[*types.Block] = (*EventDatabaseDatasource)(nil)

// EventDatabaseDatasource reads inscription events from the event table
// maintained by the upstream ordinals indexer.
type EventDatabaseDatasource struct {
	events InscriptionEventReader
	tip    ChainTip
}

func NewEventDatabase(events InscriptionEventReader, tip ChainTip) *EventDatabaseDatasource {
	return &EventDatabaseDatasource{
		events: events,
		tip:    tip,
	}
}

func (EventDatabaseDatasource) Name() string {
	return "event_database"
}

func (d *EventDatabaseDatasource) Fetch(ctx context.Context, height int64) (*types.Block, error) {
	events, err := d.events.GetEventsByBlockHeight(ctx, height)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get events of block %d", height)
	}
	return &types.Block{
		Height: height,
		Events: events,
	}, nil
}

func (d *EventDatabaseDatasource) GetCurrentBlockHeight(ctx context.Context) (int64, error) {
	height, err := d.tip.GetCurrentBlockHeight(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get current block height")
	}
	return height, nil
}
