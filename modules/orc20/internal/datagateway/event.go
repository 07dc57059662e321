package datagateway

import (
	"context"

	"github.com/gaze-network/orc20-indexer/core/types"
)

// EventDataGateway reads the upstream inscription event feed.
type EventDataGateway interface {
	// GetEventsByBlockHeight returns the events of a block ordered by id.
	GetEventsByBlockHeight(ctx context.Context, height int64) ([]*types.InscriptionEvent, error)
	// GetLatestEventBlockHeight returns errs.NotFound if the feed is empty.
	GetLatestEventBlockHeight(ctx context.Context) (int64, error)
}
