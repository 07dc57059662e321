package datagateway

import (
	"context"

	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
)

type IndexerInfoDataGateway interface {
	GetLatestIndexerState(ctx context.Context) (entity.IndexerState, error)
	CreateIndexerState(ctx context.Context, state entity.IndexerState) error
}
