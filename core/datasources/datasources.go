package datasources

import (
	"context"

	"github.com/gaze-network/orc20-indexer/core/types"
)

// Datasource is an interface for indexer data sources.
type Datasource[T any] interface {
	Name() string
	// Fetch returns the input of one block height. A block without data is not an error.
	Fetch(ctx context.Context, height int64) (T, error)
	// GetCurrentBlockHeight returns the highest block height the source can serve.
	GetCurrentBlockHeight(ctx context.Context) (int64, error)
}

// ChainTip reports the current chain tip known to the event producer.
type ChainTip interface {
	GetCurrentBlockHeight(ctx context.Context) (int64, error)
}

// InscriptionEventReader reads the relational inscription event feed.
type InscriptionEventReader interface {
	GetEventsByBlockHeight(ctx context.Context, height int64) ([]*types.InscriptionEvent, error)
}
