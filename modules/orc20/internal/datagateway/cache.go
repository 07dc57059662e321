package datagateway

import "context"

// CacheDataGateway is the key-value side of the indexer: handled-event marks,
// the chain tip and the raw output lookup.
type CacheDataGateway interface {
	IsEventHandled(ctx context.Context, eventID int64) (bool, error)
	MarkEventHandled(ctx context.Context, eventID int64) error
	// ClearHandledEvents removes every handled-event mark of the namespace.
	ClearHandledEvents(ctx context.Context) error

	// GetCurrentBlockHeight returns the chain tip known to the cache. Returns errs.NotFound if it is not set.
	GetCurrentBlockHeight(ctx context.Context) (int64, error)
	// GetOutput returns the raw value stored for an output ("txid:vout"). Returns errs.NotFound if absent
	// and errs.Unsupported if the backend keeps no outputs.
	GetOutput(ctx context.Context, output string) (string, error)
}
