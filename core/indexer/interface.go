package indexer

import "context"

type IndexerWorker interface {
	Run(ctx context.Context) error
	Shutdown() error
}

// Input is one block worth of data.
type Input interface {
	BlockHeight() int64
}

type Processor[T Input] interface {
	Name() string

	// Process processes the input of one block. On error nothing after the
	// last durable step may be assumed done, the same input is processed again.
	Process(ctx context.Context, input T) error

	// CurrentBlock returns the height of the last fully processed block.
	CurrentBlock(ctx context.Context) (int64, error)

	// Shutdown releases processor resources once the indexer has stopped.
	Shutdown(ctx context.Context) error
}
