package indexer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/common/errs"
	"github.com/gaze-network/orc20-indexer/core/datasources"
	"github.com/gaze-network/orc20-indexer/pkg/logger"
	"github.com/gaze-network/orc20-indexer/pkg/logger/slogx"
	cstream "github.com/planxnx/concurrent-stream"
)

const (
	// DefaultPollingInterval is the wait between polls once the indexer caught up with the chain tip.
	DefaultPollingInterval = 60 * time.Second

	// DefaultPrefetchBlocks is the number of blocks fetched ahead of the processor.
	DefaultPrefetchBlocks = 8

	// DefaultInitialBackoff is the first wait before retrying a failed block.
	DefaultInitialBackoff = 1 * time.Second

	shutdownTimeout = 180 * time.Second
)

var errStopped = errors.New("indexer stopped")

type Config struct {
	PollingInterval time.Duration
	PrefetchBlocks  int
	// MaxBlockRetries is the number of consecutive failures of one block
	// before Run returns the error. 0 retries forever.
	MaxBlockRetries int
	InitialBackoff  time.Duration
}

// Indexer generic indexer for fetching and processing data
type Indexer[T Input] struct {
	Processor    Processor[T]
	Datasource   datasources.Datasource[T]
	config       Config
	currentBlock int64

	quitOnce sync.Once
	quit     chan struct{}
	done     chan struct{}
}

// New create new generic indexer
func New[T Input](processor Processor[T], datasource datasources.Datasource[T], config Config) *Indexer[T] {
	config.PollingInterval = utils.Default(config.PollingInterval, DefaultPollingInterval)
	config.PrefetchBlocks = utils.Default(config.PrefetchBlocks, DefaultPrefetchBlocks)
	config.InitialBackoff = utils.Default(config.InitialBackoff, DefaultInitialBackoff)
	return &Indexer[T]{
		Processor:  processor,
		Datasource: datasource,
		config:     config,

		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
}

func (i *Indexer[T]) Shutdown() error {
	return i.ShutdownWithContext(context.Background())
}

func (i *Indexer[T]) ShutdownWithTimeout(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return i.ShutdownWithContext(ctx)
}

// ShutdownWithContext sets the stop flag and waits until the in-flight block is finished.
func (i *Indexer[T]) ShutdownWithContext(ctx context.Context) (err error) {
	i.quitOnce.Do(func() {
		close(i.quit)
		select {
		case <-i.done:
		case <-time.After(shutdownTimeout):
			err = errors.Wrap(errs.Timeout, "indexer shutdown timeout")
		case <-ctx.Done():
			err = errors.Wrap(ctx.Err(), "indexer shutdown context canceled")
		}
	})
	return
}

// CurrentBlock returns the height of the last processed block.
func (i *Indexer[T]) CurrentBlock() int64 {
	return i.currentBlock
}

func (i *Indexer[T]) Run(ctx context.Context) (err error) {
	defer close(i.done)

	ctx = logger.WithContext(ctx,
		slog.String("package", "indexer"),
		slog.String("processor", i.Processor.Name()),
		slog.String("datasource", i.Datasource.Name()),
	)

	i.currentBlock, err = i.Processor.CurrentBlock(ctx)
	if err != nil {
		return errors.Wrap(err, "can't init state, failed to get indexer current block")
	}
	logger.InfoContext(ctx, "Indexer started", slogx.Int64("current_block", i.currentBlock))

	ticker := time.NewTicker(i.config.PollingInterval)
	defer ticker.Stop()
	for {
		if err := i.process(ctx); err != nil {
			if errors.Is(err, errStopped) {
				return i.stop(ctx)
			}
			if ctx.Err() != nil {
				return i.stop(context.WithoutCancel(ctx))
			}
			logger.ErrorContext(ctx, "Indexer failed while processing", slogx.Error(err))
			return errors.Wrap(err, "process failed")
		}
		logger.DebugContext(ctx, "Waiting for next polling interval")

		select {
		case <-i.quit:
			return i.stop(ctx)
		case <-ctx.Done():
			return i.stop(context.WithoutCancel(ctx))
		case <-ticker.C:
		}
	}
}

func (i *Indexer[T]) stop(ctx context.Context) error {
	logger.InfoContext(ctx, "Got quit signal, stopping indexer")
	if err := i.Processor.Shutdown(ctx); err != nil {
		logger.ErrorContext(ctx, "Failed to shutdown processor", slogx.Error(err))
		return errors.Wrap(err, "processor shutdown failed")
	}
	return nil
}

func (i *Indexer[T]) stopped() bool {
	select {
	case <-i.quit:
		return true
	default:
		return false
	}
}

type fetched[T any] struct {
	height int64
	input  T
	err    error
}

// process drains every block up to the chain tip in height order.
func (i *Indexer[T]) process(ctx context.Context) error {
	tip, err := i.Datasource.GetCurrentBlockHeight(ctx)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			logger.WarnContext(ctx, "Chain tip is not available yet")
			return nil
		}
		logger.WarnContext(ctx, "Failed to get chain tip", slogx.Error(err))
		return nil
	}

	from := i.currentBlock + 1
	if from > tip {
		return nil
	}
	logger.InfoContext(ctx, "Start processing blocks", slogx.Int64("from", from), slogx.Int64("to", tip))

	fetchCtx, cancel := context.WithCancel(ctx)
	out := make(chan fetched[T])
	stream := cstream.NewStream(fetchCtx, i.config.PrefetchBlocks, out)
	defer func() {
		cancel()
		for range out {
		}
	}()

	go func() {
		defer close(out)
		_ = stream.Wait()
	}()

	go func() {
		defer stream.Close()
		for height := from; height <= tip; height++ {
			select {
			case <-fetchCtx.Done():
				return
			case <-i.quit:
				return
			default:
			}
			stream.Go(func() fetched[T] {
				input, err := i.Datasource.Fetch(fetchCtx, height)
				return fetched[T]{height: height, input: input, err: err}
			})
		}
	}()

	for f := range out {
		if i.stopped() {
			return errStopped
		}
		if f.height != i.currentBlock+1 {
			return errors.Wrapf(errs.InternalError, "input is not continuous, expected height %d, got %d", i.currentBlock+1, f.height)
		}
		if err := i.handleBlock(ctx, f); err != nil {
			return errors.WithStack(err)
		}
		i.currentBlock = f.height
	}
	if i.stopped() {
		return errStopped
	}
	return nil
}

// handleBlock processes one block, retrying with exponential backoff.
func (i *Indexer[T]) handleBlock(ctx context.Context, f fetched[T]) error {
	backoff := i.config.InitialBackoff
	for attempt := 1; ; attempt++ {
		err := f.err
		if err == nil {
			if f.input.BlockHeight() != f.height {
				return errors.Wrapf(errs.InternalError, "datasource returned block %d for height %d", f.input.BlockHeight(), f.height)
			}
			err = i.Processor.Process(ctx, f.input)
			if err == nil {
				return nil
			}
		}

		logger.ErrorContext(ctx, "Failed to process block",
			slogx.Int64("block_height", f.height),
			slogx.Int("attempt", attempt),
			slogx.Error(err),
		)
		if i.config.MaxBlockRetries > 0 && attempt >= i.config.MaxBlockRetries {
			return errors.Wrapf(err, "block %d failed after %d attempts", f.height, attempt)
		}

		select {
		case <-i.quit:
			return errStopped
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, i.config.PollingInterval)

		if f.err != nil {
			f.input, f.err = i.Datasource.Fetch(ctx, f.height)
		}
	}
}
