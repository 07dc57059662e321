package orc20

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/core/types"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/orc20"
	"github.com/gaze-network/orc20-indexer/pkg/logger"
	"github.com/gaze-network/orc20-indexer/pkg/logger/slogx"
)

// Process applies the events of a block in id order. Any error aborts the
// block; events handled before the failure are skipped when it is retried.
func (p *Processor) Process(ctx context.Context, block *types.Block) error {
	start := time.Now()
	ctx = logger.WithContext(ctx, slogx.Int64("block_height", block.Height))

	var applied int
	for _, event := range block.Events {
		ok, err := p.processEvent(ctx, event)
		if err != nil {
			return errors.Wrapf(err, "failed to process event %d", event.ID)
		}
		if ok {
			applied++
		}
	}

	if err := p.orc20Dg.CreateIndexedBlock(ctx, &entity.IndexedBlock{
		Height:     block.Height,
		EventCount: int32(len(block.Events)),
	}); err != nil {
		return errors.Wrap(err, "failed to create indexed block")
	}

	logger.InfoContext(ctx, "Handle block successfully",
		slogx.Int("events", len(block.Events)),
		slogx.Int("applied", applied),
		slogx.Duration("took", time.Since(start)),
	)
	return nil
}

// processEvent reports whether the event was applied by this call.
func (p *Processor) processEvent(ctx context.Context, event *types.InscriptionEvent) (bool, error) {
	handled, err := p.cacheDg.IsEventHandled(ctx, event.ID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check handled event")
	}
	if handled {
		return false, nil
	}

	content, ok := orc20.ParseEnvelope(event.Content)
	if !ok {
		return false, nil
	}

	mutations, err := p.ledger.Apply(ctx, event, content)
	if err != nil {
		return false, errors.WithStack(err)
	}

	logEventResult(ctx, event.ID, mutations)

	var applied bool
	if len(mutations) > 0 {
		applied, err = p.applyMutations(ctx, mutations)
		if err != nil {
			return false, errors.WithStack(err)
		}
		if !applied {
			logger.InfoContext(ctx, "Event already applied, marking as handled", slogx.Int64("event_id", event.ID))
		}
	}

	if err := p.cacheDg.MarkEventHandled(ctx, event.ID); err != nil {
		return false, errors.Wrap(err, "failed to mark event handled")
	}
	return applied, nil
}

// applyMutations writes the mutations of one event in a single database
// transaction. It returns false if the event's transaction row already exists.
func (p *Processor) applyMutations(ctx context.Context, mutations []entity.Mutation) (bool, error) {
	tx, err := p.orc20Dg.BeginORC20Tx(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil {
			logger.WarnContext(ctx, "Failed to rollback transaction", slogx.Error(err))
		}
	}()

	applied, err := tx.ApplyMutations(ctx, mutations)
	if err != nil {
		return false, errors.Wrap(err, "failed to apply mutations")
	}
	if !applied {
		return false, nil
	}

	if err := tx.Commit(ctx); err != nil {
		// the commit may still have reached the database
		p.tokens.reset()
		return false, errors.Wrap(err, "failed to commit transaction")
	}
	p.tokens.refresh(mutations)
	return true, nil
}

func logEventResult(ctx context.Context, eventID int64, mutations []entity.Mutation) {
	for _, m := range mutations {
		insert, ok := m.(entity.InsertTransaction)
		if !ok {
			continue
		}
		tx := insert.Transaction
		attrs := []any{
			slogx.Int64("event_id", eventID),
			slogx.String("method", string(tx.Method)),
			slogx.Bool("valid", tx.Valid),
		}
		if tx.Quantity != nil {
			attrs = append(attrs, slogx.Decimal("quantity", *tx.Quantity))
		}
		if !tx.Valid {
			attrs = append(attrs, slogx.String("reason", tx.InvalidReason))
		}
		logger.DebugContext(ctx, "Event processed", attrs...)
		return
	}
}
