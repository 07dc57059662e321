package ledger

import (
	"context"

	"github.com/alitto/pond/v2"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/core/types"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/orc20"
)

// Reader loads the ledger records an event depends on. Every getter returns
// errs.NotFound when the record does not exist.
type Reader interface {
	GetTokenByID(ctx context.Context, id string) (*entity.Token, error)
	GetTokenByTickAndInscriptionNumber(ctx context.Context, tick string, inscriptionNumber int64) (*entity.Token, error)
	GetBalanceByID(ctx context.Context, id string) (*entity.Balance, error)
	GetTransactionByID(ctx context.Context, id int64) (*entity.Transaction, error)
}

// Ledger turns one inscription event into the store mutations it causes.
// It never writes; the caller applies the returned mutations atomically
// before the next event is applied.
type Ledger struct {
	reader Reader
	pool   pond.Pool
}

func New(reader Reader, pool pond.Pool) *Ledger {
	return &Ledger{
		reader: reader,
		pool:   pool,
	}
}

// Apply validates the event against the current ledger state. It returns nil
// mutations when the event carries no operation for its kind. Protocol
// violations are not errors: they produce an invalid transaction record.
func (l *Ledger) Apply(ctx context.Context, event *types.InscriptionEvent, content orc20.Content) ([]entity.Mutation, error) {
	op, ok := orc20.ParseOp(content.Op())
	if !ok {
		return nil, nil
	}

	s := newSession(l, event)
	var err error
	switch event.Kind {
	case types.EventKindInscribe:
		switch op {
		case orc20.OpDeploy:
			err = s.deploy(ctx, content)
		case orc20.OpMint:
			err = s.mint(ctx, content)
		case orc20.OpSend:
			err = s.inscribeSend(ctx, content)
		case orc20.OpCancel:
			err = s.cancel(ctx, content)
		case orc20.OpUpgrade:
			err = s.inscribeUpgrade(ctx, content)
		}
	case types.EventKindTransfer:
		switch op {
		case orc20.OpMint:
			err = s.transferMint(ctx, content)
		case orc20.OpSend:
			err = s.transferSend(ctx, content)
		case orc20.OpUpgrade:
			err = s.transferUpgrade(ctx, content)
		default:
			return nil, nil
		}
	default:
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to apply %s %s event %d", event.Kind, op, event.ID)
	}
	return s.mutations(), nil
}
