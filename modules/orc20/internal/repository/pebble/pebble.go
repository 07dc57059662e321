package pebble

import (
	"context"
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/gaze-network/orc20-indexer/common/errs"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/datagateway"
)

const handledEventKeyPrefix byte = 0x01

var _ datagateway.CacheDataGateway = (*Repository)(nil)

// Repository is an embedded dedup gate for single node deployments. It has no
// view of the chain tip, so the tip is read from the event feed.
type Repository struct {
	db     *pebble.DB
	events datagateway.EventDataGateway
	prefix []byte
}

// Open opens (or creates) the store at dir.
func Open(dir string, opts *pebble.Options) (*pebble.DB, error) {
	if opts == nil {
		opts = &pebble.Options{}
	}
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open pebble store at %s", dir)
	}
	return db, nil
}

func NewRepository(db *pebble.DB, events datagateway.EventDataGateway, namespace string) *Repository {
	prefix := append([]byte{handledEventKeyPrefix}, namespace...)
	prefix = append(prefix, ':')
	return &Repository{
		db:     db,
		events: events,
		prefix: prefix,
	}
}

func (r *Repository) key(eventID int64) []byte {
	key := make([]byte, 0, len(r.prefix)+8)
	key = append(key, r.prefix...)
	return binary.BigEndian.AppendUint64(key, uint64(eventID))
}

func (r *Repository) IsEventHandled(_ context.Context, eventID int64) (bool, error) {
	_, closer, err := r.db.Get(r.key(eventID))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return false, nil
		}
		return false, errors.Wrap(err, "failed to check handled event")
	}
	if err := closer.Close(); err != nil {
		return false, errors.Wrap(err, "failed to close value")
	}
	return true, nil
}

func (r *Repository) MarkEventHandled(_ context.Context, eventID int64) error {
	if err := r.db.Set(r.key(eventID), []byte{1}, pebble.Sync); err != nil {
		return errors.Wrap(err, "failed to mark handled event")
	}
	return nil
}

func (r *Repository) ClearHandledEvents(_ context.Context) error {
	end := make([]byte, len(r.prefix))
	copy(end, r.prefix)
	end[len(end)-1]++ // ':' + 1
	if err := r.db.DeleteRange(r.prefix, end, pebble.Sync); err != nil {
		return errors.Wrap(err, "failed to clear handled events")
	}
	return nil
}

func (r *Repository) GetCurrentBlockHeight(ctx context.Context) (int64, error) {
	height, err := r.events.GetLatestEventBlockHeight(ctx)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return height, nil
}

func (r *Repository) GetOutput(context.Context, string) (string, error) {
	return "", errors.Wrap(errs.Unsupported, "outputs are not kept by the pebble cache")
}

func (r *Repository) Close() error {
	return errors.WithStack(r.db.Close())
}
