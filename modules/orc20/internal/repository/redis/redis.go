package redis

import (
	"context"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/common/errs"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/datagateway"
	"github.com/redis/go-redis/v9"
)

const (
	handledEventKeyPrefix = "indexer_handled_event_"
	currentBlockKey       = "current_block"
	eventOutputKey        = "event_output"
)

var _ datagateway.CacheDataGateway = (*Repository)(nil)

// Repository keeps handled-event marks in a per-namespace hash and reads the
// chain tip and outputs written by the upstream event producer.
type Repository struct {
	client     redis.Cmdable
	handledKey string
}

func NewRepository(client redis.Cmdable, namespace string) *Repository {
	return &Repository{
		client:     client,
		handledKey: HandledEventKey(namespace),
	}
}

// HandledEventKey returns the hash holding the handled-event marks of namespace.
func HandledEventKey(namespace string) string {
	return handledEventKeyPrefix + namespace
}

func (r *Repository) IsEventHandled(ctx context.Context, eventID int64) (bool, error) {
	exists, err := r.client.HExists(ctx, r.handledKey, field(eventID)).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to check handled event")
	}
	return exists, nil
}

func (r *Repository) MarkEventHandled(ctx context.Context, eventID int64) error {
	if err := r.client.HSet(ctx, r.handledKey, field(eventID), 1).Err(); err != nil {
		return errors.Wrap(err, "failed to mark handled event")
	}
	return nil
}

func (r *Repository) ClearHandledEvents(ctx context.Context) error {
	if err := r.client.Del(ctx, r.handledKey).Err(); err != nil {
		return errors.Wrap(err, "failed to clear handled events")
	}
	return nil
}

func (r *Repository) GetCurrentBlockHeight(ctx context.Context) (int64, error) {
	height, err := r.client.Get(ctx, currentBlockKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, errors.WithStack(errs.NotFound)
		}
		return 0, errors.Wrap(err, "failed to get current block")
	}
	return height, nil
}

func (r *Repository) GetOutput(ctx context.Context, output string) (string, error) {
	value, err := r.client.HGet(ctx, eventOutputKey, output).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", errors.WithStack(errs.NotFound)
		}
		return "", errors.Wrap(err, "failed to get output")
	}
	return value, nil
}

func field(eventID int64) string {
	return strconv.FormatInt(eventID, 10)
}
