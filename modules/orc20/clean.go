package orc20

import (
	"context"
	"strings"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/common/errs"
	"github.com/gaze-network/orc20-indexer/internal/redis"
	"github.com/gaze-network/orc20-indexer/modules/orc20/config"
	orc20pebble "github.com/gaze-network/orc20-indexer/modules/orc20/internal/repository/pebble"
	orc20redis "github.com/gaze-network/orc20-indexer/modules/orc20/internal/repository/redis"
)

// ClearHandledEvents deletes every handled-event mark of the configured
// namespace, so a rebuilt ledger replays the feed from the start height.
func ClearHandledEvents(ctx context.Context, conf config.Config) error {
	if err := conf.Validate(); err != nil {
		return errors.WithStack(err)
	}

	switch strings.ToLower(conf.Cache) {
	case "redis":
		client, err := redis.New(ctx, conf.Redis)
		if err != nil {
			return errors.Wrap(err, "can't create redis client")
		}
		defer client.Close()
		return errors.WithStack(orc20redis.NewRepository(client, conf.Namespace).ClearHandledEvents(ctx))
	case "pebble":
		db, err := orc20pebble.Open(utils.Default(conf.Pebble.Path, DefaultPebblePath), nil)
		if err != nil {
			return errors.Wrap(err, "can't open pebble store")
		}
		repo := orc20pebble.NewRepository(db, nil, conf.Namespace)
		defer repo.Close()
		return errors.WithStack(repo.ClearHandledEvents(ctx))
	default:
		return errors.Wrapf(errs.Unsupported, "%q cache is not supported", conf.Cache)
	}
}
