package orc20

import (
	"context"
	"strings"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/common/errs"
	"github.com/gaze-network/orc20-indexer/core/datasources"
	"github.com/gaze-network/orc20-indexer/core/indexer"
	"github.com/gaze-network/orc20-indexer/core/types"
	"github.com/gaze-network/orc20-indexer/internal/config"
	"github.com/gaze-network/orc20-indexer/internal/postgres"
	"github.com/gaze-network/orc20-indexer/internal/redis"
	orc20api "github.com/gaze-network/orc20-indexer/modules/orc20/api"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/datagateway"
	orc20pebble "github.com/gaze-network/orc20-indexer/modules/orc20/internal/repository/pebble"
	orc20postgres "github.com/gaze-network/orc20-indexer/modules/orc20/internal/repository/postgres"
	orc20redis "github.com/gaze-network/orc20-indexer/modules/orc20/internal/repository/redis"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/usecase"
	"github.com/gaze-network/orc20-indexer/pkg/logger"
	"github.com/gaze-network/orc20-indexer/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/do/v2"
	"github.com/samber/lo"
)

func New(injector do.Injector) (_ indexer.IndexerWorker, err error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)
	orc20Conf := conf.Modules.ORC20
	if err = orc20Conf.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid ORC20 configuration")
	}
	ctx = logger.WithContext(ctx, slogx.String("namespace", orc20Conf.Namespace))

	var (
		orc20Dg       datagateway.ORC20DataGateway
		indexerInfoDg datagateway.IndexerInfoDataGateway
		eventDg       datagateway.EventDataGateway
		cacheDg       datagateway.CacheDataGateway
	)
	var cleanupFuncs []func(context.Context) error
	defer func() {
		// connections opened before a failed step are not owned by any processor yet
		if err != nil {
			_ = runCleanups(ctx, cleanupFuncs)
		}
	}()
	switch strings.ToLower(orc20Conf.Database) {
	case "postgresql", "postgres", "pg":
		pgConf := orc20Conf.Postgres
		pgConf.SearchPath = orc20Conf.SearchPath()
		pg, err := postgres.NewPool(ctx, pgConf)
		if err != nil {
			if errors.Is(err, errs.InvalidArgument) {
				return nil, errors.Wrap(err, "Invalid Postgres configuration for indexer")
			}
			return nil, errors.Wrap(err, "can't create Postgres connection pool")
		}
		cleanupFuncs = append(cleanupFuncs, func(ctx context.Context) error {
			pg.Close()
			return nil
		})
		orc20Repo := orc20postgres.NewRepository(pg)
		orc20Dg = orc20Repo
		indexerInfoDg = orc20Repo
		eventDg = orc20Repo
	default:
		return nil, errors.Wrapf(errs.Unsupported, "%q database for indexer is not supported", orc20Conf.Database)
	}

	switch strings.ToLower(orc20Conf.Cache) {
	case "redis":
		client, err := redis.New(ctx, orc20Conf.Redis)
		if err != nil {
			return nil, errors.Wrap(err, "can't create redis client")
		}
		cleanupFuncs = append(cleanupFuncs, func(ctx context.Context) error {
			return errors.WithStack(client.Close())
		})
		cacheDg = orc20redis.NewRepository(client, orc20Conf.Namespace)
	case "pebble":
		db, err := orc20pebble.Open(utils.Default(orc20Conf.Pebble.Path, DefaultPebblePath), nil)
		if err != nil {
			return nil, errors.Wrap(err, "can't open pebble store")
		}
		repo := orc20pebble.NewRepository(db, eventDg, orc20Conf.Namespace)
		cleanupFuncs = append(cleanupFuncs, func(ctx context.Context) error {
			return errors.WithStack(repo.Close())
		})
		cacheDg = repo
	default:
		return nil, errors.Wrapf(errs.Unsupported, "%q cache is not supported", orc20Conf.Cache)
	}

	var eventDatasource datasources.Datasource[*types.Block]
	switch strings.ToLower(orc20Conf.Datasource) {
	case "database":
		eventDatasource = datasources.NewEventDatabase(eventDg, cacheDg)
	case "s3-archive", "s3":
		s3Datasource, err := datasources.NewS3Archive(ctx, orc20Conf.S3Archive, cacheDg)
		if err != nil {
			return nil, errors.Wrap(err, "can't create S3 archive datasource")
		}
		eventDatasource = s3Datasource
	default:
		return nil, errors.Wrapf(errs.Unsupported, "%q datasource is not supported", orc20Conf.Datasource)
	}

	processor := NewProcessor(orc20Dg, indexerInfoDg, cacheDg, orc20Conf, cleanupFuncs)
	if err := processor.VerifyStates(ctx); err != nil {
		return nil, errors.WithStack(err)
	}

	// Mount API
	apiHandlers := lo.Uniq(orc20Conf.APIHandlers)
	for _, handler := range apiHandlers {
		switch handler {
		case "http":
			httpServer := do.MustInvoke[*fiber.App](injector)
			orc20Usecase := usecase.New(orc20Dg, cacheDg)
			orc20HTTPHandler := orc20api.NewHTTPHandler(conf.Network, orc20Usecase)
			if err := orc20HTTPHandler.Mount(httpServer); err != nil {
				return nil, errors.Wrap(err, "can't mount ORC20 API")
			}
			logger.InfoContext(ctx, "Mounted HTTP handler")
		default:
			return nil, errors.Wrapf(errs.Unsupported, "%q API handler is not supported", handler)
		}
	}

	indexer := indexer.New(processor, eventDatasource, indexer.Config{
		PollingInterval: utils.Default(orc20Conf.PollingInterval, DefaultPollingInterval),
		PrefetchBlocks:  utils.Default(orc20Conf.PrefetchBlocks, DefaultPrefetchBlocks),
		MaxBlockRetries: orc20Conf.MaxBlockRetries,
	})
	return indexer, nil
}
