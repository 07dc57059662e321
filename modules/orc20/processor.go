package orc20

import (
	"context"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/alitto/pond/v2"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/common/errs"
	"github.com/gaze-network/orc20-indexer/core/indexer"
	"github.com/gaze-network/orc20-indexer/core/types"
	"github.com/gaze-network/orc20-indexer/modules/orc20/config"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/datagateway"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/ledger"
	"github.com/gaze-network/orc20-indexer/pkg/logger"
	"github.com/gaze-network/orc20-indexer/pkg/logger/slogx"
)

var _ indexer.Processor[*types.Block] = (*Processor)(nil)

type Processor struct {
	orc20Dg       datagateway.ORC20DataGateway
	indexerInfoDg datagateway.IndexerInfoDataGateway
	cacheDg       datagateway.CacheDataGateway
	config        config.Config

	tokens       *tokenCache
	ledger       *ledger.Ledger
	pool         pond.Pool
	cleanupFuncs []func(context.Context) error
}

func NewProcessor(orc20Dg datagateway.ORC20DataGateway, indexerInfoDg datagateway.IndexerInfoDataGateway, cacheDg datagateway.CacheDataGateway, conf config.Config, cleanupFuncs []func(context.Context) error) *Processor {
	pool := pond.NewPool(utils.Default(conf.StoreConcurrency, DefaultStoreConcurrency))
	tokens := newTokenCache(orc20Dg)
	return &Processor{
		orc20Dg:       orc20Dg,
		indexerInfoDg: indexerInfoDg,
		cacheDg:       cacheDg,
		config:        conf,
		tokens:        tokens,
		ledger:        ledger.New(tokens, pool),
		pool:          pool,
		cleanupFuncs:  cleanupFuncs,
	}
}

func (p *Processor) Name() string {
	return "ORC20"
}

// VerifyStates records the indexer state on first run and refuses to start
// against a database written by another schema version or namespace.
func (p *Processor) VerifyStates(ctx context.Context) error {
	state, err := p.indexerInfoDg.GetLatestIndexerState(ctx)
	if err != nil && !errors.Is(err, errs.NotFound) {
		return errors.Wrap(err, "failed to get latest indexer state")
	}
	if errors.Is(err, errs.NotFound) {
		if err := p.indexerInfoDg.CreateIndexerState(ctx, entity.IndexerState{
			ClientVersion: ClientVersion,
			DBVersion:     DBVersion,
			Namespace:     p.config.Namespace,
		}); err != nil {
			return errors.Wrap(err, "failed to set indexer state")
		}
		return nil
	}

	if state.DBVersion != DBVersion {
		return errors.Wrapf(errs.ConflictSetting, "db version mismatch: current version is %d. Please upgrade to version %d", state.DBVersion, DBVersion)
	}
	if state.Namespace != p.config.Namespace {
		return errors.Wrapf(errs.ConflictSetting, "namespace mismatch: database belongs to namespace %q, configured namespace is %q", state.Namespace, p.config.Namespace)
	}
	return nil
}

// CurrentBlock returns the last fully processed block, or the block before
// the configured start height if nothing was processed yet.
func (p *Processor) CurrentBlock(ctx context.Context) (int64, error) {
	block, err := p.orc20Dg.GetLatestIndexedBlock(ctx)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return utils.Default(p.config.StartHeight, DefaultStartHeight) - 1, nil
		}
		return 0, errors.Wrap(err, "failed to get latest indexed block")
	}
	return block.Height, nil
}

func (p *Processor) Shutdown(ctx context.Context) error {
	p.pool.StopAndWait()
	return runCleanups(ctx, p.cleanupFuncs)
}

// runCleanups runs every cleanup, even after one fails, and joins the errors.
func runCleanups(ctx context.Context, cleanupFuncs []func(context.Context) error) error {
	var cleanupErrs []error
	for _, cleanup := range cleanupFuncs {
		if err := cleanup(ctx); err != nil {
			logger.ErrorContext(ctx, "Failed to cleanup resource", slogx.Error(err))
			cleanupErrs = append(cleanupErrs, err)
		}
	}
	return errors.WithStack(errors.Join(cleanupErrs...))
}
