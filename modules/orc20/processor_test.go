package orc20

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/common/errs"
	"github.com/gaze-network/orc20-indexer/core/types"
	"github.com/gaze-network/orc20-indexer/modules/orc20/config"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/datagateway/mocks"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/orc20"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testDeployBody = `{"p":"orc-20","op":"deploy","tick":"bar","id":"1","max":"1000","lim":"10"}`

type processorMocks struct {
	orc20Dg       *mocks.ORC20DataGatewayWithTx
	tx            *mocks.ORC20DataGatewayWithTx
	indexerInfoDg *mocks.IndexerInfoDataGateway
	cacheDg       *mocks.CacheDataGateway
}

func newTestProcessor(t *testing.T, conf config.Config) (*Processor, processorMocks) {
	m := processorMocks{
		orc20Dg:       mocks.NewORC20DataGatewayWithTx(t),
		tx:            mocks.NewORC20DataGatewayWithTx(t),
		indexerInfoDg: mocks.NewIndexerInfoDataGateway(t),
		cacheDg:       mocks.NewCacheDataGateway(t),
	}
	p := NewProcessor(m.orc20Dg, m.indexerInfoDg, m.cacheDg, conf, nil)
	t.Cleanup(p.pool.StopAndWait)
	return p, m
}

// emptyStore makes every ledger lookup miss.
func (m processorMocks) emptyStore() {
	notFound := errors.WithStack(errs.NotFound)
	m.orc20Dg.EXPECT().GetTokenByID(mock.Anything, mock.Anything).Return(nil, notFound).Maybe()
	m.orc20Dg.EXPECT().GetTokenByTickAndInscriptionNumber(mock.Anything, mock.Anything, mock.Anything).Return(nil, notFound).Maybe()
	m.orc20Dg.EXPECT().GetBalanceByID(mock.Anything, mock.Anything).Return(nil, notFound).Maybe()
	m.orc20Dg.EXPECT().GetTransactionByID(mock.Anything, mock.Anything).Return(nil, notFound).Maybe()
}

func deployEvent(id int64) *types.InscriptionEvent {
	return &types.InscriptionEvent{
		ID:                id,
		InscriptionID:     "deployi0",
		InscriptionNumber: 100,
		BlockHeight:       orc20.OIP3Height - 1,
		Kind:              types.EventKindInscribe,
		From:              "deployer",
		To:                "deployer",
		Time:              1700000000,
		Content:           testDeployBody,
	}
}

func TestProcess(t *testing.T) {
	ctx := context.Background()
	height := int64(orc20.OIP3Height - 1)

	t.Run("apply new events", func(t *testing.T) {
		p, m := newTestProcessor(t, config.Config{})
		m.emptyStore()

		block := &types.Block{
			Height: height,
			Events: []*types.InscriptionEvent{
				{ID: 1, BlockHeight: height, Kind: types.EventKindInscribe, Content: testDeployBody},
				{ID: 2, BlockHeight: height, Kind: types.EventKindInscribe, Content: "hello world"},
				deployEvent(3),
			},
		}

		m.cacheDg.EXPECT().IsEventHandled(mock.Anything, int64(1)).Return(true, nil).Once()
		m.cacheDg.EXPECT().IsEventHandled(mock.Anything, int64(2)).Return(false, nil).Once()
		m.cacheDg.EXPECT().IsEventHandled(mock.Anything, int64(3)).Return(false, nil).Once()

		var written []entity.Mutation
		m.orc20Dg.EXPECT().BeginORC20Tx(mock.Anything).Return(m.tx, nil).Once()
		m.tx.EXPECT().ApplyMutations(mock.Anything, mock.Anything).
			Run(func(_ context.Context, mutations []entity.Mutation) { written = mutations }).
			Return(true, nil).Once()
		m.tx.EXPECT().Commit(mock.Anything).Return(nil).Once()
		m.tx.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		m.cacheDg.EXPECT().MarkEventHandled(mock.Anything, int64(3)).Return(nil).Once()
		m.orc20Dg.EXPECT().CreateIndexedBlock(mock.Anything, &entity.IndexedBlock{Height: height, EventCount: 3}).Return(nil).Once()

		require.NoError(t, p.Process(ctx, block))

		require.NotEmpty(t, written)
		insert, ok := written[0].(entity.InsertTransaction)
		require.True(t, ok, "first mutation must insert the transaction")
		assert.Equal(t, int64(3), insert.Transaction.ID)
		assert.True(t, insert.Transaction.Valid)

		token, ok := p.tokens.byID.Load("bar-1")
		require.True(t, ok, "deployed token must be cached after commit")
		assert.Equal(t, "deployer", token.Deployer)
	})

	t.Run("already applied event", func(t *testing.T) {
		p, m := newTestProcessor(t, config.Config{})
		m.emptyStore()

		m.cacheDg.EXPECT().IsEventHandled(mock.Anything, int64(3)).Return(false, nil).Once()
		m.orc20Dg.EXPECT().BeginORC20Tx(mock.Anything).Return(m.tx, nil).Once()
		m.tx.EXPECT().ApplyMutations(mock.Anything, mock.Anything).Return(false, nil).Once()
		m.tx.EXPECT().Rollback(mock.Anything).Return(nil).Once()
		m.cacheDg.EXPECT().MarkEventHandled(mock.Anything, int64(3)).Return(nil).Once()
		m.orc20Dg.EXPECT().CreateIndexedBlock(mock.Anything, &entity.IndexedBlock{Height: height, EventCount: 1}).Return(nil).Once()

		block := &types.Block{Height: height, Events: []*types.InscriptionEvent{deployEvent(3)}}
		require.NoError(t, p.Process(ctx, block))

		_, ok := p.tokens.byID.Load("bar-1")
		assert.False(t, ok, "rolled back token must not be cached")
	})

	t.Run("store failure aborts the block", func(t *testing.T) {
		p, m := newTestProcessor(t, config.Config{})
		m.emptyStore()

		m.cacheDg.EXPECT().IsEventHandled(mock.Anything, int64(3)).Return(false, nil).Once()
		m.orc20Dg.EXPECT().BeginORC20Tx(mock.Anything).Return(m.tx, nil).Once()
		m.tx.EXPECT().ApplyMutations(mock.Anything, mock.Anything).Return(false, errors.New("connection reset")).Once()
		m.tx.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		block := &types.Block{Height: height, Events: []*types.InscriptionEvent{deployEvent(3), deployEvent(4)}}
		err := p.Process(ctx, block)
		require.Error(t, err)
		assert.ErrorContains(t, err, "connection reset")
	})

	t.Run("cache failure aborts the block", func(t *testing.T) {
		p, m := newTestProcessor(t, config.Config{})

		m.cacheDg.EXPECT().IsEventHandled(mock.Anything, int64(3)).Return(false, errors.New("redis down")).Once()

		block := &types.Block{Height: height, Events: []*types.InscriptionEvent{deployEvent(3)}}
		assert.Error(t, p.Process(ctx, block))
	})

	t.Run("empty block", func(t *testing.T) {
		p, m := newTestProcessor(t, config.Config{})
		m.orc20Dg.EXPECT().CreateIndexedBlock(mock.Anything, &entity.IndexedBlock{Height: 900000, EventCount: 0}).Return(nil).Once()

		require.NoError(t, p.Process(ctx, &types.Block{Height: 900000}))
	})
}

func TestVerifyStates(t *testing.T) {
	ctx := context.Background()

	t.Run("create state on first run", func(t *testing.T) {
		p, m := newTestProcessor(t, config.Config{Namespace: "A"})
		m.indexerInfoDg.EXPECT().GetLatestIndexerState(mock.Anything).Return(entity.IndexerState{}, errors.WithStack(errs.NotFound)).Once()
		m.indexerInfoDg.EXPECT().CreateIndexerState(mock.Anything, entity.IndexerState{
			ClientVersion: ClientVersion,
			DBVersion:     DBVersion,
			Namespace:     "A",
		}).Return(nil).Once()

		require.NoError(t, p.VerifyStates(ctx))
	})

	t.Run("matching state", func(t *testing.T) {
		p, m := newTestProcessor(t, config.Config{Namespace: "A"})
		m.indexerInfoDg.EXPECT().GetLatestIndexerState(mock.Anything).Return(entity.IndexerState{DBVersion: DBVersion, Namespace: "A"}, nil).Once()

		require.NoError(t, p.VerifyStates(ctx))
	})

	t.Run("db version mismatch", func(t *testing.T) {
		p, m := newTestProcessor(t, config.Config{Namespace: "A"})
		m.indexerInfoDg.EXPECT().GetLatestIndexerState(mock.Anything).Return(entity.IndexerState{DBVersion: DBVersion + 1, Namespace: "A"}, nil).Once()

		assert.ErrorIs(t, p.VerifyStates(ctx), errs.ConflictSetting)
	})

	t.Run("namespace mismatch", func(t *testing.T) {
		p, m := newTestProcessor(t, config.Config{Namespace: "B"})
		m.indexerInfoDg.EXPECT().GetLatestIndexerState(mock.Anything).Return(entity.IndexerState{DBVersion: DBVersion, Namespace: "A"}, nil).Once()

		assert.ErrorIs(t, p.VerifyStates(ctx), errs.ConflictSetting)
	})
}

func TestCurrentBlock(t *testing.T) {
	ctx := context.Background()

	t.Run("default start height", func(t *testing.T) {
		p, m := newTestProcessor(t, config.Config{})
		m.orc20Dg.EXPECT().GetLatestIndexedBlock(mock.Anything).Return(nil, errors.WithStack(errs.NotFound)).Once()

		height, err := p.CurrentBlock(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(DefaultStartHeight-1), height)
	})

	t.Run("configured start height", func(t *testing.T) {
		p, m := newTestProcessor(t, config.Config{StartHeight: 800000})
		m.orc20Dg.EXPECT().GetLatestIndexedBlock(mock.Anything).Return(nil, errors.WithStack(errs.NotFound)).Once()

		height, err := p.CurrentBlock(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(799999), height)
	})

	t.Run("resume from indexed block", func(t *testing.T) {
		p, m := newTestProcessor(t, config.Config{StartHeight: 800000})
		m.orc20Dg.EXPECT().GetLatestIndexedBlock(mock.Anything).Return(&entity.IndexedBlock{Height: 812345}, nil).Once()

		height, err := p.CurrentBlock(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(812345), height)
	})
}

func TestTokenCache(t *testing.T) {
	ctx := context.Background()
	reader := mocks.NewORC20DataGatewayWithTx(t)
	cache := newTokenCache(reader)

	token := &entity.Token{ID: "bar-1", Tick: "bar", TickID: "1", InscriptionNumber: 100}
	reader.EXPECT().GetTokenByID(mock.Anything, "bar-1").Return(token, nil).Once()
	reader.EXPECT().GetTokenByID(mock.Anything, "baz-1").Return(nil, errors.WithStack(errs.NotFound)).Twice()

	for range 2 {
		got, err := cache.GetTokenByID(ctx, "bar-1")
		require.NoError(t, err)
		assert.Equal(t, token, got)

		_, err = cache.GetTokenByID(ctx, "baz-1")
		assert.ErrorIs(t, err, errs.NotFound)
	}

	// served from the id index filled above
	got, err := cache.GetTokenByTickAndInscriptionNumber(ctx, "bar", 100)
	require.NoError(t, err)
	assert.Equal(t, token, got)

	updated := token.Clone()
	updated.Name = "renamed"
	cache.refresh([]entity.Mutation{entity.UpdateToken{Token: updated}})
	got, err = cache.GetTokenByID(ctx, "bar-1")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
	assert.NotSame(t, updated, got)
}

func TestRunCleanups(t *testing.T) {
	var calls []string
	cleanupFuncs := []func(context.Context) error{
		func(context.Context) error {
			calls = append(calls, "postgres")
			return errors.New("close postgres")
		},
		func(context.Context) error {
			calls = append(calls, "redis")
			return nil
		},
	}

	err := runCleanups(context.Background(), cleanupFuncs)
	assert.EqualError(t, err, "close postgres")
	assert.Equal(t, []string{"postgres", "redis"}, calls, "a failed cleanup must not skip the rest")

	assert.NoError(t, runCleanups(context.Background(), nil))
}

func TestShutdownRunsCleanups(t *testing.T) {
	var closed int
	p := NewProcessor(mocks.NewORC20DataGatewayWithTx(t), mocks.NewIndexerInfoDataGateway(t), mocks.NewCacheDataGateway(t), config.Config{}, []func(context.Context) error{
		func(context.Context) error {
			closed++
			return nil
		},
	})
	require.NoError(t, p.Shutdown(context.Background()))
	assert.Equal(t, 1, closed)
}
