package orc20

import (
	"context"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/gaze-network/orc20-indexer/common/errs"
	"github.com/gaze-network/orc20-indexer/core/types"
	"github.com/gaze-network/orc20-indexer/modules/orc20/config"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/datagateway/mocks"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/orc20"
	orc20pebble "github.com/gaze-network/orc20-indexer/modules/orc20/internal/repository/pebble"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ledgerState backs the ORC20 data gateway mocks with maps so a block can be
// processed more than once against the same rows.
type ledgerState struct {
	mu       sync.Mutex
	tokens   map[string]*entity.Token
	balances map[string]*entity.Balance
	txs      map[int64]*entity.Transaction
	blocks   map[int64]*entity.IndexedBlock
	applies  int
}

func newLedgerState(dg, tx *mocks.ORC20DataGatewayWithTx) *ledgerState {
	s := &ledgerState{
		tokens:   make(map[string]*entity.Token),
		balances: make(map[string]*entity.Balance),
		txs:      make(map[int64]*entity.Transaction),
		blocks:   make(map[int64]*entity.IndexedBlock),
	}
	notFound := errors.WithStack(errs.NotFound)

	dg.EXPECT().GetTokenByID(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, id string) (*entity.Token, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if token, ok := s.tokens[id]; ok {
			return token.Clone(), nil
		}
		return nil, notFound
	}).Maybe()
	dg.EXPECT().GetTokenByTickAndInscriptionNumber(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, tick string, number int64) (*entity.Token, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, token := range s.tokens {
			if token.Tick == tick && token.InscriptionNumber == number {
				return token.Clone(), nil
			}
		}
		return nil, notFound
	}).Maybe()
	dg.EXPECT().GetBalanceByID(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, id string) (*entity.Balance, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if balance, ok := s.balances[id]; ok {
			return balance.Clone(), nil
		}
		return nil, notFound
	}).Maybe()
	dg.EXPECT().GetTransactionByID(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, id int64) (*entity.Transaction, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if tx, ok := s.txs[id]; ok {
			return tx.Clone(), nil
		}
		return nil, notFound
	}).Maybe()
	dg.EXPECT().CreateIndexedBlock(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, block *entity.IndexedBlock) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.blocks[block.Height] = block
		return nil
	}).Maybe()

	dg.EXPECT().BeginORC20Tx(mock.Anything).Return(tx, nil).Maybe()
	tx.EXPECT().ApplyMutations(mock.Anything, mock.Anything).RunAndReturn(s.apply).Maybe()
	tx.EXPECT().Commit(mock.Anything).Return(nil).Maybe()
	tx.EXPECT().Rollback(mock.Anything).Return(nil).Maybe()
	return s
}

func (s *ledgerState) apply(_ context.Context, mutations []entity.Mutation) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applies++

	insert, ok := mutations[0].(entity.InsertTransaction)
	if !ok {
		return false, errors.New("first mutation must insert the transaction")
	}
	if _, ok := s.txs[insert.Transaction.ID]; ok {
		return false, nil
	}
	for _, mutation := range mutations {
		switch mut := mutation.(type) {
		case entity.InsertTransaction:
			s.txs[mut.Transaction.ID] = mut.Transaction.Clone()
		case entity.UpdateTransaction:
			tx := s.txs[mut.ID]
			tx.Valid, tx.InvalidReason = mut.Valid, mut.InvalidReason
		case entity.InsertToken:
			s.tokens[mut.Token.ID] = mut.Token.Clone()
		case entity.UpdateToken:
			s.tokens[mut.Token.ID] = mut.Token.Clone()
		case entity.InsertBalance:
			s.balances[mut.Balance.ID] = mut.Balance.Clone()
		case entity.UpdateBalance:
			s.balances[mut.Balance.ID] = mut.Balance.Clone()
		}
	}
	return true, nil
}

func (s *ledgerState) rowCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens) + len(s.balances) + len(s.txs) + len(s.blocks)
}

func TestProcessReplay(t *testing.T) {
	ctx := context.Background()
	height := int64(orc20.OIP3Height - 1)

	db, err := orc20pebble.Open("", &pebble.Options{FS: vfs.NewMem()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	dg := mocks.NewORC20DataGatewayWithTx(t)
	tx := mocks.NewORC20DataGatewayWithTx(t)
	state := newLedgerState(dg, tx)
	p := NewProcessor(dg, mocks.NewIndexerInfoDataGateway(t), orc20pebble.NewRepository(db, nil, "A"), config.Config{Namespace: "A"}, nil)
	t.Cleanup(p.pool.StopAndWait)

	mint := &types.InscriptionEvent{
		ID:                4,
		InscriptionID:     "minti0",
		InscriptionNumber: 101,
		BlockHeight:       height,
		Kind:              types.EventKindInscribe,
		From:              "alice",
		To:                "alice",
		Time:              1700000001,
		Content:           `{"p":"orc-20","op":"mint","tick":"bar","id":"1","amt":"10"}`,
	}
	block := &types.Block{Height: height, Events: []*types.InscriptionEvent{deployEvent(3), mint}}

	require.NoError(t, p.Process(ctx, block))
	require.Equal(t, 2, state.applies)
	rows := state.rowCount()
	balance := state.balances[entity.BalanceID("alice", "bar-1")]
	require.NotNil(t, balance)
	assert.Equal(t, "10", balance.Balance.String())

	require.NoError(t, p.Process(ctx, block))
	assert.Equal(t, 2, state.applies, "handled events must not be applied again")
	assert.Equal(t, rows, state.rowCount())
	assert.Equal(t, "10", state.balances[entity.BalanceID("alice", "bar-1")].Balance.String())
	assert.Equal(t, "10", state.tokens["bar-1"].Minted.String())
}
