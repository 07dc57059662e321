package ledger

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"testing"

	"github.com/alitto/pond/v2"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/common/errs"
	"github.com/gaze-network/orc20-indexer/core/types"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/orc20"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is a Reader over maps that applies mutations the way the
// postgres repository does.
type memStore struct {
	mu       sync.Mutex
	tokens   map[string]*entity.Token
	balances map[string]*entity.Balance
	txs      map[int64]*entity.Transaction
}

func newMemStore() *memStore {
	return &memStore{
		tokens:   make(map[string]*entity.Token),
		balances: make(map[string]*entity.Balance),
		txs:      make(map[int64]*entity.Transaction),
	}
}

func (m *memStore) GetTokenByID(_ context.Context, id string) (*entity.Token, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if token, ok := m.tokens[id]; ok {
		return token.Clone(), nil
	}
	return nil, errors.WithStack(errs.NotFound)
}

func (m *memStore) GetTokenByTickAndInscriptionNumber(_ context.Context, tick string, number int64) (*entity.Token, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, token := range m.tokens {
		if token.Tick == tick && token.InscriptionNumber == number {
			return token.Clone(), nil
		}
	}
	return nil, errors.WithStack(errs.NotFound)
}

func (m *memStore) GetBalanceByID(_ context.Context, id string) (*entity.Balance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if balance, ok := m.balances[id]; ok {
		return balance.Clone(), nil
	}
	return nil, errors.WithStack(errs.NotFound)
}

func (m *memStore) GetTransactionByID(_ context.Context, id int64) (*entity.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if tx, ok := m.txs[id]; ok {
		return tx.Clone(), nil
	}
	return nil, errors.WithStack(errs.NotFound)
}

func (m *memStore) apply(mutations []entity.Mutation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, mutation := range mutations {
		switch mut := mutation.(type) {
		case entity.InsertTransaction:
			if _, ok := m.txs[mut.Transaction.ID]; ok {
				return
			}
			m.txs[mut.Transaction.ID] = mut.Transaction.Clone()
		case entity.UpdateTransaction:
			tx := m.txs[mut.ID]
			tx.Valid, tx.InvalidReason = mut.Valid, mut.InvalidReason
			if mut.TokenID != nil {
				tx.TokenID = mut.TokenID
			}
			if mut.Quantity != nil {
				tx.Quantity = mut.Quantity
			}
		case entity.InsertToken:
			m.tokens[mut.Token.ID] = mut.Token.Clone()
		case entity.UpdateToken:
			m.tokens[mut.Token.ID] = mut.Token.Clone()
		case entity.InsertBalance:
			m.balances[mut.Balance.ID] = mut.Balance.Clone()
		case entity.UpdateBalance:
			m.balances[mut.Balance.ID] = mut.Balance.Clone()
		}
	}
}

const testHeight = 800000

type harness struct {
	t      *testing.T
	store  *memStore
	ledger *Ledger
	bodies map[string]string
	lastID int64
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	pool := pond.NewPool(4)
	t.Cleanup(pool.StopAndWait)

	store := newMemStore()
	return &harness{
		t:      t,
		store:  store,
		ledger: New(store, pool),
		bodies: make(map[string]string),
	}
}

func (h *harness) nextEvent(kind types.EventKind, inscriptionID, from, to, body string) *types.InscriptionEvent {
	h.lastID++
	return &types.InscriptionEvent{
		ID:                h.lastID,
		InscriptionID:     inscriptionID,
		InscriptionNumber: h.lastID,
		BlockHeight:       testHeight,
		Kind:              kind,
		From:              from,
		To:                to,
		Time:              1700000000 + h.lastID,
		Content:           body,
	}
}

// inscribe creates an inscription owned by to and returns its transaction.
func (h *harness) inscribe(to, body string) *entity.Transaction {
	h.t.Helper()
	event := h.nextEvent(types.EventKindInscribe, fmt.Sprintf("insc%di0", h.lastID+1), to, to, body)
	h.bodies[event.InscriptionID] = body
	return h.apply(event)
}

func (h *harness) transfer(inscriptionID, from, to string) *entity.Transaction {
	h.t.Helper()
	body, ok := h.bodies[inscriptionID]
	require.True(h.t, ok, "unknown inscription %s", inscriptionID)
	return h.apply(h.nextEvent(types.EventKindTransfer, inscriptionID, from, to, body))
}

func (h *harness) apply(event *types.InscriptionEvent) *entity.Transaction {
	h.t.Helper()
	content, ok := orc20.ParseEnvelope(event.Content)
	require.True(h.t, ok, "not an envelope: %s", event.Content)

	mutations, err := h.ledger.Apply(context.Background(), event, content)
	require.NoError(h.t, err)
	h.store.apply(mutations)
	return h.store.txs[event.ID]
}

func (h *harness) tx(id int64) *entity.Transaction {
	return h.store.txs[id]
}

func (h *harness) balance(address, tokenID string) *entity.Balance {
	h.t.Helper()
	balance, ok := h.store.balances[entity.BalanceID(address, tokenID)]
	require.True(h.t, ok, "balance of %s not found", address)
	return balance
}

func (h *harness) totalBalance(tokenID string) decimal.Decimal {
	total := decimal.Zero
	for _, balance := range h.store.balances {
		if balance.TokenID == tokenID {
			total = total.Add(balance.Balance)
		}
	}
	return total
}

func (h *harness) deploy(deployer, fields string) string {
	h.t.Helper()
	tx := h.inscribe(deployer, `{"p":"orc-20","op":"deploy","tick":"foo"`+fields+`}`)
	require.True(h.t, tx.Valid, tx.InvalidReason)
	return *tx.TokenID
}

func (h *harness) mint(to, tokenID, amt string) *entity.Transaction {
	h.t.Helper()
	return h.inscribe(to, fmt.Sprintf(`{"p":"orc-20","op":"mint","tick":"foo","id":"%s","amt":"%s"}`, tickID(tokenID), amt))
}

func (h *harness) send(from, tokenID, nonce, amt string) *entity.Transaction {
	h.t.Helper()
	if amt == "" {
		return h.inscribe(from, fmt.Sprintf(`{"p":"orc-20","op":"send","tick":"foo","id":"%s","n":"%s"}`, tickID(tokenID), nonce))
	}
	return h.inscribe(from, fmt.Sprintf(`{"p":"orc-20","op":"send","tick":"foo","id":"%s","n":"%s","amt":"%s"}`, tickID(tokenID), nonce, amt))
}

func tickID(tokenID string) string {
	return tokenID[len("foo-"):]
}

func assertAmount(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	if len(msgAndArgs) == 0 {
		msgAndArgs = []any{"expected %s, got %s", expected, actual.String()}
	}
	assert.True(t, decimal.RequireFromString(expected).Equal(actual), msgAndArgs...)
}

func TestDeployMintUntilCap(t *testing.T) {
	h := newHarness(t)
	tokenID := h.deploy("deployer", `,"max":"1000","lim":"500","dec":"0"`)
	assert.Equal(t, "foo-1", tokenID)

	// deployer gets an empty balance row
	assertAmount(t, "0", h.balance("deployer", tokenID).Balance)

	over := h.mint("alice", tokenID, "501")
	assert.False(t, over.Valid)
	assert.Equal(t, reasonAmountOverLimit, over.InvalidReason)

	fraction := h.mint("alice", tokenID, "1.5")
	assert.False(t, fraction.Valid)
	assert.Equal(t, reasonAmountPrecision, fraction.InvalidReason)

	first := h.mint("alice", tokenID, "500")
	require.True(t, first.Valid)
	token := h.store.tokens[tokenID]
	require.NotNil(t, token.StartNumber)
	assert.Equal(t, first.InscriptionNumber, *token.StartNumber)
	assert.Nil(t, token.EndNumber)

	second := h.mint("alice", tokenID, "500")
	require.True(t, second.Valid)
	token = h.store.tokens[tokenID]
	assertAmount(t, "1000", token.Minted)
	require.NotNil(t, token.EndNumber)
	assert.Equal(t, second.InscriptionNumber, *token.EndNumber)
	assert.Equal(t, first.InscriptionNumber, *token.StartNumber)

	third := h.mint("bob", tokenID, "1")
	assert.False(t, third.Valid)
	assert.Equal(t, reasonMintEnded, third.InvalidReason)

	alice := h.balance("alice", tokenID)
	assertAmount(t, "1000", alice.Balance)
	assert.Len(t, alice.ReceivedMintPool, 2)
	// invalid mints still leave an empty balance row
	assertAmount(t, "0", h.balance("bob", tokenID).Balance)
	assertAmount(t, "1000", h.totalBalance(tokenID))
}

func TestMintExceedMax(t *testing.T) {
	h := newHarness(t)
	tokenID := h.deploy("deployer", `,"max":"1000","lim":"600","dec":"0"`)

	require.True(t, h.mint("alice", tokenID, "600").Valid)
	tx := h.mint("alice", tokenID, "600")
	assert.False(t, tx.Valid)
	assert.Equal(t, reasonExceedMax, tx.InvalidReason)
	assertAmount(t, "600", h.store.tokens[tokenID].Minted)
}

func TestMintUnknownToken(t *testing.T) {
	h := newHarness(t)
	tx := h.mint("alice", "foo-42", "1")
	assert.False(t, tx.Valid)
	assert.Equal(t, reasonTokenNotExists, tx.InvalidReason)
	assert.Nil(t, tx.TokenID)
	assert.Empty(t, h.store.balances)
}

func TestDeployTokenExists(t *testing.T) {
	h := newHarness(t)
	body := `{"p":"orc-20","op":"deploy","tick":"bar","id":"1"}`
	event := &types.InscriptionEvent{ID: 1, InscriptionID: "a", InscriptionNumber: 10, BlockHeight: orc20.OIP3Height - 1, Kind: types.EventKindInscribe, To: "d", Content: body}
	require.True(t, h.apply(event).Valid)

	event = &types.InscriptionEvent{ID: 2, InscriptionID: "b", InscriptionNumber: 11, BlockHeight: orc20.OIP3Height - 1, Kind: types.EventKindInscribe, To: "d", Content: body}
	tx := h.apply(event)
	assert.False(t, tx.Valid)
	assert.Equal(t, reasonTokenExists, tx.InvalidReason)
}

func TestDeployEpochSwitch(t *testing.T) {
	h := newHarness(t)
	body := `{"p":"orc-20","op":"deploy","tick":"foo","id":"abc"}`

	before := h.apply(&types.InscriptionEvent{ID: 1, InscriptionID: "a", InscriptionNumber: 7, BlockHeight: orc20.OIP3Height - 1, Kind: types.EventKindInscribe, To: "d", Content: body})
	require.True(t, before.Valid)
	assert.Equal(t, "foo-abc", *before.TokenID)

	after := h.apply(&types.InscriptionEvent{ID: 2, InscriptionID: "b", InscriptionNumber: 8, BlockHeight: orc20.OIP3Height, Kind: types.EventKindInscribe, To: "d", Content: body})
	require.True(t, after.Valid)
	assert.Equal(t, "foo-8", *after.TokenID)

	// after the epoch, mints address a token by its deploy inscription number
	mint := h.apply(&types.InscriptionEvent{ID: 3, InscriptionID: "c", InscriptionNumber: 9, BlockHeight: orc20.OIP3Height, Kind: types.EventKindInscribe, To: "m", Content: `{"p":"orc-20","op":"mint","tick":"foo","id":"abc","amt":"1"}`})
	assert.False(t, mint.Valid)
	assert.Equal(t, reasonTokenNotExists, mint.InvalidReason)

	mint = h.apply(&types.InscriptionEvent{ID: 4, InscriptionID: "d", InscriptionNumber: 10, BlockHeight: orc20.OIP3Height, Kind: types.EventKindInscribe, To: "m", Content: `{"p":"orc-20","op":"mint","tick":"foo","id":"8","amt":"1"}`})
	assert.True(t, mint.Valid)
	assert.Equal(t, "foo-8", *mint.TokenID)
}

func TestSendRemainingTransfer(t *testing.T) {
	h := newHarness(t)
	tokenID := h.deploy("deployer", `,"lim":"100"`)
	require.True(t, h.mint("alice", tokenID, "100").Valid)

	lock := h.send("alice", tokenID, "1", "60")
	require.True(t, lock.Valid)
	assert.Equal(t, entity.MethodInscribeSend, lock.Method)

	remaining := h.send("alice", tokenID, "2", "")
	require.True(t, remaining.Valid)
	assert.Equal(t, entity.MethodInscribeRemaining, remaining.Method)
	assertAmount(t, "40", *remaining.Quantity)

	alice := h.balance("alice", tokenID)
	require.Len(t, alice.AvailableSendPool, 2)
	assert.Equal(t, remaining.InscriptionID, alice.AvailableSendPool[0].InscriptionID)
	assert.Equal(t, lock.InscriptionID, alice.AvailableSendPool[1].InscriptionID)
	assert.Empty(t, alice.PendingSendPool)
	assert.Empty(t, alice.ReceivedMintPool)

	toBob := h.transfer(lock.InscriptionID, "alice", "bob")
	require.True(t, toBob.Valid)
	assertAmount(t, "60", *toBob.Quantity)
	assertAmount(t, "40", h.balance("alice", tokenID).Balance)
	assertAmount(t, "60", h.balance("bob", tokenID).Balance)

	toCarol := h.transfer(remaining.InscriptionID, "alice", "carol")
	require.True(t, toCarol.Valid)
	assertAmount(t, "0", h.balance("alice", tokenID).Balance)
	assertAmount(t, "40", h.balance("carol", tokenID).Balance)

	// a received send inscription can move on
	onward := h.transfer(lock.InscriptionID, "bob", "carol")
	require.True(t, onward.Valid)
	assertAmount(t, "0", h.balance("bob", tokenID).Balance)
	carol := h.balance("carol", tokenID)
	assertAmount(t, "100", carol.Balance)
	assert.Len(t, carol.ReceivedSendPool, 2)

	// spent inscriptions cannot move again from the old owner
	again := h.transfer(lock.InscriptionID, "bob", "dave")
	assert.False(t, again.Valid)
	assert.Equal(t, reasonInvalidSendTrans, again.InvalidReason)

	assertAmount(t, "100", h.totalBalance(tokenID))
}

func TestSendBeforeRemaining(t *testing.T) {
	h := newHarness(t)
	tokenID := h.deploy("deployer", `,"lim":"100"`)
	require.True(t, h.mint("alice", tokenID, "100").Valid)

	lock := h.send("alice", tokenID, "n1", "100")
	require.True(t, lock.Valid)

	early := h.transfer(lock.InscriptionID, "alice", "bob")
	assert.False(t, early.Valid)
	assert.Equal(t, reasonWaitForRemaining, early.InvalidReason)
	alice := h.balance("alice", tokenID)
	require.Len(t, alice.SentSendPool, 1)
	assert.Equal(t, early.ID, alice.SentSendPool[0].TransactionID)
	assert.Len(t, alice.PendingSendPool, 1)
	assertAmount(t, "100", alice.Balance)

	remaining := h.send("alice", tokenID, "n2", "")
	require.True(t, remaining.Valid, remaining.InvalidReason)
	assertAmount(t, "0", *remaining.Quantity)

	early = h.tx(early.ID)
	assert.True(t, early.Valid)
	assert.Empty(t, early.InvalidReason)

	alice = h.balance("alice", tokenID)
	assertAmount(t, "0", alice.Balance)
	assert.Empty(t, alice.SentSendPool)
	assert.Empty(t, alice.PendingSendPool)
	// only the leftover lock stays available
	require.Len(t, alice.AvailableSendPool, 1)
	assert.Equal(t, remaining.InscriptionID, alice.AvailableSendPool[0].InscriptionID)

	bob := h.balance("bob", tokenID)
	assertAmount(t, "100", bob.Balance)
	require.Len(t, bob.ReceivedSendPool, 1)
	assert.Equal(t, early.ID, bob.ReceivedSendPool[0].TransactionID)
	assertAmount(t, "100", h.totalBalance(tokenID))
}

func TestRemainingOversum(t *testing.T) {
	h := newHarness(t)
	tokenID := h.deploy("deployer", `,"lim":"100"`)
	require.True(t, h.mint("alice", tokenID, "100").Valid)

	first := h.send("alice", tokenID, "1", "80")
	second := h.send("alice", tokenID, "2", "30")
	require.True(t, first.Valid)
	require.True(t, second.Valid)
	early := h.transfer(second.InscriptionID, "alice", "bob")
	assert.False(t, early.Valid)

	remaining := h.send("alice", tokenID, "3", "")
	assert.False(t, remaining.Valid)
	assert.Equal(t, reasonInsufficientAvailable, remaining.InvalidReason)

	for _, id := range []int64{first.ID, second.ID, early.ID} {
		tx := h.tx(id)
		assert.False(t, tx.Valid)
		assert.Equal(t, reasonInsufficientBalance, tx.InvalidReason)
	}

	alice := h.balance("alice", tokenID)
	assert.Empty(t, alice.PendingSendPool)
	assert.Empty(t, alice.SentSendPool)
	assertAmount(t, "100", alice.Balance)
	assert.Len(t, alice.ReceivedMintPool, 1)
}

func TestSupersededAvailableSends(t *testing.T) {
	h := newHarness(t)
	tokenID := h.deploy("deployer", `,"lim":"100"`)
	require.True(t, h.mint("alice", tokenID, "100").Valid)

	lock := h.send("alice", tokenID, "1", "10")
	remaining := h.send("alice", tokenID, "2", "")
	require.True(t, remaining.Valid)

	relock := h.send("alice", tokenID, "3", "20")
	again := h.send("alice", tokenID, "4", "")
	require.True(t, again.Valid)
	assertAmount(t, "80", *again.Quantity)

	for _, id := range []int64{lock.ID, remaining.ID} {
		tx := h.tx(id)
		assert.False(t, tx.Valid)
		assert.Equal(t, reasonNotSentBeforeNew, tx.InvalidReason)
	}
	assert.True(t, h.tx(relock.ID).Valid)

	alice := h.balance("alice", tokenID)
	require.Len(t, alice.AvailableSendPool, 2)
	assert.Equal(t, again.InscriptionID, alice.AvailableSendPool[0].InscriptionID)
	assert.Equal(t, relock.InscriptionID, alice.AvailableSendPool[1].InscriptionID)

	stale := h.transfer(lock.InscriptionID, "alice", "bob")
	assert.False(t, stale.Valid)
	assert.Equal(t, reasonInvalidSendTrans, stale.InvalidReason)
}

func TestSendRejections(t *testing.T) {
	h := newHarness(t)
	tokenID := h.deploy("deployer", `,"lim":"100"`)
	require.True(t, h.mint("alice", tokenID, "100").Valid)

	empty := h.send("alice", tokenID, "1", "")
	assert.False(t, empty.Valid)
	assert.Equal(t, reasonNoPendingSend, empty.InvalidReason)

	require.True(t, h.send("alice", tokenID, "a", "10").Valid)
	repeated := h.send("alice", tokenID, "a", "10")
	assert.False(t, repeated.Valid)
	assert.Equal(t, reasonRepeatedNonce, repeated.InvalidReason)

	malformed := h.inscribe("alice", `{"p":"orc-20","op":"send","tick":"foo","id":"1","amt":"10"}`)
	assert.False(t, malformed.Valid)
	assert.Equal(t, reasonInvalidSend, malformed.InvalidReason)

	unknown := h.transfer(malformed.InscriptionID, "nobody", "bob")
	assert.False(t, unknown.Valid)
	assert.Equal(t, reasonParseSend, unknown.InvalidReason)
}

func TestCancel(t *testing.T) {
	h := newHarness(t)
	tokenID := h.deploy("deployer", `,"lim":"100"`)
	require.True(t, h.mint("alice", tokenID, "100").Valid)

	lock := h.send("alice", tokenID, "n2", "50")
	require.True(t, lock.Valid)

	cancelBody := fmt.Sprintf(`{"p":"orc-20","op":"cancel","tick":"foo","id":"%s","n":"['n2']"}`, tickID(tokenID))
	cancel := h.inscribe("alice", cancelBody)
	require.True(t, cancel.Valid, cancel.InvalidReason)
	assert.Equal(t, entity.MethodInscribeCancel, cancel.Method)

	lock = h.tx(lock.ID)
	assert.False(t, lock.Valid)
	assert.Equal(t, "canceled by inscribe-cancel: "+cancel.InscriptionID, lock.InvalidReason)
	assert.Empty(t, h.balance("alice", tokenID).PendingSendPool)

	again := h.inscribe("alice", cancelBody)
	assert.False(t, again.Valid)
	assert.Equal(t, reasonCancelNonceMissing, again.InvalidReason)

	stranger := h.inscribe("bob", cancelBody)
	assert.False(t, stranger.Valid)
	assert.Equal(t, reasonNoPendingToCancel, stranger.InvalidReason)
	assertAmount(t, "0", h.balance("bob", tokenID).Balance)
}

func TestCancelSentBeforeRemaining(t *testing.T) {
	h := newHarness(t)
	tokenID := h.deploy("deployer", `,"lim":"100"`)
	require.True(t, h.mint("alice", tokenID, "100").Valid)

	lock := h.send("alice", tokenID, "n1", "100")
	require.True(t, lock.Valid)
	early := h.transfer(lock.InscriptionID, "alice", "bob")
	require.Equal(t, reasonWaitForRemaining, early.InvalidReason)

	cancel := h.inscribe("alice", fmt.Sprintf(`{"p":"orc-20","op":"cancel","tick":"foo","id":"%s","n":"['n1']"}`, tickID(tokenID)))
	require.True(t, cancel.Valid, cancel.InvalidReason)

	for _, id := range []int64{lock.ID, early.ID} {
		tx := h.tx(id)
		assert.False(t, tx.Valid)
		assert.Equal(t, "canceled by inscribe-cancel: "+cancel.InscriptionID, tx.InvalidReason)
	}

	alice := h.balance("alice", tokenID)
	assert.Empty(t, alice.PendingSendPool)
	assert.Empty(t, alice.SentSendPool)
	assertAmount(t, "100", alice.Balance)

	remaining := h.send("alice", tokenID, "n2", "")
	assert.False(t, remaining.Valid)
	assert.Equal(t, reasonNoPendingSend, remaining.InvalidReason)
	assertAmount(t, "100", h.totalBalance(tokenID))
}

func TestTransferSendPoolPriority(t *testing.T) {
	h := newHarness(t)
	tokenID := h.deploy("deployer", `,"lim":"100"`)
	require.True(t, h.mint("alice", tokenID, "100").Valid)

	lock := h.send("alice", tokenID, "n1", "40")
	require.True(t, lock.Valid)
	remaining := h.send("alice", tokenID, "n2", "")
	require.True(t, remaining.Valid, remaining.InvalidReason)

	// the same inscription also sits in the received pool with its own amount
	stored := h.balance("alice", tokenID)
	require.True(t, stored.AvailableSendPool.ContainsInscription(lock.InscriptionID))
	stored.ReceivedSendPool = append(stored.ReceivedSendPool, entity.PoolEntry{
		TransactionID: lock.ID,
		InscriptionID: lock.InscriptionID,
		Amount:        decimal.NewFromInt(30),
	})

	received := h.transfer(lock.InscriptionID, "alice", "carol")
	require.True(t, received.Valid, received.InvalidReason)
	assertAmount(t, "30", *received.Quantity)

	alice := h.balance("alice", tokenID)
	assert.Empty(t, alice.ReceivedSendPool)
	assert.True(t, alice.AvailableSendPool.ContainsInscription(lock.InscriptionID))
	assertAmount(t, "70", alice.Balance)
	assertAmount(t, "30", h.balance("carol", tokenID).Balance)
	assertAmount(t, "100", h.totalBalance(tokenID))

	// available wins over pending
	pending := h.send("alice", tokenID, "n3", "10")
	require.True(t, pending.Valid)
	stored = h.balance("alice", tokenID)
	stored.AvailableSendPool = append(stored.AvailableSendPool, entity.PoolEntry{
		TransactionID: pending.ID,
		InscriptionID: pending.InscriptionID,
		Amount:        decimal.NewFromInt(5),
	})

	moved := h.transfer(pending.InscriptionID, "alice", "dave")
	require.True(t, moved.Valid, moved.InvalidReason)
	assertAmount(t, "5", *moved.Quantity)

	alice = h.balance("alice", tokenID)
	assert.False(t, alice.AvailableSendPool.ContainsInscription(pending.InscriptionID))
	assert.True(t, alice.PendingSendPool.ContainsInscription(pending.InscriptionID))
	assert.Empty(t, alice.SentSendPool)
	assertAmount(t, "65", alice.Balance)
	assertAmount(t, "5", h.balance("dave", tokenID).Balance)
	assertAmount(t, "100", h.totalBalance(tokenID))
}

// expectedBalances replays the valid mints and transfers of the log.
func (h *harness) expectedBalances() map[string]decimal.Decimal {
	expected := make(map[string]decimal.Decimal)
	for _, tx := range h.store.txs {
		if !tx.Valid || tx.Quantity == nil {
			continue
		}
		switch tx.Method {
		case entity.MethodInscribeMint:
			expected[tx.To] = expected[tx.To].Add(*tx.Quantity)
		case entity.MethodTransfer:
			if tx.From != tx.To {
				expected[tx.From] = expected[tx.From].Sub(*tx.Quantity)
				expected[tx.To] = expected[tx.To].Add(*tx.Quantity)
			}
		}
	}
	return expected
}

// parked reports whether the inscription moved before its lock was reconciled.
func (h *harness) parked(inscriptionID string) bool {
	for _, balance := range h.store.balances {
		if balance.SentSendPool.ContainsInscription(inscriptionID) {
			return true
		}
	}
	return false
}

// assertSendPools checks that an inscription lives in one send pool of the
// holder, except a sent entry which stays pending until the next remaining.
func assertSendPools(t *testing.T, balance *entity.Balance, step int) {
	t.Helper()
	pools := []struct {
		name string
		pool entity.Pool
	}{
		{"pending", balance.PendingSendPool},
		{"available", balance.AvailableSendPool},
		{"received", balance.ReceivedSendPool},
	}
	where := make(map[string]string)
	for _, p := range pools {
		for _, entry := range p.pool {
			if other, ok := where[entry.InscriptionID]; ok && other != p.name {
				assert.Failf(t, "inscription in two pools", "step %d: %s of %s is in %s and %s", step, entry.InscriptionID, balance.Address, other, p.name)
			}
			where[entry.InscriptionID] = p.name
		}
	}
	for _, entry := range balance.SentSendPool {
		assert.Equal(t, "pending", where[entry.InscriptionID], "step %d: sent %s of %s", step, entry.InscriptionID, balance.Address)
	}
}

func TestSendPoolInvariants(t *testing.T) {
	h := newHarness(t)
	tokenID := h.deploy("deployer", `,"max":"1000","lim":"100"`)
	holders := []string{"alice", "bob", "carol"}
	minted := decimal.Zero
	for _, holder := range holders {
		mint := h.mint(holder, tokenID, "100")
		require.True(t, mint.Valid)
		minted = minted.Add(*mint.Quantity)
	}

	rng := rand.New(rand.NewSource(20))
	owners := make(map[string]string)
	nonces := make(map[string][]string)
	var sends []string
	for step := 0; step < 400; step++ {
		holder := holders[rng.Intn(len(holders))]
		var tx *entity.Transaction
		switch op := rng.Intn(10); {
		case op < 3:
			nonce := fmt.Sprintf("n%d", step)
			tx = h.send(holder, tokenID, nonce, strconv.Itoa(1+rng.Intn(60)))
			nonces[holder] = append(nonces[holder], nonce)
			owners[tx.InscriptionID] = holder
			sends = append(sends, tx.InscriptionID)
		case op < 5:
			tx = h.send(holder, tokenID, fmt.Sprintf("n%d", step), "")
			owners[tx.InscriptionID] = holder
			sends = append(sends, tx.InscriptionID)
		case op < 9:
			if len(sends) == 0 {
				continue
			}
			id := sends[rng.Intn(len(sends))]
			if h.parked(id) {
				continue
			}
			tx = h.transfer(id, owners[id], holder)
			owners[id] = holder
		default:
			if len(nonces[holder]) == 0 {
				continue
			}
			nonce := nonces[holder][rng.Intn(len(nonces[holder]))]
			tx = h.inscribe(holder, fmt.Sprintf(`{"p":"orc-20","op":"cancel","tick":"foo","id":"%s","n":"['%s']"}`, tickID(tokenID), nonce))
		}
		require.NotNil(t, tx, "step %d", step)

		expected := h.expectedBalances()
		for _, balance := range h.store.balances {
			assertSendPools(t, balance, step)
			assertAmount(t, expected[balance.Address].String(), balance.Balance, "step %d: balance of %s", step, balance.Address)
		}
		assertAmount(t, minted.String(), h.totalBalance(tokenID), "step %d", step)
	}
}

func TestTransferMint(t *testing.T) {
	h := newHarness(t)
	tokenID := h.deploy("deployer", `,"lim":"100"`)
	mint := h.mint("alice", tokenID, "100")
	require.True(t, mint.Valid)

	self := h.transfer(mint.InscriptionID, "alice", "alice")
	require.True(t, self.Valid)
	assert.Len(t, h.balance("alice", tokenID).ReceivedMintPool, 1)

	moved := h.transfer(mint.InscriptionID, "alice", "bob")
	require.True(t, moved.Valid)
	assert.Equal(t, entity.MethodTransfer, moved.Method)

	alice := h.balance("alice", tokenID)
	assertAmount(t, "0", alice.Balance)
	assert.Empty(t, alice.ReceivedMintPool)

	bob := h.balance("bob", tokenID)
	assertAmount(t, "100", bob.Balance)
	require.Len(t, bob.ReceivedMintPool, 1)
	assert.Equal(t, moved.ID, bob.ReceivedMintPool[0].TransactionID)

	stale := h.transfer(mint.InscriptionID, "alice", "carol")
	assert.False(t, stale.Valid)
	assert.Equal(t, reasonInvalidMintTrans, stale.InvalidReason)

	unknown := h.transfer(mint.InscriptionID, "zed", "carol")
	assert.False(t, unknown.Valid)
	assert.Equal(t, reasonInvalidMintTrans, unknown.InvalidReason)
	assertAmount(t, "0", h.balance("zed", tokenID).Balance)

	assertAmount(t, "100", h.totalBalance(tokenID))
	assertAmount(t, "100", h.store.tokens[tokenID].Minted)
}

func TestUpgrade(t *testing.T) {
	h := newHarness(t)
	tokenID := h.deploy("deployer", `,"max":"1000","lim":"100","dec":"0"`)
	require.True(t, h.mint("alice", tokenID, "100").Valid)

	body := fmt.Sprintf(`{"p":"orc-20","op":"upgrade","tick":"foo","id":"%s","max":"2000","lim":"200","msg":"bigger"}`, tickID(tokenID))

	stranger := h.inscribe("mallory", body)
	assert.False(t, stranger.Valid)
	assert.Equal(t, reasonOnlyDeployerUpgrade, stranger.InvalidReason)

	tooSmall := h.inscribe("deployer", fmt.Sprintf(`{"p":"orc-20","op":"upgrade","tick":"foo","id":"%s","max":"50"}`, tickID(tokenID)))
	assert.False(t, tooSmall.Valid)
	assert.Equal(t, reasonInvalidUpgrade, tooSmall.InvalidReason)

	belowMinted := h.inscribe("deployer", fmt.Sprintf(`{"p":"orc-20","op":"upgrade","tick":"foo","id":"%s","max":"99","lim":"10"}`, tickID(tokenID)))
	assert.False(t, belowMinted.Valid)
	assert.Equal(t, reasonMaxLessThanMinted, belowMinted.InvalidReason)

	proposal := h.inscribe("deployer", body)
	require.True(t, proposal.Valid, proposal.InvalidReason)
	token := h.store.tokens[tokenID]
	require.Len(t, token.UpgradePending, 1)
	assertAmount(t, "1000", token.Max)

	misdirected := h.transfer(proposal.InscriptionID, "deployer", "mallory")
	assert.False(t, misdirected.Valid)
	assert.Equal(t, reasonOnlyDeployerActivation, misdirected.InvalidReason)

	activation := h.transfer(proposal.InscriptionID, "deployer", orc20.UpgradeActivationAddress)
	require.True(t, activation.Valid, activation.InvalidReason)
	assert.Equal(t, entity.MethodTransferUpgrade, activation.Method)

	token = h.store.tokens[tokenID]
	assert.Empty(t, token.UpgradePending)
	require.Len(t, token.UpgradeHistory, 1)
	assert.Equal(t, activation.ID, *token.UpgradeHistory[0].EffectiveIndex)
	assertAmount(t, "2000", token.Max)
	assertAmount(t, "200", token.Lim)
	assert.Equal(t, "bigger", token.Msg)
	require.NotNil(t, token.UpgradeTime)
	assert.Equal(t, activation.Time, *token.UpgradeTime)

	replay := h.transfer(proposal.InscriptionID, "deployer", orc20.UpgradeActivationAddress)
	assert.False(t, replay.Valid)
	assert.Equal(t, reasonInvalidUpgradeTrans, replay.InvalidReason)
}

func TestUpgradeNotUpgradable(t *testing.T) {
	h := newHarness(t)
	tokenID := h.deploy("deployer", `,"ug":"false"`)

	tx := h.inscribe("deployer", fmt.Sprintf(`{"p":"orc-20","op":"upgrade","tick":"foo","id":"%s","msg":"x"}`, tickID(tokenID)))
	assert.False(t, tx.Valid)
	assert.Equal(t, reasonNotUpgradable, tx.InvalidReason)
}

func TestApplyIgnoresNonOperations(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	content, ok := orc20.ParseEnvelope(`{"p":"orc-20","op":"burn","tick":"foo"}`)
	require.True(t, ok)
	mutations, err := h.ledger.Apply(ctx, &types.InscriptionEvent{ID: 1, Kind: types.EventKindInscribe}, content)
	require.NoError(t, err)
	assert.Nil(t, mutations)

	content, ok = orc20.ParseEnvelope(`{"p":"orc-20","op":"deploy","tick":"foo"}`)
	require.True(t, ok)
	mutations, err = h.ledger.Apply(ctx, &types.InscriptionEvent{ID: 2, Kind: types.EventKindTransfer}, content)
	require.NoError(t, err)
	assert.Nil(t, mutations)
}

func TestApplyMutationOrder(t *testing.T) {
	h := newHarness(t)
	tokenID := h.deploy("deployer", `,"lim":"100"`)
	require.True(t, h.mint("alice", tokenID, "100").Valid)
	lock := h.send("alice", tokenID, "1", "10")

	content, ok := orc20.ParseEnvelope(fmt.Sprintf(`{"p":"orc-20","op":"cancel","tick":"foo","id":"%s","n":"['1']"}`, tickID(tokenID)))
	require.True(t, ok)
	event := h.nextEvent(types.EventKindInscribe, "cancel", "alice", "alice", "")
	mutations, err := h.ledger.Apply(context.Background(), event, content)
	require.NoError(t, err)

	require.Len(t, mutations, 3)
	insert, ok := mutations[0].(entity.InsertTransaction)
	require.True(t, ok)
	assert.Equal(t, event.ID, insert.Transaction.ID)
	assert.IsType(t, entity.UpdateBalance{}, mutations[1])
	update, ok := mutations[2].(entity.UpdateTransaction)
	require.True(t, ok)
	assert.Equal(t, lock.ID, update.ID)
	assert.False(t, update.Valid)

	// nothing is written before the mutations are applied
	assert.True(t, h.tx(lock.ID).Valid)
}

type failingReader struct {
	*memStore
}

func (failingReader) GetBalanceByID(context.Context, string) (*entity.Balance, error) {
	return nil, errors.New("connection reset")
}

func TestApplyReaderFailure(t *testing.T) {
	h := newHarness(t)
	tokenID := h.deploy("deployer", `,"lim":"100"`)

	pool := pond.NewPool(2)
	t.Cleanup(pool.StopAndWait)
	l := New(failingReader{h.store}, pool)

	content, ok := orc20.ParseEnvelope(fmt.Sprintf(`{"p":"orc-20","op":"mint","tick":"foo","id":"%s","amt":"1"}`, tickID(tokenID)))
	require.True(t, ok)
	mutations, err := l.Apply(context.Background(), h.nextEvent(types.EventKindInscribe, "x", "alice", "alice", ""), content)
	assert.Error(t, err)
	assert.Nil(t, mutations)
}
