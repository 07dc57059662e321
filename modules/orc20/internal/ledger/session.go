package ledger

import (
	"context"
	"slices"
	"strconv"

	"github.com/alitto/pond/v2"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/common/errs"
	"github.com/gaze-network/orc20-indexer/core/types"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/orc20"
	"github.com/shopspring/decimal"
)

type record[T any] struct {
	value *T
	isNew bool
	dirty bool
}

// session is the working set of a single event. Every record it hands out is
// a private copy, so an event that fails halfway leaves no trace.
type session struct {
	*Ledger
	event *types.InscriptionEvent
	tx    *entity.Transaction

	tokens       map[string]*record[entity.Token]
	tokenOrder   []string
	balances     map[string]*record[entity.Balance]
	balanceOrder []string

	txs         map[int64]*entity.Transaction
	txUpdates   map[int64]*entity.UpdateTransaction
	updateOrder []int64
}

func newSession(l *Ledger, event *types.InscriptionEvent) *session {
	return &session{
		Ledger: l,
		event:  event,
		tx: &entity.Transaction{
			ID:                event.ID,
			BlockHeight:       event.BlockHeight,
			InscriptionID:     event.InscriptionID,
			InscriptionNumber: event.InscriptionNumber,
			From:              event.From,
			To:                event.To,
			Time:              event.Time,
			Valid:             false,
			InvalidReason:     reasonInvalidTransaction,
		},
		tokens:    make(map[string]*record[entity.Token]),
		balances:  make(map[string]*record[entity.Balance]),
		txs:       make(map[int64]*entity.Transaction),
		txUpdates: make(map[int64]*entity.UpdateTransaction),
	}
}

// invalid records reason on the event's transaction.
func (s *session) invalid(reason string) error {
	s.tx.Invalidate(reason)
	return nil
}

func (s *session) valid() error {
	s.tx.Validate()
	return nil
}

func (s *session) setQuantity(amount decimal.Decimal) {
	s.tx.Quantity = &amount
}

// resolveToken finds the token a payload refers to. With an inscribe height
// the lookup scheme follows the epoch; transfers try the token key first and
// then the deploy inscription number.
func (s *session) resolveToken(ctx context.Context, ref orc20.TokenRef, height *int64) (*entity.Token, error) {
	var (
		token *entity.Token
		err   error
	)
	switch {
	case height != nil && *height < orc20.OIP3Height:
		token, err = s.tokenByID(ctx, ref.ID())
	case height != nil:
		token, err = s.tokenByNumber(ctx, ref)
	default:
		token, err = s.tokenByID(ctx, ref.ID())
		if err == nil && token == nil {
			token, err = s.tokenByNumber(ctx, ref)
		}
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if token != nil {
		id := token.ID
		s.tx.TokenID = &id
	}
	return token, nil
}

func (s *session) tokenByID(ctx context.Context, id string) (*entity.Token, error) {
	if r, ok := s.tokens[id]; ok {
		return r.value, nil
	}
	token, err := s.reader.GetTokenByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to get token %s", id)
	}
	return s.trackToken(token.Clone(), false), nil
}

func (s *session) tokenByNumber(ctx context.Context, ref orc20.TokenRef) (*entity.Token, error) {
	number, err := strconv.ParseInt(ref.TickID, 10, 64)
	if err != nil {
		return nil, nil
	}
	token, err := s.reader.GetTokenByTickAndInscriptionNumber(ctx, ref.Tick, number)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to get token %s by inscription number", ref.Tick)
	}
	if r, ok := s.tokens[token.ID]; ok {
		return r.value, nil
	}
	return s.trackToken(token.Clone(), false), nil
}

func (s *session) trackToken(token *entity.Token, isNew bool) *entity.Token {
	s.tokens[token.ID] = &record[entity.Token]{value: token, isNew: isNew}
	s.tokenOrder = append(s.tokenOrder, token.ID)
	return token
}

func (s *session) touchToken(token *entity.Token) {
	s.tokens[token.ID].dirty = true
}

// balance returns the balance row of address for token, or nil.
func (s *session) balance(ctx context.Context, address string, token *entity.Token) (*entity.Balance, error) {
	id := entity.BalanceID(address, token.ID)
	if r, ok := s.balances[id]; ok {
		return r.value, nil
	}
	balance, err := s.reader.GetBalanceByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to get balance %s", id)
	}
	return s.trackBalance(balance.Clone(), false), nil
}

// createBalance adds an empty row, persisted whatever the outcome of the event.
func (s *session) createBalance(address string, token *entity.Token) *entity.Balance {
	return s.trackBalance(entity.NewBalance(address, token), true)
}

func (s *session) getOrCreateBalance(ctx context.Context, address string, token *entity.Token) (*entity.Balance, error) {
	balance, err := s.balance(ctx, address, token)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		balance = s.createBalance(address, token)
	}
	return balance, nil
}

func (s *session) trackBalance(balance *entity.Balance, isNew bool) *entity.Balance {
	s.balances[balance.ID] = &record[entity.Balance]{value: balance, isNew: isNew}
	s.balanceOrder = append(s.balanceOrder, balance.ID)
	return balance
}

func (s *session) touchBalance(balance *entity.Balance) {
	s.balances[balance.ID].dirty = true
}

// transaction returns an earlier transaction log record, or nil.
func (s *session) transaction(ctx context.Context, id int64) (*entity.Transaction, error) {
	if tx, ok := s.txs[id]; ok {
		return tx, nil
	}
	tx, err := s.reader.GetTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to get transaction %d", id)
	}
	tx = tx.Clone()
	s.txs[id] = tx
	return tx, nil
}

// prefetchTransactions loads the records of ids through the worker pool.
func (s *session) prefetchTransactions(ctx context.Context, ids []int64) error {
	missing := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := s.txs[id]; !ok && !slices.Contains(missing, id) {
			missing = append(missing, id)
		}
	}
	if len(missing) < 2 {
		return nil
	}

	results, err := fetchAll(ctx, s.pool, missing, s.reader.GetTransactionByID)
	if err != nil {
		return errors.Wrap(err, "failed to prefetch transactions")
	}
	for i, id := range missing {
		if results[i] != nil {
			s.txs[id] = results[i].Clone()
		}
	}
	return nil
}

// prefetchBalances loads the balance rows of addresses for token through the
// worker pool.
func (s *session) prefetchBalances(ctx context.Context, addresses []string, token *entity.Token) error {
	missing := make([]string, 0, len(addresses))
	for _, address := range addresses {
		id := entity.BalanceID(address, token.ID)
		if _, ok := s.balances[id]; !ok && !slices.Contains(missing, id) {
			missing = append(missing, id)
		}
	}
	if len(missing) < 2 {
		return nil
	}

	results, err := fetchAll(ctx, s.pool, missing, s.reader.GetBalanceByID)
	if err != nil {
		return errors.Wrap(err, "failed to prefetch balances")
	}
	for _, balance := range results {
		if balance != nil {
			s.trackBalance(balance.Clone(), false)
		}
	}
	return nil
}

// fetchAll runs get for every key on pool. Missing records are left nil.
func fetchAll[K comparable, V any](ctx context.Context, pool pond.Pool, keys []K, get func(context.Context, K) (*V, error)) ([]*V, error) {
	results := make([]*V, len(keys))
	errList := make([]error, len(keys))

	group := pool.NewGroupContext(ctx)
	groupCtx := group.Context()
	for i, key := range keys {
		group.Submit(func() {
			if err := groupCtx.Err(); err != nil {
				errList[i] = err
				return
			}
			results[i], errList[i] = get(groupCtx, key)
		})
	}
	if err := group.Wait(); err != nil {
		return nil, errors.WithStack(err)
	}

	for i, err := range errList {
		if err == nil {
			continue
		}
		if errors.Is(err, errs.NotFound) {
			results[i] = nil
			continue
		}
		return nil, errors.Wrapf(err, "failed to get %v", keys[i])
	}
	return results, nil
}

// updateTransaction schedules a rewrite of an earlier record. The last
// update of an id wins.
func (s *session) updateTransaction(tx *entity.Transaction) {
	if tx.ID == s.tx.ID {
		s.tx.Valid, s.tx.InvalidReason = tx.Valid, tx.InvalidReason
		return
	}
	if _, ok := s.txUpdates[tx.ID]; !ok {
		s.updateOrder = append(s.updateOrder, tx.ID)
	}
	s.txUpdates[tx.ID] = &entity.UpdateTransaction{
		ID:            tx.ID,
		Valid:         tx.Valid,
		InvalidReason: tx.InvalidReason,
		TokenID:       tx.TokenID,
		Quantity:      tx.Quantity,
	}
}

// mutations lists the session's writes: the event's own record first, then
// tokens, balances and the rewrites of earlier records.
func (s *session) mutations() []entity.Mutation {
	out := make([]entity.Mutation, 0, 1+len(s.tokenOrder)+len(s.balanceOrder)+len(s.updateOrder))
	out = append(out, entity.InsertTransaction{Transaction: s.tx})
	for _, id := range s.tokenOrder {
		r := s.tokens[id]
		switch {
		case r.isNew:
			out = append(out, entity.InsertToken{Token: r.value})
		case r.dirty:
			out = append(out, entity.UpdateToken{Token: r.value})
		}
	}
	for _, id := range s.balanceOrder {
		r := s.balances[id]
		switch {
		case r.isNew:
			out = append(out, entity.InsertBalance{Balance: r.value})
		case r.dirty:
			out = append(out, entity.UpdateBalance{Balance: r.value})
		}
	}
	for _, id := range s.updateOrder {
		out = append(out, *s.txUpdates[id])
	}
	return out
}
