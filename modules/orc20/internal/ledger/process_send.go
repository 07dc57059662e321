package ledger

import (
	"context"

	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/orc20"
	"github.com/shopspring/decimal"
)

// inscribeSend locks an amount under a nonce, or settles all locks of the
// inscriber when the payload has no amount.
func (s *session) inscribeSend(ctx context.Context, content orc20.Content) error {
	s.tx.Method = entity.MethodInscribeSend

	send, err := orc20.ParseSend(content)
	if err != nil {
		return s.invalid(reasonInvalidSend)
	}
	if send.IsRemaining() {
		s.tx.Method = entity.MethodInscribeRemaining
		s.setQuantity(decimal.Zero)
	} else {
		s.setQuantity(*send.Amount)
	}

	token, err := s.resolveToken(ctx, send.TokenRef, &s.event.BlockHeight)
	if err != nil {
		return err
	}
	if token == nil {
		return s.invalid(reasonTokenNotExists)
	}

	balance, err := s.getOrCreateBalance(ctx, s.event.To, token)
	if err != nil {
		return err
	}
	if balance.PendingSendPool.ContainsNonce(send.Nonce) {
		return s.invalid(reasonRepeatedNonce)
	}

	if send.IsRemaining() {
		return s.remaining(ctx, token, balance, send.Nonce)
	}

	nonce := send.Nonce
	balance.PendingSendPool = append(balance.PendingSendPool, entity.PoolEntry{
		TransactionID: s.event.ID,
		InscriptionID: s.event.InscriptionID,
		Nonce:         &nonce,
		Amount:        *send.Amount,
	})
	s.touchBalance(balance)
	return s.valid()
}

// remaining reconciles the pending locks of balance against its total.
func (s *session) remaining(ctx context.Context, token *entity.Token, balance *entity.Balance, nonce string) error {
	pending, sent := balance.PendingSendPool, balance.SentSendPool
	if len(pending) == 0 {
		return s.invalid(reasonNoPendingSend)
	}

	locked := pending.Sum()
	if locked.GreaterThan(balance.Balance) {
		if err := s.invalidateEntries(ctx, reasonInsufficientBalance, pending, sent); err != nil {
			return err
		}
		balance.PendingSendPool = nil
		balance.SentSendPool = nil
		s.touchBalance(balance)
		return s.invalid(reasonInsufficientAvailable)
	}

	leftover := balance.Balance.Sub(locked)
	s.setQuantity(leftover)

	if err := s.prefetchTransactions(ctx, transactionIDs(balance.AvailableSendPool, sent)); err != nil {
		return err
	}
	if err := s.invalidateEntries(ctx, reasonNotSentBeforeNew, balance.AvailableSendPool); err != nil {
		return err
	}

	available := entity.Pool{{
		TransactionID: s.event.ID,
		InscriptionID: s.event.InscriptionID,
		Nonce:         &nonce,
		Amount:        leftover,
	}}
	for _, entry := range pending {
		if !sent.ContainsInscription(entry.InscriptionID) {
			available = append(available, entry)
		}
	}

	balance.PendingSendPool = nil
	balance.SentSendPool = nil
	balance.ReceivedSendPool = nil
	balance.ReceivedMintPool = nil
	balance.AvailableSendPool = available
	s.touchBalance(balance)

	// settle the inscriptions that moved before the batch was reconciled
	transfers := make([]*entity.Transaction, len(sent))
	receivers := make([]string, 0, len(sent))
	for i, entry := range sent {
		tx, err := s.transaction(ctx, entry.TransactionID)
		if err != nil {
			return err
		}
		transfers[i] = tx
		if tx != nil {
			receivers = append(receivers, tx.To)
		}
	}
	if err := s.prefetchBalances(ctx, receivers, token); err != nil {
		return err
	}
	for i, entry := range sent {
		tx := transfers[i]
		if tx == nil {
			continue
		}
		if tx.From != tx.To {
			balance.Debit(entry.Amount)
		}
		entry.TransactionID = tx.ID
		if err := s.creditSend(ctx, tx.From, tx.To, token, entry); err != nil {
			return err
		}
		tx.Validate()
		s.updateTransaction(tx)
	}
	return s.valid()
}

// invalidateEntries marks the transactions that created the pool entries invalid.
func (s *session) invalidateEntries(ctx context.Context, reason string, pools ...entity.Pool) error {
	ids := transactionIDs(pools...)
	if err := s.prefetchTransactions(ctx, ids); err != nil {
		return err
	}
	for _, id := range ids {
		tx, err := s.transaction(ctx, id)
		if err != nil {
			return err
		}
		if tx == nil {
			continue
		}
		tx.Invalidate(reason)
		s.updateTransaction(tx)
	}
	return nil
}

// transferSend moves a send inscription to a new owner. A lock that has not
// been reconciled yet is parked in the sent pool until the next remaining.
func (s *session) transferSend(ctx context.Context, content orc20.Content) error {
	s.tx.Method = entity.MethodTransfer

	send, err := orc20.ParseSend(content)
	if err != nil {
		return s.invalid(reasonParseSend)
	}
	if send.Amount != nil {
		s.setQuantity(*send.Amount)
	}

	token, err := s.resolveToken(ctx, send.TokenRef, nil)
	if err != nil {
		return err
	}
	if token == nil {
		return s.invalid(reasonTokenNotExists)
	}

	from, err := s.balance(ctx, s.event.From, token)
	if err != nil {
		return err
	}
	if from == nil {
		s.createBalance(s.event.From, token)
		return s.invalid(reasonInvalidSendTrans)
	}

	inscriptionID := s.event.InscriptionID
	var entry entity.PoolEntry
	if i := from.ReceivedSendPool.IndexOfInscription(inscriptionID); i >= 0 {
		entry = from.ReceivedSendPool[i]
		from.ReceivedSendPool = from.ReceivedSendPool.RemoveAt(i)
	} else if i := from.AvailableSendPool.IndexOfInscription(inscriptionID); i >= 0 {
		entry = from.AvailableSendPool[i]
		from.AvailableSendPool = from.AvailableSendPool.RemoveAt(i)
	} else if i := from.PendingSendPool.IndexOfInscription(inscriptionID); i >= 0 {
		entry = from.PendingSendPool[i]
		entry.TransactionID = s.event.ID
		from.SentSendPool = append(from.SentSendPool, entry)
		s.touchBalance(from)
		s.setQuantity(entry.Amount)
		return s.invalid(reasonWaitForRemaining)
	} else {
		return s.invalid(reasonInvalidSendTrans)
	}
	s.setQuantity(entry.Amount)

	if s.event.From != s.event.To {
		from.Debit(entry.Amount)
	}
	s.touchBalance(from)

	entry.TransactionID = s.event.ID
	if err := s.creditSend(ctx, s.event.From, s.event.To, token, entry); err != nil {
		return err
	}
	return s.valid()
}

func (s *session) cancel(ctx context.Context, content orc20.Content) error {
	s.tx.Method = entity.MethodInscribeCancel

	cancel, err := orc20.ParseCancel(content)
	if err != nil {
		return s.invalid(reasonInvalidCancel)
	}

	token, err := s.resolveToken(ctx, cancel.TokenRef, &s.event.BlockHeight)
	if err != nil {
		return err
	}
	if token == nil {
		return s.invalid(reasonTokenNotExists)
	}

	balance, err := s.balance(ctx, s.event.To, token)
	if err != nil {
		return err
	}
	if balance == nil {
		s.createBalance(s.event.To, token)
		return s.invalid(reasonNoPendingToCancel)
	}

	var canceled entity.Pool
	for _, nonce := range cancel.Nonces {
		if i := balance.PendingSendPool.IndexOfNonce(nonce); i >= 0 {
			canceled = append(canceled, balance.PendingSendPool[i])
			balance.PendingSendPool = balance.PendingSendPool.RemoveAt(i)
		}
		if i := balance.SentSendPool.IndexOfNonce(nonce); i >= 0 {
			canceled = append(canceled, balance.SentSendPool[i])
			balance.SentSendPool = balance.SentSendPool.RemoveAt(i)
		}
	}
	if len(canceled) == 0 {
		return s.invalid(reasonCancelNonceMissing)
	}
	s.touchBalance(balance)

	if err := s.invalidateEntries(ctx, reasonCanceledByPrefix+s.event.InscriptionID, canceled); err != nil {
		return err
	}
	return s.valid()
}
