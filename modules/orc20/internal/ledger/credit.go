package ledger

import (
	"context"

	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
)

// creditMint credits a mint inscription to address and records it in the
// received mint pool so the inscription can be transferred later.
func (s *session) creditMint(ctx context.Context, address string, token *entity.Token, entry entity.PoolEntry) error {
	balance, err := s.getOrCreateBalance(ctx, address, token)
	if err != nil {
		return err
	}
	balance.Credit(entry.Amount)
	balance.ReceivedMintPool = append(balance.ReceivedMintPool, entry)
	s.touchBalance(balance)
	return nil
}

// creditSend records a received send inscription on to. The amount is only
// added when it comes from another address; a self transfer already holds it.
func (s *session) creditSend(ctx context.Context, from, to string, token *entity.Token, entry entity.PoolEntry) error {
	balance, err := s.balance(ctx, to, token)
	if err != nil {
		return err
	}
	if balance == nil {
		balance = s.createBalance(to, token)
		balance.Credit(entry.Amount)
	} else if from != to {
		balance.Credit(entry.Amount)
	}
	balance.ReceivedSendPool = append(balance.ReceivedSendPool, entry)
	s.touchBalance(balance)
	return nil
}

func transactionIDs(pools ...entity.Pool) []int64 {
	var ids []int64
	for _, pool := range pools {
		for _, entry := range pool {
			ids = append(ids, entry.TransactionID)
		}
	}
	return ids
}
