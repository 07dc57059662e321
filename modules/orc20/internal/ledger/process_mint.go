package ledger

import (
	"context"

	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/orc20"
	"github.com/gaze-network/orc20-indexer/pkg/decimals"
)

func (s *session) mint(ctx context.Context, content orc20.Content) error {
	s.tx.Method = entity.MethodInscribeMint

	mint, err := orc20.ParseMint(content)
	if err != nil {
		return s.invalid(reasonInvalidMint)
	}

	token, err := s.resolveToken(ctx, mint.TokenRef, &s.event.BlockHeight)
	if err != nil {
		return err
	}
	if token == nil {
		return s.invalid(reasonTokenNotExists)
	}

	if _, err := s.getOrCreateBalance(ctx, s.event.To, token); err != nil {
		return err
	}

	amount := mint.Amount
	if decimals.FractionDigits(amount) > token.Dec {
		return s.invalid(reasonAmountPrecision)
	}
	s.setQuantity(amount)

	if amount.GreaterThan(token.Lim) {
		return s.invalid(reasonAmountOverLimit)
	}
	if token.MintEnded() {
		return s.invalid(reasonMintEnded)
	}
	minted := token.Minted.Add(amount)
	if minted.GreaterThan(token.Max) {
		return s.invalid(reasonExceedMax)
	}

	number, at := s.event.InscriptionNumber, s.event.Time
	token.Minted = minted
	if token.StartNumber == nil {
		token.StartNumber = &number
		token.StartTime = &at
	}
	if minted.Equal(token.Max) {
		token.EndNumber = &number
		token.EndTime = &at
	}
	s.touchToken(token)

	if err := s.creditMint(ctx, s.event.To, token, entity.PoolEntry{
		TransactionID: s.event.ID,
		InscriptionID: s.event.InscriptionID,
		Amount:        amount,
	}); err != nil {
		return err
	}
	return s.valid()
}

// transferMint moves a mint inscription and the amount it carries to a new owner.
func (s *session) transferMint(ctx context.Context, content orc20.Content) error {
	s.tx.Method = entity.MethodTransfer

	mint, err := orc20.ParseMint(content)
	if err != nil {
		return s.invalid(reasonParseMint)
	}
	s.setQuantity(mint.Amount)

	token, err := s.resolveToken(ctx, mint.TokenRef, nil)
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
		return s.invalid(reasonInvalidMintTrans)
	}

	i := from.ReceivedMintPool.IndexOfInscription(s.event.InscriptionID)
	if i < 0 {
		return s.invalid(reasonInvalidMintTrans)
	}
	entry := from.ReceivedMintPool[i]

	if err := s.valid(); err != nil {
		return err
	}
	if s.event.From == s.event.To {
		return nil
	}

	from.ReceivedMintPool = from.ReceivedMintPool.RemoveAt(i)
	from.Debit(entry.Amount)
	s.touchBalance(from)

	entry.TransactionID = s.event.ID
	return s.creditMint(ctx, s.event.To, token, entry)
}
