package orc20

import (
	"context"

	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/datagateway"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/ledger"
	"github.com/puzpuzpuz/xsync/v4"
)

var _ ledger.Reader = (*tokenCache)(nil)

type tokenNumberKey struct {
	tick   string
	number int64
}

// tokenCache keeps the tokens read or written by the processor. Tokens are
// looked up for almost every event, while balances and transactions are not.
// Misses are never cached, so the store stays the source of truth.
type tokenCache struct {
	datagateway.ORC20ReaderDataGateway

	byID     *xsync.Map[string, *entity.Token]
	byNumber *xsync.Map[tokenNumberKey, string]
}

func newTokenCache(reader datagateway.ORC20ReaderDataGateway) *tokenCache {
	return &tokenCache{
		ORC20ReaderDataGateway: reader,
		byID:                   xsync.NewMap[string, *entity.Token](),
		byNumber:               xsync.NewMap[tokenNumberKey, string](),
	}
}

func (c *tokenCache) GetTokenByID(ctx context.Context, id string) (*entity.Token, error) {
	if token, ok := c.byID.Load(id); ok {
		return token, nil
	}
	token, err := c.ORC20ReaderDataGateway.GetTokenByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(token)
	return token, nil
}

func (c *tokenCache) GetTokenByTickAndInscriptionNumber(ctx context.Context, tick string, inscriptionNumber int64) (*entity.Token, error) {
	key := tokenNumberKey{tick: tick, number: inscriptionNumber}
	if id, ok := c.byNumber.Load(key); ok {
		if token, ok := c.byID.Load(id); ok {
			return token, nil
		}
	}
	token, err := c.ORC20ReaderDataGateway.GetTokenByTickAndInscriptionNumber(ctx, tick, inscriptionNumber)
	if err != nil {
		return nil, err
	}
	c.store(token)
	c.byNumber.Store(key, token.ID)
	return token, nil
}

// refresh replaces the cached tokens written by committed mutations.
func (c *tokenCache) refresh(mutations []entity.Mutation) {
	for _, mutation := range mutations {
		switch m := mutation.(type) {
		case entity.InsertToken:
			c.store(m.Token.Clone())
		case entity.UpdateToken:
			c.store(m.Token.Clone())
		}
	}
}

// reset drops every cached token. Used after a failed write leaves the
// cache ahead of the store.
func (c *tokenCache) reset() {
	c.byID.Clear()
	c.byNumber.Clear()
}

func (c *tokenCache) store(token *entity.Token) {
	c.byID.Store(token.ID, token)
	c.byNumber.Store(tokenNumberKey{tick: token.Tick, number: token.InscriptionNumber}, token.ID)
}
