package datagateway

import (
	"context"

	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
)

type ORC20DataGateway interface {
	ORC20ReaderDataGateway
	ORC20WriterDataGateway

	// BeginORC20Tx returns a new ORC20DataGateway with transaction enabled. All write operations performed in this datagateway must be committed to persist changes.
	BeginORC20Tx(ctx context.Context) (ORC20DataGatewayWithTx, error)
}

type ORC20DataGatewayWithTx interface {
	ORC20DataGateway
	Tx
}

type ORC20ReaderDataGateway interface {
	// GetLatestIndexedBlock returns the highest fully processed block. Returns errs.NotFound if no block was processed yet.
	GetLatestIndexedBlock(ctx context.Context) (*entity.IndexedBlock, error)

	// GetTokenByID returns errs.NotFound if the token does not exist.
	GetTokenByID(ctx context.Context, id string) (*entity.Token, error)
	// GetTokenByTickAndInscriptionNumber returns the token deployed by the given inscription. Returns errs.NotFound if the token does not exist.
	GetTokenByTickAndInscriptionNumber(ctx context.Context, tick string, inscriptionNumber int64) (*entity.Token, error)
	// GetTokens returns tokens ordered by deploy inscription number. An empty tick returns all ticks.
	GetTokens(ctx context.Context, tick string, limit int32, offset int32) ([]*entity.Token, error)

	// GetBalanceByID returns errs.NotFound if the balance does not exist.
	GetBalanceByID(ctx context.Context, id string) (*entity.Balance, error)
	GetBalancesByAddress(ctx context.Context, address string) ([]*entity.Balance, error)
	// GetHoldersByTokenID returns the non-zero balances of a token, largest first.
	GetHoldersByTokenID(ctx context.Context, tokenID string, limit int32, offset int32) ([]*entity.Balance, error)
	CountHoldersByTokenID(ctx context.Context, tokenID string) (int64, error)

	// GetTransactionByID returns errs.NotFound if the transaction does not exist.
	GetTransactionByID(ctx context.Context, id int64) (*entity.Transaction, error)
	// GetTransactions returns transactions ordered by id. Zero fields of filter are ignored.
	GetTransactions(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error)
}

type ORC20WriterDataGateway interface {
	// ApplyMutations writes the mutations of one event in order. The first
	// mutation must insert the event's transaction; if that transaction already
	// exists nothing is written and applied is false.
	ApplyMutations(ctx context.Context, mutations []entity.Mutation) (applied bool, err error)
	CreateIndexedBlock(ctx context.Context, block *entity.IndexedBlock) error
}
