package usecase

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/common/errs"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/datagateway/mocks"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetTokenInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("token with holders", func(t *testing.T) {
		orc20Dg := mocks.NewORC20DataGatewayWithTx(t)
		u := New(orc20Dg, mocks.NewCacheDataGateway(t))

		token := &entity.Token{ID: "foo-1"}
		orc20Dg.EXPECT().GetTokenByID(mock.Anything, "foo-1").Return(token, nil).Once()
		orc20Dg.EXPECT().CountHoldersByTokenID(mock.Anything, "foo-1").Return(int64(3), nil).Once()

		info, err := u.GetTokenInfo(ctx, "foo-1")
		require.NoError(t, err)
		assert.Same(t, token, info.Token)
		assert.Equal(t, int64(3), info.Holders)
	})

	t.Run("missing token", func(t *testing.T) {
		orc20Dg := mocks.NewORC20DataGatewayWithTx(t)
		u := New(orc20Dg, mocks.NewCacheDataGateway(t))

		orc20Dg.EXPECT().GetTokenByID(mock.Anything, "foo-9").Return(nil, errors.WithStack(errs.NotFound)).Once()
		orc20Dg.EXPECT().CountHoldersByTokenID(mock.Anything, "foo-9").Return(int64(0), nil).Maybe()

		_, err := u.GetTokenInfo(ctx, "foo-9")
		assert.ErrorIs(t, err, errs.NotFound)
	})
}

func TestGetOutput(t *testing.T) {
	cacheDg := mocks.NewCacheDataGateway(t)
	u := New(mocks.NewORC20DataGatewayWithTx(t), cacheDg)

	cacheDg.EXPECT().GetOutput(mock.Anything, "txid:0").Return("", errors.WithStack(errs.Unsupported)).Once()

	_, err := u.GetOutput(context.Background(), "txid:0")
	assert.ErrorIs(t, err, errs.Unsupported)
}
