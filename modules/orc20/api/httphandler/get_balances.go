package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/common/errs"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type getBalancesRequest struct {
	Wallet string `params:"wallet"`
}

type getBalancesResult struct {
	Address string    `json:"address"`
	List    []balance `json:"list"`
}

type getBalancesResponse = HttpResponse[getBalancesResult]

func (h *HttpHandler) GetBalances(ctx *fiber.Ctx) (err error) {
	var req getBalancesRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if req.Wallet == "" {
		return errs.NewPublicError("validation error: 'wallet' is required")
	}
	if err := h.validateWallet(req.Wallet); err != nil {
		return errors.WithStack(err)
	}

	balances, err := h.usecase.GetBalancesByAddress(ctx.UserContext(), req.Wallet)
	if err != nil {
		return errors.Wrap(err, "error during GetBalancesByAddress")
	}

	resp := getBalancesResponse{
		Result: &getBalancesResult{
			Address: req.Wallet,
			List:    lo.Map(balances, func(b *entity.Balance, _ int) balance { return mapBalance(b) }),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
