package httphandler

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/common/errs"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type getTransactionsRequest struct {
	paginationRequest
	Wallet      string `query:"wallet"`
	ID          string `query:"id"`
	BlockHeight int64  `query:"block_height"`
}

func (r getTransactionsRequest) Validate() error {
	var errList []error
	if r.BlockHeight < 0 {
		errList = append(errList, errors.New("'block_height' must be non-negative"))
	}
	if err := errors.Join(errList...); err != nil {
		return errs.WithPublicMessage(err, "validation error")
	}
	return r.paginationRequest.Validate()
}

type getTransactionsResult struct {
	List []transaction `json:"list"`
}

type getTransactionsResponse = HttpResponse[getTransactionsResult]

func (h *HttpHandler) GetTransactions(ctx *fiber.Ctx) (err error) {
	var req getTransactionsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}
	if err := h.validateWallet(req.Wallet); err != nil {
		return errors.WithStack(err)
	}
	req.ParseDefault()

	txs, err := h.usecase.GetTransactions(ctx.UserContext(), entity.TransactionFilter{
		Address:     req.Wallet,
		TokenID:     req.ID,
		BlockHeight: req.BlockHeight,
		Limit:       req.Limit,
		Offset:      req.Offset,
	})
	if err != nil {
		return errors.Wrap(err, "error during GetTransactions")
	}

	resp := getTransactionsResponse{
		Result: &getTransactionsResult{
			List: lo.Map(txs, func(tx *entity.Transaction, _ int) transaction { return mapTransaction(tx) }),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}

type getTransactionByIDResponse = HttpResponse[transaction]

func (h *HttpHandler) GetTransactionByID(ctx *fiber.Ctx) (err error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil || id < 0 {
		return errs.NewPublicError("validation error: 'id' must be an event id")
	}

	tx, err := h.usecase.GetTransactionByID(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errs.NewPublicError("transaction not found")
		}
		return errors.Wrap(err, "error during GetTransactionByID")
	}

	result := mapTransaction(tx)
	return errors.WithStack(ctx.JSON(getTransactionByIDResponse{Result: &result}))
}
