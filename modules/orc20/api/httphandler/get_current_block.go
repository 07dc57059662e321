package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/common/errs"
	"github.com/gaze-network/orc20-indexer/pkg/logger"
	"github.com/gaze-network/orc20-indexer/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
)

type getCurrentBlockResult struct {
	Height     int64  `json:"height"`
	EventCount int32  `json:"eventCount"`
	ChainTip   *int64 `json:"chainTip"`
}

type getCurrentBlockResponse = HttpResponse[getCurrentBlockResult]

func (h *HttpHandler) GetCurrentBlock(ctx *fiber.Ctx) (err error) {
	block, err := h.usecase.GetLatestBlock(ctx.UserContext())
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errs.NewPublicError("no block has been indexed yet")
		}
		return errors.Wrap(err, "error during GetLatestBlock")
	}

	result := getCurrentBlockResult{
		Height:     block.Height,
		EventCount: block.EventCount,
	}
	tip, err := h.usecase.GetChainTip(ctx.UserContext())
	if err == nil {
		result.ChainTip = &tip
	} else if !errors.Is(err, errs.NotFound) {
		logger.WarnContext(ctx.UserContext(), "Failed to get chain tip", slogx.Error(err))
	}

	return errors.WithStack(ctx.JSON(getCurrentBlockResponse{Result: &result}))
}
