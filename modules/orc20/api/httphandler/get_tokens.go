package httphandler

import (
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/common/errs"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type getTokensRequest struct {
	paginationRequest
	Tick string `query:"tick"`
}

type getTokensResult struct {
	List []token `json:"list"`
}

type getTokensResponse = HttpResponse[getTokensResult]

// GetTokens lists tokens, optionally of one tick. A tick can be deployed
// several times, so the result may hold more than one token.
func (h *HttpHandler) GetTokens(ctx *fiber.Ctx) (err error) {
	var req getTokensRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}
	req.ParseDefault()

	tokens, err := h.usecase.GetTokens(ctx.UserContext(), strings.TrimSpace(req.Tick), req.Limit, req.Offset)
	if err != nil {
		return errors.Wrap(err, "error during GetTokens")
	}

	resp := getTokensResponse{
		Result: &getTokensResult{
			List: lo.Map(tokens, func(t *entity.Token, _ int) token { return mapToken(t) }),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}

type getTokenInfoRequest struct {
	ID string `params:"id"`
}

func (r *getTokenInfoRequest) Validate() error {
	id, err := url.PathUnescape(r.ID)
	if err != nil {
		return errs.WithPublicMessage(errors.WithStack(err), "validation error")
	}
	r.ID = id
	if r.ID == "" {
		return errs.NewPublicError("validation error: 'id' is required")
	}
	return nil
}

type getTokenInfoResult struct {
	token
	Holders int64 `json:"holders"`
}

type getTokenInfoResponse = HttpResponse[getTokenInfoResult]

func (h *HttpHandler) GetTokenInfo(ctx *fiber.Ctx) (err error) {
	var req getTokenInfoRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	info, err := h.usecase.GetTokenInfo(ctx.UserContext(), req.ID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errs.NewPublicError("token not found")
		}
		return errors.Wrap(err, "error during GetTokenInfo")
	}

	resp := getTokenInfoResponse{
		Result: &getTokenInfoResult{
			token:   mapToken(info.Token),
			Holders: info.Holders,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}

type getHoldersRequest struct {
	paginationRequest
	getTokenInfoRequest
}

type getHoldersResult struct {
	TokenID string    `json:"tokenId"`
	List    []balance `json:"list"`
}

type getHoldersResponse = HttpResponse[getHoldersResult]

func (h *HttpHandler) GetHolders(ctx *fiber.Ctx) (err error) {
	var req getHoldersRequest
	if err := ctx.ParamsParser(&req.getTokenInfoRequest); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.QueryParser(&req.paginationRequest); err != nil {
		return errors.WithStack(err)
	}
	if err := req.getTokenInfoRequest.Validate(); err != nil {
		return errors.WithStack(err)
	}
	if err := req.paginationRequest.Validate(); err != nil {
		return errors.WithStack(err)
	}
	req.ParseDefault()

	holders, err := h.usecase.GetHolders(ctx.UserContext(), req.ID, req.Limit, req.Offset)
	if err != nil {
		return errors.Wrap(err, "error during GetHolders")
	}

	resp := getHoldersResponse{
		Result: &getHoldersResult{
			TokenID: req.ID,
			List:    lo.Map(holders, func(b *entity.Balance, _ int) balance { return mapBalance(b) }),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
