package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/common"
	"github.com/gaze-network/orc20-indexer/common/errs"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/usecase"
)

type HttpHandler struct {
	usecase *usecase.Usecase
	network common.Network
}

func New(network common.Network, usecase *usecase.Usecase) *HttpHandler {
	return &HttpHandler{
		usecase: usecase,
		network: network,
	}
}

type HttpResponse[T any] struct {
	Error  *string `json:"error"`
	Result *T      `json:"result,omitempty"`
}

const (
	defaultLimit = 100
	maxLimit     = 1000
)

type paginationRequest struct {
	Limit  int32 `query:"limit"`
	Offset int32 `query:"offset"`
}

func (r paginationRequest) Validate() error {
	var errList []error
	if r.Limit < 0 {
		errList = append(errList, errors.New("'limit' must be non-negative"))
	}
	if r.Limit > maxLimit {
		errList = append(errList, errors.Errorf("'limit' cannot exceed %d", maxLimit))
	}
	if r.Offset < 0 {
		errList = append(errList, errors.New("'offset' must be non-negative"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

func (r *paginationRequest) ParseDefault() {
	if r.Limit == 0 {
		r.Limit = defaultLimit
	}
}

// validateWallet rejects anything that is not an address of the configured network.
func (h *HttpHandler) validateWallet(wallet string) error {
	if wallet == "" {
		return nil
	}
	if _, err := h.network.DecodeAddress(wallet); err != nil {
		return errs.WithPublicMessage(errors.Errorf("'%s' is not a valid %s address", wallet, h.network), "validation error")
	}
	return nil
}
