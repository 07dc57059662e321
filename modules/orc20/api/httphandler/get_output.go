package httphandler

import (
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/common/errs"
	"github.com/gofiber/fiber/v2"
)

type getOutputResult struct {
	Output string `json:"output"`
	Value  string `json:"value"`
}

type getOutputResponse = HttpResponse[getOutputResult]

// parseOutput normalizes "txid:vout".
func parseOutput(s string) (string, error) {
	txid, vout, ok := strings.Cut(s, ":")
	if !ok {
		return "", errors.New("output must be in the form txid:vout")
	}
	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil || len(txid) != chainhash.MaxHashStringSize {
		return "", errors.Errorf("invalid txid %q", txid)
	}
	index, err := strconv.ParseUint(vout, 10, 32)
	if err != nil {
		return "", errors.Errorf("invalid vout %q", vout)
	}
	return hash.String() + ":" + strconv.FormatUint(index, 10), nil
}

func (h *HttpHandler) GetOutput(ctx *fiber.Ctx) (err error) {
	output, err := parseOutput(ctx.Params("output"))
	if err != nil {
		return errs.WithPublicMessage(err, "validation error")
	}

	value, err := h.usecase.GetOutput(ctx.UserContext(), output)
	if err != nil {
		switch {
		case errors.Is(err, errs.NotFound):
			return errs.NewPublicError("output not found")
		case errors.Is(err, errs.Unsupported):
			return errs.NewPublicError("output lookup is not available on this indexer")
		}
		return errors.Wrap(err, "error during GetOutput")
	}

	return errors.WithStack(ctx.JSON(getOutputResponse{
		Result: &getOutputResult{Output: output, Value: value},
	}))
}
