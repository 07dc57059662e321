package errorhandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/common/errs"
	"github.com/gaze-network/orc20-indexer/pkg/logger"
	"github.com/gaze-network/orc20-indexer/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
)

type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler renders every error as {"error": "..."}. Public errors
// are client faults (400), fiber errors keep their status, anything else is
// logged and hidden behind a 500.
func NewHTTPErrorHandler() fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		status, message := http.StatusInternalServerError, "Internal Server Error"

		var (
			publicErr *errs.PublicError
			fiberErr  *fiber.Error
		)
		switch {
		case errors.As(err, &publicErr):
			status, message = http.StatusBadRequest, publicErr.Message()
		case errors.As(err, &fiberErr):
			status, message = fiberErr.Code, fiberErr.Message
		default:
			logger.ErrorContext(ctx.UserContext(), "Something went wrong, unhandled api error",
				slogx.String("path", ctx.Path()),
				slogx.Error(err),
			)
		}

		return errors.WithStack(ctx.Status(status).JSON(errorResponse{Error: message}))
	}
}
