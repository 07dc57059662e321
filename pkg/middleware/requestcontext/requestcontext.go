// Package requestcontext copies per-request values (request id, client ip) into
// the fiber user context so handlers and loggers can read them.
package requestcontext

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/pkg/logger"
	"github.com/gaze-network/orc20-indexer/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
)

// Option enriches ctx from the request. Returning a rejectError stops the
// request with its status.
type Option func(ctx context.Context, c *fiber.Ctx) (context.Context, error)

type rejectError struct {
	status  int
	message string
}

func (r rejectError) Error() string {
	return r.message
}

type errorResponse struct {
	Error string `json:"error"`
}

func New(opts ...Option) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		for i, opt := range opts {
			next, err := opt(ctx, c)
			if err != nil {
				var reject rejectError
				if errors.As(err, &reject) {
					return errors.WithStack(c.Status(reject.status).JSON(errorResponse{Error: reject.message}))
				}
				logger.ErrorContext(ctx, "Failed to build request context", slogx.Error(err), slog.Int("option", i))
				return errors.WithStack(c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "internal server error"}))
			}
			ctx = next
		}
		c.SetUserContext(ctx)
		return c.Next()
	}
}
