package logger

import (
	"context"
	"log/slog"
)

type (
	handleFunc func(context.Context, slog.Record) error
	middleware func(handleFunc) handleFunc
)

// chainHandler runs every record through the middlewares before the wrapped handler.
type chainHandler struct {
	next        slog.Handler
	middlewares []middleware
}

func newChainHandler(next slog.Handler, middlewares ...middleware) *chainHandler {
	return &chainHandler{
		next:        next,
		middlewares: middlewares,
	}
}

func (c *chainHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return c.next.Enabled(ctx, lvl)
}

func (c *chainHandler) Handle(ctx context.Context, rec slog.Record) error {
	h := c.next.Handle
	for i := len(c.middlewares) - 1; i >= 0; i-- {
		h = c.middlewares[i](h)
	}
	return h(ctx, rec)
}

func (c *chainHandler) WithGroup(group string) slog.Handler {
	return &chainHandler{
		next:        c.next.WithGroup(group),
		middlewares: c.middlewares,
	}
}

func (c *chainHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &chainHandler{
		next:        c.next.WithAttrs(attrs),
		middlewares: c.middlewares,
	}
}
