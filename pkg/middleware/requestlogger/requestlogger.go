package requestlogger

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/pkg/logger"
	"github.com/gaze-network/orc20-indexer/pkg/logger/slogx"
	"github.com/gaze-network/orc20-indexer/pkg/middleware/requestcontext"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/valyala/fasthttp"
)

type Config struct {
	// Disable drops successful request logs. Failed requests are always logged.
	Disable           bool     `mapstructure:"disable"`
	WithRequestHeader bool     `mapstructure:"with_request_header"`
	HiddenHeaders     []string `mapstructure:"hidden_headers"`
}

// New logs one line per API request after the handler chain returns.
func New(config Config) fiber.Handler {
	hidden := lo.SliceToMap(config.HiddenHeaders, func(h string) (string, struct{}) {
		return strings.ToLower(strings.TrimSpace(h)), struct{}{}
	})

	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		latency := time.Since(start)
		status := c.Response().StatusCode()

		level := slog.LevelInfo
		if err != nil || status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		if config.Disable && level == slog.LevelInfo {
			return errors.WithStack(err)
		}

		request := []any{
			slogx.String("method", c.Method()),
			slogx.String("path", c.Path()),
			slogx.String("route", c.Route().Path),
			slogx.String("ip", requestcontext.GetClientIP(c.UserContext())),
			slogx.String("remote_ip", remoteIP(c.Context())),
			slogx.String("user_agent", string(c.Context().UserAgent())),
			slogx.Any("params", c.AllParams()),
			slogx.Any("query", c.Queries()),
		}
		if config.WithRequestHeader {
			headers := lo.OmitBy(c.GetReqHeaders(), func(k string, _ []string) bool {
				_, ok := hidden[strings.ToLower(k)]
				return ok
			})
			request = append(request, slogx.Any("header", headers))
		}

		attrs := []slog.Attr{
			slogx.Group("request", request...),
			slogx.Group("response",
				slogx.Int("status", status),
				slogx.Int("length", len(c.Response().Body())),
			),
			slogx.Duration("latency", latency),
		}
		if level == slog.LevelError {
			logErr := err
			if logErr == nil {
				logErr = fiber.NewError(status)
			}
			attrs = append(attrs, slogx.Error(logErr))
		}

		logger.LogAttrs(c.UserContext(), level, "Request completed", attrs...)
		return errors.WithStack(err)
	}
}

func remoteIP(rc *fasthttp.RequestCtx) string {
	if ip := rc.RemoteIP(); ip != nil {
		return ip.String()
	}
	return ""
}
