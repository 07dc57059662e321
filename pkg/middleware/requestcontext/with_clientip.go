package requestcontext

import (
	"context"
	"net/netip"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/pkg/logger"
	"github.com/gaze-network/orc20-indexer/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type clientIPKey struct{}

type WithClientIPConfig struct {
	// TrustedHeader, when set, is read first (e.g. CF-Connecting-IP, X-Real-IP).
	TrustedHeader string `mapstructure:"trusted_header"`

	// TrustedProxies lists the CIDRs of every proxy in front of the API. The
	// client is the right-most X-Forwarded-For entry outside these ranges.
	TrustedProxies []string `mapstructure:"trusted_proxies"`

	// RejectSpoofed answers 403 when X-Forwarded-For is present but no
	// trusted proxy range is configured to validate it.
	RejectSpoofed bool `mapstructure:"reject_spoofed"`
}

// GetClientIP returns the client ip stored by WithClientIP, or "".
func GetClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

func WithClientIP(config WithClientIPConfig) Option {
	proxies, err := parsePrefixes(config.TrustedProxies)
	if err != nil {
		logger.Panic("Invalid trusted proxies", slogx.Error(err))
	}

	return func(ctx context.Context, c *fiber.Ctx) (context.Context, error) {
		ip, err := resolveClientIP(c, config, proxies)
		if err != nil {
			logger.WarnContext(ctx, "Rejected request with unverifiable X-Forwarded-For",
				slogx.String("remote_ip", c.IP()),
				slogx.Any("forwarded_for", c.IPs()),
			)
			return nil, err
		}
		return context.WithValue(ctx, clientIPKey{}, ip), nil
	}
}

func resolveClientIP(c *fiber.Ctx, config WithClientIPConfig, proxies []netip.Prefix) (string, error) {
	if config.TrustedHeader != "" {
		if addr, err := netip.ParseAddr(c.Get(config.TrustedHeader)); err == nil {
			return addr.String(), nil
		}
	}

	forwarded := c.IPs()
	if len(forwarded) == 0 {
		return c.IP(), nil
	}

	if len(proxies) > 0 {
		for i := len(forwarded) - 1; i >= 0; i-- {
			addr, err := netip.ParseAddr(forwarded[i])
			if err != nil {
				continue
			}
			trusted := lo.ContainsBy(proxies, func(p netip.Prefix) bool { return p.Contains(addr.Unmap()) })
			if !trusted {
				return addr.String(), nil
			}
		}
		return forwarded[0], nil
	}

	if config.RejectSpoofed {
		return "", rejectError{status: fiber.StatusForbidden, message: "not allowed to access"}
	}
	return forwarded[0], nil
}

func parsePrefixes(cidrs []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(cidrs))
	for _, cidr := range cidrs {
		prefix, err := netip.ParsePrefix(cidr)
		if err != nil {
			return nil, errors.Wrapf(err, "can't parse CIDR %q", cidr)
		}
		prefixes = append(prefixes, prefix.Masked())
	}
	return prefixes, nil
}
