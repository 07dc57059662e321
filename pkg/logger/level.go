package logger

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	LevelCritical = slog.Level(12)
	LevelPanic    = slog.Level(14)
	LevelFatal    = slog.Level(16)
)

// ParseLevel parses a level name (debug, info, warn, error, critical, panic, fatal).
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return LevelCritical, nil
	case "panic":
		return LevelPanic, nil
	case "fatal":
		return LevelFatal, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, errors.Wrapf(err, "invalid log level %q", s)
	}
	return l, nil
}

func levelAttrReplacer(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) != 0 || attr.Key != slog.LevelKey {
		return attr
	}
	l, ok := attr.Value.Any().(slog.Level)
	if !ok || l < LevelCritical {
		return attr
	}

	name := func(base string, offset slog.Level) slog.Value {
		if offset == 0 {
			return slog.StringValue(base)
		}
		return slog.StringValue(fmt.Sprintf("%s%+d", base, offset))
	}
	switch {
	case l < LevelPanic:
		attr.Value = name("CRITICAL", l-LevelCritical)
	case l < LevelFatal:
		attr.Value = name("PANIC", l-LevelPanic)
	default:
		attr.Value = name("FATAL", l-LevelFatal)
	}
	return attr
}
