package orc20

import (
	"encoding/json"
	"strings"

	"github.com/gaze-network/orc20-indexer/pkg/decimals"
	"github.com/shopspring/decimal"
)

const (
	DefaultDec = 18
	MaxDec     = 18
)

// DefaultLim is the mint limit of a deploy that omits "lim".
var DefaultLim = decimal.NewFromInt(1)

// InvalidFieldError is returned when a payload field is missing or malformed.
type InvalidFieldError struct {
	Field string
}

func (e *InvalidFieldError) Error() string {
	return e.Field + " is invalid"
}

func invalid(field string) error {
	return &InvalidFieldError{Field: field}
}

// scalar renders a string, number or boolean as text.
func scalar(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case bool:
		if v {
			return "true", true
		}
		return "false", true
	default:
		return "", false
	}
}

// text renders any payload value as text. Non-scalar values use their JSON form.
func text(v any) string {
	if s, ok := scalar(v); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

func (c Content) identifier(key string) (string, error) {
	v, ok := c[key]
	if !ok {
		return "", invalid(key)
	}
	s, ok := scalar(v)
	if !ok {
		return "", invalid(key)
	}
	return strings.ToLower(s), nil
}

func (c Content) tick() (string, error) {
	return c.identifier("tick")
}

func (c Content) tickID() (string, error) {
	return c.identifier("id")
}

func (c Content) optionalText(key string) string {
	v, ok := c[key]
	if !ok {
		return ""
	}
	return text(v)
}

// amount parses a non-negative amount field.
func (c Content) amount(key string) (decimal.Decimal, error) {
	s, ok := scalar(c[key])
	if !ok {
		return decimal.Zero, invalid(key)
	}
	amt, err := decimals.ParseAmount(s)
	if err != nil || amt.IsNegative() {
		return decimal.Zero, invalid(key)
	}
	return amt, nil
}

// dec parses the decimals field, an integer in [0, MaxDec].
func (c Content) dec() (int, error) {
	v, ok := c["dec"]
	if !ok {
		return DefaultDec, nil
	}
	s, ok := scalar(v)
	if !ok {
		return 0, invalid("dec")
	}
	if _, isBool := v.(bool); isBool {
		return 0, invalid("dec")
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !d.IsInteger() {
		return 0, invalid("dec")
	}
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(MaxDec)) {
		return 0, invalid("dec")
	}
	return int(d.IntPart()), nil
}

// bounded parses a non-negative amount with at most dec fraction digits.
func (c Content) bounded(key string, dec int) (decimal.Decimal, error) {
	amt, err := c.amount(key)
	if err != nil {
		return decimal.Zero, err
	}
	if decimals.FractionDigits(amt) > dec {
		return decimal.Zero, invalid(key)
	}
	return amt, nil
}

// flag parses a "true"/"false" string field. Only the literal strings are accepted.
func (c Content) flag(key string) (bool, error) {
	v, ok := c[key]
	if !ok {
		return true, nil
	}
	switch v {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, invalid(key)
	}
}
