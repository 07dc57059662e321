package orc20

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
)

// normalizeNonce renders a nonce value as the string pools compare on.
func normalizeNonce(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case json.Number:
		return v.String()
	default:
		return text(v)
	}
}

// parseNonceList accepts a string holding a list literal such as
// `[1, 'a', "b"]`. A bare JSON array is rejected.
func parseNonceList(v any) ([]string, error) {
	s, ok := v.(string)
	if !ok {
		return nil, errors.New("nonce list must be a list literal")
	}
	return parseListLiteral(s)
}

func parseListLiteral(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, errors.New("not a list literal")
	}
	body := s[1 : len(s)-1]

	nonces := make([]string, 0)
	for i := 0; i < len(body); {
		switch c := body[i]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '\'' || c == '"':
			value, next, err := readQuoted(body, i)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			nonces = append(nonces, value)
			i, err = skipSeparator(body, next)
			if err != nil {
				return nil, errors.WithStack(err)
			}
		default:
			end := strings.IndexByte(body[i:], ',')
			if end < 0 {
				end = len(body) - i
			}
			token := strings.TrimSpace(body[i : i+end])
			value, err := literalToken(token)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			nonces = append(nonces, value)
			i += end + 1
			if i == len(body)+1 {
				i = len(body)
			}
		}
	}
	return nonces, nil
}

func readQuoted(s string, start int) (string, int, error) {
	quote := s[start]
	var b strings.Builder
	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 >= len(s) {
				return "", 0, errors.New("unterminated escape")
			}
			i++
			b.WriteByte(s[i])
		case quote:
			return b.String(), i + 1, nil
		default:
			b.WriteByte(s[i])
		}
	}
	return "", 0, errors.New("unterminated string")
}

func skipSeparator(s string, i int) (int, error) {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	if i == len(s) {
		return i, nil
	}
	if s[i] != ',' {
		return 0, errors.Errorf("unexpected %q after string", s[i])
	}
	return i + 1, nil
}

func literalToken(token string) (string, error) {
	switch token {
	case "":
		return "", errors.New("empty list item")
	case "True":
		return "true", nil
	case "False":
		return "false", nil
	case "None":
		return "null", nil
	}
	var n json.Number
	if err := json.Unmarshal([]byte(token), &n); err != nil {
		return "", errors.Errorf("invalid list item %q", token)
	}
	return n.String(), nil
}
