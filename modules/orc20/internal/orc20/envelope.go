package orc20

import (
	"encoding/json"
	"io"
	"regexp"
	"strings"
)

var (
	trailingCommaPattern = regexp.MustCompile(`,\s*}`)
	objectPattern        = regexp.MustCompile(`(?s)\{.*?\}`)
)

var protocolNames = map[string]struct{}{
	"orc20":  {},
	"orc-20": {},
}

// Content is the decoded key/value payload of an ORC-20 inscription.
// Numbers are kept as json.Number so amounts never pass through float64.
type Content map[string]any

// Op returns the lower-cased "op" field.
func (c Content) Op() string {
	s, _ := scalar(c["op"])
	return strings.ToLower(s)
}

// Has reports whether key is present, even with a null value.
func (c Content) Has(key string) bool {
	_, ok := c[key]
	return ok
}

// ParseEnvelope decodes an inscription body into ORC-20 content. A single
// trailing comma before a closing brace is tolerated. When the body is not an
// envelope itself, the first of at least two brace-delimited fragments that is
// one is used. ok is false when the body carries no ORC-20 envelope.
func ParseEnvelope(body string) (content Content, ok bool) {
	if content, ok := decodeEnvelope(body); ok {
		return content, true
	}

	fragments := objectPattern.FindAllString(body, -1)
	if len(fragments) < 2 {
		return nil, false
	}
	for _, fragment := range fragments {
		if content, ok := decodeEnvelope(fragment); ok {
			return content, true
		}
	}
	return nil, false
}

func decodeEnvelope(s string) (Content, bool) {
	s = trailingCommaPattern.ReplaceAllString(s, "}")

	decoder := json.NewDecoder(strings.NewReader(s))
	decoder.UseNumber()
	var content Content
	if err := decoder.Decode(&content); err != nil || content == nil {
		return nil, false
	}
	// reject trailing data after the object
	if _, err := decoder.Token(); err != io.EOF {
		return nil, false
	}

	p, ok := content["p"].(string)
	if !ok {
		return nil, false
	}
	if _, ok := protocolNames[strings.ToLower(p)]; !ok {
		return nil, false
	}
	if _, ok := content["op"]; !ok {
		return nil, false
	}
	return content, true
}
