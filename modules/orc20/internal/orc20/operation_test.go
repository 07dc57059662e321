package orc20

import (
	"testing"

	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/entity"
	"github.com/gaze-network/orc20-indexer/pkg/decimals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOp(t *testing.T) {
	testcases := map[string]Op{
		"deploy":   OpDeploy,
		"Mint":     OpMint,
		"send":     OpSend,
		"transfer": OpSend,
		"cancel":   OpCancel,
		"UPGRADE":  OpUpgrade,
	}
	for input, expected := range testcases {
		op, ok := ParseOp(input)
		assert.True(t, ok, input)
		assert.Equal(t, expected, op, input)
	}

	_, ok := ParseOp("burn")
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	t.Run("dispatch by op", func(t *testing.T) {
		op, err := Parse(mustContent(t, `{"p":"orc20","op":"transfer","tick":"foo","id":"1","n":"1","amt":"5"}`), 800000, 1)
		require.NoError(t, err)
		send, ok := op.(*Send)
		require.True(t, ok)
		assert.Equal(t, OpSend, send.Op())
	})
	t.Run("unknown op", func(t *testing.T) {
		_, err := Parse(mustContent(t, `{"p":"orc20","op":"burn","tick":"foo","id":"1"}`), 800000, 1)
		assert.ErrorIs(t, err, ErrUnknownOp)
	})
}

func TestParseDeploy(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		deploy, err := ParseDeploy(mustContent(t, `{"p":"orc20","op":"deploy","tick":"FOO","id":"X1"}`), OIP3Height-1, 42)
		require.NoError(t, err)
		assert.Equal(t, "foo", deploy.Tick)
		assert.Equal(t, "x1", deploy.TickID)
		assert.Equal(t, 18, deploy.Dec)
		assert.True(t, decimals.MaxUint256.Equal(deploy.Max))
		assert.Equal(t, "1", deploy.Lim.String())
		assert.True(t, deploy.Ug)
		assert.True(t, deploy.Wp)
	})
	t.Run("tick id before the epoch comes from the payload", func(t *testing.T) {
		deploy, err := ParseDeploy(mustContent(t, `{"p":"orc20","op":"deploy","tick":"foo","id":"7"}`), 788835, 123)
		require.NoError(t, err)
		assert.Equal(t, "7", deploy.TickID)
		assert.Equal(t, "foo-7", deploy.ID())
	})
	t.Run("tick id from the epoch is the inscription number", func(t *testing.T) {
		deploy, err := ParseDeploy(mustContent(t, `{"p":"orc20","op":"deploy","tick":"foo","id":"7"}`), 788836, 123)
		require.NoError(t, err)
		assert.Equal(t, "123", deploy.TickID)
	})
	t.Run("tick id is required before the epoch", func(t *testing.T) {
		_, err := ParseDeploy(mustContent(t, `{"p":"orc20","op":"deploy","tick":"foo"}`), 788835, 123)
		var fieldErr *InvalidFieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "id", fieldErr.Field)
		assert.EqualError(t, err, "id is invalid")
	})

	invalids := []struct {
		name  string
		body  string
		field string
	}{
		{"dec out of range", `{"p":"orc20","op":"deploy","tick":"foo","dec":"19"}`, "dec"},
		{"dec negative", `{"p":"orc20","op":"deploy","tick":"foo","dec":-1}`, "dec"},
		{"dec fraction", `{"p":"orc20","op":"deploy","tick":"foo","dec":"1.5"}`, "dec"},
		{"dec not a number", `{"p":"orc20","op":"deploy","tick":"foo","dec":"abc"}`, "dec"},
		{"max negative", `{"p":"orc20","op":"deploy","tick":"foo","max":"-1"}`, "max"},
		{"max precision", `{"p":"orc20","op":"deploy","tick":"foo","dec":"1","max":"10.25"}`, "max"},
		{"lim over max", `{"p":"orc20","op":"deploy","tick":"foo","max":"100","lim":"101"}`, "lim"},
		{"lim precision", `{"p":"orc20","op":"deploy","tick":"foo","dec":"0","lim":"0.5"}`, "lim"},
		{"default lim over max", `{"p":"orc20","op":"deploy","tick":"foo","dec":"1","max":"0.5"}`, "lim"},
		{"ug not literal", `{"p":"orc20","op":"deploy","tick":"foo","ug":"yes"}`, "ug"},
		{"ug boolean", `{"p":"orc20","op":"deploy","tick":"foo","ug":true}`, "ug"},
		{"wp not literal", `{"p":"orc20","op":"deploy","tick":"foo","wp":"no"}`, "wp"},
		{"tick object", `{"p":"orc20","op":"deploy","tick":{"a":1}}`, "tick"},
	}
	for _, tc := range invalids {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDeploy(mustContent(t, tc.body), OIP3Height, 1)
			var fieldErr *InvalidFieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tc.field, fieldErr.Field)
		})
	}

	t.Run("explicit values", func(t *testing.T) {
		deploy, err := ParseDeploy(mustContent(t, `{"p":"orc20","op":"deploy","tick":"foo","name":"Foo","dec":2,"max":"21,000,000.5","lim":"1,000","ug":"false","wp":"false","v":"1"}`), OIP3Height, 9)
		require.NoError(t, err)
		assert.Equal(t, 2, deploy.Dec)
		assert.Equal(t, "21000000.5", deploy.Max.String())
		assert.Equal(t, "1000", deploy.Lim.String())
		assert.False(t, deploy.Ug)
		assert.False(t, deploy.Wp)
		assert.Equal(t, "Foo", deploy.Name)
		assert.Equal(t, "1", deploy.V)
	})
}

func TestParseMint(t *testing.T) {
	mint, err := ParseMint(mustContent(t, `{"p":"orc20","op":"mint","tick":"Foo","id":"ABC","amt":"1,000.25"}`))
	require.NoError(t, err)
	assert.Equal(t, TokenRef{Tick: "foo", TickID: "abc"}, mint.TokenRef)
	assert.Equal(t, "1000.25", mint.Amount.String())

	_, err = ParseMint(mustContent(t, `{"p":"orc20","op":"mint","tick":"foo","id":"1","amt":"-1"}`))
	assert.EqualError(t, err, "amt is invalid")

	_, err = ParseMint(mustContent(t, `{"p":"orc20","op":"mint","tick":"foo","amt":"1"}`))
	assert.EqualError(t, err, "id is invalid")

	_, err = ParseMint(mustContent(t, `{"p":"orc20","op":"mint","tick":"foo","id":"1"}`))
	assert.EqualError(t, err, "amt is invalid")
}

func TestParseSend(t *testing.T) {
	t.Run("lock", func(t *testing.T) {
		send, err := ParseSend(mustContent(t, `{"p":"orc20","op":"send","tick":"foo","id":"1","n":7,"amt":"100"}`))
		require.NoError(t, err)
		assert.False(t, send.IsRemaining())
		assert.Equal(t, "7", send.Nonce)
		assert.Equal(t, "100", send.Amount.String())
	})
	t.Run("remaining", func(t *testing.T) {
		send, err := ParseSend(mustContent(t, `{"p":"orc20","op":"send","tick":"foo","id":"1","n":"n9"}`))
		require.NoError(t, err)
		assert.True(t, send.IsRemaining())
		assert.Equal(t, "n9", send.Nonce)
	})
	t.Run("nonce is required", func(t *testing.T) {
		_, err := ParseSend(mustContent(t, `{"p":"orc20","op":"send","tick":"foo","id":"1","amt":"1"}`))
		assert.EqualError(t, err, "n is invalid")
	})
	t.Run("malformed amount", func(t *testing.T) {
		_, err := ParseSend(mustContent(t, `{"p":"orc20","op":"send","tick":"foo","id":"1","n":"1","amt":"ten"}`))
		assert.EqualError(t, err, "amt is invalid")
	})
}

func TestParseCancel(t *testing.T) {
	testcases := []struct {
		name     string
		n        string
		expected []string
		isErr    bool
	}{
		{name: "list literal", n: `"[1, 'a', \"b\"]"`, expected: []string{"1", "a", "b"}},
		{name: "trailing comma", n: `"[1,2,]"`, expected: []string{"1", "2"}},
		{name: "capitalized literals", n: `"[True, None]"`, expected: []string{"true", "null"}},
		{name: "empty list", n: `"[]"`, expected: []string{}},
		{name: "json array", n: `[3, "x"]`, isErr: true},
		{name: "not a list", n: `"5"`, isErr: true},
		{name: "number", n: `5`, isErr: true},
		{name: "bad item", n: `"[abc]"`, isErr: true},
		{name: "unterminated string", n: `"['abc]"`, isErr: true},
		{name: "nested list", n: `[[1]]`, isErr: true},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			cancel, err := ParseCancel(mustContent(t, `{"p":"orc20","op":"cancel","tick":"foo","id":"1","n":`+tc.n+`}`))
			if tc.isErr {
				assert.EqualError(t, err, "n is invalid")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cancel.Nonces)
		})
	}
}

func TestUpgradeResolve(t *testing.T) {
	token := &entity.Token{
		Dec: 2,
		Max: decimals.MustFromString("1000"),
		Lim: decimals.MustFromString("100"),
	}
	resolve := func(t *testing.T, body string) (entity.UpgradeContent, error) {
		t.Helper()
		upgrade, err := ParseUpgrade(mustContent(t, body))
		require.NoError(t, err)
		return upgrade.Resolve(token)
	}

	t.Run("dec is inherited", func(t *testing.T) {
		content, err := resolve(t, `{"p":"orc20","op":"upgrade","tick":"foo","id":"1","msg":"hi"}`)
		require.NoError(t, err)
		assert.Equal(t, 2, content.Dec)
		require.NotNil(t, content.Msg)
		assert.Equal(t, "hi", *content.Msg)
		assert.Nil(t, content.Max)
		assert.Nil(t, content.Lim)
		assert.Nil(t, content.Ug)
	})
	t.Run("max and lim", func(t *testing.T) {
		content, err := resolve(t, `{"p":"orc20","op":"upgrade","tick":"foo","id":"1","max":"5000.5","lim":"200","ug":"false"}`)
		require.NoError(t, err)
		assert.Equal(t, "5000.5", content.Max.String())
		assert.Equal(t, "200", content.Lim.String())
		assert.False(t, *content.Ug)
	})
	t.Run("max precision follows the new dec", func(t *testing.T) {
		_, err := resolve(t, `{"p":"orc20","op":"upgrade","tick":"foo","id":"1","dec":"0","max":"5000.5"}`)
		assert.EqualError(t, err, "max is invalid")
	})
	t.Run("lim is checked against the token max", func(t *testing.T) {
		_, err := resolve(t, `{"p":"orc20","op":"upgrade","tick":"foo","id":"1","lim":"1001"}`)
		assert.EqualError(t, err, "lim is invalid")
	})
	t.Run("current lim is revalidated against a new max", func(t *testing.T) {
		_, err := resolve(t, `{"p":"orc20","op":"upgrade","tick":"foo","id":"1","max":"50"}`)
		assert.EqualError(t, err, "lim is invalid")
	})
	t.Run("invalid ug", func(t *testing.T) {
		_, err := resolve(t, `{"p":"orc20","op":"upgrade","tick":"foo","id":"1","ug":"maybe"}`)
		assert.EqualError(t, err, "ug is invalid")
	})
}
