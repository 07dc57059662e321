package config

import (
	"testing"

	"github.com/gaze-network/orc20-indexer/common/errs"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	for _, namespace := range []string{"A", "B", "mainnet_2"} {
		assert.NoError(t, Config{Namespace: namespace}.Validate(), namespace)
	}
	for _, namespace := range []string{"", "a-b", "a;drop", "ns space"} {
		assert.ErrorIs(t, Config{Namespace: namespace}.Validate(), errs.InvalidArgument, namespace)
	}
}

func TestSchemaName(t *testing.T) {
	conf := Config{Namespace: "B"}
	assert.Equal(t, "orc20_b", conf.SchemaName())
	assert.Equal(t, "orc20_b,public", conf.SearchPath())
}
