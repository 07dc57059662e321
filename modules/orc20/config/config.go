package config

import (
	"regexp"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/common/errs"
	"github.com/gaze-network/orc20-indexer/core/datasources"
	"github.com/gaze-network/orc20-indexer/internal/postgres"
	"github.com/gaze-network/orc20-indexer/internal/redis"
)

type Config struct {
	// Namespace selects an isolated set of ledger tables (schema `orc20_<namespace>`) and
	// handled-event marks, so two ledgers (e.g. `A` and `B`) can be rebuilt side by side.
	Namespace string `mapstructure:"namespace"`

	Datasource  string   `mapstructure:"datasource"`   // Datasource to fetch inscription events e.g. `database` | `s3-archive`
	Database    string   `mapstructure:"database"`     // Database to store ledger data.
	Cache       string   `mapstructure:"cache"`        // Dedup gate and chain tip backend e.g. `redis` | `pebble`
	APIHandlers []string `mapstructure:"api_handlers"` // List of API handlers to enable. (e.g. `http`)

	StartHeight      int64         `mapstructure:"start_height"`      // First block to replay when nothing is indexed yet.
	PollingInterval  time.Duration `mapstructure:"polling_interval"`  // Wait between polls once caught up with the tip.
	PrefetchBlocks   int           `mapstructure:"prefetch_blocks"`   // Number of blocks fetched ahead of the processor.
	MaxBlockRetries  int           `mapstructure:"max_block_retries"` // Consecutive failures of one block before giving up. 0 retries forever.
	StoreConcurrency int           `mapstructure:"store_concurrency"` // Concurrent store reads issued while processing one event.

	Postgres  postgres.Config             `mapstructure:"postgres"`
	Redis     redis.Config                `mapstructure:"redis"`
	Pebble    PebbleConfig                `mapstructure:"pebble"`
	S3Archive datasources.S3ArchiveConfig `mapstructure:"s3_archive"`
}

type PebbleConfig struct {
	Path string `mapstructure:"path"` // Directory of the embedded store. Default is `./data/orc20`.
}

// DefaultNamespace is the namespace used when none is configured.
const DefaultNamespace = "A"

var namespacePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

func (c Config) Validate() error {
	if !namespacePattern.MatchString(c.Namespace) {
		return errors.Wrapf(errs.InvalidArgument, "invalid namespace %q: only letters, digits and underscore are allowed", c.Namespace)
	}
	return nil
}

// SchemaName returns the postgres schema holding the ledger tables of the namespace.
func (c Config) SchemaName() string {
	return "orc20_" + strings.ToLower(c.Namespace)
}

// SearchPath keeps the upstream event table in `public` reachable next to the ledger tables.
func (c Config) SearchPath() string {
	return c.SchemaName() + ",public"
}
