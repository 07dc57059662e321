package redis

import (
	"context"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/pkg/logger"
	"github.com/gaze-network/orc20-indexer/pkg/logger/slogx"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultAddr         = "127.0.0.1:6379"
	DefaultPoolSize     = 100
	DefaultMinIdleConns = 2
	DefaultDialTimeout  = 5 * time.Second
	DefaultReadTimeout  = 3 * time.Second
	DefaultWriteTimeout = 3 * time.Second
	pingTimeout         = 5 * time.Second
)

type Config struct {
	Addr         string        `mapstructure:"addr"`     // Default is 127.0.0.1:6379
	Password     string        `mapstructure:"password"` // Default is empty
	DB           int           `mapstructure:"db"`       // Default is 0
	URL          string        `mapstructure:"url"`      // If URL is provided, Addr/Password/DB are ignored
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// Options converts the configuration into go-redis client options.
func (conf Config) Options() (*redis.Options, error) {
	opts := &redis.Options{
		Addr:     utils.Default(conf.Addr, DefaultAddr),
		Password: conf.Password,
		DB:       conf.DB,
	}
	if conf.URL != "" {
		parsed, err := redis.ParseURL(conf.URL)
		if err != nil {
			return nil, errors.Wrap(err, "invalid redis url")
		}
		opts = parsed
	}
	opts.PoolSize = utils.Default(conf.PoolSize, DefaultPoolSize)
	opts.MinIdleConns = utils.Default(conf.MinIdleConns, DefaultMinIdleConns)
	opts.DialTimeout = utils.Default(conf.DialTimeout, DefaultDialTimeout)
	opts.ReadTimeout = utils.Default(conf.ReadTimeout, DefaultReadTimeout)
	opts.WriteTimeout = utils.Default(conf.WriteTimeout, DefaultWriteTimeout)
	return opts, nil
}

// New creates a redis client and checks the connection.
func New(ctx context.Context, conf Config) (*redis.Client, error) {
	opts, err := conf.Options()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "failed to connect to redis at %s", opts.Addr)
	}

	logger.InfoContext(ctx, "Connected to redis",
		slogx.String("addr", opts.Addr),
		slogx.Int("db", opts.DB),
		slogx.Int("pool_size", opts.PoolSize),
	)
	return client, nil
}
