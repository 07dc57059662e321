package migrate

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/internal/config"
	"github.com/spf13/pflag"
)

type migrateCmdOptions struct {
	DatabaseURL string
	Namespace   string
	Source      string
}

func (o *migrateCmdOptions) addFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.DatabaseURL, "database", "", "Database url to run migration on. Default is built from modules.orc20.postgres config.")
	flags.StringVar(&o.Namespace, "namespace", "", "Ledger namespace to migrate. Default is modules.orc20.namespace config.")
	flags.StringVar(&o.Source, "source", orc20MigrationSource, "Path to ORC20 migrations directory.")
}

// resolve fills the options left empty from the configuration and returns the target schema.
func (o *migrateCmdOptions) resolve() (string, error) {
	conf := config.Load().Modules.ORC20
	if o.DatabaseURL == "" {
		o.DatabaseURL = conf.Postgres.MigrateURL()
	}
	if o.Namespace != "" {
		conf.Namespace = o.Namespace
	}
	if err := conf.Validate(); err != nil {
		return "", errors.WithStack(err)
	}
	return conf.SchemaName(), nil
}
