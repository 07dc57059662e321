package cmd

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/cmd/migrate"
	"github.com/gaze-network/orc20-indexer/internal/config"
	"github.com/gaze-network/orc20-indexer/modules/orc20"
	"github.com/gaze-network/orc20-indexer/pkg/logger"
	"github.com/gaze-network/orc20-indexer/pkg/logger/slogx"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type cleanCmdOptions struct {
	Namespace   string
	DatabaseURL string
	Source      string
	Yes         bool
}

func NewCleanCommand() *cobra.Command {
	opts := &cleanCmdOptions{}

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Drop the ledger of a namespace and recreate it empty",
		Long: `Drops the ORC20 schema of the namespace, re-applies the migrations and
deletes the handled-event marks, so the next run replays the feed from the start height.`,
		Example: `orc20 clean --namespace B`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cleanHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Namespace, "namespace", "", "Ledger namespace to clean. Default is modules.orc20.namespace config.")
	flags.StringVar(&opts.DatabaseURL, "database", "", "Database url. Default is built from modules.orc20.postgres config.")
	flags.StringVar(&opts.Source, "source", "modules/orc20/database/postgresql/migrations", "Path to ORC20 migrations directory.")
	flags.BoolVarP(&opts.Yes, "yes", "y", false, "Confirm without prompt")

	return cmd
}

func cleanHandler(opts *cleanCmdOptions, cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	conf := config.Load().Modules.ORC20
	if opts.Namespace != "" {
		conf.Namespace = opts.Namespace
	}
	if err := conf.Validate(); err != nil {
		return errors.WithStack(err)
	}
	databaseURL := lo.Ternary(opts.DatabaseURL != "", opts.DatabaseURL, conf.Postgres.MigrateURL())
	schema := conf.SchemaName()

	if !opts.Yes {
		input := ""
		fmt.Printf("All ORC20 data of namespace %q will be deleted. Continue? (y/N):", conf.Namespace)
		fmt.Scanln(&input)
		if !lo.Contains([]string{"y", "yes"}, strings.ToLower(input)) {
			return nil
		}
	}

	logger.InfoContext(ctx, "Dropping ORC20 schema", slogx.String("schema", schema))
	if err := migrate.DropSchema(ctx, databaseURL, schema); err != nil {
		return errors.Wrap(err, "failed to drop schema")
	}
	if err := migrate.ApplyUp(ctx, databaseURL, opts.Source, schema, 0); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	logger.InfoContext(ctx, "Clearing handled events", slogx.String("cache", conf.Cache))
	if err := orc20.ClearHandledEvents(ctx, conf); err != nil {
		return errors.Wrap(err, "failed to clear handled events")
	}

	logger.InfoContext(ctx, "Cleaned ORC20 namespace", slogx.String("namespace", conf.Namespace))
	return nil
}
