package cmd

import (
	"github.com/gaze-network/orc20-indexer/cmd/migrate"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the ORC-20 schema of a namespace",
		Long: `Each namespace keeps its ledger tables in its own PostgreSQL schema
(orc20_<namespace>) with a separate migration history.`,
	}
	cmd.AddCommand(
		migrate.NewMigrateUpCommand(),
		migrate.NewMigrateDownCommand(),
	)
	return cmd
}
