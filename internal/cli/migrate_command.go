package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studyflow/internal/config"
)

func (r *RootCommand) newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		Long: `Open the configured store, apply pending schema migrations (SQLite) or
create indexes (MongoDB), and exit. The server does the same on start, so
this is only needed to prepare a database ahead of time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.commandTimeout())
			defer cancel()

			if err := r.migrate(ctx); err != nil {
				return NewErrorHandler().Handle("migrate database", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Database is up to date (%s: %s)\n", r.config.Database.Driver, r.target())
			return nil
		},
	}
}

func (r *RootCommand) migrate(ctx context.Context) error {
	store, err := config.CreateStore(ctx, r.config)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Ping(ctx)
}

func (r *RootCommand) target() string {
	if r.config.Database.Driver == config.DriverMongo {
		return r.config.Database.MongoDatabase
	}
	return r.config.GetDatabasePath()
}
