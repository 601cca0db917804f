package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RestaurantService/internal/app"
	"github.com/m04kA/SMC-RestaurantService/internal/infra/storage/migrations"
	"github.com/m04kA/SMC-RestaurantService/pkg/dbmetrics"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply embedded database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				names, err := migrations.Versions()
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}

			cfg, log, err := setup(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			ctx := context.Background()
			db, err := app.OpenDB(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := migrations.Up(ctx, dbmetrics.Wrap(db, nil), log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", applied)
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "only list embedded migrations")
	return cmd
}
