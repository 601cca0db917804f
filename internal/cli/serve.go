package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RestaurantService/internal/app"
)

func newServeCmd(configPath *string) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and background jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			if cmd.Flags().Changed("migrate") {
				cfg.Database.MigrateOnStart = migrate
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			log.Info("Starting SMC-RestaurantService...")
			a, err := app.New(ctx, cfg, log)
			if err != nil {
				log.Error("Failed to initialize: %v", err)
				return err
			}
			defer a.Close()

			return a.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply database migrations on startup (overrides database.migrate_on_start)")
	return cmd
}
