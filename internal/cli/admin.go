package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RestaurantService/internal/app"
	reservationRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/reservation"
	userRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/user"
	"github.com/m04kA/SMC-RestaurantService/internal/integrations/mailer"
	usersService "github.com/m04kA/SMC-RestaurantService/internal/service/users"
	"github.com/m04kA/SMC-RestaurantService/pkg/auth"
	"github.com/m04kA/SMC-RestaurantService/pkg/dbmetrics"
)

func newCreateAdminCmd(configPath *string) *cobra.Command {
	var email, username, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an active staff user",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			wrapped := dbmetrics.Wrap(db, nil)
			// Письма при создании сотрудника не отправляются
			noMail, err := mailer.NewClient(mailer.Config{}, log)
			if err != nil {
				return err
			}

			svc := usersService.NewService(
				userRepo.NewRepository(wrapped),
				reservationRepo.NewRepository(wrapped),
				auth.NewTokenIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTL)*time.Minute, cfg.Auth.Issuer),
				noMail,
				cfg.Auth.BcryptCost,
				log,
			)

			user, err := svc.CreateStaff(ctx, email, username, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created staff user %q (id=%d)\n", user.Username, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "e-mail")
	cmd.Flags().StringVar(&username, "username", "", "username")
	cmd.Flags().StringVar(&password, "password", "", "password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
