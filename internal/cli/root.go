package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RestaurantService/internal/config"
	"github.com/m04kA/SMC-RestaurantService/pkg/logger"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

const defaultConfigPath = "config.toml"

// NewRootCmd корневая команда restaurant-service
func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "restaurant-service",
		Short:         "Restaurant table reservations API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to config.toml")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newMigrateCmd(&configPath))
	root.AddCommand(newCreateAdminCmd(&configPath))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute запускает CLI и завершает процесс с кодом 1 при ошибке
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup загружает конфигурацию и создает логгер
func setup(configPath string) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, nil, err
	}
	log.Info("Configuration loaded from %s", configPath)
	return cfg, log, nil
}
