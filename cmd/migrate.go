package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/psds-microservice/medicine-catalog/internal/command"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := command.MigrateUp(cfg.Database.Driver, cfg.DatabaseURL()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Info("Migrations applied", zap.String("driver", cfg.Database.Driver))
	return nil
}
