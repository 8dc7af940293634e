package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/psds-microservice/medicine-catalog/internal/catalog"
	"github.com/psds-microservice/medicine-catalog/internal/command"
	"github.com/psds-microservice/medicine-catalog/internal/database"
	"github.com/psds-microservice/medicine-catalog/internal/repository"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill an empty medicines table with the reference list (migrate up first)",
	RunE:  runSeed,
}

// runSeed всегда завершается успешно: ошибки только логируются
func runSeed(cmd *cobra.Command, args []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		log.Printf("seed: %v", err)
		return nil
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	driver := cfg.Database.Driver
	if err := command.MigrateUp(driver, cfg.DatabaseURL()); err != nil {
		logger.Error("Migration failed", zap.String("driver", driver), zap.Error(err))
		return nil
	}

	db, err := database.Open(ctx, driver, cfg.DSN())
	if err != nil {
		logger.Error("Failed to open database", zap.String("driver", driver), zap.Error(err))
		return nil
	}
	defer db.Close()

	repo := repository.NewMedicineRepository(db, driver)
	rep := command.Seed(ctx, repo, catalog.Reference(), logger.With(zap.Int("catalog_version", catalog.Version())))
	if rep.Err == nil && rep.CommitErr == nil {
		logger.Info("seed: ok")
	}
	return nil
}
