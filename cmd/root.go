package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/psds-microservice/medicine-catalog/internal/config"
	"github.com/psds-microservice/medicine-catalog/internal/logger"
)

var (
	debug      bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:          "medicine-catalog",
	Short:        "Medicine catalog: reference list seeding and migrations",
	RunE:         runSeed, // по умолчанию — сид
	SilenceUsage: true,
}

// Execute запускает корневую команду (Cobra CLI)
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config/config.yaml", "Path to config.yaml")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

// bootstrap загружает .env, конфиг и создает логгер
func bootstrap() (*config.Config, *zap.Logger, error) {
	_ = godotenv.Load()

	cfg, cfgErr := config.LoadConfig(configPath)
	if cfgErr != nil {
		cfg = config.LoadConfigFromEnv()
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format, debug)
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}
	if cfgErr != nil {
		log.Warn("Failed to load config, using env and defaults",
			zap.String("path", configPath), zap.Error(cfgErr))
	}
	return cfg, log, nil
}
