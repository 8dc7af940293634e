package command

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/psds-microservice/medicine-catalog/database/migrations"
	"github.com/psds-microservice/medicine-catalog/internal/config"
	apperrors "github.com/psds-microservice/medicine-catalog/internal/errors"
)

// MigrateUp применяет все отложенные миграции диалекта driver
func MigrateUp(driver, databaseURL string) error {
	dir, err := migrationsDir(driver)
	if err != nil {
		return err
	}
	src, err := iofs.New(migrations.FS, dir)
	if err != nil {
		return fmt.Errorf("migrate source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("migrate init: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

func migrationsDir(driver string) (string, error) {
	switch driver {
	case config.DriverPostgres, config.DriverPGX:
		return "postgres", nil
	case config.DriverSQLite:
		return "sqlite", nil
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrUnsupportedDriver, driver)
}
