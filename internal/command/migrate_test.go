package command

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/psds-microservice/medicine-catalog/internal/config"
	"github.com/psds-microservice/medicine-catalog/internal/database"
	apperrors "github.com/psds-microservice/medicine-catalog/internal/errors"
)

func TestMigrateUpSQLiteIsRepeatable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "migrate.db")
	url := "sqlite://" + path

	if err := MigrateUp(config.DriverSQLite, url); err != nil {
		t.Fatalf("first MigrateUp: %v", err)
	}
	if err := MigrateUp(config.DriverSQLite, url); err != nil {
		t.Fatalf("second MigrateUp: %v", err)
	}

	db, err := database.Open(context.Background(), config.DriverSQLite, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	var name string
	if err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='medicines'").Scan(&name); err != nil {
		t.Fatalf("medicines table missing: %v", err)
	}
	_, err = db.Exec(`INSERT INTO medicines (id, generic_name, concentration, presentation) VALUES ('a', 'X', '1MG', 'Y'), ('b', 'X', '1MG', 'Y')`)
	if err == nil {
		t.Fatal("expected unique constraint on (generic_name, concentration, presentation)")
	}
}

func TestMigrationsDir(t *testing.T) {
	cases := map[string]string{
		config.DriverPostgres: "postgres",
		config.DriverPGX:      "postgres",
		config.DriverSQLite:   "sqlite",
	}
	for driver, want := range cases {
		got, err := migrationsDir(driver)
		if err != nil || got != want {
			t.Errorf("migrationsDir(%s) = %q, %v; want %q", driver, got, err, want)
		}
	}
	if _, err := migrationsDir("mysql"); !errors.Is(err, apperrors.ErrUnsupportedDriver) {
		t.Fatalf("migrationsDir(mysql) = %v, want ErrUnsupportedDriver", err)
	}
}
