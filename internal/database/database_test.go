package database

import (
	"context"
	"errors"
	"testing"

	"github.com/psds-microservice/medicine-catalog/internal/config"
	apperrors "github.com/psds-microservice/medicine-catalog/internal/errors"
)

func TestOpenSQLiteInMemory(t *testing.T) {
	db, err := Open(context.Background(), config.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	var fk int
	if err := db.QueryRow("PRAGMA foreign_keys").Scan(&fk); err != nil {
		t.Fatalf("query foreign_keys: %v", err)
	}
	if fk != 1 {
		t.Errorf("foreign_keys = %d, want 1", fk)
	}
	if got := db.Stats().MaxOpenConnections; got != 1 {
		t.Errorf("MaxOpenConnections = %d, want 1", got)
	}
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), "oracle", "whatever")
	if !errors.Is(err, apperrors.ErrUnsupportedDriver) {
		t.Fatalf("got %v, want ErrUnsupportedDriver", err)
	}
}

func TestRebind(t *testing.T) {
	q := "SELECT 1 FROM medicines WHERE generic_name = ? AND concentration = ? AND presentation = ?"
	cases := []struct {
		driver string
		want   string
	}{
		{config.DriverPostgres, "SELECT 1 FROM medicines WHERE generic_name = $1 AND concentration = $2 AND presentation = $3"},
		{config.DriverPGX, "SELECT 1 FROM medicines WHERE generic_name = $1 AND concentration = $2 AND presentation = $3"},
		{config.DriverSQLite, q},
	}
	for _, tc := range cases {
		if got := Rebind(tc.driver, q); got != tc.want {
			t.Errorf("Rebind(%s) = %q, want %q", tc.driver, got, tc.want)
		}
	}
}
