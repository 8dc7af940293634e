package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/psds-microservice/medicine-catalog/internal/config"
	apperrors "github.com/psds-microservice/medicine-catalog/internal/errors"
)

// Open открывает соединение с БД и проверяет его (ping).
// Драйверы: postgres (lib/pq), pgx (jackc/pgx), sqlite (modernc.org/sqlite, локальный запуск).
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	switch driver {
	case config.DriverPostgres, config.DriverPGX, config.DriverSQLite:
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedDriver, driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if driver == config.DriverSQLite {
		// SQLite: одно соединение, иначе :memory: у каждого свой и возможны SQLITE_BUSY
		db.SetMaxOpenConns(1)
		for _, p := range []string{"PRAGMA foreign_keys=ON", "PRAGMA busy_timeout=5000"} {
			if _, err := db.ExecContext(ctx, p); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("exec %q: %w", p, err)
			}
		}
	} else {
		db.SetMaxOpenConns(5)
		db.SetConnMaxIdleTime(5 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return db, nil
}

// Rebind заменяет плейсхолдеры ? на $1, $2... для драйверов Postgres
func Rebind(driver, query string) string {
	if driver != config.DriverPostgres && driver != config.DriverPGX {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
