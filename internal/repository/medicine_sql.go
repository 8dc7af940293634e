package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/psds-microservice/medicine-catalog/internal/database"
	"github.com/psds-microservice/medicine-catalog/internal/model"
)

const stageSavepoint = "stage_medicine"

// MedicineRepository — SQL-репозиторий таблицы medicines (Postgres или SQLite)
type MedicineRepository struct {
	db     *sql.DB
	driver string
}

var _ model.MedicineRepository = (*MedicineRepository)(nil)

// NewMedicineRepository создает репозиторий поверх открытого соединения
func NewMedicineRepository(db *sql.DB, driver string) *MedicineRepository {
	return &MedicineRepository{db: db, driver: driver}
}

func (r *MedicineRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM medicines`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count medicines: %w", err)
	}
	return n, nil
}

func (r *MedicineRepository) List(ctx context.Context) ([]model.Medicine, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, generic_name, concentration, presentation FROM medicines
		 ORDER BY generic_name, concentration, presentation`)
	if err != nil {
		return nil, fmt.Errorf("list medicines: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Medicine
	for rows.Next() {
		var m model.Medicine
		if err := rows.Scan(&m.ID, &m.GenericName, &m.Concentration, &m.Presentation); err != nil {
			return nil, fmt.Errorf("scan medicine: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list medicines: %w", err)
	}
	return out, nil
}

// Begin открывает транзакцию для пакетной вставки
func (r *MedicineRepository) Begin(ctx context.Context) (model.MedicineTx, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	return &medicineTx{tx: tx, driver: r.driver}, nil
}

type medicineTx struct {
	tx     *sql.Tx
	driver string
}

func (t *medicineTx) Exists(ctx context.Context, m model.Medicine) (bool, error) {
	var one int
	err := t.tx.QueryRowContext(ctx, database.Rebind(t.driver,
		`SELECT 1 FROM medicines WHERE generic_name = ? AND concentration = ? AND presentation = ? LIMIT 1`),
		m.GenericName, m.Concentration, m.Presentation).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup %s: %w", m.Key(), err)
	}
	return true, nil
}

// Stage вставляет запись внутри SAVEPOINT: ошибка откатывает только эту запись,
// а не всю транзакцию (Postgres после ошибки отклоняет любые команды до ROLLBACK).
func (t *medicineTx) Stage(ctx context.Context, m model.Medicine) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	if _, err := t.tx.ExecContext(ctx, "SAVEPOINT "+stageSavepoint); err != nil {
		return fmt.Errorf("savepoint: %w", err)
	}
	_, err := t.tx.ExecContext(ctx, database.Rebind(t.driver,
		`INSERT INTO medicines (id, generic_name, concentration, presentation) VALUES (?, ?, ?, ?)`),
		m.ID, m.GenericName, m.Concentration, m.Presentation)
	if err != nil {
		if _, rbErr := t.tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+stageSavepoint); rbErr != nil {
			return fmt.Errorf("insert %s: %w (rollback to savepoint: %v)", m.Key(), err, rbErr)
		}
		return fmt.Errorf("insert %s: %w", m.Key(), err)
	}
	if _, err := t.tx.ExecContext(ctx, "RELEASE SAVEPOINT "+stageSavepoint); err != nil {
		return fmt.Errorf("release savepoint: %w", err)
	}
	return nil
}

func (t *medicineTx) Commit() error {
	return t.tx.Commit()
}

func (t *medicineTx) Rollback() error {
	return t.tx.Rollback()
}
