package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	apperrors "github.com/psds-microservice/medicine-catalog/internal/errors"
	"github.com/psds-microservice/medicine-catalog/internal/model"
)

func TestMemoryStageIsInvisibleUntilCommit(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMedicineRepository()

	tx, _ := repo.Begin(ctx)
	if err := tx.Stage(ctx, diazepam5); err != nil {
		t.Fatalf("Stage: %v", err)
	}
	if ok, _ := tx.Exists(ctx, diazepam5); !ok {
		t.Fatal("staged record not visible inside transaction")
	}
	if n, _ := repo.Count(ctx); n != 0 {
		t.Fatalf("Count() before commit = %d, want 0", n)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if n, _ := repo.Count(ctx); n != 1 {
		t.Fatalf("Count() after commit = %d, want 1", n)
	}
}

func TestMemoryStageRejectsDuplicatesAndInvalid(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMedicineRepository(diazepam5)

	tx, _ := repo.Begin(ctx)
	if err := tx.Stage(ctx, diazepam5); err == nil {
		t.Fatal("expected duplicate error")
	}
	if err := tx.Stage(ctx, model.Medicine{Concentration: "1MG"}); !errors.Is(err, apperrors.ErrInvalidMedicine) {
		t.Fatalf("Stage(invalid) = %v", err)
	}
	if err := tx.Stage(ctx, clonazepam); err != nil {
		t.Fatalf("Stage: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	list, _ := repo.List(ctx)
	if len(list) != 2 || list[0].GenericName != "CLONAZEPAM" {
		t.Fatalf("List() = %+v", list)
	}
}

func TestMemoryCommitConflictIsAtomic(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMedicineRepository()

	first, _ := repo.Begin(ctx)
	second, _ := repo.Begin(ctx)
	_ = first.Stage(ctx, diazepam5)
	_ = second.Stage(ctx, diazepam10)
	_ = second.Stage(ctx, diazepam5)

	if err := first.Commit(); err != nil {
		t.Fatalf("first Commit: %v", err)
	}
	if err := second.Commit(); err == nil {
		t.Fatal("expected conflict on second commit")
	}
	if n, _ := repo.Count(ctx); n != 1 {
		t.Fatalf("Count() = %d, want 1 (second transaction must not leak)", n)
	}
	if err := second.Rollback(); !errors.Is(err, sql.ErrTxDone) {
		t.Fatalf("Rollback after finished commit = %v, want ErrTxDone", err)
	}
}

func TestMemoryRollback(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMedicineRepository()

	tx, _ := repo.Begin(ctx)
	_ = tx.Stage(ctx, diazepam5)
	if err := tx.Rollback(); err != nil {
		t.Fatalf("Rollback: %v", err)
	}
	if n, _ := repo.Count(ctx); n != 0 {
		t.Fatalf("Count() = %d, want 0", n)
	}
	if err := tx.Stage(ctx, diazepam10); !errors.Is(err, sql.ErrTxDone) {
		t.Fatalf("Stage after rollback = %v, want ErrTxDone", err)
	}
}
