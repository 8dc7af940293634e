package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/psds-microservice/medicine-catalog/internal/model"
)

// MemoryMedicineRepository — in-memory репозиторий справочника
type MemoryMedicineRepository struct {
	medicines map[model.Key]model.Medicine
	mu        sync.RWMutex
}

var _ model.MedicineRepository = (*MemoryMedicineRepository)(nil)

// NewMemoryMedicineRepository создает репозиторий с начальными записями (может быть пустым)
func NewMemoryMedicineRepository(initial ...model.Medicine) *MemoryMedicineRepository {
	r := &MemoryMedicineRepository{
		medicines: make(map[model.Key]model.Medicine),
	}
	for _, m := range initial {
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		r.medicines[m.Key()] = m
	}
	return r
}

func (r *MemoryMedicineRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.medicines), nil
}

func (r *MemoryMedicineRepository) List(ctx context.Context) ([]model.Medicine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Medicine, 0, len(r.medicines))
	for _, m := range r.medicines {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key().String() < out[j].Key().String()
	})
	return out, nil
}

func (r *MemoryMedicineRepository) Begin(ctx context.Context) (model.MedicineTx, error) {
	return &memoryTx{repo: r, staged: make(map[model.Key]model.Medicine)}, nil
}

type memoryTx struct {
	repo   *MemoryMedicineRepository
	staged map[model.Key]model.Medicine
	done   bool
}

func (t *memoryTx) Exists(ctx context.Context, m model.Medicine) (bool, error) {
	if t.done {
		return false, sql.ErrTxDone
	}
	if _, ok := t.staged[m.Key()]; ok {
		return true, nil
	}
	t.repo.mu.RLock()
	defer t.repo.mu.RUnlock()
	_, ok := t.repo.medicines[m.Key()]
	return ok, nil
}

func (t *memoryTx) Stage(ctx context.Context, m model.Medicine) error {
	if t.done {
		return sql.ErrTxDone
	}
	if err := m.Validate(); err != nil {
		return err
	}
	if exists, _ := t.Exists(ctx, m); exists {
		return fmt.Errorf("insert %s: unique constraint violated", m.Key())
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	t.staged[m.Key()] = m
	return nil
}

func (t *memoryTx) Commit() error {
	if t.done {
		return sql.ErrTxDone
	}
	t.done = true
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	for k := range t.staged {
		if _, ok := t.repo.medicines[k]; ok {
			return fmt.Errorf("commit %s: unique constraint violated", k)
		}
	}
	for k, m := range t.staged {
		t.repo.medicines[k] = m
	}
	return nil
}

func (t *memoryTx) Rollback() error {
	if t.done {
		return sql.ErrTxDone
	}
	t.done = true
	t.staged = nil
	return nil
}
