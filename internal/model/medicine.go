package model

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/psds-microservice/medicine-catalog/internal/errors"
)

// Medicine — запись справочника лекарств
type Medicine struct {
	ID            string `yaml:"-"`
	GenericName   string `yaml:"name"`
	Concentration string `yaml:"concentration"`
	Presentation  string `yaml:"presentation"`
}

// Key — тройка (название, концентрация, форма выпуска), идентифицирующая запись
type Key struct {
	GenericName   string
	Concentration string
	Presentation  string
}

func (k Key) String() string {
	return k.GenericName + " " + k.Concentration + " " + k.Presentation
}

func (m Medicine) Key() Key {
	return Key{
		GenericName:   m.GenericName,
		Concentration: m.Concentration,
		Presentation:  m.Presentation,
	}
}

// Validate проверяет, что все три поля ключа заполнены
func (m Medicine) Validate() error {
	switch {
	case strings.TrimSpace(m.GenericName) == "":
		return fmt.Errorf("%w: generic name is empty", apperrors.ErrInvalidMedicine)
	case strings.TrimSpace(m.Concentration) == "":
		return fmt.Errorf("%w: concentration is empty (%s)", apperrors.ErrInvalidMedicine, m.GenericName)
	case strings.TrimSpace(m.Presentation) == "":
		return fmt.Errorf("%w: presentation is empty (%s)", apperrors.ErrInvalidMedicine, m.GenericName)
	}
	return nil
}

// MedicineRepository — хранилище справочника (SQL или in-memory)
type MedicineRepository interface {
	Count(ctx context.Context) (int, error)
	List(ctx context.Context) ([]Medicine, error)
	Begin(ctx context.Context) (MedicineTx, error)
}

// MedicineTx — транзакция: проверки и вставки видны только внутри неё до Commit.
type MedicineTx interface {
	// Exists ищет запись с точным совпадением всех трёх полей ключа
	Exists(ctx context.Context, m Medicine) (bool, error)
	// Stage добавляет запись в транзакцию. При ошибке транзакция остаётся пригодной.
	Stage(ctx context.Context, m Medicine) error
	Commit() error
	Rollback() error
}
