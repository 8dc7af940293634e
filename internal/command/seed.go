package command

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	apperrors "github.com/psds-microservice/medicine-catalog/internal/errors"
	"github.com/psds-microservice/medicine-catalog/internal/model"
)

// Report — итог запуска сида
type Report struct {
	Existing   int   // записей в таблице до запуска
	Skipped    bool  // таблица была не пуста, запись не выполнялась
	Inserted   int   // сохранено после commit
	Duplicates int   // пропущено как уже существующие
	Failed     int   // записи с ошибкой при проверке или вставке
	Err        error // ошибка до начала вставки (count, begin)
	CommitErr  error
}

// Seed заполняет пустую таблицу эталонным списком в одной транзакции.
// Ошибки не возвращаются: они логируются и попадают в Report.
func Seed(ctx context.Context, repo model.MedicineRepository, entries []model.Medicine, logger *zap.Logger) Report {
	var rep Report
	logger.Info("Seeding medicines", zap.Int("reference_size", len(entries)))

	existing, err := repo.Count(ctx)
	if err != nil {
		rep.Err = err
		logger.Error("Failed to count medicines", zap.Error(err))
		return rep
	}
	rep.Existing = existing
	if existing > 0 {
		rep.Skipped = true
		logger.Info("Medicines already present, nothing to seed", zap.Int("count", existing))
		return rep
	}

	tx, err := repo.Begin(ctx)
	if err != nil {
		rep.Err = err
		logger.Error("Failed to begin transaction", zap.Error(err))
		return rep
	}

	staged := 0
	for _, m := range entries {
		log := logger.With(
			zap.String("name", m.GenericName),
			zap.String("concentration", m.Concentration),
			zap.String("presentation", m.Presentation),
		)
		exists, err := tx.Exists(ctx, m)
		if err != nil {
			rep.Failed++
			log.Error("Failed to check medicine", zap.Error(err))
			continue
		}
		if exists {
			rep.Duplicates++
			log.Debug("Medicine already exists, skipping")
			continue
		}
		if err := tx.Stage(ctx, m); err != nil {
			rep.Failed++
			log.Error("Failed to insert medicine", zap.Error(err))
			continue
		}
		staged++
	}

	if err := tx.Commit(); err != nil {
		rep.CommitErr = fmt.Errorf("%w: %w", apperrors.ErrCommitFailed, err)
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logger.Warn("Rollback after failed commit", zap.Error(rbErr))
		}
		logger.Error("Failed to save medicines, rolled back",
			zap.Int("staged", staged), zap.Error(err))
		return rep
	}

	rep.Inserted = staged
	logger.Info("Medicines seeded",
		zap.Int("inserted", rep.Inserted),
		zap.Int("duplicates", rep.Duplicates),
		zap.Int("failed", rep.Failed))
	return rep
}
