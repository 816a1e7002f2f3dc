package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "warranty/internal/delivery/context"
	domainerrors "warranty/internal/domain/errors"
	"warranty/internal/domain/migration"
	"warranty/internal/domain/repository"
	"warranty/internal/usecase"
)

type migrationService struct {
	store  repository.RecordStore
	lock   *repository.StoreLock
	logger *slog.Logger

	once   sync.Once
	report migration.Report
	err    error
}

// NewMigrationService creates a new migration service instance
func NewMigrationService(store repository.RecordStore, lock *repository.StoreLock, logger *slog.Logger) usecase.MigrationUsecase {
	return &migrationService{
		store:  store,
		lock:   lock,
		logger: logger,
	}
}

// RunOnce migrates the store the first time it is called
func (s *migrationService) RunOnce(ctx context.Context) (migration.Report, error) {
	s.once.Do(func() {
		s.report, s.err = s.Run(ctx)
	})

	return s.report, s.err
}

// Run reads every stored document, upgrades the legacy ones and writes the
// full set back in one save. Nothing is written when every document is current.
func (s *migrationService) Run(ctx context.Context) (migration.Report, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	s.lock.Lock()
	defer s.lock.Unlock()

	docs, err := s.store.Load(ctx)
	if err != nil {
		return migration.Report{}, domainerrors.ErrMigrationFailed.WithDetails(err.Error())
	}

	migrated, report := migration.MigrateAll(docs)
	if report.Skipped > 0 {
		logger.Warn("Stored warranties kept verbatim because they are not JSON objects",
			slog.Int("skipped", report.Skipped),
		)
	}

	if !report.Changed() {
		logger.Debug("Stored warranties already current", slog.Int("scanned", report.Scanned))

		return report, nil
	}

	if err := s.store.Save(ctx, migrated); err != nil {
		return migration.Report{}, domainerrors.ErrMigrationFailed.WithDetails(err.Error())
	}

	logger.Info("Migrated stored warranties",
		slog.Int("scanned", report.Scanned),
		slog.Int("migrated", report.Migrated),
		slog.Int("skipped", report.Skipped),
	)

	return report, nil
}
