package usecase

import (
	"context"

	"warranty/internal/domain/migration"
)

// MigrationUsecase upgrades stored warranty documents to the current shape
type MigrationUsecase interface {
	// RunOnce migrates the store the first time it is called and returns the
	// first run's report on every later call
	RunOnce(ctx context.Context) (migration.Report, error)

	// Run migrates the store now. Already-current documents are left untouched,
	// so repeated runs are harmless.
	Run(ctx context.Context) (migration.Report, error)
}
