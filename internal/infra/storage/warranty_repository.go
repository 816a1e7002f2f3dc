package storage

import (
	"context"
	"encoding/json"
	"log/slog"

	"warranty/internal/domain/entity"
	domainerrors "warranty/internal/domain/errors"
	"warranty/internal/domain/migration"
	"warranty/internal/domain/repository"
)

// warrantyRepository implements the repository.WarrantyRepository interface on
// top of the raw record store. Documents it cannot read are carried through
// every write untouched.
type warrantyRepository struct {
	store  repository.RecordStore
	lock   *repository.StoreLock
	logger *slog.Logger
}

// NewWarrantyRepository is the constructor for warrantyRepository.
func NewWarrantyRepository(store repository.RecordStore, lock *repository.StoreLock, logger *slog.Logger) repository.WarrantyRepository {
	return &warrantyRepository{
		store:  store,
		lock:   lock,
		logger: logger,
	}
}

// FindAll returns every readable warranty in entry order.
func (repo *warrantyRepository) FindAll(ctx context.Context) ([]*entity.Warranty, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	docs, err := repo.load(ctx)
	if err != nil {
		return nil, err
	}

	warranties := make([]*entity.Warranty, 0, len(docs))
	for i, doc := range docs {
		w, err := migration.Decode(doc)
		if err != nil {
			repo.logger.Debug("Skipping unreadable stored warranty",
				slog.Int("index", i),
				slog.Any("error", err),
			)

			continue
		}
		warranties = append(warranties, w)
	}

	return warranties, nil
}

// FindByID retrieves a warranty by its id.
func (repo *warrantyRepository) FindByID(ctx context.Context, id string) (*entity.Warranty, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	docs, err := repo.load(ctx)
	if err != nil {
		return nil, err
	}

	_, w := indexOf(docs, id)
	if w == nil {
		return nil, repository.ErrWarrantyNotFound
	}

	return w, nil
}

// Create appends a new warranty.
func (repo *warrantyRepository) Create(ctx context.Context, warranty *entity.Warranty) error {
	raw, err := migration.Encode(warranty)
	if err != nil {
		return err
	}

	repo.lock.Lock()
	defer repo.lock.Unlock()

	docs, err := repo.load(ctx)
	if err != nil {
		return err
	}

	if i, _ := indexOf(docs, warranty.ID); i >= 0 {
		return repository.ErrDuplicateWarranty
	}

	return repo.save(ctx, append(docs, raw), "failed to create warranty")
}

// Update replaces the stored warranty with the same id, keeping its position.
func (repo *warrantyRepository) Update(ctx context.Context, warranty *entity.Warranty) error {
	raw, err := migration.Encode(warranty)
	if err != nil {
		return err
	}

	repo.lock.Lock()
	defer repo.lock.Unlock()

	docs, err := repo.load(ctx)
	if err != nil {
		return err
	}

	i, _ := indexOf(docs, warranty.ID)
	if i < 0 {
		return repository.ErrWarrantyNotFound
	}
	docs[i] = raw

	return repo.save(ctx, docs, "failed to update warranty")
}

// Delete removes the warranty with the given id.
func (repo *warrantyRepository) Delete(ctx context.Context, id string) error {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	docs, err := repo.load(ctx)
	if err != nil {
		return err
	}

	i, _ := indexOf(docs, id)
	if i < 0 {
		return repository.ErrWarrantyNotFound
	}

	remaining := append(docs[:i:i], docs[i+1:]...)

	return repo.save(ctx, remaining, "failed to delete warranty")
}

func (repo *warrantyRepository) load(ctx context.Context) ([]json.RawMessage, error) {
	docs, err := repo.store.Load(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to load warranties")
	}

	return docs, nil
}

func (repo *warrantyRepository) save(ctx context.Context, docs []json.RawMessage, details string) error {
	if err := repo.store.Save(ctx, docs); err != nil {
		return domainerrors.NewStoreError(err, details)
	}

	return nil
}

// indexOf finds the stored document whose id is id. It returns -1 and nil when
// no readable document matches.
func indexOf(docs []json.RawMessage, id string) (int, *entity.Warranty) {
	if id == "" {
		return -1, nil
	}

	for i, doc := range docs {
		w, err := migration.Decode(doc)
		if err != nil {
			continue
		}
		if w.ID == id {
			return i, w
		}
	}

	return -1, nil
}
