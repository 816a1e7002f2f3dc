package storage

import (
	"context"
	"encoding/json"
	"testing"

	"warranty/internal/domain/entity"
	domainerrors "warranty/internal/domain/errors"
	"warranty/internal/domain/repository"
	"warranty/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type repositoryFixtures struct {
	repo  repository.WarrantyRepository
	store repository.RecordStore
}

func createTestRepository(t *testing.T, seed ...json.RawMessage) repositoryFixtures {
	t.Helper()

	store := NewBlobStore(openTestBucket(t), testKey, discardLogger())
	if len(seed) > 0 {
		require.NoError(t, store.Save(context.Background(), seed))
	}

	return repositoryFixtures{
		repo:  NewWarrantyRepository(store, repository.NewStoreLock(), discardLogger()),
		store: store,
	}
}

func sampleWarranty(id, customer string) *entity.Warranty {
	return &entity.Warranty{
		ID:           id,
		CustomerName: customer,
		Products: []entity.Product{
			{ProductName: "Fan", PurchaseDate: "2024-01-15", ProductWarrantyPeriod: 12, ProductWarrantyUnit: entity.UnitMonths},
		},
		ServicesProvided: entity.ServicesProvided{Supply: true},
	}
}

func TestWarrantyRepository_CreateAndFind(t *testing.T) {
	fx := createTestRepository(t)
	ctx := context.Background()

	require.NoError(t, fx.repo.Create(ctx, sampleWarranty("a", "Aisyah")))
	require.NoError(t, fx.repo.Create(ctx, sampleWarranty("b", "Ben")))

	all, err := fx.repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)

	found, err := fx.repo.FindByID(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "Ben", found.CustomerName)
}

func TestWarrantyRepository_CreateDuplicate(t *testing.T) {
	fx := createTestRepository(t)
	ctx := context.Background()

	require.NoError(t, fx.repo.Create(ctx, sampleWarranty("a", "Aisyah")))

	err := fx.repo.Create(ctx, sampleWarranty("a", "Someone Else"))
	assert.Equal(t, repository.ErrDuplicateWarranty, err)
}

func TestWarrantyRepository_FindByIDNotFound(t *testing.T) {
	fx := createTestRepository(t)

	_, err := fx.repo.FindByID(context.Background(), "missing")
	assert.Equal(t, repository.ErrWarrantyNotFound, err)
}

func TestWarrantyRepository_UpdateKeepsPosition(t *testing.T) {
	fx := createTestRepository(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, fx.repo.Create(ctx, sampleWarranty(id, "Customer "+id)))
	}

	updated := sampleWarranty("b", "Renamed")
	require.NoError(t, fx.repo.Update(ctx, updated))

	all, err := fx.repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "b", all[1].ID)
	assert.Equal(t, "Renamed", all[1].CustomerName)

	err = fx.repo.Update(ctx, sampleWarranty("zzz", "Nobody"))
	assert.Equal(t, repository.ErrWarrantyNotFound, err)
}

func TestWarrantyRepository_Delete(t *testing.T) {
	fx := createTestRepository(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, fx.repo.Create(ctx, sampleWarranty(id, "Customer "+id)))
	}

	require.NoError(t, fx.repo.Delete(ctx, "b"))

	all, err := fx.repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "c", all[1].ID)

	assert.Equal(t, repository.ErrWarrantyNotFound, fx.repo.Delete(ctx, "b"))
}

func TestWarrantyRepository_UnreadableDocumentsSurviveWrites(t *testing.T) {
	ctx := context.Background()
	fx := createTestRepository(t,
		json.RawMessage(`"garbage"`),
		json.RawMessage(`{"id":"legacy","productName":"Fan","purchaseDate":"2023-06-01","productWarrantyPeriod":2,"productWarrantyUnit":"years"}`),
	)

	all, err := fx.repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "legacy", all[0].ID)
	require.Len(t, all[0].Products, 1)
	assert.Equal(t, "Fan", all[0].Products[0].ProductName)
	assert.True(t, all[0].ServicesProvided.Supply)

	require.NoError(t, fx.repo.Create(ctx, sampleWarranty("new", "Nur")))

	docs, err := fx.store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, `"garbage"`, string(docs[0]))
}

type failingStore struct{}

func (failingStore) Load(context.Context) ([]json.RawMessage, error) {
	return nil, errors.New("bucket unavailable")
}

func (failingStore) Save(context.Context, []json.RawMessage) error {
	return errors.New("bucket unavailable")
}

func TestWarrantyRepository_StoreFailureIsAppError(t *testing.T) {
	repo := NewWarrantyRepository(failingStore{}, repository.NewStoreLock(), discardLogger())

	_, err := repo.FindAll(context.Background())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrStoreFailed.ErrorCode(), appErr.ErrorCode())
}
