package repository

import (
	"context"

	"warranty/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for warranty persistence.
var (
	// ErrWarrantyNotFound is returned when no stored warranty has the requested id.
	ErrWarrantyNotFound = errors.New("warranty not found")
	// ErrDuplicateWarranty is returned when creating a warranty whose id is already stored.
	ErrDuplicateWarranty = errors.New("warranty already exists")
)

// WarrantyRepository defines the interface for warranty record operations.
type WarrantyRepository interface {
	// FindAll returns every readable warranty in entry order, upgraded to the current shape.
	FindAll(ctx context.Context) ([]*entity.Warranty, error)

	// FindByID retrieves a warranty by its id.
	FindByID(ctx context.Context, id string) (*entity.Warranty, error)

	// Create appends a new warranty.
	Create(ctx context.Context, warranty *entity.Warranty) error

	// Update replaces the stored warranty with the same id, keeping its position.
	Update(ctx context.Context, warranty *entity.Warranty) error

	// Delete removes the warranty with the given id.
	Delete(ctx context.Context, id string) error
}
