// Package usecase defines the application operations offered to the delivery layer.
package usecase

import (
	"context"

	"warranty/internal/domain/entity"
)

// ProductInput is one product line of a warranty form.
type ProductInput struct {
	ProductName           string        `json:"productName" validate:"max=200"`
	SerialNumber          string        `json:"serialNumber" validate:"max=100"`
	PurchaseDate          string        `json:"purchaseDate" validate:"omitempty,datetime=2006-01-02"`
	ProductWarrantyPeriod entity.Period `json:"productWarrantyPeriod" validate:"gte=0"`
	ProductWarrantyUnit   string        `json:"productWarrantyUnit" validate:"omitempty,oneof=days weeks months years"`
}

// WarrantyInput is the editable content of a warranty record. The id is never
// taken from input.
type WarrantyInput struct {
	CustomerName               string                  `json:"customerName" validate:"max=200"`
	PhoneNumber                string                  `json:"phoneNumber" validate:"max=40"`
	Email                      string                  `json:"email" validate:"omitempty,email"`
	Products                   []ProductInput          `json:"products" validate:"dive"`
	ServicesProvided           entity.ServicesProvided `json:"servicesProvided"`
	InstallDate                string                  `json:"installDate" validate:"omitempty,datetime=2006-01-02"`
	InstallationWarrantyPeriod entity.Period           `json:"installationWarrantyPeriod" validate:"gte=0"`
	InstallationWarrantyUnit   string                  `json:"installationWarrantyUnit" validate:"omitempty,oneof=days weeks months years"`
	Postcode                   string                  `json:"postcode" validate:"omitempty,numeric,max=10"`
	District                   string                  `json:"district" validate:"max=100"`
	State                      string                  `json:"state" validate:"max=100"`
	BuildingType               string                  `json:"buildingType" validate:"omitempty,oneof=home office others residential"`
	OtherBuildingType          string                  `json:"otherBuildingType" validate:"max=100"`
}

// WarrantyQuery filters the warranty list.
type WarrantyQuery struct {
	// Search matches, case-insensitively, customer name, phone, email, product
	// names, serial numbers and the installation location.
	Search string
	// Status keeps only warranties with this status when set.
	Status entity.WarrantyStatus
}

// StatusView is the display form of a classifier result.
type StatusView struct {
	Code             entity.WarrantyStatus `json:"code"`
	Label            string                `json:"label"`
	Color            string                `json:"color"`
	ExpiresOn        string                `json:"expiresOn"`        // ISO date, empty when nothing expires
	ExpiresOnDisplay string                `json:"expiresOnDisplay"` // DD/MM/YYYY or "Does not expire"
	DaysRemaining    int                   `json:"daysRemaining"`
}

// WarrantyView is a stored warranty with everything the list and detail
// screens compute from it.
type WarrantyView struct {
	*entity.Warranty

	Status             StatusView `json:"status"`
	ServicesLabel      string     `json:"servicesLabel"`
	ProductExpiries    []string   `json:"productExpiries"`              // DD/MM/YYYY per product, "N/A" when unknown
	InstallationExpiry string     `json:"installationExpiry,omitempty"` // DD/MM/YYYY when an installation is covered
	BuildingLabel      string     `json:"buildingLabel,omitempty"`
	Location           string     `json:"location,omitempty"`
}

// WarrantyUsecase defines the record editing and browsing use cases
type WarrantyUsecase interface {
	// Create stores a new warranty under a fresh id
	Create(ctx context.Context, input *WarrantyInput) (*WarrantyView, error)

	// Update replaces the content of an existing warranty, keeping its id
	Update(ctx context.Context, id string, input *WarrantyInput) (*WarrantyView, error)

	// Delete removes a warranty. It refuses unless confirmed is true.
	Delete(ctx context.Context, id string, confirmed bool) error

	// Get retrieves one warranty with its computed status
	Get(ctx context.Context, id string) (*WarrantyView, error)

	// List returns the warranties matching query in entry order
	List(ctx context.Context, query WarrantyQuery) ([]*WarrantyView, error)
}
