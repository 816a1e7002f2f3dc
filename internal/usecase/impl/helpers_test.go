package impl

import (
	"io"
	"log/slog"
	"time"

	"warranty/internal/domain/entity"
)

// fixedCalendar is a service.Calendar pinned to one date.
type fixedCalendar time.Time

func (c fixedCalendar) Today() time.Time {
	return time.Time(c)
}

var testToday = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// sampleWarranty has one product expiring 2025-01-15 and an installation
// covered until 2025-01-20.
func sampleWarranty() *entity.Warranty {
	return &entity.Warranty{
		ID:           "0190a6e0-0000-7000-8000-000000000001",
		CustomerName: "Aisyah",
		PhoneNumber:  "012-3456789",
		Email:        "aisyah@example.com",
		Products: []entity.Product{
			{ProductName: "Ceiling Fan", SerialNumber: "CF-1", PurchaseDate: "2024-01-15", ProductWarrantyPeriod: 12, ProductWarrantyUnit: entity.UnitMonths},
		},
		ServicesProvided:           entity.ServicesProvided{Supply: true, Install: true},
		InstallDate:                "2024-01-20",
		InstallationWarrantyPeriod: 1,
		InstallationWarrantyUnit:   entity.UnitYears,
		Postcode:                   "47301",
		District:                   "Petaling",
		State:                      "Selangor",
		BuildingType:               entity.BuildingHome,
	}
}
