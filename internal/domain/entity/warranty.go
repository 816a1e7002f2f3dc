// Package entity contains the core business objects of the project.
package entity

import "strings"

// Product is a physical item covered by a warranty. It has no identity
// outside its parent Warranty.
type Product struct {
	ProductName           string     `json:"productName"`           // Display name of the product.
	SerialNumber          string     `json:"serialNumber"`          // Manufacturer serial number, may be empty.
	PurchaseDate          string     `json:"purchaseDate"`          // ISO YYYY-MM-DD, empty when unknown.
	ProductWarrantyPeriod Period     `json:"productWarrantyPeriod"` // Warranty length, zero means no product warranty.
	ProductWarrantyUnit   PeriodUnit `json:"productWarrantyUnit"`   // Unit of ProductWarrantyPeriod.
}

// ServicesProvided describes what was sold: goods (Supply) and/or an installation (Install).
type ServicesProvided struct {
	Supply  bool `json:"supply"`
	Install bool `json:"install"`
}

// Label returns a short human readable summary of the services.
func (s ServicesProvided) Label() string {
	switch {
	case s.Supply && s.Install:
		return "Supply & Installation"
	case s.Supply:
		return "Supply"
	case s.Install:
		return "Installation"
	default:
		return "None"
	}
}

// Warranty is one customer transaction covering zero or more products and/or an installation.
type Warranty struct {
	ID                         string           `json:"id"`                         // Time-derived identifier, immutable once assigned.
	CustomerName               string           `json:"customerName"`               // Name of the customer.
	PhoneNumber                string           `json:"phoneNumber"`                // Free-form phone number as entered.
	Email                      string           `json:"email"`                      // Customer email address.
	Products                   []Product        `json:"products"`                   // Products in entry order, never nil.
	ServicesProvided           ServicesProvided `json:"servicesProvided"`           // What was sold.
	InstallDate                string           `json:"installDate"`                // ISO date, meaningful only when Install is set.
	InstallationWarrantyPeriod Period           `json:"installationWarrantyPeriod"` // Installation warranty length.
	InstallationWarrantyUnit   PeriodUnit       `json:"installationWarrantyUnit"`   // Unit of InstallationWarrantyPeriod.
	Postcode                   string           `json:"postcode"`                   // Installation postcode.
	District                   string           `json:"district"`                   // Installation district.
	State                      string           `json:"state"`                      // Installation state.
	BuildingType               BuildingType     `json:"buildingType"`               // home, office or others.
	OtherBuildingType          string           `json:"otherBuildingType"`          // Display fallback when BuildingType is others.
}

// HasInstallation reports whether the installation coverage is meaningful for this record.
func (w *Warranty) HasInstallation() bool {
	return w.ServicesProvided.Install && strings.TrimSpace(w.InstallDate) != ""
}

// BuildingLabel returns the display name of the installation building.
func (w *Warranty) BuildingLabel() string {
	return w.BuildingType.Label(w.OtherBuildingType)
}

// Location joins the non-empty location parts for display.
func (w *Warranty) Location() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{w.Postcode, w.District, w.State} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, ", ")
}

// FirstProductName returns the name of the first product with a non-blank name.
func (w *Warranty) FirstProductName() (string, bool) {
	for _, p := range w.Products {
		if name := strings.TrimSpace(p.ProductName); name != "" {
			return name, true
		}
	}

	return "", false
}
