// Package migration resolves stored warranty documents of any historical
// shape into the current entity.Warranty, and rewrites legacy documents so
// the store only holds the current shape.
//
// Two legacy shapes exist and may be combined in one document:
//   - flat: a single product's fields (productName, purchaseDate, ...) sit on
//     the warranty itself, with or without a products array next to them;
//   - no services: the servicesProvided object is missing.
package migration

import (
	"encoding/json"

	"warranty/internal/domain/entity"
	"warranty/internal/errors"
)

// Shape flags which legacy layouts a stored document uses.
type Shape uint8

const (
	// ShapeCurrent is a document in the current layout.
	ShapeCurrent Shape = 0
	// ShapeLegacyFlat carries product fields on the warranty itself.
	ShapeLegacyFlat Shape = 1 << 0
	// ShapeLegacyNoServices lacks a servicesProvided object.
	ShapeLegacyNoServices Shape = 1 << 1
)

// Has reports whether s includes flag.
func (s Shape) Has(flag Shape) bool {
	return s&flag != 0
}

// String names the shape for logs.
func (s Shape) String() string {
	switch {
	case s == ShapeCurrent:
		return "current"
	case s.Has(ShapeLegacyFlat) && s.Has(ShapeLegacyNoServices):
		return "legacy-flat+no-services"
	case s.Has(ShapeLegacyFlat):
		return "legacy-flat"
	default:
		return "legacy-no-services"
	}
}

const (
	keyProducts         = "products"
	keyServicesProvided = "servicesProvided"
	keyInstallDate      = "installDate"
	keyInstallPeriod    = "installationWarrantyPeriod"

	keyProductName   = "productName"
	keySerialNumber  = "serialNumber"
	keyPurchaseDate  = "purchaseDate"
	keyProductPeriod = "productWarrantyPeriod"
	keyProductUnit   = "productWarrantyUnit"
)

// legacyProductKeys are the product fields older versions stored on the warranty.
var legacyProductKeys = []string{keyProductName, keySerialNumber, keyPurchaseDate, keyProductPeriod, keyProductUnit}

// ErrNotObject is returned for stored documents that are not JSON objects.
var ErrNotObject = errors.New("stored warranty is not a JSON object")

// Record is a stored document together with its detected shape.
type Record struct {
	Shape  Shape
	fields map[string]json.RawMessage
}

// Parse decodes a stored document and detects its shape.
func Parse(raw json.RawMessage) (*Record, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, errors.WithStack(ErrNotObject)
	}

	record := &Record{fields: fields}
	if record.has(keyProductName) || record.has(keyPurchaseDate) {
		record.Shape |= ShapeLegacyFlat
	}
	if _, ok := record.services(); !ok {
		record.Shape |= ShapeLegacyNoServices
	}

	return record, nil
}

// NeedsMigration reports whether the document is in a legacy shape.
func (r *Record) NeedsMigration() bool {
	return r.Shape != ShapeCurrent
}

func (r *Record) has(key string) bool {
	_, ok := r.fields[key]

	return ok
}

func (r *Record) services() (entity.ServicesProvided, bool) {
	raw, ok := r.fields[keyServicesProvided]
	if !ok || isNull(raw) {
		return entity.ServicesProvided{}, false
	}

	var stored struct {
		Supply  looseBool `json:"supply"`
		Install looseBool `json:"install"`
	}
	if err := json.Unmarshal(raw, &stored); err != nil {
		return entity.ServicesProvided{}, false
	}

	return entity.ServicesProvided{Supply: bool(stored.Supply), Install: bool(stored.Install)}, true
}

// products returns the stored product objects and whether a products array exists.
// Array elements that are not objects are dropped.
func (r *Record) products() ([]map[string]json.RawMessage, bool) {
	raw, ok := r.fields[keyProducts]
	if !ok || isNull(raw) {
		return nil, false
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, false
	}

	products := make([]map[string]json.RawMessage, 0, len(elems))
	for _, elem := range elems {
		var product map[string]json.RawMessage
		if err := json.Unmarshal(elem, &product); err != nil || product == nil {
			continue
		}
		products = append(products, product)
	}

	return products, true
}

// hasInstallSignal reports an install date or a positive installation period.
func (r *Record) hasInstallSignal() bool {
	if raw, ok := r.fields[keyInstallDate]; ok && truthyString(raw) {
		return true
	}

	if raw, ok := r.fields[keyInstallPeriod]; ok {
		var period entity.Period
		if err := json.Unmarshal(raw, &period); err == nil && period > 0 {
			return true
		}
	}

	return false
}

// storedWarranty is the lenient decoding of a current-shape document.
type storedWarranty struct {
	ID                         looseString   `json:"id"`
	CustomerName               looseString   `json:"customerName"`
	PhoneNumber                looseString   `json:"phoneNumber"`
	Email                      looseString   `json:"email"`
	InstallDate                looseString   `json:"installDate"`
	InstallationWarrantyPeriod entity.Period `json:"installationWarrantyPeriod"`
	InstallationWarrantyUnit   looseString   `json:"installationWarrantyUnit"`
	Postcode                   looseString   `json:"postcode"`
	District                   looseString   `json:"district"`
	State                      looseString   `json:"state"`
	BuildingType               looseString   `json:"buildingType"`
	OtherBuildingType          looseString   `json:"otherBuildingType"`
}

type storedProduct struct {
	ProductName           looseString   `json:"productName"`
	SerialNumber          looseString   `json:"serialNumber"`
	PurchaseDate          looseString   `json:"purchaseDate"`
	ProductWarrantyPeriod entity.Period `json:"productWarrantyPeriod"`
	ProductWarrantyUnit   looseString   `json:"productWarrantyUnit"`
}

// Warranty returns the current-shape entity for the document. Legacy
// documents are upgraded in memory first, so callers only ever see the
// current shape.
func (r *Record) Warranty() (*entity.Warranty, error) {
	fields := r.fields
	if r.NeedsMigration() {
		fields = r.upgrade()
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-encode stored warranty")
	}

	var stored storedWarranty
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, errors.Wrap(err, "failed to decode stored warranty")
	}

	upgraded := &Record{fields: fields}
	services, _ := upgraded.services()
	productMaps, _ := upgraded.products()

	products := make([]entity.Product, 0, len(productMaps))
	for _, pm := range productMaps {
		product, err := decodeProduct(pm)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return &entity.Warranty{
		ID:                         stored.ID.String(),
		CustomerName:               stored.CustomerName.String(),
		PhoneNumber:                stored.PhoneNumber.String(),
		Email:                      stored.Email.String(),
		Products:                   products,
		ServicesProvided:           services,
		InstallDate:                stored.InstallDate.String(),
		InstallationWarrantyPeriod: stored.InstallationWarrantyPeriod,
		InstallationWarrantyUnit:   entity.PeriodUnit(stored.InstallationWarrantyUnit),
		Postcode:                   stored.Postcode.String(),
		District:                   stored.District.String(),
		State:                      stored.State.String(),
		BuildingType:               entity.BuildingType(stored.BuildingType).Normalize(),
		OtherBuildingType:          stored.OtherBuildingType.String(),
	}, nil
}

func decodeProduct(fields map[string]json.RawMessage) (entity.Product, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return entity.Product{}, errors.Wrap(err, "failed to re-encode stored product")
	}

	var stored storedProduct
	if err := json.Unmarshal(raw, &stored); err != nil {
		return entity.Product{}, errors.Wrap(err, "failed to decode stored product")
	}

	return entity.Product{
		ProductName:           stored.ProductName.String(),
		SerialNumber:          stored.SerialNumber.String(),
		PurchaseDate:          stored.PurchaseDate.String(),
		ProductWarrantyPeriod: stored.ProductWarrantyPeriod,
		ProductWarrantyUnit:   entity.PeriodUnit(stored.ProductWarrantyUnit),
	}, nil
}

// Decode parses a stored document and returns it as a current-shape entity.
func Decode(raw json.RawMessage) (*entity.Warranty, error) {
	record, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	return record.Warranty()
}

// Encode serializes a warranty in the current shape.
func Encode(w *entity.Warranty) (json.RawMessage, error) {
	if w.Products == nil {
		clone := *w
		clone.Products = []entity.Product{}
		w = &clone
	}

	raw, err := json.Marshal(w)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode warranty")
	}

	return raw, nil
}
