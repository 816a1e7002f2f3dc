package migration

import (
	"encoding/json"
	"maps"
	"strings"

	"warranty/internal/domain/entity"
	"warranty/internal/errors"
)

// Report summarizes one migration pass.
type Report struct {
	Scanned  int `json:"scanned"`  // Documents read from the store.
	Migrated int `json:"migrated"` // Documents rewritten into the current shape.
	Skipped  int `json:"skipped"`  // Documents kept verbatim because they could not be parsed.
}

// Changed reports whether the pass rewrote anything.
func (r Report) Changed() bool {
	return r.Migrated > 0
}

// MigrateRecord rewrites one stored document into the current shape. Documents
// already in the current shape are returned unchanged, byte for byte, which
// makes the migration idempotent.
func MigrateRecord(raw json.RawMessage) (json.RawMessage, Shape, error) {
	record, err := Parse(raw)
	if err != nil {
		return raw, ShapeCurrent, err
	}
	if !record.NeedsMigration() {
		return raw, ShapeCurrent, nil
	}

	out, err := json.Marshal(record.upgrade())
	if err != nil {
		return raw, record.Shape, errors.Wrap(err, "failed to encode migrated warranty")
	}

	return out, record.Shape, nil
}

// MigrateAll runs MigrateRecord over the full stored set, keeping order.
// Documents that cannot be parsed are kept verbatim and counted as skipped.
func MigrateAll(raws []json.RawMessage) ([]json.RawMessage, Report) {
	out := make([]json.RawMessage, 0, len(raws))
	report := Report{Scanned: len(raws)}

	for _, raw := range raws {
		migrated, shape, err := MigrateRecord(raw)
		switch {
		case err != nil:
			report.Skipped++
		case shape != ShapeCurrent:
			report.Migrated++
		}
		out = append(out, migrated)
	}

	return out, report
}

// upgrade returns the document fields rewritten into the current shape.
func (r *Record) upgrade() map[string]json.RawMessage {
	fields := maps.Clone(r.fields)

	if r.Shape.Has(ShapeLegacyFlat) {
		products, _ := r.products()
		if len(products) > 0 {
			for _, product := range products {
				r.inheritInto(product)
			}
		} else {
			products = []map[string]json.RawMessage{r.flatProduct()}
		}

		fields[keyProducts] = encodeValue(products)
		for _, key := range legacyProductKeys {
			delete(fields, key)
		}
	}

	if r.Shape.Has(ShapeLegacyNoServices) {
		install := r.hasInstallSignal()
		fields[keyServicesProvided] = encodeValue(entity.ServicesProvided{
			Supply:  !install,
			Install: install,
		})
	}

	return fields
}

// inheritInto fills the product fields the product does not define itself from
// the legacy fields on the warranty.
func (r *Record) inheritInto(product map[string]json.RawMessage) {
	if !definesText(product, keyPurchaseDate) {
		if raw, ok := r.fields[keyPurchaseDate]; ok && !isNull(raw) {
			product[keyPurchaseDate] = raw
		}
	}

	if raw, ok := product[keyProductPeriod]; !ok || isNull(raw) {
		product[keyProductPeriod] = encodeValue(r.flatPeriod())
	}

	if !definesText(product, keyProductUnit) {
		product[keyProductUnit] = encodeValue(r.flatUnit())
	}
}

// flatProduct synthesizes a product from the legacy fields on the warranty.
func (r *Record) flatProduct() map[string]json.RawMessage {
	purchaseDate, ok := r.fields[keyPurchaseDate]
	if !ok || isNull(purchaseDate) {
		purchaseDate = encodeValue("")
	}

	return map[string]json.RawMessage{
		keyProductName:   encodeValue(r.flatText(keyProductName)),
		keySerialNumber:  encodeValue(r.flatText(keySerialNumber)),
		keyPurchaseDate:  purchaseDate,
		keyProductPeriod: encodeValue(r.flatPeriod()),
		keyProductUnit:   encodeValue(r.flatUnit()),
	}
}

func (r *Record) flatText(key string) string {
	raw, ok := r.fields[key]
	if !ok {
		return ""
	}

	var s looseString
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}

	return s.String()
}

func (r *Record) flatPeriod() entity.Period {
	raw, ok := r.fields[keyProductPeriod]
	if !ok {
		return 0
	}

	var period entity.Period
	if err := json.Unmarshal(raw, &period); err != nil {
		return 0
	}

	return period
}

func (r *Record) flatUnit() entity.PeriodUnit {
	return entity.PeriodUnit(strings.TrimSpace(r.flatText(keyProductUnit))).OrDefault()
}

// definesText reports whether fields holds a non-blank value for key.
func definesText(fields map[string]json.RawMessage, key string) bool {
	raw, ok := fields[key]

	return ok && truthyString(raw)
}

// encodeValue marshals values that cannot fail to encode: strings, numbers,
// flat structs and maps of raw JSON.
func encodeValue(v any) json.RawMessage {
	raw, _ := json.Marshal(v)

	return raw
}
