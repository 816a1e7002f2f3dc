package migration

import (
	"encoding/json"
	"testing"

	"warranty/internal/domain/entity"
	"warranty/internal/errors"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeAny(t *testing.T, raw json.RawMessage) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))

	return out
}

func TestMigrateRecord_FlatRecordWithoutProducts(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`{"id":"1700000000000","customerName":"Tan","productName":"Fan","purchaseDate":"2023-06-01","productWarrantyPeriod":2,"productWarrantyUnit":"years"}`)

	out, shape, err := MigrateRecord(raw)
	require.NoError(t, err)
	assert.True(t, shape.Has(ShapeLegacyFlat))
	assert.True(t, shape.Has(ShapeLegacyNoServices))

	want := map[string]any{
		"id":           "1700000000000",
		"customerName": "Tan",
		"products": []any{
			map[string]any{
				"productName":           "Fan",
				"serialNumber":          "",
				"purchaseDate":          "2023-06-01",
				"productWarrantyPeriod": float64(2),
				"productWarrantyUnit":   "years",
			},
		},
		"servicesProvided": map[string]any{"supply": true, "install": false},
	}
	if diff := cmp.Diff(want, decodeAny(t, out)); diff != "" {
		t.Fatalf("migrated record mismatch (-want +got):\n%s", diff)
	}
}

func TestMigrateRecord_FlatDefaults(t *testing.T) {
	t.Parallel()

	out, _, err := MigrateRecord(json.RawMessage(`{"id":"1","productName":null,"servicesProvided":{"supply":true,"install":false}}`))
	require.NoError(t, err)

	got := decodeAny(t, out)
	want := []any{
		map[string]any{
			"productName":           "",
			"serialNumber":          "",
			"purchaseDate":          "",
			"productWarrantyPeriod": float64(0),
			"productWarrantyUnit":   "months",
		},
	}
	if diff := cmp.Diff(want, got["products"]); diff != "" {
		t.Fatalf("products mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, map[string]any{"supply": true, "install": false}, got["servicesProvided"])
}

func TestMigrateRecord_ProductsInheritOnlyMissingFields(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`{
		"id": "2",
		"purchaseDate": "2022-02-02",
		"productWarrantyPeriod": "18",
		"productWarrantyUnit": "weeks",
		"products": [
			{"productName": "Heater", "serialNumber": "H1"},
			{"productName": "Pump", "purchaseDate": "2023-03-03", "productWarrantyPeriod": 0, "productWarrantyUnit": "days"},
			{"productName": "Valve", "purchaseDate": "", "productWarrantyPeriod": null}
		],
		"servicesProvided": {"supply": true, "install": false}
	}`)

	out, shape, err := MigrateRecord(raw)
	require.NoError(t, err)
	assert.Equal(t, ShapeLegacyFlat, shape)

	got := decodeAny(t, out)
	want := []any{
		map[string]any{
			"productName":           "Heater",
			"serialNumber":          "H1",
			"purchaseDate":          "2022-02-02",
			"productWarrantyPeriod": float64(18),
			"productWarrantyUnit":   "weeks",
		},
		map[string]any{
			"productName":           "Pump",
			"purchaseDate":          "2023-03-03",
			"productWarrantyPeriod": float64(0),
			"productWarrantyUnit":   "days",
		},
		map[string]any{
			"productName":           "Valve",
			"purchaseDate":          "2022-02-02",
			"productWarrantyPeriod": float64(18),
			"productWarrantyUnit":   "weeks",
		},
	}
	if diff := cmp.Diff(want, got["products"]); diff != "" {
		t.Fatalf("products mismatch (-want +got):\n%s", diff)
	}
	for _, key := range legacyProductKeys {
		assert.NotContains(t, got, key)
	}
}

func TestMigrateRecord_ServicesFromInstallSignal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want map[string]any
	}{
		{
			name: "install date",
			raw:  `{"id":"3","products":[],"installDate":"2024-01-01"}`,
			want: map[string]any{"supply": false, "install": true},
		},
		{
			name: "installation period",
			raw:  `{"id":"4","products":[],"installationWarrantyPeriod":"6"}`,
			want: map[string]any{"supply": false, "install": true},
		},
		{
			name: "no installation signal",
			raw:  `{"id":"5","products":[],"installDate":"","installationWarrantyPeriod":0}`,
			want: map[string]any{"supply": true, "install": false},
		},
		{
			name: "null services",
			raw:  `{"id":"6","products":[],"servicesProvided":null}`,
			want: map[string]any{"supply": true, "install": false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, shape, err := MigrateRecord(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, ShapeLegacyNoServices, shape)
			assert.Equal(t, tt.want, decodeAny(t, out)["servicesProvided"])
		})
	}
}

func TestMigrateAll_IsIdempotent(t *testing.T) {
	t.Parallel()

	raws := []json.RawMessage{
		json.RawMessage(`{"id":"1","productName":"Fan","purchaseDate":"2023-06-01","productWarrantyPeriod":2,"productWarrantyUnit":"years"}`),
		json.RawMessage(`{"id":"2","products":[{"productName":"TV"}],"installDate":"2024-01-01","installationWarrantyPeriod":1}`),
		json.RawMessage(`{"id":"3", "products": [], "servicesProvided": {"supply": true, "install": false}}`),
		json.RawMessage(`"garbage"`),
	}

	once, first := MigrateAll(raws)
	assert.Equal(t, Report{Scanned: 4, Migrated: 2, Skipped: 1}, first)
	assert.True(t, first.Changed())

	twice, second := MigrateAll(once)
	assert.Equal(t, Report{Scanned: 4, Migrated: 0, Skipped: 1}, second)
	assert.False(t, second.Changed())

	require.Len(t, twice, len(once))
	for i := range once {
		assert.Equal(t, string(once[i]), string(twice[i]), "record %d", i)
	}

	// Current-shape documents are never re-encoded.
	assert.Equal(t, string(raws[2]), string(once[2]))
	assert.Equal(t, string(raws[3]), string(once[3]))
}

func TestParse_RejectsNonObjects(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{`null`, `[]`, `42`, `"x"`, `{`} {
		_, err := Parse(json.RawMessage(raw))
		assert.True(t, errors.Is(err, ErrNotObject), raw)
	}
}

func TestDecode_LegacyRecordBecomesCurrentEntity(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`{
		"id": 1700000000000,
		"customerName": "Lim",
		"phoneNumber": 123456789,
		"productName": "Fan",
		"serialNumber": "F-9",
		"purchaseDate": "2023-06-01",
		"productWarrantyPeriod": 2,
		"productWarrantyUnit": "years",
		"installationWarrantyPeriod": "",
		"postcode": 47301,
		"buildingType": "residential"
	}`)

	got, err := Decode(raw)
	require.NoError(t, err)

	want := &entity.Warranty{
		ID:           "1700000000000",
		CustomerName: "Lim",
		PhoneNumber:  "123456789",
		Products: []entity.Product{
			{ProductName: "Fan", SerialNumber: "F-9", PurchaseDate: "2023-06-01", ProductWarrantyPeriod: 2, ProductWarrantyUnit: entity.UnitYears},
		},
		ServicesProvided: entity.ServicesProvided{Supply: true},
		Postcode:         "47301",
		BuildingType:     entity.BuildingHome,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("decoded warranty mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_CurrentRecordKeepsValues(t *testing.T) {
	t.Parallel()

	in := &entity.Warranty{
		ID:           "0190a6e0-0000-7000-8000-000000000001",
		CustomerName: "Nur",
		Email:        "nur@example.com",
		Products: []entity.Product{
			{ProductName: "Water Heater", PurchaseDate: "2024-01-15", ProductWarrantyPeriod: 12, ProductWarrantyUnit: entity.UnitMonths},
		},
		ServicesProvided:           entity.ServicesProvided{Supply: true, Install: true},
		InstallDate:                "2024-01-16",
		InstallationWarrantyPeriod: 6,
		InstallationWarrantyUnit:   entity.UnitMonths,
		BuildingType:               entity.BuildingOthers,
		OtherBuildingType:          "Warehouse",
	}

	raw, err := Encode(in)
	require.NoError(t, err)

	record, err := Parse(raw)
	require.NoError(t, err)
	assert.False(t, record.NeedsMigration())

	got, err := record.Warranty()
	require.NoError(t, err)
	if diff := cmp.Diff(in, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode_NilProductsBecomeEmptyArray(t *testing.T) {
	t.Parallel()

	in := &entity.Warranty{ID: "x"}
	raw, err := Encode(in)
	require.NoError(t, err)

	assert.Equal(t, []any{}, decodeAny(t, raw)["products"])
	assert.Nil(t, in.Products)
}
