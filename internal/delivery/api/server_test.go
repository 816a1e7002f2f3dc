package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"warranty/config"
	"warranty/internal/delivery/api/response"
	"warranty/internal/delivery/api/router"
	"warranty/internal/delivery/api/router/handler"
	"warranty/internal/domain/repository"
	"warranty/internal/domain/share"
	"warranty/internal/infra/clock"
	"warranty/internal/infra/qrcode"
	"warranty/internal/infra/storage"
	"warranty/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

// recordingOpener remembers every opened link.
type recordingOpener struct {
	mu     sync.Mutex
	opened []string
}

func (o *recordingOpener) Open(_ context.Context, channel share.Channel, uri string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.opened = append(o.opened, channel.String()+" "+uri)

	return nil
}

func (o *recordingOpener) links() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]string(nil), o.opened...)
}

type testAPI struct {
	echo   *echo.Echo
	store  repository.RecordStore
	opener *recordingOpener
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Share: &config.ShareConfig{DispatchDelay: time.Millisecond}}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := storage.NewBlobStore(bucket, "warranties.json", logger)
	lock := repository.NewStoreLock()
	repo := storage.NewWarrantyRepository(store, lock, logger)
	calendar := clock.NewFixedZoneCalendar(time.UTC, func() time.Time {
		return time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	})
	opener := &recordingOpener{}

	warrantyUC := impl.NewWarrantyService(repo, calendar)
	shareUC := impl.NewShareService(impl.ShareServiceParams{
		WarrantyRepo: repo,
		Opener:       opener,
		QRCode:       qrcode.NewQRCodeService(128, "L"),
		Calendar:     calendar,
		Config:       cfg,
		Logger:       logger,
	})
	migrationUC := impl.NewMigrationService(store, lock, logger)

	e := newEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		WarrantyHandler: handler.NewWarrantyHandler(handler.WarrantyHandlerParams{
			WarrantyUC: warrantyUC,
			ShareUC:    shareUC,
			Logger:     logger,
		}),
		ShareHandler:     handler.NewShareHandler(handler.ShareHandlerParams{ShareUC: shareUC}),
		MigrationHandler: handler.NewMigrationHandler(migrationUC),
	}).RegisterRoutes(e)

	return &testAPI{echo: e, store: store, opener: opener}
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  response.MetaInfo   `json:"meta"`
}

func (a *testAPI) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

type warrantyData struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	Products     []struct {
		ProductName string `json:"productName"`
	} `json:"products"`
	Status struct {
		Code      string `json:"code"`
		ExpiresOn string `json:"expiresOn"`
	} `json:"status"`
}

const createBody = `{
	"customerName": "Aisyah",
	"phoneNumber": "012-3456789",
	"email": "aisyah@example.com",
	"products": [{"productName": "Ceiling Fan", "serialNumber": "CF-1", "purchaseDate": "2024-01-15", "productWarrantyPeriod": "12", "productWarrantyUnit": "months"}],
	"servicesProvided": {"supply": true, "install": false},
	"postcode": "47301",
	"buildingType": "home",
	"share": {"email": true}
}`

func (a *testAPI) create(t *testing.T) warrantyData {
	t.Helper()

	rec, env := a.do(t, http.MethodPost, "/api/v1/warranties", createBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Warranty warrantyData `json:"warranty"`
		Share    struct {
			Mode string `json:"mode"`
		} `json:"share"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "initial", created.Share.Mode)

	return created.Warranty
}

func TestAPI_Health(t *testing.T) {
	api := newTestAPI(t)

	rec, env := api.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get("X-Request-Id"))
}

func TestAPI_WarrantyLifecycle(t *testing.T) {
	api := newTestAPI(t)

	created := api.create(t)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "active", created.Status.Code)
	assert.Equal(t, "2025-01-15", created.Status.ExpiresOn)

	opened := api.opener.links()
	require.Len(t, opened, 1)
	assert.True(t, strings.HasPrefix(opened[0], "email mailto:aisyah@example.com?subject=Warranty%20Details%20for%20Ceiling%20Fan"))

	t.Run("get", func(t *testing.T) {
		rec, env := api.do(t, http.MethodGet, "/api/v1/warranties/"+created.ID, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var got warrantyData
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "Aisyah", got.CustomerName)
	})

	t.Run("list", func(t *testing.T) {
		for target, want := range map[string]int{
			"/api/v1/warranties":                 1,
			"/api/v1/warranties?q=ceiling":       1,
			"/api/v1/warranties?q=dryer":         0,
			"/api/v1/warranties?status=active":   1,
			"/api/v1/warranties?status=expired":  0,
			"/api/v1/warranties?q=0123456789":    1,
			"/api/v1/warranties?q=47301&status=": 1,
		} {
			rec, env := api.do(t, http.MethodGet, target, "")
			require.Equal(t, http.StatusOK, rec.Code, target)

			var list []warrantyData
			require.NoError(t, json.Unmarshal(env.Data, &list))
			assert.Len(t, list, want, target)
		}

		rec, env := api.do(t, http.MethodGet, "/api/v1/warranties?status=bogus", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_STATUS", env.Error.Code)
	})

	t.Run("update keeps the id", func(t *testing.T) {
		body := strings.Replace(createBody, `"Aisyah"`, `"Aisyah Binti Ali"`, 1)
		rec, env := api.do(t, http.MethodPut, "/api/v1/warranties/"+created.ID, body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var got warrantyData
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Aisyah Binti Ali", got.CustomerName)
	})

	t.Run("delete needs confirmation", func(t *testing.T) {
		rec, env := api.do(t, http.MethodDelete, "/api/v1/warranties/"+created.ID, "")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "DELETE_NOT_CONFIRMED", env.Error.Code)

		rec, _ = api.do(t, http.MethodDelete, "/api/v1/warranties/"+created.ID+"?confirm=true", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec, env = api.do(t, http.MethodGet, "/api/v1/warranties/"+created.ID, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "WARRANTY_NOT_FOUND", env.Error.Code)
	})
}

func TestAPI_CreateRejectsInvalidInput(t *testing.T) {
	api := newTestAPI(t)

	rec, env := api.do(t, http.MethodPost, "/api/v1/warranties", `{"email":"nope","products":[{"productWarrantyUnit":"decades"}]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	details, err := json.Marshal(env.Error.Details)
	require.NoError(t, err)
	assert.Contains(t, string(details), `"field":"email"`)
	assert.Contains(t, string(details), `"field":"products[0].productWarrantyUnit"`)

	rec, env = api.do(t, http.MethodPost, "/api/v1/warranties", `{"customerName":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_WARRANTY", env.Error.Code)

	assert.Empty(t, api.opener.links())
}

func TestAPI_Share(t *testing.T) {
	api := newTestAPI(t)
	created := api.create(t)
	base := "/api/v1/warranties/" + created.ID

	t.Run("notify without channels does nothing", func(t *testing.T) {
		before := len(api.opener.links())

		rec, _ := api.do(t, http.MethodPost, base+"/notify", `{"email":false,"whatsapp":false}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, api.opener.links(), before)
	})

	t.Run("notify on whatsapp", func(t *testing.T) {
		rec, env := api.do(t, http.MethodPost, base+"/notify", `{"whatsapp":true}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var result struct {
			Mode    string `json:"mode"`
			Message struct {
				Subject string `json:"subject"`
			} `json:"message"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &result))
		assert.Equal(t, "reminder", result.Mode)
		assert.Equal(t, "Warranty Reminder for Ceiling Fan", result.Message.Subject)

		opened := api.opener.links()
		assert.True(t, strings.HasPrefix(opened[len(opened)-1], "whatsapp https://wa.me/60123456789?text="))
	})

	t.Run("notify unknown warranty", func(t *testing.T) {
		rec, env := api.do(t, http.MethodPost, "/api/v1/warranties/missing/notify", `{"email":true}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "WARRANTY_NOT_FOUND", env.Error.Code)
	})

	t.Run("preview", func(t *testing.T) {
		rec, env := api.do(t, http.MethodGet, base+"/share?mode=initial&channels=whatsapp", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var result struct {
			Links share.Links `json:"links"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &result))
		assert.Empty(t, result.Links.Email)
		assert.NotEmpty(t, result.Links.WhatsApp)

		rec, env = api.do(t, http.MethodGet, base+"/share?mode=bogus", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_SHARE_MODE", env.Error.Code)
	})

	t.Run("qr code", func(t *testing.T) {
		rec, _ := api.do(t, http.MethodGet, base+"/share/qr?mode=reminder", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
	})
}

func TestAPI_RunMigration(t *testing.T) {
	api := newTestAPI(t)

	legacy := json.RawMessage(`{"id":"1700000000000","customerName":"Tan","productName":"Fan","purchaseDate":"2023-06-01","productWarrantyPeriod":2,"productWarrantyUnit":"years"}`)
	require.NoError(t, api.store.Save(context.Background(), []json.RawMessage{legacy}))

	rec, env := api.do(t, http.MethodPost, "/api/v1/migrations/run", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"scanned":1,"migrated":1,"skipped":0}`, string(env.Data))

	rec, env = api.do(t, http.MethodPost, "/api/v1/migrations/run", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"scanned":1,"migrated":0,"skipped":0}`, string(env.Data))

	rec, env = api.do(t, http.MethodGet, "/api/v1/warranties/1700000000000", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got warrantyData
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got.Products, 1)
	assert.Equal(t, "Fan", got.Products[0].ProductName)
}

func TestAPI_CreateKeepsRecordWhenShareFails(t *testing.T) {
	api := newTestAPI(t)

	body := strings.Replace(createBody, `"aisyah@example.com"`, `""`, 1)
	rec, env := api.do(t, http.MethodPost, "/api/v1/warranties", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Warranty   warrantyData        `json:"warranty"`
		ShareError *response.ErrorInfo `json:"shareError"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotNil(t, created.ShareError)
	assert.Equal(t, "SHARE_TARGET_MISSING", created.ShareError.Code)
	assert.Empty(t, api.opener.links())

	rec, _ = api.do(t, http.MethodGet, "/api/v1/warranties/"+created.Warranty.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
