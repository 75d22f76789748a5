package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yangliu6605/react-ems/internal/instrument"
	"github.com/yangliu6605/react-ems/internal/instrument/domain"
	"github.com/yangliu6605/react-ems/internal/instrument/repository"
)

func newInstrumentRouter(t *testing.T) *mux.Router {
	t.Helper()

	handler, err := instrument.InitializeHTTPHandler(repository.NewMemoryInstrumentRepository())
	require.NoError(t, err)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func send(router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestInstrumentCRUDRoundTrip(t *testing.T) {
	router := newInstrumentRouter(t)

	rec := send(router, http.MethodPost, "/api/instruments", `{
		"id": "SKU-0001",
		"name": "Fender Stratocaster",
		"category": "Electric Guitars",
		"brand": "Fender",
		"stock": 12,
		"reorderLevel": 5,
		"cost": 650,
		"price": 899
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Instrument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, domain.StatusActive, created.Status)

	rec = send(router, http.MethodGet, "/api/instruments/SKU-0001", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = send(router, http.MethodPut, "/api/instruments/SKU-0001", `{"price": 949}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated domain.Instrument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, float64(949), updated.Price)
	assert.Equal(t, 12, updated.Stock)

	rec = send(router, http.MethodDelete, "/api/instruments/SKU-0001", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true}`, rec.Body.String())

	rec = send(router, http.MethodGet, "/api/instruments/SKU-0001", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateInstrumentEndpointDuplicateSKU(t *testing.T) {
	router := newInstrumentRouter(t)

	body := `{"id": "SKU-0001", "name": "Strat"}`
	rec := send(router, http.MethodPost, "/api/instruments", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = send(router, http.MethodPost, "/api/instruments", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errBody map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, "instrument with this SKU already exists", errBody["error"])
}

func TestLowStockRouteIsNotShadowedByID(t *testing.T) {
	router := newInstrumentRouter(t)

	rec := send(router, http.MethodPost, "/api/instruments",
		`{"id": "SKU-0001", "name": "Les Paul", "stock": 2, "reorderLevel": 5}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = send(router, http.MethodPost, "/api/instruments",
		`{"id": "SKU-0002", "name": "Strat", "stock": 12, "reorderLevel": 5}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = send(router, http.MethodGet, "/api/instruments/low-stock", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var low []domain.Instrument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &low))
	require.Len(t, low, 1)
	assert.Equal(t, "SKU-0001", low[0].ID)
}

func TestListInstrumentsBareArray(t *testing.T) {
	router := newInstrumentRouter(t)

	rec := send(router, http.MethodGet, "/api/instruments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}
