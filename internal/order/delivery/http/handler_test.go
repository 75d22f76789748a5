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

	instrumentdomain "github.com/yangliu6605/react-ems/internal/instrument/domain"
	instrumentrepo "github.com/yangliu6605/react-ems/internal/instrument/repository"
	ledgerrepo "github.com/yangliu6605/react-ems/internal/ledger/repository"
	ledgercommand "github.com/yangliu6605/react-ems/internal/ledger/usecase/command"
	"github.com/yangliu6605/react-ems/internal/order"
	orderdomain "github.com/yangliu6605/react-ems/internal/order/domain"
	orderrepo "github.com/yangliu6605/react-ems/internal/order/repository"
)

func newOrderRouter(t *testing.T) (*mux.Router, instrumentdomain.InstrumentRepository) {
	t.Helper()

	instruments := instrumentrepo.NewMemoryInstrumentRepository()
	require.NoError(t, instruments.Create(&instrumentdomain.Instrument{
		ID:    "SKU-0001",
		Name:  "Fender Stratocaster",
		Stock: 10,
		Price: 899,
	}))

	transactions := ledgerrepo.NewMemoryTransactionRepository()
	adjust := ledgercommand.NewAdjustStockHandler(instruments, transactions, nil)
	orders := orderrepo.NewMemoryOrderRepository()

	handler, err := order.InitializeHTTPHandler(orders, adjust, nil)
	require.NoError(t, err)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router, instruments
}

func postOrder(t *testing.T, router *mux.Router, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateOrderEndpoint(t *testing.T) {
	router, instruments := newOrderRouter(t)

	rec := postOrder(t, router, `{
		"id": "ORD-1",
		"customer": "Alice",
		"items": [{"instrumentId": "SKU-0001", "instrumentName": "Fender Stratocaster", "quantity": 2, "unitPrice": 899}],
		"total": 1798
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created orderdomain.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "ORD-1", created.ID)
	assert.Equal(t, orderdomain.StatusPending, created.Status)

	instrument, err := instruments.FindByID("SKU-0001")
	require.NoError(t, err)
	assert.Equal(t, 8, instrument.Stock)
}

func TestCreateOrderEndpointInsufficientStock(t *testing.T) {
	router, instruments := newOrderRouter(t)

	rec := postOrder(t, router, `{
		"customer": "Bob",
		"items": [{"instrumentId": "SKU-0001", "quantity": 50, "unitPrice": 899}]
	}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "insufficient stock")

	instrument, err := instruments.FindByID("SKU-0001")
	require.NoError(t, err)
	assert.Equal(t, 10, instrument.Stock)
}

func TestGetOrderEndpointNotFound(t *testing.T) {
	router, _ := newOrderRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/ORD-MISSING", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "order not found", body["error"])
}

func TestCancelOrderEndpointRestoresStock(t *testing.T) {
	router, instruments := newOrderRouter(t)

	rec := postOrder(t, router, `{
		"id": "ORD-2",
		"customer": "Carol",
		"items": [{"instrumentId": "SKU-0001", "quantity": 3, "unitPrice": 899}]
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	req := httptest.NewRequest(http.MethodPut, "/api/orders/ORD-2",
		strings.NewReader(`{"status": "cancelled"}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	instrument, err := instruments.FindByID("SKU-0001")
	require.NoError(t, err)
	assert.Equal(t, 10, instrument.Stock)
}

func TestDeleteOrderEndpoint(t *testing.T) {
	router, instruments := newOrderRouter(t)

	rec := postOrder(t, router, `{
		"id": "ORD-3",
		"customer": "Dave",
		"items": [{"instrumentId": "SKU-0001", "quantity": 4, "unitPrice": 899}]
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	req := httptest.NewRequest(http.MethodDelete, "/api/orders/ORD-3", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true}`, rec.Body.String())

	instrument, err := instruments.FindByID("SKU-0001")
	require.NoError(t, err)
	assert.Equal(t, 10, instrument.Stock)
}

func TestListOrdersEndpointBareArray(t *testing.T) {
	router, _ := newOrderRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}
