package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/yangliu6605/react-ems/internal/instrument/domain"
	"github.com/yangliu6605/react-ems/internal/instrument/usecase/command"
	"github.com/yangliu6605/react-ems/internal/instrument/usecase/query"
	"github.com/yangliu6605/react-ems/pkg/logger"
)

var totalInstruments = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "erp_backend_total_instruments",
		Help: "Total number of instruments in the system",
	},
)

// InstrumentHandler handles HTTP requests for instruments using the
// CQRS pattern
type InstrumentHandler struct {
	createHandler *command.CreateInstrumentHandler
	updateHandler *command.UpdateInstrumentHandler
	deleteHandler *command.DeleteInstrumentHandler

	getHandler      *query.GetInstrumentHandler
	listHandler     *query.ListInstrumentsHandler
	lowStockHandler *query.LowStockHandler

	repo domain.InstrumentRepository
}

// NewInstrumentHandler creates a new instrument handler
func NewInstrumentHandler(
	createHandler *command.CreateInstrumentHandler,
	updateHandler *command.UpdateInstrumentHandler,
	deleteHandler *command.DeleteInstrumentHandler,
	getHandler *query.GetInstrumentHandler,
	listHandler *query.ListInstrumentsHandler,
	lowStockHandler *query.LowStockHandler,
	repo domain.InstrumentRepository,
) *InstrumentHandler {
	return &InstrumentHandler{
		createHandler:   createHandler,
		updateHandler:   updateHandler,
		deleteHandler:   deleteHandler,
		getHandler:      getHandler,
		listHandler:     listHandler,
		lowStockHandler: lowStockHandler,
		repo:            repo,
	}
}

// RegisterRoutes registers all instrument routes
func (h *InstrumentHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/instruments", h.ListInstruments).Methods("GET")
	router.HandleFunc("/api/instruments", h.CreateInstrument).Methods("POST")
	router.HandleFunc("/api/instruments/low-stock", h.LowStock).Methods("GET")
	router.HandleFunc("/api/instruments/{id}", h.GetInstrument).Methods("GET")
	router.HandleFunc("/api/instruments/{id}", h.UpdateInstrument).Methods("PUT")
	router.HandleFunc("/api/instruments/{id}", h.DeleteInstrument).Methods("DELETE")
}

// ListInstruments handles GET /api/instruments
func (h *InstrumentHandler) ListInstruments(w http.ResponseWriter, r *http.Request) {
	instruments, err := h.listHandler.Handle(query.ListInstrumentsQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list instruments")
		respondError(w, http.StatusInternalServerError, "failed to list instruments")
		return
	}
	respondJSON(w, http.StatusOK, instruments)
}

// LowStock handles GET /api/instruments/low-stock
func (h *InstrumentHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	instruments, err := h.lowStockHandler.Handle(query.LowStockQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list low stock instruments")
		respondError(w, http.StatusInternalServerError, "failed to list low stock instruments")
		return
	}
	respondJSON(w, http.StatusOK, instruments)
}

// GetInstrument handles GET /api/instruments/{id}
func (h *InstrumentHandler) GetInstrument(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	instrument, err := h.getHandler.Handle(query.GetInstrumentQuery{ID: id})
	if err != nil {
		respondError(w, http.StatusNotFound, domain.ErrNotFound.Error())
		return
	}
	respondJSON(w, http.StatusOK, instrument)
}

// CreateInstrument handles POST /api/instruments
func (h *InstrumentHandler) CreateInstrument(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID           string  `json:"id"`
		Name         string  `json:"name"`
		Category     string  `json:"category"`
		Brand        string  `json:"brand"`
		Stock        int     `json:"stock"`
		ReorderLevel int     `json:"reorderLevel"`
		Cost         float64 `json:"cost"`
		Price        float64 `json:"price"`
		Status       string  `json:"status"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := command.CreateInstrumentCommand{
		ID:           req.ID,
		Name:         req.Name,
		Category:     req.Category,
		Brand:        req.Brand,
		Stock:        req.Stock,
		ReorderLevel: req.ReorderLevel,
		Cost:         req.Cost,
		Price:        req.Price,
		Status:       req.Status,
	}

	instrument, err := h.createHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Str("sku", req.ID).Msg("Failed to create instrument")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.updateInstrumentsMetric()

	respondJSON(w, http.StatusCreated, instrument)
}

// UpdateInstrument handles PUT /api/instruments/{id}
func (h *InstrumentHandler) UpdateInstrument(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		Name         *string  `json:"name"`
		Category     *string  `json:"category"`
		Brand        *string  `json:"brand"`
		Stock        *int     `json:"stock"`
		ReorderLevel *int     `json:"reorderLevel"`
		Cost         *float64 `json:"cost"`
		Price        *float64 `json:"price"`
		Status       *string  `json:"status"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := command.UpdateInstrumentCommand{
		ID:           id,
		Name:         req.Name,
		Category:     req.Category,
		Brand:        req.Brand,
		Stock:        req.Stock,
		ReorderLevel: req.ReorderLevel,
		Cost:         req.Cost,
		Price:        req.Price,
		Status:       req.Status,
	}

	instrument, err := h.updateHandler.Handle(cmd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		logger.Logger.Error().Err(err).Str("sku", id).Msg("Failed to update instrument")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, instrument)
}

// DeleteInstrument handles DELETE /api/instruments/{id}
func (h *InstrumentHandler) DeleteInstrument(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.deleteHandler.Handle(command.DeleteInstrumentCommand{ID: id}); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		logger.Logger.Error().Err(err).Str("sku", id).Msg("Failed to delete instrument")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.updateInstrumentsMetric()

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// updateInstrumentsMetric updates the total instruments gauge
func (h *InstrumentHandler) updateInstrumentsMetric() {
	count, err := h.repo.Count()
	if err == nil {
		totalInstruments.Set(float64(count))
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError sends the error body shape the UI expects
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
