package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	ledgerdomain "github.com/yangliu6605/react-ems/internal/ledger/domain"
	"github.com/yangliu6605/react-ems/internal/ledger/usecase/command"
	"github.com/yangliu6605/react-ems/internal/ledger/usecase/query"
	"github.com/yangliu6605/react-ems/pkg/logger"
)

// LedgerHandler handles HTTP requests for stock movements and the
// transaction log
type LedgerHandler struct {
	adjustHandler *command.AdjustStockHandler
	listHandler   *query.ListTransactionsHandler
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(
	adjustHandler *command.AdjustStockHandler,
	listHandler *query.ListTransactionsHandler,
) *LedgerHandler {
	return &LedgerHandler{
		adjustHandler: adjustHandler,
		listHandler:   listHandler,
	}
}

// RegisterRoutes registers all ledger routes
func (h *LedgerHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/instruments/{id}/stock-in", h.StockIn).Methods("POST")
	router.HandleFunc("/api/instruments/{id}/stock-out", h.StockOut).Methods("POST")
	router.HandleFunc("/api/stock-transactions", h.ListTransactions).Methods("GET")
}

// StockIn handles POST /api/instruments/{id}/stock-in
func (h *LedgerHandler) StockIn(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, ledgerdomain.DirectionIn, "Manual stock-in")
}

// StockOut handles POST /api/instruments/{id}/stock-out
func (h *LedgerHandler) StockOut(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, ledgerdomain.DirectionOut, "Manual stock-out")
}

func (h *LedgerHandler) adjust(w http.ResponseWriter, r *http.Request, direction, defaultReason string) {
	id := mux.Vars(r)["id"]

	var req struct {
		Quantity int    `json:"quantity"`
		Reason   string `json:"reason"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reason := req.Reason
	if reason == "" {
		reason = defaultReason
	}

	tx, err := h.adjustHandler.Handle(command.AdjustStockCommand{
		InstrumentID: id,
		Quantity:     req.Quantity,
		Direction:    direction,
		Reason:       reason,
	})
	if err != nil {
		logger.Logger.Error().
			Err(err).
			Str("instrument_id", id).
			Str("direction", direction).
			Msg("Stock adjustment rejected")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, tx)
}

// ListTransactions handles GET /api/stock-transactions
func (h *LedgerHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.listHandler.Handle(query.ListTransactionsQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list transactions")
		respondError(w, http.StatusInternalServerError, "failed to list transactions")
		return
	}
	respondJSON(w, http.StatusOK, transactions)
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
