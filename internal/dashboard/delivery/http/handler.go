package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yangliu6605/react-ems/internal/dashboard/usecase/query"
	"github.com/yangliu6605/react-ems/pkg/logger"
)

// DashboardHandler handles HTTP requests for dashboard metrics
type DashboardHandler struct {
	getHandler *query.GetDashboardHandler
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(getHandler *query.GetDashboardHandler) *DashboardHandler {
	return &DashboardHandler{getHandler: getHandler}
}

// RegisterRoutes registers the dashboard route
func (h *DashboardHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/dashboard", h.GetDashboard).Methods("GET")
}

// GetDashboard handles GET /api/dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.getHandler.Handle(query.GetDashboardQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to compute dashboard")
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to compute dashboard"})
		return
	}
	respondJSON(w, http.StatusOK, dashboard)
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
