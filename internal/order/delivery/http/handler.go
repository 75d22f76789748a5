package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yangliu6605/react-ems/internal/order/domain"
	"github.com/yangliu6605/react-ems/internal/order/usecase/command"
	"github.com/yangliu6605/react-ems/internal/order/usecase/query"
	"github.com/yangliu6605/react-ems/pkg/logger"
)

// OrderHandler handles HTTP requests for orders using the CQRS pattern
type OrderHandler struct {
	createHandler *command.CreateOrderHandler
	updateHandler *command.UpdateOrderHandler
	deleteHandler *command.DeleteOrderHandler

	getHandler  *query.GetOrderHandler
	listHandler *query.ListOrdersHandler
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	createHandler *command.CreateOrderHandler,
	updateHandler *command.UpdateOrderHandler,
	deleteHandler *command.DeleteOrderHandler,
	getHandler *query.GetOrderHandler,
	listHandler *query.ListOrdersHandler,
) *OrderHandler {
	return &OrderHandler{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
	}
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/orders", h.ListOrders).Methods("GET")
	router.HandleFunc("/api/orders", h.CreateOrder).Methods("POST")
	router.HandleFunc("/api/orders/{id}", h.GetOrder).Methods("GET")
	router.HandleFunc("/api/orders/{id}", h.UpdateOrder).Methods("PUT")
	router.HandleFunc("/api/orders/{id}", h.DeleteOrder).Methods("DELETE")
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.listHandler.Handle(query.ListOrdersQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list orders")
		respondError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	order, err := h.getHandler.Handle(query.GetOrderQuery{ID: id})
	if err != nil {
		respondError(w, http.StatusNotFound, domain.ErrNotFound.Error())
		return
	}
	respondJSON(w, http.StatusOK, order)
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID              string             `json:"id"`
		Customer        string             `json:"customer"`
		CustomerPhone   string             `json:"customerPhone"`
		CustomerAddress string             `json:"customerAddress"`
		Date            string             `json:"date"`
		Status          string             `json:"status"`
		SalesRepName    string             `json:"salesRepName"`
		Items           []domain.OrderItem `json:"items"`
		Total           float64            `json:"total"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := command.CreateOrderCommand{
		ID:              req.ID,
		Customer:        req.Customer,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Date:            req.Date,
		Status:          req.Status,
		SalesRepName:    req.SalesRepName,
		Items:           req.Items,
		Total:           req.Total,
	}

	order, err := h.createHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Str("order_id", req.ID).Msg("Failed to create order")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, order)
}

// UpdateOrder handles PUT /api/orders/{id}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		Customer        *string             `json:"customer"`
		CustomerPhone   *string             `json:"customerPhone"`
		CustomerAddress *string             `json:"customerAddress"`
		Date            *string             `json:"date"`
		Status          *string             `json:"status"`
		SalesRepName    *string             `json:"salesRepName"`
		Items           *[]domain.OrderItem `json:"items"`
		Total           *float64            `json:"total"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := command.UpdateOrderCommand{
		ID:              id,
		Customer:        req.Customer,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Date:            req.Date,
		Status:          req.Status,
		SalesRepName:    req.SalesRepName,
		Items:           req.Items,
		Total:           req.Total,
	}

	order, err := h.updateHandler.Handle(cmd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		logger.Logger.Error().Err(err).Str("order_id", id).Msg("Failed to update order")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// DeleteOrder handles DELETE /api/orders/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.deleteHandler.Handle(command.DeleteOrderCommand{ID: id}); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		logger.Logger.Error().Err(err).Str("order_id", id).Msg("Failed to delete order")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
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
