package query

import (
	"github.com/yangliu6605/react-ems/internal/order/domain"
)

// GetOrderQuery represents the query to get a single order
type GetOrderQuery struct {
	ID string
}

// GetOrderHandler handles the get order query
type GetOrderHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

// Handle executes the get order query
func (h *GetOrderHandler) Handle(query GetOrderQuery) (*domain.Order, error) {
	return h.repo.FindByID(query.ID)
}
