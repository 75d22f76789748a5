package query

import (
	"fmt"

	"github.com/yangliu6605/react-ems/internal/ledger/domain"
)

// ListTransactionsQuery represents the query to list the stock ledger
type ListTransactionsQuery struct{}

// ListTransactionsHandler handles the list transactions query
type ListTransactionsHandler struct {
	repo domain.TransactionRepository
}

// NewListTransactionsHandler creates a new list transactions handler
func NewListTransactionsHandler(repo domain.TransactionRepository) *ListTransactionsHandler {
	return &ListTransactionsHandler{repo: repo}
}

// Handle executes the list transactions query
func (h *ListTransactionsHandler) Handle(query ListTransactionsQuery) ([]domain.StockTransaction, error) {
	transactions, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}
