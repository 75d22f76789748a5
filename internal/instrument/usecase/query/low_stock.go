package query

import (
	"fmt"

	"github.com/yangliu6605/react-ems/internal/instrument/domain"
)

// LowStockQuery represents the query for instruments below their own
// reorder level. The dashboard's low-stock list uses a fixed threshold
// instead of the reorder level; the two call sites are intentionally
// kept apart.
type LowStockQuery struct{}

// LowStockHandler handles the low stock query
type LowStockHandler struct {
	repo domain.InstrumentRepository
}

// NewLowStockHandler creates a new low stock handler
func NewLowStockHandler(repo domain.InstrumentRepository) *LowStockHandler {
	return &LowStockHandler{repo: repo}
}

// Handle executes the low stock query
func (h *LowStockHandler) Handle(query LowStockQuery) ([]domain.Instrument, error) {
	instruments, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list instruments: %w", err)
	}

	low := make([]domain.Instrument, 0)
	for _, instrument := range instruments {
		if instrument.NeedsReorder() {
			low = append(low, instrument)
		}
	}
	return low, nil
}
