package query

import (
	"fmt"

	"github.com/yangliu6605/react-ems/internal/instrument/domain"
)

// ListInstrumentsQuery represents the query to list all instruments
type ListInstrumentsQuery struct{}

// ListInstrumentsHandler handles the list instruments query
type ListInstrumentsHandler struct {
	repo domain.InstrumentRepository
}

// NewListInstrumentsHandler creates a new list instruments handler
func NewListInstrumentsHandler(repo domain.InstrumentRepository) *ListInstrumentsHandler {
	return &ListInstrumentsHandler{repo: repo}
}

// Handle executes the list instruments query
func (h *ListInstrumentsHandler) Handle(query ListInstrumentsQuery) ([]domain.Instrument, error) {
	instruments, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list instruments: %w", err)
	}
	return instruments, nil
}
