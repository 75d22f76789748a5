package query

import (
	"github.com/yangliu6605/react-ems/internal/instrument/domain"
)

// GetInstrumentQuery represents the query to get a single instrument
type GetInstrumentQuery struct {
	ID string
}

// GetInstrumentHandler handles the get instrument query
type GetInstrumentHandler struct {
	repo domain.InstrumentRepository
}

// NewGetInstrumentHandler creates a new get instrument handler
func NewGetInstrumentHandler(repo domain.InstrumentRepository) *GetInstrumentHandler {
	return &GetInstrumentHandler{repo: repo}
}

// Handle executes the get instrument query
func (h *GetInstrumentHandler) Handle(query GetInstrumentQuery) (*domain.Instrument, error) {
	return h.repo.FindByID(query.ID)
}
