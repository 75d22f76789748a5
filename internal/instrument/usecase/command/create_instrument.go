package command

import (
	"fmt"
	"time"

	"github.com/yangliu6605/react-ems/internal/instrument/domain"
)

// CreateInstrumentCommand represents the command to create an instrument
type CreateInstrumentCommand struct {
	ID           string
	Name         string
	Category     string
	Brand        string
	Stock        int
	ReorderLevel int
	Cost         float64
	Price        float64
	Status       string
}

// CreateInstrumentHandler handles instrument creation
type CreateInstrumentHandler struct {
	repo domain.InstrumentRepository
}

// NewCreateInstrumentHandler creates a new create instrument handler
func NewCreateInstrumentHandler(repo domain.InstrumentRepository) *CreateInstrumentHandler {
	return &CreateInstrumentHandler{repo: repo}
}

// Handle executes the create instrument command
func (h *CreateInstrumentHandler) Handle(cmd CreateInstrumentCommand) (*domain.Instrument, error) {
	if cmd.ID == "" {
		return nil, &domain.ValidationError{Field: "id", Reason: "is required"}
	}
	if cmd.Name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "is required"}
	}
	if cmd.Stock < 0 {
		return nil, &domain.ValidationError{Field: "stock", Reason: "cannot be negative"}
	}
	if cmd.ReorderLevel < 0 {
		return nil, &domain.ValidationError{Field: "reorderLevel", Reason: "cannot be negative"}
	}
	if cmd.Price < 0 {
		return nil, &domain.ValidationError{Field: "price", Reason: "cannot be negative"}
	}

	status := cmd.Status
	if status == "" {
		status = domain.StatusActive
	}
	if status != domain.StatusActive && status != domain.StatusInactive {
		return nil, &domain.ValidationError{Field: "status", Reason: "must be active or inactive"}
	}

	instrument := &domain.Instrument{
		ID:           cmd.ID,
		Name:         cmd.Name,
		Category:     cmd.Category,
		Brand:        cmd.Brand,
		Stock:        cmd.Stock,
		ReorderLevel: cmd.ReorderLevel,
		Cost:         cmd.Cost,
		Price:        cmd.Price,
		Status:       status,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := h.repo.Create(instrument); err != nil {
		if err == domain.ErrDuplicateSKU {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create instrument: %w", err)
	}

	return instrument, nil
}
