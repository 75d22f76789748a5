package command

import (
	"fmt"
	"time"

	"github.com/yangliu6605/react-ems/internal/instrument/domain"
)

// UpdateInstrumentCommand carries a partial update. Nil fields are left
// untouched, matching the original shallow-merge semantics. A direct
// Stock update here is a manual correction and does not write a ledger
// transaction.
type UpdateInstrumentCommand struct {
	ID           string
	Name         *string
	Category     *string
	Brand        *string
	Stock        *int
	ReorderLevel *int
	Cost         *float64
	Price        *float64
	Status       *string
}

// UpdateInstrumentHandler handles instrument updates
type UpdateInstrumentHandler struct {
	repo domain.InstrumentRepository
}

// NewUpdateInstrumentHandler creates a new update instrument handler
func NewUpdateInstrumentHandler(repo domain.InstrumentRepository) *UpdateInstrumentHandler {
	return &UpdateInstrumentHandler{repo: repo}
}

// Handle executes the update instrument command
func (h *UpdateInstrumentHandler) Handle(cmd UpdateInstrumentCommand) (*domain.Instrument, error) {
	instrument, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		instrument.Name = *cmd.Name
	}
	if cmd.Category != nil {
		instrument.Category = *cmd.Category
	}
	if cmd.Brand != nil {
		instrument.Brand = *cmd.Brand
	}
	if cmd.Stock != nil {
		if *cmd.Stock < 0 {
			return nil, &domain.ValidationError{Field: "stock", Reason: "cannot be negative"}
		}
		instrument.Stock = *cmd.Stock
	}
	if cmd.ReorderLevel != nil {
		if *cmd.ReorderLevel < 0 {
			return nil, &domain.ValidationError{Field: "reorderLevel", Reason: "cannot be negative"}
		}
		instrument.ReorderLevel = *cmd.ReorderLevel
	}
	if cmd.Cost != nil {
		instrument.Cost = *cmd.Cost
	}
	if cmd.Price != nil {
		instrument.Price = *cmd.Price
	}
	if cmd.Status != nil {
		if *cmd.Status != domain.StatusActive && *cmd.Status != domain.StatusInactive {
			return nil, &domain.ValidationError{Field: "status", Reason: "must be active or inactive"}
		}
		instrument.Status = *cmd.Status
	}
	instrument.UpdatedAt = time.Now()

	if err := h.repo.Update(instrument); err != nil {
		return nil, fmt.Errorf("failed to update instrument: %w", err)
	}

	return instrument, nil
}
