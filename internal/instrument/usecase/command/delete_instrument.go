package command

import (
	"github.com/yangliu6605/react-ems/internal/instrument/domain"
)

// DeleteInstrumentCommand represents the command to delete an instrument
type DeleteInstrumentCommand struct {
	ID string
}

// DeleteInstrumentHandler handles instrument deletion. Orders and
// transactions referencing the SKU are left alone; their references go
// stale, which mirrors the original behavior.
type DeleteInstrumentHandler struct {
	repo domain.InstrumentRepository
}

// NewDeleteInstrumentHandler creates a new delete instrument handler
func NewDeleteInstrumentHandler(repo domain.InstrumentRepository) *DeleteInstrumentHandler {
	return &DeleteInstrumentHandler{repo: repo}
}

// Handle executes the delete instrument command
func (h *DeleteInstrumentHandler) Handle(cmd DeleteInstrumentCommand) error {
	return h.repo.Delete(cmd.ID)
}
