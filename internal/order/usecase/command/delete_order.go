package command

import (
	"fmt"

	ledgerdomain "github.com/yangliu6605/react-ems/internal/ledger/domain"
	ledgercommand "github.com/yangliu6605/react-ems/internal/ledger/usecase/command"
	"github.com/yangliu6605/react-ems/internal/order/domain"
	"github.com/yangliu6605/react-ems/pkg/logger"
)

// DeleteOrderCommand represents the command to delete an order
type DeleteOrderCommand struct {
	ID string
}

// DeleteOrderHandler handles order deletion. Unless the order already
// shipped or was fulfilled, stock is restored first; restoration
// failures are logged and swallowed so the record removal always goes
// through.
type DeleteOrderHandler struct {
	repo   domain.OrderRepository
	adjust *ledgercommand.AdjustStockHandler
}

// NewDeleteOrderHandler creates a new delete order handler
func NewDeleteOrderHandler(
	repo domain.OrderRepository,
	adjust *ledgercommand.AdjustStockHandler,
) *DeleteOrderHandler {
	return &DeleteOrderHandler{repo: repo, adjust: adjust}
}

// Handle executes the delete order command
func (h *DeleteOrderHandler) Handle(cmd DeleteOrderCommand) error {
	order, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return err
	}

	if !domain.RetainsStockOnDelete(order.Status) {
		for _, item := range order.Items {
			_, err := h.adjust.Handle(ledgercommand.AdjustStockCommand{
				InstrumentID:   item.InstrumentID,
				Quantity:       item.Quantity,
				Direction:      ledgerdomain.DirectionIn,
				Reason:         fmt.Sprintf("Order %s deleted", order.ID),
				RelatedOrderID: order.ID,
			})
			if err != nil {
				// Removing the record outranks ledger consistency here.
				logger.Logger.Warn().
					Err(err).
					Str("order_id", order.ID).
					Str("instrument_id", item.InstrumentID).
					Msg("Failed to restore stock during order deletion")
			}
		}
	}

	return h.repo.Delete(cmd.ID)
}
