package command

import (
	"context"
	"fmt"
	"time"

	ledgerdomain "github.com/yangliu6605/react-ems/internal/ledger/domain"
	ledgercommand "github.com/yangliu6605/react-ems/internal/ledger/usecase/command"
	"github.com/yangliu6605/react-ems/internal/order/domain"
	"github.com/yangliu6605/react-ems/kafka"
	"github.com/yangliu6605/react-ems/pkg/logger"
)

// UpdateOrderCommand carries a partial update; nil fields are left
// untouched
type UpdateOrderCommand struct {
	ID              string
	Customer        *string
	CustomerPhone   *string
	CustomerAddress *string
	Date            *string
	Status          *string
	SalesRepName    *string
	Items           *[]domain.OrderItem
	Total           *float64
}

// UpdateOrderHandler handles order updates. Setting status to cancelled
// on a not-yet-cancelled order restores stock for every item before the
// field merge; cancelling an already-cancelled order has no stock
// effect.
type UpdateOrderHandler struct {
	repo      domain.OrderRepository
	adjust    *ledgercommand.AdjustStockHandler
	publisher *kafka.Publisher
}

// NewUpdateOrderHandler creates a new update order handler
func NewUpdateOrderHandler(
	repo domain.OrderRepository,
	adjust *ledgercommand.AdjustStockHandler,
	publisher *kafka.Publisher,
) *UpdateOrderHandler {
	return &UpdateOrderHandler{repo: repo, adjust: adjust, publisher: publisher}
}

// Handle executes the update order command
func (h *UpdateOrderHandler) Handle(cmd UpdateOrderCommand) (*domain.Order, error) {
	order, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Status != nil {
		if !domain.ValidStatus(*cmd.Status) {
			return nil, fmt.Errorf("invalid status: %s", *cmd.Status)
		}

		if *cmd.Status == domain.StatusCancelled && order.Status != domain.StatusCancelled {
			if err := h.restoreStock(order); err != nil {
				return nil, err
			}
		}
		order.Status = *cmd.Status
	}

	if cmd.Customer != nil {
		order.Customer = *cmd.Customer
	}
	if cmd.CustomerPhone != nil {
		order.CustomerPhone = *cmd.CustomerPhone
	}
	if cmd.CustomerAddress != nil {
		order.CustomerAddress = *cmd.CustomerAddress
	}
	if cmd.Date != nil {
		order.Date = *cmd.Date
	}
	if cmd.SalesRepName != nil {
		order.SalesRepName = *cmd.SalesRepName
	}
	if cmd.Items != nil {
		order.Items = *cmd.Items
	}
	if cmd.Total != nil {
		order.Total = *cmd.Total
	}
	order.UpdatedAt = time.Now()

	if err := h.repo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	if err := h.publisher.PublishOrderEvent(context.Background(), kafka.EventTypeOrderUpdated, kafka.OrderEvent{
		OrderID:   order.ID,
		Status:    order.Status,
		Total:     order.Total,
		ItemCount: len(order.Items),
	}); err != nil {
		logger.Logger.Warn().Err(err).Str("order_id", order.ID).Msg("Failed to publish order updated event")
	}

	return order, nil
}

// restoreStock puts every line item back through the ledger
func (h *UpdateOrderHandler) restoreStock(order *domain.Order) error {
	for _, item := range order.Items {
		_, err := h.adjust.Handle(ledgercommand.AdjustStockCommand{
			InstrumentID:   item.InstrumentID,
			Quantity:       item.Quantity,
			Direction:      ledgerdomain.DirectionIn,
			Reason:         fmt.Sprintf("Order %s cancelled", order.ID),
			RelatedOrderID: order.ID,
		})
		if err != nil {
			return fmt.Errorf("failed to restore stock for %s: %w", item.InstrumentID, err)
		}
	}
	return nil
}
