package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	ledgerdomain "github.com/yangliu6605/react-ems/internal/ledger/domain"
	ledgercommand "github.com/yangliu6605/react-ems/internal/ledger/usecase/command"
	"github.com/yangliu6605/react-ems/internal/order/domain"
	"github.com/yangliu6605/react-ems/kafka"
	"github.com/yangliu6605/react-ems/pkg/logger"
)

// CreateOrderCommand represents the command to create an order. The id
// may be client-supplied (the UI generates ORD-<millis>); when absent
// the server assigns one. Total is caller-supplied and not recomputed.
type CreateOrderCommand struct {
	ID              string
	Customer        string
	CustomerPhone   string
	CustomerAddress string
	Date            string
	Status          string
	SalesRepName    string
	Items           []domain.OrderItem
	Total           float64
}

// CreateOrderHandler handles order creation. Stock for every line item
// is taken through the ledger in one all-or-nothing batch: a failing
// item (unknown instrument, insufficient stock) fails the whole
// creation with no partial stock effects.
type CreateOrderHandler struct {
	repo      domain.OrderRepository
	adjust    *ledgercommand.AdjustStockHandler
	publisher *kafka.Publisher
}

// NewCreateOrderHandler creates a new create order handler
func NewCreateOrderHandler(
	repo domain.OrderRepository,
	adjust *ledgercommand.AdjustStockHandler,
	publisher *kafka.Publisher,
) *CreateOrderHandler {
	return &CreateOrderHandler{repo: repo, adjust: adjust, publisher: publisher}
}

// Handle executes the create order command
func (h *CreateOrderHandler) Handle(cmd CreateOrderCommand) (*domain.Order, error) {
	if cmd.Customer == "" {
		return nil, fmt.Errorf("customer is required")
	}
	if len(cmd.Items) == 0 {
		return nil, fmt.Errorf("order must have at least one item")
	}
	for _, item := range cmd.Items {
		if item.InstrumentID == "" {
			return nil, fmt.Errorf("item instrument id is required")
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("item quantity must be greater than 0")
		}
		if item.UnitPrice < 0 {
			return nil, fmt.Errorf("item unit price cannot be negative")
		}
	}

	status := cmd.Status
	if status == "" {
		status = domain.StatusPending
	}
	if !domain.ValidStatus(status) {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	id := cmd.ID
	if id == "" {
		id = fmt.Sprintf("ORD-%s", uuid.New().String()[:8])
	}
	if existing, _ := h.repo.FindByID(id); existing != nil {
		return nil, fmt.Errorf("order %s already exists", id)
	}

	date := cmd.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	adjustments := make([]ledgercommand.AdjustStockCommand, 0, len(cmd.Items))
	for _, item := range cmd.Items {
		adjustments = append(adjustments, ledgercommand.AdjustStockCommand{
			InstrumentID:   item.InstrumentID,
			Quantity:       item.Quantity,
			Direction:      ledgerdomain.DirectionOut,
			Reason:         fmt.Sprintf("Order %s", id),
			RelatedOrderID: id,
		})
	}

	if _, err := h.adjust.HandleAll(adjustments); err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:              id,
		Customer:        cmd.Customer,
		CustomerPhone:   cmd.CustomerPhone,
		CustomerAddress: cmd.CustomerAddress,
		Date:            date,
		Status:          status,
		SalesRepName:    cmd.SalesRepName,
		Items:           cmd.Items,
		Total:           cmd.Total,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := h.repo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := h.publisher.PublishOrderEvent(context.Background(), kafka.EventTypeOrderCreated, kafka.OrderEvent{
		OrderID:   order.ID,
		Status:    order.Status,
		Total:     order.Total,
		ItemCount: len(order.Items),
	}); err != nil {
		logger.Logger.Warn().Err(err).Str("order_id", order.ID).Msg("Failed to publish order created event")
	}

	return order, nil
}
