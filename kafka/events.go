package kafka

import "time"

// Topics
const (
	TopicStockMoved   = "erp.stock.moved"
	TopicOrderCreated = "erp.order.created"
	TopicOrderUpdated = "erp.order.updated"
)

// Event types
const (
	EventTypeStockMoved   = "stock.moved"
	EventTypeOrderCreated = "order.created"
	EventTypeOrderUpdated = "order.updated"
)

// StockMovedEvent is published after every successful ledger adjustment
type StockMovedEvent struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	Timestamp      time.Time `json:"timestamp"`
	TransactionID  string    `json:"transaction_id"`
	InstrumentID   string    `json:"instrument_id"`
	Direction      string    `json:"direction"`
	Quantity       int       `json:"quantity"`
	Reason         string    `json:"reason"`
	RelatedOrderID string    `json:"related_order_id,omitempty"`
}

// OrderEvent is published on order creation and status changes
type OrderEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	Total     float64   `json:"total"`
	ItemCount int       `json:"item_count"`
}
