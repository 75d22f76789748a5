package domain

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Order statuses. The forward path is pending → processing →
// paid_not_shipped → shipped → fulfilled; cancelled is reachable from
// any non-terminal state.
const (
	StatusPending        = "pending"
	StatusProcessing     = "processing"
	StatusPaidNotShipped = "paid_not_shipped"
	StatusShipped        = "shipped"
	StatusFulfilled      = "fulfilled"
	StatusCancelled      = "cancelled"
)

// OrderItem is one line of an order. InstrumentName and UnitPrice are
// snapshots taken when the item was added; they do not track later
// instrument edits.
type OrderItem struct {
	InstrumentID   string  `json:"instrumentId"`
	InstrumentName string  `json:"instrumentName"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unitPrice"`
}

// Order represents a sales order
type Order struct {
	ID              string         `json:"id" gorm:"primaryKey"`
	Customer        string         `json:"customer"`
	CustomerPhone   string         `json:"customerPhone"`
	CustomerAddress string         `json:"customerAddress"`
	Date            string         `json:"date"`
	Status          string         `json:"status" gorm:"default:'pending'"`
	SalesRepName    string         `json:"salesRepName"`
	Items           []OrderItem    `json:"items" gorm:"serializer:json"`
	Total           float64        `json:"total"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// ValidStatus reports whether s is a known order status
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusPaidNotShipped,
		StatusShipped, StatusFulfilled, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further automatic
// stock movement
func IsTerminal(s string) bool {
	return s == StatusFulfilled || s == StatusCancelled
}

// RetainsStockOnDelete reports whether deleting an order in this status
// skips stock restoration: shipped and fulfilled orders already moved
// goods out the door.
func RetainsStockOnDelete(s string) bool {
	return s == StatusFulfilled || s == StatusShipped
}

// Domain errors
var ErrNotFound = errors.New("order not found")

// OrderRepository defines the contract for order data access
type OrderRepository interface {
	Create(order *Order) error
	FindByID(id string) (*Order, error)
	FindAll() ([]Order, error)
	Update(order *Order) error
	Delete(id string) error
	Count() (int64, error)
}
