package domain

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Movement directions
const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// Operator recorded on ledger-driven movements
const OperatorSystem = "System"

// StockTransaction is one entry in the append-only stock ledger. The
// instrumentId reference is weak: the instrument may be deleted later
// and the entry still stands. InstrumentName is a snapshot taken at
// movement time.
type StockTransaction struct {
	ID             string         `json:"id" gorm:"primaryKey"`
	InstrumentID   string         `json:"instrumentId" gorm:"index"`
	InstrumentName string         `json:"instrumentName"`
	Type           string         `json:"type"`
	Quantity       int            `json:"quantity"`
	Date           string         `json:"date"`
	Operator       string         `json:"operator"`
	Reason         string         `json:"reason"`
	RelatedOrderID string         `json:"relatedOrderId,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (StockTransaction) TableName() string {
	return "stock_transactions"
}

// InsufficientStockError is returned when an out movement asks for more
// than is available. It carries both quantities for the caller to
// present.
type InsufficientStockError struct {
	InstrumentID string
	Available    int
	Requested    int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: available %d, requested %d",
		e.InstrumentID, e.Available, e.Requested)
}

// TransactionRepository defines the contract for ledger data access.
// The ledger is append-only: there is no update or delete.
type TransactionRepository interface {
	Append(tx *StockTransaction) error
	FindAll() ([]StockTransaction, error)
	Count() (int64, error)
}
