package domain

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Instrument statuses
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Instrument represents an inventory instrument. The ID is the SKU and
// doubles as the primary key.
type Instrument struct {
	ID           string         `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"not null"`
	Category     string         `json:"category"`
	Brand        string         `json:"brand"`
	Stock        int            `json:"stock" gorm:"not null;default:0"`
	ReorderLevel int            `json:"reorderLevel" gorm:"not null;default:0"`
	Cost         float64        `json:"cost"`
	Price        float64        `json:"price"`
	Status       string         `json:"status" gorm:"default:'active'"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Instrument) TableName() string {
	return "instruments"
}

// NeedsReorder reports whether stock fell below the instrument's own
// reorder level. The dashboard's low-stock check uses a fixed threshold
// instead; the two are intentionally distinct.
func (i *Instrument) NeedsReorder() bool {
	return i.Stock < i.ReorderLevel
}

// Domain errors
var (
	ErrNotFound     = errors.New("instrument not found")
	ErrDuplicateSKU = errors.New("instrument with this SKU already exists")
)

// ValidationError reports a rejected field on create or update
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

// InstrumentRepository defines the contract for instrument data access
type InstrumentRepository interface {
	Create(instrument *Instrument) error
	FindByID(id string) (*Instrument, error)
	FindAll() ([]Instrument, error)
	Update(instrument *Instrument) error
	Delete(id string) error
	Count() (int64, error)
	UpdateStock(id string, stock int) error
}
