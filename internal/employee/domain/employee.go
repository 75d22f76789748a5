package domain

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Employee represents a staff member
type Employee struct {
	ID        string         `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Employee) TableName() string {
	return "employees"
}

// Domain errors
var ErrNotFound = errors.New("employee not found")

// EmployeeRepository defines the contract for employee data access
type EmployeeRepository interface {
	Create(employee *Employee) error
	FindByID(id string) (*Employee, error)
	FindAll() ([]Employee, error)
	Update(employee *Employee) error
	Delete(id string) error
}
