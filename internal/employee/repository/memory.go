package repository

import (
	"sync"

	"github.com/yangliu6605/react-ems/internal/employee/domain"
)

// MemoryEmployeeRepository is the in-memory employee store
type MemoryEmployeeRepository struct {
	mu        sync.RWMutex
	employees []domain.Employee
}

// NewMemoryEmployeeRepository creates an empty in-memory repository
func NewMemoryEmployeeRepository() *MemoryEmployeeRepository {
	return &MemoryEmployeeRepository{}
}

func (r *MemoryEmployeeRepository) Create(employee *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees = append(r.employees, *employee)
	return nil
}

func (r *MemoryEmployeeRepository) FindByID(id string) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.employees {
		if r.employees[i].ID == id {
			employee := r.employees[i]
			return &employee, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryEmployeeRepository) FindAll() ([]domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Employee, len(r.employees))
	copy(out, r.employees)
	return out, nil
}

func (r *MemoryEmployeeRepository) Update(employee *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.employees {
		if r.employees[i].ID == employee.ID {
			r.employees[i] = *employee
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *MemoryEmployeeRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.employees {
		if r.employees[i].ID == id {
			r.employees = append(r.employees[:i], r.employees[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
