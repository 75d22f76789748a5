package repository

import (
	"sync"

	"github.com/yangliu6605/react-ems/internal/order/domain"
)

// MemoryOrderRepository is the in-memory order store
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []domain.Order
}

// NewMemoryOrderRepository creates an empty in-memory repository
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{}
}

func (r *MemoryOrderRepository) Create(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, cloneOrder(order))
	return nil
}

func (r *MemoryOrderRepository) FindByID(id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			order := cloneOrder(&r.orders[i])
			return &order, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryOrderRepository) FindAll() ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Order, 0, len(r.orders))
	for i := range r.orders {
		out = append(out, cloneOrder(&r.orders[i]))
	}
	return out, nil
}

func (r *MemoryOrderRepository) Update(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == order.ID {
			r.orders[i] = cloneOrder(order)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *MemoryOrderRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *MemoryOrderRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.orders)), nil
}

// cloneOrder deep-copies the items slice so callers never alias stored
// state
func cloneOrder(order *domain.Order) domain.Order {
	out := *order
	out.Items = make([]domain.OrderItem, len(order.Items))
	copy(out.Items, order.Items)
	return out
}
