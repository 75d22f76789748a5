package repository

import (
	"sync"

	"github.com/yangliu6605/react-ems/internal/ledger/domain"
)

// MemoryTransactionRepository is the in-memory append-only ledger
type MemoryTransactionRepository struct {
	mu           sync.RWMutex
	transactions []domain.StockTransaction
}

// NewMemoryTransactionRepository creates an empty in-memory ledger
func NewMemoryTransactionRepository() *MemoryTransactionRepository {
	return &MemoryTransactionRepository{}
}

func (r *MemoryTransactionRepository) Append(tx *domain.StockTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = append(r.transactions, *tx)
	return nil
}

func (r *MemoryTransactionRepository) FindAll() ([]domain.StockTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.StockTransaction, len(r.transactions))
	copy(out, r.transactions)
	return out, nil
}

func (r *MemoryTransactionRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.transactions)), nil
}
