package repository

import (
	"sync"

	"github.com/yangliu6605/react-ems/internal/instrument/domain"
)

// MemoryInstrumentRepository is the in-memory store used by the mock
// persistence mode. Records keep insertion order, matching the original
// fixture-backed lists.
type MemoryInstrumentRepository struct {
	mu          sync.RWMutex
	instruments []domain.Instrument
}

// NewMemoryInstrumentRepository creates an empty in-memory repository
func NewMemoryInstrumentRepository() *MemoryInstrumentRepository {
	return &MemoryInstrumentRepository{}
}

func (r *MemoryInstrumentRepository) Create(instrument *domain.Instrument) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.instruments {
		if existing.ID == instrument.ID {
			return domain.ErrDuplicateSKU
		}
	}

	r.instruments = append(r.instruments, *instrument)
	return nil
}

func (r *MemoryInstrumentRepository) FindByID(id string) (*domain.Instrument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.instruments {
		if r.instruments[i].ID == id {
			instrument := r.instruments[i]
			return &instrument, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryInstrumentRepository) FindAll() ([]domain.Instrument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Instrument, len(r.instruments))
	copy(out, r.instruments)
	return out, nil
}

func (r *MemoryInstrumentRepository) Update(instrument *domain.Instrument) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.instruments {
		if r.instruments[i].ID == instrument.ID {
			r.instruments[i] = *instrument
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *MemoryInstrumentRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.instruments {
		if r.instruments[i].ID == id {
			r.instruments = append(r.instruments[:i], r.instruments[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *MemoryInstrumentRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.instruments)), nil
}

func (r *MemoryInstrumentRepository) UpdateStock(id string, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.instruments {
		if r.instruments[i].ID == id {
			r.instruments[i].Stock = stock
			return nil
		}
	}
	return domain.ErrNotFound
}
