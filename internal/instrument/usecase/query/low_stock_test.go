package query_test

import (
	"testing"

	"github.com/yangliu6605/react-ems/internal/instrument/domain"
	"github.com/yangliu6605/react-ems/internal/instrument/repository"
	"github.com/yangliu6605/react-ems/internal/instrument/usecase/query"
)

func TestLowStockUsesReorderLevel(t *testing.T) {
	repo := repository.NewMemoryInstrumentRepository()
	for _, i := range []domain.Instrument{
		{ID: "SKU-0001", Name: "Strat", Stock: 12, ReorderLevel: 5},
		{ID: "SKU-0002", Name: "Les Paul", Stock: 4, ReorderLevel: 5},
		{ID: "SKU-0003", Name: "SM58", Stock: 2, ReorderLevel: 2},
	} {
		instrument := i
		if err := repo.Create(&instrument); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	low, err := query.NewLowStockHandler(repo).Handle(query.LowStockQuery{})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}

	// Strictly below the reorder level: stock 2 at level 2 is fine.
	if len(low) != 1 || low[0].ID != "SKU-0002" {
		t.Errorf("low = %+v, want exactly SKU-0002", low)
	}
}

func TestLowStockEmptyStore(t *testing.T) {
	repo := repository.NewMemoryInstrumentRepository()
	low, err := query.NewLowStockHandler(repo).Handle(query.LowStockQuery{})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if low == nil || len(low) != 0 {
		t.Errorf("low = %#v, want empty non-nil slice", low)
	}
}
