package seed_test

import (
	"testing"

	employeerepo "github.com/yangliu6605/react-ems/internal/employee/repository"
	instrumentrepo "github.com/yangliu6605/react-ems/internal/instrument/repository"
	orderrepo "github.com/yangliu6605/react-ems/internal/order/repository"
	"github.com/yangliu6605/react-ems/internal/seed"
)

func TestRunLoadsDemoData(t *testing.T) {
	instruments := instrumentrepo.NewMemoryInstrumentRepository()
	employees := employeerepo.NewMemoryEmployeeRepository()
	orders := orderrepo.NewMemoryOrderRepository()

	if err := seed.Run(instruments, employees, orders); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if n, _ := instruments.Count(); n == 0 {
		t.Error("expected seeded instruments")
	}
	if n, _ := orders.Count(); n == 0 {
		t.Error("expected seeded orders")
	}
	all, err := employees.FindAll()
	if err != nil || len(all) == 0 {
		t.Errorf("expected seeded employees, got %d (%v)", len(all), err)
	}

	// Seeding twice must fail on duplicate SKUs rather than silently
	// doubling the catalog.
	if err := seed.Run(instruments, employees, orders); err == nil {
		t.Error("expected duplicate error on second run")
	}
}
