package query

import (
	"testing"
	"time"

	instrumentdomain "github.com/yangliu6605/react-ems/internal/instrument/domain"
	instrumentrepo "github.com/yangliu6605/react-ems/internal/instrument/repository"
	orderdomain "github.com/yangliu6605/react-ems/internal/order/domain"
	orderrepo "github.com/yangliu6605/react-ems/internal/order/repository"
)

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
}

func newDashboardFixture(t *testing.T) (*GetDashboardHandler, instrumentdomain.InstrumentRepository, orderdomain.OrderRepository) {
	t.Helper()

	instruments := instrumentrepo.NewMemoryInstrumentRepository()
	for _, i := range []instrumentdomain.Instrument{
		{ID: "SKU-0001", Name: "Fender Stratocaster", Category: "Electric Guitars", Stock: 12, ReorderLevel: 5, Price: 899},
		{ID: "SKU-0002", Name: "Gibson Les Paul", Category: "Electric Guitars", Stock: 4, ReorderLevel: 2, Price: 2499},
		{ID: "SKU-0003", Name: "Shure SM58", Category: "Pro Audio", Stock: 2, ReorderLevel: 10, Price: 99},
	} {
		instrument := i
		if err := instruments.Create(&instrument); err != nil {
			t.Fatalf("seed instrument: %v", err)
		}
	}

	orders := orderrepo.NewMemoryOrderRepository()
	h := NewGetDashboardHandler(instruments, orders)
	h.now = fixedClock(2026)
	return h, instruments, orders
}

func addOrder(t *testing.T, orders orderdomain.OrderRepository, id, date, status string, total float64, items ...orderdomain.OrderItem) {
	t.Helper()
	err := orders.Create(&orderdomain.Order{
		ID:       id,
		Customer: "Test",
		Date:     date,
		Status:   status,
		Items:    items,
		Total:    total,
	})
	if err != nil {
		t.Fatalf("seed order: %v", err)
	}
}

func TestDashboardEmptyStores(t *testing.T) {
	instruments := instrumentrepo.NewMemoryInstrumentRepository()
	orders := orderrepo.NewMemoryOrderRepository()
	h := NewGetDashboardHandler(instruments, orders)
	h.now = fixedClock(2026)

	d, err := h.Handle(GetDashboardQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.Period != "2026" {
		t.Errorf("period = %q, want 2026", d.Period)
	}
	if d.TotalSales != 0 || d.Orders != 0 {
		t.Errorf("totals = %v/%v, want zeros", d.TotalSales, d.Orders)
	}
	// Division-by-zero guard.
	if d.AvgOrderValue != 0 {
		t.Errorf("avgOrderValue = %d, want 0", d.AvgOrderValue)
	}
	if len(d.SalesTrend) != 12 {
		t.Fatalf("salesTrend has %d buckets, want 12", len(d.SalesTrend))
	}
	// Empty slices must serialize as [], not null.
	if d.LowStock == nil || d.TopCategories == nil {
		t.Error("lowStock and topCategories must be non-nil")
	}
}

func TestDashboardCountsOnlyFulfilledOrders(t *testing.T) {
	h, _, orders := newDashboardFixture(t)

	addOrder(t, orders, "ORD-1", "2026-03-10", orderdomain.StatusFulfilled, 899,
		orderdomain.OrderItem{InstrumentID: "SKU-0001", Quantity: 1, UnitPrice: 899})
	addOrder(t, orders, "ORD-2", "2026-03-11", orderdomain.StatusPending, 2499,
		orderdomain.OrderItem{InstrumentID: "SKU-0002", Quantity: 1, UnitPrice: 2499})
	addOrder(t, orders, "ORD-3", "2026-04-01", orderdomain.StatusCancelled, 99,
		orderdomain.OrderItem{InstrumentID: "SKU-0003", Quantity: 1, UnitPrice: 99})

	d, err := h.Handle(GetDashboardQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.Orders != 1 {
		t.Errorf("orders = %d, want 1", d.Orders)
	}
	if d.TotalSales != 899 {
		t.Errorf("totalSales = %v, want 899", d.TotalSales)
	}
}

func TestDashboardAvgOrderValueRounds(t *testing.T) {
	h, _, orders := newDashboardFixture(t)

	addOrder(t, orders, "ORD-1", "2026-01-05", orderdomain.StatusFulfilled, 100)
	addOrder(t, orders, "ORD-2", "2026-01-06", orderdomain.StatusFulfilled, 101)

	d, err := h.Handle(GetDashboardQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 201/2 = 100.5 rounds to 101.
	if d.AvgOrderValue != 101 {
		t.Errorf("avgOrderValue = %d, want 101", d.AvgOrderValue)
	}
}

func TestDashboardLowStockUsesFixedThreshold(t *testing.T) {
	h, _, _ := newDashboardFixture(t)

	d, err := h.Handle(GetDashboardQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// SKU-0002 (stock 4) is below the fixed threshold even though it is
	// above its own reorder level; SKU-0001 (stock 12) is not low even
	// if a reorder level said otherwise.
	want := map[string]bool{"SKU-0002": true, "SKU-0003": true}
	if len(d.LowStock) != len(want) {
		t.Fatalf("lowStock = %v, want exactly %v", d.LowStock, want)
	}
	for _, id := range d.LowStock {
		if !want[id] {
			t.Errorf("unexpected low-stock id %s", id)
		}
	}
}

func TestDashboardSalesTrendBucketsByMonth(t *testing.T) {
	h, _, orders := newDashboardFixture(t)

	addOrder(t, orders, "ORD-1", "2026-03-10", orderdomain.StatusFulfilled, 500)
	addOrder(t, orders, "ORD-2", "2026-03-20", orderdomain.StatusFulfilled, 250)
	addOrder(t, orders, "ORD-3", "2026-07-01", orderdomain.StatusFulfilled, 100)
	// Previous year: counted in totals, excluded from the trend.
	addOrder(t, orders, "ORD-4", "2025-03-15", orderdomain.StatusFulfilled, 999)

	d, err := h.Handle(GetDashboardQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.TotalSales != 1849 {
		t.Errorf("totalSales = %v, want 1849", d.TotalSales)
	}
	if got := d.SalesTrend[2]; got.Month != "Mar" || got.Sales != 750 {
		t.Errorf("March bucket = %+v, want {Mar 750}", got)
	}
	if got := d.SalesTrend[6]; got.Month != "Jul" || got.Sales != 100 {
		t.Errorf("July bucket = %+v, want {Jul 100}", got)
	}
	if got := d.SalesTrend[0]; got.Sales != 0 {
		t.Errorf("January bucket = %+v, want 0 sales", got)
	}
}

func TestDashboardTopCategories(t *testing.T) {
	h, _, orders := newDashboardFixture(t)

	addOrder(t, orders, "ORD-1", "2026-02-01", orderdomain.StatusFulfilled, 998,
		orderdomain.OrderItem{InstrumentID: "SKU-0001", Quantity: 1, UnitPrice: 899},
		orderdomain.OrderItem{InstrumentID: "SKU-0003", Quantity: 1, UnitPrice: 99})
	addOrder(t, orders, "ORD-2", "2026-02-02", orderdomain.StatusFulfilled, 198,
		orderdomain.OrderItem{InstrumentID: "SKU-0003", Quantity: 2, UnitPrice: 99})

	d, err := h.Handle(GetDashboardQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(d.TopCategories) != 2 {
		t.Fatalf("topCategories = %+v, want 2 entries", d.TopCategories)
	}
	if d.TopCategories[0].Category != "Electric Guitars" || d.TopCategories[0].Value != 899 {
		t.Errorf("top category = %+v, want {Electric Guitars 899}", d.TopCategories[0])
	}
	if d.TopCategories[1].Category != "Pro Audio" || d.TopCategories[1].Value != 297 {
		t.Errorf("second category = %+v, want {Pro Audio 297}", d.TopCategories[1])
	}
}

func TestDashboardSkipsItemsOfDeletedInstruments(t *testing.T) {
	h, instruments, orders := newDashboardFixture(t)

	addOrder(t, orders, "ORD-1", "2026-05-01", orderdomain.StatusFulfilled, 899,
		orderdomain.OrderItem{InstrumentID: "SKU-0001", Quantity: 1, UnitPrice: 899})
	if err := instruments.Delete("SKU-0001"); err != nil {
		t.Fatalf("delete instrument: %v", err)
	}

	d, err := h.Handle(GetDashboardQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Order totals still count; the category breakdown just drops the
	// orphaned line item.
	if d.TotalSales != 899 {
		t.Errorf("totalSales = %v, want 899", d.TotalSales)
	}
	if len(d.TopCategories) != 0 {
		t.Errorf("topCategories = %+v, want empty", d.TopCategories)
	}
}
