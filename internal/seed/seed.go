package seed

import (
	"fmt"
	"time"

	employeedomain "github.com/yangliu6605/react-ems/internal/employee/domain"
	instrumentdomain "github.com/yangliu6605/react-ems/internal/instrument/domain"
	orderdomain "github.com/yangliu6605/react-ems/internal/order/domain"
	"github.com/yangliu6605/react-ems/pkg/logger"
)

// Run loads the demo dataset the original fixtures shipped with. Orders
// are inserted directly, without ledger side effects, exactly like
// fixture data: the seeded stock levels already account for them.
func Run(
	instruments instrumentdomain.InstrumentRepository,
	employees employeedomain.EmployeeRepository,
	orders orderdomain.OrderRepository,
) error {
	now := time.Now()
	year := now.Year()

	demoInstruments := []instrumentdomain.Instrument{
		{ID: "SKU-1001", Name: "Fender Stratocaster", Category: "Electric Guitars", Brand: "Fender", Stock: 12, ReorderLevel: 5, Cost: 650, Price: 899, Status: instrumentdomain.StatusActive},
		{ID: "SKU-1002", Name: "Gibson Les Paul Standard", Category: "Electric Guitars", Brand: "Gibson", Stock: 4, ReorderLevel: 5, Cost: 1800, Price: 2499, Status: instrumentdomain.StatusActive},
		{ID: "SKU-2001", Name: "Yamaha P-125 Digital Piano", Category: "Keyboards", Brand: "Yamaha", Stock: 8, ReorderLevel: 3, Cost: 450, Price: 649, Status: instrumentdomain.StatusActive},
		{ID: "SKU-3001", Name: "Pearl Export Drum Kit", Category: "Drums", Brand: "Pearl", Stock: 3, ReorderLevel: 2, Cost: 520, Price: 799, Status: instrumentdomain.StatusActive},
		{ID: "SKU-4001", Name: "Shure SM58 Microphone", Category: "Pro Audio", Brand: "Shure", Stock: 25, ReorderLevel: 10, Cost: 70, Price: 99, Status: instrumentdomain.StatusActive},
		{ID: "SKU-5001", Name: "Hohner Special 20 Harmonica", Category: "Wind", Brand: "Hohner", Stock: 2, ReorderLevel: 6, Cost: 28, Price: 45, Status: instrumentdomain.StatusInactive},
	}
	for i := range demoInstruments {
		demoInstruments[i].CreatedAt = now
		demoInstruments[i].UpdatedAt = now
		if err := instruments.Create(&demoInstruments[i]); err != nil {
			return fmt.Errorf("failed to seed instrument %s: %w", demoInstruments[i].ID, err)
		}
	}

	demoEmployees := []employeedomain.Employee{
		{ID: "EMP-001", Name: "Alice Zhang", Email: "alice.zhang@example.com", Phone: "555-0101"},
		{ID: "EMP-002", Name: "Marcus Reed", Email: "marcus.reed@example.com", Phone: "555-0102"},
		{ID: "EMP-003", Name: "Priya Nair", Email: "priya.nair@example.com", Phone: "555-0103"},
	}
	for i := range demoEmployees {
		demoEmployees[i].CreatedAt = now
		demoEmployees[i].UpdatedAt = now
		if err := employees.Create(&demoEmployees[i]); err != nil {
			return fmt.Errorf("failed to seed employee %s: %w", demoEmployees[i].ID, err)
		}
	}

	demoOrders := []orderdomain.Order{
		{
			ID: "ORD-1700000001", Customer: "Riverside Music School",
			CustomerPhone: "555-0201", CustomerAddress: "12 River St",
			Date: fmt.Sprintf("%d-02-14", year), Status: orderdomain.StatusFulfilled,
			SalesRepName: "Alice Zhang",
			Items: []orderdomain.OrderItem{
				{InstrumentID: "SKU-1001", InstrumentName: "Fender Stratocaster", Quantity: 2, UnitPrice: 899},
				{InstrumentID: "SKU-4001", InstrumentName: "Shure SM58 Microphone", Quantity: 4, UnitPrice: 99},
			},
			Total: 2194,
		},
		{
			ID: "ORD-1700000002", Customer: "Tom Harper",
			CustomerPhone: "555-0202", CustomerAddress: "88 Oak Ave",
			Date: fmt.Sprintf("%d-05-03", year), Status: orderdomain.StatusShipped,
			SalesRepName: "Marcus Reed",
			Items: []orderdomain.OrderItem{
				{InstrumentID: "SKU-2001", InstrumentName: "Yamaha P-125 Digital Piano", Quantity: 1, UnitPrice: 649},
			},
			Total: 649,
		},
		{
			ID: "ORD-1700000003", Customer: "Downtown Jazz Club",
			CustomerPhone: "555-0203", CustomerAddress: "5 Blue Note Ln",
			Date: fmt.Sprintf("%d-05-21", year), Status: orderdomain.StatusPending,
			SalesRepName: "Priya Nair",
			Items: []orderdomain.OrderItem{
				{InstrumentID: "SKU-3001", InstrumentName: "Pearl Export Drum Kit", Quantity: 1, UnitPrice: 799},
			},
			Total: 799,
		},
	}
	for i := range demoOrders {
		demoOrders[i].CreatedAt = now
		demoOrders[i].UpdatedAt = now
		if err := orders.Create(&demoOrders[i]); err != nil {
			return fmt.Errorf("failed to seed order %s: %w", demoOrders[i].ID, err)
		}
	}

	logger.Logger.Info().
		Int("instruments", len(demoInstruments)).
		Int("employees", len(demoEmployees)).
		Int("orders", len(demoOrders)).
		Msg("Demo data seeded")

	return nil
}
