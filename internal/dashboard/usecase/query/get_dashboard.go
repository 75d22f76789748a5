package query

import (
	"fmt"
	"math"
	"sort"
	"time"

	instrumentdomain "github.com/yangliu6605/react-ems/internal/instrument/domain"
	orderdomain "github.com/yangliu6605/react-ems/internal/order/domain"
)

// Instruments with stock below this count show up on the dashboard's
// low-stock card. Deliberately a fixed threshold, not the per-instrument
// reorder level the inventory page uses.
const lowStockThreshold = 5

const topCategoriesLimit = 6

// GetDashboardQuery represents the query to compute dashboard metrics
type GetDashboardQuery struct{}

// CategorySales is one entry of the top-categories breakdown
type CategorySales struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// MonthSales is one bucket of the sales trend
type MonthSales struct {
	Month string  `json:"month"`
	Sales float64 `json:"sales"`
}

// Dashboard is the computed metrics payload
type Dashboard struct {
	Period        string          `json:"period"`
	TotalSales    float64         `json:"totalSales"`
	Orders        int             `json:"orders"`
	AvgOrderValue int             `json:"avgOrderValue"`
	TopCategories []CategorySales `json:"topCategories"`
	LowStock      []string        `json:"lowStock"`
	SalesTrend    []MonthSales    `json:"salesTrend"`
}

// GetDashboardHandler derives dashboard metrics by scanning the
// instrument and order stores. Nothing is cached or maintained
// incrementally; every request recomputes from scratch.
type GetDashboardHandler struct {
	instruments instrumentdomain.InstrumentRepository
	orders      orderdomain.OrderRepository
	now         func() time.Time
}

// NewGetDashboardHandler creates a new dashboard handler
func NewGetDashboardHandler(
	instruments instrumentdomain.InstrumentRepository,
	orders orderdomain.OrderRepository,
) *GetDashboardHandler {
	return &GetDashboardHandler{
		instruments: instruments,
		orders:      orders,
		now:         time.Now,
	}
}

// Handle executes the dashboard query
func (h *GetDashboardHandler) Handle(query GetDashboardQuery) (*Dashboard, error) {
	instruments, err := h.instruments.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load instruments: %w", err)
	}
	orders, err := h.orders.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	now := h.now()

	categoryByID := make(map[string]string, len(instruments))
	for _, instrument := range instruments {
		categoryByID[instrument.ID] = instrument.Category
	}

	var totalSales float64
	var fulfilledCount int
	categorySales := make(map[string]float64)
	trend := make([]float64, 12)

	for _, order := range orders {
		if order.Status != orderdomain.StatusFulfilled {
			continue
		}

		totalSales += order.Total
		fulfilledCount++

		for _, item := range order.Items {
			category, ok := categoryByID[item.InstrumentID]
			if !ok {
				// Instrument deleted since the order was placed.
				continue
			}
			categorySales[category] += float64(item.Quantity) * item.UnitPrice
		}

		if t, err := time.Parse("2006-01-02", order.Date); err == nil && t.Year() == now.Year() {
			trend[int(t.Month())-1] += order.Total
		}
	}

	avgOrderValue := 0
	if fulfilledCount > 0 {
		avgOrderValue = int(math.Round(totalSales / float64(fulfilledCount)))
	}

	topCategories := make([]CategorySales, 0, len(categorySales))
	for category, value := range categorySales {
		topCategories = append(topCategories, CategorySales{Category: category, Value: value})
	}
	sort.Slice(topCategories, func(i, j int) bool {
		if topCategories[i].Value != topCategories[j].Value {
			return topCategories[i].Value > topCategories[j].Value
		}
		return topCategories[i].Category < topCategories[j].Category
	})
	if len(topCategories) > topCategoriesLimit {
		topCategories = topCategories[:topCategoriesLimit]
	}

	lowStock := make([]string, 0)
	for _, instrument := range instruments {
		if instrument.Stock < lowStockThreshold {
			lowStock = append(lowStock, instrument.ID)
		}
	}

	salesTrend := make([]MonthSales, 12)
	for i := 0; i < 12; i++ {
		salesTrend[i] = MonthSales{
			Month: time.Month(i + 1).String()[:3],
			Sales: trend[i],
		}
	}

	return &Dashboard{
		Period:        fmt.Sprintf("%d", now.Year()),
		TotalSales:    totalSales,
		Orders:        fulfilledCount,
		AvgOrderValue: avgOrderValue,
		TopCategories: topCategories,
		LowStock:      lowStock,
		SalesTrend:    salesTrend,
	}, nil
}
