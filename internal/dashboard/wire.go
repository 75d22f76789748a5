//go:build wireinject
// +build wireinject

package dashboard

import (
	"github.com/google/wire"

	"github.com/yangliu6605/react-ems/internal/dashboard/delivery/http"
	"github.com/yangliu6605/react-ems/internal/dashboard/usecase/query"
	instrumentdomain "github.com/yangliu6605/react-ems/internal/instrument/domain"
	orderdomain "github.com/yangliu6605/react-ems/internal/order/domain"
)

// InitializeHTTPHandler initializes the dashboard HTTP handler
func InitializeHTTPHandler(
	instruments instrumentdomain.InstrumentRepository,
	orders orderdomain.OrderRepository,
) (*http.DashboardHandler, error) {
	wire.Build(
		query.NewGetDashboardHandler,
		http.NewDashboardHandler,
	)
	return nil, nil
}
