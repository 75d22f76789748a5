//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"

	ledgercommand "github.com/yangliu6605/react-ems/internal/ledger/usecase/command"
	"github.com/yangliu6605/react-ems/internal/order/delivery/http"
	"github.com/yangliu6605/react-ems/internal/order/domain"
	"github.com/yangliu6605/react-ems/internal/order/usecase/command"
	"github.com/yangliu6605/react-ems/internal/order/usecase/query"
	"github.com/yangliu6605/react-ems/kafka"
)

// HandlerSet wires the command and query handlers
var HandlerSet = wire.NewSet(
	command.NewCreateOrderHandler,
	command.NewUpdateOrderHandler,
	command.NewDeleteOrderHandler,
	query.NewGetOrderHandler,
	query.NewListOrdersHandler,
)

// InitializeHTTPHandler initializes the HTTP handler with all
// dependencies. The AdjustStockHandler is the shared ledger mutation
// point, built once in main.
func InitializeHTTPHandler(
	repo domain.OrderRepository,
	adjust *ledgercommand.AdjustStockHandler,
	publisher *kafka.Publisher,
) (*http.OrderHandler, error) {
	wire.Build(
		HandlerSet,
		http.NewOrderHandler,
	)
	return nil, nil
}
