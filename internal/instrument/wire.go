//go:build wireinject
// +build wireinject

package instrument

import (
	"github.com/google/wire"

	"github.com/yangliu6605/react-ems/internal/instrument/delivery/http"
	"github.com/yangliu6605/react-ems/internal/instrument/domain"
	"github.com/yangliu6605/react-ems/internal/instrument/usecase/command"
	"github.com/yangliu6605/react-ems/internal/instrument/usecase/query"
)

// HandlerSet wires the command and query handlers
var HandlerSet = wire.NewSet(
	command.NewCreateInstrumentHandler,
	command.NewUpdateInstrumentHandler,
	command.NewDeleteInstrumentHandler,
	query.NewGetInstrumentHandler,
	query.NewListInstrumentsHandler,
	query.NewLowStockHandler,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(repo domain.InstrumentRepository) (*http.InstrumentHandler, error) {
	wire.Build(
		HandlerSet,
		http.NewInstrumentHandler,
	)
	return nil, nil
}
