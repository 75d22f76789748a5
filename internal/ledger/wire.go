//go:build wireinject
// +build wireinject

package ledger

import (
	"github.com/google/wire"

	"github.com/yangliu6605/react-ems/internal/ledger/delivery/http"
	"github.com/yangliu6605/react-ems/internal/ledger/domain"
	"github.com/yangliu6605/react-ems/internal/ledger/usecase/command"
	"github.com/yangliu6605/react-ems/internal/ledger/usecase/query"
)

// InitializeHTTPHandler initializes the ledger HTTP handler. The
// AdjustStockHandler is shared with the order usecases, so it is built
// once in main and passed in.
func InitializeHTTPHandler(adjust *command.AdjustStockHandler, repo domain.TransactionRepository) (*http.LedgerHandler, error) {
	wire.Build(
		query.NewListTransactionsHandler,
		http.NewLedgerHandler,
	)
	return nil, nil
}
