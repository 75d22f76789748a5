//go:build wireinject
// +build wireinject

package employee

import (
	"github.com/google/wire"

	"github.com/yangliu6605/react-ems/internal/employee/delivery/http"
	"github.com/yangliu6605/react-ems/internal/employee/domain"
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(repo domain.EmployeeRepository) (*http.EmployeeHandler, error) {
	wire.Build(
		http.NewEmployeeHandler,
	)
	return nil, nil
}
