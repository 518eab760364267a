package interfaces

import (
	"context"
	"salesdash/internal/domain/entities"
)

//go:generate mockgen -source=sales_gateway_interface.go -destination=mocks/sales_gateway_mock.go -package=mock_interfaces

// ISalesGateway fetches lead and quote collections from the remote sales API.
//
// Both operations return fully normalized records: malformed payload entries
// degrade to default field values rather than failing the fetch. Only
// transport-level problems (network error, non-2xx) surface as errors.
type ISalesGateway interface {
	FetchLeads(ctx context.Context) ([]entities.Lead, error)
	FetchQuotes(ctx context.Context) ([]entities.Quote, error)
}
