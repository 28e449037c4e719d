package port

import (
	"context"

	"adkpi/internal/core/domain"
)

// DatasetSource loads cleaned exports. It is the outbound port behind
// which flat files live. Implementations must be safe for concurrent use:
// the use case loads the datasets of a period in parallel.
type DatasetSource interface {
	// List returns every catalogued dataset in catalog order.
	List(ctx context.Context) ([]domain.DatasetInfo, error)
	// Load reads, validates and cleans the dataset with the given id. It
	// returns domain.ErrUnknownDataset for ids absent from the catalog and
	// domain.ErrSourceNotFound when the file is missing.
	Load(ctx context.Context, id string) (*domain.Dataset, error)
	// LoadSales returns the sales rows of a period. A period without a
	// sales file yields an empty slice.
	LoadSales(ctx context.Context, period string) ([]domain.SalesRecord, error)
}
