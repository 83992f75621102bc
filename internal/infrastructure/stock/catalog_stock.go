package stock

import (
	"context"
	"fmt"

	"github.com/groceryflow/backend/internal/domain"
)

// CatalogStock answers stock checks from the catalog snapshot. A real
// deployment would swap this for a store-system client; the orchestrator only
// sees the StockService interface either way.
type CatalogStock struct {
	catalog domain.CatalogProvider
}

// NewCatalogStock creates a stock service over the given catalog provider
func NewCatalogStock(catalog domain.CatalogProvider) *CatalogStock {
	return &CatalogStock{catalog: catalog}
}

// IsInStock reports the InStock flag of the matching record. Unknown products
// are an error; what that error means is the caller's policy.
func (s *CatalogStock) IsInStock(ctx context.Context, productID string) (bool, error) {
	if productID == "" {
		return false, domain.ErrInvalidRequest
	}

	for _, record := range s.catalog.Catalog() {
		if record.ID == productID {
			return record.InStock, nil
		}
	}

	return false, fmt.Errorf("%w: %s", domain.ErrProductNotFound, productID)
}
