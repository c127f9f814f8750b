package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
)

// ProductCatalog provides read access to catalog products. The ordering side
// only ever reads snapshots; catalog writes live elsewhere.
type ProductCatalog interface {
	// Get retrieves a product snapshot by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (product.Product, error)
}
