package inmemory

import (
	"context"
	"sync"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"
)

// ProductCatalog implements ports.ProductCatalog over a map. Products are
// immutable snapshots, so reads hand them out by value.
type ProductCatalog struct {
	mu       sync.RWMutex
	products map[string]product.Product
}

// NewProductCatalog creates an empty catalog.
func NewProductCatalog() *ProductCatalog {
	return &ProductCatalog{
		products: make(map[string]product.Product),
	}
}

// Add registers a product snapshot in the catalog, replacing any previous
// snapshot with the same identity.
func (c *ProductCatalog) Add(p product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.products[p.ID().String()] = p
	return nil
}

// Get retrieves a product snapshot by its unique identifier.
func (c *ProductCatalog) Get(_ context.Context, id kernel.UUID) (product.Product, error) {
	if err := id.Validate(); err != nil {
		return product.Product{}, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.products[id.String()]
	if !ok {
		return product.Product{}, errs.NewObjectNotFoundError("productID", id)
	}

	return p, nil
}
