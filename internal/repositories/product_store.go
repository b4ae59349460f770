package repositories

import (
	"errors"

	"catalog/internal/models"
)

// ErrProductNotFound is returned by lookups when no product has the
// requested ID.
var ErrProductNotFound = errors.New("product not found")

// ProductStore defines the interface for product data access. The catalog
// is an ordered sequence; insertion order is the only order and index-based
// operations address positions within it.
type ProductStore interface {
	// ListAll returns a snapshot copy of the catalog so callers can
	// filter and slice without affecting stored order.
	ListAll() []models.Product
	FindByID(id string) (*models.Product, error)
	FindIndexByID(id string) (int, error)
	// Insert appends the product, assigning a fresh ID when none is set,
	// and returns the stored record.
	Insert(product models.Product) models.Product
	ReplaceAt(index int, product models.Product) error
	// RemoveAt splices the product out and returns it.
	RemoveAt(index int) (models.Product, error)
}
