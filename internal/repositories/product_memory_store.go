package repositories

import (
	"sync"

	"github.com/google/uuid"

	"catalog/internal/models"
)

// MemoryProductStore is an in-memory implementation of ProductStore backed
// by an ordered slice. The mutex makes each store call atomic; ordering
// across calls from concurrent clients carries no stronger guarantee.
type MemoryProductStore struct {
	products []models.Product
	mu       sync.RWMutex
}

// NewMemoryProductStore creates an empty MemoryProductStore.
func NewMemoryProductStore() *MemoryProductStore {
	return &MemoryProductStore{
		products: make([]models.Product, 0),
	}
}

// ListAll returns a snapshot copy of the catalog in insertion order.
func (s *MemoryProductStore) ListAll() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]models.Product, len(s.products))
	copy(snapshot, s.products)
	return snapshot
}

// FindByID returns the product with the given ID.
func (s *MemoryProductStore) FindByID(id string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

// FindIndexByID returns the position of the product with the given ID.
func (s *MemoryProductStore) FindIndexByID(id string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].ID == id {
			return i, nil
		}
	}
	return -1, ErrProductNotFound
}

// Insert appends the product at the end of the catalog. An empty ID is
// replaced with a fresh UUID; a caller-supplied ID (seeding) is kept as is.
func (s *MemoryProductStore) Insert(product models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	s.products = append(s.products, product)
	return product
}

// ReplaceAt overwrites the record at index with product.
func (s *MemoryProductStore) ReplaceAt(index int, product models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.products) {
		return ErrProductNotFound
	}
	s.products[index] = product
	return nil
}

// RemoveAt splices out and returns the record at index.
func (s *MemoryProductStore) RemoveAt(index int) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.products) {
		return models.Product{}, ErrProductNotFound
	}
	removed := s.products[index]
	s.products = append(s.products[:index], s.products[index+1:]...)
	return removed, nil
}
