package services

import (
	"strings"

	"catalog/internal/models"
	"catalog/internal/repositories"
)

// ProductService handles business logic related to the product catalog:
// listing with filter and pagination, lookup, create, partial update,
// delete, name search and category statistics.
type ProductService struct {
	store repositories.ProductStore
}

// NewProductService creates a new ProductService.
func NewProductService(store repositories.ProductStore) *ProductService {
	return &ProductService{
		store: store,
	}
}

// ListProducts returns one page of the catalog. An empty category means no
// filtering; otherwise the filter is applied before the pagination window
// and Total reflects the filtered count. The window is clamped to the
// filtered list so out-of-range page/limit values yield an empty page
// rather than an error.
func (s *ProductService) ListProducts(category string, page, limit int) models.ProductPage {
	filtered := s.store.ListAll()
	if category != "" {
		kept := make([]models.Product, 0, len(filtered))
		for _, p := range filtered {
			if p.Category == category {
				kept = append(kept, p)
			}
		}
		filtered = kept
	}

	start := (page - 1) * limit
	if start < 0 {
		start = 0
	}
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + limit
	if end < start {
		end = start
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return models.ProductPage{
		Total:    len(filtered),
		Page:     page,
		Products: filtered[start:end],
	}
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.store.FindByID(id)
}

// CreateProduct inserts a new product and returns it with its assigned ID.
func (s *ProductService) CreateProduct(product models.Product) models.Product {
	return s.store.Insert(product)
}

// UpdateProduct shallow-merges the request onto the stored product and
// returns the merged record. Fields absent from the request keep their
// stored values.
func (s *ProductService) UpdateProduct(id string, update *models.UpdateProductRequest) (*models.Product, error) {
	index, err := s.store.FindIndexByID(id)
	if err != nil {
		return nil, err
	}
	current, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}

	update.ApplyTo(current)
	if err := s.store.ReplaceAt(index, *current); err != nil {
		return nil, err
	}
	return current, nil
}

// DeleteProduct removes the product with the given ID and returns the
// removed record.
func (s *ProductService) DeleteProduct(id string) (models.Product, error) {
	index, err := s.store.FindIndexByID(id)
	if err != nil {
		return models.Product{}, err
	}
	return s.store.RemoveAt(index)
}

// SearchProducts returns every product whose name contains the term,
// case-insensitively.
func (s *ProductService) SearchProducts(term string) []models.Product {
	term = strings.ToLower(term)
	matches := make([]models.Product, 0)
	for _, p := range s.store.ListAll() {
		if strings.Contains(strings.ToLower(p.Name), term) {
			matches = append(matches, p)
		}
	}
	return matches
}

// CategoryStats returns the number of products per category.
func (s *ProductService) CategoryStats() map[string]int {
	stats := make(map[string]int)
	for _, p := range s.store.ListAll() {
		stats[p.Category]++
	}
	return stats
}
