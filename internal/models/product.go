package models

// Product represents a product in the catalog.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
}

// CreateProductRequest is the request body for creating a product.
// Fields are pointers so a missing field is distinguishable from a zero
// value: `price: 0` and `inStock: false` are valid inputs, an omitted
// field is not.
type CreateProductRequest struct {
	Name        *string  `json:"name" validate:"required"`
	Description *string  `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Category    *string  `json:"category" validate:"required"`
	InStock     *bool    `json:"inStock" validate:"required"`
}

// Product builds a Product from the request. The store assigns the ID.
func (r *CreateProductRequest) Product() Product {
	return Product{
		Name:        *r.Name,
		Description: *r.Description,
		Price:       *r.Price,
		Category:    *r.Category,
		InStock:     *r.InStock,
	}
}

// UpdateProductRequest is the request body for a partial product update.
// Every field is optional; a field present in the body overwrites the
// stored value, an absent field is left alone. That includes ID, matching
// the shallow-merge behavior existing clients rely on.
type UpdateProductRequest struct {
	ID          *string  `json:"id"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	InStock     *bool    `json:"inStock"`
}

// ApplyTo merges the request onto an existing product.
func (r *UpdateProductRequest) ApplyTo(p *Product) {
	if r.ID != nil {
		p.ID = *r.ID
	}
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Category != nil {
		p.Category = *r.Category
	}
	if r.InStock != nil {
		p.InStock = *r.InStock
	}
}

// ProductPage is the response envelope for the paginated product listing.
// Total counts the filtered set, not the returned window.
type ProductPage struct {
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	Products []Product `json:"products"`
}
