package models

import "github.com/google/uuid"

// Product represents a product in the store.
type Product struct {
	UUID        uuid.UUID `json:"uuid" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(255)"`
	Description string    `json:"description"`
	Price       int32     `json:"price"`
	Stock       int32     `json:"stock"`
}

// Key returns the product's identifier.
func (p Product) Key() uuid.UUID { return p.UUID }

// CreateProduct is the body of POST /products/.
type CreateProduct struct {
	Name        *string `json:"name" validate:"required"`
	Description *string `json:"description" validate:"required"`
	Price       *int32  `json:"price" validate:"required"`
	Stock       *int32  `json:"stock" validate:"required"`
}

// Build creates a Product with the given identifier.
func (d CreateProduct) Build(id uuid.UUID) Product {
	return Product{
		UUID:        id,
		Name:        deref(d.Name),
		Description: deref(d.Description),
		Price:       deref(d.Price),
		Stock:       deref(d.Stock),
	}
}

// UpdateProduct is the body of PUT/PATCH /products/:id.
type UpdateProduct struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int32  `json:"price"`
	Stock       *int32  `json:"stock"`
}

// Apply overwrites the product fields present in the patch.
func (p UpdateProduct) Apply(pr *Product) {
	set(&pr.Name, p.Name)
	set(&pr.Description, p.Description)
	set(&pr.Price, p.Price)
	set(&pr.Stock, p.Stock)
}
