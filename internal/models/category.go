package models

import "github.com/google/uuid"

// Category groups products by name and display color.
type Category struct {
	UUID  uuid.UUID `json:"uuid" gorm:"primaryKey;type:varchar(36)"`
	Name  string    `json:"name" gorm:"type:varchar(255)"`
	Color uint8     `json:"color"`
}

// Key returns the category's identifier.
func (c Category) Key() uuid.UUID { return c.UUID }

// CreateCategory is the body of POST /categories/.
type CreateCategory struct {
	Name  *string `json:"name" validate:"required"`
	Color *uint8  `json:"color" validate:"required"`
}

// Build creates a Category with the given identifier.
func (d CreateCategory) Build(id uuid.UUID) Category {
	return Category{
		UUID:  id,
		Name:  deref(d.Name),
		Color: deref(d.Color),
	}
}

// UpdateCategory is the body of PUT/PATCH /categories/:id.
type UpdateCategory struct {
	Name  *string `json:"name"`
	Color *uint8  `json:"color"`
}

// Apply overwrites the category fields present in the patch.
func (p UpdateCategory) Apply(c *Category) {
	set(&c.Name, p.Name)
	set(&c.Color, p.Color)
}
