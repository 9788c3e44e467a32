package repositories

import (
	"storefront/internal/models"

	"github.com/google/uuid"
)

// Repository defines data access for one collection of entities.
// Every implementation serializes operations on the same collection.
type Repository[E models.Entity, D models.Draft[E], P models.Patch[E]] interface {
	GetAll() ([]E, error)
	GetByID(id uuid.UUID) (*E, error)
	Create(draft D) (*E, error)
	Update(id uuid.UUID, patch P) (*E, error)
	Delete(id uuid.UUID) error
}

type (
	UserRepository     = Repository[models.User, models.CreateUser, models.UpdateUser]
	ProductRepository  = Repository[models.Product, models.CreateProduct, models.UpdateProduct]
	CategoryRepository = Repository[models.Category, models.CreateCategory, models.UpdateCategory]
)
