package repositories

import (
	"errors"
	"fmt"
	"sync"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMRepository is a GORM implementation of Repository. The entity type must
// be a gorm model whose primary key column is "uuid".
type GORMRepository[E models.Entity, D models.Draft[E], P models.Patch[E]] struct {
	db       *gorm.DB
	resource string
	mu       sync.Mutex // serializes operations on this table
	newID    func() uuid.UUID
}

// NewGORMRepository creates a new instance of GORMRepository.
func NewGORMRepository[E models.Entity, D models.Draft[E], P models.Patch[E]](db *gorm.DB, resource string) *GORMRepository[E, D, P] {
	return &GORMRepository[E, D, P]{
		db:       db,
		resource: resource,
		newID:    uuid.New,
	}
}

// GetAll retrieves all records from the table.
func (r *GORMRepository[E, D, P]) GetAll() ([]E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]E, 0)
	if err := r.db.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get all %s records: %w", r.resource, err)
	}
	return items, nil
}

// GetByID retrieves a single record by its identifier.
func (r *GORMRepository[E, D, P]) GetByID(id uuid.UUID) (*E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.first(r.db, id)
}

// Create inserts a record built from draft under a fresh identifier.
func (r *GORMRepository[E, D, P]) Create(draft D) (*E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var item E
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for {
			id := r.newID()
			var n int64
			if err := tx.Model(new(E)).Where("uuid = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				item = draft.Build(id)
				break
			}
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", r.resource, err)
	}
	return &item, nil
}

// Update loads the record, applies patch and saves every column back.
func (r *GORMRepository[E, D, P]) Update(id uuid.UUID, patch P) (*E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var updated *E
	err := r.db.Transaction(func(tx *gorm.DB) error {
		item, err := r.first(tx, id)
		if err != nil {
			return err
		}
		patch.Apply(item)
		if err := tx.Save(item).Error; err != nil {
			return fmt.Errorf("failed to update %s: %w", r.resource, err)
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete deletes a record by its identifier.
func (r *GORMRepository[E, D, P]) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := r.db.Delete(new(E), "uuid = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", r.resource, res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Resource: r.resource, ID: id}
	}
	return nil
}

func (r *GORMRepository[E, D, P]) first(db *gorm.DB, id uuid.UUID) (*E, error) {
	var item E
	if err := db.First(&item, "uuid = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: r.resource, ID: id}
		}
		return nil, fmt.Errorf("failed to get %s by ID %s: %w", r.resource, id, err)
	}
	return &item, nil
}
