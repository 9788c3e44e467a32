package repositories

import (
	"sync"

	"storefront/internal/models"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory implementation of Repository.
// Records are kept in insertion order and looked up by linear scan; a single
// mutex is held for the whole of every operation.
type MemoryRepository[E models.Entity, D models.Draft[E], P models.Patch[E]] struct {
	resource string
	items    []E
	mu       sync.Mutex
	newID    func() uuid.UUID
}

// NewMemoryRepository creates an empty collection. resource names the entity
// kind in NotFound errors.
func NewMemoryRepository[E models.Entity, D models.Draft[E], P models.Patch[E]](resource string) *MemoryRepository[E, D, P] {
	return &MemoryRepository[E, D, P]{
		resource: resource,
		items:    make([]E, 0),
		newID:    uuid.New,
	}
}

// GetAll returns a copy of all records.
func (r *MemoryRepository[E, D, P]) GetAll() ([]E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]E, len(r.items))
	copy(out, r.items)
	return out, nil
}

// GetByID returns a record by its identifier.
func (r *MemoryRepository[E, D, P]) GetByID(id uuid.UUID) (*E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, &NotFoundError{Resource: r.resource, ID: id}
	}
	item := r.items[i]
	return &item, nil
}

// Create builds a record from draft under a fresh identifier and appends it.
func (r *MemoryRepository[E, D, P]) Create(draft D) (*E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.newID()
	for r.indexOf(id) >= 0 {
		id = r.newID()
	}
	item := draft.Build(id)
	r.items = append(r.items, item)
	return &item, nil
}

// Update applies patch to the stored record.
func (r *MemoryRepository[E, D, P]) Update(id uuid.UUID, patch P) (*E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, &NotFoundError{Resource: r.resource, ID: id}
	}
	patch.Apply(&r.items[i])
	item := r.items[i]
	return &item, nil
}

// Delete removes a record, keeping the order of the rest.
func (r *MemoryRepository[E, D, P]) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return &NotFoundError{Resource: r.resource, ID: id}
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return nil
}

// indexOf must be called with mu held.
func (r *MemoryRepository[E, D, P]) indexOf(id uuid.UUID) int {
	for i := range r.items {
		if r.items[i].Key() == id {
			return i
		}
	}
	return -1
}
