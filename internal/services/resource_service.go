package services

import (
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// Event actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ResourceEvent describes one successful change to a collection.
type ResourceEvent struct {
	Resource   string    `json:"resource"`
	Action     string    `json:"action"`
	UUID       uuid.UUID `json:"uuid"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher delivers resource events to a broker. *rabbitmq.Client implements it.
type EventPublisher interface {
	PublishJSON(v interface{}) error
}

// ResourceService handles one collection: it forwards CRUD calls to the
// repository and announces successful changes.
type ResourceService[E models.Entity, D models.Draft[E], P models.Patch[E]] struct {
	name      string
	repo      repositories.Repository[E, D, P]
	publisher EventPublisher
}

// NewResourceService creates a new ResourceService. publisher may be nil.
func NewResourceService[E models.Entity, D models.Draft[E], P models.Patch[E]](name string, repo repositories.Repository[E, D, P], publisher EventPublisher) *ResourceService[E, D, P] {
	return &ResourceService[E, D, P]{
		name:      name,
		repo:      repo,
		publisher: publisher,
	}
}

// Name returns the resource name, e.g. "Category".
func (s *ResourceService[E, D, P]) Name() string {
	return s.name
}

// List retrieves every record.
func (s *ResourceService[E, D, P]) List() ([]E, error) {
	return s.repo.GetAll()
}

// Get retrieves a single record by its identifier.
func (s *ResourceService[E, D, P]) Get(id uuid.UUID) (*E, error) {
	return s.repo.GetByID(id)
}

// Create stores a new record built from draft.
func (s *ResourceService[E, D, P]) Create(draft D) (*E, error) {
	item, err := s.repo.Create(draft)
	if err != nil {
		return nil, err
	}
	s.publish(ActionCreated, (*item).Key())
	return item, nil
}

// Update applies patch to an existing record.
func (s *ResourceService[E, D, P]) Update(id uuid.UUID, patch P) (*E, error) {
	item, err := s.repo.Update(id, patch)
	if err != nil {
		return nil, err
	}
	s.publish(ActionUpdated, id)
	return item, nil
}

// Delete removes a record by its identifier.
func (s *ResourceService[E, D, P]) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish(ActionDeleted, id)
	return nil
}

// publish is best effort: a broker failure never fails the request.
func (s *ResourceService[E, D, P]) publish(action string, id uuid.UUID) {
	if s.publisher == nil {
		return
	}
	event := ResourceEvent{
		Resource:   s.name,
		Action:     action,
		UUID:       id,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishJSON(event); err != nil {
		log.Warnf("Failed to publish %s %s event for %s: %v", s.name, action, id, err)
	}
}
