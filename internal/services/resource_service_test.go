package services_test

import (
	"fmt"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(draft models.CreateCategory) (*models.Category, error) {
	args := m.Called(draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(id uuid.UUID, patch models.UpdateCategory) (*models.Category, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishJSON(v interface{}) error {
	args := m.Called(v)
	return args.Error(0)
}

var _ repositories.CategoryRepository = (*MockCategoryRepository)(nil)

func strPtr(s string) *string { return &s }
func u8Ptr(v uint8) *uint8    { return &v }

func eventFor(action string, id uuid.UUID) interface{} {
	return mock.MatchedBy(func(ev services.ResourceEvent) bool {
		return ev.Resource == "Category" && ev.Action == action && ev.UUID == id && !ev.OccurredAt.IsZero()
	})
}

func TestResourceService_List(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewResourceService[models.Category, models.CreateCategory, models.UpdateCategory]("Category", mockRepo, nil)

	expected := []models.Category{
		{UUID: uuid.New(), Name: "Books", Color: 5},
		{UUID: uuid.New(), Name: "Games", Color: 9},
	}
	mockRepo.On("GetAll").Return(expected, nil).Once()

	items, err := service.List()
	assert.NoError(t, err)
	assert.Equal(t, expected, items)
	assert.Equal(t, "Category", service.Name())
	mockRepo.AssertExpectations(t)
}

func TestResourceService_Get(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewResourceService[models.Category, models.CreateCategory, models.UpdateCategory]("Category", mockRepo, nil)

	expected := &models.Category{UUID: uuid.New(), Name: "Books", Color: 5}
	mockRepo.On("GetByID", expected.UUID).Return(expected, nil).Once()
	item, err := service.Get(expected.UUID)
	assert.NoError(t, err)
	assert.Equal(t, expected, item)

	missing := uuid.New()
	mockRepo.On("GetByID", missing).Return(nil, &repositories.NotFoundError{Resource: "Category", ID: missing}).Once()
	item, err = service.Get(missing)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, item)
	mockRepo.AssertExpectations(t)
}

func TestResourceService_CreatePublishesEvent(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	mockPub := new(MockPublisher)
	service := services.NewResourceService[models.Category, models.CreateCategory, models.UpdateCategory]("Category", mockRepo, mockPub)

	draft := models.CreateCategory{Name: strPtr("Books"), Color: u8Ptr(5)}
	created := &models.Category{UUID: uuid.New(), Name: "Books", Color: 5}
	mockRepo.On("Create", draft).Return(created, nil).Once()
	mockPub.On("PublishJSON", eventFor(services.ActionCreated, created.UUID)).Return(nil).Once()

	item, err := service.Create(draft)
	assert.NoError(t, err)
	assert.Equal(t, created, item)
	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestResourceService_PublishFailureDoesNotFailRequest(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	mockPub := new(MockPublisher)
	service := services.NewResourceService[models.Category, models.CreateCategory, models.UpdateCategory]("Category", mockRepo, mockPub)

	id := uuid.New()
	patch := models.UpdateCategory{Color: u8Ptr(7)}
	updated := &models.Category{UUID: id, Name: "Books", Color: 7}
	mockRepo.On("Update", id, patch).Return(updated, nil).Once()
	mockPub.On("PublishJSON", eventFor(services.ActionUpdated, id)).Return(fmt.Errorf("broker down")).Once()

	item, err := service.Update(id, patch)
	assert.NoError(t, err)
	assert.Equal(t, updated, item)
	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestResourceService_Delete(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	mockPub := new(MockPublisher)
	service := services.NewResourceService[models.Category, models.CreateCategory, models.UpdateCategory]("Category", mockRepo, mockPub)

	id := uuid.New()
	mockRepo.On("Delete", id).Return(nil).Once()
	mockPub.On("PublishJSON", eventFor(services.ActionDeleted, id)).Return(nil).Once()
	assert.NoError(t, service.Delete(id))

	// No event for a miss.
	missing := uuid.New()
	mockRepo.On("Delete", missing).Return(&repositories.NotFoundError{Resource: "Category", ID: missing}).Once()
	err := service.Delete(missing)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
	mockPub.AssertNumberOfCalls(t, "PublishJSON", 1)
}
