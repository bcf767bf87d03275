package services_test

import (
	"testing"

	"bloglist/internal/models"
	"bloglist/internal/repositories"
	"bloglist/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBlogRepository is a mock implementation of repositories.BlogRepository
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) GetAll() ([]models.Blog, error) {
	args := m.Called()
	return args.Get(0).([]models.Blog), args.Error(1)
}

func (m *MockBlogRepository) GetByID(id string) (*models.Blog, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Blog), args.Error(1)
}

func (m *MockBlogRepository) Create(blog *models.Blog) error {
	args := m.Called(blog)
	return args.Error(0)
}

func (m *MockBlogRepository) Update(blog *models.Blog) error {
	args := m.Called(blog)
	return args.Error(0)
}

func (m *MockBlogRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of services.BlogEventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishBlogCreated(event map[string]interface{}) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishBlogDeleted(event map[string]interface{}) error {
	args := m.Called(event)
	return args.Error(0)
}

func TestBlogService_GetAllBlogs_InlinesOwner(t *testing.T) {
	mockBlogRepo := new(MockBlogRepository)
	mockUserRepo := new(MockUserRepository)
	service := services.NewBlogService(mockBlogRepo, mockUserRepo, nil)

	owner := &models.User{ID: "user-1", Username: "root", Name: "Superuser"}
	blogs := []models.Blog{
		{ID: "blog-1", Title: "React patterns", URL: "https://reactpatterns.com/", Likes: 7, UserID: "user-1"},
	}

	mockBlogRepo.On("GetAll").Return(blogs, nil).Once()
	mockUserRepo.On("GetByID", "user-1").Return(owner, nil).Once()

	result, err := service.GetAllBlogs()
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.NotNil(t, result[0].User)
	assert.Equal(t, "root", result[0].User.Username)
	assert.Equal(t, "Superuser", result[0].User.Name)
	mockBlogRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestBlogService_GetAllBlogs_OwnerAlreadyLoaded(t *testing.T) {
	mockBlogRepo := new(MockBlogRepository)
	mockUserRepo := new(MockUserRepository)
	service := services.NewBlogService(mockBlogRepo, mockUserRepo, nil)

	owner := &models.User{ID: "user-1", Username: "root"}
	blogs := []models.Blog{
		{ID: "blog-1", Title: "React patterns", UserID: "user-1", User: owner},
	}

	mockBlogRepo.On("GetAll").Return(blogs, nil).Once()

	result, err := service.GetAllBlogs()
	assert.NoError(t, err)
	assert.Equal(t, owner, result[0].User)
	// No extra owner lookup when the repository already joined it
	mockUserRepo.AssertNotCalled(t, "GetByID", mock.Anything)
	mockBlogRepo.AssertExpectations(t)
}

func TestBlogService_CreateBlog(t *testing.T) {
	mockBlogRepo := new(MockBlogRepository)
	mockUserRepo := new(MockUserRepository)
	mockEvents := new(MockEventPublisher)
	service := services.NewBlogService(mockBlogRepo, mockUserRepo, mockEvents)

	owner := &models.User{ID: "user-1", Username: "root"}
	blog := &models.Blog{Title: "Go To Statement Considered Harmful", URL: "https://example.com/gotos"}

	mockUserRepo.On("GetByID", "user-1").Return(owner, nil).Once()
	mockBlogRepo.On("Create", blog).Return(nil).Once()
	mockEvents.On("PublishBlogCreated", mock.Anything).Return(nil).Once()

	created, err := service.CreateBlog(blog, "user-1")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", created.UserID)
	mockUserRepo.AssertExpectations(t)
	mockBlogRepo.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestBlogService_CreateBlog_UnknownOwner(t *testing.T) {
	mockBlogRepo := new(MockBlogRepository)
	mockUserRepo := new(MockUserRepository)
	service := services.NewBlogService(mockBlogRepo, mockUserRepo, nil)

	mockUserRepo.On("GetByID", "ghost").Return(nil, notFoundErr("user with ID ghost")).Once()

	created, err := service.CreateBlog(&models.Blog{Title: "t", URL: "u"}, "ghost")
	assert.Nil(t, created)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockBlogRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockUserRepo.AssertExpectations(t)
}

func TestBlogService_CreateBlog_NoPublisher(t *testing.T) {
	mockBlogRepo := new(MockBlogRepository)
	mockUserRepo := new(MockUserRepository)
	service := services.NewBlogService(mockBlogRepo, mockUserRepo, nil)

	owner := &models.User{ID: "user-1", Username: "root"}
	blog := &models.Blog{Title: "No broker configured", URL: "https://example.com"}

	mockUserRepo.On("GetByID", "user-1").Return(owner, nil).Once()
	mockBlogRepo.On("Create", blog).Return(nil).Once()

	_, err := service.CreateBlog(blog, "user-1")
	assert.NoError(t, err)
	mockBlogRepo.AssertExpectations(t)
}

func TestBlogService_UpdateBlog(t *testing.T) {
	mockBlogRepo := new(MockBlogRepository)
	mockUserRepo := new(MockUserRepository)
	service := services.NewBlogService(mockBlogRepo, mockUserRepo, nil)

	existing := &models.Blog{ID: "blog-1", Title: "Old", Author: "A", URL: "https://old", Likes: 1, UserID: "user-1"}

	mockBlogRepo.On("GetByID", "blog-1").Return(existing, nil).Once()
	mockBlogRepo.On("Update", mock.AnythingOfType("*models.Blog")).Return(nil).Once()

	// Wholesale replacement: absent fields are overwritten with zero values
	updated, err := service.UpdateBlog("blog-1", &models.Blog{Title: "New", Likes: 2})
	assert.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "", updated.Author)
	assert.Equal(t, "", updated.URL)
	assert.Equal(t, 2, updated.Likes)
	// The owner is never reassigned by an update
	assert.Equal(t, "user-1", updated.UserID)
	mockBlogRepo.AssertExpectations(t)
}

func TestBlogService_UpdateBlog_NotFound(t *testing.T) {
	mockBlogRepo := new(MockBlogRepository)
	mockUserRepo := new(MockUserRepository)
	service := services.NewBlogService(mockBlogRepo, mockUserRepo, nil)

	mockBlogRepo.On("GetByID", "missing").Return(nil, notFoundErr("blog with ID missing")).Once()

	updated, err := service.UpdateBlog("missing", &models.Blog{Title: "t"})
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockBlogRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestBlogService_DeleteBlog(t *testing.T) {
	mockBlogRepo := new(MockBlogRepository)
	mockUserRepo := new(MockUserRepository)
	mockEvents := new(MockEventPublisher)
	service := services.NewBlogService(mockBlogRepo, mockUserRepo, mockEvents)

	blog := &models.Blog{ID: "blog-1", Title: "Mine", UserID: "user-1"}

	mockBlogRepo.On("GetByID", "blog-1").Return(blog, nil).Once()
	mockBlogRepo.On("Delete", "blog-1").Return(nil).Once()
	mockEvents.On("PublishBlogDeleted", mock.Anything).Return(nil).Once()

	err := service.DeleteBlog("blog-1", "user-1")
	assert.NoError(t, err)
	mockBlogRepo.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestBlogService_DeleteBlog_NotOwner(t *testing.T) {
	mockBlogRepo := new(MockBlogRepository)
	mockUserRepo := new(MockUserRepository)
	service := services.NewBlogService(mockBlogRepo, mockUserRepo, nil)

	blog := &models.Blog{ID: "blog-1", Title: "Someone else's", UserID: "user-1"}

	mockBlogRepo.On("GetByID", "blog-1").Return(blog, nil).Once()

	err := service.DeleteBlog("blog-1", "user-2")
	assert.ErrorIs(t, err, services.ErrForbidden)
	mockBlogRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestBlogService_DeleteBlog_NotFound(t *testing.T) {
	mockBlogRepo := new(MockBlogRepository)
	mockUserRepo := new(MockUserRepository)
	service := services.NewBlogService(mockBlogRepo, mockUserRepo, nil)

	mockBlogRepo.On("GetByID", "missing").Return(nil, notFoundErr("blog with ID missing")).Once()

	err := service.DeleteBlog("missing", "user-1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockBlogRepo.AssertNotCalled(t, "Delete", mock.Anything)
}
