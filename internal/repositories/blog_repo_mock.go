package repositories

import (
	"fmt"
	"sync"

	"bloglist/internal/models"

	"github.com/google/uuid"
)

// MockBlogRepository is an in-memory implementation of BlogRepository.
type MockBlogRepository struct {
	blogs map[string]models.Blog
	mu    sync.RWMutex
}

// NewMockBlogRepository creates a new instance of MockBlogRepository.
func NewMockBlogRepository() *MockBlogRepository {
	return &MockBlogRepository{
		blogs: make(map[string]models.Blog),
	}
}

// GetAll returns all blogs.
func (r *MockBlogRepository) GetAll() ([]models.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	blogList := make([]models.Blog, 0, len(r.blogs))
	for _, b := range r.blogs {
		blogList = append(blogList, b)
	}
	return blogList, nil
}

// GetByID returns a blog by its ID.
func (r *MockBlogRepository) GetByID(id string) (*models.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	blog, ok := r.blogs[id]
	if !ok {
		return nil, fmt.Errorf("blog with ID %s: %w", id, ErrNotFound)
	}
	return &blog, nil
}

// Create adds a new blog.
func (r *MockBlogRepository) Create(blog *models.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if blog.ID == "" {
		blog.ID = uuid.New().String()
	}
	r.blogs[blog.ID] = *blog
	return nil
}

// Update replaces an existing blog.
func (r *MockBlogRepository) Update(blog *models.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.blogs[blog.ID]
	if !ok {
		return fmt.Errorf("blog with ID %s: %w", blog.ID, ErrNotFound)
	}
	r.blogs[blog.ID] = *blog
	return nil
}

// Delete removes a blog by its ID.
func (r *MockBlogRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.blogs[id]
	if !ok {
		return fmt.Errorf("blog with ID %s: %w", id, ErrNotFound)
	}
	delete(r.blogs, id)
	return nil
}
