package repositories

import (
	"errors"

	"bloglist/internal/models"
)

// ErrNotFound is returned when a record does not exist. Callers check it
// with errors.Is to map lookups of unknown ids to a 404 response.
var ErrNotFound = errors.New("not found")

// BlogRepository defines the interface for blog data access.
type BlogRepository interface {
	GetAll() ([]models.Blog, error)
	GetByID(id string) (*models.Blog, error)
	Create(blog *models.Blog) error
	Update(blog *models.Blog) error
	Delete(id string) error
}
