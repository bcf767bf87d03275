package services

import (
	"errors"
	"fmt"
	"log"

	"bloglist/internal/models"
	"bloglist/internal/repositories"
)

// ErrForbidden is returned when an authenticated user tries to delete a
// blog owned by someone else.
var ErrForbidden = errors.New("access denied")

// BlogEventPublisher publishes blog activity events to a message broker.
// A nil publisher disables event publishing.
type BlogEventPublisher interface {
	PublishBlogCreated(event map[string]interface{}) error
	PublishBlogDeleted(event map[string]interface{}) error
}

// BlogService handles business logic related to blogs.
type BlogService struct {
	blogRepo repositories.BlogRepository
	userRepo repositories.UserRepository
	events   BlogEventPublisher
}

// NewBlogService creates a new BlogService.
func NewBlogService(blogRepo repositories.BlogRepository, userRepo repositories.UserRepository, events BlogEventPublisher) *BlogService {
	return &BlogService{
		blogRepo: blogRepo,
		userRepo: userRepo,
		events:   events,
	}
}

// GetAllBlogs retrieves all blogs with their owner's username and name
// inlined. Owners missing from the store (a dangling reference) are left
// nil rather than failing the whole listing.
func (s *BlogService) GetAllBlogs() ([]models.Blog, error) {
	blogs, err := s.blogRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range blogs {
		if blogs[i].User != nil || blogs[i].UserID == "" {
			continue
		}
		owner, err := s.userRepo.GetByID(blogs[i].UserID)
		if err != nil {
			continue
		}
		blogs[i].User = owner
	}
	return blogs, nil
}

// CreateBlog persists a new blog owned by the given user. The owner must
// exist; the blog's id is assigned by the repository.
func (s *BlogService) CreateBlog(blog *models.Blog, userID string) (*models.Blog, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("blog owner lookup failed: %w", err)
	}

	blog.UserID = user.ID
	if err := s.blogRepo.Create(blog); err != nil {
		return nil, err
	}

	if s.events != nil {
		event := map[string]interface{}{
			"event":    "blog_created",
			"blog_id":  blog.ID,
			"title":    blog.Title,
			"user_id":  user.ID,
			"username": user.Username,
		}
		if err := s.events.PublishBlogCreated(event); err != nil {
			// Activity events are best effort; the write already succeeded.
			log.Printf("Failed to publish blog created event: %v", err)
		}
	}

	return blog, nil
}

// UpdateBlog replaces the title, author, url and likes of an existing
// blog wholesale. The owner is never reassigned. Returns ErrNotFound
// (wrapped) when the id does not resolve.
func (s *BlogService) UpdateBlog(id string, blog *models.Blog) (*models.Blog, error) {
	existing, err := s.blogRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	existing.Title = blog.Title
	existing.Author = blog.Author
	existing.URL = blog.URL
	existing.Likes = blog.Likes

	if err := s.blogRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteBlog removes a blog. Only the owner may delete it; the blog's id
// disappears from the owner's blog set in the same operation.
func (s *BlogService) DeleteBlog(id, userID string) error {
	blog, err := s.blogRepo.GetByID(id)
	if err != nil {
		return err
	}

	if blog.UserID != userID {
		return ErrForbidden
	}

	if err := s.blogRepo.Delete(id); err != nil {
		return err
	}

	if s.events != nil {
		event := map[string]interface{}{
			"event":   "blog_deleted",
			"blog_id": blog.ID,
			"title":   blog.Title,
			"user_id": userID,
		}
		if err := s.events.PublishBlogDeleted(event); err != nil {
			log.Printf("Failed to publish blog deleted event: %v", err)
		}
	}

	return nil
}
