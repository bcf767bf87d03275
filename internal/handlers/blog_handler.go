package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"bloglist/internal/middleware"
	"bloglist/internal/models"
	"bloglist/internal/repositories"
	"bloglist/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BlogHandler handles HTTP requests for blogs.
type BlogHandler struct {
	blogService *services.BlogService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(blogService *services.BlogService, authService *services.AuthService) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the blog routes with the Fiber app. Create and
// delete require a valid bearer token; list, stats and update do not.
func (h *BlogHandler) RegisterRoutes(router fiber.Router) {
	blogRoutes := router.Group("/blogs")
	blogRoutes.Get("/", h.HandleGetBlogs)
	blogRoutes.Get("/stats", h.HandleBlogStats)
	blogRoutes.Post("/", middleware.AuthRequired(h.authService), h.HandleCreateBlog)
	blogRoutes.Put("/:id", h.HandleUpdateBlog)
	blogRoutes.Delete("/:id", middleware.AuthRequired(h.authService), h.HandleDeleteBlog)
}

// BlogRequest is the request body for creating or replacing a blog.
// Likes defaults to 0 when absent.
type BlogRequest struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author"`
	URL    string `json:"url" validate:"required"`
	Likes  int    `json:"likes" validate:"gte=0"`
}

// HandleGetBlogs returns all blogs with their owners inlined.
func (h *BlogHandler) HandleGetBlogs(c *fiber.Ctx) error {
	blogs, err := h.blogService.GetAllBlogs()
	if err != nil {
		log.Printf("Error getting all blogs: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not retrieve blogs",
		})
	}
	return c.JSON(blogs)
}

// HandleBlogStats returns summary statistics over the whole blog
// collection. The favorite is null when there are no blogs.
func (h *BlogHandler) HandleBlogStats(c *fiber.Ctx) error {
	blogs, err := h.blogService.GetAllBlogs()
	if err != nil {
		log.Printf("Error getting blogs for stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not retrieve blogs",
		})
	}
	return c.JSON(fiber.Map{
		"totalLikes": services.TotalLikes(blogs),
		"favorite":   services.FavoriteBlog(blogs),
	})
}

// HandleCreateBlog creates a new blog owned by the authenticated user.
func (h *BlogHandler) HandleCreateBlog(c *fiber.Ctx) error {
	var req BlogRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing blog request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationMessage(validationErrors[0]),
		})
	}

	userID, _ := c.Locals("user_id").(string)

	blog := &models.Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	}
	created, err := h.blogService.CreateBlog(blog, userID)
	if err != nil {
		log.Printf("Error creating blog: %v", err)
		if errors.Is(err, repositories.ErrNotFound) {
			// The token verified but its user no longer exists.
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "token missing or invalid",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not create blog",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateBlog replaces the title, author, url and likes of the blog
// identified in the path. No ownership check is performed here; the
// original product behavior restricts only create and delete.
func (h *BlogHandler) HandleUpdateBlog(c *fiber.Ctx) error {
	var req BlogRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing blog update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	blogID := c.Params("id")
	updated, err := h.blogService.UpdateBlog(blogID, &models.Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	})
	if err != nil {
		log.Printf("Error updating blog %s: %v", blogID, err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "blog not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not update blog",
		})
	}

	return c.JSON(updated)
}

// HandleDeleteBlog deletes the blog identified in the path if the
// authenticated user owns it.
func (h *BlogHandler) HandleDeleteBlog(c *fiber.Ctx) error {
	blogID := c.Params("id")
	userID, _ := c.Locals("user_id").(string)

	if err := h.blogService.DeleteBlog(blogID, userID); err != nil {
		log.Printf("Error deleting blog %s: %v", blogID, err)
		switch {
		case errors.Is(err, services.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "access denied",
			})
		case errors.Is(err, repositories.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "blog not found",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "could not delete blog",
			})
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// validationMessage renders a single field error the way the API reports
// validation failures, e.g. "title is required".
func validationMessage(e validator.FieldError) string {
	field := strings.ToLower(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "min":
		return fmt.Sprintf("%s needs to be at least %s characters long", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
