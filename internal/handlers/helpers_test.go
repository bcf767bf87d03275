package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"bloglist/internal/handlers"
	"bloglist/internal/repositories"
	"bloglist/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test_jwt_secret"

// newTestApp wires the handlers onto a Fiber app backed by the in-memory
// repositories, mirroring the route setup in main.
func newTestApp() *fiber.App {
	blogRepo := repositories.NewMockBlogRepository()
	userRepo := repositories.NewMockUserRepository()
	authService := services.NewAuthService(userRepo, testJWTSecret)
	blogService := services.NewBlogService(blogRepo, userRepo, nil)

	app := fiber.New()
	api := app.Group("/api")
	handlers.NewBlogHandler(blogService, authService).RegisterRoutes(api)
	handlers.NewUserHandler(authService).RegisterRoutes(api)
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown endpoint",
		})
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func jsonBody(t *testing.T, body interface{}) io.Reader {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewReader(payload)
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}

// registerAndLogin creates a user over the API and returns a bearer token
// for it.
func registerAndLogin(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()

	resp := doRequest(t, app, http.MethodPost, "/api/users", "", fiber.Map{
		"username": username,
		"name":     "Test User",
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/login", "", fiber.Map{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}
