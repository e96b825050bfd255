package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodies-backend/entities"
	"foodies-backend/pkg/jwt"
	"foodies-backend/pkg/user"
)

// fakeUserRepository only backs GetUserByID; the embedded interface covers
// the methods the middleware never touches.
type fakeUserRepository struct {
	user.UserRepository
	users map[string]*entities.User
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func newAuthTestApp(repo *fakeUserRepository, jwtService jwt.JWTService) *fiber.App {
	app := fiber.New()
	m := NewMiddleware(repo)
	app.Get("/private", m.AuthMiddleware(jwtService), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("user_id").(string))
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	jwtService := jwt.NewJWTService()

	token := jwtService.GenerateToken("u1")
	staleToken := jwtService.GenerateToken("u2")

	repo := &fakeUserRepository{users: map[string]*entities.User{
		"u1": {ID: "u1", Token: &token},
		"u2": {ID: "u2", Token: nil},
	}}
	app := newAuthTestApp(repo, jwtService)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"missing header", "", fiber.StatusUnauthorized, `{"message":"Not authorized"}`},
		{"wrong scheme", "Basic " + token, fiber.StatusUnauthorized, `{"message":"Not authorized"}`},
		{"garbage token", "Bearer nonsense", fiber.StatusUnauthorized, `{"message":"Not authorized"}`},
		{"valid token", "Bearer " + token, fiber.StatusOK, "u1"},
		{"token cleared by logout", "Bearer " + staleToken, fiber.StatusUnauthorized, `{"message":"Not authorized"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/private", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, string(body))
			} else {
				assert.JSONEq(t, tt.wantBody, string(body))
			}
		})
	}
}

func TestAuthMiddlewareRevokedOnReLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	jwtService := jwt.NewJWTService()

	oldToken := jwtService.GenerateToken("u1")
	// Claims carry second precision; a later login inside the same second
	// would mint an identical token.
	time.Sleep(1100 * time.Millisecond)
	newToken := jwtService.GenerateToken("u1")

	repo := &fakeUserRepository{users: map[string]*entities.User{
		"u1": {ID: "u1", Token: &newToken},
	}}
	app := newAuthTestApp(repo, jwtService)

	// The earlier token still verifies cryptographically but no longer
	// matches the stored one.
	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+oldToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest("GET", "/private", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+newToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
