package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodies-backend/domain"
	"foodies-backend/internal/utils"
)

type stubAuthUserService struct {
	stubUserService

	registerRes domain.AuthResponse
	registerErr error
}

func (s *stubAuthUserService) Register(_ context.Context, _ domain.RegisterRequest) (domain.AuthResponse, error) {
	return s.registerRes, s.registerErr
}

func newRegisterTestApp(service *stubAuthUserService) *fiber.App {
	utils.InitValidator()
	handler := NewAuthHandler(service, utils.Validate)

	app := fiber.New()
	app.Post("/api/auth/register", handler.Register)
	return app
}

func TestRegisterAbsolutizesAvatar(t *testing.T) {
	avatar := "/avatars/u1.jpg"
	service := &stubAuthUserService{registerRes: domain.AuthResponse{
		User:  domain.AuthUser{ID: "u1", Name: "Ann", Email: "ann@example.com", Avatar: &avatar},
		Token: "tok",
	}}
	app := newRegisterTestApp(service)

	req := httptest.NewRequest("POST", "http://example.com/api/auth/register",
		strings.NewReader(`{"name":"Ann","email":"ann@example.com","password":"secret1","avatar":"/avatars/u1.jpg"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"avatar":"http://example.com/avatars/u1.jpg"`)
}

func TestRegisterEmailConflictStatus(t *testing.T) {
	service := &stubAuthUserService{registerErr: domain.ErrEmailInUse}
	app := newRegisterTestApp(service)

	req := httptest.NewRequest("POST", "/api/auth/register",
		strings.NewReader(`{"name":"Ann","email":"ann@example.com","password":"secret1"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Email in use"}`, string(body))
}
