package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"foodies-backend/domain"
	"foodies-backend/internal/api/presenters"
	"foodies-backend/pkg/jwt"
	"foodies-backend/pkg/user"
)

type (
	Middleware interface {
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		CORSMiddleware() fiber.Handler
	}

	middleware struct {
		userRepository user.UserRepository
	}
)

func NewMiddleware(userRepository user.UserRepository) Middleware {
	return &middleware{userRepository: userRepository}
}

// AuthMiddleware resolves the bearer token to a user. Beyond the signature
// check it requires the presented token to equal the token stored on the
// user row, so logout and re-login revoke every earlier token immediately.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		scheme, token, found := strings.Cut(header, " ")
		if !found || scheme != "Bearer" || token == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageNotAuthorized)
		}

		userID, err := jwtService.GetUserIDByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageNotAuthorized)
		}

		authUser, err := m.userRepository.GetUserByID(c.Context(), userID)
		if err != nil || authUser.Token == nil || *authUser.Token != token {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageNotAuthorized)
		}

		c.Locals("user_id", authUser.ID)
		c.Locals("user", authUser)
		return c.Next()
	}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, OPTIONS",
	})
}
