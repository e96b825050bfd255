package presenters

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"foodies-backend/domain"
)

// SuccessResponse writes the payload as-is. Handlers keep the wire shapes
// defined in domain.
func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(data)
}

// ErrorResponse writes the uniform error body.
func ErrorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// HandleError maps a service error onto its HTTP status. Anything not in
// the taxonomy surfaces as 500 "Server error".
func HandleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmailInUse):
		return ErrorResponse(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrWrongCredentials):
		return ErrorResponse(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrNotAuthorized),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid):
		return ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageNotAuthorized)
	case errors.Is(err, domain.ErrNotRecipeOwner),
		errors.Is(err, domain.ErrForbidden):
		return ErrorResponse(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return ErrorResponse(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrFollowSelf),
		errors.Is(err, domain.ErrUnknownIngredient),
		errors.Is(err, domain.ErrAvatarMissing):
		return ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	default:
		return ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageServerError)
	}
}

// AppErrorHandler is the fiber-level fallback for errors escaping handlers.
func AppErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ErrorResponse(c, fiberErr.Code, fiberErr.Message)
	}
	return ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageServerError)
}
