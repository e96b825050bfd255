package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"foodies-backend/domain"
	"foodies-backend/internal/api/presenters"
	"foodies-backend/internal/utils"
	"foodies-backend/pkg/user"
)

type (
	AuthHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		Current(c *fiber.Ctx) error
		UpdateAvatar(c *fiber.Ctx) error
	}

	authHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewAuthHandler(userService user.UserService, validator *validator.Validate) AuthHandler {
	return &authHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *authHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := h.userService.Register(c.Context(), *req)
	if err != nil {
		return presenters.HandleError(c, err)
	}

	res.User.Avatar = utils.AbsolutizeAvatar(utils.BaseURL(c), res.User.Avatar)
	return presenters.SuccessResponse(c, fiber.StatusCreated, res)
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		return presenters.HandleError(c, err)
	}

	res.User.Avatar = utils.AbsolutizeAvatar(utils.BaseURL(c), res.User.Avatar)
	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *authHandler) Logout(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	if err := h.userService.Logout(c.Context(), userID); err != nil {
		return presenters.HandleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *authHandler) Current(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.userService.Current(c.Context(), userID)
	if err != nil {
		return presenters.HandleError(c, err)
	}

	res.Avatar = utils.AbsolutizeAvatar(utils.BaseURL(c), res.Avatar)
	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *authHandler) UpdateAvatar(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	file, err := c.FormFile("avatar")
	if err != nil {
		return presenters.HandleError(c, domain.ErrAvatarMissing)
	}

	res, err := h.userService.UpdateAvatar(c.Context(), file, userID)
	if err != nil {
		return presenters.HandleError(c, err)
	}

	res.Avatar = utils.AbsolutizePath(utils.BaseURL(c), res.Avatar)
	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}
