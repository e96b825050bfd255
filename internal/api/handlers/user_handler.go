package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"foodies-backend/domain"
	"foodies-backend/internal/api/presenters"
	"foodies-backend/internal/utils"
	"foodies-backend/pkg/user"
)

type (
	UserHandler interface {
		ListUsers(c *fiber.Ctx) error
		GetUserDetails(c *fiber.Ctx) error
		ListFollowers(c *fiber.Ctx) error
		ListFollowing(c *fiber.Ctx) error
		ListFollowersByUserID(c *fiber.Ctx) error
		FollowUser(c *fiber.Ctx) error
		UnfollowUser(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
	}
)

func NewUserHandler(userService user.UserService) UserHandler {
	return &userHandler{userService: userService}
}

// parsePagination coerces page/limit query scalars, falling back to the
// defaults on non-numeric input.
func parsePagination(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = domain.DefaultPage
	}
	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = domain.DefaultLimit
	}
	return page, limit
}

func (h *userHandler) ListUsers(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	res, err := h.userService.ListUsers(c.Context(), domain.ListUsersQuery{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
	})
	if err != nil {
		return presenters.HandleError(c, err)
	}

	base := utils.BaseURL(c)
	for i := range res.Items {
		res.Items[i].Avatar = utils.AbsolutizeAvatar(base, res.Items[i].Avatar)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *userHandler) GetUserDetails(c *fiber.Ctx) error {
	res, err := h.userService.GetUserDetails(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, err)
	}

	res.Avatar = utils.AbsolutizeAvatar(utils.BaseURL(c), res.Avatar)
	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *userHandler) ListFollowers(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	items, err := h.userService.GetFollowers(c.Context(), userID)
	if err != nil {
		return presenters.HandleError(c, err)
	}

	absolutizeFollowUsers(utils.BaseURL(c), items)
	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"items": items, "total": len(items)})
}

func (h *userHandler) ListFollowing(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	items, err := h.userService.GetFollowing(c.Context(), userID)
	if err != nil {
		return presenters.HandleError(c, err)
	}

	absolutizeFollowUsers(utils.BaseURL(c), items)
	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"items": items, "total": len(items)})
}

func (h *userHandler) ListFollowersByUserID(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	res, err := h.userService.ListFollowersByUserID(c.Context(), c.Params("id"), page, limit)
	if err != nil {
		return presenters.HandleError(c, err)
	}

	absolutizeFollowUsers(utils.BaseURL(c), res.Items)
	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *userHandler) FollowUser(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	targetID := c.Params("id")

	// Self-follow is rejected here; the service additionally no-ops it.
	if userID == targetID {
		return presenters.HandleError(c, domain.ErrFollowSelf)
	}

	if err := h.userService.Follow(c.Context(), userID, targetID); err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": domain.MessageSuccessFollowUser})
}

func (h *userHandler) UnfollowUser(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	targetID := c.Params("id")

	if err := h.userService.Unfollow(c.Context(), userID, targetID); err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": domain.MessageSuccessUnfollowUser})
}

func absolutizeFollowUsers(base string, items []domain.FollowUser) {
	for i := range items {
		items[i].Avatar = utils.AbsolutizeAvatar(base, items[i].Avatar)
		for j := range items[i].Recipes {
			items[i].Recipes[j].Thumb = utils.AbsolutizePath(base, items[i].Recipes[j].Thumb)
		}
	}
}
