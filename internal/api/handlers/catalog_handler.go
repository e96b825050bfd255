package handlers

import (
	"github.com/gofiber/fiber/v2"

	"foodies-backend/domain"
	"foodies-backend/internal/api/presenters"
	"foodies-backend/internal/utils"
	"foodies-backend/pkg/catalog"
)

type (
	CatalogHandler interface {
		ListCategories(c *fiber.Ctx) error
		ListAreas(c *fiber.Ctx) error
		ListIngredients(c *fiber.Ctx) error
		ListTestimonials(c *fiber.Ctx) error
		All(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService) CatalogHandler {
	return &catalogHandler{catalogService: catalogService}
}

func (h *catalogHandler) ListCategories(c *fiber.Ctx) error {
	res, err := h.catalogService.ListCategories(c.Context())
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *catalogHandler) ListAreas(c *fiber.Ctx) error {
	res, err := h.catalogService.ListAreas(c.Context())
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *catalogHandler) ListIngredients(c *fiber.Ctx) error {
	res, err := h.catalogService.ListIngredients(c.Context())
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *catalogHandler) ListTestimonials(c *fiber.Ctx) error {
	res, err := h.catalogService.ListTestimonials(c.Context())
	if err != nil {
		return presenters.HandleError(c, err)
	}

	absolutizeTestimonials(utils.BaseURL(c), res.Items)
	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func absolutizeTestimonials(base string, items []domain.TestimonialResponse) {
	for i := range items {
		if items[i].Owner != nil {
			items[i].Owner.Avatar = utils.AbsolutizeAvatar(base, items[i].Owner.Avatar)
		}
	}
}

func (h *catalogHandler) All(c *fiber.Ctx) error {
	res, err := h.catalogService.All(c.Context())
	if err != nil {
		return presenters.HandleError(c, err)
	}

	base := utils.BaseURL(c)
	utils.AbsolutizeRecipes(base, res.Recipes.Items)
	for i := range res.Users.Items {
		res.Users.Items[i].Avatar = utils.AbsolutizeAvatar(base, res.Users.Items[i].Avatar)
	}
	absolutizeTestimonials(base, res.Testimonials.Items)
	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}
