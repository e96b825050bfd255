package handlers

import (
	"encoding/json"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"foodies-backend/domain"
	"foodies-backend/entities"
	"foodies-backend/internal/api/presenters"
	"foodies-backend/internal/utils"
	"foodies-backend/pkg/recipe"
)

type (
	RecipeHandler interface {
		ListRecipes(c *fiber.Ctx) error
		ListOwnRecipes(c *fiber.Ctx) error
		ListPopularRecipes(c *fiber.Ctx) error
		GetRecipeByID(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		AddFavorite(c *fiber.Ctx) error
		RemoveFavorite(c *fiber.Ctx) error
		ListFavoriteRecipes(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

// parseRecipeFilter reads the AND-combined listing predicates from the
// query string. ingredientIds arrives as a comma-separated list.
func parseRecipeFilter(c *fiber.Ctx) domain.RecipeFilter {
	filter := domain.RecipeFilter{
		OwnerID:  c.Query("ownerId"),
		Category: c.Query("category"),
		Area:     c.Query("area"),
		Search:   c.Query("search"),
	}
	if raw := c.Query("ingredientIds"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				filter.IngredientIDs = append(filter.IngredientIDs, id)
			}
		}
	}
	return filter
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.Contains(strings.ToLower(c.Get(fiber.HeaderContentType)), "multipart/form-data")
}

func (h *recipeHandler) ListRecipes(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	res, err := h.recipeService.ListRecipes(c.Context(), parseRecipeFilter(c), page, limit)
	if err != nil {
		return presenters.HandleError(c, err)
	}

	utils.AbsolutizeRecipes(utils.BaseURL(c), res.Items)
	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *recipeHandler) ListOwnRecipes(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	filter := parseRecipeFilter(c)
	filter.OwnerID = c.Locals("user_id").(string)

	res, err := h.recipeService.ListRecipes(c.Context(), filter, page, limit)
	if err != nil {
		return presenters.HandleError(c, err)
	}

	utils.AbsolutizeRecipes(utils.BaseURL(c), res.Items)
	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *recipeHandler) ListPopularRecipes(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	res, err := h.recipeService.ListPopularRecipes(c.Context(), page, limit)
	if err != nil {
		return presenters.HandleError(c, err)
	}

	utils.AbsolutizeRecipes(utils.BaseURL(c), res.Items)
	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *recipeHandler) GetRecipeByID(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipeByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, err)
	}

	utils.AbsolutizeRecipe(utils.BaseURL(c), &res)
	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

// parseCreateRequest accepts either a JSON body or a multipart form where
// text fields need numeric coercion and ingredients arrives as a JSON
// string.
func (h *recipeHandler) parseCreateRequest(c *fiber.Ctx) (*domain.CreateRecipeRequest, *multipart.FileHeader, error) {
	req := new(domain.CreateRecipeRequest)

	if !isMultipart(c) {
		if err := c.BodyParser(req); err != nil {
			return nil, nil, err
		}
		return req, nil, nil
	}

	req.Title = c.FormValue("title")
	req.Description = c.FormValue("description")
	req.Instructions = c.FormValue("instructions")
	req.Thumb = c.FormValue("thumb")
	req.Category = c.FormValue("category")
	req.Area = c.FormValue("area")
	if raw := strings.TrimSpace(c.FormValue("time")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			req.Time = &n
		}
	}
	if raw := c.FormValue("ingredients"); raw != "" {
		var refs []entities.IngredientRef
		if err := json.Unmarshal([]byte(raw), &refs); err == nil {
			req.Ingredients = refs
		}
	}

	thumb, err := c.FormFile("thumb")
	if err != nil {
		thumb = nil
	}
	return req, thumb, nil
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req, thumb, err := h.parseCreateRequest(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req, thumb, userID)
	if err != nil {
		return presenters.HandleError(c, err)
	}

	utils.AbsolutizeRecipe(utils.BaseURL(c), &res)
	return presenters.SuccessResponse(c, fiber.StatusCreated, res)
}

func (h *recipeHandler) parseUpdateRequest(c *fiber.Ctx) (*domain.UpdateRecipeRequest, *multipart.FileHeader, error) {
	req := new(domain.UpdateRecipeRequest)

	if !isMultipart(c) {
		if err := c.BodyParser(req); err != nil {
			return nil, nil, err
		}
		return req, nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, err
	}
	setIfPresent := func(key string, dst **string) {
		if vals, ok := form.Value[key]; ok && len(vals) > 0 {
			dst2 := vals[0]
			*dst = &dst2
		}
	}
	setIfPresent("title", &req.Title)
	setIfPresent("description", &req.Description)
	setIfPresent("instructions", &req.Instructions)
	setIfPresent("thumb", &req.Thumb)
	setIfPresent("category", &req.Category)
	setIfPresent("area", &req.Area)
	if vals, ok := form.Value["time"]; ok && len(vals) > 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(vals[0])); err == nil {
			req.Time = &n
		}
	}
	if vals, ok := form.Value["ingredients"]; ok && len(vals) > 0 {
		var refs []entities.IngredientRef
		if err := json.Unmarshal([]byte(vals[0]), &refs); err == nil {
			req.Ingredients = &refs
		}
	}

	thumb, err := c.FormFile("thumb")
	if err != nil {
		thumb = nil
	}
	return req, thumb, nil
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req, thumb, err := h.parseUpdateRequest(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), c.Params("id"), *req, thumb, userID)
	if err != nil {
		return presenters.HandleError(c, err)
	}

	utils.AbsolutizeRecipe(utils.BaseURL(c), &res)
	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.recipeService.DeleteRecipe(c.Context(), c.Params("id"), userID); err != nil {
		return presenters.HandleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *recipeHandler) AddFavorite(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	favorites, err := h.recipeService.AddFavorite(c.Context(), userID, c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, favoritesPayload(c, favorites))
}

func (h *recipeHandler) RemoveFavorite(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	favorites, err := h.recipeService.RemoveFavorite(c.Context(), userID, c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, favoritesPayload(c, favorites))
}

func (h *recipeHandler) ListFavoriteRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	favorites, err := h.recipeService.GetFavorites(c.Context(), userID)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, favoritesPayload(c, favorites))
}

// favoritesPayload shapes the user's favorites collection. Favorites stay
// unexpanded; only the thumbs are absolutized.
func favoritesPayload(c *fiber.Ctx, favorites []*entities.Recipe) fiber.Map {
	base := utils.BaseURL(c)
	for _, rec := range favorites {
		rec.Thumb = utils.AbsolutizePath(base, rec.Thumb)
	}
	if favorites == nil {
		favorites = []*entities.Recipe{}
	}
	return fiber.Map{"items": favorites, "total": len(favorites)}
}
