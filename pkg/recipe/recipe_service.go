package recipe

import (
	"context"
	"errors"
	"mime/multipart"

	"gorm.io/gorm"

	"foodies-backend/domain"
	"foodies-backend/entities"
	"foodies-backend/internal/utils/storage"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, thumb *multipart.FileHeader, ownerID string) (domain.RecipeResponse, error)
		GetRecipeByID(ctx context.Context, id string) (domain.RecipeResponse, error)
		ListRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int) (domain.RecipeListResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, thumb *multipart.FileHeader, userID string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id string, userID string) error
		ListPopularRecipes(ctx context.Context, page, limit int) (domain.RecipeListResponse, error)

		AddFavorite(ctx context.Context, userID, recipeID string) ([]*entities.Recipe, error)
		RemoveFavorite(ctx context.Context, userID, recipeID string) ([]*entities.Recipe, error)
		GetFavorites(ctx context.Context, userID string) ([]*entities.Recipe, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		storage          storage.Storage
	}
)

func NewRecipeService(recipeRepository RecipeRepository, storage storage.Storage) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		storage:          storage,
	}
}

// validateIngredients rejects embedded ingredient ids that do not resolve
// against the ingredient reference table.
func (s *recipeService) validateIngredients(ctx context.Context, refs []entities.IngredientRef) error {
	if len(refs) == 0 {
		return nil
	}
	unique := make(map[string]struct{}, len(refs))
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		if _, seen := unique[ref.ID]; seen {
			continue
		}
		unique[ref.ID] = struct{}{}
		ids = append(ids, ref.ID)
	}
	count, err := s.recipeRepository.CountIngredientsByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return domain.ErrUnknownIngredient
	}
	return nil
}

// expandRecipes resolves the embedded ingredient lists of a batch of
// recipes with a single bulk fetch. Ids that no longer resolve are dropped
// from ingredientsDetailed without an error.
func (s *recipeService) expandRecipes(ctx context.Context, recipes []*entities.Recipe) ([]domain.RecipeResponse, error) {
	idSet := make(map[string]struct{})
	var ids []string
	for _, rec := range recipes {
		for _, ref := range rec.Ingredients {
			if _, seen := idSet[ref.ID]; seen {
				continue
			}
			idSet[ref.ID] = struct{}{}
			ids = append(ids, ref.ID)
		}
	}

	ingredients, err := s.recipeRepository.GetIngredientsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entities.Ingredient, len(ingredients))
	for _, ing := range ingredients {
		byID[ing.ID] = ing
	}

	responses := make([]domain.RecipeResponse, 0, len(recipes))
	for _, rec := range recipes {
		detailed := make([]domain.IngredientDetail, 0, len(rec.Ingredients))
		for _, ref := range rec.Ingredients {
			ing, ok := byID[ref.ID]
			if !ok {
				continue
			}
			detailed = append(detailed, domain.IngredientDetail{
				ID:          ing.ID,
				Name:        ing.Name,
				Description: ing.Description,
				Image:       ing.Image,
				Measure:     ref.Measure,
			})
		}

		res := domain.RecipeResponse{
			ID:                  rec.ID,
			Title:               rec.Title,
			Description:         rec.Description,
			Instructions:        rec.Instructions,
			Thumb:               rec.Thumb,
			Time:                rec.Time,
			Category:            rec.Category,
			Area:                rec.Area,
			OwnerID:             rec.OwnerID,
			Ingredients:         rec.Ingredients,
			IngredientsDetailed: detailed,
			CreatedAt:           rec.CreatedAt,
			UpdatedAt:           rec.UpdatedAt,
		}
		if rec.Owner != nil {
			res.Owner = &domain.RecipeOwner{
				ID:     rec.Owner.ID,
				Name:   rec.Owner.Name,
				Email:  rec.Owner.Email,
				Avatar: rec.Owner.Avatar,
			}
		}
		responses = append(responses, res)
	}
	return responses, nil
}

func (s *recipeService) expandRecipe(ctx context.Context, rec *entities.Recipe) (domain.RecipeResponse, error) {
	expanded, err := s.expandRecipes(ctx, []*entities.Recipe{rec})
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return expanded[0], nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, thumb *multipart.FileHeader, ownerID string) (domain.RecipeResponse, error) {
	if err := s.validateIngredients(ctx, req.Ingredients); err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		ID:           domain.NewID(),
		Title:        req.Title,
		Description:  req.Description,
		Instructions: req.Instructions,
		Thumb:        req.Thumb,
		Time:         req.Time,
		Category:     req.Category,
		Area:         req.Area,
		OwnerID:      ownerID,
		Ingredients:  entities.IngredientRefs(req.Ingredients),
	}
	if recipe.Ingredients == nil {
		recipe.Ingredients = entities.IngredientRefs{}
	}

	if thumb != nil {
		path, err := s.storage.SaveRecipeThumb(ctx, thumb, recipe.ID)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		recipe.Thumb = path
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return s.GetRecipeByID(ctx, recipe.ID)
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	return s.expandRecipe(ctx, recipe)
}

func (s *recipeService) ListRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int) (domain.RecipeListResponse, error) {
	page, limit = domain.NormalizePage(page, limit)

	recipes, total, err := s.recipeRepository.ListRecipes(ctx, filter, page, limit)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	items, err := s.expandRecipes(ctx, recipes)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	return domain.RecipeListResponse{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, thumb *multipart.FileHeader, userID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	if recipe.OwnerID != userID {
		return domain.RecipeResponse{}, domain.ErrNotRecipeOwner
	}

	if req.Title != nil {
		recipe.Title = *req.Title
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.Instructions != nil {
		recipe.Instructions = *req.Instructions
	}
	if req.Thumb != nil {
		recipe.Thumb = *req.Thumb
	}
	if req.Time != nil {
		recipe.Time = req.Time
	}
	if req.Category != nil {
		recipe.Category = *req.Category
	}
	if req.Area != nil {
		recipe.Area = *req.Area
	}
	if req.Ingredients != nil {
		if err := s.validateIngredients(ctx, *req.Ingredients); err != nil {
			return domain.RecipeResponse{}, err
		}
		recipe.Ingredients = entities.IngredientRefs(*req.Ingredients)
	}

	if thumb != nil {
		path, err := s.storage.SaveRecipeThumb(ctx, thumb, recipe.ID)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		recipe.Thumb = path
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return s.GetRecipeByID(ctx, id)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	if recipe.OwnerID != userID {
		return domain.ErrNotRecipeOwner
	}
	return s.recipeRepository.DeleteRecipe(ctx, id)
}

// ListPopularRecipes ranks recipes by favorite count. The pagination window
// runs over the grouped favorites, not over recipes; recipes whose rows have
// vanished (a dangling favorite) are skipped and shrink the page without
// changing the total.
func (s *recipeService) ListPopularRecipes(ctx context.Context, page, limit int) (domain.RecipeListResponse, error) {
	page, limit = domain.NormalizePage(page, limit)

	total, err := s.recipeRepository.CountFavoritedRecipes(ctx)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}
	if total == 0 {
		return domain.RecipeListResponse{
			Items: []domain.RecipeResponse{},
			Total: 0,
			Page:  page,
			Limit: limit,
		}, nil
	}

	groups, err := s.recipeRepository.ListPopularGroups(ctx, page, limit)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	ids := make([]string, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.RecipeID)
	}

	recipes, err := s.recipeRepository.GetRecipesByIDs(ctx, ids)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}
	byID := make(map[string]*entities.Recipe, len(recipes))
	for _, rec := range recipes {
		byID[rec.ID] = rec
	}

	ordered := make([]*entities.Recipe, 0, len(groups))
	counts := make([]int64, 0, len(groups))
	for _, g := range groups {
		rec, ok := byID[g.RecipeID]
		if !ok {
			continue
		}
		ordered = append(ordered, rec)
		counts = append(counts, g.FavoritesCount)
	}

	items, err := s.expandRecipes(ctx, ordered)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}
	for i := range items {
		count := counts[i]
		items[i].FavoritesCount = &count
	}

	return domain.RecipeListResponse{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *recipeService) AddFavorite(ctx context.Context, userID, recipeID string) ([]*entities.Recipe, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID, false); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	if err := s.recipeRepository.AddFavorite(ctx, userID, recipeID); err != nil {
		return nil, err
	}
	return s.recipeRepository.GetFavoriteRecipes(ctx, userID)
}

func (s *recipeService) RemoveFavorite(ctx context.Context, userID, recipeID string) ([]*entities.Recipe, error) {
	if err := s.recipeRepository.RemoveFavorite(ctx, userID, recipeID); err != nil {
		return nil, err
	}
	return s.recipeRepository.GetFavoriteRecipes(ctx, userID)
}

func (s *recipeService) GetFavorites(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	return s.recipeRepository.GetFavoriteRecipes(ctx, userID)
}
