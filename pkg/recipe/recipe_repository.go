package recipe

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"foodies-backend/domain"
	"foodies-backend/entities"
)

type (
	// PopularGroup is one row of the favorites grouping: a recipe id with
	// its favorite count.
	PopularGroup struct {
		RecipeID       string `gorm:"column:recipe_id"`
		FavoritesCount int64  `gorm:"column:favorites_count"`
	}

	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string, includeOwner bool) (*entities.Recipe, error)
		GetRecipesByIDs(ctx context.Context, ids []string) ([]*entities.Recipe, error)
		ListRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int) ([]*entities.Recipe, int64, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id string) error

		GetIngredientsByIDs(ctx context.Context, ids []string) ([]*entities.Ingredient, error)
		CountIngredientsByIDs(ctx context.Context, ids []string) (int64, error)

		AddFavorite(ctx context.Context, userID, recipeID string) error
		RemoveFavorite(ctx context.Context, userID, recipeID string) error
		GetFavoriteRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error)
		CountFavoritedRecipes(ctx context.Context) (int64, error)
		ListPopularGroups(ctx context.Context, page, limit int) ([]PopularGroup, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string, includeOwner bool) (*entities.Recipe, error) {
	var recipe entities.Recipe
	query := r.db.WithContext(ctx)
	if includeOwner {
		query = query.Preload("Owner")
	}
	if err := query.Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipesByIDs(ctx context.Context, ids []string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if len(ids) == 0 {
		return recipes, nil
	}
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("id IN ?", ids).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// containmentArg builds the jsonb value for an `ingredients @> ?` test
// matching any list that embeds the given ingredient id.
func containmentArg(id string) string {
	arg, _ := json.Marshal([]entities.IngredientRef{{ID: id}})
	return string(arg)
}

func (r *recipeRepository) ListRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Recipe{})
	if filter.OwnerID != "" {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Area != "" {
		query = query.Where("area = ?", filter.Area)
	}
	if filter.Search != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Search+"%")
	}
	if len(filter.IngredientIDs) > 0 {
		// A recipe qualifies when it contains at least one of the ids.
		contains := r.db.Where("ingredients @> ?", containmentArg(filter.IngredientIDs[0]))
		for _, id := range filter.IngredientIDs[1:] {
			contains = contains.Or("ingredients @> ?", containmentArg(id))
		}
		query = query.Where(contains)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Owner").
		Offset(offset).
		Limit(limit).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

// DeleteRecipe is idempotent: deleting a missing id is not an error here.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.Recipe{}).Error
}

func (r *recipeRepository) GetIngredientsByIDs(ctx context.Context, ids []string) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if len(ids) == 0 {
		return ingredients, nil
	}
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *recipeRepository) CountIngredientsByIDs(ctx context.Context, ids []string) (int64, error) {
	var count int64
	if len(ids) == 0 {
		return 0, nil
	}
	err := r.db.WithContext(ctx).
		Model(&entities.Ingredient{}).
		Where("id IN ?", ids).
		Count(&count).Error
	return count, err
}

// AddFavorite relies on the composite unique index: a duplicate insert is a
// successful no-op instead of a second edge.
func (r *recipeRepository) AddFavorite(ctx context.Context, userID, recipeID string) error {
	favorite := entities.Favorite{
		ID:        domain.NewID(),
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
			DoNothing: true,
		}).
		Create(&favorite).Error
}

func (r *recipeRepository) RemoveFavorite(ctx context.Context, userID, recipeID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.Favorite{}).Error
}

func (r *recipeRepository) GetFavoriteRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Joins("JOIN favorites ON favorites.recipe_id = recipes.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) CountFavoritedRecipes(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Favorite{}).
		Distinct("recipe_id").
		Count(&count).Error
	return count, err
}

// ListPopularGroups pages over the grouped favorites table, most-favorited
// first. Ties break on the most recent favorite so the ordering is stable
// across calls.
func (r *recipeRepository) ListPopularGroups(ctx context.Context, page, limit int) ([]PopularGroup, error) {
	var groups []PopularGroup
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Favorite{}).
		Select("recipe_id, COUNT(*) AS favorites_count").
		Group("recipe_id").
		Order("COUNT(*) DESC, MAX(created_at) DESC").
		Offset(offset).
		Limit(limit).
		Scan(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}
