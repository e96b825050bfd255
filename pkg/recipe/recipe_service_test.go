package recipe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodies-backend/domain"
	"foodies-backend/entities"
)

type fakeRecipeRepository struct {
	recipes     map[string]*entities.Recipe
	ingredients map[string]*entities.Ingredient
	favorites   []entities.Favorite
	groups      []PopularGroup
}

func newFakeRecipeRepository() *fakeRecipeRepository {
	return &fakeRecipeRepository{
		recipes:     map[string]*entities.Recipe{},
		ingredients: map[string]*entities.Ingredient{},
	}
}

func (f *fakeRecipeRepository) CreateRecipe(_ context.Context, recipe *entities.Recipe) error {
	f.recipes[recipe.ID] = recipe
	return nil
}

func (f *fakeRecipeRepository) GetRecipeByID(_ context.Context, id string, _ bool) (*entities.Recipe, error) {
	recipe, ok := f.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return recipe, nil
}

func (f *fakeRecipeRepository) GetRecipesByIDs(_ context.Context, ids []string) ([]*entities.Recipe, error) {
	var out []*entities.Recipe
	for _, id := range ids {
		if recipe, ok := f.recipes[id]; ok {
			out = append(out, recipe)
		}
	}
	return out, nil
}

func containsIngredient(recipe *entities.Recipe, id string) bool {
	for _, ref := range recipe.Ingredients {
		if ref.ID == id {
			return true
		}
	}
	return false
}

func (f *fakeRecipeRepository) ListRecipes(_ context.Context, filter domain.RecipeFilter, _, _ int) ([]*entities.Recipe, int64, error) {
	var out []*entities.Recipe
	for _, recipe := range f.recipes {
		if filter.OwnerID != "" && recipe.OwnerID != filter.OwnerID {
			continue
		}
		if len(filter.IngredientIDs) > 0 {
			matched := false
			for _, id := range filter.IngredientIDs {
				if containsIngredient(recipe, id) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		out = append(out, recipe)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRecipeRepository) UpdateRecipe(_ context.Context, recipe *entities.Recipe) error {
	f.recipes[recipe.ID] = recipe
	return nil
}

func (f *fakeRecipeRepository) DeleteRecipe(_ context.Context, id string) error {
	delete(f.recipes, id)
	return nil
}

func (f *fakeRecipeRepository) GetIngredientsByIDs(_ context.Context, ids []string) ([]*entities.Ingredient, error) {
	var out []*entities.Ingredient
	for _, id := range ids {
		if ing, ok := f.ingredients[id]; ok {
			out = append(out, ing)
		}
	}
	return out, nil
}

func (f *fakeRecipeRepository) CountIngredientsByIDs(_ context.Context, ids []string) (int64, error) {
	var count int64
	for _, id := range ids {
		if _, ok := f.ingredients[id]; ok {
			count++
		}
	}
	return count, nil
}

func (f *fakeRecipeRepository) AddFavorite(_ context.Context, userID, recipeID string) error {
	for _, fav := range f.favorites {
		if fav.UserID == userID && fav.RecipeID == recipeID {
			return nil
		}
	}
	f.favorites = append(f.favorites, entities.Favorite{UserID: userID, RecipeID: recipeID})
	return nil
}

func (f *fakeRecipeRepository) RemoveFavorite(_ context.Context, userID, recipeID string) error {
	kept := f.favorites[:0]
	for _, fav := range f.favorites {
		if fav.UserID != userID || fav.RecipeID != recipeID {
			kept = append(kept, fav)
		}
	}
	f.favorites = kept
	return nil
}

func (f *fakeRecipeRepository) GetFavoriteRecipes(_ context.Context, userID string) ([]*entities.Recipe, error) {
	var out []*entities.Recipe
	for i := len(f.favorites) - 1; i >= 0; i-- {
		fav := f.favorites[i]
		if fav.UserID != userID {
			continue
		}
		if recipe, ok := f.recipes[fav.RecipeID]; ok {
			out = append(out, recipe)
		}
	}
	return out, nil
}

func (f *fakeRecipeRepository) CountFavoritedRecipes(_ context.Context) (int64, error) {
	return int64(len(f.groups)), nil
}

func (f *fakeRecipeRepository) ListPopularGroups(_ context.Context, _, _ int) ([]PopularGroup, error) {
	return f.groups, nil
}

func newTestService(repo *fakeRecipeRepository) RecipeService {
	return NewRecipeService(repo, nil)
}

func seedIngredients(repo *fakeRecipeRepository, ids ...string) {
	for _, id := range ids {
		repo.ingredients[id] = &entities.Ingredient{ID: id, Name: "Ingredient " + id}
	}
}

func TestCreateRecipeUnknownIngredient(t *testing.T) {
	repo := newFakeRecipeRepository()
	seedIngredients(repo, "ing1")
	service := newTestService(repo)

	_, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title: "Soup",
		Ingredients: []entities.IngredientRef{
			{ID: "ing1", Measure: "1 cup"},
			{ID: "missing"},
		},
	}, nil, "owner1")

	assert.ErrorIs(t, err, domain.ErrUnknownIngredient)
	assert.Empty(t, repo.recipes)
}

func TestCreateRecipeExpandsIngredients(t *testing.T) {
	repo := newFakeRecipeRepository()
	seedIngredients(repo, "ing1", "ing2")
	service := newTestService(repo)

	res, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title: "Soup",
		Ingredients: []entities.IngredientRef{
			{ID: "ing2", Measure: "2 tbsp"},
			{ID: "ing1"},
		},
	}, nil, "owner1")
	require.NoError(t, err)

	assert.Len(t, res.ID, 24)
	assert.Equal(t, "owner1", res.OwnerID)
	require.Len(t, res.IngredientsDetailed, 2)
	assert.Equal(t, "ing2", res.IngredientsDetailed[0].ID)
	assert.Equal(t, "2 tbsp", res.IngredientsDetailed[0].Measure)
	assert.Equal(t, "Ingredient ing2", res.IngredientsDetailed[0].Name)
	assert.Equal(t, "ing1", res.IngredientsDetailed[1].ID)
}

func TestListRecipesIngredientFilterMatchesAny(t *testing.T) {
	repo := newFakeRecipeRepository()
	seedIngredients(repo, "a", "b", "c")
	repo.recipes["r1"] = &entities.Recipe{
		ID: "r1", Title: "Soup", OwnerID: "owner1",
		Ingredients: entities.IngredientRefs{{ID: "a", Measure: "1 cup"}},
	}
	repo.recipes["r2"] = &entities.Recipe{
		ID: "r2", Title: "Stew", OwnerID: "owner1",
		Ingredients: entities.IngredientRefs{{ID: "b"}, {ID: "c"}},
	}
	repo.recipes["r3"] = &entities.Recipe{
		ID: "r3", Title: "Salad", OwnerID: "owner1",
		Ingredients: entities.IngredientRefs{{ID: "c"}},
	}
	service := newTestService(repo)

	res, err := service.ListRecipes(context.Background(), domain.RecipeFilter{
		IngredientIDs: []string{"a", "b"},
	}, 1, 20)
	require.NoError(t, err)

	// A recipe qualifies when it contains a OR b; r3 has neither.
	assert.EqualValues(t, 2, res.Total)
	ids := make([]string, 0, len(res.Items))
	for _, item := range res.Items {
		ids = append(ids, item.ID)
	}
	assert.ElementsMatch(t, []string{"r1", "r2"}, ids)
}

func TestGetRecipeByIDNotFound(t *testing.T) {
	service := newTestService(newFakeRecipeRepository())

	_, err := service.GetRecipeByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestGetRecipeByIDDropsUnresolvedIngredients(t *testing.T) {
	repo := newFakeRecipeRepository()
	seedIngredients(repo, "ing1")
	repo.recipes["r1"] = &entities.Recipe{
		ID:      "r1",
		Title:   "Soup",
		OwnerID: "owner1",
		Ingredients: entities.IngredientRefs{
			{ID: "ing1", Measure: "1 cup"},
			{ID: "deleted"},
		},
	}
	service := newTestService(repo)

	res, err := service.GetRecipeByID(context.Background(), "r1")
	require.NoError(t, err)

	// The raw list survives untouched, only the expansion drops the id.
	assert.Len(t, res.Ingredients, 2)
	require.Len(t, res.IngredientsDetailed, 1)
	assert.Equal(t, "ing1", res.IngredientsDetailed[0].ID)
}

func TestUpdateRecipeOwnership(t *testing.T) {
	repo := newFakeRecipeRepository()
	repo.recipes["r1"] = &entities.Recipe{ID: "r1", Title: "Soup", OwnerID: "owner1"}
	service := newTestService(repo)

	title := "Stew"
	req := domain.UpdateRecipeRequest{Title: &title}

	_, err := service.UpdateRecipe(context.Background(), "missing", req, nil, "owner1")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	_, err = service.UpdateRecipe(context.Background(), "r1", req, nil, "intruder")
	assert.ErrorIs(t, err, domain.ErrNotRecipeOwner)
	assert.Equal(t, "Soup", repo.recipes["r1"].Title)
}

func TestUpdateRecipePartial(t *testing.T) {
	repo := newFakeRecipeRepository()
	mins := 30
	repo.recipes["r1"] = &entities.Recipe{
		ID:          "r1",
		Title:       "Soup",
		Description: "warming",
		Time:        &mins,
		OwnerID:     "owner1",
	}
	service := newTestService(repo)

	title := "Stew"
	res, err := service.UpdateRecipe(context.Background(), "r1", domain.UpdateRecipeRequest{Title: &title}, nil, "owner1")
	require.NoError(t, err)

	assert.Equal(t, "Stew", res.Title)
	assert.Equal(t, "warming", res.Description)
	require.NotNil(t, res.Time)
	assert.Equal(t, 30, *res.Time)
}

func TestDeleteRecipe(t *testing.T) {
	repo := newFakeRecipeRepository()
	repo.recipes["r1"] = &entities.Recipe{ID: "r1", OwnerID: "owner1"}
	service := newTestService(repo)

	assert.ErrorIs(t, service.DeleteRecipe(context.Background(), "missing", "owner1"), domain.ErrRecipeNotFound)
	assert.ErrorIs(t, service.DeleteRecipe(context.Background(), "r1", "intruder"), domain.ErrNotRecipeOwner)

	require.NoError(t, service.DeleteRecipe(context.Background(), "r1", "owner1"))
	assert.Empty(t, repo.recipes)
}

func TestListPopularRecipesEmpty(t *testing.T) {
	service := newTestService(newFakeRecipeRepository())

	res, err := service.ListPopularRecipes(context.Background(), 1, 20)
	require.NoError(t, err)

	assert.Empty(t, res.Items)
	assert.Zero(t, res.Total)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 20, res.Limit)
}

func TestListPopularRecipesSkipsDanglingFavorites(t *testing.T) {
	repo := newFakeRecipeRepository()
	repo.recipes["r1"] = &entities.Recipe{ID: "r1", Title: "Soup", OwnerID: "owner1"}
	repo.recipes["r2"] = &entities.Recipe{ID: "r2", Title: "Stew", OwnerID: "owner1"}
	repo.groups = []PopularGroup{
		{RecipeID: "r2", FavoritesCount: 5},
		{RecipeID: "r1", FavoritesCount: 2},
		{RecipeID: "ghost", FavoritesCount: 1},
	}
	service := newTestService(repo)

	res, err := service.ListPopularRecipes(context.Background(), 0, 0)
	require.NoError(t, err)

	assert.EqualValues(t, 3, res.Total)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "r2", res.Items[0].ID)
	require.NotNil(t, res.Items[0].FavoritesCount)
	assert.EqualValues(t, 5, *res.Items[0].FavoritesCount)
	assert.Equal(t, "r1", res.Items[1].ID)
	require.NotNil(t, res.Items[1].FavoritesCount)
	assert.EqualValues(t, 2, *res.Items[1].FavoritesCount)
}

func TestAddFavoriteUnknownRecipe(t *testing.T) {
	service := newTestService(newFakeRecipeRepository())

	_, err := service.AddFavorite(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestAddFavoriteIsIdempotent(t *testing.T) {
	repo := newFakeRecipeRepository()
	repo.recipes["r1"] = &entities.Recipe{ID: "r1", OwnerID: "owner1"}
	service := newTestService(repo)

	favorites, err := service.AddFavorite(context.Background(), "u1", "r1")
	require.NoError(t, err)
	assert.Len(t, favorites, 1)

	favorites, err = service.AddFavorite(context.Background(), "u1", "r1")
	require.NoError(t, err)
	assert.Len(t, favorites, 1)

	favorites, err = service.RemoveFavorite(context.Background(), "u1", "r1")
	require.NoError(t, err)
	assert.Empty(t, favorites)
}
