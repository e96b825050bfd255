package catalog

import (
	"context"

	"foodies-backend/domain"
	"foodies-backend/pkg/recipe"
	"foodies-backend/pkg/user"
)

// allLimit caps each collection of the aggregated bootstrap payload.
const allLimit = 1000

type (
	CatalogService interface {
		ListCategories(ctx context.Context) (domain.CategoryListResponse, error)
		ListAreas(ctx context.Context) (domain.AreaListResponse, error)
		ListIngredients(ctx context.Context) (domain.IngredientListResponse, error)
		ListTestimonials(ctx context.Context) (domain.TestimonialListResponse, error)
		All(ctx context.Context) (domain.AllResponse, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
		userService       user.UserService
		recipeService     recipe.RecipeService
	}
)

func NewCatalogService(catalogRepository CatalogRepository, userService user.UserService, recipeService recipe.RecipeService) CatalogService {
	return &catalogService{
		catalogRepository: catalogRepository,
		userService:       userService,
		recipeService:     recipeService,
	}
}

func (s *catalogService) ListCategories(ctx context.Context) (domain.CategoryListResponse, error) {
	categories, err := s.catalogRepository.ListCategories(ctx)
	if err != nil {
		return domain.CategoryListResponse{}, err
	}
	return domain.CategoryListResponse{Items: categories, Total: len(categories)}, nil
}

func (s *catalogService) ListAreas(ctx context.Context) (domain.AreaListResponse, error) {
	areas, err := s.catalogRepository.ListAreas(ctx)
	if err != nil {
		return domain.AreaListResponse{}, err
	}
	return domain.AreaListResponse{Items: areas, Total: len(areas)}, nil
}

func (s *catalogService) ListIngredients(ctx context.Context) (domain.IngredientListResponse, error) {
	ingredients, err := s.catalogRepository.ListIngredients(ctx)
	if err != nil {
		return domain.IngredientListResponse{}, err
	}
	return domain.IngredientListResponse{Items: ingredients, Total: len(ingredients)}, nil
}

func (s *catalogService) ListTestimonials(ctx context.Context) (domain.TestimonialListResponse, error) {
	testimonials, err := s.catalogRepository.ListTestimonials(ctx)
	if err != nil {
		return domain.TestimonialListResponse{}, err
	}

	items := make([]domain.TestimonialResponse, 0, len(testimonials))
	for _, t := range testimonials {
		res := domain.TestimonialResponse{
			ID:          t.ID,
			Testimonial: t.Testimonial,
		}
		if t.Owner != nil {
			res.Owner = &domain.RecipeOwner{
				ID:     t.Owner.ID,
				Name:   t.Owner.Name,
				Email:  t.Owner.Email,
				Avatar: t.Owner.Avatar,
			}
		}
		items = append(items, res)
	}
	return domain.TestimonialListResponse{Items: items, Total: len(items)}, nil
}

// All assembles the bootstrap payload clients load on first render.
func (s *catalogService) All(ctx context.Context) (domain.AllResponse, error) {
	users, err := s.userService.ListUsers(ctx, domain.ListUsersQuery{Page: 1, Limit: allLimit})
	if err != nil {
		return domain.AllResponse{}, err
	}
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return domain.AllResponse{}, err
	}
	recipes, err := s.recipeService.ListRecipes(ctx, domain.RecipeFilter{}, 1, allLimit)
	if err != nil {
		return domain.AllResponse{}, err
	}
	testimonials, err := s.ListTestimonials(ctx)
	if err != nil {
		return domain.AllResponse{}, err
	}

	return domain.AllResponse{
		Users:        users,
		Categories:   categories,
		Recipes:      recipes,
		Testimonials: testimonials,
	}, nil
}
