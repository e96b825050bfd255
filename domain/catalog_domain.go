package domain

import (
	"foodies-backend/entities"
)

type (
	TestimonialResponse struct {
		ID          string       `json:"id"`
		Testimonial string       `json:"testimonial"`
		Owner       *RecipeOwner `json:"owner,omitempty"`
	}

	CategoryListResponse struct {
		Items []entities.Category `json:"items"`
		Total int                 `json:"total"`
	}

	AreaListResponse struct {
		Items []entities.Area `json:"items"`
		Total int             `json:"total"`
	}

	IngredientListResponse struct {
		Items []entities.Ingredient `json:"items"`
		Total int                   `json:"total"`
	}

	TestimonialListResponse struct {
		Items []TestimonialResponse `json:"items"`
		Total int                   `json:"total"`
	}

	// AllResponse is the aggregated bootstrap payload served at /api/all.
	// The paginated collections are capped at 1000 entries each.
	AllResponse struct {
		Users        UserListResponse        `json:"users"`
		Categories   CategoryListResponse    `json:"categories"`
		Recipes      RecipeListResponse      `json:"recipes"`
		Testimonials TestimonialListResponse `json:"testimonials"`
	}
)
