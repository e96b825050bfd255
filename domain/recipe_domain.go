package domain

import (
	"errors"
	"time"

	"foodies-backend/entities"
)

var (
	ErrRecipeNotFound    = errors.New("Recipe not found")
	ErrNotRecipeOwner    = errors.New("You are not the owner of this recipe")
	ErrUnknownIngredient = errors.New("unknown ingredient id")
)

type (
	// RecipeFilter is the AND-combined predicate set of the recipe listing.
	// IngredientIDs is an OR-of-containment: a recipe qualifies when its
	// embedded list contains at least one of the ids.
	RecipeFilter struct {
		OwnerID       string
		Category      string
		Area          string
		Search        string
		IngredientIDs []string
	}

	CreateRecipeRequest struct {
		Title        string                   `json:"title" validate:"required,min=1"`
		Description  string                   `json:"description"`
		Instructions string                   `json:"instructions"`
		Thumb        string                   `json:"thumb"`
		Time         *int                     `json:"time" validate:"omitempty,min=1"`
		Category     string                   `json:"category"`
		Area         string                   `json:"area"`
		Ingredients  []entities.IngredientRef `json:"ingredients" validate:"dive"`
	}

	UpdateRecipeRequest struct {
		Title        *string                   `json:"title" validate:"omitempty,min=1"`
		Description  *string                   `json:"description"`
		Instructions *string                   `json:"instructions"`
		Thumb        *string                   `json:"thumb"`
		Time         *int                      `json:"time" validate:"omitempty,min=1"`
		Category     *string                   `json:"category"`
		Area         *string                   `json:"area"`
		Ingredients  *[]entities.IngredientRef `json:"ingredients" validate:"omitempty,dive"`
	}

	// IngredientDetail is a resolved ingredient row annotated with the
	// measure from the recipe's embedded list.
	IngredientDetail struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
		Image       string `json:"image,omitempty"`
		Measure     string `json:"measure,omitempty"`
	}

	RecipeOwner struct {
		ID     string  `json:"id"`
		Name   string  `json:"name"`
		Email  string  `json:"email"`
		Avatar *string `json:"avatar"`
	}

	// RecipeResponse is a recipe with its ingredient list expanded and the
	// owner's public profile joined in.
	RecipeResponse struct {
		ID                  string                   `json:"id"`
		Title               string                   `json:"title"`
		Description         string                   `json:"description"`
		Instructions        string                   `json:"instructions"`
		Thumb               string                   `json:"thumb"`
		Time                *int                     `json:"time"`
		Category            string                   `json:"category"`
		Area                string                   `json:"area"`
		OwnerID             string                   `json:"owner_id"`
		Owner               *RecipeOwner             `json:"owner,omitempty"`
		Ingredients         []entities.IngredientRef `json:"ingredients"`
		IngredientsDetailed []IngredientDetail       `json:"ingredientsDetailed"`
		FavoritesCount      *int64                   `json:"favoritesCount,omitempty"`
		CreatedAt           time.Time                `json:"created_at"`
		UpdatedAt           time.Time                `json:"updated_at"`
	}

	RecipeListResponse struct {
		Items []RecipeResponse `json:"items"`
		Total int64            `json:"total"`
		Page  int              `json:"page"`
		Limit int              `json:"limit"`
	}
)
