package domain

import "errors"

var (
	ErrEmailInUse       = errors.New("Email in use")
	ErrWrongCredentials = errors.New("Email or password is wrong")
)

type (
	RegisterRequest struct {
		Name     string  `json:"name" validate:"required"`
		Email    string  `json:"email" validate:"required,email"`
		Password string  `json:"password" validate:"required,min=6"`
		Avatar   *string `json:"avatar,omitempty" validate:"omitempty"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	// AuthUser is the public slice of a user record returned with a token.
	AuthUser struct {
		ID     string  `json:"id"`
		Name   string  `json:"name"`
		Email  string  `json:"email"`
		Avatar *string `json:"avatar"`
	}

	AuthResponse struct {
		User  AuthUser `json:"user"`
		Token string   `json:"token"`
	}

	// CurrentUserResponse is the denormalized profile of the authenticated
	// user. The counts are computed from related rows on every call.
	CurrentUserResponse struct {
		ID             string  `json:"id"`
		Name           string  `json:"name"`
		Email          string  `json:"email"`
		Avatar         *string `json:"avatar"`
		RecipesCount   int64   `json:"recipesCount"`
		FavoritesCount int64   `json:"favoritesCount"`
		FollowersCount int64   `json:"followersCount"`
		FollowingCount int64   `json:"followingCount"`
	}
)
