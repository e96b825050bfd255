package domain

import "errors"

var (
	MessageSuccessFollowUser   = "user followed successfully"
	MessageSuccessUnfollowUser = "user unfollowed successfully"

	ErrUserNotFound  = errors.New("User not found")
	ErrFollowSelf    = errors.New("Cannot follow yourself")
	ErrAvatarMissing = errors.New("Avatar file is required")
)

type (
	ListUsersQuery struct {
		Page   int
		Limit  int
		Search string
	}

	UserSummary struct {
		ID     string  `json:"id"`
		Name   string  `json:"name"`
		Email  string  `json:"email"`
		Avatar *string `json:"avatar"`
	}

	UserListResponse struct {
		Items []UserSummary `json:"items"`
		Total int64         `json:"total"`
		Page  int           `json:"page"`
		Limit int           `json:"limit"`
	}

	// UserDetailsResponse is the public profile shown on another user's page.
	UserDetailsResponse struct {
		ID             string  `json:"id"`
		Name           string  `json:"name"`
		Email          string  `json:"email"`
		Avatar         *string `json:"avatar"`
		RecipesCount   int64   `json:"recipesCount"`
		FollowersCount int64   `json:"followersCount"`
	}

	// RecipePreview is the reduced recipe shape attached to follower and
	// following listings.
	RecipePreview struct {
		ID    string `json:"id"`
		Thumb string `json:"thumb"`
	}

	// FollowUser is a user on the other side of a follow edge plus recipe
	// previews.
	FollowUser struct {
		ID      string          `json:"id"`
		Name    string          `json:"name"`
		Email   string          `json:"email"`
		Avatar  *string         `json:"avatar"`
		Recipes []RecipePreview `json:"recipes"`
	}

	FollowerListResponse struct {
		Items []FollowUser `json:"items"`
		Total int64        `json:"total"`
		Page  int          `json:"page"`
		Limit int          `json:"limit"`
	}

	UpdateAvatarResponse struct {
		Avatar string `json:"avatar"`
	}
)
