package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"foodies-backend/domain"
	"foodies-backend/entities"
	"foodies-backend/internal/utils/mailing"
	"foodies-backend/internal/utils/storage"
	"foodies-backend/pkg/jwt"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		Logout(ctx context.Context, userID string) error
		Current(ctx context.Context, userID string) (domain.CurrentUserResponse, error)

		ListUsers(ctx context.Context, query domain.ListUsersQuery) (domain.UserListResponse, error)
		GetUserDetails(ctx context.Context, id string) (domain.UserDetailsResponse, error)
		UpdateAvatar(ctx context.Context, file *multipart.FileHeader, userID string) (domain.UpdateAvatarResponse, error)

		Follow(ctx context.Context, userID, targetID string) error
		Unfollow(ctx context.Context, userID, targetID string) error
		GetFollowers(ctx context.Context, userID string) ([]domain.FollowUser, error)
		GetFollowing(ctx context.Context, userID string) ([]domain.FollowUser, error)
		ListFollowersByUserID(ctx context.Context, userID string, page, limit int) (domain.FollowerListResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		storage        storage.Storage
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, storage storage.Storage) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		storage:        storage,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.AuthResponse{}, domain.ErrEmailInUse
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AuthResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	passwordHash := string(hash)

	user := &entities.User{
		ID:           domain.NewID(),
		Name:         req.Name,
		Email:        req.Email,
		Avatar:       req.Avatar,
		PasswordHash: &passwordHash,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.AuthResponse{}, err
	}

	res, err := s.issueToken(ctx, user)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	// Welcome mail is best effort; registration never fails on SMTP.
	if mailing.Enabled() {
		body := fmt.Sprintf("<p>Hi %s, welcome to Foodies!</p>", user.Name)
		if err := mailing.SendMail(user.Email, "Welcome to Foodies", body); err != nil {
			log.Printf("failed to send welcome mail: %v", err)
		}
	}

	return res, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrWrongCredentials
		}
		return domain.AuthResponse{}, err
	}
	if user.PasswordHash == nil {
		return domain.AuthResponse{}, domain.ErrWrongCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrWrongCredentials
	}

	return s.issueToken(ctx, user)
}

// issueToken signs a fresh token and persists it on the user row. Storing
// the latest token is what makes older sessions invalid: the auth middleware
// compares presented tokens against this value.
func (s *userService) issueToken(ctx context.Context, user *entities.User) (domain.AuthResponse, error) {
	token := s.jwtService.GenerateToken(user.ID)
	if err := s.userRepository.UpdateToken(ctx, user.ID, &token); err != nil {
		return domain.AuthResponse{}, err
	}
	return domain.AuthResponse{
		User: domain.AuthUser{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Avatar: user.Avatar,
		},
		Token: token,
	}, nil
}

func (s *userService) Logout(ctx context.Context, userID string) error {
	return s.userRepository.UpdateToken(ctx, userID, nil)
}

func (s *userService) Current(ctx context.Context, userID string) (domain.CurrentUserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CurrentUserResponse{}, domain.ErrUserNotFound
		}
		return domain.CurrentUserResponse{}, err
	}

	recipes, err := s.userRepository.CountRecipesByOwner(ctx, userID)
	if err != nil {
		return domain.CurrentUserResponse{}, err
	}
	favorites, err := s.userRepository.CountFavoritesByUser(ctx, userID)
	if err != nil {
		return domain.CurrentUserResponse{}, err
	}
	followers, err := s.userRepository.CountFollowers(ctx, userID)
	if err != nil {
		return domain.CurrentUserResponse{}, err
	}
	following, err := s.userRepository.CountFollowing(ctx, userID)
	if err != nil {
		return domain.CurrentUserResponse{}, err
	}

	return domain.CurrentUserResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Avatar:         user.Avatar,
		RecipesCount:   recipes,
		FavoritesCount: favorites,
		FollowersCount: followers,
		FollowingCount: following,
	}, nil
}

func (s *userService) ListUsers(ctx context.Context, query domain.ListUsersQuery) (domain.UserListResponse, error) {
	page, limit := domain.NormalizePage(query.Page, query.Limit)

	users, total, err := s.userRepository.ListUsers(ctx, query.Search, page, limit)
	if err != nil {
		return domain.UserListResponse{}, err
	}

	items := make([]domain.UserSummary, 0, len(users))
	for _, u := range users {
		items = append(items, domain.UserSummary{
			ID:     u.ID,
			Name:   u.Name,
			Email:  u.Email,
			Avatar: u.Avatar,
		})
	}

	return domain.UserListResponse{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *userService) GetUserDetails(ctx context.Context, id string) (domain.UserDetailsResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserDetailsResponse{}, domain.ErrUserNotFound
		}
		return domain.UserDetailsResponse{}, err
	}

	recipes, err := s.userRepository.CountRecipesByOwner(ctx, id)
	if err != nil {
		return domain.UserDetailsResponse{}, err
	}
	followers, err := s.userRepository.CountFollowers(ctx, id)
	if err != nil {
		return domain.UserDetailsResponse{}, err
	}

	return domain.UserDetailsResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Avatar:         user.Avatar,
		RecipesCount:   recipes,
		FollowersCount: followers,
	}, nil
}

func (s *userService) UpdateAvatar(ctx context.Context, file *multipart.FileHeader, userID string) (domain.UpdateAvatarResponse, error) {
	if file == nil {
		return domain.UpdateAvatarResponse{}, domain.ErrAvatarMissing
	}

	avatar, err := s.storage.SaveAvatar(ctx, file, userID)
	if err != nil {
		return domain.UpdateAvatarResponse{}, err
	}
	if err := s.userRepository.UpdateAvatar(ctx, userID, avatar); err != nil {
		return domain.UpdateAvatarResponse{}, err
	}
	return domain.UpdateAvatarResponse{Avatar: avatar}, nil
}

// Follow is a no-op for self-follows; the handler already rejects them with
// an explicit error before the service runs.
func (s *userService) Follow(ctx context.Context, userID, targetID string) error {
	if userID == targetID {
		return nil
	}
	if _, err := s.userRepository.GetUserByID(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return s.userRepository.Follow(ctx, targetID, userID)
}

func (s *userService) Unfollow(ctx context.Context, userID, targetID string) error {
	return s.userRepository.Unfollow(ctx, targetID, userID)
}

func (s *userService) GetFollowers(ctx context.Context, userID string) ([]domain.FollowUser, error) {
	users, err := s.userRepository.GetFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toFollowUsers(users), nil
}

func (s *userService) GetFollowing(ctx context.Context, userID string) ([]domain.FollowUser, error) {
	users, err := s.userRepository.GetFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toFollowUsers(users), nil
}

func (s *userService) ListFollowersByUserID(ctx context.Context, userID string, page, limit int) (domain.FollowerListResponse, error) {
	page, limit = domain.NormalizePage(page, limit)

	ids, total, err := s.userRepository.ListFollowerIDs(ctx, userID, page, limit)
	if err != nil {
		return domain.FollowerListResponse{}, err
	}
	if len(ids) == 0 {
		return domain.FollowerListResponse{
			Items: []domain.FollowUser{},
			Total: total,
			Page:  page,
			Limit: limit,
		}, nil
	}

	users, err := s.userRepository.GetUsersByIDs(ctx, ids)
	if err != nil {
		return domain.FollowerListResponse{}, err
	}

	// Re-order the bulk fetch to match the edge ordering.
	byID := make(map[string]*entities.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	ordered := make([]*entities.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			ordered = append(ordered, u)
		}
	}

	return domain.FollowerListResponse{
		Items: toFollowUsers(ordered),
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func toFollowUsers(users []*entities.User) []domain.FollowUser {
	items := make([]domain.FollowUser, 0, len(users))
	for _, u := range users {
		previews := make([]domain.RecipePreview, 0, len(u.Recipes))
		for _, rec := range u.Recipes {
			previews = append(previews, domain.RecipePreview{ID: rec.ID, Thumb: rec.Thumb})
		}
		items = append(items, domain.FollowUser{
			ID:      u.ID,
			Name:    u.Name,
			Email:   u.Email,
			Avatar:  u.Avatar,
			Recipes: previews,
		})
	}
	return items
}
