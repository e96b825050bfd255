package user

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"foodies-backend/domain"
	"foodies-backend/entities"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUsersByIDs(ctx context.Context, ids []string) ([]*entities.User, error)
		ListUsers(ctx context.Context, search string, page, limit int) ([]*entities.User, int64, error)
		UpdateToken(ctx context.Context, userID string, token *string) error
		UpdateAvatar(ctx context.Context, userID string, avatar string) error

		CountRecipesByOwner(ctx context.Context, userID string) (int64, error)
		CountFavoritesByUser(ctx context.Context, userID string) (int64, error)
		CountFollowers(ctx context.Context, userID string) (int64, error)
		CountFollowing(ctx context.Context, userID string) (int64, error)

		Follow(ctx context.Context, userID, followerID string) error
		Unfollow(ctx context.Context, userID, followerID string) error
		GetFollowers(ctx context.Context, userID string) ([]*entities.User, error)
		GetFollowing(ctx context.Context, userID string) ([]*entities.User, error)
		ListFollowerIDs(ctx context.Context, userID string, page, limit int) ([]string, int64, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// recipePreviews limits preloaded recipes to the preview columns attached
// to follower listings.
func recipePreviews(db *gorm.DB) *gorm.DB {
	return db.Select("id", "thumb", "owner_id")
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUsersByIDs(ctx context.Context, ids []string) ([]*entities.User, error) {
	var users []*entities.User
	if len(ids) == 0 {
		return users, nil
	}
	if err := r.db.WithContext(ctx).
		Preload("Recipes", recipePreviews).
		Where("id IN ?", ids).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) ListUsers(ctx context.Context, search string, page, limit int) ([]*entities.User, int64, error) {
	var users []*entities.User
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.User{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Offset(offset).
		Limit(limit).
		Order("created_at desc").
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, count, nil
}

func (r *userRepository) UpdateToken(ctx context.Context, userID string, token *string) error {
	return r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", userID).
		Update("token", token).Error
}

func (r *userRepository) UpdateAvatar(ctx context.Context, userID string, avatar string) error {
	return r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", userID).
		Update("avatar", avatar).Error
}

func (r *userRepository) CountRecipesByOwner(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("owner_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *userRepository) CountFavoritesByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Favorite{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *userRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Follower{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *userRepository) CountFollowing(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Follower{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	return count, err
}

// Follow inserts the edge (user_id=followed, follower_id=follower). The
// unique index plus DoNothing makes concurrent duplicate requests collapse
// into a single edge without an error.
func (r *userRepository) Follow(ctx context.Context, userID, followerID string) error {
	edge := entities.Follower{
		ID:         domain.NewID(),
		UserID:     userID,
		FollowerID: followerID,
		CreatedAt:  time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "follower_id"}},
			DoNothing: true,
		}).
		Create(&edge).Error
}

func (r *userRepository) Unfollow(ctx context.Context, userID, followerID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND follower_id = ?", userID, followerID).
		Delete(&entities.Follower{}).Error
}

func (r *userRepository) GetFollowers(ctx context.Context, userID string) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).
		Preload("Recipes", recipePreviews).
		Joins("JOIN followers ON followers.follower_id = users.id").
		Where("followers.user_id = ?", userID).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetFollowing(ctx context.Context, userID string) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).
		Preload("Recipes", recipePreviews).
		Joins("JOIN followers ON followers.user_id = users.id").
		Where("followers.follower_id = ?", userID).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListFollowerIDs pages over the join table alone so counting does not drag
// full user rows; callers bulk-fetch the users for the ids afterwards.
func (r *userRepository) ListFollowerIDs(ctx context.Context, userID string, page, limit int) ([]string, int64, error) {
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Follower{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&entities.Follower{}).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Pluck("follower_id", &ids).Error; err != nil {
		return nil, 0, err
	}

	return ids, count, nil
}
