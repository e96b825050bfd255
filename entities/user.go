package entities

import (
	"time"
)

type User struct {
	ID           string  `gorm:"type:varchar(24);primaryKey" json:"id"`
	Name         string  `gorm:"not null" json:"name"`
	Email        string  `gorm:"not null;uniqueIndex" json:"email"`
	Avatar       *string `json:"avatar"`
	PasswordHash *string `gorm:"column:password_hash" json:"-"`
	Token        *string `json:"-"`

	Recipes      []Recipe      `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"recipes,omitempty"`
	Testimonials []Testimonial `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"testimonials,omitempty"`

	Timestamp
}

// Follower records that follower_id follows user_id. The composite unique
// index makes concurrent duplicate follow requests collapse into one edge.
type Follower struct {
	ID         string    `gorm:"type:varchar(24);primaryKey" json:"id"`
	UserID     string    `gorm:"type:varchar(24);not null;uniqueIndex:idx_followers_user_follower" json:"user_id"`
	FollowerID string    `gorm:"type:varchar(24);not null;uniqueIndex:idx_followers_user_follower" json:"follower_id"`
	CreatedAt  time.Time `gorm:"type:timestamp" json:"created_at"`
}
