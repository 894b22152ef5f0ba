package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID               string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name             string         `json:"name" binding:"required"`
	Email            string         `json:"email" binding:"required,email" gorm:"uniqueIndex"`
	Password         string         `json:"-"`
	DateOfBirth      time.Time      `json:"dateOfBirth"`
	Bio              string         `json:"bio"`
	ProfilePic       string         `json:"profilePic" gorm:"column:profile_pic"`
	SocialLinks      pq.StringArray `json:"socialLinks" gorm:"column:social_links;type:text[]"`
	TwoFactorEnabled bool           `json:"twoFactorEnabled" gorm:"column:two_factor_enabled;default:false"`
	TwoFactorSecret  string         `json:"-" gorm:"column:two_factor_secret"`
	CreatedAt        time.Time      `json:"createdAt"`
}

// SignupInput model for creating a user account
// @Description model for creating a user account
type SignupInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	DateOfBirth string `json:"dateOfBirth"`
	Password    string `json:"password"`
}

// LoginInput model for the login request
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ProfileUpdate model for the update-profile request. SocialLinks is
// a comma-separated string, split server-side.
type ProfileUpdate struct {
	Bio         string `json:"bio"`
	SocialLinks string `json:"socialLinks"`
}

// PublicUser is the projection of a user joined into posts, comments
// and conversations.
type PublicUser struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ProfilePic string `json:"profilePic"`
}

func (User) TableName() string {
	return "users"
}
