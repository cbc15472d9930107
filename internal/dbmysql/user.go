package dbmysql

import (
	"time"
)

type User struct {
	UserID          uint64    `gorm:"primaryKey;column:user_id;autoIncrement" json:"user_id"`
	Handle          string    `gorm:"column:handle;uniqueIndex;size:50;not null" json:"handle"`
	FullName        string    `gorm:"column:full_name;size:100;not null" json:"full_name"`
	Email           string    `gorm:"column:email;uniqueIndex;size:255;not null" json:"email"`
	PasswordHash    string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	ProfileImageURL string    `gorm:"column:profile_image_url;size:512;default:'/public/images/default-pic.png'" json:"profile_image_url"`
	Bio             string    `gorm:"column:bio;size:2200" json:"bio"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// UserSummary is the lightweight shape used in follower/following lists and
// feed decoration.
type UserSummary struct {
	Handle          string `json:"handle"`
	FullName        string `json:"full_name"`
	ProfileImageURL string `json:"profile_image_url"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		Handle:          u.Handle,
		FullName:        u.FullName,
		ProfileImageURL: u.ProfileImageURL,
	}
}
