package models

import "time"

// Blog represents a single blog post owned by a user.
type Blog struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title     string    `json:"title" validate:"required"`
	Author    string    `json:"author"`
	URL       string    `json:"url" validate:"required"`
	Likes     int       `json:"likes" validate:"gte=0"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);index"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
