package models

import "time"

// User represents a registered account. The password hash is never
// serialized; only the repositories and the auth service touch it.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username     string    `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255)"`
	Blogs        []Blog    `json:"blogs" gorm:"foreignKey:UserID"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
