package domain

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID             string `gorm:"primaryKey;size:32" json:"id"`
	Name           string `gorm:"size:64;not null" json:"name"`
	Email          string `gorm:"uniqueIndex;size:191;not null" json:"email"`
	HashedPassword string `gorm:"size:100;not null" json:"-"`
	Role           string `gorm:"size:16;not null;default:user" json:"role"` // "user"/"admin"

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	UpdatePassword(id, hashed string) error
}
