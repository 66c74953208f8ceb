package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           uint `gorm:"primarykey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	UUID         uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Email        string    `gorm:"size:254;uniqueIndex;not null"`
	Username     string    `gorm:"size:150;uniqueIndex;not null"`
	FirstName    string    `gorm:"size:150;not null"`
	LastName     string    `gorm:"size:150;not null"`
	PasswordHash string    `gorm:"size:150;not null"`
	Role         Role      `gorm:"size:30;not null;default:user"`

	Recipes []Recipe `gorm:"foreignKey:AuthorID"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Profile is a user as seen by another (possibly anonymous) user.
type Profile struct {
	User
	IsSubscribed bool
}

// Subscription is a followed author with a preview of their recipes.
type Subscription struct {
	Profile
	Recipes      []Recipe
	RecipesCount int64
}
