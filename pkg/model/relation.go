package model

import (
	"fmt"
	"time"
)

// RelationKind names a (user, target) membership set.
type RelationKind string

const (
	FavoriteRelation     RelationKind = "favorite"
	ShoppingCartRelation RelationKind = "shopping_cart"
	FollowRelation       RelationKind = "follow"
)

// Description is used in user facing messages, e.g. "already in favorites".
func (k RelationKind) Description() string {
	switch k {
	case FavoriteRelation:
		return "favorites"
	case ShoppingCartRelation:
		return "shopping cart"
	case FollowRelation:
		return "subscriptions"
	}

	return string(k)
}

// TargetColumn is the column holding the target id of the relation.
func (k RelationKind) TargetColumn() string {
	if k == FollowRelation {
		return "author_id"
	}

	return "recipe_id"
}

// NewRow returns the gorm model row for a membership of the relation.
func (k RelationKind) NewRow(userID, targetID uint) (any, error) {
	switch k {
	case FavoriteRelation:
		return &Favorite{UserID: userID, RecipeID: targetID}, nil
	case ShoppingCartRelation:
		return &ShoppingCartItem{UserID: userID, RecipeID: targetID}, nil
	case FollowRelation:
		return &Follow{UserID: userID, AuthorID: targetID}, nil
	}

	return nil, fmt.Errorf("unknown relation kind %q", string(k))
}

type Favorite struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UserID    uint `gorm:"uniqueIndex:idx_favorite_pair;not null"`
	RecipeID  uint `gorm:"uniqueIndex:idx_favorite_pair;not null"`

	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Recipe Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE;"`
}

type ShoppingCartItem struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UserID    uint `gorm:"uniqueIndex:idx_cart_pair;not null"`
	RecipeID  uint `gorm:"uniqueIndex:idx_cart_pair;not null"`

	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Recipe Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE;"`
}

// Follow records that User follows Author.
type Follow struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UserID    uint `gorm:"uniqueIndex:idx_follow_pair;not null"`
	AuthorID  uint `gorm:"uniqueIndex:idx_follow_pair;not null"`

	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Author User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
}
