package model

import "time"

type Tag struct {
	ID    uint   `gorm:"primarykey"`
	Name  string `gorm:"size:200;uniqueIndex;not null"`
	Color string `gorm:"size:7"`
	Slug  string `gorm:"size:200;uniqueIndex;not null"`
}

type Ingredient struct {
	ID              uint   `gorm:"primarykey"`
	Name            string `gorm:"size:200;index;not null"`
	MeasurementUnit string `gorm:"size:200;not null"`
}

type Recipe struct {
	ID          uint      `gorm:"primarykey"`
	CreatedAt   time.Time `gorm:"<-:create;index"`
	UpdatedAt   time.Time
	Name        string  `gorm:"size:200;uniqueIndex;not null"`
	AuthorID    uint    `gorm:"index;not null"`
	Text        string  `gorm:"not null"`
	Image       *string `gorm:"size:255"`
	CookingTime uint    `gorm:"not null;check:cooking_time >= 1"`

	Author      User               `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Tags        []Tag              `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE;"`
	Ingredients []RecipeIngredient `gorm:"constraint:OnDelete:CASCADE;"`
}

type RecipeIngredient struct {
	ID           uint `gorm:"primarykey"`
	RecipeID     uint `gorm:"uniqueIndex:idx_recipe_ingredient;not null"`
	IngredientID uint `gorm:"uniqueIndex:idx_recipe_ingredient;not null"`
	Amount       uint `gorm:"not null;check:amount >= 1"`

	Ingredient Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE;"`
}

// RecipeTag is the join row behind Recipe.Tags.
type RecipeTag struct {
	RecipeID uint `gorm:"primaryKey"`
	TagID    uint `gorm:"primaryKey"`
}

// RecipeView is a recipe decorated with the requesting user's relations to it.
type RecipeView struct {
	Recipe
	Author           Profile
	IsFavorited      bool
	IsInShoppingCart bool
}

// RecipeFilter narrows a recipe listing. Nil fields are ignored.
type RecipeFilter struct {
	AuthorID         *uint
	TagSlugs         []string
	FavoritedBy      *uint
	InShoppingCartOf *uint
	Limit            int
	Offset           int
}

// CartIngredient is one ingredient line of one recipe in a user's shopping cart.
type CartIngredient struct {
	Name            string
	MeasurementUnit string
	Amount          uint
}

// DefaultTags are the fixed tags every installation starts with.
var DefaultTags = []Tag{
	{Name: "Breakfast", Color: "#f21624", Slug: "breakfast"},
	{Name: "Dinner", Color: "#28f216", Slug: "dinner"},
	{Name: "Supper", Color: "#b716f2", Slug: "supper"},
}
