package server

import (
	"droscher.com/Foodgram/pkg/model"
)

type tagResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

type ingredientResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

type recipeIngredientResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          uint   `json:"amount"`
}

type userResponse struct {
	Email        string `json:"email"`
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

type createdUserResponse struct {
	Email     string `json:"email"`
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type recipeResponse struct {
	ID               uint                       `json:"id"`
	Tags             []tagResponse              `json:"tags"`
	Author           userResponse               `json:"author"`
	Ingredients      []recipeIngredientResponse `json:"ingredients"`
	IsFavorited      bool                       `json:"is_favorited"`
	IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
	Name             string                     `json:"name"`
	Image            *string                    `json:"image"`
	Text             string                     `json:"text"`
	CookingTime      uint                       `json:"cooking_time"`
}

// shortRecipeResponse is the compact form used by relation toggles and
// subscriptions.
type shortRecipeResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Image       *string `json:"image"`
	CookingTime uint    `json:"cooking_time"`
}

type subscriptionResponse struct {
	Email        string                `json:"email"`
	ID           uint                  `json:"id"`
	Username     string                `json:"username"`
	FirstName    string                `json:"first_name"`
	LastName     string                `json:"last_name"`
	IsSubscribed bool                  `json:"is_subscribed"`
	Recipes      []shortRecipeResponse `json:"recipes"`
	RecipesCount int64                 `json:"recipes_count"`
}

type pageResponse[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

type tokenResponse struct {
	AuthToken string `json:"auth_token"`
}

func tagFromModel(tag model.Tag) tagResponse {
	return tagResponse{ID: tag.ID, Name: tag.Name, Color: tag.Color, Slug: tag.Slug}
}

func tagsFromModel(tags []*model.Tag) []tagResponse {
	result := make([]tagResponse, 0, len(tags))
	for _, tag := range tags {
		result = append(result, tagFromModel(*tag))
	}

	return result
}

func ingredientFromModel(ingredient model.Ingredient) ingredientResponse {
	return ingredientResponse{ID: ingredient.ID, Name: ingredient.Name, MeasurementUnit: ingredient.MeasurementUnit}
}

func ingredientsFromModel(ingredients []*model.Ingredient) []ingredientResponse {
	result := make([]ingredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		result = append(result, ingredientFromModel(*ingredient))
	}

	return result
}

func userFromProfile(profile model.Profile) userResponse {
	return userResponse{
		Email:        profile.Email,
		ID:           profile.ID,
		Username:     profile.Username,
		FirstName:    profile.FirstName,
		LastName:     profile.LastName,
		IsSubscribed: profile.IsSubscribed,
	}
}

func usersFromProfiles(profiles []model.Profile) []userResponse {
	result := make([]userResponse, 0, len(profiles))
	for _, profile := range profiles {
		result = append(result, userFromProfile(profile))
	}

	return result
}

func createdUserFromModel(user *model.User) createdUserResponse {
	return createdUserResponse{
		Email:     user.Email,
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func recipeFromView(view *model.RecipeView) recipeResponse {
	tags := make([]tagResponse, 0, len(view.Tags))
	for _, tag := range view.Tags {
		tags = append(tags, tagFromModel(tag))
	}

	ingredients := make([]recipeIngredientResponse, 0, len(view.Ingredients))
	for _, ingredient := range view.Ingredients {
		ingredients = append(ingredients, recipeIngredientResponse{
			ID:              ingredient.IngredientID,
			Name:            ingredient.Ingredient.Name,
			MeasurementUnit: ingredient.Ingredient.MeasurementUnit,
			Amount:          ingredient.Amount,
		})
	}

	return recipeResponse{
		ID:               view.ID,
		Tags:             tags,
		Author:           userFromProfile(view.Author),
		Ingredients:      ingredients,
		IsFavorited:      view.IsFavorited,
		IsInShoppingCart: view.IsInShoppingCart,
		Name:             view.Name,
		Image:            view.Image,
		Text:             view.Text,
		CookingTime:      view.CookingTime,
	}
}

func recipesFromViews(views []*model.RecipeView) []recipeResponse {
	result := make([]recipeResponse, 0, len(views))
	for _, view := range views {
		result = append(result, recipeFromView(view))
	}

	return result
}

func shortRecipeFromModel(recipe *model.Recipe) shortRecipeResponse {
	return shortRecipeResponse{ID: recipe.ID, Name: recipe.Name, Image: recipe.Image, CookingTime: recipe.CookingTime}
}

func subscriptionFromModel(subscription model.Subscription) subscriptionResponse {
	recipes := make([]shortRecipeResponse, 0, len(subscription.Recipes))
	for index := range subscription.Recipes {
		recipes = append(recipes, shortRecipeFromModel(&subscription.Recipes[index]))
	}

	return subscriptionResponse{
		Email:        subscription.Email,
		ID:           subscription.ID,
		Username:     subscription.Username,
		FirstName:    subscription.FirstName,
		LastName:     subscription.LastName,
		IsSubscribed: subscription.IsSubscribed,
		Recipes:      recipes,
		RecipesCount: subscription.RecipesCount,
	}
}
