package repository

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/model"
)

// GetCartIngredients returns one row per ingredient of every recipe in the
// user's shopping cart.
func (r *Repository) GetCartIngredients(ctx context.Context, userID uint) ([]model.CartIngredient, error) {
	var rows []model.CartIngredient

	result := r.DB.WithContext(ctx).Table("recipe_ingredients ri").
		Select("i.name as name", "i.measurement_unit as measurement_unit", "ri.amount as amount").
		Joins("INNER JOIN ingredients i on i.id = ri.ingredient_id").
		Joins("INNER JOIN shopping_cart_items sc on sc.recipe_id = ri.recipe_id").
		Where("sc.user_id = ?", userID).
		Order("i.name").
		Scan(&rows)
	if result.Error != nil {
		r.Logger.Error("error getting shopping cart ingredients", zap.Uint("user_id", userID), zap.Error(result.Error))

		return nil, result.Error
	}

	return rows, nil
}
