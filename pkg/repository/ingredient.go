package repository

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/Foodgram/pkg/model"
)

const (
	ingredientBatchSize = 500

	syncIngredientSequence = `SELECT setval(pg_get_serial_sequence('ingredients', 'id'), MAX(id)) FROM ingredients`
)

// ListIngredients returns ingredients whose name starts with prefix, case-insensitively.
func (r *Repository) ListIngredients(ctx context.Context, prefix string) ([]*model.Ingredient, error) {
	var ingredients []*model.Ingredient

	query := r.DB.WithContext(ctx).Order("name")
	if prefix != "" {
		query = query.Where("LOWER(name) LIKE ?", escapeLike(strings.ToLower(prefix))+"%")
	}

	if result := query.Find(&ingredients); result.Error != nil {
		return nil, result.Error
	}

	return ingredients, nil
}

func (r *Repository) GetIngredientByID(ctx context.Context, ingredientID uint) (*model.Ingredient, error) {
	var ingredient model.Ingredient

	if result := r.DB.WithContext(ctx).First(&ingredient, ingredientID); result.Error != nil {
		return nil, translate(result.Error)
	}

	return &ingredient, nil
}

func (r *Repository) GetIngredientsByIDs(ctx context.Context, ids []uint) (map[uint]model.Ingredient, error) {
	var ingredients []*model.Ingredient

	if result := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&ingredients); result.Error != nil {
		return nil, result.Error
	}

	ingredientsByID := make(map[uint]model.Ingredient, len(ingredients))

	for index := range ingredients {
		ingredient := ingredients[index]
		ingredientsByID[ingredient.ID] = *ingredient
	}

	return ingredientsByID, nil
}

// AddIngredients bulk-inserts the catalogue, ignoring rows whose id already
// exists. The rows carry their own ids, so the id sequence is moved past the
// highest one afterwards.
func (r *Repository) AddIngredients(ctx context.Context, ingredients []model.Ingredient) (int64, error) {
	if len(ingredients) == 0 {
		return 0, nil
	}

	var added int64

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(&ingredients, ingredientBatchSize)
		if result.Error != nil {
			return result.Error
		}

		added = result.RowsAffected

		return tx.Exec(syncIngredientSequence).Error
	})
	if err != nil {
		r.Logger.Error("error adding ingredients", zap.Int("count", len(ingredients)), zap.Error(err))

		return 0, err
	}

	return added, nil
}

// escapeLike makes user input safe to use as a literal LIKE pattern.
func escapeLike(value string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(value)
}
