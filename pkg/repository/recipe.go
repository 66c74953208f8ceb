package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/Foodgram/pkg/model"
)

func (r *Repository) GetRecipeByID(ctx context.Context, recipeID uint) (*model.Recipe, error) {
	var recipe model.Recipe

	result := r.withRecipeDetails(r.DB.WithContext(ctx)).First(&recipe, recipeID)
	if result.Error != nil {
		return nil, translate(result.Error)
	}

	return &recipe, nil
}

// ListRecipes returns one page of recipes matching filter, newest first, and
// the total number of matches.
func (r *Repository) ListRecipes(ctx context.Context, filter model.RecipeFilter) ([]*model.Recipe, int64, error) {
	var (
		recipes []*model.Recipe
		total   int64
	)

	if result := r.filteredRecipes(ctx, filter).Count(&total); result.Error != nil {
		return nil, 0, result.Error
	}

	query := r.withRecipeDetails(r.filteredRecipes(ctx, filter)).
		Order("recipes.created_at DESC").
		Order("recipes.id DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if result := query.Find(&recipes); result.Error != nil {
		r.Logger.Error("error listing recipes", zap.Any("filter", filter), zap.Error(result.Error))

		return nil, 0, result.Error
	}

	return recipes, total, nil
}

func (r *Repository) filteredRecipes(ctx context.Context, filter model.RecipeFilter) *gorm.DB {
	query := r.DB.WithContext(ctx).Model(&model.Recipe{})

	if filter.AuthorID != nil {
		query = query.Where("recipes.author_id = ?", *filter.AuthorID)
	}

	if len(filter.TagSlugs) > 0 {
		query = query.Where("recipes.id IN (SELECT rt.recipe_id FROM recipe_tags rt INNER JOIN tags t ON t.id = rt.tag_id WHERE t.slug IN ?)", filter.TagSlugs)
	}

	if filter.FavoritedBy != nil {
		query = query.Where("recipes.id IN (SELECT recipe_id FROM favorites WHERE user_id = ?)", *filter.FavoritedBy)
	}

	if filter.InShoppingCartOf != nil {
		query = query.Where("recipes.id IN (SELECT recipe_id FROM shopping_cart_items WHERE user_id = ?)", *filter.InShoppingCartOf)
	}

	return query
}

func (r *Repository) withRecipeDetails(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.id") }).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("recipe_ingredients.id") }).
		Preload("Ingredients.Ingredient")
}

// GetAuthorRecipes returns up to limit recipes of each author, newest first.
// A limit of zero or less returns every recipe.
func (r *Repository) GetAuthorRecipes(ctx context.Context, authorID uint, limit int) ([]model.Recipe, error) {
	var recipes []model.Recipe

	query := r.DB.WithContext(ctx).Where("author_id = ?", authorID).Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if result := query.Find(&recipes); result.Error != nil {
		return nil, result.Error
	}

	return recipes, nil
}

// CountAuthorRecipes returns the number of recipes per author for the given authors.
func (r *Repository) CountAuthorRecipes(ctx context.Context, authorIDs []uint) (map[uint]int64, error) {
	var rows []struct {
		AuthorID uint
		Count    int64
	}

	if len(authorIDs) == 0 {
		return map[uint]int64{}, nil
	}

	result := r.DB.WithContext(ctx).Model(&model.Recipe{}).
		Select("author_id, count(*) as count").
		Where("author_id IN ?", authorIDs).
		Group("author_id").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	counts := make(map[uint]int64, len(authorIDs))
	for _, row := range rows {
		counts[row.AuthorID] = row.Count
	}

	return counts, nil
}

// CreateRecipe writes the recipe, its ingredient rows and its tag rows in one
// transaction.
func (r *Repository) CreateRecipe(ctx context.Context, recipe *model.Recipe, ingredients []model.RecipeIngredient, tagIDs []uint) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return err
		}

		return writeRecipeSets(tx, recipe.ID, ingredients, tagIDs)
	})
	if err != nil {
		r.Logger.Error("error creating recipe", zap.String("name", recipe.Name), zap.Error(err))

		return translate(err)
	}

	return nil
}

// ReplaceRecipe updates the scalar fields of the recipe and replaces its
// ingredient and tag sets wholesale, in one transaction.
func (r *Repository) ReplaceRecipe(ctx context.Context, recipe *model.Recipe, ingredients []model.RecipeIngredient, tagIDs []uint) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(recipe).Select("Name", "Text", "Image", "CookingTime").Updates(recipe)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&model.RecipeIngredient{}).Error; err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&model.RecipeTag{}).Error; err != nil {
			return err
		}

		return writeRecipeSets(tx, recipe.ID, ingredients, tagIDs)
	})
	if err != nil {
		r.Logger.Error("error replacing recipe", zap.Uint("recipe_id", recipe.ID), zap.Error(err))

		return translate(err)
	}

	return nil
}

func writeRecipeSets(tx *gorm.DB, recipeID uint, ingredients []model.RecipeIngredient, tagIDs []uint) error {
	rows := make([]model.RecipeIngredient, 0, len(ingredients))
	for _, ingredient := range ingredients {
		rows = append(rows, model.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: ingredient.IngredientID,
			Amount:       ingredient.Amount,
		})
	}

	if err := tx.Omit(clause.Associations).Create(&rows).Error; err != nil {
		return err
	}

	tags := make([]model.RecipeTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		tags = append(tags, model.RecipeTag{RecipeID: recipeID, TagID: tagID})
	}

	return tx.Create(&tags).Error
}

func (r *Repository) DeleteRecipe(ctx context.Context, recipeID uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.Recipe{}, recipeID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
