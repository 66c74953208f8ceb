// Package recipes composes recipes from their scalar fields, ingredient
// amounts and tags, and decorates them for the user looking at them.
package recipes

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/repository"
)

var (
	ErrInvalidTags        = errors.New("invalid tags")
	ErrInvalidIngredients = errors.New("invalid ingredients")
	ErrInvalidRecipe      = errors.New("invalid recipe")
	ErrDuplicateName      = errors.New("a recipe with this name already exists")
)

type Fields struct {
	Name        string
	Text        string
	Image       *string
	CookingTime int
}

type IngredientAmount struct {
	IngredientID uint
	Amount       int
}

type RecipeStore interface {
	GetTagsByIDs(ctx context.Context, ids []uint) (map[uint]model.Tag, error)
	GetIngredientsByIDs(ctx context.Context, ids []uint) (map[uint]model.Ingredient, error)
	CreateRecipe(ctx context.Context, recipe *model.Recipe, ingredients []model.RecipeIngredient, tagIDs []uint) error
	ReplaceRecipe(ctx context.Context, recipe *model.Recipe, ingredients []model.RecipeIngredient, tagIDs []uint) error
	GetRecipeByID(ctx context.Context, recipeID uint) (*model.Recipe, error)
}

type Composer struct {
	store     RecipeStore
	views     *Views
	sanitizer *bluemonday.Policy
	logger    *zap.Logger
}

func NewComposer(store RecipeStore, views *Views, logger *zap.Logger) *Composer {
	return &Composer{store: store, views: views, sanitizer: bluemonday.StrictPolicy(), logger: logger}
}

// Create persists a new recipe by author together with its ingredient and tag
// sets. Nothing is written unless every row is.
func (c *Composer) Create(ctx context.Context, author *model.User, fields Fields, ingredients []IngredientAmount, tagIDs []uint) (*model.RecipeView, error) {
	if author == nil {
		return nil, fmt.Errorf("%w: no author", ErrInvalidRecipe)
	}

	recipe := &model.Recipe{AuthorID: author.ID}

	rows, err := c.prepare(ctx, recipe, fields, ingredients, tagIDs)
	if err != nil {
		return nil, err
	}

	if err := c.store.CreateRecipe(ctx, recipe, rows, tagIDs); err != nil {
		return nil, c.storeError(err)
	}

	return c.reload(ctx, author, recipe.ID)
}

// Replace overwrites the fields of an existing recipe and replaces its
// ingredient and tag sets wholesale.
func (c *Composer) Replace(ctx context.Context, viewer *model.User, existing *model.Recipe, fields Fields, ingredients []IngredientAmount, tagIDs []uint) (*model.RecipeView, error) {
	recipe := &model.Recipe{
		ID:        existing.ID,
		CreatedAt: existing.CreatedAt,
		AuthorID:  existing.AuthorID,
	}

	rows, err := c.prepare(ctx, recipe, fields, ingredients, tagIDs)
	if err != nil {
		return nil, err
	}

	if err := c.store.ReplaceRecipe(ctx, recipe, rows, tagIDs); err != nil {
		return nil, c.storeError(err)
	}

	return c.reload(ctx, viewer, recipe.ID)
}

func (c *Composer) prepare(ctx context.Context, recipe *model.Recipe, fields Fields, ingredients []IngredientAmount, tagIDs []uint) ([]model.RecipeIngredient, error) {
	err := multierr.Combine(
		validateFields(fields),
		validateTags(tagIDs),
		validateIngredients(ingredients),
	)
	if err != nil {
		return nil, err
	}

	if err := c.checkReferences(ctx, ingredients, tagIDs); err != nil {
		return nil, err
	}

	recipe.Name = strings.TrimSpace(fields.Name)
	recipe.Text = c.plainText(fields.Text)
	recipe.Image = fields.Image
	recipe.CookingTime = uint(fields.CookingTime)

	rows := make([]model.RecipeIngredient, 0, len(ingredients))
	for _, ingredient := range ingredients {
		rows = append(rows, model.RecipeIngredient{IngredientID: ingredient.IngredientID, Amount: uint(ingredient.Amount)})
	}

	return rows, nil
}

// plainText strips markup from free text. Entities are decoded again since
// clients escape the text themselves.
func (c *Composer) plainText(text string) string {
	return strings.TrimSpace(html.UnescapeString(c.sanitizer.Sanitize(text)))
}

func validateFields(fields Fields) error {
	var err error

	if strings.TrimSpace(fields.Name) == "" {
		err = multierr.Append(err, fmt.Errorf("%w: name must not be empty", ErrInvalidRecipe))
	}

	if fields.CookingTime < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: cooking time must be at least 1 minute", ErrInvalidRecipe))
	}

	return err
}

func validateTags(tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return fmt.Errorf("%w: choose at least one tag", ErrInvalidTags)
	}

	seen := make(map[uint]struct{}, len(tagIDs))
	for _, tagID := range tagIDs {
		if _, found := seen[tagID]; found {
			return fmt.Errorf("%w: tag %d is repeated", ErrInvalidTags, tagID)
		}

		seen[tagID] = struct{}{}
	}

	return nil
}

func validateIngredients(ingredients []IngredientAmount) error {
	if len(ingredients) == 0 {
		return fmt.Errorf("%w: choose at least one ingredient", ErrInvalidIngredients)
	}

	seen := make(map[uint]struct{}, len(ingredients))
	for _, ingredient := range ingredients {
		if ingredient.Amount < 1 {
			return fmt.Errorf("%w: amount of ingredient %d must be greater than 0", ErrInvalidIngredients, ingredient.IngredientID)
		}

		if _, found := seen[ingredient.IngredientID]; found {
			return fmt.Errorf("%w: ingredient %d is repeated", ErrInvalidIngredients, ingredient.IngredientID)
		}

		seen[ingredient.IngredientID] = struct{}{}
	}

	return nil
}

func (c *Composer) checkReferences(ctx context.Context, ingredients []IngredientAmount, tagIDs []uint) error {
	tags, err := c.store.GetTagsByIDs(ctx, tagIDs)
	if err != nil {
		return err
	}

	ingredientIDs := make([]uint, 0, len(ingredients))
	for _, ingredient := range ingredients {
		ingredientIDs = append(ingredientIDs, ingredient.IngredientID)
	}

	known, err := c.store.GetIngredientsByIDs(ctx, ingredientIDs)
	if err != nil {
		return err
	}

	var refErr error

	for _, tagID := range tagIDs {
		if _, found := tags[tagID]; !found {
			refErr = multierr.Append(refErr, fmt.Errorf("%w: tag %d does not exist", ErrInvalidTags, tagID))

			break
		}
	}

	for _, ingredientID := range ingredientIDs {
		if _, found := known[ingredientID]; !found {
			refErr = multierr.Append(refErr, fmt.Errorf("%w: ingredient %d does not exist", ErrInvalidIngredients, ingredientID))

			break
		}
	}

	return refErr
}

func (c *Composer) storeError(err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return ErrDuplicateName
	}

	return err
}

func (c *Composer) reload(ctx context.Context, viewer *model.User, recipeID uint) (*model.RecipeView, error) {
	recipe, err := c.store.GetRecipeByID(ctx, recipeID)
	if err != nil {
		c.logger.Error("error loading recipe after saving", zap.Uint("recipe_id", recipeID), zap.Error(err))

		return nil, err
	}

	views, err := c.views.Decorate(ctx, viewer, []*model.Recipe{recipe})
	if err != nil {
		return nil, err
	}

	return views[0], nil
}
