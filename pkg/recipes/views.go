package recipes

import (
	"context"

	"droscher.com/Foodgram/pkg/model"
)

type RelationReader interface {
	RelatedTargets(ctx context.Context, kind model.RelationKind, userID uint, targetIDs []uint) (map[uint]bool, error)
}

// Views resolves the relation flags a viewer sees on recipes and profiles.
// An anonymous (nil) viewer sees every flag unset.
type Views struct {
	relations RelationReader
}

func NewViews(relations RelationReader) *Views {
	return &Views{relations: relations}
}

func (v *Views) Decorate(ctx context.Context, viewer *model.User, recipes []*model.Recipe) ([]*model.RecipeView, error) {
	views := make([]*model.RecipeView, 0, len(recipes))

	recipeIDs := make([]uint, 0, len(recipes))
	authors := make([]*model.User, 0, len(recipes))

	for _, recipe := range recipes {
		recipeIDs = append(recipeIDs, recipe.ID)
		authors = append(authors, &recipe.Author)
	}

	favorited, err := v.related(ctx, model.FavoriteRelation, viewer, recipeIDs)
	if err != nil {
		return nil, err
	}

	inCart, err := v.related(ctx, model.ShoppingCartRelation, viewer, recipeIDs)
	if err != nil {
		return nil, err
	}

	profiles, err := v.Profiles(ctx, viewer, authors)
	if err != nil {
		return nil, err
	}

	for index, recipe := range recipes {
		views = append(views, &model.RecipeView{
			Recipe:           *recipe,
			Author:           profiles[index],
			IsFavorited:      favorited[recipe.ID],
			IsInShoppingCart: inCart[recipe.ID],
		})
	}

	return views, nil
}

// Profiles returns users with IsSubscribed set when viewer follows them.
func (v *Views) Profiles(ctx context.Context, viewer *model.User, users []*model.User) ([]model.Profile, error) {
	userIDs := make([]uint, 0, len(users))
	for _, user := range users {
		userIDs = append(userIDs, user.ID)
	}

	subscribed, err := v.related(ctx, model.FollowRelation, viewer, userIDs)
	if err != nil {
		return nil, err
	}

	profiles := make([]model.Profile, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, model.Profile{User: *user, IsSubscribed: subscribed[user.ID]})
	}

	return profiles, nil
}

func (v *Views) related(ctx context.Context, kind model.RelationKind, viewer *model.User, targetIDs []uint) (map[uint]bool, error) {
	if viewer == nil || len(targetIDs) == 0 {
		return map[uint]bool{}, nil
	}

	return v.relations.RelatedTargets(ctx, kind, viewer.ID, uniqueIDs(targetIDs))
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))

	for _, id := range ids {
		if _, found := seen[id]; !found {
			seen[id] = struct{}{}
			unique = append(unique, id)
		}
	}

	return unique
}
