package recipes_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"droscher.com/Foodgram/mocks"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/recipes"
)

func TestDecorate_AnonymousViewerSeesNoFlags(t *testing.T) {
	relations := mocks.NewRelationReader(t)
	views := recipes.NewViews(relations)

	decorated, err := views.Decorate(context.Background(), nil, []*model.Recipe{
		{ID: 1, Name: "Pancakes", Author: model.User{ID: 3}},
		{ID: 2, Name: "Omelette", Author: model.User{ID: 4}},
	})

	require.NoError(t, err)
	require.Len(t, decorated, 2)

	for _, view := range decorated {
		assert.False(t, view.IsFavorited)
		assert.False(t, view.IsInShoppingCart)
		assert.False(t, view.Author.IsSubscribed)
	}
}

func TestDecorate_ViewerFlags(t *testing.T) {
	ctx := context.Background()
	relations := mocks.NewRelationReader(t)
	views := recipes.NewViews(relations)
	viewer := &model.User{ID: 7}

	relations.EXPECT().RelatedTargets(ctx, model.FavoriteRelation, uint(7), []uint{1, 2}).Return(map[uint]bool{1: true}, nil)
	relations.EXPECT().RelatedTargets(ctx, model.ShoppingCartRelation, uint(7), []uint{1, 2}).Return(map[uint]bool{2: true}, nil)
	relations.EXPECT().RelatedTargets(ctx, model.FollowRelation, uint(7), []uint{3}).Return(map[uint]bool{3: true}, nil)

	decorated, err := views.Decorate(ctx, viewer, []*model.Recipe{
		{ID: 1, Author: model.User{ID: 3}},
		{ID: 2, Author: model.User{ID: 3}},
	})

	require.NoError(t, err)
	require.Len(t, decorated, 2)
	assert.True(t, decorated[0].IsFavorited)
	assert.False(t, decorated[0].IsInShoppingCart)
	assert.False(t, decorated[1].IsFavorited)
	assert.True(t, decorated[1].IsInShoppingCart)
	assert.True(t, decorated[0].Author.IsSubscribed)
	assert.True(t, decorated[1].Author.IsSubscribed)
}

func TestDecorate_EmptyListMakesNoQueries(t *testing.T) {
	views := recipes.NewViews(mocks.NewRelationReader(t))

	decorated, err := views.Decorate(context.Background(), &model.User{ID: 7}, nil)

	require.NoError(t, err)
	assert.Empty(t, decorated)
}

func TestProfiles_ReaderFailureIsReturned(t *testing.T) {
	ctx := context.Background()
	relations := mocks.NewRelationReader(t)
	views := recipes.NewViews(relations)
	readErr := errors.New("connection reset")

	relations.EXPECT().RelatedTargets(ctx, model.FollowRelation, uint(7), []uint{3}).Return(nil, readErr)

	_, err := views.Profiles(ctx, &model.User{ID: 7}, []*model.User{{ID: 3}})

	require.ErrorIs(t, err, readErr)
}
