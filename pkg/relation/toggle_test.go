package relation_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/Foodgram/mocks"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/relation"
	"droscher.com/Foodgram/pkg/repository"
)

// memoryStore keeps relations in memory and reports duplicates the way the
// unique indexes do.
type memoryStore struct {
	mu      sync.Mutex
	members map[string]bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{members: map[string]bool{}}
}

func (m *memoryStore) key(kind model.RelationKind, userID, targetID uint) string {
	return fmt.Sprintf("%s/%d/%d", kind, userID, targetID)
}

func (m *memoryStore) AddRelation(_ context.Context, kind model.RelationKind, userID, targetID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := m.key(kind, userID, targetID)
	if m.members[key] {
		return fmt.Errorf("%w: duplicated key not allowed", repository.ErrDuplicate)
	}

	m.members[key] = true

	return nil
}

func (m *memoryStore) RemoveRelation(_ context.Context, kind model.RelationKind, userID, targetID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := m.key(kind, userID, targetID)
	if !m.members[key] {
		return false, nil
	}

	delete(m.members, key)

	return true, nil
}

func loadRecipe(_ context.Context, recipeID uint) (*model.Recipe, error) {
	if recipeID == 404 {
		return nil, repository.ErrNotFound
	}

	return &model.Recipe{ID: recipeID, Name: "Pancakes", CookingTime: 20}, nil
}

func loadUser(_ context.Context, userID uint) (*model.User, error) {
	if userID == 404 {
		return nil, repository.ErrNotFound
	}

	return &model.User{ID: userID, Username: fmt.Sprintf("user%d", userID)}, nil
}

type ToggleTestSuite struct {
	suite.Suite
	store        *memoryStore
	favorites    *relation.Toggle[*model.Recipe]
	cart         *relation.Toggle[*model.Recipe]
	follows      *relation.Toggle[*model.User]
	user         *model.User
	observedLogs *observer.ObservedLogs
}

func TestToggleTestSuite(t *testing.T) {
	suite.Run(t, new(ToggleTestSuite))
}

func (suite *ToggleTestSuite) SetupTest() {
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	logger := zap.New(observedZapCore)

	suite.store = newMemoryStore()
	suite.favorites = relation.NewToggle(model.FavoriteRelation, suite.store, loadRecipe, logger)
	suite.cart = relation.NewToggle(model.ShoppingCartRelation, suite.store, loadRecipe, logger)
	suite.follows = relation.NewToggle(model.FollowRelation, suite.store, loadUser, logger)
	suite.user = &model.User{ID: 7, Username: "user7"}
}

func (suite *ToggleTestSuite) recipeToggles() map[string]*relation.Toggle[*model.Recipe] {
	return map[string]*relation.Toggle[*model.Recipe]{
		"favorite":      suite.favorites,
		"shopping cart": suite.cart,
	}
}

func (suite *ToggleTestSuite) TestAdd_ReturnsTarget() {
	recipe, err := suite.favorites.Add(context.Background(), suite.user, 42)

	suite.Require().NoError(err)
	suite.Equal(uint(42), recipe.ID)
	suite.Equal("Pancakes", recipe.Name)
}

func (suite *ToggleTestSuite) TestAdd_TwiceFailsWithAlreadyExists() {
	ctx := context.Background()

	for name, toggle := range suite.recipeToggles() {
		_, err := toggle.Add(ctx, suite.user, 42)
		suite.Require().NoError(err, name)

		_, err = toggle.Add(ctx, suite.user, 42)
		suite.Require().ErrorIs(err, relation.ErrAlreadyExists, name)
		suite.ErrorContains(err, toggle.Kind().Description())
	}

	_, err := suite.follows.Add(ctx, suite.user, 8)
	suite.Require().NoError(err)

	_, err = suite.follows.Add(ctx, suite.user, 8)
	suite.Require().ErrorIs(err, relation.ErrAlreadyExists)
	suite.EqualError(err, "already added to subscriptions")
}

func (suite *ToggleTestSuite) TestRemove_NeverAddedFailsWithNotMember() {
	ctx := context.Background()

	for name, toggle := range suite.recipeToggles() {
		err := toggle.Remove(ctx, suite.user, 42)
		suite.Require().ErrorIs(err, relation.ErrNotMember, name)
	}

	err := suite.follows.Remove(ctx, suite.user, 8)
	suite.Require().ErrorIs(err, relation.ErrNotMember)
	suite.EqualError(err, "not found in subscriptions")
}

func (suite *ToggleTestSuite) TestAddRemoveAdd_Succeeds() {
	ctx := context.Background()

	for name, toggle := range suite.recipeToggles() {
		_, err := toggle.Add(ctx, suite.user, 42)
		suite.Require().NoError(err, name)
		suite.Require().NoError(toggle.Remove(ctx, suite.user, 42), name)
		_, err = toggle.Add(ctx, suite.user, 42)
		suite.Require().NoError(err, name)
	}

	_, err := suite.follows.Add(ctx, suite.user, 8)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.follows.Remove(ctx, suite.user, 8))
	_, err = suite.follows.Add(ctx, suite.user, 8)
	suite.Require().NoError(err)
}

func (suite *ToggleTestSuite) TestRelationsAreIndependent() {
	ctx := context.Background()

	_, err := suite.favorites.Add(ctx, suite.user, 42)
	suite.Require().NoError(err)

	_, err = suite.cart.Add(ctx, suite.user, 42)
	suite.Require().NoError(err)

	err = suite.cart.Remove(ctx, suite.user, 42)
	suite.Require().NoError(err)

	_, err = suite.favorites.Add(ctx, suite.user, 42)
	suite.ErrorIs(err, relation.ErrAlreadyExists)
}

func (suite *ToggleTestSuite) TestFollowSelf_AlwaysFails() {
	ctx := context.Background()

	_, err := suite.follows.Add(ctx, suite.user, suite.user.ID)
	suite.Require().ErrorIs(err, relation.ErrSelfReference)

	// even when the pair somehow exists already
	suite.Require().NoError(suite.store.AddRelation(ctx, model.FollowRelation, suite.user.ID, suite.user.ID))

	_, err = suite.follows.Add(ctx, suite.user, suite.user.ID)
	suite.Require().ErrorIs(err, relation.ErrSelfReference)
	suite.EqualError(err, "cannot add yourself to subscriptions")
}

func (suite *ToggleTestSuite) TestFavoriteOwnRecipe_IsAllowed() {
	_, err := suite.favorites.Add(context.Background(), suite.user, suite.user.ID)

	suite.NoError(err)
}

func (suite *ToggleTestSuite) TestUnknownTarget_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.favorites.Add(ctx, suite.user, 404)
	suite.Require().ErrorIs(err, repository.ErrNotFound)

	err = suite.follows.Remove(ctx, suite.user, 404)
	suite.Require().ErrorIs(err, repository.ErrNotFound)
}

func (suite *ToggleTestSuite) TestAnonymousUser_IsRejected() {
	_, err := suite.favorites.Add(context.Background(), nil, 42)
	suite.Require().ErrorIs(err, relation.ErrNoUser)

	err = suite.cart.Remove(context.Background(), nil, 42)
	suite.Require().ErrorIs(err, relation.ErrNoUser)
}

func (suite *ToggleTestSuite) TestAdd_StoreFailureIsLoggedAndReturned() {
	store := mocks.NewRelationStore(suite.T())
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	toggle := relation.NewToggle(model.ShoppingCartRelation, store, loadRecipe, zap.New(observedZapCore))
	ctx := context.Background()
	storeErr := errors.New("connection reset")

	store.EXPECT().AddRelation(ctx, model.ShoppingCartRelation, uint(7), uint(42)).Return(storeErr)

	_, err := toggle.Add(ctx, suite.user, 42)
	suite.Require().ErrorIs(err, storeErr)
	suite.NotErrorIs(err, relation.ErrAlreadyExists)
	suite.Equal(1, observedLogs.Len())
	suite.Equal("shopping_cart", observedLogs.All()[0].ContextMap()["relation"])
}

func (suite *ToggleTestSuite) TestAdd_LosingConcurrentInsertIsAlreadyExists() {
	store := mocks.NewRelationStore(suite.T())
	toggle := relation.NewToggle(model.FavoriteRelation, store, loadRecipe, zap.NewNop())
	ctx := context.Background()

	store.EXPECT().AddRelation(ctx, model.FavoriteRelation, uint(7), uint(42)).
		Return(fmt.Errorf("%w: ERROR: duplicate key value violates unique constraint", repository.ErrDuplicate))

	_, err := toggle.Add(ctx, suite.user, 42)
	suite.Require().ErrorIs(err, relation.ErrAlreadyExists)
	suite.EqualError(err, "already added to favorites")
}

func (suite *ToggleTestSuite) TestRemove_StoreFailureIsReturned() {
	store := mocks.NewRelationStore(suite.T())
	toggle := relation.NewToggle(model.FollowRelation, store, loadUser, zap.NewNop())
	ctx := context.Background()
	storeErr := errors.New("connection reset")

	store.EXPECT().RemoveRelation(ctx, model.FollowRelation, uint(7), uint(8)).Return(false, storeErr)

	err := toggle.Remove(ctx, suite.user, 8)
	suite.Require().ErrorIs(err, storeErr)
}
