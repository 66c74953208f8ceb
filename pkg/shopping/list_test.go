package shopping_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/Foodgram/mocks"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/shopping"
)

type ShoppingListTestSuite struct {
	suite.Suite
	store        *mocks.CartStore
	aggregator   *shopping.Aggregator
	user         *model.User
	observedLogs *observer.ObservedLogs
}

func TestShoppingListTestSuite(t *testing.T) {
	suite.Run(t, new(ShoppingListTestSuite))
}

func (suite *ShoppingListTestSuite) SetupTest() {
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs

	suite.store = mocks.NewCartStore(suite.T())
	suite.aggregator = shopping.NewAggregator(suite.store, shopping.Options{Header: "Needed", Placeholder: "Nothing to buy"}, zap.New(observedZapCore))
	suite.user = &model.User{ID: 7}
}

func (suite *ShoppingListTestSuite) TestReport_SumsPerIngredientAndUnit() {
	ctx := context.Background()

	suite.store.EXPECT().GetCartIngredients(ctx, uint(7)).Return([]model.CartIngredient{
		{Name: "flour", MeasurementUnit: "g", Amount: 200},
		{Name: "sugar", MeasurementUnit: "g", Amount: 50},
		{Name: "flour", MeasurementUnit: "g", Amount: 300},
	}, nil)

	report, err := suite.aggregator.Report(ctx, suite.user)

	suite.Require().NoError(err)
	suite.Equal("Needed\n\n1. Flour - 500 g\n2. Sugar - 50 g", report)
}

func (suite *ShoppingListTestSuite) TestReport_EmptyCartRendersPlaceholder() {
	ctx := context.Background()

	suite.store.EXPECT().GetCartIngredients(ctx, uint(7)).Return(nil, nil)

	report, err := suite.aggregator.Report(ctx, suite.user)

	suite.Require().NoError(err)
	suite.Equal("Needed\n\nNothing to buy", report)
	suite.NotContains(report, "1.")
}

func (suite *ShoppingListTestSuite) TestReport_StoreFailureIsLogged() {
	ctx := context.Background()
	storeErr := errors.New("connection reset")

	suite.store.EXPECT().GetCartIngredients(ctx, uint(7)).Return(nil, storeErr)

	_, err := suite.aggregator.Report(ctx, suite.user)

	suite.Require().ErrorIs(err, storeErr)
	suite.Equal(1, suite.observedLogs.Len())
}

func (suite *ShoppingListTestSuite) TestReport_RequiresUser() {
	_, err := suite.aggregator.Report(context.Background(), nil)

	suite.Require().ErrorIs(err, shopping.ErrNoUser)
}

func (suite *ShoppingListTestSuite) TestAggregate_SameNameDifferentUnitsStaySeparate() {
	items := shopping.Aggregate([]model.CartIngredient{
		{Name: "milk", MeasurementUnit: "ml", Amount: 250},
		{Name: "milk", MeasurementUnit: "cup", Amount: 1},
		{Name: "eggs", MeasurementUnit: "pcs", Amount: 2},
		{Name: "milk", MeasurementUnit: "ml", Amount: 250},
	})

	suite.Equal([]shopping.Item{
		{Name: "eggs", MeasurementUnit: "pcs", Amount: 2},
		{Name: "milk", MeasurementUnit: "cup", Amount: 1},
		{Name: "milk", MeasurementUnit: "ml", Amount: 500},
	}, items)
}

func (suite *ShoppingListTestSuite) TestRender_TitleCasesNames() {
	report := shopping.DefaultOptions().Render([]shopping.Item{{Name: "brown sugar", MeasurementUnit: "g", Amount: 80}})

	lines := strings.Split(report, "\n")
	suite.Equal(shopping.DefaultOptions().Header, lines[0])
	suite.Equal("1. Brown Sugar - 80 g", lines[len(lines)-1])
}
